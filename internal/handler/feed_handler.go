package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"blogCPT/internal/apperrors"

	"github.com/gorilla/mux"
)

// pageParam читает ?page. Отсутствующий параметр - первая страница,
// нечисловое значение - ошибка диапазона, а не молчаливый откат.
func pageParam(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("page")
	if raw == "" {
		return 1, nil
	}

	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("страница %q: %w", raw, apperrors.ErrInvalidPage)
	}

	return page, nil
}

// HomeFeed - общая лента, страница из ?page, по умолчанию первая.
func (h *Handlers) HomeFeed(w http.ResponseWriter, r *http.Request) {
	page, err := pageParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	feed, err := h.FeedService.GlobalFeed(r.Context(), page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, feed, http.StatusOK)
}

// AuthorFeed - лента постов одного автора по username из URL.
func (h *Handlers) AuthorFeed(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	page, err := pageParam(r)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	feed, err := h.FeedService.AuthorFeed(r.Context(), username, page)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, feed, http.StatusOK)
}

func (h *Handlers) AboutHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]string{"title": "About"}, http.StatusOK)
}

type HealthResponse struct {
	Status      string `json:"status"`
	CountTables int    `json:"countTables"`
}

func (h *Handlers) HealthHandler(w http.ResponseWriter, r *http.Request) {
	if err := h.DB.HealthCheck(); err != nil {
		WriteError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	count, err := h.DB.CountTables()
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, HealthResponse{Status: "ok", CountTables: count}, http.StatusOK)
}
