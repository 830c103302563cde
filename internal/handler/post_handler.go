package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"blogCPT/internal/service"

	"github.com/gorilla/mux"
)

type PostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

func (h *Handlers) GetPost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	// чтение открыто для всех, включая анонимных
	post, err := h.PostService.GetPost(r.Context(), postID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует заголовок или содержимое", http.StatusBadRequest)
		return
	}

	serviceReq := service.CreatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	}

	// creating a post
	post, err := h.PostService.CreatePost(r.Context(), callerID(r), serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	// redirect на страницу поста
	w.Header().Set("Location", fmt.Sprintf("/post/%s", post.PostID))
	writeJSON(w, post, http.StatusCreated)
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	var req PostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Отсутствует заголовок или содержимое", http.StatusBadRequest)
		return
	}

	serviceReq := service.UpdatePostRequest{
		Title:   req.Title,
		Content: req.Content,
	}

	// updating the post
	post, err := h.PostService.UpdatePost(r.Context(), callerID(r), postID, serviceReq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/post/%s", post.PostID))
	writeJSON(w, post, http.StatusOK)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	if err := h.PostService.DeletePost(r.Context(), callerID(r), postID); err != nil {
		writeServiceError(w, err)
		return
	}

	// после удаления - на главную ленту
	w.Header().Set("Location", "/")
	writeJSON(w, MessageResponse{Message: "Пост успешно удален"}, http.StatusOK)
}

func (h *Handlers) AttachImage(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["id"]

	// setting the size limit from the config
	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, fmt.Sprintf("Ошибка при обработке файла (макс. %d MB)",
			h.Cfg.MaxUploadSize/(1024*1024)), http.StatusBadRequest)
		return
	}

	// getting the file
	file, handler, err := r.FormFile("image")
	if err != nil {
		WriteError(w, "Не удалось получить файл", http.StatusBadRequest)
		return
	}
	defer file.Close()

	// formats image
	allowedTypes := map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
		"image/gif":  true,
		"image/webp": true,
	}

	contentType := handler.Header.Get("Content-Type")
	if !allowedTypes[contentType] {
		WriteError(w, "Неподдерживаемый тип файла. Разрешены: JPEG, PNG, GIF, WebP", http.StatusBadRequest)
		return
	}

	image, err := h.PostService.AttachImage(r.Context(), callerID(r), postID, handler.Filename, file, handler.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, image, http.StatusCreated)
}

func (h *Handlers) DeleteImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	postID := vars["id"]
	imageID := vars["imageId"]

	err := h.PostService.DeleteImage(r.Context(), callerID(r), postID, imageID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "Картинка успешно удалена"}, http.StatusOK)
}
