package handlers

import (
	"encoding/json"
	"net/http"

	"blogCPT/internal/service"
)

func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)
	if userID == "" {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	user, err := h.UserService.GetProfile(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	response := UserResponse{
		UserId:   user.UserID,
		Username: user.Username,
		Email:    user.Email,
	}

	writeJSON(w, response, http.StatusOK)
}

func (h *Handlers) UpdateCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID := callerID(r)
	if userID == "" {
		WriteError(w, "Требуется аутентификация", http.StatusUnauthorized)
		return
	}

	var req struct {
		Email string `json:"email" validate:"required,email"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверный формат email", http.StatusBadRequest)
		return
	}

	serviceReq := service.UpdateUserRequest{
		UserID: userID,
		Email:  req.Email,
	}

	if err := h.UserService.UpdateUser(r.Context(), serviceReq); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, MessageResponse{Message: "Пользователь обновлен"}, http.StatusOK)
}
