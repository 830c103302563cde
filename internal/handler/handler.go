package handlers

import (
	"net/http"

	"blogCPT/internal/config"
	"blogCPT/internal/database"
	"blogCPT/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	UserService service.UserService
	AuthService service.AuthService
	PostService service.PostService
	FeedService service.FeedService
	DB          *database.DB
	Cfg         *config.Config
	Validate    *validator.Validate
}

func NewHandlers(services *service.Service, cfg *config.Config, db *database.DB) *Handlers {
	return &Handlers{
		UserService: services.User,
		AuthService: services.Auth,
		PostService: services.Post,
		FeedService: services.Feed,
		DB:          db,
		Cfg:         cfg,
		Validate:    validator.New(),
	}
}

// callerID достаёт идентификатор пользователя из контекста запроса.
// Пустая строка - анонимный запрос, дальше решают сервисы.
func callerID(r *http.Request) string {
	userID, _ := r.Context().Value("userID").(string)
	return userID
}
