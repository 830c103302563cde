package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"blogCPT/cmd/app"
	"blogCPT/internal/config"
	handlers "blogCPT/internal/handler"
	"blogCPT/internal/middleware"

	"github.com/gorilla/mux"
)

func main() {
	// setting up config
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY не установлен в .env файле")
	}

	db, _, services := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(services, cfg, db)

	r := mux.NewRouter()

	// setting up routes
	r.HandleFunc("/health", handler.HealthHandler).Methods(http.MethodGet)
	r.HandleFunc("/about", handler.AboutHandler).Methods(http.MethodGet)

	r.HandleFunc("/api/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/login", handler.Login).Methods(http.MethodPost)
	r.HandleFunc("/api/auth/refresh-token", handler.RefreshToken).Methods(http.MethodPost)

	r.HandleFunc("/api/me", handler.GetCurrentUser).Methods(http.MethodGet)
	r.HandleFunc("/api/me", handler.UpdateCurrentUser).Methods(http.MethodPut)

	// ленты и посты; /post/new регистрируется раньше /post/{id}
	r.HandleFunc("/", handler.HomeFeed).Methods(http.MethodGet)
	r.HandleFunc("/posts", handler.HomeFeed).Methods(http.MethodGet)
	r.HandleFunc("/user/{username}", handler.AuthorFeed).Methods(http.MethodGet)
	r.HandleFunc("/post/new", handler.CreatePost).Methods(http.MethodPost)
	r.HandleFunc("/post/{id}", handler.GetPost).Methods(http.MethodGet)
	r.HandleFunc("/post/{id}/update", handler.UpdatePost).Methods(http.MethodPut)
	r.HandleFunc("/post/{id}/delete", handler.DeletePost).Methods(http.MethodDelete)
	r.HandleFunc("/post/{id}/images", handler.AttachImage).Methods(http.MethodPost)
	r.HandleFunc("/post/{id}/images/{imageId}", handler.DeleteImage).Methods(http.MethodDelete)

	handlerChain := middleware.Chain(
		r,
		middleware.AuthMiddleware(cfg),
		middleware.CORSMiddleware,
		middleware.LoggingMiddleware,
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handlerChain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Starting the server
	go func() {
		log.Printf("Сервер запущен на %s", addr)
		log.Printf("База данных: %s", cfg.DB.DbNAME)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Ошибка запуска сервера: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Ошибка при остановке сервера: %v", err)
	}
}
