package service

import (
	"blogCPT/internal/config"
	"blogCPT/internal/repository"
	"blogCPT/internal/storage"
)

type Service struct {
	User UserService
	Post PostService
	Feed FeedService
	Auth AuthService
}

func NewService(rep *repository.Repository, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		User: NewUserService(rep.User, cfg),
		Post: NewPostService(rep.Post, rep.Image, storage, cfg),
		Feed: NewFeedService(rep.Post, rep.User),
		Auth: NewAuthService(rep.User, cfg),
	}
}
