package service

import (
	"context"

	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

type UpdateUserRequest struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, req UpdateUserRequest) error
}

type userService struct {
	userRepo repository.UserRepository
	cfg      *config.Config
}

func NewUserService(userRepo repository.UserRepository, cfg *config.Config) UserService {
	return &userService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *userService) UpdateUser(ctx context.Context, req UpdateUserRequest) error {
	// get user by id
	user, err := s.userRepo.GetUserByID(ctx, req.UserID)
	if err != nil {
		return err
	}

	user.Email = req.Email

	// update user
	err = s.userRepo.UpdateUser(ctx, user)
	if err != nil {
		return err
	}

	return nil
}
