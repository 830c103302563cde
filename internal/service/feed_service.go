package service

import (
	"context"
	"fmt"

	"blogCPT/internal/apperrors"
	"blogCPT/internal/models"
	"blogCPT/internal/repository"
)

// PageSize - размер страницы ленты.
const PageSize = 5

type Pagination struct {
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	Total      int  `json:"total"`
	TotalPages int  `json:"totalPages"`
	HasNext    bool `json:"hasNext"`
	HasPrev    bool `json:"hasPrev"`
}

type Feed struct {
	Posts      []models.Post `json:"posts"`
	Pagination Pagination    `json:"pagination"`
}

type FeedService interface {
	GlobalFeed(ctx context.Context, page int) (*Feed, error)
	AuthorFeed(ctx context.Context, username string, page int) (*Feed, error)
}

type feedService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

func NewFeedService(postRepo repository.PostRepository, userRepo repository.UserRepository) FeedService {
	return &feedService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// GlobalFeed возвращает страницу общей ленты, новые посты первыми.
// Страница за пределами диапазона - ошибка ErrInvalidPage, а не пустой список.
// Исключение: первая страница пустой ленты валидна и пуста.
func (s *feedService) GlobalFeed(ctx context.Context, page int) (*Feed, error) {
	if page < 1 {
		return nil, fmt.Errorf("страница %d: %w", page, apperrors.ErrInvalidPage)
	}

	total, err := s.postRepo.CountAll(ctx)
	if err != nil {
		return nil, err
	}

	pagination, err := buildPagination(page, total)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetAll(ctx, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	return &Feed{Posts: posts, Pagination: *pagination}, nil
}

// AuthorFeed сначала резолвит username. Несуществующий пользователь -
// ErrNotFound, чтобы отличать "нет постов" от "нет такого пользователя".
func (s *feedService) AuthorFeed(ctx context.Context, username string, page int) (*Feed, error) {
	if page < 1 {
		return nil, fmt.Errorf("страница %d: %w", page, apperrors.ErrInvalidPage)
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	total, err := s.postRepo.CountByAuthorID(ctx, user.UserID)
	if err != nil {
		return nil, err
	}

	pagination, err := buildPagination(page, total)
	if err != nil {
		return nil, err
	}

	posts, err := s.postRepo.GetByAuthorID(ctx, user.UserID, PageSize, (page-1)*PageSize)
	if err != nil {
		return nil, err
	}

	return &Feed{Posts: posts, Pagination: *pagination}, nil
}

func buildPagination(page, total int) (*Pagination, error) {
	totalPages := (total + PageSize - 1) / PageSize

	// пустая лента: страница 1 разрешена и пуста
	if page > totalPages && page != 1 {
		return nil, fmt.Errorf("страница %d из %d: %w", page, totalPages, apperrors.ErrInvalidPage)
	}

	return &Pagination{
		Page:       page,
		Limit:      PageSize,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}, nil
}
