package service

import (
	"context"
	"testing"
	"time"

	"blogCPT/internal/apperrors"
	"blogCPT/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGlobalFeed(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name          string
		page          int
		mockSetup     func(*MockPostRepository)
		expectedErr   error
		expectedPosts int
		checkFeed     func(*testing.T, *Feed)
	}{
		{
			name: "Первая страница из семи постов",
			page: 1,
			mockSetup: func(repo *MockPostRepository) {
				repo.On("CountAll", mock.Anything).Return(7, nil)
				repo.On("GetAll", mock.Anything, PageSize, 0).
					Return([]models.Post{
						{PostID: "p7", CreatedAt: now},
						{PostID: "p6", CreatedAt: now.Add(-time.Minute)},
						{PostID: "p5", CreatedAt: now.Add(-2 * time.Minute)},
						{PostID: "p4", CreatedAt: now.Add(-3 * time.Minute)},
						{PostID: "p3", CreatedAt: now.Add(-4 * time.Minute)},
					}, nil)
			},
			expectedPosts: 5,
			checkFeed: func(t *testing.T, feed *Feed) {
				assert.Equal(t, 1, feed.Pagination.Page)
				assert.Equal(t, 7, feed.Pagination.Total)
				assert.Equal(t, 2, feed.Pagination.TotalPages)
				assert.True(t, feed.Pagination.HasNext)
				assert.False(t, feed.Pagination.HasPrev)
			},
		},
		{
			name: "Последняя неполная страница",
			page: 2,
			mockSetup: func(repo *MockPostRepository) {
				repo.On("CountAll", mock.Anything).Return(7, nil)
				repo.On("GetAll", mock.Anything, PageSize, 5).
					Return([]models.Post{
						{PostID: "p2", CreatedAt: now.Add(-5 * time.Minute)},
						{PostID: "p1", CreatedAt: now.Add(-6 * time.Minute)},
					}, nil)
			},
			expectedPosts: 2,
			checkFeed: func(t *testing.T, feed *Feed) {
				assert.False(t, feed.Pagination.HasNext)
				assert.True(t, feed.Pagination.HasPrev)
			},
		},
		{
			name: "Первая страница пустой ленты",
			page: 1,
			mockSetup: func(repo *MockPostRepository) {
				repo.On("CountAll", mock.Anything).Return(0, nil)
				repo.On("GetAll", mock.Anything, PageSize, 0).
					Return([]models.Post{}, nil)
			},
			expectedPosts: 0,
			checkFeed: func(t *testing.T, feed *Feed) {
				assert.Equal(t, 0, feed.Pagination.TotalPages)
				assert.False(t, feed.Pagination.HasNext)
			},
		},
		{
			name: "Страница за пределами диапазона",
			page: 3,
			mockSetup: func(repo *MockPostRepository) {
				repo.On("CountAll", mock.Anything).Return(7, nil)
			},
			expectedErr: apperrors.ErrInvalidPage,
		},
		{
			name:        "Нулевая страница",
			page:        0,
			mockSetup:   func(repo *MockPostRepository) {},
			expectedErr: apperrors.ErrInvalidPage,
		},
		{
			name:        "Отрицательная страница",
			page:        -3,
			mockSetup:   func(repo *MockPostRepository) {},
			expectedErr: apperrors.ErrInvalidPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPostRepo := new(MockPostRepository)
			mockUserRepo := new(MockUserRepository)
			tt.mockSetup(mockPostRepo)

			svc := NewFeedService(mockPostRepo, mockUserRepo)

			feed, err := svc.GlobalFeed(context.Background(), tt.page)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, feed)
			} else {
				assert.NoError(t, err)
				assert.Len(t, feed.Posts, tt.expectedPosts)
				tt.checkFeed(t, feed)
			}

			mockPostRepo.AssertExpectations(t)
		})
	}
}

func TestAuthorFeed(t *testing.T) {
	author := &models.User{UserID: "user-1", Username: "alice"}

	tests := []struct {
		name        string
		username    string
		page        int
		mockSetup   func(*MockPostRepository, *MockUserRepository)
		expectedErr error
	}{
		{
			name:     "Лента существующего автора",
			username: "alice",
			page:     1,
			mockSetup: func(postRepo *MockPostRepository, userRepo *MockUserRepository) {
				userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(author, nil)
				postRepo.On("CountByAuthorID", mock.Anything, "user-1").Return(2, nil)
				postRepo.On("GetByAuthorID", mock.Anything, "user-1", PageSize, 0).
					Return([]models.Post{
						{PostID: "p2", AuthorID: "user-1"},
						{PostID: "p1", AuthorID: "user-1"},
					}, nil)
			},
		},
		{
			name:     "Несуществующий пользователь - ошибка, а не пустая лента",
			username: "ghost",
			page:     1,
			mockSetup: func(postRepo *MockPostRepository, userRepo *MockUserRepository) {
				userRepo.On("GetUserByUsername", mock.Anything, "ghost").
					Return(nil, apperrors.ErrNotFound)
			},
			expectedErr: apperrors.ErrNotFound,
		},
		{
			name:     "Автор без постов - пустая первая страница",
			username: "alice",
			page:     1,
			mockSetup: func(postRepo *MockPostRepository, userRepo *MockUserRepository) {
				userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(author, nil)
				postRepo.On("CountByAuthorID", mock.Anything, "user-1").Return(0, nil)
				postRepo.On("GetByAuthorID", mock.Anything, "user-1", PageSize, 0).
					Return([]models.Post{}, nil)
			},
		},
		{
			name:     "Страница за пределами диапазона у автора",
			username: "alice",
			page:     5,
			mockSetup: func(postRepo *MockPostRepository, userRepo *MockUserRepository) {
				userRepo.On("GetUserByUsername", mock.Anything, "alice").Return(author, nil)
				postRepo.On("CountByAuthorID", mock.Anything, "user-1").Return(3, nil)
			},
			expectedErr: apperrors.ErrInvalidPage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockPostRepo := new(MockPostRepository)
			mockUserRepo := new(MockUserRepository)
			tt.mockSetup(mockPostRepo, mockUserRepo)

			svc := NewFeedService(mockPostRepo, mockUserRepo)

			feed, err := svc.AuthorFeed(context.Background(), tt.username, tt.page)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, feed)
				mockPostRepo.AssertNotCalled(t, "GetByAuthorID",
					mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				for _, post := range feed.Posts {
					assert.Equal(t, author.UserID, post.AuthorID)
				}
			}

			mockPostRepo.AssertExpectations(t)
			mockUserRepo.AssertExpectations(t)
		})
	}
}
