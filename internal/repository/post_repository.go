package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blogCPT/internal/apperrors"
	"blogCPT/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PostRepositoryImpl struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{db: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, author_id, title, content, created_at, updated_at)
        VALUES
        (:post_id, :author_id, :title, :content, :created_at, :updated_at)
    `

	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	_, err := r.db.NamedExecContext(ctx, query, post)
	if err != nil {
		return fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE post_id = $1
    `

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) GetAll(ctx context.Context, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        ORDER BY created_at DESC
        LIMIT $1 OFFSET $2
    `

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении ленты постов: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountAll(ctx context.Context) (int, error) {
	var count int

	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM posts`)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов: %w", err)
	}

	return count, nil
}

func (r *PostRepositoryImpl) GetByAuthorID(ctx context.Context, authorID string, limit, offset int) ([]models.Post, error) {
	query := `
        SELECT * FROM posts
        WHERE author_id = $1
        ORDER BY created_at DESC
        LIMIT $2 OFFSET $3
    `

	posts := []models.Post{}
	err := r.db.SelectContext(ctx, &posts, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении постов автора: %w", err)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) CountByAuthorID(ctx context.Context, authorID string) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1`

	err := r.db.GetContext(ctx, &count, query, authorID)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте постов автора: %w", err)
	}

	return count, nil
}

// Update меняет только title, content и updated_at.
// author_id при обновлении не перезаписывается никогда.
func (r *PostRepositoryImpl) Update(ctx context.Context, postID, title, content string) error {
	query := `
		UPDATE posts SET
			title = $1,
			content = $2,
			updated_at = $3
		WHERE post_id = $4
	`

	result, err := r.db.ExecContext(ctx, query, title, content, time.Now(), postID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("пост с ID %s: %w", postID, apperrors.ErrNotFound)
	}

	return nil
}
