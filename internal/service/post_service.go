package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"blogCPT/internal/apperrors"
	"blogCPT/internal/config"
	"blogCPT/internal/models"
	"blogCPT/internal/policy"
	"blogCPT/internal/repository"
	"blogCPT/internal/storage"

	"github.com/google/uuid"
)

type CreatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type UpdatePostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PostService - жизненный цикл поста. callerID передаётся явным
// параметром в каждую операцию, пустой callerID - анонимный вызов.
type PostService interface {
	CreatePost(ctx context.Context, callerID string, req CreatePostRequest) (*models.Post, error)
	UpdatePost(ctx context.Context, callerID, postID string, req UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, callerID, postID string) error
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	AttachImage(ctx context.Context, callerID, postID, fileName string, file io.Reader, size int64) (*models.Image, error)
	DeleteImage(ctx context.Context, callerID, postID, imageID string) error
}

type postService struct {
	postRepo  repository.PostRepository
	imageRepo repository.ImageRepository
	storage   storage.Storage
	cfg       *config.Config
}

func NewPostService(postRepo repository.PostRepository, imageRepo repository.ImageRepository, storage storage.Storage, cfg *config.Config) PostService {
	return &postService{
		postRepo:  postRepo,
		imageRepo: imageRepo,
		storage:   storage,
		cfg:       cfg,
	}
}

func validatePostFields(title, content string) error {
	if strings.TrimSpace(title) == "" {
		return fmt.Errorf("отсутствует заголовок: %w", apperrors.ErrValidation)
	}

	if strings.TrimSpace(content) == "" {
		return fmt.Errorf("отсутствует содержимое: %w", apperrors.ErrValidation)
	}

	return nil
}

func (p *postService) CreatePost(ctx context.Context, callerID string, req CreatePostRequest) (*models.Post, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	// валидация до любого обращения к хранилищу
	if err := validatePostFields(req.Title, req.Content); err != nil {
		return nil, err
	}

	post := &models.Post{
		AuthorID: callerID,
		Title:    req.Title,
		Content:  req.Content,
	}

	err := p.postRepo.Create(ctx, post)
	if err != nil {
		return nil, err
	}

	return post, nil
}

func (p *postService) UpdatePost(ctx context.Context, callerID, postID string, req UpdatePostRequest) (*models.Post, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !policy.CanMutate(callerID, post) {
		return nil, fmt.Errorf("изменять пост может только его автор: %w", apperrors.ErrForbidden)
	}

	if err := validatePostFields(req.Title, req.Content); err != nil {
		return nil, err
	}

	// author_id не трогаем, меняются только title и content
	err = p.postRepo.Update(ctx, postID, req.Title, req.Content)
	if err != nil {
		return nil, err
	}

	post.Title = req.Title
	post.Content = req.Content
	post.UpdatedAt = time.Now()

	return post, nil
}

func (p *postService) DeletePost(ctx context.Context, callerID, postID string) error {
	if callerID == "" {
		return apperrors.ErrUnauthorized
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !policy.CanMutate(callerID, post) {
		return fmt.Errorf("удалять пост может только его автор: %w", apperrors.ErrForbidden)
	}

	// объекты в MinIO каскадом не удаляются, чистим их до удаления строк
	images, err := p.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return err
	}

	for _, image := range images {
		if objectName, ok := storage.ObjectNameFromURL(image.ImageURL); ok {
			if err := p.storage.DeleteImage(ctx, objectName); err != nil {
				fmt.Printf("Предупреждение: не удалось удалить из MinIO: %v\n", err)
			}
		}
	}

	err = p.postRepo.Delete(ctx, postID)
	if err != nil {
		return err
	}

	err = p.imageRepo.DeleteByPostID(ctx, postID)
	if err != nil {
		return err
	}

	return nil
}

// GetPost - чтение без проверки прав, пост может посмотреть кто угодно.
func (p *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	images, err := p.imageRepo.GetByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	post.Images = images

	return post, nil
}

func (p *postService) AttachImage(ctx context.Context, callerID, postID, fileName string, file io.Reader, size int64) (*models.Image, error) {
	if callerID == "" {
		return nil, apperrors.ErrUnauthorized
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !policy.CanMutate(callerID, post) {
		return nil, fmt.Errorf("добавлять изображения может только автор поста: %w", apperrors.ErrForbidden)
	}

	objectName, imageURL, err := p.storage.UploadImage(ctx, postID, fileName, file, size)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки изображения в MinIO: %w", err)
	}

	image := &models.Image{
		ImageID:   uuid.New().String(),
		PostID:    postID,
		ImageURL:  imageURL,
		CreatedAt: time.Now(),
	}

	err = p.imageRepo.Create(ctx, image)
	if err != nil {
		p.storage.DeleteImage(ctx, objectName)
		return nil, fmt.Errorf("ошибка сохранения изображения в БД: %w", err)
	}

	return image, nil
}

func (p *postService) DeleteImage(ctx context.Context, callerID, postID, imageID string) error {
	if callerID == "" {
		return apperrors.ErrUnauthorized
	}

	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if !policy.CanMutate(callerID, post) {
		return fmt.Errorf("удалять изображения может только автор поста: %w", apperrors.ErrForbidden)
	}

	image, err := p.imageRepo.GetByImageID(ctx, imageID)
	if err != nil {
		return err
	}

	// картинка должна принадлежать именно этому посту, иначе владелец
	// любого поста мог бы удалять чужие картинки через свой post_id
	if image.PostID != postID {
		return fmt.Errorf("изображение %s у поста %s: %w", imageID, postID, apperrors.ErrNotFound)
	}

	if objectName, ok := storage.ObjectNameFromURL(image.ImageURL); ok {
		if err := p.storage.DeleteImage(ctx, objectName); err != nil {
			fmt.Printf("Предупреждение: не удалось удалить из MinIO: %v\n", err)
		}
	}

	if err := p.imageRepo.Delete(ctx, imageID); err != nil {
		return fmt.Errorf("ошибка удаления из БД: %w", err)
	}

	return nil
}
