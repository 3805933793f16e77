package service

import (
	"context"
	"errors"
	"fmt"

	"shaderhub/internal/apperrors"
	"shaderhub/internal/models"
	"shaderhub/internal/repository"
)

// PageSize - фиксированный размер страницы списка шейдеров
const PageSize = 12

// HiddenCommentPlaceholder подставляется вместо текста скрытого комментария
const HiddenCommentPlaceholder = "[комментарий скрыт]"

type ShaderInput struct {
	ID          *int64 `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Code        string `json:"code"`
	Visibility  bool   `json:"visibility"`
	IDForked    *int64 `json:"id_forked"`
}

type ShaderService interface {
	List(ctx context.Context, page int, sort string) ([]models.ShaderPreview, int, error)
	Detail(ctx context.Context, caller Caller, shaderID int64) (*models.ShaderDetail, error)
	Upsert(ctx context.Context, caller Caller, req ShaderInput) (*models.Shader, error)
	Delete(ctx context.Context, caller Caller, shaderID int64) error
	Like(ctx context.Context, caller Caller, shaderID int64) error
	Unlike(ctx context.Context, caller Caller, shaderID int64) error
	AddComment(ctx context.Context, caller Caller, shaderID int64, text string) (*models.Comment, error)
	HideComment(ctx context.Context, caller Caller, commentID int64) error
}

type shaderService struct {
	userRepo    repository.UserRepository
	shaderRepo  repository.ShaderRepository
	likeRepo    repository.LikeRepository
	commentRepo repository.CommentRepository
}

func NewShaderService(userRepo repository.UserRepository, shaderRepo repository.ShaderRepository, likeRepo repository.LikeRepository, commentRepo repository.CommentRepository) ShaderService {
	return &shaderService{
		userRepo:    userRepo,
		shaderRepo:  shaderRepo,
		likeRepo:    likeRepo,
		commentRepo: commentRepo,
	}
}

// List возвращает страницу публичных шейдеров и общее число страниц
func (s *shaderService) List(ctx context.Context, page int, sort string) ([]models.ShaderPreview, int, error) {
	if page < 1 {
		page = 1
	}

	offset := (page - 1) * PageSize

	previews, err := s.shaderRepo.ListPublic(ctx, sort, PageSize, offset)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.shaderRepo.CountPublic(ctx)
	if err != nil {
		return nil, 0, err
	}

	totalPages := (total + PageSize - 1) / PageSize

	return previews, totalPages, nil
}

// denyView: аноним получает "не найден", аутентифицированный
// не-владелец - "доступ запрещен"
func denyView(caller Caller, shaderID int64) error {
	if !caller.Authenticated {
		return fmt.Errorf("шейдер с ID %d %w", shaderID, apperrors.ErrNotFound)
	}
	return apperrors.ErrForbidden
}

// loadViewable загружает шейдер и применяет правило видимости
func (s *shaderService) loadViewable(ctx context.Context, caller Caller, shaderID int64) (*models.Shader, error) {
	shader, err := s.shaderRepo.GetByID(ctx, shaderID)
	if err != nil {
		return nil, err
	}

	if !CanView(caller, shader) {
		return nil, denyView(caller, shaderID)
	}

	return shader, nil
}

func (s *shaderService) Detail(ctx context.Context, caller Caller, shaderID int64) (*models.ShaderDetail, error) {
	shader, err := s.loadViewable(ctx, caller, shaderID)
	if err != nil {
		return nil, err
	}

	detail := &models.ShaderDetail{Shader: *shader}

	author, err := s.userRepo.GetUserByID(ctx, shader.UserID)
	if err != nil {
		return nil, err
	}
	detail.AuthorName = author.Name

	// liked: nil для анонима, иначе bool
	if caller.Authenticated {
		liked, err := s.likeRepo.Exists(ctx, caller.UserID, shaderID)
		if err != nil {
			return nil, err
		}
		detail.Liked = &liked
	}

	// один уровень родословной форка; висячая ссылка и родитель,
	// невидимый вызывающему, одинаково деградируют в nil
	if shader.IDForked != nil {
		parent, err := s.shaderRepo.GetByID(ctx, *shader.IDForked)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		if parent != nil && CanView(caller, parent) {
			detail.ForkedFrom = parent
		}
	}

	comments, err := s.commentRepo.GetByShaderID(ctx, shaderID)
	if err != nil {
		return nil, err
	}

	// текст скрытого комментария не покидает сервис,
	// наружу уходит только маркер
	for i := range comments {
		if comments[i].Hidden {
			comments[i].Text = HiddenCommentPlaceholder
		}
	}
	detail.Comments = comments

	return detail, nil
}

// Upsert: id == nil создаёт шейдер от имени вызывающего, иначе обновляет
// существующий. Обновление чужого шейдера запрещено - симметрично с Delete.
func (s *shaderService) Upsert(ctx context.Context, caller Caller, req ShaderInput) (*models.Shader, error) {
	if req.ID == nil {
		shader := &models.Shader{
			UserID:      caller.UserID,
			Title:       req.Title,
			Description: req.Description,
			Code:        req.Code,
			Visibility:  req.Visibility,
			IDForked:    req.IDForked,
		}

		err := s.shaderRepo.Create(ctx, shader)
		if err != nil {
			return nil, err
		}

		return shader, nil
	}

	shader, err := s.shaderRepo.GetByID(ctx, *req.ID)
	if err != nil {
		return nil, err
	}

	if !CanEdit(caller, shader) {
		return nil, apperrors.ErrForbidden
	}

	shader.Title = req.Title
	shader.Description = req.Description
	shader.Code = req.Code
	shader.Visibility = req.Visibility

	err = s.shaderRepo.Update(ctx, shader)
	if err != nil {
		return nil, err
	}

	return shader, nil
}

func (s *shaderService) Delete(ctx context.Context, caller Caller, shaderID int64) error {
	shader, err := s.shaderRepo.GetByID(ctx, shaderID)
	if err != nil {
		return err
	}

	if !CanEdit(caller, shader) {
		return apperrors.ErrForbidden
	}

	return s.shaderRepo.Delete(ctx, shaderID)
}

func (s *shaderService) Like(ctx context.Context, caller Caller, shaderID int64) error {
	_, err := s.loadViewable(ctx, caller, shaderID)
	if err != nil {
		return err
	}

	return s.likeRepo.Add(ctx, caller.UserID, shaderID)
}

func (s *shaderService) Unlike(ctx context.Context, caller Caller, shaderID int64) error {
	_, err := s.loadViewable(ctx, caller, shaderID)
	if err != nil {
		return err
	}

	return s.likeRepo.Remove(ctx, caller.UserID, shaderID)
}

func (s *shaderService) AddComment(ctx context.Context, caller Caller, shaderID int64, text string) (*models.Comment, error) {
	_, err := s.loadViewable(ctx, caller, shaderID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:   caller.UserID,
		ShaderID: shaderID,
		Text:     text,
	}

	err = s.commentRepo.Create(ctx, comment)
	if err != nil {
		return nil, err
	}

	return comment, nil
}

func (s *shaderService) HideComment(ctx context.Context, caller Caller, commentID int64) error {
	if caller.Role != "ADMIN" {
		return apperrors.ErrForbidden
	}

	return s.commentRepo.Hide(ctx, commentID)
}
