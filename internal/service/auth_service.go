package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shaderhub/internal/apperrors"
	"shaderhub/internal/config"
	"shaderhub/internal/models"
	"shaderhub/internal/repository"
	"shaderhub/internal/token"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, email, password string) (*models.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, error)
	ResolveCaller(tokenString string) Caller
	RequireCaller(ctx context.Context, tokenString string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	codec    *token.Codec
	cfg      *config.Config
}

func NewAuthService(userRepo repository.UserRepository, codec *token.Codec, cfg *config.Config) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
		cfg:      cfg,
	}
}

// Register создает пользователя с ролью USER и пустым профилем.
// Автоматического входа нет: клиент логинится отдельным запросом.
func (s *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	existingUser, err := s.userRepo.GetUserByEmail(ctx, req.Email)
	if err == nil && existingUser != nil {
		return nil, fmt.Errorf("пользователь с email %s %w", req.Email, apperrors.ErrAlreadyExists)
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	user := &models.User{
		Email:     req.Email,
		Name:      req.Name,
		Role:      "USER",
		Biography: "",
		AvatarURL: "",
		CreatedAt: time.Now().UTC(),
	}

	err = s.userRepo.CreateUser(ctx, user, req.Password)
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	user, err := s.userRepo.VerifyPassword(ctx, email, password)
	if err != nil {
		return nil, "", "", err
	}

	accessToken, err := s.codec.Issue(user.ID, token.KindAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	refreshToken, err := s.codec.Issue(user.ID, token.KindRefresh, s.cfg.RefreshTokenTTL)
	if err != nil {
		return nil, "", "", fmt.Errorf("ошибка генерации refresh token: %w", err)
	}

	return user, accessToken, refreshToken, nil
}

// Refresh выпускает новый access token по действующему refresh token.
// Сам refresh token не ротируется
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", apperrors.ErrMissingToken
	}

	claims, err := s.codec.Verify(refreshToken)
	if err != nil {
		return "", err
	}

	if claims.Kind != token.KindRefresh {
		return "", apperrors.ErrInvalidToken
	}

	// Пользователь мог быть удалён после выпуска токена
	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return "", err
	}

	accessToken, err := s.codec.Issue(user.ID, token.KindAccess, s.cfg.AccessTokenTTL)
	if err != nil {
		return "", fmt.Errorf("ошибка генерации access token: %w", err)
	}

	return accessToken, nil
}

// ResolveCaller для путей, терпимых к анонимности: любая проблема
// с токеном деградирует в Anonymous, а не в ошибку
func (s *authService) ResolveCaller(tokenString string) Caller {
	if tokenString == "" {
		return Anonymous
	}

	claims, err := s.codec.Verify(tokenString)
	if err != nil {
		return Anonymous
	}

	// refresh token не даёт прав на операции с контентом
	if claims.Kind != token.KindAccess {
		return Anonymous
	}

	return Caller{UserID: claims.UserID, Authenticated: true}
}

// RequireCaller для путей, требующих аутентификации: те же проверки,
// но каждая проблема всплывает отдельной ошибкой таксономии
func (s *authService) RequireCaller(ctx context.Context, tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, apperrors.ErrUnauthenticated
	}

	claims, err := s.codec.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.Kind != token.KindAccess {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.GetUserByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}

	return user, nil
}
