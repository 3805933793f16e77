package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"shaderhub/internal/apperrors"
	"shaderhub/internal/config"
	"shaderhub/internal/models"
	"shaderhub/internal/token"
)

func newAuthService(t *testing.T, userRepo *MockUserRepository) (AuthService, *token.Codec) {
	codec, err := token.NewCodec("test-secret-key", "HS256")
	require.NoError(t, err)

	cfg := &config.Config{
		AccessTokenTTL:  30 * time.Minute,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	return NewAuthService(userRepo, codec, cfg), codec
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешная регистрация с ролью USER", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, _ := newAuthService(t, userRepo)

		userRepo.On("GetUserByEmail", mock.Anything, "new@example.com").
			Return(nil, apperrors.ErrNotFound)
		userRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*models.User"), "password123").
			Return(nil)

		user, err := svc.Register(ctx, RegisterRequest{
			Name:     "Аня",
			Email:    "new@example.com",
			Password: "password123",
		})

		require.NoError(t, err)
		assert.Equal(t, "USER", user.Role)
		assert.Equal(t, "Аня", user.Name)
		assert.Empty(t, user.Biography)
		assert.Empty(t, user.AvatarURL)
		assert.False(t, user.CreatedAt.IsZero())

		userRepo.AssertExpectations(t)
	})

	t.Run("Занятый email даёт ErrAlreadyExists", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, _ := newAuthService(t, userRepo)

		userRepo.On("GetUserByEmail", mock.Anything, "taken@example.com").
			Return(&models.User{ID: 1, Email: "taken@example.com"}, nil)

		user, err := svc.Register(ctx, RegisterRequest{
			Name:     "Аня",
			Email:    "taken@example.com",
			Password: "password123",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrAlreadyExists)
		userRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("Успешный вход выдаёт пару токенов", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, codec := newAuthService(t, userRepo)

		userRepo.On("VerifyPassword", mock.Anything, "user@example.com", "password123").
			Return(&models.User{ID: 42, Email: "user@example.com"}, nil)

		user, accessToken, refreshToken, err := svc.Login(ctx, "user@example.com", "password123")

		require.NoError(t, err)
		assert.Equal(t, int64(42), user.ID)

		accessClaims, err := codec.Verify(accessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), accessClaims.UserID)
		assert.Equal(t, token.KindAccess, accessClaims.Kind)

		refreshClaims, err := codec.Verify(refreshToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), refreshClaims.UserID)
		assert.Equal(t, token.KindRefresh, refreshClaims.Kind)

		// refresh живёт заметно дольше access
		assert.True(t, refreshClaims.ExpireAt.After(accessClaims.ExpireAt))
	})

	t.Run("Неверный пароль пробрасывается", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, _ := newAuthService(t, userRepo)

		userRepo.On("VerifyPassword", mock.Anything, "user@example.com", "wrong").
			Return(nil, apperrors.ErrInvalidCredentials)

		_, _, _, err := svc.Login(ctx, "user@example.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Неизвестный email пробрасывается", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, _ := newAuthService(t, userRepo)

		userRepo.On("VerifyPassword", mock.Anything, "ghost@example.com", "password123").
			Return(nil, apperrors.ErrNotFound)

		_, _, _, err := svc.Login(ctx, "ghost@example.com", "password123")

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Отсутствующий токен", func(t *testing.T) {
		svc, _ := newAuthService(t, new(MockUserRepository))

		_, err := svc.Refresh(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrMissingToken)
	})

	t.Run("Мусор вместо токена", func(t *testing.T) {
		svc, _ := newAuthService(t, new(MockUserRepository))

		_, err := svc.Refresh(ctx, "garbage")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Просроченный refresh token", func(t *testing.T) {
		svc, codec := newAuthService(t, new(MockUserRepository))

		expired, err := codec.Issue(42, token.KindRefresh, -time.Minute)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, expired)

		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)
	})

	t.Run("Access token не годится для refresh", func(t *testing.T) {
		svc, codec := newAuthService(t, new(MockUserRepository))

		accessToken, err := codec.Issue(42, token.KindAccess, time.Minute)
		require.NoError(t, err)

		_, err = svc.Refresh(ctx, accessToken)

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Пользователь удалён после выпуска токена", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, codec := newAuthService(t, userRepo)

		refreshToken, err := codec.Issue(42, token.KindRefresh, time.Hour)
		require.NoError(t, err)

		userRepo.On("GetUserByID", mock.Anything, int64(42)).
			Return(nil, apperrors.ErrNotFound)

		_, err = svc.Refresh(ctx, refreshToken)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("Успешный refresh мятит только новый access token", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, codec := newAuthService(t, userRepo)

		refreshToken, err := codec.Issue(42, token.KindRefresh, time.Hour)
		require.NoError(t, err)

		userRepo.On("GetUserByID", mock.Anything, int64(42)).
			Return(&models.User{ID: 42}, nil)

		accessToken, err := svc.Refresh(ctx, refreshToken)

		require.NoError(t, err)
		claims, err := codec.Verify(accessToken)
		require.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.Equal(t, token.KindAccess, claims.Kind)
	})
}

func TestAuthService_ResolveCaller(t *testing.T) {
	t.Run("Валидный access token", func(t *testing.T) {
		svc, codec := newAuthService(t, new(MockUserRepository))

		accessToken, err := codec.Issue(42, token.KindAccess, time.Minute)
		require.NoError(t, err)

		caller := svc.ResolveCaller(accessToken)

		assert.True(t, caller.Authenticated)
		assert.Equal(t, int64(42), caller.UserID)
	})

	t.Run("Любая проблема с токеном деградирует в Anonymous", func(t *testing.T) {
		svc, codec := newAuthService(t, new(MockUserRepository))

		expired, err := codec.Issue(42, token.KindAccess, -time.Minute)
		require.NoError(t, err)

		refresh, err := codec.Issue(42, token.KindRefresh, time.Hour)
		require.NoError(t, err)

		for name, tokenString := range map[string]string{
			"пустой":      "",
			"мусор":       "garbage",
			"просрочен":   expired,
			"refresh":     refresh,
		} {
			caller := svc.ResolveCaller(tokenString)
			assert.Equal(t, Anonymous, caller, name)
		}
	})
}

func TestAuthService_RequireCaller(t *testing.T) {
	ctx := context.Background()

	t.Run("Каждая проблема - отдельная ошибка", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, codec := newAuthService(t, userRepo)

		_, err := svc.RequireCaller(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrUnauthenticated)

		_, err = svc.RequireCaller(ctx, "garbage")
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)

		expired, issueErr := codec.Issue(42, token.KindAccess, -time.Minute)
		require.NoError(t, issueErr)
		_, err = svc.RequireCaller(ctx, expired)
		assert.ErrorIs(t, err, apperrors.ErrTokenExpired)

		refresh, issueErr := codec.Issue(42, token.KindRefresh, time.Hour)
		require.NoError(t, issueErr)
		_, err = svc.RequireCaller(ctx, refresh)
		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
	})

	t.Run("Валидный токен загружает пользователя", func(t *testing.T) {
		userRepo := new(MockUserRepository)
		svc, codec := newAuthService(t, userRepo)

		accessToken, err := codec.Issue(42, token.KindAccess, time.Minute)
		require.NoError(t, err)

		userRepo.On("GetUserByID", mock.Anything, int64(42)).
			Return(&models.User{ID: 42, Name: "Аня", Role: "USER"}, nil)

		user, err := svc.RequireCaller(ctx, accessToken)

		require.NoError(t, err)
		assert.Equal(t, "Аня", user.Name)
	})
}
