package test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"shaderhub/internal/models"
	"shaderhub/internal/service"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, req service.RegisterRequest) (*models.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.User, string, string, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, "", "", args.Error(3)
	}
	return args.Get(0).(*models.User), args.String(1), args.String(2), args.Error(3)
}

func (m *MockAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	args := m.Called(ctx, refreshToken)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ResolveCaller(tokenString string) service.Caller {
	args := m.Called(tokenString)
	return args.Get(0).(service.Caller)
}

func (m *MockAuthService) RequireCaller(ctx context.Context, tokenString string) (*models.User, error) {
	args := m.Called(ctx, tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MockShaderService struct {
	mock.Mock
}

func (m *MockShaderService) List(ctx context.Context, page int, sort string) ([]models.ShaderPreview, int, error) {
	args := m.Called(ctx, page, sort)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.ShaderPreview), args.Int(1), args.Error(2)
}

func (m *MockShaderService) Detail(ctx context.Context, caller service.Caller, shaderID int64) (*models.ShaderDetail, error) {
	args := m.Called(ctx, caller, shaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ShaderDetail), args.Error(1)
}

func (m *MockShaderService) Upsert(ctx context.Context, caller service.Caller, req service.ShaderInput) (*models.Shader, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shader), args.Error(1)
}

func (m *MockShaderService) Delete(ctx context.Context, caller service.Caller, shaderID int64) error {
	args := m.Called(ctx, caller, shaderID)
	return args.Error(0)
}

func (m *MockShaderService) Like(ctx context.Context, caller service.Caller, shaderID int64) error {
	args := m.Called(ctx, caller, shaderID)
	return args.Error(0)
}

func (m *MockShaderService) Unlike(ctx context.Context, caller service.Caller, shaderID int64) error {
	args := m.Called(ctx, caller, shaderID)
	return args.Error(0)
}

func (m *MockShaderService) AddComment(ctx context.Context, caller service.Caller, shaderID int64, text string) (*models.Comment, error) {
	args := m.Called(ctx, caller, shaderID, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Comment), args.Error(1)
}

func (m *MockShaderService) HideComment(ctx context.Context, caller service.Caller, commentID int64) error {
	args := m.Called(ctx, caller, commentID)
	return args.Error(0)
}

type MockProfileService struct {
	mock.Mock
}

func (m *MockProfileService) GetProfile(ctx context.Context, caller service.Caller, userID int64) (*service.Profile, error) {
	args := m.Called(ctx, caller, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Profile), args.Error(1)
}

func (m *MockProfileService) UpdateProfile(ctx context.Context, userID int64, name, biography string) error {
	args := m.Called(ctx, userID, name, biography)
	return args.Error(0)
}

func (m *MockProfileService) UploadAvatar(ctx context.Context, userID int64, fileName string, file io.Reader, size int64) (string, error) {
	args := m.Called(ctx, userID, fileName, file, size)
	return args.String(0), args.Error(1)
}
