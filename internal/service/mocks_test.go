package service

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"

	"shaderhub/internal/models"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *models.User, password string) error {
	args := m.Called(ctx, user, password)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, userID int64) (*models.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) VerifyPassword(ctx context.Context, email, password string) (*models.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) UpdateProfile(ctx context.Context, userID int64, name, biography string) error {
	args := m.Called(ctx, userID, name, biography)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error {
	args := m.Called(ctx, userID, avatarURL)
	return args.Error(0)
}

type MockShaderRepository struct {
	mock.Mock
}

func (m *MockShaderRepository) Create(ctx context.Context, shader *models.Shader) error {
	args := m.Called(ctx, shader)
	if args.Error(0) == nil {
		shader.ID = 1
		now := time.Now()
		shader.CreatedAt = now
		shader.UpdatedAt = now
	}
	return args.Error(0)
}

func (m *MockShaderRepository) GetByID(ctx context.Context, shaderID int64) (*models.Shader, error) {
	args := m.Called(ctx, shaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Shader), args.Error(1)
}

func (m *MockShaderRepository) GetByUserID(ctx context.Context, userID int64, includePrivate bool) ([]models.Shader, error) {
	args := m.Called(ctx, userID, includePrivate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Shader), args.Error(1)
}

func (m *MockShaderRepository) ListPublic(ctx context.Context, sort string, limit, offset int) ([]models.ShaderPreview, error) {
	args := m.Called(ctx, sort, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ShaderPreview), args.Error(1)
}

func (m *MockShaderRepository) CountPublic(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockShaderRepository) Update(ctx context.Context, shader *models.Shader) error {
	args := m.Called(ctx, shader)
	return args.Error(0)
}

func (m *MockShaderRepository) Delete(ctx context.Context, shaderID int64) error {
	args := m.Called(ctx, shaderID)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Add(ctx context.Context, userID, shaderID int64) error {
	args := m.Called(ctx, userID, shaderID)
	return args.Error(0)
}

func (m *MockLikeRepository) Remove(ctx context.Context, userID, shaderID int64) error {
	args := m.Called(ctx, userID, shaderID)
	return args.Error(0)
}

func (m *MockLikeRepository) Exists(ctx context.Context, userID, shaderID int64) (bool, error) {
	args := m.Called(ctx, userID, shaderID)
	return args.Bool(0), args.Error(1)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	args := m.Called(ctx, comment)
	if args.Error(0) == nil {
		comment.ID = 1
		comment.CreatedAt = time.Now()
	}
	return args.Error(0)
}

func (m *MockCommentRepository) GetByShaderID(ctx context.Context, shaderID int64) ([]models.CommentView, error) {
	args := m.Called(ctx, shaderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.CommentView), args.Error(1)
}

func (m *MockCommentRepository) Hide(ctx context.Context, commentID int64) error {
	args := m.Called(ctx, commentID)
	return args.Error(0)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadAvatar(ctx context.Context, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteAvatar(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}
