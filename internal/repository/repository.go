package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"shaderhub/internal/models"
)

// Варианты сортировки списка шейдеров
const (
	SortNewest    = "Newest"
	SortLiked     = "Liked"
	SortCommented = "Commented"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User, password string) error
	GetUserByID(ctx context.Context, userID int64) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	VerifyPassword(ctx context.Context, email, password string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, name, biography string) error
	UpdateAvatar(ctx context.Context, userID int64, avatarURL string) error
}

type ShaderRepository interface {
	Create(ctx context.Context, shader *models.Shader) error
	GetByID(ctx context.Context, shaderID int64) (*models.Shader, error)
	GetByUserID(ctx context.Context, userID int64, includePrivate bool) ([]models.Shader, error)
	ListPublic(ctx context.Context, sort string, limit, offset int) ([]models.ShaderPreview, error)
	CountPublic(ctx context.Context) (int, error)
	Update(ctx context.Context, shader *models.Shader) error
	Delete(ctx context.Context, shaderID int64) error
}

type LikeRepository interface {
	Add(ctx context.Context, userID, shaderID int64) error
	Remove(ctx context.Context, userID, shaderID int64) error
	Exists(ctx context.Context, userID, shaderID int64) (bool, error)
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByShaderID(ctx context.Context, shaderID int64) ([]models.CommentView, error)
	Hide(ctx context.Context, commentID int64) error
}

type Repository struct {
	User    UserRepository
	Shader  ShaderRepository
	Like    LikeRepository
	Comment CommentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Shader:  NewShaderRepository(db),
		Like:    NewLikeRepository(db),
		Comment: NewCommentRepository(db),
	}
}
