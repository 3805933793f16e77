package service

import (
	"context"
	"io"

	"shaderhub/internal/models"
	"shaderhub/internal/repository"
	"shaderhub/internal/storage"
)

type Profile struct {
	ID        int64           `json:"id"`
	Email     string          `json:"email"`
	Name      string          `json:"name"`
	Biography string          `json:"biography"`
	AvatarURL string          `json:"avatarUrl"`
	CreatedAt string          `json:"createdAt"`
	Shaders   []models.Shader `json:"shaders"`
}

type ProfileService interface {
	GetProfile(ctx context.Context, caller Caller, userID int64) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int64, name, biography string) error
	UploadAvatar(ctx context.Context, userID int64, fileName string, file io.Reader, size int64) (string, error)
}

type profileService struct {
	userRepo   repository.UserRepository
	shaderRepo repository.ShaderRepository
	storage    storage.Storage
}

func NewProfileService(userRepo repository.UserRepository, shaderRepo repository.ShaderRepository, storage storage.Storage) ProfileService {
	return &profileService{
		userRepo:   userRepo,
		shaderRepo: shaderRepo,
		storage:    storage,
	}
}

// GetProfile отдаёт карточку пользователя и его шейдеры:
// публичные - всем, приватные - только самому владельцу
func (s *profileService) GetProfile(ctx context.Context, caller Caller, userID int64) (*Profile, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	includePrivate := caller.Authenticated && caller.UserID == userID

	shaders, err := s.shaderRepo.GetByUserID(ctx, userID, includePrivate)
	if err != nil {
		return nil, err
	}

	return &Profile{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Biography: user.Biography,
		AvatarURL: user.AvatarURL,
		CreatedAt: user.CreatedAt.Format("2006-01-02T15:04:05"),
		Shaders:   shaders,
	}, nil
}

func (s *profileService) UpdateProfile(ctx context.Context, userID int64, name, biography string) error {
	return s.userRepo.UpdateProfile(ctx, userID, name, biography)
}

// UploadAvatar кладёт файл в объектное хранилище и запоминает URL у пользователя
func (s *profileService) UploadAvatar(ctx context.Context, userID int64, fileName string, file io.Reader, size int64) (string, error) {
	objectName, avatarURL, err := s.storage.UploadAvatar(ctx, fileName, file, size)
	if err != nil {
		return "", err
	}

	err = s.userRepo.UpdateAvatar(ctx, userID, avatarURL)
	if err != nil {
		// запись в БД не удалась - подчищаем объект
		s.storage.DeleteAvatar(ctx, objectName)
		return "", err
	}

	return avatarURL, nil
}
