package service

import (
	"shaderhub/internal/config"
	"shaderhub/internal/repository"
	"shaderhub/internal/storage"
	"shaderhub/internal/token"
)

type Service struct {
	Auth    AuthService
	Shader  ShaderService
	Profile ProfileService
}

func NewService(rep *repository.Repository, codec *token.Codec, cfg *config.Config, storage storage.Storage) *Service {
	return &Service{
		Auth:    NewAuthService(rep.User, codec, cfg),
		Shader:  NewShaderService(rep.User, rep.Shader, rep.Like, rep.Comment),
		Profile: NewProfileService(rep.User, rep.Shader, storage),
	}
}
