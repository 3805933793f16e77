package handlers

import (
	"github.com/go-playground/validator/v10"

	"shaderhub/internal/config"
	"shaderhub/internal/service"
)

type Handlers struct {
	Auth     service.AuthService
	Shader   service.ShaderService
	Profile  service.ProfileService
	Cfg      *config.Config
	Validate *validator.Validate
}

func NewHandlers(services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		Auth:     services.Auth,
		Shader:   services.Shader,
		Profile:  services.Profile,
		Cfg:      config,
		Validate: validator.New(),
	}
}
