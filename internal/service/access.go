package service

import (
	"shaderhub/internal/models"
)

// Caller - разрешённая личность текущего запроса.
// Нулевое значение означает анонимного вызывающего.
type Caller struct {
	UserID        int64
	Role          string
	Authenticated bool
}

var Anonymous = Caller{}

// CanView: публичный шейдер видят все, приватный - только владелец
func CanView(caller Caller, shader *models.Shader) bool {
	if shader.Visibility {
		return true
	}
	return caller.Authenticated && caller.UserID == shader.UserID
}

// CanEdit покрывает обновление и удаление. Видимость здесь не играет роли:
// правами распоряжается только владелец
func CanEdit(caller Caller, shader *models.Shader) bool {
	return caller.Authenticated && caller.UserID == shader.UserID
}
