package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"shaderhub/internal/apperrors"
	"shaderhub/internal/service"
)

// Имена http-only cookie с токенами
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func setTokenCookie(w http.ResponseWriter, name, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

func clearTokenCookie(w http.ResponseWriter, name string) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// cookieValue возвращает значение cookie или пустую строку
func cookieValue(r *http.Request, name string) string {
	cookie, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	// регистрация не выполняет вход: токены выдаёт только login
	_, err := h.Auth.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Пользователь создан"}, http.StatusCreated)
}

func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	_, accessToken, refreshToken, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	setTokenCookie(w, AccessTokenCookie, accessToken)
	setTokenCookie(w, RefreshTokenCookie, refreshToken)

	WriteJSON(w, map[string]string{"message": "Успешный вход"}, http.StatusOK)
}

// RefreshToken мятит новый access token по refresh cookie.
// Refresh cookie не перевыпускается
func (h *Handlers) RefreshToken(w http.ResponseWriter, r *http.Request) {
	refreshToken := cookieValue(r, RefreshTokenCookie)

	accessToken, err := h.Auth.Refresh(r.Context(), refreshToken)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	setTokenCookie(w, AccessTokenCookie, accessToken)

	WriteJSON(w, map[string]string{"message": "Токен обновлен"}, http.StatusOK)
}

// Logout чистит обе cookie. Идемпотентен, всегда успешен:
// отзыва токенов нет, ещё живой токен остаётся валидным до истечения
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	clearTokenCookie(w, AccessTokenCookie)
	clearTokenCookie(w, RefreshTokenCookie)

	WriteJSON(w, map[string]string{"message": "Успешный выход"}, http.StatusOK)
}

// GetCurrentUser терпим к анонимности: проблема с токеном деградирует
// в null. Всё прочее всплывает ошибкой - пользователь, удалённый после
// выпуска токена, и сбои хранилища не маскируются под анонимность
func (h *Handlers) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.Auth.RequireCaller(r.Context(), cookieValue(r, AccessTokenCookie))
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthenticated) ||
			errors.Is(err, apperrors.ErrInvalidToken) ||
			errors.Is(err, apperrors.ErrTokenExpired) {
			WriteJSON(w, nil, http.StatusOK)
			return
		}
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]interface{}{"id": user.ID, "name": user.Name}, http.StatusOK)
}

// requireUser разрешает вызывающего на пути, требующем аутентификации.
// Ошибка уже записана в ответ, когда второй результат false
func (h *Handlers) requireUser(w http.ResponseWriter, r *http.Request) (service.Caller, bool) {
	user, err := h.Auth.RequireCaller(r.Context(), cookieValue(r, AccessTokenCookie))
	if err != nil {
		WriteAppError(w, err)
		return service.Anonymous, false
	}

	return service.Caller{UserID: user.ID, Role: user.Role, Authenticated: true}, true
}
