package handlers

import (
	"encoding/json"
	"net/http"

	"shaderhub/internal/database"
)

type UpdateProfileRequest struct {
	Name      string `json:"name" validate:"required"`
	Biography string `json:"biography"`
}

func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r)
	if !ok {
		WriteError(w, "Неверный ID пользователя", http.StatusBadRequest)
		return
	}

	caller := h.Auth.ResolveCaller(cookieValue(r, AccessTokenCookie))

	profile, err := h.Profile.GetProfile(r.Context(), caller, userID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, profile, http.StatusOK)
}

func (h *Handlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	if err := h.Profile.UpdateProfile(r.Context(), caller.UserID, req.Name, req.Biography); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Профиль обновлен"}, http.StatusOK)
}

func (h *Handlers) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		WriteError(w, "Файл слишком большой", http.StatusRequestEntityTooLarge)
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		WriteError(w, "Файл avatar не найден в запросе", http.StatusBadRequest)
		return
	}
	defer file.Close()

	avatarURL, err := h.Profile.UploadAvatar(r.Context(), caller.UserID, header.Filename, file, header.Size)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"avatar_url": avatarURL}, http.StatusOK)
}

// HealthHandler проверяет живость БД
func (h *Handlers) HealthHandler(db *database.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			WriteError(w, "база данных недоступна", http.StatusServiceUnavailable)
			return
		}
		WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
	}
}
