package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"shaderhub/internal/repository"
	"shaderhub/internal/service"
)

type CommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// pathID извлекает числовой {id} из пути
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

func (h *Handlers) ListShaders(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		parsed, err := strconv.Atoi(pageStr)
		if err != nil || parsed < 1 {
			WriteError(w, "Неверное значение page", http.StatusBadRequest)
			return
		}
		page = parsed
	}

	sort := r.URL.Query().Get("sort")
	switch sort {
	case "":
		sort = repository.SortNewest
	case repository.SortNewest, repository.SortLiked, repository.SortCommented:
	default:
		WriteError(w, "Неверное значение sort", http.StatusBadRequest)
		return
	}

	previews, totalPages, err := h.Shader.List(r.Context(), page, sort)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	// число страниц уходит заголовком, чтобы клиент отрисовал пагинацию
	w.Header().Set("X-Total-Pages", strconv.Itoa(totalPages))
	WriteJSON(w, previews, http.StatusOK)
}

func (h *Handlers) GetShader(w http.ResponseWriter, r *http.Request) {
	shaderID, ok := pathID(r)
	if !ok {
		WriteError(w, "Неверный ID шейдера", http.StatusBadRequest)
		return
	}

	// чтение терпимо к анонимности
	caller := h.Auth.ResolveCaller(cookieValue(r, AccessTokenCookie))

	detail, err := h.Shader.Detail(r.Context(), caller, shaderID)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, detail, http.StatusOK)
}

// UpsertShader: id == null создаёт, id != null обновляет
func (h *Handlers) UpsertShader(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	var req service.ShaderInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if req.Title == "" || req.Code == "" {
		WriteError(w, "Поля title и code обязательны", http.StatusBadRequest)
		return
	}

	shader, err := h.Shader.Upsert(r.Context(), caller, req)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	status := http.StatusOK
	if req.ID == nil {
		status = http.StatusCreated
	}
	WriteJSON(w, shader, status)
}

func (h *Handlers) DeleteShader(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	shaderID, okID := pathID(r)
	if !okID {
		WriteError(w, "Неверный ID шейдера", http.StatusBadRequest)
		return
	}

	if err := h.Shader.Delete(r.Context(), caller, shaderID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Шейдер удален"}, http.StatusOK)
}

func (h *Handlers) LikeShader(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	shaderID, okID := pathID(r)
	if !okID {
		WriteError(w, "Неверный ID шейдера", http.StatusBadRequest)
		return
	}

	if err := h.Shader.Like(r.Context(), caller, shaderID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Лайк поставлен"}, http.StatusOK)
}

func (h *Handlers) UnlikeShader(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	shaderID, okID := pathID(r)
	if !okID {
		WriteError(w, "Неверный ID шейдера", http.StatusBadRequest)
		return
	}

	if err := h.Shader.Unlike(r.Context(), caller, shaderID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Лайк снят"}, http.StatusOK)
}

func (h *Handlers) AddComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	shaderID, okID := pathID(r)
	if !okID {
		WriteError(w, "Неверный ID шейдера", http.StatusBadRequest)
		return
	}

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, "Неверный формат запроса", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		WriteError(w, "Неверные данные", http.StatusBadRequest)
		return
	}

	comment, err := h.Shader.AddComment(r.Context(), caller, shaderID, req.Text)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, comment, http.StatusCreated)
}

func (h *Handlers) HideComment(w http.ResponseWriter, r *http.Request) {
	caller, ok := h.requireUser(w, r)
	if !ok {
		return
	}

	commentID, okID := pathID(r)
	if !okID {
		WriteError(w, "Неверный ID комментария", http.StatusBadRequest)
		return
	}

	if err := h.Shader.HideComment(r.Context(), caller, commentID); err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, map[string]string{"message": "Комментарий скрыт"}, http.StatusOK)
}
