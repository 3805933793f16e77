package models

import (
	"time"
)

type User struct {
	ID           int64     `json:"id" db:"id"`
	Email        string    `json:"email" db:"email"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	Biography    string    `json:"biography" db:"biography"`
	AvatarURL    string    `json:"avatarUrl" db:"avatar_url"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
}

type Shader struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"userId" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Description string    `json:"description" db:"description"`
	Code        string    `json:"code" db:"code"`
	Visibility  bool      `json:"visibility" db:"visibility"`
	IDForked    *int64    `json:"idForked" db:"id_forked"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

type Like struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ShaderID  int64     `json:"shaderId" db:"shader_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

type Comment struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	ShaderID  int64     `json:"shaderId" db:"shader_id"`
	Text      string    `json:"text" db:"text"`
	Hidden    bool      `json:"hidden" db:"hidden"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// ShaderPreview - строка списка шейдеров с агрегатами
type ShaderPreview struct {
	Shader
	AuthorName   string `json:"authorName" db:"author_name"`
	LikeCount    int    `json:"likeCount" db:"like_count"`
	CommentCount int    `json:"commentCount" db:"comment_count"`
}

// CommentView - комментарий с именем автора
type CommentView struct {
	Comment
	AuthorName string `json:"authorName" db:"author_name"`
}

type ShaderDetail struct {
	Shader
	AuthorName string        `json:"authorName"`
	Liked      *bool         `json:"liked"`
	ForkedFrom *Shader       `json:"forkedFrom"`
	Comments   []CommentView `json:"comments"`
}
