package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"shaderhub/internal/apperrors"
	"shaderhub/internal/models"
)

type commentRepository struct {
	db *sqlx.DB
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}

	query := `
		INSERT INTO comments (user_id, shader_id, text, hidden, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		comment.UserID,
		comment.ShaderID,
		comment.Text,
		comment.Hidden,
		comment.CreatedAt,
	).Scan(&comment.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании комментария: %w", err)
	}

	return nil
}

// GetByShaderID возвращает комментарии от новых к старым.
// Текст скрытых комментариев отдаётся как есть: заглушку подставляет сервис.
func (r *commentRepository) GetByShaderID(ctx context.Context, shaderID int64) ([]models.CommentView, error) {
	query := `
		SELECT c.id, c.user_id, c.shader_id, c.text, c.hidden, c.created_at,
		       u.name AS author_name
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.shader_id = $1
		ORDER BY c.created_at DESC, c.id DESC
	`

	var comments []models.CommentView
	err := r.db.SelectContext(ctx, &comments, query, shaderID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении комментариев: %w", err)
	}

	return comments, nil
}

func (r *commentRepository) Hide(ctx context.Context, commentID int64) error {
	query := `UPDATE comments SET hidden = TRUE WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("ошибка при скрытии комментария: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("комментарий с ID %d %w", commentID, apperrors.ErrNotFound)
	}

	return nil
}
