package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

type likeRepository struct {
	db *sqlx.DB
}

func NewLikeRepository(db *sqlx.DB) LikeRepository {
	return &likeRepository{db: db}
}

// Add идемпотентен: повторный лайк той же пары (user, shader)
// гасится уникальным ограничением, не ошибкой
func (r *likeRepository) Add(ctx context.Context, userID, shaderID int64) error {
	query := `
		INSERT INTO likes (user_id, shader_id, created_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (user_id, shader_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, userID, shaderID)
	if err != nil {
		return fmt.Errorf("ошибка при добавлении лайка: %w", err)
	}

	return nil
}

func (r *likeRepository) Remove(ctx context.Context, userID, shaderID int64) error {
	query := `DELETE FROM likes WHERE user_id = $1 AND shader_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, shaderID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении лайка: %w", err)
	}

	return nil
}

func (r *likeRepository) Exists(ctx context.Context, userID, shaderID int64) (bool, error) {
	var count int

	query := `SELECT COUNT(*) FROM likes WHERE user_id = $1 AND shader_id = $2`

	err := r.db.GetContext(ctx, &count, query, userID, shaderID)
	if err != nil {
		return false, fmt.Errorf("ошибка при проверке лайка: %w", err)
	}

	return count > 0, nil
}
