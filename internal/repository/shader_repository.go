package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"shaderhub/internal/apperrors"
	"shaderhub/internal/models"
)

type shaderRepository struct {
	db *sqlx.DB
}

func NewShaderRepository(db *sqlx.DB) ShaderRepository {
	return &shaderRepository{db: db}
}

func (r *shaderRepository) Create(ctx context.Context, shader *models.Shader) error {
	now := time.Now()
	shader.CreatedAt = now
	shader.UpdatedAt = now

	query := `
		INSERT INTO shaders (user_id, title, description, code, visibility, id_forked, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRowxContext(ctx, query,
		shader.UserID,
		shader.Title,
		shader.Description,
		shader.Code,
		shader.Visibility,
		shader.IDForked,
		shader.CreatedAt,
		shader.UpdatedAt,
	).Scan(&shader.ID)
	if err != nil {
		return fmt.Errorf("ошибка при создании шейдера: %w", err)
	}

	return nil
}

func (r *shaderRepository) GetByID(ctx context.Context, shaderID int64) (*models.Shader, error) {
	var shader models.Shader

	query := `SELECT * FROM shaders WHERE id = $1`

	err := r.db.GetContext(ctx, &shader, query, shaderID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("шейдер с ID %d %w", shaderID, apperrors.ErrNotFound)
		}
		return nil, fmt.Errorf("ошибка при получении шейдера: %w", err)
	}

	return &shader, nil
}

func (r *shaderRepository) GetByUserID(ctx context.Context, userID int64, includePrivate bool) ([]models.Shader, error) {
	query := `SELECT * FROM shaders WHERE user_id = $1 ORDER BY created_at DESC`
	if !includePrivate {
		query = `SELECT * FROM shaders WHERE user_id = $1 AND visibility = TRUE ORDER BY created_at DESC`
	}

	var shaders []models.Shader
	err := r.db.SelectContext(ctx, &shaders, query, userID)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении шейдеров пользователя: %w", err)
	}

	return shaders, nil
}

// orderClause переводит вариант сортировки в ORDER BY.
// Только значения из белого списка, tie-break по id для стабильного порядка.
func orderClause(sort string) string {
	switch sort {
	case SortLiked:
		return "like_count DESC, s.id DESC"
	case SortCommented:
		return "comment_count DESC, s.id DESC"
	default:
		return "s.created_at DESC, s.id DESC"
	}
}

func (r *shaderRepository) ListPublic(ctx context.Context, sort string, limit, offset int) ([]models.ShaderPreview, error) {
	query := fmt.Sprintf(`
		SELECT s.id, s.user_id, s.title, s.description, s.code, s.visibility, s.id_forked,
		       s.created_at, s.updated_at,
		       u.name AS author_name,
		       COUNT(DISTINCT l.id) AS like_count,
		       COUNT(DISTINCT c.id) AS comment_count
		FROM shaders s
		JOIN users u ON u.id = s.user_id
		LEFT JOIN likes l ON l.shader_id = s.id
		LEFT JOIN comments c ON c.shader_id = s.id
		WHERE s.visibility = TRUE
		GROUP BY s.id, u.name
		ORDER BY %s
		LIMIT $1 OFFSET $2
	`, orderClause(sort))

	var previews []models.ShaderPreview
	err := r.db.SelectContext(ctx, &previews, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка шейдеров: %w", err)
	}

	return previews, nil
}

func (r *shaderRepository) CountPublic(ctx context.Context) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM shaders WHERE visibility = TRUE`

	err := r.db.GetContext(ctx, &count, query)
	if err != nil {
		return 0, fmt.Errorf("ошибка при подсчёте шейдеров: %w", err)
	}

	return count, nil
}

// Update перезаписывает title/description/code/visibility и обновляет
// только updated_at. Владелец и created_at неизменяемы.
func (r *shaderRepository) Update(ctx context.Context, shader *models.Shader) error {
	shader.UpdatedAt = time.Now()

	query := `
		UPDATE shaders SET
			title = $1,
			description = $2,
			code = $3,
			visibility = $4,
			updated_at = $5
		WHERE id = $6
	`

	result, err := r.db.ExecContext(ctx, query,
		shader.Title,
		shader.Description,
		shader.Code,
		shader.Visibility,
		shader.UpdatedAt,
		shader.ID,
	)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении шейдера: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("шейдер с ID %d %w", shader.ID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *shaderRepository) Delete(ctx context.Context, shaderID int64) error {
	query := `DELETE FROM shaders WHERE id = $1`

	result, err := r.db.ExecContext(ctx, query, shaderID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении шейдера: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("шейдер с ID %d %w", shaderID, apperrors.ErrNotFound)
	}

	return nil
}
