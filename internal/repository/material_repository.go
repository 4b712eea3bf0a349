package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/toppers-edu/admin-console-api/internal/models"
)

// MaterialRepository handles persistence for leaf content items.
type MaterialRepository struct {
	db *sqlx.DB
}

// NewMaterialRepository creates a new repository instance.
func NewMaterialRepository(db *sqlx.DB) *MaterialRepository {
	return &MaterialRepository{db: db}
}

const materialColumns = `id, subject_id, folder_id, title, type, url, order_index, created_at`

// ListByFolder returns the materials of one sibling scope in display order.
// A nil folderID selects materials directly under the subject root.
func (r *MaterialRepository) ListByFolder(ctx context.Context, subjectID string, folderID *string) ([]models.Material, error) {
	var materials []models.Material
	if folderID == nil {
		query := fmt.Sprintf(`SELECT %s FROM materials WHERE subject_id = $1 AND folder_id IS NULL ORDER BY order_index`, materialColumns)
		if err := r.db.SelectContext(ctx, &materials, query, subjectID); err != nil {
			return nil, fmt.Errorf("list root materials: %w", err)
		}
		return materials, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM materials WHERE subject_id = $1 AND folder_id = $2 ORDER BY order_index`, materialColumns)
	if err := r.db.SelectContext(ctx, &materials, query, subjectID, *folderID); err != nil {
		return nil, fmt.Errorf("list materials: %w", err)
	}
	return materials, nil
}

// FindByID returns a material by id.
func (r *MaterialRepository) FindByID(ctx context.Context, id string) (*models.Material, error) {
	query := fmt.Sprintf(`SELECT %s FROM materials WHERE id = $1 LIMIT 1`, materialColumns)
	var material models.Material
	if err := r.db.GetContext(ctx, &material, query, id); err != nil {
		return nil, err
	}
	return &material, nil
}

// CountSiblings returns the size of one sibling scope; new materials append
// at this index.
func (r *MaterialRepository) CountSiblings(ctx context.Context, subjectID string, folderID *string) (int, error) {
	var count int
	if folderID == nil {
		if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM materials WHERE subject_id = $1 AND folder_id IS NULL`, subjectID); err != nil {
			return 0, fmt.Errorf("count root materials: %w", err)
		}
		return count, nil
	}

	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM materials WHERE subject_id = $1 AND folder_id = $2`, subjectID, *folderID); err != nil {
		return 0, fmt.Errorf("count materials: %w", err)
	}
	return count, nil
}

// Create persists a new material.
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) error {
	if material.ID == "" {
		material.ID = uuid.NewString()
	}
	if material.CreatedAt.IsZero() {
		material.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO materials (id, subject_id, folder_id, title, type, url, order_index, created_at)
		VALUES (:id, :subject_id, :folder_id, :title, :type, :url, :order_index, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, material); err != nil {
		return fmt.Errorf("create material: %w", err)
	}
	return nil
}

// Update modifies a material's title and url.
func (r *MaterialRepository) Update(ctx context.Context, material *models.Material) error {
	const query = `UPDATE materials SET title = :title, url = :url WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, material); err != nil {
		return fmt.Errorf("update material: %w", err)
	}
	return nil
}

// Delete removes a material record.
func (r *MaterialRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete material: %w", err)
	}
	return nil
}

// SwapOrder atomically exchanges order indices between two materials.
func (r *MaterialRepository) SwapOrder(ctx context.Context, idA string, orderA int, idB string, orderB int) error {
	return swapOrderIndexes(ctx, r.db, "materials", idA, orderA, idB, orderB)
}
