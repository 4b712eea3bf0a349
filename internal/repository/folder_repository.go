package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/toppers-edu/admin-console-api/internal/models"
)

// FolderRepository handles persistence for content-tree folders.
type FolderRepository struct {
	db *sqlx.DB
}

// NewFolderRepository creates a new repository instance.
func NewFolderRepository(db *sqlx.DB) *FolderRepository {
	return &FolderRepository{db: db}
}

const folderColumns = `id, subject_id, parent_id, name, order_index, created_at`

// ListByParent returns the folders of one sibling scope in display order.
// A nil parentID selects root-level folders of the subject.
func (r *FolderRepository) ListByParent(ctx context.Context, subjectID string, parentID *string) ([]models.Folder, error) {
	var folders []models.Folder
	if parentID == nil {
		query := fmt.Sprintf(`SELECT %s FROM folders WHERE subject_id = $1 AND parent_id IS NULL ORDER BY order_index`, folderColumns)
		if err := r.db.SelectContext(ctx, &folders, query, subjectID); err != nil {
			return nil, fmt.Errorf("list root folders: %w", err)
		}
		return folders, nil
	}

	query := fmt.Sprintf(`SELECT %s FROM folders WHERE subject_id = $1 AND parent_id = $2 ORDER BY order_index`, folderColumns)
	if err := r.db.SelectContext(ctx, &folders, query, subjectID, *parentID); err != nil {
		return nil, fmt.Errorf("list folders: %w", err)
	}
	return folders, nil
}

// FindByID returns a folder by id.
func (r *FolderRepository) FindByID(ctx context.Context, id string) (*models.Folder, error) {
	query := fmt.Sprintf(`SELECT %s FROM folders WHERE id = $1 LIMIT 1`, folderColumns)
	var folder models.Folder
	if err := r.db.GetContext(ctx, &folder, query, id); err != nil {
		return nil, err
	}
	return &folder, nil
}

// CountSiblings returns the size of one sibling scope; new folders append at
// this index.
func (r *FolderRepository) CountSiblings(ctx context.Context, subjectID string, parentID *string) (int, error) {
	var count int
	if parentID == nil {
		if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM folders WHERE subject_id = $1 AND parent_id IS NULL`, subjectID); err != nil {
			return 0, fmt.Errorf("count root folders: %w", err)
		}
		return count, nil
	}

	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM folders WHERE subject_id = $1 AND parent_id = $2`, subjectID, *parentID); err != nil {
		return 0, fmt.Errorf("count folders: %w", err)
	}
	return count, nil
}

// Create persists a new folder.
func (r *FolderRepository) Create(ctx context.Context, folder *models.Folder) error {
	if folder.ID == "" {
		folder.ID = uuid.NewString()
	}
	if folder.CreatedAt.IsZero() {
		folder.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO folders (id, subject_id, parent_id, name, order_index, created_at)
		VALUES (:id, :subject_id, :parent_id, :name, :order_index, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, folder); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}
	return nil
}

// Rename updates a folder's name.
func (r *FolderRepository) Rename(ctx context.Context, id, name string) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE folders SET name = $1 WHERE id = $2`, name, id); err != nil {
		return fmt.Errorf("rename folder: %w", err)
	}
	return nil
}

// UpdateParent reparents a folder and places it at the given order index.
func (r *FolderRepository) UpdateParent(ctx context.Context, id string, parentID *string, orderIndex int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE folders SET parent_id = $1, order_index = $2 WHERE id = $3`, parentID, orderIndex, id); err != nil {
		return fmt.Errorf("move folder: %w", err)
	}
	return nil
}

// Delete removes a folder record. Child rows are cleaned up by the store's
// cascading foreign keys, not by the editor.
func (r *FolderRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM folders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete folder: %w", err)
	}
	return nil
}

// SwapOrder atomically exchanges order indices between two folders.
func (r *FolderRepository) SwapOrder(ctx context.Context, idA string, orderA int, idB string, orderB int) error {
	return swapOrderIndexes(ctx, r.db, "folders", idA, orderA, idB, orderB)
}
