package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/toppers-edu/admin-console-api/internal/models"
)

// OperatorRepository handles persistence for operator accounts and their
// identity-provider credentials.
type OperatorRepository struct {
	db *sqlx.DB
}

// NewOperatorRepository creates a new repository instance.
func NewOperatorRepository(db *sqlx.DB) *OperatorRepository {
	return &OperatorRepository{db: db}
}

// List returns all operators, newest first.
func (r *OperatorRepository) List(ctx context.Context) ([]models.Operator, error) {
	const query = `SELECT id, email, name, role, student_id, created_at FROM operators ORDER BY created_at DESC`
	var operators []models.Operator
	if err := r.db.SelectContext(ctx, &operators, query); err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	return operators, nil
}

// FindByID returns an operator by id.
func (r *OperatorRepository) FindByID(ctx context.Context, id string) (*models.Operator, error) {
	const query = `SELECT id, email, name, role, student_id, created_at FROM operators WHERE id = $1 LIMIT 1`
	var operator models.Operator
	if err := r.db.GetContext(ctx, &operator, query, id); err != nil {
		return nil, err
	}
	return &operator, nil
}

// FindByEmail returns an operator by its lowercased email.
func (r *OperatorRepository) FindByEmail(ctx context.Context, email string) (*models.Operator, error) {
	const query = `SELECT id, email, name, role, student_id, created_at FROM operators WHERE email = $1 LIMIT 1`
	var operator models.Operator
	if err := r.db.GetContext(ctx, &operator, query, email); err != nil {
		return nil, err
	}
	return &operator, nil
}

// ExistsByEmail checks uniqueness of an operator email.
func (r *OperatorRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT 1 FROM operators WHERE email = $1 LIMIT 1`
	var exists int
	if err := r.db.GetContext(ctx, &exists, query, email); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("check operator email: %w", err)
	}
	return true, nil
}

// Create persists a new operator record.
func (r *OperatorRepository) Create(ctx context.Context, operator *models.Operator) error {
	if operator.ID == "" {
		operator.ID = uuid.NewString()
	}
	if operator.CreatedAt.IsZero() {
		operator.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO operators (id, email, name, role, student_id, created_at) VALUES (:id, :email, :name, :role, :student_id, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, operator); err != nil {
		return fmt.Errorf("create operator: %w", err)
	}
	return nil
}

// Delete removes an operator record.
func (r *OperatorRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM operators WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete operator: %w", err)
	}
	return nil
}

// FindAccountByEmail returns the identity-provider credential row for an
// email address.
func (r *OperatorRepository) FindAccountByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	const query = `SELECT id, email, password_hash, created_at FROM auth_accounts WHERE email = $1 LIMIT 1`
	var account models.AuthAccount
	if err := r.db.GetContext(ctx, &account, query, email); err != nil {
		return nil, err
	}
	return &account, nil
}

// CreateAccount persists a new identity-provider credential row.
func (r *OperatorRepository) CreateAccount(ctx context.Context, account *models.AuthAccount) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now().UTC()
	}

	const query = `INSERT INTO auth_accounts (id, email, password_hash, created_at) VALUES (:id, :email, :password_hash, :created_at)`
	if _, err := r.db.NamedExecContext(ctx, query, account); err != nil {
		return fmt.Errorf("create auth account: %w", err)
	}
	return nil
}
