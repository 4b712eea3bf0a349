package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toppers-edu/admin-console-api/internal/models"
)

func TestOperatorRepositoryList(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOperatorRepository(db)
	rows := sqlmock.NewRows([]string{"id", "email", "name", "role", "student_id", "created_at"}).
		AddRow("op-2", "new@toppers.edu", "New Operator", "founder", nil, time.Now()).
		AddRow("op-1", "boss@toppers.edu", "Boss", "ceo", nil, time.Now().Add(-time.Hour))
	mock.ExpectQuery("SELECT id, email, name, role, student_id, created_at FROM operators ORDER BY created_at DESC").
		WillReturnRows(rows)

	operators, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, operators, 2)
	assert.Equal(t, models.RoleCEO, operators[1].Role)
}

func TestOperatorRepositoryExistsByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOperatorRepository(db)
	mock.ExpectQuery("SELECT 1 FROM operators WHERE email = \\$1").
		WithArgs("boss@toppers.edu").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))

	exists, err := repo.ExistsByEmail(context.Background(), "boss@toppers.edu")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestOperatorRepositoryExistsByEmailMissing(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOperatorRepository(db)
	mock.ExpectQuery("SELECT 1 FROM operators WHERE email = \\$1").
		WithArgs("nobody@toppers.edu").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByEmail(context.Background(), "nobody@toppers.edu")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestOperatorRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOperatorRepository(db)
	mock.ExpectExec("INSERT INTO operators").
		WithArgs(sqlmock.AnyArg(), "new@toppers.edu", "New Operator", "founder", nil, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	operator := &models.Operator{
		Email: "new@toppers.edu",
		Name:  "New Operator",
		Role:  models.RoleFounder,
	}
	require.NoError(t, repo.Create(context.Background(), operator))
	assert.NotEmpty(t, operator.ID)
}

func TestOperatorRepositoryFindAccountByEmail(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	repo := NewOperatorRepository(db)
	rows := sqlmock.NewRows([]string{"id", "email", "password_hash", "created_at"}).
		AddRow("acct-1", "boss@toppers.edu", "$2a$10$hash", time.Now())
	mock.ExpectQuery("SELECT id, email, password_hash, created_at FROM auth_accounts WHERE email = \\$1").
		WithArgs("boss@toppers.edu").
		WillReturnRows(rows)

	account, err := repo.FindAccountByEmail(context.Background(), "boss@toppers.edu")
	require.NoError(t, err)
	assert.Equal(t, "acct-1", account.ID)
}
