package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type mockOperatorRepo struct {
	operators []models.Operator
	accounts  []models.AuthAccount
}

func (m *mockOperatorRepo) List(ctx context.Context) ([]models.Operator, error) {
	return m.operators, nil
}

func (m *mockOperatorRepo) FindByID(ctx context.Context, id string) (*models.Operator, error) {
	for i := range m.operators {
		if m.operators[i].ID == id {
			op := m.operators[i]
			return &op, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *mockOperatorRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, op := range m.operators {
		if op.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (m *mockOperatorRepo) Create(ctx context.Context, operator *models.Operator) error {
	if operator.ID == "" {
		operator.ID = "op-new"
	}
	m.operators = append(m.operators, *operator)
	return nil
}

func (m *mockOperatorRepo) Delete(ctx context.Context, id string) error {
	for i := range m.operators {
		if m.operators[i].ID == id {
			m.operators = append(m.operators[:i], m.operators[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

func (m *mockOperatorRepo) CreateAccount(ctx context.Context, account *models.AuthAccount) error {
	if account.ID == "" {
		account.ID = "acct-new"
	}
	m.accounts = append(m.accounts, *account)
	return nil
}

func TestOperatorServiceCreateDefaultsRoleAndLowercasesEmail(t *testing.T) {
	repo := &mockOperatorRepo{}
	svc := NewOperatorService(repo, nil, nil)

	created, err := svc.Create(context.Background(), CreateOperatorRequest{
		Email:    "New.Person@Toppers.EDU",
		Name:     "New Person",
		Password: "supersecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "new.person@toppers.edu", created.Email)
	assert.Equal(t, models.RoleFounder, created.Role)

	require.Len(t, repo.accounts, 1)
	assert.Equal(t, "new.person@toppers.edu", repo.accounts[0].Email)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.accounts[0].PasswordHash), []byte("supersecret")))
}

func TestOperatorServiceCreateRejectsDuplicateEmail(t *testing.T) {
	repo := &mockOperatorRepo{operators: []models.Operator{{ID: "op-1", Email: "boss@toppers.edu"}}}
	svc := NewOperatorService(repo, nil, nil)

	_, err := svc.Create(context.Background(), CreateOperatorRequest{
		Email:    "BOSS@toppers.edu",
		Name:     "Duplicate",
		Password: "supersecret",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrConflict.Code, appErrors.FromError(err).Code)
}

func TestOperatorServiceCreateRejectsShortPassword(t *testing.T) {
	svc := NewOperatorService(&mockOperatorRepo{}, nil, nil)

	_, err := svc.Create(context.Background(), CreateOperatorRequest{
		Email:    "new@toppers.edu",
		Name:     "New",
		Password: "short",
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestOperatorServiceDeleteRejectsSelf(t *testing.T) {
	repo := &mockOperatorRepo{operators: []models.Operator{{ID: "op-1", Email: "boss@toppers.edu"}}}
	svc := NewOperatorService(repo, nil, nil)

	err := svc.Delete(context.Background(), "op-1", "op-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrForbidden.Code, appErrors.FromError(err).Code)
	assert.Len(t, repo.operators, 1, "self delete must leave the registry untouched")
}

func TestOperatorServiceDeleteOther(t *testing.T) {
	repo := &mockOperatorRepo{operators: []models.Operator{
		{ID: "op-1", Email: "boss@toppers.edu"},
		{ID: "op-2", Email: "other@toppers.edu"},
	}}
	svc := NewOperatorService(repo, nil, nil)

	require.NoError(t, svc.Delete(context.Background(), "op-2", "op-1"))
	assert.Len(t, repo.operators, 1)
}

func TestOperatorServiceDeleteMissing(t *testing.T) {
	svc := NewOperatorService(&mockOperatorRepo{}, nil, nil)

	err := svc.Delete(context.Background(), "ghost", "op-1")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}
