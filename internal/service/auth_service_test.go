package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type mockAuthRepo struct {
	account        *models.AuthAccount
	operator       *models.Operator
	accountErr     error
	operatorErr    error
	operatorByIDFn func(id string) (*models.Operator, error)
}

func (m *mockAuthRepo) FindAccountByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	if m.accountErr != nil {
		return nil, m.accountErr
	}
	return m.account, nil
}

func (m *mockAuthRepo) FindByEmail(ctx context.Context, email string) (*models.Operator, error) {
	if m.operatorErr != nil {
		return nil, m.operatorErr
	}
	return m.operator, nil
}

func (m *mockAuthRepo) FindByID(ctx context.Context, id string) (*models.Operator, error) {
	if m.operatorByIDFn != nil {
		return m.operatorByIDFn(id)
	}
	return m.operator, nil
}

type mockSessionStore struct {
	sessions map[string]*models.Operator
	themes   map[string]string
	saveErr  error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: map[string]*models.Operator{}, themes: map[string]string{}}
}

func (m *mockSessionStore) SaveSession(ctx context.Context, tokenID string, operator *models.Operator, ttl time.Duration) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.sessions[tokenID] = operator
	return nil
}

func (m *mockSessionStore) GetSession(ctx context.Context, tokenID string) (*models.Operator, error) {
	op, ok := m.sessions[tokenID]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session not found")
	}
	return op, nil
}

func (m *mockSessionStore) DeleteSession(ctx context.Context, tokenID string) error {
	delete(m.sessions, tokenID)
	return nil
}

func (m *mockSessionStore) SetTheme(ctx context.Context, operatorID, theme string) error {
	m.themes[operatorID] = theme
	return nil
}

func (m *mockSessionStore) GetTheme(ctx context.Context, operatorID string) (string, error) {
	return m.themes[operatorID], nil
}

func authTestConfig() AuthConfig {
	return AuthConfig{TokenSecret: "test-secret", TokenExpiry: time.Hour, Issuer: "admin-console"}
}

func hashPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestAuthServiceLoginSuccess(t *testing.T) {
	repo := &mockAuthRepo{
		account:  &models.AuthAccount{ID: "acct-1", Email: "boss@toppers.edu", PasswordHash: hashPassword(t, "secret123")},
		operator: &models.Operator{ID: "op-1", Email: "boss@toppers.edu", Name: "Boss", Role: models.RoleCEO},
	}
	sessions := newMockSessionStore()
	svc := NewAuthService(repo, sessions, nil, nil, authTestConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "Boss@Toppers.edu", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "op-1", resp.Operator.ID)
	assert.Len(t, sessions.sessions, 1)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "op-1", claims.OperatorID)
	assert.Equal(t, models.RoleCEO, claims.Role)
}

func TestAuthServiceLoginWrongPassword(t *testing.T) {
	repo := &mockAuthRepo{
		account:  &models.AuthAccount{ID: "acct-1", Email: "boss@toppers.edu", PasswordHash: hashPassword(t, "secret123")},
		operator: &models.Operator{ID: "op-1", Email: "boss@toppers.edu"},
	}
	sessions := newMockSessionStore()
	svc := NewAuthService(repo, sessions, nil, nil, authTestConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "boss@toppers.edu", Password: "wrong"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErr.Code)
	assert.Empty(t, sessions.sessions)
}

func TestAuthServiceLoginWithoutOperatorRecord(t *testing.T) {
	repo := &mockAuthRepo{
		account:     &models.AuthAccount{ID: "acct-1", Email: "student@toppers.edu", PasswordHash: hashPassword(t, "secret123")},
		operatorErr: sql.ErrNoRows,
	}
	sessions := newMockSessionStore()
	svc := NewAuthService(repo, sessions, nil, nil, authTestConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "student@toppers.edu", Password: "secret123"})
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrAccessDenied.Code, appErr.Code)
	assert.Empty(t, sessions.sessions, "no session may exist for a non-operator account")
}

func TestAuthServiceLoginUnknownAccount(t *testing.T) {
	repo := &mockAuthRepo{accountErr: sql.ErrNoRows}
	svc := NewAuthService(repo, newMockSessionStore(), nil, nil, authTestConfig())

	_, err := svc.Login(context.Background(), models.LoginRequest{Email: "ghost@toppers.edu", Password: "whatever"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrInvalidCredentials.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceLogoutRevokesSession(t *testing.T) {
	repo := &mockAuthRepo{
		account:  &models.AuthAccount{ID: "acct-1", Email: "boss@toppers.edu", PasswordHash: hashPassword(t, "secret123")},
		operator: &models.Operator{ID: "op-1", Email: "boss@toppers.edu", Role: models.RoleOwner},
	}
	sessions := newMockSessionStore()
	svc := NewAuthService(repo, sessions, nil, nil, authTestConfig())

	resp, err := svc.Login(context.Background(), models.LoginRequest{Email: "boss@toppers.edu", Password: "secret123"})
	require.NoError(t, err)

	claims, err := svc.ValidateToken(resp.AccessToken)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), claims))
	assert.Empty(t, sessions.sessions)

	_, err = svc.Session(context.Background(), claims)
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceValidateTokenRejectsTampered(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, newMockSessionStore(), nil, nil, authTestConfig())

	_, err := svc.ValidateToken("not-a-token")
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrUnauthorized.Code, appErrors.FromError(err).Code)
}

func TestAuthServiceThemeDefaultsToLight(t *testing.T) {
	sessions := newMockSessionStore()
	svc := NewAuthService(&mockAuthRepo{}, sessions, nil, nil, authTestConfig())

	theme, err := svc.Theme(context.Background(), "op-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeLight, theme)

	require.NoError(t, svc.SetTheme(context.Background(), "op-1", models.ThemePreference{Theme: models.ThemeDark}))
	theme, err = svc.Theme(context.Background(), "op-1")
	require.NoError(t, err)
	assert.Equal(t, models.ThemeDark, theme)
}

func TestAuthServiceSetThemeRejectsUnknownValue(t *testing.T) {
	svc := NewAuthService(&mockAuthRepo{}, newMockSessionStore(), nil, nil, authTestConfig())

	err := svc.SetTheme(context.Background(), "op-1", models.ThemePreference{Theme: "sepia"})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}
