package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/toppers-edu/admin-console-api/internal/middleware"
	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type authServiceMock struct {
	loginResp *models.LoginResponse
	loginErr  error
	operator  *models.Operator
	theme     string
}

func (m *authServiceMock) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.loginResp, nil
}

func (m *authServiceMock) Session(ctx context.Context, claims *models.JWTClaims) (*models.Operator, error) {
	if m.operator == nil {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session not found")
	}
	return m.operator, nil
}

func (m *authServiceMock) Logout(ctx context.Context, claims *models.JWTClaims) error {
	return nil
}

func (m *authServiceMock) Theme(ctx context.Context, operatorID string) (string, error) {
	if m.theme == "" {
		return models.ThemeLight, nil
	}
	return m.theme, nil
}

func (m *authServiceMock) SetTheme(ctx context.Context, operatorID string, req models.ThemePreference) error {
	m.theme = req.Theme
	return nil
}

type statsInvalidatorMock struct {
	invalidations int
}

func (m *statsInvalidatorMock) InvalidateStats(ctx context.Context) {
	m.invalidations++
}

func TestAuthHandlerLoginRejectsMalformedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandlerLoginAccessDeniedPassesThrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{loginErr: appErrors.ErrAccessDenied}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.co","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req

	handler.Login(c)
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Contains(t, w.Body.String(), "ACCESS_DENIED")
}

func TestAuthHandlerSessionWithoutClaims(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/auth/session", nil)
	c.Request = req

	handler.Session(c)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandlerSessionReturnsOperator(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAuthHandler(&authServiceMock{operator: &models.Operator{ID: "op-1", Name: "Boss"}}, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodGet, "/auth/session", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{OperatorID: "op-1"})

	handler.Session(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Boss")
}

func TestAuthHandlerLogoutDropsCachedStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	stats := &statsInvalidatorMock{}
	handler := NewAuthHandler(&authServiceMock{}, stats)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPost, "/auth/logout", nil)
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{OperatorID: "op-1"})

	handler.Logout(c)
	c.Writer.WriteHeaderNow()
	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, 1, stats.invalidations)
}

func TestAuthHandlerSetTheme(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := &authServiceMock{}
	handler := NewAuthHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/auth/preferences/theme", strings.NewReader(`{"theme":"dark"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Set(middleware.ContextUserKey, &models.JWTClaims{OperatorID: "op-1"})

	handler.SetTheme(c)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, models.ThemeDark, svc.theme)
}
