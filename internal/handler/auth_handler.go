package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
	"github.com/toppers-edu/admin-console-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error)
	Session(ctx context.Context, claims *models.JWTClaims) (*models.Operator, error)
	Logout(ctx context.Context, claims *models.JWTClaims) error
	Theme(ctx context.Context, operatorID string) (string, error)
	SetTheme(ctx context.Context, operatorID string, req models.ThemePreference) error
}

type statsInvalidator interface {
	InvalidateStats(ctx context.Context)
}

// AuthHandler exposes sign-in, session and preference endpoints.
type AuthHandler struct {
	service authService
	stats   statsInvalidator
}

// NewAuthHandler builds a new handler. stats may be nil when no dashboard
// cache is wired.
func NewAuthHandler(service authService, stats statsInvalidator) *AuthHandler {
	return &AuthHandler{service: service, stats: stats}
}

// Login godoc
// @Summary Operator sign-in
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}
	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

// Session godoc
// @Summary Current operator session
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	operator, err := h.service.Session(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, operator, nil)
}

// Logout godoc
// @Summary Revoke the current session
// @Tags Auth
// @Security BearerAuth
// @Success 204
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	if err := h.service.Logout(c.Request.Context(), claims); err != nil {
		response.Error(c, err)
		return
	}
	if h.stats != nil {
		h.stats.InvalidateStats(c.Request.Context())
	}
	response.NoContent(c)
}

// GetTheme godoc
// @Summary Get theme preference
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /auth/preferences/theme [get]
func (h *AuthHandler) GetTheme(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	theme, err := h.service.Theme(c.Request.Context(), claims.OperatorID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, models.ThemePreference{Theme: theme}, nil)
}

// SetTheme godoc
// @Summary Update theme preference
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body models.ThemePreference true "Theme"
// @Success 200 {object} response.Envelope
// @Router /auth/preferences/theme [put]
func (h *AuthHandler) SetTheme(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	var req models.ThemePreference
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid theme payload"))
		return
	}
	if err := h.service.SetTheme(c.Request.Context(), claims.OperatorID, req); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, req, nil)
}
