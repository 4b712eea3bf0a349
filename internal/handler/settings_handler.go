package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/toppers-edu/admin-console-api/internal/models"
	"github.com/toppers-edu/admin-console-api/internal/service"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
	"github.com/toppers-edu/admin-console-api/pkg/response"
)

type settingsService interface {
	Status(ctx context.Context) (*models.MaintenanceStatus, error)
	Toggle(ctx context.Context) (*models.MaintenanceSettings, error)
	Update(ctx context.Context, req service.UpdateMaintenanceRequest) (*models.MaintenanceSettings, error)
}

// SettingsHandler exposes the platform maintenance settings.
type SettingsHandler struct {
	service settingsService
}

// NewSettingsHandler builds a new handler.
func NewSettingsHandler(service settingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Get godoc
// @Summary Maintenance settings with effective state
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /settings/maintenance [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status, nil)
}

// Toggle godoc
// @Summary Flip maintenance mode
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope
// @Router /settings/maintenance/toggle [post]
func (h *SettingsHandler) Toggle(c *gin.Context) {
	settings, err := h.service.Toggle(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}

// Update godoc
// @Summary Save maintenance configuration
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payload body service.UpdateMaintenanceRequest true "Maintenance payload"
// @Success 200 {object} response.Envelope
// @Router /settings/maintenance [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req service.UpdateMaintenanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid maintenance payload"))
		return
	}
	settings, err := h.service.Update(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, settings, nil)
}

// Status godoc
// @Summary Public platform status probe
// @Tags Settings
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /status [get]
func (h *SettingsHandler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"maintenance": status.Effective,
		"message":     status.MaintenanceMessage,
	}, nil)
}
