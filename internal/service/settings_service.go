package service

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type settingsRepository interface {
	Get(ctx context.Context) (*models.MaintenanceSettings, error)
	Update(ctx context.Context, settings *models.MaintenanceSettings) error
}

// UpdateMaintenanceRequest carries the full maintenance configuration saved
// from the settings form.
type UpdateMaintenanceRequest struct {
	Enabled     bool       `json:"enabled"`
	Message     string     `json:"message"`
	OpeningDate *time.Time `json:"opening_date"`
}

// SettingsService manages the platform maintenance singleton. Maintenance
// with a past opening date reads as reopened; the stored flag is converged
// on first read after the date passes.
type SettingsService struct {
	repo      settingsRepository
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewSettingsService constructs a SettingsService instance.
func NewSettingsService(repo settingsRepository, validate *validator.Validate, logger *zap.Logger) *SettingsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &SettingsService{repo: repo, validator: validate, logger: logger, now: time.Now}
}

// Status returns the effective maintenance state.
func (s *SettingsService) Status(ctx context.Context) (*models.MaintenanceStatus, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}

	effective := settings.MaintenanceEnabled
	if effective && settings.MaintenanceOpeningDate != nil && !s.now().Before(*settings.MaintenanceOpeningDate) {
		effective = false
		settings.MaintenanceEnabled = false
		settings.MaintenanceOpeningDate = nil
		if err := s.repo.Update(ctx, settings); err != nil {
			s.logger.Warn("failed to converge expired maintenance window", zap.Error(err))
		}
	}

	return &models.MaintenanceStatus{MaintenanceSettings: *settings, Effective: effective}, nil
}

// Toggle flips the maintenance flag and persists it immediately.
func (s *SettingsService) Toggle(ctx context.Context) (*models.MaintenanceSettings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}

	settings.MaintenanceEnabled = !settings.MaintenanceEnabled
	if !settings.MaintenanceEnabled {
		settings.MaintenanceOpeningDate = nil
	}
	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save settings")
	}

	s.logger.Info("maintenance mode toggled", zap.Bool("enabled", settings.MaintenanceEnabled))
	return settings, nil
}

// Update saves the full maintenance configuration. An opening date in the
// past is rejected.
func (s *SettingsService) Update(ctx context.Context, req UpdateMaintenanceRequest) (*models.MaintenanceSettings, error) {
	if req.OpeningDate != nil && req.OpeningDate.Before(s.now()) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "opening date must be in the future")
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load settings")
	}

	settings.MaintenanceEnabled = req.Enabled
	settings.MaintenanceMessage = req.Message
	settings.MaintenanceOpeningDate = req.OpeningDate
	if !req.Enabled {
		settings.MaintenanceOpeningDate = nil
	}

	if err := s.repo.Update(ctx, settings); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save settings")
	}

	s.logger.Info("maintenance settings updated",
		zap.Bool("enabled", settings.MaintenanceEnabled),
		zap.Timep("opening_date", settings.MaintenanceOpeningDate))
	return settings, nil
}
