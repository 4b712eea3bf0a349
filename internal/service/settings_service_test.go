package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type mockSettingsRepo struct {
	settings models.MaintenanceSettings
	updates  int
}

func (m *mockSettingsRepo) Get(ctx context.Context) (*models.MaintenanceSettings, error) {
	s := m.settings
	return &s, nil
}

func (m *mockSettingsRepo) Update(ctx context.Context, settings *models.MaintenanceSettings) error {
	m.settings = *settings
	m.updates++
	return nil
}

func TestSettingsServiceStatusPassesThroughActiveMaintenance(t *testing.T) {
	future := time.Now().Add(2 * time.Hour)
	repo := &mockSettingsRepo{settings: models.MaintenanceSettings{
		ID:                     models.MaintenanceSettingsID,
		MaintenanceEnabled:     true,
		MaintenanceMessage:     "back soon",
		MaintenanceOpeningDate: &future,
	}}
	svc := NewSettingsService(repo, nil, nil)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.True(t, status.Effective)
	assert.Equal(t, 0, repo.updates)
}

func TestSettingsServiceStatusConvergesExpiredWindow(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	repo := &mockSettingsRepo{settings: models.MaintenanceSettings{
		ID:                     models.MaintenanceSettingsID,
		MaintenanceEnabled:     true,
		MaintenanceOpeningDate: &past,
	}}
	svc := NewSettingsService(repo, nil, nil)

	status, err := svc.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Effective)
	assert.Equal(t, 1, repo.updates)
	assert.False(t, repo.settings.MaintenanceEnabled)
	assert.Nil(t, repo.settings.MaintenanceOpeningDate)
}

func TestSettingsServiceToggleFlipsAndPersists(t *testing.T) {
	repo := &mockSettingsRepo{settings: models.MaintenanceSettings{ID: models.MaintenanceSettingsID}}
	svc := NewSettingsService(repo, nil, nil)

	settings, err := svc.Toggle(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.MaintenanceEnabled)
	assert.Equal(t, 1, repo.updates)

	settings, err = svc.Toggle(context.Background())
	require.NoError(t, err)
	assert.False(t, settings.MaintenanceEnabled)
	assert.Nil(t, settings.MaintenanceOpeningDate)
}

func TestSettingsServiceUpdateRejectsPastOpeningDate(t *testing.T) {
	repo := &mockSettingsRepo{settings: models.MaintenanceSettings{ID: models.MaintenanceSettingsID}}
	svc := NewSettingsService(repo, nil, nil)

	past := time.Now().Add(-time.Minute)
	_, err := svc.Update(context.Background(), UpdateMaintenanceRequest{Enabled: true, OpeningDate: &past})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
	assert.Equal(t, 0, repo.updates)
}

func TestSettingsServiceUpdateSavesConfiguration(t *testing.T) {
	repo := &mockSettingsRepo{settings: models.MaintenanceSettings{ID: models.MaintenanceSettingsID}}
	svc := NewSettingsService(repo, nil, nil)

	future := time.Now().Add(24 * time.Hour)
	settings, err := svc.Update(context.Background(), UpdateMaintenanceRequest{
		Enabled:     true,
		Message:     "scheduled upgrade",
		OpeningDate: &future,
	})
	require.NoError(t, err)
	assert.True(t, settings.MaintenanceEnabled)
	assert.Equal(t, "scheduled upgrade", settings.MaintenanceMessage)
	require.NotNil(t, settings.MaintenanceOpeningDate)
	assert.Equal(t, future.Unix(), settings.MaintenanceOpeningDate.Unix())
}

func TestSettingsServiceUpdateDisabledClearsOpeningDate(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	repo := &mockSettingsRepo{settings: models.MaintenanceSettings{
		ID:                     models.MaintenanceSettingsID,
		MaintenanceEnabled:     true,
		MaintenanceOpeningDate: &future,
	}}
	svc := NewSettingsService(repo, nil, nil)

	settings, err := svc.Update(context.Background(), UpdateMaintenanceRequest{Enabled: false, Message: "done"})
	require.NoError(t, err)
	assert.False(t, settings.MaintenanceEnabled)
	assert.Nil(t, settings.MaintenanceOpeningDate)
}
