package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

type mockStatsRepo struct {
	students int
	subjects int
	attempts int
	recent   []models.QuizResult
	totals   models.QuizTotals
	calls    int
}

func (m *mockStatsRepo) CountStudents(ctx context.Context) (int, error) {
	m.calls++
	return m.students, nil
}

func (m *mockStatsRepo) CountSubjects(ctx context.Context) (int, error) {
	return m.subjects, nil
}

func (m *mockStatsRepo) CountQuizResults(ctx context.Context) (int, error) {
	return m.attempts, nil
}

func (m *mockStatsRepo) RecentResults(ctx context.Context, limit int) ([]models.QuizResult, error) {
	if limit < len(m.recent) {
		return m.recent[:limit], nil
	}
	return m.recent, nil
}

func (m *mockStatsRepo) AccuracyTotals(ctx context.Context, sampleSize int) (models.QuizTotals, error) {
	return m.totals, nil
}

type memoryCacheRepo struct {
	values map[string][]byte
}

func (m *memoryCacheRepo) Get(ctx context.Context, key string, dest interface{}) error {
	raw, ok := m.values[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCacheRepo) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if m.values == nil {
		m.values = map[string][]byte{}
	}
	m.values[key] = raw
	return nil
}

func (m *memoryCacheRepo) DeleteByPattern(ctx context.Context, pattern string) error {
	m.values = map[string][]byte{}
	return nil
}

func TestDashboardServiceStatsComputesAccuracy(t *testing.T) {
	repo := &mockStatsRepo{
		students: 120,
		subjects: 8,
		attempts: 512,
		recent: []models.QuizResult{
			{ID: "qr-1", StudentName: "Alice", Score: 8, Total: 10},
		},
		totals: models.QuizTotals{Correct: 150, Questions: 200},
	}
	svc := NewDashboardService(repo, nil, nil, DashboardServiceConfig{})

	stats, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	assert.Equal(t, 120, stats.TotalStudents)
	assert.Equal(t, 8, stats.TotalSubjects)
	assert.Equal(t, 512, stats.TotalQuizAttempts)
	assert.InDelta(t, 75.0, stats.AverageAccuracy, 0.01)
	require.Len(t, stats.RecentResults, 1)
}

func TestDashboardServiceStatsEmptySampleReadsZero(t *testing.T) {
	repo := &mockStatsRepo{}
	svc := NewDashboardService(repo, nil, nil, DashboardServiceConfig{})

	stats, _, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Zero(t, stats.AverageAccuracy)
}

func TestDashboardServiceStatsUsesCacheOnSecondRead(t *testing.T) {
	repo := &mockStatsRepo{students: 5, totals: models.QuizTotals{Correct: 1, Questions: 2}}
	cache := NewCacheService(&memoryCacheRepo{}, nil, time.Minute, nil, true)
	svc := NewDashboardService(repo, cache, nil, DashboardServiceConfig{})

	_, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
	firstCalls := repo.calls

	stats, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.True(t, cached)
	assert.Equal(t, firstCalls, repo.calls, "cached read must not hit the repository")
	assert.Equal(t, 5, stats.TotalStudents)
}

func TestDashboardServiceInvalidateForcesRecompute(t *testing.T) {
	repo := &mockStatsRepo{students: 5}
	cache := NewCacheService(&memoryCacheRepo{}, nil, time.Minute, nil, true)
	svc := NewDashboardService(repo, cache, nil, DashboardServiceConfig{})

	_, _, err := svc.Stats(context.Background())
	require.NoError(t, err)

	svc.InvalidateStats(context.Background())

	_, cached, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.False(t, cached)
}
