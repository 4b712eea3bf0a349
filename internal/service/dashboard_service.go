package service

import (
	"context"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/toppers-edu/admin-console-api/internal/models"
	appErrors "github.com/toppers-edu/admin-console-api/pkg/errors"
)

const dashboardStatsCacheKey = "dashboard:stats"

type dashboardStatsRepository interface {
	CountStudents(ctx context.Context) (int, error)
	CountSubjects(ctx context.Context) (int, error)
	CountQuizResults(ctx context.Context) (int, error)
	RecentResults(ctx context.Context, limit int) ([]models.QuizResult, error)
	AccuracyTotals(ctx context.Context, sampleSize int) (models.QuizTotals, error)
}

// DashboardServiceConfig tunes dashboard behaviour.
type DashboardServiceConfig struct {
	CacheTTL           time.Duration
	RecentResultsLimit int
	AccuracySampleSize int
}

// DashboardService composes the aggregate stats shown on the console
// landing page.
type DashboardService struct {
	repo   dashboardStatsRepository
	cache  *CacheService
	logger *zap.Logger
	now    func() time.Time
	cfg    DashboardServiceConfig
}

// NewDashboardService constructs a DashboardService with sane defaults.
func NewDashboardService(repo dashboardStatsRepository, cache *CacheService, logger *zap.Logger, cfg DashboardServiceConfig) *DashboardService {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	if cfg.RecentResultsLimit <= 0 {
		cfg.RecentResultsLimit = 10
	}
	if cfg.AccuracySampleSize <= 0 {
		cfg.AccuracySampleSize = 200
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{repo: repo, cache: cache, logger: logger, now: time.Now, cfg: cfg}
}

// Stats returns the dashboard snapshot and indicates cache utilisation.
func (s *DashboardService) Stats(ctx context.Context) (*models.DashboardStats, bool, error) {
	if s.cache.Enabled() {
		var cached models.DashboardStats
		if hit, err := s.cache.Get(ctx, dashboardStatsCacheKey, &cached); err == nil && hit {
			return &cached, true, nil
		}
	}

	students, err := s.repo.CountStudents(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count students")
	}
	subjects, err := s.repo.CountSubjects(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count subjects")
	}
	attempts, err := s.repo.CountQuizResults(ctx)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to count quiz attempts")
	}
	recent, err := s.repo.RecentResults(ctx, s.cfg.RecentResultsLimit)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load recent results")
	}
	totals, err := s.repo.AccuracyTotals(ctx, s.cfg.AccuracySampleSize)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to compute accuracy")
	}

	stats := &models.DashboardStats{
		TotalStudents:     students,
		TotalSubjects:     subjects,
		TotalQuizAttempts: attempts,
		AverageAccuracy:   accuracyPercent(totals),
		RecentResults:     recent,
		GeneratedAt:       s.now().UTC(),
	}

	if err := s.cache.Set(ctx, dashboardStatsCacheKey, stats, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("failed to cache dashboard stats", zap.Error(err))
	}

	return stats, false, nil
}

// InvalidateStats drops the cached snapshot so the next read recomputes it.
func (s *DashboardService) InvalidateStats(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardStatsCacheKey); err != nil {
		s.logger.Warn("failed to invalidate dashboard stats cache", zap.Error(err))
	}
}

// accuracyPercent converts the sampled totals into a percentage rounded to
// one decimal place. An empty sample reads as zero.
func accuracyPercent(totals models.QuizTotals) float64 {
	if totals.Questions <= 0 {
		return 0
	}
	pct := float64(totals.Correct) / float64(totals.Questions) * 100
	return math.Round(pct*10) / 10
}
