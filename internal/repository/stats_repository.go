package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/toppers-edu/admin-console-api/internal/models"
)

// StatsRepository aggregates the counters and recent activity shown on the
// dashboard.
type StatsRepository struct {
	db *sqlx.DB
}

// NewStatsRepository creates a new repository instance.
func NewStatsRepository(db *sqlx.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountStudents returns the number of registered students.
func (r *StatsRepository) CountStudents(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM students"); err != nil {
		return 0, fmt.Errorf("count students: %w", err)
	}
	return count, nil
}

// CountSubjects returns the number of subjects in the content tree.
func (r *StatsRepository) CountSubjects(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM subjects"); err != nil {
		return 0, fmt.Errorf("count subjects: %w", err)
	}
	return count, nil
}

// CountQuizResults returns the number of recorded quiz attempts.
func (r *StatsRepository) CountQuizResults(ctx context.Context) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM quiz_results"); err != nil {
		return 0, fmt.Errorf("count quiz results: %w", err)
	}
	return count, nil
}

// RecentResults returns the latest quiz attempts joined with the student
// name, newest first.
func (r *StatsRepository) RecentResults(ctx context.Context, limit int) ([]models.QuizResult, error) {
	query := `
		SELECT qr.id, qr.student_id, s.name AS student_name, qr.subject, qr.score, qr.total, qr.created_at
		FROM quiz_results qr
		JOIN students s ON s.id = qr.student_id
		ORDER BY qr.created_at DESC
		LIMIT $1`

	var results []models.QuizResult
	if err := r.db.SelectContext(ctx, &results, query, limit); err != nil {
		return nil, fmt.Errorf("recent quiz results: %w", err)
	}
	return results, nil
}

// AccuracyTotals sums correct answers and question counts over the most
// recent attempts, bounded by sampleSize.
func (r *StatsRepository) AccuracyTotals(ctx context.Context, sampleSize int) (models.QuizTotals, error) {
	query := `
		SELECT COALESCE(SUM(score), 0) AS correct, COALESCE(SUM(total), 0) AS questions
		FROM (
			SELECT score, total FROM quiz_results ORDER BY created_at DESC LIMIT $1
		) recent`

	var totals models.QuizTotals
	if err := r.db.GetContext(ctx, &totals, query, sampleSize); err != nil {
		return models.QuizTotals{}, fmt.Errorf("accuracy totals: %w", err)
	}
	return totals, nil
}
