package models

import "time"

// DashboardStats is the aggregate snapshot shown on the console landing
// page. Accuracy is a percentage computed over a bounded recent sample of
// quiz attempts.
type DashboardStats struct {
	TotalStudents     int          `json:"total_students"`
	TotalSubjects     int          `json:"total_subjects"`
	TotalQuizAttempts int          `json:"total_quiz_attempts"`
	AverageAccuracy   float64      `json:"average_accuracy"`
	RecentResults     []QuizResult `json:"recent_results"`
	GeneratedAt       time.Time    `json:"generated_at"`
}
