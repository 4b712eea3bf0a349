package models

import "time"

// QuizResult is a single recorded quiz attempt, joined with the student name
// for display.
type QuizResult struct {
	ID          string    `db:"id" json:"id"`
	StudentID   string    `db:"student_id" json:"student_id"`
	StudentName string    `db:"student_name" json:"student_name"`
	Subject     string    `db:"subject" json:"subject"`
	Score       int       `db:"score" json:"score"`
	Total       int       `db:"total" json:"total"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// QuizTotals aggregates correct answers against questions asked over a
// bounded recent sample of results.
type QuizTotals struct {
	Correct   int `db:"correct"`
	Questions int `db:"questions"`
}
