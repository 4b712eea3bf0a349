package models

import "time"

// Folder is a nestable grouping node inside a subject's content tree. A nil
// ParentID places the folder directly under the subject root.
type Folder struct {
	ID         string    `db:"id" json:"id"`
	SubjectID  string    `db:"subject_id" json:"subject_id"`
	ParentID   *string   `db:"parent_id" json:"parent_id,omitempty"`
	Name       string    `db:"name" json:"name"`
	OrderIndex int       `db:"order_index" json:"order_index"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}
