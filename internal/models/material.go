package models

import "time"

// MaterialType identifies the kind of content a material references.
type MaterialType string

const (
	MaterialPDF   MaterialType = "pdf"
	MaterialImage MaterialType = "image"
	MaterialVideo MaterialType = "video"
)

// Valid reports whether the type is one of the supported kinds.
func (t MaterialType) Valid() bool {
	switch t {
	case MaterialPDF, MaterialImage, MaterialVideo:
		return true
	}
	return false
}

// Material is a leaf content item. A nil FolderID places it directly under
// the subject root.
type Material struct {
	ID         string       `db:"id" json:"id"`
	SubjectID  string       `db:"subject_id" json:"subject_id"`
	FolderID   *string      `db:"folder_id" json:"folder_id,omitempty"`
	Title      string       `db:"title" json:"title"`
	Type       MaterialType `db:"type" json:"type"`
	URL        string       `db:"url" json:"url"`
	OrderIndex int          `db:"order_index" json:"order_index"`
	CreatedAt  time.Time    `db:"created_at" json:"created_at"`
}
