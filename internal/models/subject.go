package models

import (
	"time"

	"github.com/lib/pq"
)

// SubjectCategory splits subjects into the compulsory and elective tracks.
type SubjectCategory string

const (
	CategoryCore       SubjectCategory = "Core"
	CategoryAdditional SubjectCategory = "Additional"
)

// Class labels recognised by the content editor. Senior classes require a
// stream tag on Core subjects.
var (
	KnownClasses  = []string{"IX", "X", "XI", "XII", "XII+"}
	SeniorClasses = map[string]bool{"XI": true, "XII": true, "XII+": true}
)

// Subject is the root of a content tree.
type Subject struct {
	ID            string          `db:"id" json:"id"`
	Name          string          `db:"name" json:"name"`
	Code          string          `db:"code" json:"code"`
	Category      SubjectCategory `db:"category" json:"category"`
	TargetClasses pq.StringArray  `db:"target_classes" json:"target_classes"`
	TargetStreams pq.StringArray  `db:"target_streams" json:"target_streams"`
	TargetExams   pq.StringArray  `db:"target_exams" json:"target_exams"`
	IconURL       string          `db:"icon_url" json:"icon_url"`
	OrderIndex    int             `db:"order_index" json:"order_index"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
}

// HasSeniorClass reports whether any target class requires stream tagging.
func (s *Subject) HasSeniorClass() bool {
	for _, c := range s.TargetClasses {
		if SeniorClasses[c] {
			return true
		}
	}
	return false
}
