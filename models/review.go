package models

import (
	"time"

	"gorm.io/gorm"
)

type Verdict string

const (
	VerdictApproved         Verdict = "approved"
	VerdictChangesRequested Verdict = "changes_requested"
	VerdictRejected         Verdict = "rejected"
)

// Review holds one reviewer's verdict on a paper. At most one row exists per
// (paper, reviewer) pair; resubmissions overwrite the existing row.
type Review struct {
	ID         uint           `json:"id" gorm:"primarykey"`
	PaperID    uint           `json:"paper_id" gorm:"not null;index"`
	Paper      *Paper         `json:"paper,omitempty" gorm:"foreignKey:PaperID"`
	ReviewerID uint           `json:"reviewer_id" gorm:"not null"`
	Reviewer   User           `json:"reviewer" gorm:"foreignKey:ReviewerID"`
	Verdict    Verdict        `json:"verdict" gorm:"default:'approved'"`
	Comments   string         `json:"comments" gorm:"type:text"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `json:"-" gorm:"index"`
}
