package models

import (
	"time"

	"gorm.io/gorm"
)

type PaperStatus string

const (
	StatusPending        PaperStatus = "PENDING"
	StatusInReview       PaperStatus = "IN_REVIEW"
	StatusNeedsRevisions PaperStatus = "NEEDS_REVISIONS"
	StatusAccepted       PaperStatus = "ACCEPTED"
	StatusRejected       PaperStatus = "REJECTED"
)

// PaperVersion is one entry in a paper's version history. Version numbers
// start at 1 and are strictly increasing.
type PaperVersion struct {
	Version int       `json:"version"`
	Link    string    `json:"link"`
	Date    time.Time `json:"date"`
}

type VersionHistory []PaperVersion

type Paper struct {
	ID                 uint           `json:"id" gorm:"primarykey"`
	Title              string         `json:"title" gorm:"not null"`
	Abstract           string         `json:"abstract" gorm:"type:text"`
	CurrentVersionLink string         `json:"current_version_link" gorm:"not null"`
	Status             PaperStatus    `json:"status" gorm:"default:'PENDING'"`
	VersionHistory     VersionHistory `json:"version_history" gorm:"serializer:json"`
	AuthorID           uint           `json:"author_id" gorm:"not null"`
	Author             User           `json:"author" gorm:"foreignKey:AuthorID"`
	ConferenceID       uint           `json:"conference_id" gorm:"not null"`
	Conference         *Conference    `json:"conference,omitempty" gorm:"foreignKey:ConferenceID"`
	Reviews            []Review       `json:"reviews,omitempty" gorm:"foreignKey:PaperID"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `json:"-" gorm:"index"`
}
