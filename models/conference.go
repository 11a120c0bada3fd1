package models

import (
	"time"

	"gorm.io/gorm"
)

type Conference struct {
	ID          uint           `json:"id" gorm:"primarykey"`
	Title       string         `json:"title" gorm:"not null"`
	Location    string         `json:"location" gorm:"not null"`
	Date        time.Time      `json:"date" gorm:"not null"`
	OrganizerID uint           `json:"organizer_id" gorm:"not null"`
	Organizer   User           `json:"organizer" gorm:"foreignKey:OrganizerID"`
	Reviewers   []User         `json:"reviewers" gorm:"many2many:conference_reviewers;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}
