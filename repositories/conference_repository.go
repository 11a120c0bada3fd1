package repositories

import (
	"confhub-api/models"

	"gorm.io/gorm"
)

type ConferenceRepository interface {
	Create(conference *models.Conference) error
	GetByID(id uint) (*models.Conference, error)
	GetAll() ([]models.Conference, error)
	Update(conference *models.Conference) error
	Delete(id uint) error
	SetReviewers(conference *models.Conference, reviewers []models.User) error
	GetReviewers(conferenceID uint) ([]models.User, error)
}

type conferenceRepository struct {
	db *gorm.DB
}

func NewConferenceRepository(db *gorm.DB) ConferenceRepository {
	return &conferenceRepository{db: db}
}

func (r *conferenceRepository) Create(conference *models.Conference) error {
	return r.db.Create(conference).Error
}

func (r *conferenceRepository) GetByID(id uint) (*models.Conference, error) {
	var conference models.Conference
	err := r.db.Preload("Organizer").
		Preload("Reviewers").
		First(&conference, id).Error
	return &conference, err
}

func (r *conferenceRepository) GetAll() ([]models.Conference, error) {
	var conferences []models.Conference
	err := r.db.Preload("Organizer").
		Preload("Reviewers").
		Order("date").
		Find(&conferences).Error
	return conferences, err
}

func (r *conferenceRepository) Update(conference *models.Conference) error {
	return r.db.Save(conference).Error
}

func (r *conferenceRepository) Delete(id uint) error {
	return r.db.Delete(&models.Conference{}, id).Error
}

func (r *conferenceRepository) SetReviewers(conference *models.Conference, reviewers []models.User) error {
	return r.db.Model(conference).Association("Reviewers").Replace(reviewers)
}

func (r *conferenceRepository) GetReviewers(conferenceID uint) ([]models.User, error) {
	var reviewers []models.User
	err := r.db.Model(&models.Conference{ID: conferenceID}).
		Association("Reviewers").
		Find(&reviewers)
	return reviewers, err
}
