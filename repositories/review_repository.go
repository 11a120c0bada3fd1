package repositories

import (
	"confhub-api/models"

	"gorm.io/gorm"
)

type ReviewRepository interface {
	Create(review *models.Review) error
	GetByID(id uint) (*models.Review, error)
	GetAll() ([]models.Review, error)
	GetByPaperID(paperID uint) ([]models.Review, error)
	GetByPaperAndReviewer(paperID, reviewerID uint) (*models.Review, error)
	Update(review *models.Review) error
	Delete(id uint) error
	WithTx(tx *gorm.DB) ReviewRepository
}

type reviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(review *models.Review) error {
	return r.db.Create(review).Error
}

func (r *reviewRepository) GetByID(id uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Preload("Reviewer").
		Preload("Paper").
		First(&review, id).Error
	return &review, err
}

func (r *reviewRepository) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Preload("Reviewer").
		Preload("Paper").
		Order("id").
		Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetByPaperID(paperID uint) ([]models.Review, error) {
	var reviews []models.Review
	err := r.db.Where("paper_id = ?", paperID).Find(&reviews).Error
	return reviews, err
}

func (r *reviewRepository) GetByPaperAndReviewer(paperID, reviewerID uint) (*models.Review, error) {
	var review models.Review
	err := r.db.Where("paper_id = ? AND reviewer_id = ?", paperID, reviewerID).
		First(&review).Error
	return &review, err
}

func (r *reviewRepository) Update(review *models.Review) error {
	return r.db.Save(review).Error
}

func (r *reviewRepository) Delete(id uint) error {
	return r.db.Delete(&models.Review{}, id).Error
}

func (r *reviewRepository) WithTx(tx *gorm.DB) ReviewRepository {
	return &reviewRepository{db: tx}
}
