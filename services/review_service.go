package services

import (
	"errors"

	"confhub-api/models"
	"confhub-api/repositories"

	"gorm.io/gorm"
)

// ReviewService is plain pass-through CRUD over review rows. Verdict-driven
// status recomputation only happens through PaperService.SubmitOrUpdateReview;
// editing a review here does not touch the paper, matching the original API.
type ReviewService interface {
	GetReviews() ([]models.Review, error)
	GetReview(id uint) (*models.Review, error)
	UpdateReview(id uint, req models.UpdateReviewRequest) (*models.Review, error)
	DeleteReview(id uint) error
}

type reviewService struct {
	reviewRepo repositories.ReviewRepository
}

func NewReviewService(reviewRepo repositories.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

func (s *reviewService) GetReviews() ([]models.Review, error) {
	return s.reviewRepo.GetAll()
}

func (s *reviewService) GetReview(id uint) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) UpdateReview(id uint, req models.UpdateReviewRequest) (*models.Review, error) {
	review, err := s.reviewRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Verdict != "" {
		review.Verdict = req.Verdict
	}
	if req.Comments != "" {
		review.Comments = req.Comments
	}

	if err := s.reviewRepo.Update(review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) DeleteReview(id uint) error {
	if _, err := s.reviewRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.reviewRepo.Delete(id)
}
