package services

import (
	"errors"
	"math/rand"
	"time"

	"confhub-api/models"
	"confhub-api/repositories"

	"gorm.io/gorm"
)

const (
	// Every submitted paper gets exactly this many reviewers.
	assignedReviewerCount = 2
	// Acceptance requires unanimity across at least this many reviews.
	minReviewsForAcceptance = 2

	placeholderComments = "Pending review"
)

// ReviewerPicker selects count reviewers from the pool without replacement.
// The production picker is random; tests inject a deterministic one.
type ReviewerPicker func(pool []models.User, count int) []models.User

func RandomReviewerPicker(pool []models.User, count int) []models.User {
	shuffled := make([]models.User, len(pool))
	copy(shuffled, pool)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	if count > len(shuffled) {
		count = len(shuffled)
	}
	return shuffled[:count]
}

type PaperService interface {
	SubmitPaper(req models.SubmitPaperRequest, authorID uint) (*models.Paper, error)
	GetPaper(id uint) (*models.Paper, error)
	GetPapers(params models.PaperListParams) ([]models.Paper, int64, error)
	DeletePaper(id uint) error
	UploadNewVersion(paperID uint, versionLink string) (*models.Paper, error)
	SubmitOrUpdateReview(paperID, reviewerID uint, verdict models.Verdict, comments string) (*models.Review, error)
}

type paperService struct {
	paperRepo      repositories.PaperRepository
	reviewRepo     repositories.ReviewRepository
	conferenceRepo repositories.ConferenceRepository
	pickReviewers  ReviewerPicker
}

func NewPaperService(
	paperRepo repositories.PaperRepository,
	reviewRepo repositories.ReviewRepository,
	conferenceRepo repositories.ConferenceRepository,
	picker ReviewerPicker,
) PaperService {
	if picker == nil {
		picker = RandomReviewerPicker
	}
	return &paperService{
		paperRepo:      paperRepo,
		reviewRepo:     reviewRepo,
		conferenceRepo: conferenceRepo,
		pickReviewers:  picker,
	}
}

// SubmitPaper creates the paper, assigns two random reviewers from the
// conference pool and seeds a placeholder review per assignment. The seeded
// verdict is "approved" with "Pending review" comments until the reviewer
// overwrites it. Everything runs in one transaction so a failure leaves no
// partially created paper.
func (s *paperService) SubmitPaper(req models.SubmitPaperRequest, authorID uint) (*models.Paper, error) {
	conference, err := s.conferenceRepo.GetByID(req.ConferenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if len(conference.Reviewers) < assignedReviewerCount {
		return nil, models.ErrInsufficientReviewers
	}

	selected := s.pickReviewers(conference.Reviewers, assignedReviewerCount)

	paper := &models.Paper{
		Title:              req.Title,
		Abstract:           req.Abstract,
		CurrentVersionLink: req.VersionLink,
		Status:             models.StatusPending,
		VersionHistory: models.VersionHistory{
			{Version: 1, Link: req.VersionLink, Date: time.Now()},
		},
		AuthorID:     authorID,
		ConferenceID: req.ConferenceID,
	}

	err = s.paperRepo.Transaction(func(tx *gorm.DB) error {
		paperRepo := s.paperRepo.WithTx(tx)
		reviewRepo := s.reviewRepo.WithTx(tx)

		if err := paperRepo.Create(paper); err != nil {
			return err
		}

		for _, reviewer := range selected {
			review := &models.Review{
				PaperID:    paper.ID,
				ReviewerID: reviewer.ID,
				Verdict:    models.VerdictApproved,
				Comments:   placeholderComments,
			}
			if err := reviewRepo.Create(review); err != nil {
				return err
			}
		}

		paper.Status = models.StatusInReview
		return paperRepo.Update(paper)
	})
	if err != nil {
		return nil, err
	}

	return s.paperRepo.GetByID(paper.ID)
}

func (s *paperService) GetPaper(id uint) (*models.Paper, error) {
	paper, err := s.paperRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return paper, nil
}

func (s *paperService) GetPapers(params models.PaperListParams) ([]models.Paper, int64, error) {
	return s.paperRepo.GetList(params)
}

func (s *paperService) DeletePaper(id uint) error {
	if _, err := s.paperRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.paperRepo.Delete(id)
}

// UploadNewVersion appends to the version history and unconditionally resets
// status to IN_REVIEW, whatever the prior status was. Even an accepted or
// rejected paper goes back to review on a new upload; the original system
// only restricted this in its UI.
func (s *paperService) UploadNewVersion(paperID uint, versionLink string) (*models.Paper, error) {
	var paper *models.Paper

	err := s.paperRepo.Transaction(func(tx *gorm.DB) error {
		paperRepo := s.paperRepo.WithTx(tx)

		locked, err := paperRepo.GetByIDForUpdate(paperID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		locked.VersionHistory = append(locked.VersionHistory, models.PaperVersion{
			Version: len(locked.VersionHistory) + 1,
			Link:    versionLink,
			Date:    time.Now(),
		})
		locked.CurrentVersionLink = versionLink
		locked.Status = models.StatusInReview

		paper = locked
		return paperRepo.Update(locked)
	})
	if err != nil {
		return nil, err
	}

	return paper, nil
}

// SubmitOrUpdateReview upserts the reviewer's verdict and recomputes paper
// status from the full review set. The upsert, the read of all reviews and
// the status write share one transaction with the paper row locked, so
// concurrent submissions for the same paper serialize instead of deriving
// from a stale review set.
func (s *paperService) SubmitOrUpdateReview(paperID, reviewerID uint, verdict models.Verdict, comments string) (*models.Review, error) {
	var review *models.Review

	err := s.paperRepo.Transaction(func(tx *gorm.DB) error {
		paperRepo := s.paperRepo.WithTx(tx)
		reviewRepo := s.reviewRepo.WithTx(tx)

		paper, err := paperRepo.GetByIDForUpdate(paperID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrNotFound
			}
			return err
		}

		existing, err := reviewRepo.GetByPaperAndReviewer(paperID, reviewerID)
		switch {
		case err == nil:
			existing.Verdict = verdict
			existing.Comments = comments
			if err := reviewRepo.Update(existing); err != nil {
				return err
			}
			review = existing
		case errors.Is(err, gorm.ErrRecordNotFound):
			review = &models.Review{
				PaperID:    paperID,
				ReviewerID: reviewerID,
				Verdict:    verdict,
				Comments:   comments,
			}
			if err := reviewRepo.Create(review); err != nil {
				return err
			}
		default:
			return err
		}

		reviews, err := reviewRepo.GetByPaperID(paperID)
		if err != nil {
			return err
		}

		if status, ok := deriveStatus(reviews); ok && status != paper.Status {
			paper.Status = status
			return paperRepo.Update(paper)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return review, nil
}
