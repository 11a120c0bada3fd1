package services

import (
	"errors"
	"time"

	"confhub-api/models"
	"confhub-api/repositories"

	"gorm.io/gorm"
)

const conferenceDateLayout = "2006-01-02"

type ConferenceService interface {
	CreateConference(req models.CreateConferenceRequest, organizerID uint) (*models.Conference, error)
	GetConference(id uint) (*models.Conference, error)
	GetConferences() ([]models.Conference, error)
	UpdateConference(id uint, req models.UpdateConferenceRequest) (*models.Conference, error)
	DeleteConference(id uint) error
	AssignReviewers(conferenceID uint, reviewerIDs []uint) ([]models.User, error)
	GetConferencePapers(conferenceID uint) ([]models.Paper, error)
}

type conferenceService struct {
	conferenceRepo repositories.ConferenceRepository
	userRepo       repositories.UserRepository
	paperRepo      repositories.PaperRepository
}

func NewConferenceService(
	conferenceRepo repositories.ConferenceRepository,
	userRepo repositories.UserRepository,
	paperRepo repositories.PaperRepository,
) ConferenceService {
	return &conferenceService{
		conferenceRepo: conferenceRepo,
		userRepo:       userRepo,
		paperRepo:      paperRepo,
	}
}

func (s *conferenceService) CreateConference(req models.CreateConferenceRequest, organizerID uint) (*models.Conference, error) {
	organizer, err := s.userRepo.GetByID(organizerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if organizer.Role != models.RoleAdmin {
		return nil, models.ErrOrganizerNotAdmin
	}

	date, err := time.Parse(conferenceDateLayout, req.Date)
	if err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}

	conference := &models.Conference{
		Title:       req.Title,
		Location:    req.Location,
		Date:        date,
		OrganizerID: organizerID,
	}

	if err := s.conferenceRepo.Create(conference); err != nil {
		return nil, err
	}

	return s.conferenceRepo.GetByID(conference.ID)
}

func (s *conferenceService) GetConference(id uint) (*models.Conference, error) {
	conference, err := s.conferenceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return conference, nil
}

func (s *conferenceService) GetConferences() ([]models.Conference, error) {
	return s.conferenceRepo.GetAll()
}

func (s *conferenceService) UpdateConference(id uint, req models.UpdateConferenceRequest) (*models.Conference, error) {
	conference, err := s.conferenceRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	if req.Title != "" {
		conference.Title = req.Title
	}
	if req.Location != "" {
		conference.Location = req.Location
	}
	if req.Date != "" {
		date, err := time.Parse(conferenceDateLayout, req.Date)
		if err != nil {
			return nil, errors.New("date must be in YYYY-MM-DD format")
		}
		conference.Date = date
	}

	if err := s.conferenceRepo.Update(conference); err != nil {
		return nil, err
	}
	return conference, nil
}

func (s *conferenceService) DeleteConference(id uint) error {
	if _, err := s.conferenceRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}
	return s.conferenceRepo.Delete(id)
}

// AssignReviewers replaces the conference's reviewer pool. Every referenced
// user must exist and have the reviewer role.
func (s *conferenceService) AssignReviewers(conferenceID uint, reviewerIDs []uint) ([]models.User, error) {
	conference, err := s.conferenceRepo.GetByID(conferenceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}

	reviewers, err := s.userRepo.GetByIDs(reviewerIDs)
	if err != nil {
		return nil, err
	}
	if len(reviewers) != len(reviewerIDs) {
		return nil, models.ErrNotFound
	}

	for _, user := range reviewers {
		if user.Role != models.RoleReviewer {
			return nil, models.ErrNotAReviewer
		}
	}

	if err := s.conferenceRepo.SetReviewers(conference, reviewers); err != nil {
		return nil, err
	}
	return reviewers, nil
}

func (s *conferenceService) GetConferencePapers(conferenceID uint) ([]models.Paper, error) {
	if _, err := s.conferenceRepo.GetByID(conferenceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return s.paperRepo.GetByConferenceID(conferenceID)
}
