package services

import (
	"confhub-api/models"
	"confhub-api/repositories"

	"gorm.io/gorm"
)

// In-memory repository fakes so the service logic can be exercised without a
// database. Transaction runs the callback directly and WithTx returns the
// fake itself.

type fakeStore struct {
	users       map[uint]*models.User
	conferences map[uint]*models.Conference
	papers      map[uint]*models.Paper
	reviews     map[uint]*models.Review
	nextID      uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:       make(map[uint]*models.User),
		conferences: make(map[uint]*models.Conference),
		papers:      make(map[uint]*models.Paper),
		reviews:     make(map[uint]*models.Review),
	}
}

func (s *fakeStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *fakeStore) addUser(name string, role models.UserRole) *models.User {
	user := &models.User{ID: s.id(), Name: name, Email: name + "@conf.com", Role: role}
	s.users[user.ID] = user
	return user
}

func (s *fakeStore) addConference(organizerID uint, reviewers ...*models.User) *models.Conference {
	conference := &models.Conference{ID: s.id(), Title: "Conf", Location: "Test", OrganizerID: organizerID}
	for _, reviewer := range reviewers {
		conference.Reviewers = append(conference.Reviewers, *reviewer)
	}
	s.conferences[conference.ID] = conference
	return conference
}

func (s *fakeStore) reviewsForPaper(paperID uint) []models.Review {
	var reviews []models.Review
	for _, review := range s.reviews {
		if review.PaperID == paperID {
			reviews = append(reviews, *review)
		}
	}
	return reviews
}

type fakeUserRepo struct{ store *fakeStore }

func (r *fakeUserRepo) Create(user *models.User) error {
	user.ID = r.store.id()
	clone := *user
	r.store.users[user.ID] = &clone
	return nil
}

func (r *fakeUserRepo) GetByID(id uint) (*models.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *user
	return &clone, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			clone := *user
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetByIDs(ids []uint) ([]models.User, error) {
	var users []models.User
	for _, id := range ids {
		if user, ok := r.store.users[id]; ok {
			users = append(users, *user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) GetAll() ([]models.User, error) {
	var users []models.User
	for _, user := range r.store.users {
		users = append(users, *user)
	}
	return users, nil
}

type fakeConferenceRepo struct{ store *fakeStore }

func (r *fakeConferenceRepo) Create(conference *models.Conference) error {
	conference.ID = r.store.id()
	clone := *conference
	r.store.conferences[conference.ID] = &clone
	return nil
}

func (r *fakeConferenceRepo) GetByID(id uint) (*models.Conference, error) {
	conference, ok := r.store.conferences[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *conference
	return &clone, nil
}

func (r *fakeConferenceRepo) GetAll() ([]models.Conference, error) {
	var conferences []models.Conference
	for _, conference := range r.store.conferences {
		conferences = append(conferences, *conference)
	}
	return conferences, nil
}

func (r *fakeConferenceRepo) Update(conference *models.Conference) error {
	clone := *conference
	r.store.conferences[conference.ID] = &clone
	return nil
}

func (r *fakeConferenceRepo) Delete(id uint) error {
	delete(r.store.conferences, id)
	return nil
}

func (r *fakeConferenceRepo) SetReviewers(conference *models.Conference, reviewers []models.User) error {
	stored, ok := r.store.conferences[conference.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Reviewers = reviewers
	return nil
}

func (r *fakeConferenceRepo) GetReviewers(conferenceID uint) ([]models.User, error) {
	conference, ok := r.store.conferences[conferenceID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return conference.Reviewers, nil
}

type fakePaperRepo struct{ store *fakeStore }

func (r *fakePaperRepo) Create(paper *models.Paper) error {
	paper.ID = r.store.id()
	clone := *paper
	r.store.papers[paper.ID] = &clone
	return nil
}

func (r *fakePaperRepo) GetByID(id uint) (*models.Paper, error) {
	paper, ok := r.store.papers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *paper
	clone.Reviews = r.store.reviewsForPaper(id)
	return &clone, nil
}

func (r *fakePaperRepo) GetByIDForUpdate(id uint) (*models.Paper, error) {
	paper, ok := r.store.papers[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *paper
	return &clone, nil
}

func (r *fakePaperRepo) GetList(params models.PaperListParams) ([]models.Paper, int64, error) {
	var papers []models.Paper
	for _, paper := range r.store.papers {
		if params.ConferenceID > 0 && paper.ConferenceID != params.ConferenceID {
			continue
		}
		if params.AuthorID > 0 && paper.AuthorID != params.AuthorID {
			continue
		}
		if params.Status != "" && string(paper.Status) != params.Status {
			continue
		}
		papers = append(papers, *paper)
	}
	return papers, int64(len(papers)), nil
}

func (r *fakePaperRepo) GetByConferenceID(conferenceID uint) ([]models.Paper, error) {
	var papers []models.Paper
	for _, paper := range r.store.papers {
		if paper.ConferenceID == conferenceID {
			clone := *paper
			clone.Reviews = r.store.reviewsForPaper(paper.ID)
			papers = append(papers, clone)
		}
	}
	return papers, nil
}

func (r *fakePaperRepo) Update(paper *models.Paper) error {
	if _, ok := r.store.papers[paper.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *paper
	clone.Reviews = nil
	r.store.papers[paper.ID] = &clone
	return nil
}

func (r *fakePaperRepo) Delete(id uint) error {
	delete(r.store.papers, id)
	return nil
}

func (r *fakePaperRepo) Transaction(fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func (r *fakePaperRepo) WithTx(tx *gorm.DB) repositories.PaperRepository {
	return r
}

type fakeReviewRepo struct{ store *fakeStore }

func (r *fakeReviewRepo) Create(review *models.Review) error {
	review.ID = r.store.id()
	clone := *review
	r.store.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) GetByID(id uint) (*models.Review, error) {
	review, ok := r.store.reviews[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	clone := *review
	return &clone, nil
}

func (r *fakeReviewRepo) GetAll() ([]models.Review, error) {
	var reviews []models.Review
	for _, review := range r.store.reviews {
		reviews = append(reviews, *review)
	}
	return reviews, nil
}

func (r *fakeReviewRepo) GetByPaperID(paperID uint) ([]models.Review, error) {
	return r.store.reviewsForPaper(paperID), nil
}

func (r *fakeReviewRepo) GetByPaperAndReviewer(paperID, reviewerID uint) (*models.Review, error) {
	for _, review := range r.store.reviews {
		if review.PaperID == paperID && review.ReviewerID == reviewerID {
			clone := *review
			return &clone, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeReviewRepo) Update(review *models.Review) error {
	if _, ok := r.store.reviews[review.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	clone := *review
	r.store.reviews[review.ID] = &clone
	return nil
}

func (r *fakeReviewRepo) Delete(id uint) error {
	delete(r.store.reviews, id)
	return nil
}

func (r *fakeReviewRepo) WithTx(tx *gorm.DB) repositories.ReviewRepository {
	return r
}
