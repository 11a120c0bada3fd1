package repositories

import (
	"fmt"

	"confhub-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PaperRepository interface {
	Create(paper *models.Paper) error
	GetByID(id uint) (*models.Paper, error)
	// GetByIDForUpdate locks the paper row until the surrounding transaction
	// commits. Only meaningful on a repository obtained via WithTx.
	GetByIDForUpdate(id uint) (*models.Paper, error)
	GetList(params models.PaperListParams) ([]models.Paper, int64, error)
	GetByConferenceID(conferenceID uint) ([]models.Paper, error)
	Update(paper *models.Paper) error
	Delete(id uint) error
	Transaction(fn func(tx *gorm.DB) error) error
	WithTx(tx *gorm.DB) PaperRepository
}

type paperRepository struct {
	db *gorm.DB
}

func NewPaperRepository(db *gorm.DB) PaperRepository {
	return &paperRepository{db: db}
}

func (r *paperRepository) Create(paper *models.Paper) error {
	return r.db.Create(paper).Error
}

func (r *paperRepository) GetByID(id uint) (*models.Paper, error) {
	var paper models.Paper
	err := r.db.Preload("Author").
		Preload("Conference").
		Preload("Reviews.Reviewer").
		First(&paper, id).Error
	return &paper, err
}

func (r *paperRepository) GetByIDForUpdate(id uint) (*models.Paper, error) {
	var paper models.Paper
	err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&paper, id).Error
	return &paper, err
}

func (r *paperRepository) GetList(params models.PaperListParams) ([]models.Paper, int64, error) {
	var papers []models.Paper
	var total int64

	query := r.db.Model(&models.Paper{}).
		Preload("Author").
		Preload("Conference").
		Preload("Reviews.Reviewer")

	if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.AuthorID > 0 {
		query = query.Where("author_id = ?", params.AuthorID)
	}
	if params.ConferenceID > 0 {
		query = query.Where("conference_id = ?", params.ConferenceID)
	}

	query.Count(&total)

	sortBy := params.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	sortOrder := params.SortOrder
	if sortOrder == "" {
		sortOrder = "desc"
	}
	query = query.Order(fmt.Sprintf("papers.%s %s", sortBy, sortOrder))

	offset := (params.Page - 1) * params.Limit
	err := query.Offset(offset).Limit(params.Limit).Find(&papers).Error

	return papers, total, err
}

func (r *paperRepository) GetByConferenceID(conferenceID uint) ([]models.Paper, error) {
	var papers []models.Paper
	err := r.db.Where("conference_id = ?", conferenceID).
		Preload("Author").
		Preload("Reviews.Reviewer").
		Order("created_at desc").
		Find(&papers).Error
	return papers, err
}

func (r *paperRepository) Update(paper *models.Paper) error {
	return r.db.Save(paper).Error
}

func (r *paperRepository) Delete(id uint) error {
	return r.db.Delete(&models.Paper{}, id).Error
}

func (r *paperRepository) Transaction(fn func(tx *gorm.DB) error) error {
	return r.db.Transaction(fn)
}

func (r *paperRepository) WithTx(tx *gorm.DB) PaperRepository {
	return &paperRepository{db: tx}
}
