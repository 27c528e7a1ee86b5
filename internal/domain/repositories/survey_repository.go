package repositories

import (
	"fmt"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"gorm.io/gorm"
)

type ISurveyRepository interface {
	FindByID(surveyID int64) (*entities.Survey, error)
	FindByLink(surveyLink string) (*entities.Survey, error)
	FindByCreator(creatorID int64) ([]entities.Survey, error)
	GetSurveys(page, limit int) ([]entities.Survey, int64, error)
	Create(survey *entities.Survey) error
	Save(survey *entities.Survey) error
	Delete(surveyID int64) error
}

// SurveyRepository implements survey data access on top of GORM
type SurveyRepository struct {
	db *gorm.DB
}

func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{
		db: db,
	}
}

// FindByID retrieves a survey by primary key
func (r *SurveyRepository) FindByID(surveyID int64) (*entities.Survey, error) {
	var survey entities.Survey
	if err := r.db.First(&survey, "survey_id = ?", surveyID).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindByLink retrieves a survey by its unique link token
func (r *SurveyRepository) FindByLink(surveyLink string) (*entities.Survey, error) {
	var survey entities.Survey
	if err := r.db.First(&survey, "survey_link = ?", surveyLink).Error; err != nil {
		return nil, err
	}
	return &survey, nil
}

// FindByCreator retrieves all surveys owned by a user, newest first
func (r *SurveyRepository) FindByCreator(creatorID int64) ([]entities.Survey, error) {
	var surveys []entities.Survey
	err := r.db.Where("creator_id = ?", creatorID).Order("created_at desc").Find(&surveys).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find surveys by creator: %w", err)
	}
	return surveys, nil
}

// GetSurveys returns a page of surveys plus the total count
func (r *SurveyRepository) GetSurveys(page, limit int) ([]entities.Survey, int64, error) {
	var surveys []entities.Survey
	var total int64

	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	query := r.db.Model(&entities.Survey{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := query.Order("created_at desc").Offset(offset).Limit(limit).Find(&surveys).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list surveys: %w", err)
	}

	return surveys, total, nil
}

func (r *SurveyRepository) Create(survey *entities.Survey) error {
	if err := r.db.Create(survey).Error; err != nil {
		return fmt.Errorf("failed to create survey: %w", err)
	}
	return nil
}

func (r *SurveyRepository) Save(survey *entities.Survey) error {
	return r.db.Save(survey).Error
}

func (r *SurveyRepository) Delete(surveyID int64) error {
	return r.db.Delete(&entities.Survey{}, "survey_id = ?", surveyID).Error
}
