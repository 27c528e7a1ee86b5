package repositories

import (
	"fmt"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IResponseRepository interface {
	FindByID(responseID int64) (*entities.Response, error)
	FindBySurvey(surveyID int64) ([]entities.Response, error)
	FindBySurveyAndRespondent(surveyID int64, respondentID string) ([]entities.Response, error)
	CountBySurvey(surveyID int64) (int64, error)
	Create(response *entities.Response) error
	Delete(responseID int64) error
	DeleteBySurvey(surveyID int64) error
}

// ResponseRepository implements response data access on top of GORM
type ResponseRepository struct {
	db *gorm.DB
}

func NewResponseRepository(db *gorm.DB) *ResponseRepository {
	return &ResponseRepository{
		db: db,
	}
}

func (r *ResponseRepository) FindByID(responseID int64) (*entities.Response, error) {
	var response entities.Response
	if err := r.db.Preload("Question").First(&response, "response_id = ?", responseID).Error; err != nil {
		return nil, err
	}
	return &response, nil
}

// FindBySurvey retrieves every response collected for a survey, oldest first.
// Questions are preloaded because analytics grouping needs the question text.
func (r *ResponseRepository) FindBySurvey(surveyID int64) ([]entities.Response, error) {
	var responses []entities.Response
	err := r.db.Preload("Question").
		Where("survey_id = ?", surveyID).
		Order("response_id asc").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find responses by survey: %w", err)
	}
	return responses, nil
}

// FindBySurveyAndRespondent retrieves one anonymous respondent's answers
func (r *ResponseRepository) FindBySurveyAndRespondent(surveyID int64, respondentID string) ([]entities.Response, error) {
	var responses []entities.Response
	err := r.db.Preload("Question").
		Where("survey_id = ? AND respondent_id = ?", surveyID, respondentID).
		Order("response_id asc").
		Find(&responses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find responses by respondent: %w", err)
	}
	return responses, nil
}

func (r *ResponseRepository) CountBySurvey(surveyID int64) (int64, error) {
	var count int64
	err := r.db.Model(&entities.Response{}).Where("survey_id = ?", surveyID).Count(&count).Error
	return count, err
}

func (r *ResponseRepository) Create(response *entities.Response) error {
	if err := r.db.Create(response).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

func (r *ResponseRepository) Delete(responseID int64) error {
	return r.db.Delete(&entities.Response{}, "response_id = ?", responseID).Error
}

// DeleteBySurvey removes all responses belonging to a survey. Used by the
// explicit cascade when a survey is deleted.
func (r *ResponseRepository) DeleteBySurvey(surveyID int64) error {
	return r.db.Delete(&entities.Response{}, "survey_id = ?", surveyID).Error
}
