package repositories

import (
	"fmt"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IAnalyticsRepository interface {
	FindBySurvey(surveyID int64) (*entities.SurveyAnalytics, error)
	Save(analytics *entities.SurveyAnalytics) error
	Delete(analyticsID int64) error
	DeleteBySurvey(surveyID int64) error
}

// AnalyticsRepository implements survey analytics data access on top of GORM
type AnalyticsRepository struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) *AnalyticsRepository {
	return &AnalyticsRepository{
		db: db,
	}
}

// FindBySurvey retrieves the analytics row for a survey, nil when none has
// been generated yet
func (r *AnalyticsRepository) FindBySurvey(surveyID int64) (*entities.SurveyAnalytics, error) {
	var analytics entities.SurveyAnalytics
	err := r.db.First(&analytics, "survey_id = ?", surveyID).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find analytics by survey: %w", err)
	}
	return &analytics, nil
}

// Save creates or updates the analytics row. The unique index on survey_id
// keeps this one row per survey.
func (r *AnalyticsRepository) Save(analytics *entities.SurveyAnalytics) error {
	if err := r.db.Save(analytics).Error; err != nil {
		return fmt.Errorf("failed to save analytics: %w", err)
	}
	return nil
}

func (r *AnalyticsRepository) Delete(analyticsID int64) error {
	return r.db.Delete(&entities.SurveyAnalytics{}, "analytics_id = ?", analyticsID).Error
}

// DeleteBySurvey removes a survey's analytics row. Used by the explicit
// cascade when a survey is deleted.
func (r *AnalyticsRepository) DeleteBySurvey(surveyID int64) error {
	return r.db.Delete(&entities.SurveyAnalytics{}, "survey_id = ?", surveyID).Error
}
