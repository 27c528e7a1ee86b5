package entities

import (
	"time"
)

// SurveyAnalytics holds the AI-generated summary for a survey. There is at
// most one row per survey; regeneration overwrites it in place. Insights is an
// opaque JSON blob returned by the model and is not validated here.
type SurveyAnalytics struct {
	AnalyticsID     int64     `json:"analytics_id" gorm:"primaryKey;column:analytics_id;autoIncrement"`
	SurveyID        int64     `json:"survey_id" gorm:"column:survey_id;uniqueIndex"`
	AnalysisSummary string    `json:"analysis_summary" gorm:"column:analysis_summary;type:text"`
	Insights        string    `json:"insights" gorm:"column:insights;type:text"`
	CreatedAt       time.Time `json:"created_at" gorm:"column:created_at"`
}

func (SurveyAnalytics) TableName() string {
	return "survey_analytics"
}
