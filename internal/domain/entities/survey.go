package entities

import (
	"time"
)

// Survey status values. Transitions are draft -> active -> closed; publish and
// close overwrite the current status without checking it first.
const (
	SurveyStatusDraft  = "draft"
	SurveyStatusActive = "active"
	SurveyStatusClosed = "closed"
)

// Survey represents a survey owned by a creator account
type Survey struct {
	SurveyID      int64      `json:"survey_id" gorm:"primaryKey;column:survey_id;autoIncrement"`
	CreatorID     int64      `json:"creator_id" gorm:"column:creator_id"`
	Title         string     `json:"title" gorm:"column:title;not null"`
	Description   string     `json:"description" gorm:"column:description"`
	SurveyLink    string     `json:"survey_link" gorm:"column:survey_link;uniqueIndex"`
	Status        string     `json:"status" gorm:"column:status;default:draft"`
	ResponseCount int        `json:"response_count" gorm:"column:response_count;default:0"`
	CreatedAt     time.Time  `json:"created_at" gorm:"column:created_at"`
	UpdatedAt     time.Time  `json:"updated_at" gorm:"column:updated_at"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty" gorm:"column:expires_at"`

	// ClickableLink is derived from the base URL and the link token, never stored
	ClickableLink string `json:"clickable_link,omitempty" gorm:"-"`

	// Relações
	Creator   *User      `json:"creator,omitempty" gorm:"foreignKey:CreatorID"`
	Questions []Question `json:"questions,omitempty" gorm:"foreignKey:SurveyID"`
	Responses []Response `json:"responses,omitempty" gorm:"foreignKey:SurveyID"`
}

func (Survey) TableName() string {
	return "surveys"
}
