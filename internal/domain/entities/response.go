package entities

import (
	"time"
)

// Response represents one answer to one question. All answers submitted in the
// same batch share a single anonymous respondent id; the id is never linked to
// a registered user.
type Response struct {
	ResponseID   int64     `json:"response_id" gorm:"primaryKey;column:response_id;autoIncrement"`
	SurveyID     int64     `json:"survey_id" gorm:"column:survey_id;index"`
	QuestionID   int64     `json:"question_id" gorm:"column:question_id;index"`
	RespondentID string    `json:"respondent_id" gorm:"column:respondent_id;type:uuid;index"`
	AnswerText   string    `json:"answer_text" gorm:"column:answer_text"`
	SubmittedAt  time.Time `json:"submitted_at" gorm:"column:submitted_at"`

	// Relações
	Question *Question `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
}

func (Response) TableName() string {
	return "responses"
}
