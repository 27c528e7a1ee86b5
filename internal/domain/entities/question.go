package entities

import (
	"time"
)

// Question types accepted from clients; free text questions carry no options.
const (
	QuestionTypeText           = "text"
	QuestionTypeMultipleChoice = "multiple_choice"
)

// Question represents a single question belonging to a survey
type Question struct {
	QuestionID    int64     `json:"question_id" gorm:"primaryKey;column:question_id;autoIncrement"`
	SurveyID      int64     `json:"survey_id" gorm:"column:survey_id;index"`
	QuestionText  string    `json:"question_text" gorm:"column:question_text;not null"`
	QuestionType  string    `json:"question_type" gorm:"column:question_type;not null"`
	AnswerOptions []string  `json:"answer_options,omitempty" gorm:"column:answer_options;serializer:json"`
	Required      bool      `json:"required" gorm:"column:required;default:true"`
	CreatedAt     time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Question) TableName() string {
	return "questions"
}
