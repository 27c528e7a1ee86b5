package repositories

import (
	"fmt"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"gorm.io/gorm"
)

type IQuestionRepository interface {
	FindByID(questionID int64) (*entities.Question, error)
	FindBySurvey(surveyID int64) ([]entities.Question, error)
	Create(question *entities.Question) error
	Save(question *entities.Question) error
	Delete(questionID int64) error
	DeleteBySurvey(surveyID int64) error
}

// QuestionRepository implements question data access on top of GORM
type QuestionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{
		db: db,
	}
}

func (r *QuestionRepository) FindByID(questionID int64) (*entities.Question, error) {
	var question entities.Question
	if err := r.db.First(&question, "question_id = ?", questionID).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

// FindBySurvey retrieves a survey's questions in creation order
func (r *QuestionRepository) FindBySurvey(surveyID int64) ([]entities.Question, error) {
	var questions []entities.Question
	err := r.db.Where("survey_id = ?", surveyID).Order("question_id asc").Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find questions by survey: %w", err)
	}
	return questions, nil
}

func (r *QuestionRepository) Create(question *entities.Question) error {
	if err := r.db.Create(question).Error; err != nil {
		return fmt.Errorf("failed to create question: %w", err)
	}
	return nil
}

func (r *QuestionRepository) Save(question *entities.Question) error {
	return r.db.Save(question).Error
}

func (r *QuestionRepository) Delete(questionID int64) error {
	return r.db.Delete(&entities.Question{}, "question_id = ?", questionID).Error
}

// DeleteBySurvey removes all questions belonging to a survey. Used by the
// explicit cascade when a survey is deleted.
func (r *QuestionRepository) DeleteBySurvey(surveyID int64) error {
	return r.db.Delete(&entities.Question{}, "survey_id = ?", surveyID).Error
}
