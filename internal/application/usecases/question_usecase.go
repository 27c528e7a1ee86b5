package usecases

import (
	"time"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
)

// QuestionUseCase implementa os casos de uso relacionados a perguntas
type QuestionUseCase struct {
	questionRepo repositories.IQuestionRepository
	surveyRepo   repositories.ISurveyRepository
}

// NewQuestionUseCase cria uma nova instância de QuestionUseCase
func NewQuestionUseCase(questionRepo repositories.IQuestionRepository, surveyRepo repositories.ISurveyRepository) *QuestionUseCase {
	return &QuestionUseCase{
		questionRepo: questionRepo,
		surveyRepo:   surveyRepo,
	}
}

// CreateQuestion stamps the creation time and persists the question
func (u *QuestionUseCase) CreateQuestion(question *entities.Question) (*entities.Question, error) {
	if _, err := u.surveyRepo.FindByID(question.SurveyID); err != nil {
		return nil, translateNotFound(err)
	}

	question.QuestionID = 0
	if question.CreatedAt.IsZero() {
		question.CreatedAt = time.Now()
	}

	if err := u.questionRepo.Create(question); err != nil {
		return nil, err
	}
	return question, nil
}

// GetQuestionByID retorna uma pergunta pelo ID
func (u *QuestionUseCase) GetQuestionByID(questionID int64) (*entities.Question, error) {
	question, err := u.questionRepo.FindByID(questionID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return question, nil
}

// GetQuestionsBySurvey retorna as perguntas de uma pesquisa
func (u *QuestionUseCase) GetQuestionsBySurvey(surveyID int64) ([]entities.Question, error) {
	if _, err := u.surveyRepo.FindByID(surveyID); err != nil {
		return nil, translateNotFound(err)
	}
	return u.questionRepo.FindBySurvey(surveyID)
}

// UpdateQuestion saves the question, keeping its survey and creation time
func (u *QuestionUseCase) UpdateQuestion(question *entities.Question) (*entities.Question, error) {
	existing, err := u.questionRepo.FindByID(question.QuestionID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	question.SurveyID = existing.SurveyID
	question.CreatedAt = existing.CreatedAt

	if err := u.questionRepo.Save(question); err != nil {
		return nil, err
	}
	return question, nil
}

// DeleteQuestion remove uma pergunta
func (u *QuestionUseCase) DeleteQuestion(questionID int64) error {
	if _, err := u.questionRepo.FindByID(questionID); err != nil {
		return translateNotFound(err)
	}
	return u.questionRepo.Delete(questionID)
}
