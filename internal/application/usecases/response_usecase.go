package usecases

import (
	"time"

	"github.com/google/uuid"
	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
)

// SubmitAnswer is one answer within a submission batch
type SubmitAnswer struct {
	QuestionID int64  `json:"question_id" validate:"required"`
	AnswerText string `json:"answer_text"`
}

// ResponseUseCase implements anonymous response collection
type ResponseUseCase struct {
	responseRepo repositories.IResponseRepository
	surveyRepo   repositories.ISurveyRepository
}

// NewResponseUseCase cria uma nova instância de ResponseUseCase
func NewResponseUseCase(responseRepo repositories.IResponseRepository, surveyRepo repositories.ISurveyRepository) *ResponseUseCase {
	return &ResponseUseCase{
		responseRepo: responseRepo,
		surveyRepo:   surveyRepo,
	}
}

// SubmitBatch stores one respondent's answers against an active survey. All
// answers in the batch share one freshly generated respondent id, and the
// survey's response count goes up by exactly 1 regardless of how many answers
// the batch contains. Answers are written one by one; there is no transaction
// around the whole batch.
func (u *ResponseUseCase) SubmitBatch(surveyLink string, answers []SubmitAnswer) (string, int, error) {
	survey, err := u.surveyRepo.FindByLink(surveyLink)
	if err != nil {
		return "", 0, translateNotFound(err)
	}
	if survey.Status != entities.SurveyStatusActive {
		return "", 0, ErrNotFound
	}

	respondentID := uuid.NewString()
	now := time.Now()

	for _, answer := range answers {
		response := &entities.Response{
			SurveyID:     survey.SurveyID,
			QuestionID:   answer.QuestionID,
			RespondentID: respondentID,
			AnswerText:   answer.AnswerText,
			SubmittedAt:  now,
		}
		if err := u.responseRepo.Create(response); err != nil {
			return "", 0, err
		}
	}

	// One increment per batch, not per answer. Plain read-modify-write; two
	// concurrent batches can race on this counter, it is an approximate tally.
	survey.ResponseCount++
	survey.UpdatedAt = now
	if err := u.surveyRepo.Save(survey); err != nil {
		return "", 0, err
	}

	return respondentID, len(answers), nil
}

// SaveResponse stores a single answer, stamping the submission time if the
// caller left it empty
func (u *ResponseUseCase) SaveResponse(response *entities.Response) (*entities.Response, error) {
	if _, err := u.surveyRepo.FindByID(response.SurveyID); err != nil {
		return nil, translateNotFound(err)
	}

	response.ResponseID = 0
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = time.Now()
	}

	if err := u.responseRepo.Create(response); err != nil {
		return nil, err
	}
	return response, nil
}

// GetResponseByID retorna uma resposta pelo ID
func (u *ResponseUseCase) GetResponseByID(responseID int64) (*entities.Response, error) {
	response, err := u.responseRepo.FindByID(responseID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	return response, nil
}

// GetResponsesBySurvey retorna todas as respostas de uma pesquisa
func (u *ResponseUseCase) GetResponsesBySurvey(surveyID int64) ([]entities.Response, error) {
	if _, err := u.surveyRepo.FindByID(surveyID); err != nil {
		return nil, translateNotFound(err)
	}
	return u.responseRepo.FindBySurvey(surveyID)
}

// GetResponsesByRespondent retorna as respostas de um respondente anônimo
func (u *ResponseUseCase) GetResponsesByRespondent(surveyID int64, respondentID string) ([]entities.Response, error) {
	if _, err := u.surveyRepo.FindByID(surveyID); err != nil {
		return nil, translateNotFound(err)
	}
	return u.responseRepo.FindBySurveyAndRespondent(surveyID, respondentID)
}

// DeleteResponse remove uma resposta
func (u *ResponseUseCase) DeleteResponse(responseID int64) error {
	if _, err := u.responseRepo.FindByID(responseID); err != nil {
		return translateNotFound(err)
	}
	return u.responseRepo.Delete(responseID)
}
