package usecases

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
	"gorm.io/gorm"
)

// SurveyUseCase implements the survey lifecycle: create, update, publish,
// close and delete, plus link token issuance
type SurveyUseCase struct {
	surveyRepo    repositories.ISurveyRepository
	questionRepo  repositories.IQuestionRepository
	responseRepo  repositories.IResponseRepository
	analyticsRepo repositories.IAnalyticsRepository
	baseURL       string
}

// NewSurveyUseCase cria uma nova instância de SurveyUseCase
func NewSurveyUseCase(
	surveyRepo repositories.ISurveyRepository,
	questionRepo repositories.IQuestionRepository,
	responseRepo repositories.IResponseRepository,
	analyticsRepo repositories.IAnalyticsRepository,
	baseURL string,
) *SurveyUseCase {
	return &SurveyUseCase{
		surveyRepo:    surveyRepo,
		questionRepo:  questionRepo,
		responseRepo:  responseRepo,
		analyticsRepo: analyticsRepo,
		baseURL:       baseURL,
	}
}

// CreateSurvey assigns a fresh link token and persists the survey as a draft
func (u *SurveyUseCase) CreateSurvey(survey *entities.Survey) (*entities.Survey, error) {
	survey.SurveyID = 0
	survey.SurveyLink = uuid.NewString()

	if survey.CreatedAt.IsZero() {
		survey.CreatedAt = time.Now()
	}
	survey.UpdatedAt = survey.CreatedAt

	if survey.Status == "" {
		survey.Status = entities.SurveyStatusDraft
	}
	survey.ResponseCount = 0

	if err := u.surveyRepo.Create(survey); err != nil {
		return nil, err
	}

	survey.ClickableLink = u.clickableLink(survey.SurveyLink)
	return survey, nil
}

// UpdateSurvey saves the survey, always restoring the stored link token. Link
// tokens are immutable after creation regardless of what the caller sends.
func (u *SurveyUseCase) UpdateSurvey(survey *entities.Survey) (*entities.Survey, error) {
	existing, err := u.surveyRepo.FindByID(survey.SurveyID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	survey.SurveyLink = existing.SurveyLink
	survey.CreatedAt = existing.CreatedAt
	survey.UpdatedAt = time.Now()

	if err := u.surveyRepo.Save(survey); err != nil {
		return nil, err
	}

	survey.ClickableLink = u.clickableLink(survey.SurveyLink)
	return survey, nil
}

// PublishSurvey sets the status to active. The current status is not checked
// first; a closed survey can be re-published. See DESIGN.md.
func (u *SurveyUseCase) PublishSurvey(surveyID int64) (*entities.Survey, error) {
	return u.setStatus(surveyID, entities.SurveyStatusActive)
}

// CloseSurvey sets the status to closed, with the same permissiveness as
// PublishSurvey
func (u *SurveyUseCase) CloseSurvey(surveyID int64) (*entities.Survey, error) {
	return u.setStatus(surveyID, entities.SurveyStatusClosed)
}

func (u *SurveyUseCase) setStatus(surveyID int64, status string) (*entities.Survey, error) {
	survey, err := u.surveyRepo.FindByID(surveyID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	survey.Status = status
	survey.UpdatedAt = time.Now()

	if err := u.surveyRepo.Save(survey); err != nil {
		return nil, err
	}

	survey.ClickableLink = u.clickableLink(survey.SurveyLink)
	return survey, nil
}

// DeleteSurvey removes a survey and everything hanging off it. The cascade is
// explicit: responses, questions and analytics go first, then the survey row.
func (u *SurveyUseCase) DeleteSurvey(surveyID int64) error {
	if _, err := u.surveyRepo.FindByID(surveyID); err != nil {
		return translateNotFound(err)
	}

	if err := u.responseRepo.DeleteBySurvey(surveyID); err != nil {
		return err
	}
	if err := u.questionRepo.DeleteBySurvey(surveyID); err != nil {
		return err
	}
	if err := u.analyticsRepo.DeleteBySurvey(surveyID); err != nil {
		return err
	}

	return u.surveyRepo.Delete(surveyID)
}

// GetSurveyByID retorna uma pesquisa pelo ID
func (u *SurveyUseCase) GetSurveyByID(surveyID int64) (*entities.Survey, error) {
	survey, err := u.surveyRepo.FindByID(surveyID)
	if err != nil {
		return nil, translateNotFound(err)
	}
	survey.ClickableLink = u.clickableLink(survey.SurveyLink)
	return survey, nil
}

// GetSurveyByLink retorna uma pesquisa pelo link token
func (u *SurveyUseCase) GetSurveyByLink(surveyLink string) (*entities.Survey, error) {
	survey, err := u.surveyRepo.FindByLink(surveyLink)
	if err != nil {
		return nil, translateNotFound(err)
	}
	survey.ClickableLink = u.clickableLink(survey.SurveyLink)
	return survey, nil
}

// GetSurveysByCreator retorna as pesquisas de um usuário
func (u *SurveyUseCase) GetSurveysByCreator(creatorID int64) ([]entities.Survey, error) {
	surveys, err := u.surveyRepo.FindByCreator(creatorID)
	if err != nil {
		return nil, err
	}
	for i := range surveys {
		surveys[i].ClickableLink = u.clickableLink(surveys[i].SurveyLink)
	}
	return surveys, nil
}

// GetSurveys retorna todas as pesquisas com paginação
func (u *SurveyUseCase) GetSurveys(page, limit int) ([]entities.Survey, int64, error) {
	surveys, total, err := u.surveyRepo.GetSurveys(page, limit)
	if err != nil {
		return nil, 0, err
	}
	for i := range surveys {
		surveys[i].ClickableLink = u.clickableLink(surveys[i].SurveyLink)
	}
	return surveys, total, nil
}

func (u *SurveyUseCase) clickableLink(surveyLink string) string {
	return u.baseURL + "/survey/" + surveyLink
}

func translateNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
