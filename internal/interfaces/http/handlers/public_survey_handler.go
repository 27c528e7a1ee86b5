package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
	"github.com/surveyx/surveyx-api/internal/infrastructure/cache"
)

// formCacheTTL keeps the public form payload fresh enough that a closed
// survey stops accepting views within seconds
const formCacheTTL = 30 * time.Second

// PublicSurveyHandler serves the respondent-facing survey form and the batch
// submit endpoint. These routes are unauthenticated.
type PublicSurveyHandler struct {
	surveyUseCase   *usecases.SurveyUseCase
	questionUseCase *usecases.QuestionUseCase
	responseUseCase *usecases.ResponseUseCase
	formCache       *cache.Cache
}

// NewPublicSurveyHandler cria uma nova instância de PublicSurveyHandler
func NewPublicSurveyHandler(
	surveyUseCase *usecases.SurveyUseCase,
	questionUseCase *usecases.QuestionUseCase,
	responseUseCase *usecases.ResponseUseCase,
	formCache *cache.Cache,
) *PublicSurveyHandler {
	return &PublicSurveyHandler{
		surveyUseCase:   surveyUseCase,
		questionUseCase: questionUseCase,
		responseUseCase: responseUseCase,
		formCache:       formCache,
	}
}

type surveyFormData struct {
	Survey    interface{} `json:"survey"`
	Questions interface{} `json:"questions"`
}

// GetSurveyData retorna a pesquisa ativa e suas perguntas para o formulário
// público. 404 when the link resolves to nothing or to an inactive survey.
func (h *PublicSurveyHandler) GetSurveyData(c *fiber.Ctx) error {
	surveyLink := c.Params("surveyLink")

	if cached, found := h.formCache.Get(surveyLink); found {
		return c.JSON(cached)
	}

	survey, err := h.surveyUseCase.GetSurveyByLink(surveyLink)
	if err != nil {
		return errorResponse(c, err)
	}
	if survey.Status != "active" {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Survey not found or not currently active"})
	}

	questions, err := h.questionUseCase.GetQuestionsBySurvey(survey.SurveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	data := surveyFormData{
		Survey:    survey,
		Questions: questions,
	}
	h.formCache.Set(surveyLink, data, formCacheTTL)

	return c.JSON(data)
}

// SubmitResponses armazena um lote de respostas de um respondente anônimo
func (h *PublicSurveyHandler) SubmitResponses(c *fiber.Ctx) error {
	surveyLink := c.Params("surveyLink")

	var answers []usecases.SubmitAnswer
	if err := c.BodyParser(&answers); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	respondentID, count, err := h.responseUseCase.SubmitBatch(surveyLink, answers)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":      true,
		"message":      "Survey responses submitted successfully",
		"respondentId": respondentID,
		"count":        count,
	})
}
