package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
	"github.com/surveyx/surveyx-api/internal/domain/entities"
)

// QuestionHandler lida com requisições relacionadas a perguntas
type QuestionHandler struct {
	questionUseCase *usecases.QuestionUseCase
}

// NewQuestionHandler cria uma nova instância de QuestionHandler
func NewQuestionHandler(questionUseCase *usecases.QuestionUseCase) *QuestionHandler {
	return &QuestionHandler{
		questionUseCase: questionUseCase,
	}
}

type createQuestionRequest struct {
	SurveyID      int64    `json:"survey_id" validate:"required"`
	QuestionText  string   `json:"question_text" validate:"required"`
	QuestionType  string   `json:"question_type" validate:"required"`
	AnswerOptions []string `json:"answer_options"`
	Required      *bool    `json:"required"`
}

// CreateQuestion cria uma nova pergunta
func (h *QuestionHandler) CreateQuestion(c *fiber.Ctx) error {
	var req createQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	required := true
	if req.Required != nil {
		required = *req.Required
	}

	question := &entities.Question{
		SurveyID:      req.SurveyID,
		QuestionText:  req.QuestionText,
		QuestionType:  req.QuestionType,
		AnswerOptions: req.AnswerOptions,
		Required:      required,
	}

	created, err := h.questionUseCase.CreateQuestion(question)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// GetQuestion retorna uma pergunta pelo ID
func (h *QuestionHandler) GetQuestion(c *fiber.Ctx) error {
	questionID, ok := parseIDParam(c, "questionId")
	if !ok {
		return nil
	}

	question, err := h.questionUseCase.GetQuestionByID(questionID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(question)
}

// GetQuestionsBySurvey retorna as perguntas de uma pesquisa
func (h *QuestionHandler) GetQuestionsBySurvey(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	questions, err := h.questionUseCase.GetQuestionsBySurvey(surveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(questions)
}

// UpdateQuestion atualiza uma pergunta existente
func (h *QuestionHandler) UpdateQuestion(c *fiber.Ctx) error {
	questionID, ok := parseIDParam(c, "questionId")
	if !ok {
		return nil
	}

	var question entities.Question
	if err := c.BodyParser(&question); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	question.QuestionID = questionID

	updated, err := h.questionUseCase.UpdateQuestion(&question)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(updated)
}

// DeleteQuestion remove uma pergunta
func (h *QuestionHandler) DeleteQuestion(c *fiber.Ctx) error {
	questionID, ok := parseIDParam(c, "questionId")
	if !ok {
		return nil
	}

	if err := h.questionUseCase.DeleteQuestion(questionID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
