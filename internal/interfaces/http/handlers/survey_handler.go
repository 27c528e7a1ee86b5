package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
	"github.com/surveyx/surveyx-api/internal/domain/entities"
)

// SurveyHandler lida com requisições relacionadas a pesquisas
type SurveyHandler struct {
	surveyUseCase *usecases.SurveyUseCase
}

// NewSurveyHandler cria uma nova instância de SurveyHandler
func NewSurveyHandler(surveyUseCase *usecases.SurveyUseCase) *SurveyHandler {
	return &SurveyHandler{
		surveyUseCase: surveyUseCase,
	}
}

type createSurveyRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      string `json:"status" validate:"omitempty,oneof=draft active closed"`
}

// GetSurveys retorna todas as pesquisas com paginação
func (h *SurveyHandler) GetSurveys(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid 'page' parameter"})
	}

	limit, err := strconv.Atoi(c.Query("limit", "10"))
	if err != nil || limit < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid 'limit' parameter"})
	}

	surveys, total, err := h.surveyUseCase.GetSurveys(page, limit)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"surveys": surveys,
		"total":   total,
		"page":    page,
		"limit":   limit,
	})
}

// GetSurvey retorna uma pesquisa pelo ID
func (h *SurveyHandler) GetSurvey(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	survey, err := h.surveyUseCase.GetSurveyByID(surveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(survey)
}

// GetSurveyByLink retorna uma pesquisa pelo link token
func (h *SurveyHandler) GetSurveyByLink(c *fiber.Ctx) error {
	survey, err := h.surveyUseCase.GetSurveyByLink(c.Params("surveyLink"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(survey)
}

// GetSurveysByUser retorna as pesquisas de um usuário
func (h *SurveyHandler) GetSurveysByUser(c *fiber.Ctx) error {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return nil
	}

	surveys, err := h.surveyUseCase.GetSurveysByCreator(userID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(surveys)
}

// CreateSurvey cria uma nova pesquisa
func (h *SurveyHandler) CreateSurvey(c *fiber.Ctx) error {
	var req createSurveyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	survey := &entities.Survey{
		CreatorID:   creatorID(c),
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
	}

	created, err := h.surveyUseCase.CreateSurvey(survey)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// UpdateSurvey atualiza uma pesquisa existente
func (h *SurveyHandler) UpdateSurvey(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	var survey entities.Survey
	if err := c.BodyParser(&survey); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	survey.SurveyID = surveyID

	updated, err := h.surveyUseCase.UpdateSurvey(&survey)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(updated)
}

// DeleteSurvey remove uma pesquisa e seus dados associados
func (h *SurveyHandler) DeleteSurvey(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	if err := h.surveyUseCase.DeleteSurvey(surveyID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// PublishSurvey coloca uma pesquisa no ar
func (h *SurveyHandler) PublishSurvey(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	survey, err := h.surveyUseCase.PublishSurvey(surveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(survey)
}

// CloseSurvey encerra uma pesquisa
func (h *SurveyHandler) CloseSurvey(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	survey, err := h.surveyUseCase.CloseSurvey(surveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(survey)
}

// GetSurveyLink retorna o link compartilhável de uma pesquisa
func (h *SurveyHandler) GetSurveyLink(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	survey, err := h.surveyUseCase.GetSurveyByID(surveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(fiber.Map{
		"surveyLink":    survey.SurveyLink,
		"clickableLink": survey.ClickableLink,
	})
}

// parseIDParam parses a numeric path parameter. On a bad value it writes the
// 400 response itself and reports false.
func parseIDParam(c *fiber.Ctx, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id < 1 {
		_ = c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid '" + name + "' parameter"})
		return 0, false
	}
	return id, true
}

// creatorID returns the authenticated user id stored by the JWT middleware
func creatorID(c *fiber.Ctx) int64 {
	if id, ok := c.Locals("user_id").(int64); ok {
		return id
	}
	return 0
}
