package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
	"github.com/surveyx/surveyx-api/internal/domain/entities"
)

// ResponseHandler lida com requisições relacionadas a respostas coletadas
type ResponseHandler struct {
	responseUseCase *usecases.ResponseUseCase
}

// NewResponseHandler cria uma nova instância de ResponseHandler
func NewResponseHandler(responseUseCase *usecases.ResponseUseCase) *ResponseHandler {
	return &ResponseHandler{
		responseUseCase: responseUseCase,
	}
}

// SaveResponse armazena uma resposta individual
func (h *ResponseHandler) SaveResponse(c *fiber.Ctx) error {
	var response entities.Response
	if err := c.BodyParser(&response); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	saved, err := h.responseUseCase.SaveResponse(&response)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(saved)
}

// GetResponse retorna uma resposta pelo ID
func (h *ResponseHandler) GetResponse(c *fiber.Ctx) error {
	responseID, ok := parseIDParam(c, "responseId")
	if !ok {
		return nil
	}

	response, err := h.responseUseCase.GetResponseByID(responseID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(response)
}

// GetResponsesBySurvey retorna todas as respostas de uma pesquisa
func (h *ResponseHandler) GetResponsesBySurvey(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	responses, err := h.responseUseCase.GetResponsesBySurvey(surveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(responses)
}

// GetResponsesByRespondent retorna as respostas de um respondente anônimo
func (h *ResponseHandler) GetResponsesByRespondent(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	responses, err := h.responseUseCase.GetResponsesByRespondent(surveyID, c.Params("respondentId"))
	if err != nil {
		return errorResponse(c, err)
	}

	return c.JSON(responses)
}

// DeleteResponse remove uma resposta
func (h *ResponseHandler) DeleteResponse(c *fiber.Ctx) error {
	responseID, ok := parseIDParam(c, "responseId")
	if !ok {
		return nil
	}

	if err := h.responseUseCase.DeleteResponse(responseID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
