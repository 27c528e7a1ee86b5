package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
)

// AnalyticsHandler lida com requisições de análise de pesquisas
type AnalyticsHandler struct {
	analyticsUseCase *usecases.AnalyticsUseCase
}

// NewAnalyticsHandler cria uma nova instância de AnalyticsHandler
func NewAnalyticsHandler(analyticsUseCase *usecases.AnalyticsUseCase) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsUseCase: analyticsUseCase,
	}
}

// GetAnalytics retorna a análise armazenada de uma pesquisa
func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	analytics, err := h.analyticsUseCase.GetAnalytics(surveyID)
	if err != nil {
		return errorResponse(c, err)
	}
	if analytics == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No analytics generated for this survey yet"})
	}

	return c.JSON(analytics)
}

// GenerateAnalytics gera (ou regenera) a análise de uma pesquisa. The request
// blocks on the completion round trip, bounded by the client's timeout.
func (h *AnalyticsHandler) GenerateAnalytics(c *fiber.Ctx) error {
	surveyID, ok := parseIDParam(c, "surveyId")
	if !ok {
		return nil
	}

	analytics, err := h.analyticsUseCase.GenerateAnalytics(c.Context(), surveyID)
	if err != nil {
		return errorResponse(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(analytics)
}

// DeleteAnalytics remove um registro de análise
func (h *AnalyticsHandler) DeleteAnalytics(c *fiber.Ctx) error {
	analyticsID, ok := parseIDParam(c, "analyticsId")
	if !ok {
		return nil
	}

	if err := h.analyticsUseCase.DeleteAnalytics(analyticsID); err != nil {
		return errorResponse(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
