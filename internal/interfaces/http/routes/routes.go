package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/surveyx/surveyx-api/internal/application/usecases"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
	"github.com/surveyx/surveyx-api/internal/infrastructure/cache"
	"github.com/surveyx/surveyx-api/internal/interfaces/http/handlers"
	"github.com/surveyx/surveyx-api/internal/interfaces/http/middleware"
	"gorm.io/gorm"
)

// Config carries the environment-derived settings the routes need
type Config struct {
	BaseURL   string
	JWTSecret string
}

func SetupRoutes(app *fiber.App, db *gorm.DB, completions usecases.CompletionService, cfg Config) {
	// Repositories
	userRepo := repositories.NewUserRepository(db)
	surveyRepo := repositories.NewSurveyRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	// Use Cases
	authUseCase := usecases.NewAuthUseCase(userRepo, cfg.JWTSecret)
	surveyUseCase := usecases.NewSurveyUseCase(surveyRepo, questionRepo, responseRepo, analyticsRepo, cfg.BaseURL)
	questionUseCase := usecases.NewQuestionUseCase(questionRepo, surveyRepo)
	responseUseCase := usecases.NewResponseUseCase(responseRepo, surveyRepo)
	analyticsUseCase := usecases.NewAnalyticsUseCase(analyticsRepo, surveyRepo, responseRepo, completions)

	// Handlers
	authHandler := handlers.NewAuthHandler(authUseCase)
	surveyHandler := handlers.NewSurveyHandler(surveyUseCase)
	questionHandler := handlers.NewQuestionHandler(questionUseCase)
	responseHandler := handlers.NewResponseHandler(responseUseCase)
	analyticsHandler := handlers.NewAnalyticsHandler(analyticsUseCase)
	publicHandler := handlers.NewPublicSurveyHandler(surveyUseCase, questionUseCase, responseUseCase, cache.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// Auth routes (open). Registered before the guarded /api group so they
	// never hit the JWT middleware.
	auth := app.Group("/api/auth")
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)

	// Public survey routes (open, anonymous respondents)
	public := app.Group("/survey/api")
	public.Get("/:surveyLink", publicHandler.GetSurveyData)
	public.Post("/:surveyLink/submit", publicHandler.SubmitResponses)

	// Management API (JWT protected)
	api := app.Group("/api")
	api.Use(middleware.JWTProtected(authUseCase))

	// Surveys routes
	api.Get("/surveys", surveyHandler.GetSurveys)
	api.Post("/surveys", surveyHandler.CreateSurvey)
	api.Get("/surveys/link/:surveyLink", surveyHandler.GetSurveyByLink)
	api.Get("/surveys/user/:userId", surveyHandler.GetSurveysByUser)
	api.Get("/surveys/:surveyId", surveyHandler.GetSurvey)
	api.Put("/surveys/:surveyId", surveyHandler.UpdateSurvey)
	api.Delete("/surveys/:surveyId", surveyHandler.DeleteSurvey)
	api.Put("/surveys/:surveyId/publish", surveyHandler.PublishSurvey)
	api.Put("/surveys/:surveyId/close", surveyHandler.CloseSurvey)
	api.Get("/surveys/:surveyId/link", surveyHandler.GetSurveyLink)

	// Questions routes
	api.Post("/questions", questionHandler.CreateQuestion)
	api.Get("/questions/survey/:surveyId", questionHandler.GetQuestionsBySurvey)
	api.Get("/questions/:questionId", questionHandler.GetQuestion)
	api.Put("/questions/:questionId", questionHandler.UpdateQuestion)
	api.Delete("/questions/:questionId", questionHandler.DeleteQuestion)

	// Responses routes
	api.Post("/responses", responseHandler.SaveResponse)
	api.Get("/responses/survey/:surveyId/respondent/:respondentId", responseHandler.GetResponsesByRespondent)
	api.Get("/responses/survey/:surveyId", responseHandler.GetResponsesBySurvey)
	api.Get("/responses/:responseId", responseHandler.GetResponse)
	api.Delete("/responses/:responseId", responseHandler.DeleteResponse)

	// Analytics routes
	api.Get("/analytics/survey/:surveyId", analyticsHandler.GetAnalytics)
	api.Post("/analytics/survey/:surveyId", analyticsHandler.GenerateAnalytics)
	api.Delete("/analytics/:analyticsId", analyticsHandler.DeleteAnalytics)
}
