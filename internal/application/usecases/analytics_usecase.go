package usecases

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
)

const analysisSystemPrompt = "You are a survey analyst. Analyze the survey data and provide insights. " +
	"Return JSON with two fields: 'summary' (a brief overview) and 'insights' (detailed findings). " +
	"Ensure the JSON is properly formatted and valid."

const (
	noResponsesSummary      = "No responses have been collected for this survey yet."
	unexpectedFormatSummary = "Analysis completed but format was unexpected."
	emptyInsights           = "{}"
)

// CompletionService is the external language model collaborator. The returned
// content is an untrusted text blob that may or may not contain valid JSON.
type CompletionService interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// AnalyticsUseCase generates and stores AI summaries of collected responses.
// Generation never fails hard: every failure mode degrades into a stored
// record whose summary describes the problem.
type AnalyticsUseCase struct {
	analyticsRepo repositories.IAnalyticsRepository
	surveyRepo    repositories.ISurveyRepository
	responseRepo  repositories.IResponseRepository
	completions   CompletionService
}

// NewAnalyticsUseCase cria uma nova instância de AnalyticsUseCase
func NewAnalyticsUseCase(
	analyticsRepo repositories.IAnalyticsRepository,
	surveyRepo repositories.ISurveyRepository,
	responseRepo repositories.IResponseRepository,
	completions CompletionService,
) *AnalyticsUseCase {
	return &AnalyticsUseCase{
		analyticsRepo: analyticsRepo,
		surveyRepo:    surveyRepo,
		responseRepo:  responseRepo,
		completions:   completions,
	}
}

// GetAnalytics returns the stored analytics for a survey, nil when none has
// been generated yet
func (u *AnalyticsUseCase) GetAnalytics(surveyID int64) (*entities.SurveyAnalytics, error) {
	if _, err := u.surveyRepo.FindByID(surveyID); err != nil {
		return nil, translateNotFound(err)
	}
	return u.analyticsRepo.FindBySurvey(surveyID)
}

// GenerateAnalytics builds the analysis prompt from all collected responses,
// delegates to the completion service and stores the result. The survey's
// analytics row is overwritten in place on every call.
func (u *AnalyticsUseCase) GenerateAnalytics(ctx context.Context, surveyID int64) (*entities.SurveyAnalytics, error) {
	survey, err := u.surveyRepo.FindByID(surveyID)
	if err != nil {
		return nil, translateNotFound(err)
	}

	analytics, err := u.analyticsRepo.FindBySurvey(surveyID)
	if err != nil {
		return nil, err
	}
	if analytics == nil {
		analytics = &entities.SurveyAnalytics{
			SurveyID:  surveyID,
			CreatedAt: time.Now(),
		}
	}

	responses, err := u.responseRepo.FindBySurvey(surveyID)
	if err != nil {
		log.Printf("analytics: failed to load responses for survey %d: %v", surveyID, err)
		analytics.AnalysisSummary = "Error generating analysis: " + err.Error()
		analytics.Insights = emptyInsights
		if saveErr := u.analyticsRepo.Save(analytics); saveErr != nil {
			return nil, saveErr
		}
		return analytics, nil
	}

	if len(responses) == 0 {
		analytics.AnalysisSummary = noResponsesSummary
		analytics.Insights = emptyInsights
		if err := u.analyticsRepo.Save(analytics); err != nil {
			return nil, err
		}
		return analytics, nil
	}

	prompt := formatSurveyData(survey, responses)

	content, err := u.completions.Complete(ctx, analysisSystemPrompt, "Analyze this survey data:\n\n"+prompt)
	if err != nil {
		// Swallowed per the API contract, but logged so the failure is visible
		log.Printf("analytics: completion call failed for survey %d: %v", surveyID, err)
		analytics.AnalysisSummary = "Error analyzing survey: " + err.Error()
		analytics.Insights = emptyInsights
	} else {
		summary, insights, ok := parseAnalysis(content)
		if !ok {
			log.Printf("analytics: unparsable completion content for survey %d", surveyID)
			summary = unexpectedFormatSummary
			insights = emptyInsights
		}
		analytics.AnalysisSummary = summary
		analytics.Insights = insights
	}

	if err := u.analyticsRepo.Save(analytics); err != nil {
		return nil, err
	}
	return analytics, nil
}

// DeleteAnalytics remove um registro de análise
func (u *AnalyticsUseCase) DeleteAnalytics(analyticsID int64) error {
	return u.analyticsRepo.Delete(analyticsID)
}

// formatSurveyData renders the flat text block sent to the model: title,
// description, then each question with a bulleted list of its raw answers.
// Questions appear in first-seen order over the response list, which is not
// necessarily the survey's own question order.
func formatSurveyData(survey *entities.Survey, responses []entities.Response) string {
	var data strings.Builder
	data.WriteString("Survey Title: " + survey.Title + "\n")
	data.WriteString("Description: " + survey.Description + "\n\n")

	var order []int64
	questionTexts := make(map[int64]string)
	answersByQuestion := make(map[int64][]string)

	for _, response := range responses {
		if response.Question == nil {
			continue
		}
		qID := response.Question.QuestionID
		if _, seen := questionTexts[qID]; !seen {
			order = append(order, qID)
			questionTexts[qID] = response.Question.QuestionText
		}
		answersByQuestion[qID] = append(answersByQuestion[qID], response.AnswerText)
	}

	for _, qID := range order {
		data.WriteString("Question: " + questionTexts[qID] + "\n")
		data.WriteString("Responses:\n")
		for _, answer := range answersByQuestion[qID] {
			data.WriteString("- " + answer + "\n")
		}
		data.WriteString("\n")
	}

	return data.String()
}

// parseAnalysis extracts the summary and insights fields from the model's
// content. Code fences around the JSON are tolerated; anything else that is
// not a JSON object with a summary field counts as unparsable.
func parseAnalysis(content string) (summary, insights string, ok bool) {
	trimmed := strings.TrimSpace(content)
	if strings.HasPrefix(trimmed, "```") {
		trimmed = strings.TrimPrefix(trimmed, "```json")
		trimmed = strings.TrimPrefix(trimmed, "```")
		trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
		trimmed = strings.TrimSpace(trimmed)
	}

	var parsed struct {
		Summary  string          `json:"summary"`
		Insights json.RawMessage `json:"insights"`
	}
	if err := json.Unmarshal([]byte(trimmed), &parsed); err != nil {
		return "", "", false
	}
	if parsed.Summary == "" {
		return "", "", false
	}

	insights = emptyInsights
	if len(parsed.Insights) > 0 {
		insights = string(parsed.Insights)
	}
	return parsed.Summary, insights, true
}
