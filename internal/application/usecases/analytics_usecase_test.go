package usecases

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
)

// fakeCompletions stands in for the language model collaborator
type fakeCompletions struct {
	content string
	err     error
	calls   int
	lastMsg string
}

func (f *fakeCompletions) Complete(_ context.Context, _, user string) (string, error) {
	f.calls++
	f.lastMsg = user
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

func setupAnalytics(t *testing.T, env *testEnv, completions CompletionService) *AnalyticsUseCase {
	t.Helper()
	return NewAnalyticsUseCase(
		repositories.NewAnalyticsRepository(env.db),
		repositories.NewSurveyRepository(env.db),
		repositories.NewResponseRepository(env.db),
		completions,
	)
}

func TestGenerateAnalyticsNoResponses(t *testing.T) {
	env := setupTestEnv(t)
	survey := env.createSurvey(t, "empty", entities.SurveyStatusActive)

	fake := &fakeCompletions{}
	analytics := setupAnalytics(t, env, fake)

	result, err := analytics.GenerateAnalytics(context.Background(), survey.SurveyID)
	if err != nil {
		t.Fatalf("GenerateAnalytics failed: %v", err)
	}

	if result.AnalysisSummary != "No responses have been collected for this survey yet." {
		t.Errorf("unexpected summary: %q", result.AnalysisSummary)
	}
	if result.Insights != "{}" {
		t.Errorf("expected empty insights, got %q", result.Insights)
	}
	if fake.calls != 0 {
		t.Errorf("expected no completion call for an empty survey, got %d", fake.calls)
	}
}

func TestGenerateAnalyticsSuccess(t *testing.T) {
	env := setupTestEnv(t)
	survey := env.createSurvey(t, "S", entities.SurveyStatusActive)
	q1 := env.createQuestion(t, survey.SurveyID, "Color?")
	q2 := env.createQuestion(t, survey.SurveyID, "Size?")

	if _, _, err := env.responses.SubmitBatch(survey.SurveyLink, []SubmitAnswer{
		{QuestionID: q1.QuestionID, AnswerText: "Red"},
		{QuestionID: q2.QuestionID, AnswerText: "M"},
	}); err != nil {
		t.Fatalf("SubmitBatch failed: %v", err)
	}

	fake := &fakeCompletions{content: `{"summary": "Mostly red.", "insights": {"top_color": "red"}}`}
	analytics := setupAnalytics(t, env, fake)

	result, err := analytics.GenerateAnalytics(context.Background(), survey.SurveyID)
	if err != nil {
		t.Fatalf("GenerateAnalytics failed: %v", err)
	}

	if result.AnalysisSummary != "Mostly red." {
		t.Errorf("unexpected summary: %q", result.AnalysisSummary)
	}
	if !strings.Contains(result.Insights, "top_color") {
		t.Errorf("expected insights blob to be stored, got %q", result.Insights)
	}

	// The prompt carries the survey data grouped by question
	for _, want := range []string{"Survey Title: S", "Question: Color?", "- Red", "Question: Size?", "- M"} {
		if !strings.Contains(fake.lastMsg, want) {
			t.Errorf("prompt missing %q:\n%s", want, fake.lastMsg)
		}
	}
}

func TestGenerateAnalyticsOverwritesExistingRecord(t *testing.T) {
	env := setupTestEnv(t)
	survey := env.createSurvey(t, "S", entities.SurveyStatusActive)
	q := env.createQuestion(t, survey.SurveyID, "Color?")
	if _, _, err := env.responses.SubmitBatch(survey.SurveyLink, []SubmitAnswer{{QuestionID: q.QuestionID, AnswerText: "Red"}}); err != nil {
		t.Fatalf("SubmitBatch failed: %v", err)
	}

	fake := &fakeCompletions{content: `{"summary": "first", "insights": {}}`}
	analytics := setupAnalytics(t, env, fake)

	first, err := analytics.GenerateAnalytics(context.Background(), survey.SurveyID)
	if err != nil {
		t.Fatalf("first generation failed: %v", err)
	}

	fake.content = `{"summary": "second", "insights": {}}`
	second, err := analytics.GenerateAnalytics(context.Background(), survey.SurveyID)
	if err != nil {
		t.Fatalf("second generation failed: %v", err)
	}

	if second.AnalyticsID != first.AnalyticsID {
		t.Errorf("expected the same analytics row, got %d then %d", first.AnalyticsID, second.AnalyticsID)
	}
	if second.AnalysisSummary != "second" {
		t.Errorf("expected overwritten summary, got %q", second.AnalysisSummary)
	}

	var count int64
	env.db.Model(&entities.SurveyAnalytics{}).Where("survey_id = ?", survey.SurveyID).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly one analytics row, found %d", count)
	}
}

func TestGenerateAnalyticsCompletionFailure(t *testing.T) {
	env := setupTestEnv(t)
	survey := env.createSurvey(t, "S", entities.SurveyStatusActive)
	q := env.createQuestion(t, survey.SurveyID, "Color?")
	if _, _, err := env.responses.SubmitBatch(survey.SurveyLink, []SubmitAnswer{{QuestionID: q.QuestionID, AnswerText: "Red"}}); err != nil {
		t.Fatalf("SubmitBatch failed: %v", err)
	}

	fake := &fakeCompletions{err: errors.New("connection refused")}
	analytics := setupAnalytics(t, env, fake)

	result, err := analytics.GenerateAnalytics(context.Background(), survey.SurveyID)
	if err != nil {
		t.Fatalf("generation should not fail hard, got %v", err)
	}

	if !strings.HasPrefix(result.AnalysisSummary, "Error analyzing survey:") {
		t.Errorf("expected error summary, got %q", result.AnalysisSummary)
	}
	if result.Insights != "{}" {
		t.Errorf("expected empty insights, got %q", result.Insights)
	}

	// The degraded record is persisted
	var count int64
	env.db.Model(&entities.SurveyAnalytics{}).Where("survey_id = ?", survey.SurveyID).Count(&count)
	if count != 1 {
		t.Errorf("expected the error record to be stored, found %d rows", count)
	}
}

func TestGenerateAnalyticsUnparsableContent(t *testing.T) {
	env := setupTestEnv(t)
	survey := env.createSurvey(t, "S", entities.SurveyStatusActive)
	q := env.createQuestion(t, survey.SurveyID, "Color?")
	if _, _, err := env.responses.SubmitBatch(survey.SurveyLink, []SubmitAnswer{{QuestionID: q.QuestionID, AnswerText: "Red"}}); err != nil {
		t.Fatalf("SubmitBatch failed: %v", err)
	}

	fake := &fakeCompletions{content: "Sure! Here are my thoughts on your survey..."}
	analytics := setupAnalytics(t, env, fake)

	result, err := analytics.GenerateAnalytics(context.Background(), survey.SurveyID)
	if err != nil {
		t.Fatalf("generation should not fail hard, got %v", err)
	}

	if result.AnalysisSummary != "Analysis completed but format was unexpected." {
		t.Errorf("unexpected summary: %q", result.AnalysisSummary)
	}
	if result.Insights != "{}" {
		t.Errorf("expected empty insights, got %q", result.Insights)
	}
}

func TestGenerateAnalyticsSurveyNotFound(t *testing.T) {
	env := setupTestEnv(t)
	analytics := setupAnalytics(t, env, &fakeCompletions{})

	if _, err := analytics.GenerateAnalytics(context.Background(), 404); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetAnalyticsReturnsNilBeforeGeneration(t *testing.T) {
	env := setupTestEnv(t)
	survey := env.createSurvey(t, "S", entities.SurveyStatusActive)
	analytics := setupAnalytics(t, env, &fakeCompletions{})

	result, err := analytics.GetAnalytics(survey.SurveyID)
	if err != nil {
		t.Fatalf("GetAnalytics failed: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil before generation, got %+v", result)
	}
}

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		wantSummary string
		wantOK      bool
	}{
		{"plain json", `{"summary": "ok", "insights": {"a": 1}}`, "ok", true},
		{"fenced json", "```json\n{\"summary\": \"ok\", \"insights\": {}}\n```", "ok", true},
		{"fence without language", "```\n{\"summary\": \"ok\"}\n```", "ok", true},
		{"prose", "Here is my analysis of the survey.", "", false},
		{"missing summary", `{"insights": {}}`, "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary, insights, ok := parseAnalysis(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if summary != tt.wantSummary {
				t.Errorf("summary = %q, want %q", summary, tt.wantSummary)
			}
			if ok && insights == "" {
				t.Error("expected insights to default to {} when present")
			}
		})
	}
}

func TestFormatSurveyDataGroupsInFirstSeenOrder(t *testing.T) {
	survey := &entities.Survey{Title: "S", Description: "D"}
	q1 := &entities.Question{QuestionID: 1, QuestionText: "Color?"}
	q2 := &entities.Question{QuestionID: 2, QuestionText: "Size?"}

	responses := []entities.Response{
		{Question: q2, AnswerText: "M"},
		{Question: q1, AnswerText: "Red"},
		{Question: q2, AnswerText: "L"},
		{Question: nil, AnswerText: "orphaned"},
	}

	got := formatSurveyData(survey, responses)

	sizeIdx := strings.Index(got, "Question: Size?")
	colorIdx := strings.Index(got, "Question: Color?")
	if sizeIdx == -1 || colorIdx == -1 {
		t.Fatalf("missing question headings:\n%s", got)
	}
	if sizeIdx > colorIdx {
		t.Error("expected first-seen question order, Size? should come first")
	}
	if !strings.Contains(got, "- M\n- L\n") {
		t.Errorf("expected Size answers grouped together:\n%s", got)
	}
	if strings.Contains(got, "orphaned") {
		t.Error("responses without a question should be skipped")
	}
}
