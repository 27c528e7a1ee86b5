package usecases

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"github.com/surveyx/surveyx-api/internal/domain/repositories"
	"github.com/surveyx/surveyx-api/internal/infrastructure/database/migrations"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testBaseURL = "http://localhost:5173"

// setupTestDB opens a fresh in-memory database, isolated per test
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := migrations.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	if err := migrations.AddIndexes(db); err != nil {
		t.Fatalf("failed to add indexes: %v", err)
	}

	return db
}

type testEnv struct {
	db        *gorm.DB
	surveys   *SurveyUseCase
	questions *QuestionUseCase
	responses *ResponseUseCase
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := setupTestDB(t)
	surveyRepo := repositories.NewSurveyRepository(db)
	questionRepo := repositories.NewQuestionRepository(db)
	responseRepo := repositories.NewResponseRepository(db)
	analyticsRepo := repositories.NewAnalyticsRepository(db)

	return &testEnv{
		db:        db,
		surveys:   NewSurveyUseCase(surveyRepo, questionRepo, responseRepo, analyticsRepo, testBaseURL),
		questions: NewQuestionUseCase(questionRepo, surveyRepo),
		responses: NewResponseUseCase(responseRepo, surveyRepo),
	}
}

func (e *testEnv) createSurvey(t *testing.T, title, status string) *entities.Survey {
	t.Helper()

	survey, err := e.surveys.CreateSurvey(&entities.Survey{
		CreatorID:   1,
		Title:       title,
		Description: "test survey",
	})
	if err != nil {
		t.Fatalf("failed to create survey: %v", err)
	}

	if status != entities.SurveyStatusDraft {
		survey.Status = status
		survey.UpdatedAt = time.Now()
		if err := e.db.Save(survey).Error; err != nil {
			t.Fatalf("failed to set survey status: %v", err)
		}
	}

	return survey
}

func (e *testEnv) createQuestion(t *testing.T, surveyID int64, text string) *entities.Question {
	t.Helper()

	question, err := e.questions.CreateQuestion(&entities.Question{
		SurveyID:     surveyID,
		QuestionText: text,
		QuestionType: entities.QuestionTypeText,
		Required:     true,
	})
	if err != nil {
		t.Fatalf("failed to create question: %v", err)
	}
	return question
}
