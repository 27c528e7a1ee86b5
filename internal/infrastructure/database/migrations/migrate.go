package migrations

import (
	"github.com/surveyx/surveyx-api/internal/domain/entities"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for all entities
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.User{},
		&entities.Survey{},
		&entities.Question{},
		&entities.Response{},
		&entities.SurveyAnalytics{},
	)
}

// AddIndexes adds indexes for the hot lookup paths: survey resolution by link
// token, and response/question scans by survey
func AddIndexes(db *gorm.DB) error {
	stmts := []string{
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_surveys_survey_link ON surveys (survey_link)",
		"CREATE INDEX IF NOT EXISTS idx_surveys_creator_id ON surveys (creator_id)",
		"CREATE INDEX IF NOT EXISTS idx_surveys_status ON surveys (status)",
		"CREATE INDEX IF NOT EXISTS idx_questions_survey_id ON questions (survey_id)",
		"CREATE INDEX IF NOT EXISTS idx_responses_survey_id ON responses (survey_id)",
		"CREATE INDEX IF NOT EXISTS idx_responses_respondent_id ON responses (respondent_id)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_survey_analytics_survey_id ON survey_analytics (survey_id)",
	}

	for _, stmt := range stmts {
		if err := db.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
