package database

import (
	"fmt"

	"github.com/arjunm/skillsprint/internal/models"
	"gorm.io/gorm"
)

// AddIndexes adds performance-critical composite indexes that AutoMigrate
// does not derive from struct tags.
func AddIndexes(db *gorm.DB) error {
	indexes := []struct {
		model   interface{}
		table   string
		name    string
		columns string
	}{
		// Dashboard lookup: the single active roadmap per user
		{&models.Roadmap{}, "roadmaps", "idx_roadmaps_user_active", "user_id, is_active"},

		// Auto-miss sweep: overdue PENDING tasks within one roadmap
		{&models.RoadmapTask{}, "roadmap_tasks", "idx_tasks_roadmap_status_date", "roadmap_id, status, date_assigned"},

		// Leaderboard ordering
		{&models.UserProgress{}, "user_progresses", "idx_progress_total_xp", "total_xp"},

		// Attempt history per user, newest first
		{&models.QuizAttempt{}, "quiz_attempts", "idx_attempts_user_created", "user_id, created_at"},
	}

	for _, idx := range indexes {
		if db.Migrator().HasIndex(idx.model, idx.name) {
			continue
		}

		sql := fmt.Sprintf("CREATE INDEX %s ON %s (%s)", idx.name, idx.table, idx.columns)
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("failed to create index %s: %w", idx.name, err)
		}
	}

	return nil
}
