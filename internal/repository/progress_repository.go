package repository

import (
	"github.com/arjunm/skillsprint/internal/database"
	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/utils"
	"gorm.io/gorm"
)

// GormProgressRepository is a GORM implementation of ProgressRepository
type GormProgressRepository struct {
	db *gorm.DB
}

// NewProgressRepository creates a new ProgressRepository
func NewProgressRepository(db *gorm.DB) ProgressRepository {
	return &GormProgressRepository{db: db}
}

// GetOrCreateProgress returns the user's progress row, creating it if absent
func (r *GormProgressRepository) GetOrCreateProgress(userID uint64) (*models.UserProgress, error) {
	var progress models.UserProgress
	if err := r.db.Where(models.UserProgress{UserID: userID}).
		FirstOrCreate(&progress).Error; err != nil {
		return nil, err
	}
	return &progress, nil
}

// AddXP atomically increments the user's XP total
func (r *GormProgressRepository) AddXP(userID uint64, xp int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var progress models.UserProgress
		if err := tx.Where(models.UserProgress{UserID: userID}).
			FirstOrCreate(&progress).Error; err != nil {
			return err
		}

		return tx.Model(&models.UserProgress{}).
			Where("user_id = ?", userID).
			Update("total_xp", gorm.Expr("total_xp + ?", xp)).Error
	})
}

// GetOrCreateStreak returns the user's streak row, creating it if absent
func (r *GormProgressRepository) GetOrCreateStreak(userID uint64) (*models.Streak, error) {
	var streak models.Streak
	if err := r.db.Where(models.Streak{UserID: userID}).
		FirstOrCreate(&streak).Error; err != nil {
		return nil, err
	}
	return &streak, nil
}

// SaveStreak updates a streak row
func (r *GormProgressRepository) SaveStreak(streak *models.Streak) error {
	return r.db.Save(streak).Error
}

// CreateAttempt records a quiz attempt
func (r *GormProgressRepository) CreateAttempt(attempt *models.QuizAttempt) error {
	return r.db.Create(attempt).Error
}

// AttemptStats returns the attempt count and average score for a user
func (r *GormProgressRepository) AttemptStats(userID uint64) (int64, float64, error) {
	var count int64
	if err := r.db.Model(&models.QuizAttempt{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, 0, err
	}

	if count == 0 {
		return 0, 0, nil
	}

	var avg float64
	if err := r.db.Model(&models.QuizAttempt{}).
		Select("AVG(score)").
		Where("user_id = ?", userID).
		Scan(&avg).Error; err != nil {
		return 0, 0, err
	}

	return count, avg, nil
}

// Leaderboard returns ranked entries ordered by XP descending. Ties break on
// user id so the ordering is stable across requests.
func (r *GormProgressRepository) Leaderboard(params utils.PaginationParams) ([]LeaderboardEntry, int64, error) {
	var total int64
	if err := r.db.Model(&models.UserProgress{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []LeaderboardEntry
	if err := r.db.Model(&models.UserProgress{}).
		Select("user_progresses.user_id, users.username, user_progresses.total_xp").
		Joins("JOIN users ON users.id = user_progresses.user_id").
		Order("user_progresses.total_xp DESC, user_progresses.user_id ASC").
		Scopes(database.Paginate(params)).
		Scan(&entries).Error; err != nil {
		return nil, 0, err
	}

	return entries, total, nil
}

// RankForUser returns the user's 1-based leaderboard rank
func (r *GormProgressRepository) RankForUser(userID uint64) (int64, error) {
	progress, err := r.GetOrCreateProgress(userID)
	if err != nil {
		return 0, err
	}

	var ahead int64
	if err := r.db.Model(&models.UserProgress{}).
		Where("total_xp > ? OR (total_xp = ? AND user_id < ?)",
			progress.TotalXP, progress.TotalXP, userID).
		Count(&ahead).Error; err != nil {
		return 0, err
	}

	return ahead + 1, nil
}
