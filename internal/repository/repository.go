package repository

import (
	"time"

	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id uint64) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)
}

// RoadmapRepository defines the interface for roadmap and task data access
type RoadmapRepository interface {
	// CreateWithTasks persists a roadmap and its full task list atomically,
	// archiving any previously active roadmap of the same user.
	CreateWithTasks(roadmap *models.Roadmap, tasks []models.RoadmapTask) error

	// FindByIDForUser finds a roadmap owned by the given user
	FindByIDForUser(id, userID uint64) (*models.Roadmap, error)

	// FindActiveByUserID finds the user's active roadmap
	FindActiveByUserID(userID uint64) (*models.Roadmap, error)

	// ListTasks returns all tasks of a roadmap ordered by day number
	ListTasks(roadmapID uint64) ([]models.RoadmapTask, error)

	// FindTaskForUser finds a task whose parent roadmap is owned by the user
	FindTaskForUser(taskID, userID uint64) (*models.RoadmapTask, error)

	// FirstPendingTask returns the lowest-day-number PENDING task
	FirstPendingTask(roadmapID uint64) (*models.RoadmapTask, error)

	// FirstIncompleteTask returns the lowest-day-number PENDING or MISSED task
	FirstIncompleteTask(roadmapID uint64) (*models.RoadmapTask, error)

	// MarkOverdueMissed flips PENDING tasks dated before today to MISSED
	MarkOverdueMissed(roadmapID uint64, today time.Time) (int64, error)

	// RescheduleIncomplete reassigns PENDING/MISSED tasks to consecutive
	// dates starting at start, in day-number order, resetting them to PENDING.
	RescheduleIncomplete(roadmapID uint64, start time.Time) error

	// UpdateTask updates a single task
	UpdateTask(task *models.RoadmapTask) error

	// SetPaused updates the paused flag
	SetPaused(roadmapID uint64, paused bool) error

	// ResumeWithShift clears the paused flag and shifts every task with
	// day number >= fromDay forward by shiftDays days, in one transaction.
	ResumeWithShift(roadmapID uint64, fromDay, shiftDays int) error

	// DeactivateActive archives the user's active roadmap, returning the
	// number of roadmaps affected.
	DeactivateActive(userID uint64) (int64, error)
}

// LeaderboardEntry is one ranked row of the XP leaderboard.
type LeaderboardEntry struct {
	UserID   uint64 `json:"user_id"`
	Username string `json:"username"`
	TotalXP  int    `json:"total_xp"`
}

// ProgressRepository defines the interface for gamification data access
type ProgressRepository interface {
	// GetOrCreateProgress returns the user's progress row, creating it if absent
	GetOrCreateProgress(userID uint64) (*models.UserProgress, error)

	// AddXP atomically increments the user's XP total
	AddXP(userID uint64, xp int) error

	// GetOrCreateStreak returns the user's streak row, creating it if absent
	GetOrCreateStreak(userID uint64) (*models.Streak, error)

	// SaveStreak updates a streak row
	SaveStreak(streak *models.Streak) error

	// CreateAttempt records a quiz attempt
	CreateAttempt(attempt *models.QuizAttempt) error

	// AttemptStats returns the attempt count and average score for a user
	AttemptStats(userID uint64) (int64, float64, error)

	// Leaderboard returns ranked entries ordered by XP descending
	Leaderboard(params utils.PaginationParams) ([]LeaderboardEntry, int64, error)

	// RankForUser returns the user's 1-based leaderboard rank
	RankForUser(userID uint64) (int64, error)
}

// ResumeRepository defines the interface for resume analysis data access
type ResumeRepository interface {
	// Create records a resume analysis
	Create(analysis *models.ResumeAnalysis) error

	// FindLatestByUserID returns the user's most recent analysis
	FindLatestByUserID(userID uint64) (*models.ResumeAnalysis, error)

	// UpsertProfile creates or updates the user's profile
	UpsertProfile(profile *models.UserProfile) error
}
