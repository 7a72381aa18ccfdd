package services

import (
	"fmt"
	"time"

	"github.com/arjunm/skillsprint/internal/constants"
	"github.com/arjunm/skillsprint/internal/repository"
	"github.com/arjunm/skillsprint/internal/utils"
)

// ProgressService handles XP totals, streak bookkeeping and the leaderboard.
type ProgressService struct {
	progressRepo repository.ProgressRepository

	// now is injected so streak day-boundary behavior is testable
	now func() time.Time
}

// NewProgressService creates a new ProgressService
func NewProgressService(progressRepo repository.ProgressRepository) *ProgressService {
	return &ProgressService{
		progressRepo: progressRepo,
		now:          time.Now,
	}
}

// ProgressOverview is the dashboard snapshot of a user's gamified progress.
type ProgressOverview struct {
	TotalXP          int        `json:"total_xp"`
	Level            string     `json:"level"`
	AttemptCount     int64      `json:"total_quizzes_attempted"`
	AverageScore     float64    `json:"average_score"`
	CurrentStreak    int        `json:"current_streak"`
	MaxStreak        int        `json:"max_streak"`
	LastActivityDate *time.Time `json:"last_activity_date"`
	LeaderboardRank  int64      `json:"leaderboard_rank"`
}

// StreakInfo is the detailed streak view.
type StreakInfo struct {
	CurrentStreak       int        `json:"current_streak"`
	MaxStreak           int        `json:"max_streak"`
	LastActivityDate    *time.Time `json:"last_activity_date"`
	DaysUntilStreakLost *int       `json:"days_until_streak_lost"`
}

// AwardXP credits XP to the user's running total.
func (s *ProgressService) AwardXP(userID uint64, xp int) error {
	if xp <= 0 {
		return nil
	}
	if err := s.progressRepo.AddXP(userID, xp); err != nil {
		return fmt.Errorf("failed to add xp: %w", err)
	}
	return nil
}

// AwardTaskCompletion credits task-completion XP and counts today as an
// active day for the streak.
func (s *ProgressService) AwardTaskCompletion(userID uint64) error {
	if err := s.AwardXP(userID, constants.TaskCompletionXP); err != nil {
		return err
	}
	return s.TouchStreak(userID)
}

// TouchStreak records activity for today. A second touch on the same day is
// a no-op; activity on the day after the last one extends the streak; any
// larger gap resets it to 1.
func (s *ProgressService) TouchStreak(userID uint64) error {
	streak, err := s.progressRepo.GetOrCreateStreak(userID)
	if err != nil {
		return fmt.Errorf("failed to load streak: %w", err)
	}

	today := dateOnly(s.now())

	if streak.LastActivityDate != nil && dateOnly(*streak.LastActivityDate).Equal(today) {
		return nil
	}

	if streak.LastActivityDate != nil && dateOnly(*streak.LastActivityDate).Equal(today.AddDate(0, 0, -1)) {
		streak.CurrentStreak++
	} else {
		streak.CurrentStreak = 1
	}

	if streak.CurrentStreak > streak.MaxStreak {
		streak.MaxStreak = streak.CurrentStreak
	}
	streak.LastActivityDate = &today

	if err := s.progressRepo.SaveStreak(streak); err != nil {
		return fmt.Errorf("failed to save streak: %w", err)
	}
	return nil
}

// Overview assembles the user's progress snapshot.
func (s *ProgressService) Overview(userID uint64) (*ProgressOverview, error) {
	progress, err := s.progressRepo.GetOrCreateProgress(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}

	streak, err := s.progressRepo.GetOrCreateStreak(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	count, avg, err := s.progressRepo.AttemptStats(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load attempt stats: %w", err)
	}

	rank, err := s.progressRepo.RankForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute rank: %w", err)
	}

	return &ProgressOverview{
		TotalXP:          progress.TotalXP,
		Level:            levelForXP(progress.TotalXP),
		AttemptCount:     count,
		AverageScore:     avg,
		CurrentStreak:    streak.CurrentStreak,
		MaxStreak:        streak.MaxStreak,
		LastActivityDate: streak.LastActivityDate,
		LeaderboardRank:  rank,
	}, nil
}

// Streak returns the detailed streak view, including how many days remain
// before the streak lapses.
func (s *ProgressService) Streak(userID uint64) (*StreakInfo, error) {
	streak, err := s.progressRepo.GetOrCreateStreak(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	info := &StreakInfo{
		CurrentStreak:    streak.CurrentStreak,
		MaxStreak:        streak.MaxStreak,
		LastActivityDate: streak.LastActivityDate,
	}

	if streak.LastActivityDate != nil {
		days := daysBetween(dateOnly(s.now()), dateOnly(*streak.LastActivityDate).AddDate(0, 0, 1))
		info.DaysUntilStreakLost = &days
	}

	return info, nil
}

// Leaderboard returns one page of ranked entries plus the total entry count.
func (s *ProgressService) Leaderboard(params utils.PaginationParams) ([]repository.LeaderboardEntry, int64, error) {
	entries, total, err := s.progressRepo.Leaderboard(params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load leaderboard: %w", err)
	}
	return entries, total, nil
}

func levelForXP(xp int) string {
	switch {
	case xp >= 2000:
		return "Advanced"
	case xp >= 500:
		return "Intermediate"
	default:
		return "Beginner"
	}
}
