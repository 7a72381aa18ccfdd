package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/arjunm/skillsprint/internal/constants"
	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrTimelineTooShort = errors.New("timeline too short (minimum 7 days)")
	ErrTimelineTooLong  = errors.New("timeline too long")
	ErrRoadmapNotFound  = errors.New("roadmap not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrNoPendingTasks   = errors.New("no pending tasks found")
	ErrEmptyPlan        = errors.New("plan generation returned no tasks")
	ErrLLMNotConfigured = errors.New("plan generation is not configured")
)

// planGenerator produces the day-by-day plan a roadmap is built from.
// *LLMService satisfies it in production.
type planGenerator interface {
	GenerateRoadmapPlan(ctx context.Context, role string, days int, skillLevel, focusType string) ([]DayPlan, error)
}

// RoadmapService owns roadmap generation and the task schedule state
// machine: auto-miss sweep, complete, reschedule, finish-early and
// pause/resume date shifting.
type RoadmapService struct {
	roadmapRepo repository.RoadmapRepository
	progress    *ProgressService
	planner     planGenerator

	// now is injected so date-boundary behavior is testable
	now func() time.Time
}

// NewRoadmapService creates a new RoadmapService
func NewRoadmapService(roadmapRepo repository.RoadmapRepository, progress *ProgressService, llm *LLMService) *RoadmapService {
	s := &RoadmapService{
		roadmapRepo: roadmapRepo,
		progress:    progress,
		now:         time.Now,
	}
	// Assign only a non-nil client so the configured check below stays a
	// plain nil comparison on the interface.
	if llm != nil {
		s.planner = llm
	}
	return s
}

// GenerateRoadmapInput represents input for roadmap generation
type GenerateRoadmapInput struct {
	UserID     uint64
	Role       string
	SkillLevel string
	FocusType  string
	EndDate    time.Time
}

// DashboardSnapshot is the calendar projection of the active roadmap.
type DashboardSnapshot struct {
	Status  string
	Roadmap *models.Roadmap
	Tasks   []models.RoadmapTask
}

// Generate builds a day-by-day plan via the LLM and persists the roadmap
// with its full task list in one transaction. An empty or malformed plan
// fails generation before any row is written.
func (s *RoadmapService) Generate(ctx context.Context, input GenerateRoadmapInput) (*models.Roadmap, error) {
	if s.planner == nil {
		return nil, ErrLLMNotConfigured
	}

	today := dateOnly(s.now())
	endDate := dateOnly(input.EndDate)

	days := daysBetween(today, endDate)
	if days < constants.MinRoadmapDays {
		return nil, ErrTimelineTooShort
	}
	if days > constants.MaxRoadmapDays {
		return nil, ErrTimelineTooLong
	}

	plan, err := s.planner.GenerateRoadmapPlan(ctx, input.Role, days, input.SkillLevel, input.FocusType)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan: %w", err)
	}
	if len(plan) == 0 {
		return nil, ErrEmptyPlan
	}

	// Day numbers are reassigned sequentially from the sorted plan so the
	// per-roadmap uniqueness invariant holds even when the model emits
	// duplicate or out-of-order day fields.
	sort.SliceStable(plan, func(i, j int) bool { return plan[i].Day < plan[j].Day })

	roadmap := &models.Roadmap{
		UserID:     input.UserID,
		Role:       input.Role,
		SkillLevel: input.SkillLevel,
		FocusType:  input.FocusType,
		StartDate:  today,
		EndDate:    endDate,
		IsActive:   true,
	}

	tasks := make([]models.RoadmapTask, len(plan))
	for i, day := range plan {
		tasks[i] = models.RoadmapTask{
			DayNumber:        i + 1,
			ModuleName:       day.Module,
			Topic:            day.Topic,
			Description:      day.Description,
			Resources:        day.Resources,
			EstimatedMinutes: day.TimeMinutes,
			DateAssigned:     today.AddDate(0, 0, i),
			Status:           models.TaskStatusPending,
		}
	}

	if err := s.roadmapRepo.CreateWithTasks(roadmap, tasks); err != nil {
		return nil, fmt.Errorf("failed to persist roadmap: %w", err)
	}

	return roadmap, nil
}

// Dashboard returns the active roadmap with all tasks, applying the lazy
// auto-miss sweep first: any PENDING task dated before today becomes MISSED.
// The sweep is skipped while the roadmap is paused so reads during a pause
// never manufacture missed days.
func (s *RoadmapService) Dashboard(userID uint64) (*DashboardSnapshot, error) {
	roadmap, err := s.roadmapRepo.FindActiveByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &DashboardSnapshot{Status: "no_roadmap"}, nil
		}
		return nil, fmt.Errorf("failed to find roadmap: %w", err)
	}

	if !roadmap.IsPaused {
		if _, err := s.roadmapRepo.MarkOverdueMissed(roadmap.ID, dateOnly(s.now())); err != nil {
			return nil, fmt.Errorf("failed to sweep overdue tasks: %w", err)
		}
	}

	tasks, err := s.roadmapRepo.ListTasks(roadmap.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	return &DashboardSnapshot{
		Status:  "active",
		Roadmap: roadmap,
		Tasks:   tasks,
	}, nil
}

// CompleteTask marks a task COMPLETED. Ownership is verified through the
// parent roadmap; a mismatch reads as not-found. Completing an already
// completed task is a no-op so XP is never awarded twice.
func (s *RoadmapService) CompleteTask(userID, taskID uint64) (*models.RoadmapTask, error) {
	task, err := s.roadmapRepo.FindTaskForUser(taskID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	if task.Status == models.TaskStatusCompleted {
		return task, nil
	}

	task.Status = models.TaskStatusCompleted
	if err := s.roadmapRepo.UpdateTask(task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	s.awardCompletion(userID)

	return task, nil
}

// Reschedule slides every PENDING or MISSED task to consecutive dates
// starting today, in day-number order, resetting missed tasks to PENDING.
// Time debt from missed days is forgiven.
func (s *RoadmapService) Reschedule(userID, roadmapID uint64) ([]models.RoadmapTask, error) {
	if _, err := s.findOwnedRoadmap(roadmapID, userID); err != nil {
		return nil, err
	}

	if err := s.roadmapRepo.RescheduleIncomplete(roadmapID, dateOnly(s.now())); err != nil {
		return nil, fmt.Errorf("failed to reschedule: %w", err)
	}

	tasks, err := s.roadmapRepo.ListTasks(roadmapID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// FinishEarly completes the lowest-day-number PENDING task regardless of its
// assigned date, allowing tomorrow's task to be finished today.
func (s *RoadmapService) FinishEarly(userID, roadmapID uint64) (*models.RoadmapTask, error) {
	if _, err := s.findOwnedRoadmap(roadmapID, userID); err != nil {
		return nil, err
	}

	task, err := s.roadmapRepo.FirstPendingTask(roadmapID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoPendingTasks
		}
		return nil, fmt.Errorf("failed to find pending task: %w", err)
	}

	task.Status = models.TaskStatusCompleted
	if err := s.roadmapRepo.UpdateTask(task); err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	s.awardCompletion(userID)

	return task, nil
}

// TogglePause flips the paused flag. Resuming re-anchors the remaining
// schedule: when the earliest incomplete task is overdue by d days, every
// task from its day number onward shifts forward by exactly d days,
// preserving relative spacing and leaving completed history untouched.
// Returns the resulting paused state.
func (s *RoadmapService) TogglePause(userID, roadmapID uint64) (bool, error) {
	roadmap, err := s.findOwnedRoadmap(roadmapID, userID)
	if err != nil {
		return false, err
	}

	if !roadmap.IsPaused {
		if err := s.roadmapRepo.SetPaused(roadmapID, true); err != nil {
			return false, fmt.Errorf("failed to pause: %w", err)
		}
		return true, nil
	}

	fromDay, shiftDays := 0, 0
	first, err := s.roadmapRepo.FirstIncompleteTask(roadmapID)
	switch {
	case err == nil:
		fromDay = first.DayNumber
		if d := daysBetween(dateOnly(first.DateAssigned), dateOnly(s.now())); d > 0 {
			shiftDays = d
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		// everything completed; nothing to shift
	default:
		return false, fmt.Errorf("failed to find incomplete task: %w", err)
	}

	if err := s.roadmapRepo.ResumeWithShift(roadmapID, fromDay, shiftDays); err != nil {
		return false, fmt.Errorf("failed to resume: %w", err)
	}

	return false, nil
}

// Archive marks the user's active roadmap inactive. Tasks are untouched.
func (s *RoadmapService) Archive(userID uint64) error {
	affected, err := s.roadmapRepo.DeactivateActive(userID)
	if err != nil {
		return fmt.Errorf("failed to archive roadmap: %w", err)
	}
	if affected == 0 {
		return ErrRoadmapNotFound
	}
	return nil
}

func (s *RoadmapService) findOwnedRoadmap(roadmapID, userID uint64) (*models.Roadmap, error) {
	roadmap, err := s.roadmapRepo.FindByIDForUser(roadmapID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoadmapNotFound
		}
		return nil, fmt.Errorf("failed to find roadmap: %w", err)
	}
	return roadmap, nil
}

// awardCompletion credits task-completion XP and touches the streak.
// Gamification failures never fail the completing request.
func (s *RoadmapService) awardCompletion(userID uint64) {
	if s.progress == nil {
		return
	}
	if err := s.progress.AwardTaskCompletion(userID); err != nil {
		zap.L().Warn("failed to award task completion", zap.Uint64("user_id", userID), zap.Error(err))
	}
}

// dateOnly normalizes a timestamp to UTC midnight of its calendar day.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysBetween returns the whole days from one midnight to another.
func daysBetween(from, to time.Time) int {
	return int(to.Sub(from).Hours() / 24)
}
