package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arjunm/skillsprint/internal/constants"
	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/repository"
)

var (
	ErrNoQuestionsGenerated = errors.New("no valid questions could be generated")
	ErrInvalidSubmission    = errors.New("score must be between 0 and the number of questions")
)

// QuizService handles quiz generation and scoring.
type QuizService struct {
	progressRepo repository.ProgressRepository
	progress     *ProgressService
	llm          *LLMService
}

// NewQuizService creates a new QuizService
func NewQuizService(progressRepo repository.ProgressRepository, progress *ProgressService, llm *LLMService) *QuizService {
	return &QuizService{
		progressRepo: progressRepo,
		progress:     progress,
		llm:          llm,
	}
}

// GenerateQuizInput represents input for quiz generation
type GenerateQuizInput struct {
	Category     string
	Subcategory  string
	Difficulty   string
	NumQuestions int
}

// SubmitQuizInput represents a finished quiz being scored
type SubmitQuizInput struct {
	UserID         uint64
	Category       string
	Score          int
	TotalQuestions int
}

// QuizResult summarizes the gamification effect of a submission.
type QuizResult struct {
	XPEarned      int `json:"xp_earned"`
	TotalXP       int `json:"total_xp"`
	CurrentStreak int `json:"current_streak"`
}

// GenerateQuiz produces multiple-choice questions, dropping entries the
// model returned malformed.
func (s *QuizService) GenerateQuiz(ctx context.Context, input GenerateQuizInput) ([]QuizQuestion, error) {
	if s.llm == nil {
		return nil, ErrLLMNotConfigured
	}

	n := input.NumQuestions
	if n <= 0 {
		n = constants.DefaultQuizQuestions
	}
	if n > constants.MaxQuizQuestions {
		n = constants.MaxQuizQuestions
	}

	questions, err := s.llm.GenerateQuizQuestions(ctx, input.Category, input.Subcategory, input.Difficulty, n)
	if err != nil {
		return nil, fmt.Errorf("failed to generate questions: %w", err)
	}

	valid := make([]QuizQuestion, 0, len(questions))
	for _, q := range questions {
		if strings.TrimSpace(q.Question) == "" || len(q.Options) < 2 {
			continue
		}
		valid = append(valid, q)
	}

	if len(valid) == 0 {
		return nil, ErrNoQuestionsGenerated
	}

	return valid, nil
}

// SubmitQuiz records the attempt, credits XP (10 per correct answer) and
// counts today toward the streak.
func (s *QuizService) SubmitQuiz(input SubmitQuizInput) (*QuizResult, error) {
	if input.TotalQuestions <= 0 || input.Score < 0 || input.Score > input.TotalQuestions {
		return nil, ErrInvalidSubmission
	}

	xp := input.Score * constants.XPPerCorrectAnswer

	attempt := &models.QuizAttempt{
		UserID:         input.UserID,
		Category:       input.Category,
		Score:          input.Score,
		TotalQuestions: input.TotalQuestions,
		XPEarned:       xp,
	}
	if err := s.progressRepo.CreateAttempt(attempt); err != nil {
		return nil, fmt.Errorf("failed to record attempt: %w", err)
	}

	if err := s.progress.AwardXP(input.UserID, xp); err != nil {
		return nil, err
	}
	if err := s.progress.TouchStreak(input.UserID); err != nil {
		return nil, err
	}

	progress, err := s.progressRepo.GetOrCreateProgress(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	streak, err := s.progressRepo.GetOrCreateStreak(input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load streak: %w", err)
	}

	return &QuizResult{
		XPEarned:      xp,
		TotalXP:       progress.TotalXP,
		CurrentStreak: streak.CurrentStreak,
	}, nil
}
