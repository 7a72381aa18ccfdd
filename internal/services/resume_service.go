package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/arjunm/skillsprint/internal/models"
	"github.com/arjunm/skillsprint/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrResumeTextRequired = errors.New("resume text is required")
	ErrNoResumeOnRecord   = errors.New("no resume analysis on record")
	ErrNoSkillsOnRecord   = errors.New("no skills on record; analyze a resume first")
)

// ResumeService handles resume analysis and skill-gap reporting.
type ResumeService struct {
	resumeRepo repository.ResumeRepository
	llm        *LLMService
}

// NewResumeService creates a new ResumeService
func NewResumeService(resumeRepo repository.ResumeRepository, llm *LLMService) *ResumeService {
	return &ResumeService{
		resumeRepo: resumeRepo,
		llm:        llm,
	}
}

// Analyze extracts structured insights from raw resume text, persists the
// analysis, and refreshes the user's profile with the extracted skills.
func (s *ResumeService) Analyze(ctx context.Context, userID uint64, resumeText string) (*ResumeInsights, error) {
	if s.llm == nil {
		return nil, ErrLLMNotConfigured
	}

	resumeText = strings.TrimSpace(resumeText)
	if resumeText == "" {
		return nil, ErrResumeTextRequired
	}

	insights, err := s.llm.AnalyzeResume(ctx, resumeText)
	if err != nil {
		return nil, fmt.Errorf("failed to analyze resume: %w", err)
	}

	result, err := json.Marshal(insights)
	if err != nil {
		return nil, fmt.Errorf("failed to encode analysis: %w", err)
	}

	analysis := &models.ResumeAnalysis{
		UserID:     userID,
		ResumeText: resumeText,
		Result:     result,
	}
	if err := s.resumeRepo.Create(analysis); err != nil {
		return nil, fmt.Errorf("failed to save analysis: %w", err)
	}

	profile := &models.UserProfile{
		UserID:          userID,
		Education:       strings.Join(insights.Education, "; "),
		ExperienceYears: insights.ExperienceYears,
		Skills:          insights.Skills,
	}
	if err := s.resumeRepo.UpsertProfile(profile); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	return insights, nil
}

// Latest returns the user's most recent analysis.
func (s *ResumeService) Latest(userID uint64) (*models.ResumeAnalysis, error) {
	analysis, err := s.resumeRepo.FindLatestByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNoResumeOnRecord
		}
		return nil, fmt.Errorf("failed to load analysis: %w", err)
	}
	return analysis, nil
}

// SkillGaps reports missing skills for a target role based on the skills
// extracted from the user's most recent resume analysis.
func (s *ResumeService) SkillGaps(ctx context.Context, userID uint64, targetRole string) (*SkillGapReport, error) {
	if s.llm == nil {
		return nil, ErrLLMNotConfigured
	}

	analysis, err := s.Latest(userID)
	if err != nil {
		return nil, err
	}

	var insights ResumeInsights
	if err := json.Unmarshal(analysis.Result, &insights); err != nil {
		return nil, fmt.Errorf("failed to decode stored analysis: %w", err)
	}
	if len(insights.Skills) == 0 {
		return nil, ErrNoSkillsOnRecord
	}

	report, err := s.llm.FindSkillGaps(ctx, insights.Skills, targetRole)
	if err != nil {
		return nil, fmt.Errorf("failed to compute skill gaps: %w", err)
	}
	return report, nil
}
