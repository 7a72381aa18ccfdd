package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/arjunm/skillsprint/internal/metrics"
	"github.com/arjunm/skillsprint/internal/models"
	openai "github.com/sashabaranov/go-openai"
)

// LLMService wraps the chat-completion backend behind typed operations.
// The client is constructed once at startup and injected into the services
// that need it.
type LLMService struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewLLMService creates an LLMService against an OpenAI-compatible endpoint.
// baseURL may point at any compatible provider (Groq, OpenAI, a local proxy).
func NewLLMService(apiKey, baseURL, model string, timeout time.Duration) *LLMService {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &LLMService{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// DayPlan is one day of a generated roadmap.
type DayPlan struct {
	Day         int               `json:"day"`
	Module      string            `json:"module"`
	Topic       string            `json:"topic"`
	Description string            `json:"description"`
	Resources   []models.Resource `json:"resources"`
	TimeMinutes int               `json:"time_min"`
}

// QuizQuestion is one generated multiple-choice question.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
	Difficulty    string   `json:"difficulty"`
}

// ResumeInsights is the structured result of a resume analysis.
type ResumeInsights struct {
	Skills          []string `json:"skills"`
	ExperienceYears int      `json:"experience_years"`
	Education       []string `json:"education"`
	Certifications  []string `json:"certifications"`
	Projects        []string `json:"projects"`
	Languages       []string `json:"languages"`
	Summary         string   `json:"summary"`
}

// SkillGapReport compares current skills against a target role.
type SkillGapReport struct {
	RequiredSkills       []string `json:"required_skills"`
	MissingSkills        []string `json:"missing_skills"`
	SkillMatchPercentage int      `json:"skill_match_percentage"`
	PrioritySkills       []string `json:"priority_skills"`
	LearningWeeks        int      `json:"estimated_learning_time_weeks"`
	Recommendations      []string `json:"recommendations"`
}

// GenerateRoadmapPlan asks the model for a day-by-day study plan.
func (s *LLMService) GenerateRoadmapPlan(ctx context.Context, role string, days int, skillLevel, focusType string) ([]DayPlan, error) {
	prompt := fmt.Sprintf(`You are a strictly structured senior technical mentor. Create a detailed %d-day study roadmap for a %s %s.
Focus Area: %s.

CRITICAL OUTPUT RULES:
1. Output MUST be valid JSON only. No markdown formatting.
2. "resources" must be an ARRAY of objects with "title" and "url".
3. For DSA topics, provide a matching LeetCode or GeeksForGeeks problem link.
4. For theory, provide a high-quality article or documentation link.

JSON FORMAT:
{
  "roadmap": [
    {
      "day": 1,
      "module": "Arrays",
      "topic": "Kadane's Algorithm",
      "description": "Understand the logic behind maximum subarray sum. Solve 1 easy and 1 medium problem.",
      "resources": [
        {"title": "Read: Kadane's Algo Explanation", "url": "https://www.geeksforgeeks.org/largest-sum-contiguous-subarray/"}
      ],
      "time_min": 90
    }
  ]
}`, days, skillLevel, role, focusType)

	content, err := s.complete(ctx, "roadmap_plan", prompt, 0.3, true)
	if err != nil {
		return nil, err
	}

	return parseDayPlans(content)
}

// GenerateQuizQuestions asks the model for multiple-choice questions.
func (s *LLMService) GenerateQuizQuestions(ctx context.Context, category, subcategory, difficulty string, numQuestions int) ([]QuizQuestion, error) {
	prompt := fmt.Sprintf(`Generate %d multiple-choice questions for %s - %s at %s difficulty level.

Format each question as JSON:
{
  "question": "Question text here",
  "options": ["Option A", "Option B", "Option C", "Option D"],
  "correct_answer": "Option A",
  "explanation": "Explanation of why this is correct",
  "difficulty": "%s"
}

Return a JSON object of the form {"questions": [...]}. Generate ONLY valid JSON, no additional text.`,
		numQuestions, category, subcategory, difficulty, difficulty)

	content, err := s.complete(ctx, "quiz", prompt, 0.7, true)
	if err != nil {
		return nil, err
	}

	return parseQuizQuestions(content)
}

// AnalyzeResume extracts structured insights from raw resume text.
func (s *LLMService) AnalyzeResume(ctx context.Context, resumeText string) (*ResumeInsights, error) {
	prompt := fmt.Sprintf(`Analyze this resume and extract the following information in JSON format:
{
  "skills": [],
  "experience_years": 0,
  "education": [],
  "certifications": [],
  "projects": [],
  "languages": [],
  "summary": ""
}

Resume:
%s

Return ONLY the JSON response, no additional text.`, resumeText)

	content, err := s.complete(ctx, "resume_analysis", prompt, 0.3, true)
	if err != nil {
		return nil, err
	}

	var insights ResumeInsights
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &insights); err != nil {
		return nil, fmt.Errorf("failed to parse resume analysis: %w", err)
	}
	return &insights, nil
}

// FindSkillGaps compares current skills against the requirements of a role.
func (s *LLMService) FindSkillGaps(ctx context.Context, currentSkills []string, targetRole string) (*SkillGapReport, error) {
	prompt := fmt.Sprintf(`Given these current skills: %s

And a target role: %s

Provide a JSON response with:
{
  "required_skills": [],
  "missing_skills": [],
  "skill_match_percentage": 0,
  "priority_skills": [],
  "estimated_learning_time_weeks": 0,
  "recommendations": []
}

Return ONLY the JSON response.`, strings.Join(currentSkills, ", "), targetRole)

	content, err := s.complete(ctx, "skill_gaps", prompt, 0.5, true)
	if err != nil {
		return nil, err
	}

	var report SkillGapReport
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &report); err != nil {
		return nil, fmt.Errorf("failed to parse skill gap report: %w", err)
	}
	return &report, nil
}

// complete runs one chat completion with a bounded timeout and records the
// call in the metrics registry.
func (s *LLMService) complete(ctx context.Context, operation, prompt string, temperature float32, jsonMode bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	req := openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: temperature,
	}
	if jsonMode {
		req.ResponseFormat = &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		}
	}

	start := time.Now()
	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		metrics.RecordLLMCall(operation, "failed", time.Since(start))
		return "", fmt.Errorf("LLM API error: %w", err)
	}
	metrics.RecordLLMCall(operation, "success", time.Since(start))

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from LLM")
	}

	return resp.Choices[0].Message.Content, nil
}

// parseDayPlans decodes either {"roadmap": [...]} or a bare array.
func parseDayPlans(content string) ([]DayPlan, error) {
	content = stripCodeFences(content)

	var wrapper struct {
		Roadmap []DayPlan `json:"roadmap"`
	}
	if err := json.Unmarshal([]byte(content), &wrapper); err == nil && len(wrapper.Roadmap) > 0 {
		return wrapper.Roadmap, nil
	}

	var plans []DayPlan
	if err := json.Unmarshal([]byte(content), &plans); err != nil {
		return nil, fmt.Errorf("failed to parse roadmap plan: %w (response: %.200s)", err, content)
	}
	return plans, nil
}

// parseQuizQuestions decodes either {"questions": [...]} or a bare array.
func parseQuizQuestions(content string) ([]QuizQuestion, error) {
	content = stripCodeFences(content)

	var wrapper struct {
		Questions []QuizQuestion `json:"questions"`
	}
	if err := json.Unmarshal([]byte(content), &wrapper); err == nil && len(wrapper.Questions) > 0 {
		return wrapper.Questions, nil
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(content), &questions); err != nil {
		return nil, fmt.Errorf("failed to parse quiz questions: %w (response: %.200s)", err, content)
	}
	return questions, nil
}

// stripCodeFences removes a surrounding markdown code fence, which some
// models emit even when asked for raw JSON.
func stripCodeFences(content string) string {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "```") {
		return content
	}

	content = strings.TrimPrefix(content, "```json")
	content = strings.TrimPrefix(content, "```")
	content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	return strings.TrimSpace(content)
}
