package constants

// Context keys
const (
	ContextKeyUserID = "user_id"
	HeaderRequestID  = "X-Request-ID"
)

// Auth
const (
	MinPasswordLength = 8
)

// Pagination
const (
	MinPage         = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Roadmap scheduling
const (
	// MinRoadmapDays is the minimum number of days between today and the
	// target end date for a roadmap to be generated.
	MinRoadmapDays = 7

	// MaxRoadmapDays caps the plan length the LLM is asked for.
	MaxRoadmapDays = 365
)

// Gamification
const (
	XPPerCorrectAnswer = 10
	TaskCompletionXP   = 10
)

// Quiz
const (
	DefaultQuizQuestions = 5
	MaxQuizQuestions     = 20
)
