package handlers

import (
	"errors"
	"net/http"

	apierrors "github.com/arjunm/skillsprint/internal/errors"
	"github.com/arjunm/skillsprint/internal/middleware"
	"github.com/arjunm/skillsprint/internal/services"
	"github.com/gin-gonic/gin"
)

// QuizHandler coordinates quiz HTTP handlers.
type QuizHandler struct {
	quizService *services.QuizService
}

// NewQuizHandler creates a new QuizHandler.
func NewQuizHandler(quizService *services.QuizService) *QuizHandler {
	return &QuizHandler{
		quizService: quizService,
	}
}

// Generate produces a fresh set of multiple-choice questions.
func (h *QuizHandler) Generate(c *gin.Context) {
	type GenerateQuizRequest struct {
		Category     string `json:"category" binding:"required"`
		Subcategory  string `json:"sub_category"`
		Difficulty   string `json:"difficulty"`
		NumQuestions int    `json:"num_questions"`
	}

	var req GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	questions, err := h.quizService.GenerateQuiz(c.Request.Context(), services.GenerateQuizInput{
		Category:     req.Category,
		Subcategory:  req.Subcategory,
		Difficulty:   req.Difficulty,
		NumQuestions: req.NumQuestions,
	})
	if err != nil {
		respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"questions": questions})
}

// Submit scores a finished quiz and applies the XP and streak effects.
func (h *QuizHandler) Submit(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type SubmitQuizRequest struct {
		Category       string `json:"category" binding:"required"`
		Score          *int   `json:"score" binding:"required"`
		TotalQuestions int    `json:"total_questions" binding:"required"`
	}

	var req SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.quizService.SubmitQuiz(services.SubmitQuizInput{
		UserID:         userID,
		Category:       req.Category,
		Score:          *req.Score,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		respondQuizError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func respondQuizError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrInvalidSubmission):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrNoQuestionsGenerated):
		apierrors.BadGateway(c, err.Error())
	case errors.Is(err, services.ErrLLMNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
