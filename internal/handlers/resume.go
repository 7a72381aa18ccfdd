package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	apierrors "github.com/arjunm/skillsprint/internal/errors"
	"github.com/arjunm/skillsprint/internal/middleware"
	"github.com/arjunm/skillsprint/internal/services"
	"github.com/gin-gonic/gin"
)

// ResumeHandler coordinates resume-analysis HTTP handlers.
type ResumeHandler struct {
	resumeService *services.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService *services.ResumeService) *ResumeHandler {
	return &ResumeHandler{
		resumeService: resumeService,
	}
}

// Analyze extracts structured insights from raw resume text.
func (h *ResumeHandler) Analyze(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type AnalyzeRequest struct {
		ResumeText string `json:"resume_text" binding:"required"`
	}

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	insights, err := h.resumeService.Analyze(c.Request.Context(), userID, req.ResumeText)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, insights)
}

// Latest returns the caller's most recent stored analysis.
func (h *ResumeHandler) Latest(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	analysis, err := h.resumeService.Latest(userID)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	var insights services.ResumeInsights
	if err := json.Unmarshal(analysis.Result, &insights); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"analyzed_at": analysis.CreatedAt,
		"insights":    insights,
	})
}

// SkillGaps reports missing skills for a target role.
func (h *ResumeHandler) SkillGaps(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type SkillGapRequest struct {
		TargetRole string `json:"target_role" binding:"required"`
	}

	var req SkillGapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	report, err := h.resumeService.SkillGaps(c.Request.Context(), userID, req.TargetRole)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func respondResumeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrResumeTextRequired):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrNoResumeOnRecord), errors.Is(err, services.ErrNoSkillsOnRecord):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrLLMNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		apierrors.BadGateway(c, "Resume analysis failed")
	}
}
