package handlers

import (
	"net/http"

	apierrors "github.com/arjunm/skillsprint/internal/errors"
	"github.com/arjunm/skillsprint/internal/middleware"
	"github.com/arjunm/skillsprint/internal/services"
	"github.com/arjunm/skillsprint/internal/utils"
	"github.com/gin-gonic/gin"
)

// ProgressHandler coordinates progress and gamification HTTP handlers.
type ProgressHandler struct {
	progressService *services.ProgressService
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progressService *services.ProgressService) *ProgressHandler {
	return &ProgressHandler{
		progressService: progressService,
	}
}

// Overview returns the caller's XP, level, quiz stats and rank.
func (h *ProgressHandler) Overview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	overview, err := h.progressService.Overview(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, overview)
}

// Streak returns the caller's streak details.
func (h *ProgressHandler) Streak(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	streak, err := h.progressService.Streak(userID)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, streak)
}

// Leaderboard returns one page of users ranked by total XP.
func (h *ProgressHandler) Leaderboard(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	entries, total, err := h.progressService.Leaderboard(params)
	if err != nil {
		apierrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"leaderboard": entries,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}
