package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/arjunm/skillsprint/internal/dto"
	apierrors "github.com/arjunm/skillsprint/internal/errors"
	"github.com/arjunm/skillsprint/internal/middleware"
	"github.com/arjunm/skillsprint/internal/services"
	"github.com/gin-gonic/gin"
)

// RoadmapHandler coordinates roadmap HTTP handlers.
type RoadmapHandler struct {
	roadmapService *services.RoadmapService
}

// NewRoadmapHandler creates a new RoadmapHandler.
func NewRoadmapHandler(roadmapService *services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{
		roadmapService: roadmapService,
	}
}

// Generate creates a new roadmap from an LLM-produced day plan.
func (h *RoadmapHandler) Generate(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	type GenerateRequest struct {
		Role       string `json:"role" binding:"required"`
		SkillLevel string `json:"skill_level" binding:"required"`
		FocusType  string `json:"roadmap_type"`
		EndDate    string `json:"end_date" binding:"required"`
	}

	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		apierrors.BadRequest(c, "end_date must be formatted YYYY-MM-DD")
		return
	}

	roadmap, err := h.roadmapService.Generate(c.Request.Context(), services.GenerateRoadmapInput{
		UserID:     userID,
		Role:       req.Role,
		SkillLevel: req.SkillLevel,
		FocusType:  req.FocusType,
		EndDate:    endDate,
	})
	if err != nil {
		respondRoadmapError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":    "Roadmap created successfully",
		"roadmap_id": roadmap.ID,
	})
}

// Dashboard returns the active roadmap and its full task calendar. Overdue
// PENDING tasks are swept to MISSED before the read.
func (h *RoadmapHandler) Dashboard(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	snapshot, err := h.roadmapService.Dashboard(userID)
	if err != nil {
		respondRoadmapError(c, err)
		return
	}

	resp := dto.DashboardResponse{Status: snapshot.Status}
	if snapshot.Roadmap != nil {
		header := dto.ToRoadmapDTO(*snapshot.Roadmap)
		resp.RoadmapDetails = &header
		resp.AllTasks = dto.ToRoadmapTaskDTOs(snapshot.Tasks)
	}

	c.JSON(http.StatusOK, resp)
}

// Complete marks one task COMPLETED.
func (h *RoadmapHandler) Complete(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	task, err := h.roadmapService.CompleteTask(userID, taskID)
	if err != nil {
		respondRoadmapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task completed",
		"task":    dto.ToRoadmapTaskDTO(*task),
	})
}

// Reschedule slides all incomplete tasks to start from today.
func (h *RoadmapHandler) Reschedule(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	roadmapID, ok := parseIDParam(c, "roadmap_id")
	if !ok {
		return
	}

	tasks, err := h.roadmapService.Reschedule(userID, roadmapID)
	if err != nil {
		respondRoadmapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Roadmap rescheduled",
		"tasks":   dto.ToRoadmapTaskDTOs(tasks),
	})
}

// FinishEarly completes the next pending task regardless of its date.
func (h *RoadmapHandler) FinishEarly(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	roadmapID, ok := parseIDParam(c, "roadmap_id")
	if !ok {
		return
	}

	task, err := h.roadmapService.FinishEarly(userID, roadmapID)
	if err != nil {
		respondRoadmapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Task completed early",
		"task":    dto.ToRoadmapTaskDTO(*task),
	})
}

// TogglePause pauses the roadmap or resumes it with a date shift.
func (h *RoadmapHandler) TogglePause(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	roadmapID, ok := parseIDParam(c, "roadmap_id")
	if !ok {
		return
	}

	paused, err := h.roadmapService.TogglePause(userID, roadmapID)
	if err != nil {
		respondRoadmapError(c, err)
		return
	}

	status := "active"
	if paused {
		status = "paused"
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Archive deactivates the caller's active roadmap.
func (h *RoadmapHandler) Archive(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.roadmapService.Archive(userID); err != nil {
		respondRoadmapError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Archived"})
}

func parseIDParam(c *gin.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid "+name)
		return 0, false
	}
	return id, true
}

func respondRoadmapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrTimelineTooShort), errors.Is(err, services.ErrTimelineTooLong):
		apierrors.Validation(c, err.Error())
	case errors.Is(err, services.ErrRoadmapNotFound),
		errors.Is(err, services.ErrTaskNotFound),
		errors.Is(err, services.ErrNoPendingTasks):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyPlan):
		apierrors.BadGateway(c, err.Error())
	case errors.Is(err, services.ErrLLMNotConfigured):
		apierrors.ServiceUnavailable(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
