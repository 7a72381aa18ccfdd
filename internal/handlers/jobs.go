package handlers

import (
	"errors"
	"net/http"
	"strings"

	apierrors "github.com/arjunm/skillsprint/internal/errors"
	"github.com/arjunm/skillsprint/internal/services"
	"github.com/gin-gonic/gin"
)

// JobHandler coordinates job-search HTTP handlers.
type JobHandler struct {
	jobService *services.JobService
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(jobService *services.JobService) *JobHandler {
	return &JobHandler{
		jobService: jobService,
	}
}

// Search returns live job listings for a role query.
func (h *JobHandler) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("query"))
	if query == "" {
		apierrors.BadRequest(c, "query parameter is required")
		return
	}
	location := strings.TrimSpace(c.Query("location"))

	listings, err := h.jobService.Search(c.Request.Context(), query, location)
	if err != nil {
		if errors.Is(err, services.ErrJobSearchNotConfigured) {
			apierrors.ServiceUnavailable(c, err.Error())
			return
		}
		apierrors.BadGateway(c, "Job search failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": len(listings),
		"jobs":  listings,
	})
}
