package dto

import (
	"time"

	"github.com/arjunm/skillsprint/internal/models"
)

// RoadmapDTO represents the roadmap header in API responses
type RoadmapDTO struct {
	ID         uint64    `json:"id"`
	Role       string    `json:"role"`
	SkillLevel string    `json:"skill_level"`
	FocusType  string    `json:"focus_type,omitempty"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
	IsPaused   bool      `json:"is_paused"`
	IsActive   bool      `json:"is_active"`
}

// RoadmapTaskDTO represents a single dated learning task
type RoadmapTaskDTO struct {
	ID               uint64            `json:"id"`
	DayNumber        int               `json:"day_number"`
	ModuleName       string            `json:"module_name"`
	Topic            string            `json:"topic"`
	Description      string            `json:"description"`
	Resources        []models.Resource `json:"resources"`
	EstimatedMinutes int               `json:"estimated_minutes"`
	DateAssigned     time.Time         `json:"date_assigned"`
	Status           models.TaskStatus `json:"status"`
}

// DashboardResponse is the calendar projection returned to the front-end
type DashboardResponse struct {
	Status         string           `json:"status"`
	RoadmapDetails *RoadmapDTO      `json:"roadmap_details,omitempty"`
	AllTasks       []RoadmapTaskDTO `json:"all_tasks,omitempty"`
}

// ToRoadmapDTO converts a Roadmap model to RoadmapDTO
func ToRoadmapDTO(roadmap models.Roadmap) RoadmapDTO {
	return RoadmapDTO{
		ID:         roadmap.ID,
		Role:       roadmap.Role,
		SkillLevel: roadmap.SkillLevel,
		FocusType:  roadmap.FocusType,
		StartDate:  roadmap.StartDate,
		EndDate:    roadmap.EndDate,
		IsPaused:   roadmap.IsPaused,
		IsActive:   roadmap.IsActive,
	}
}

// ToRoadmapTaskDTO converts a RoadmapTask model to RoadmapTaskDTO
func ToRoadmapTaskDTO(task models.RoadmapTask) RoadmapTaskDTO {
	return RoadmapTaskDTO{
		ID:               task.ID,
		DayNumber:        task.DayNumber,
		ModuleName:       task.ModuleName,
		Topic:            task.Topic,
		Description:      task.Description,
		Resources:        task.Resources,
		EstimatedMinutes: task.EstimatedMinutes,
		DateAssigned:     task.DateAssigned,
		Status:           task.Status,
	}
}

// ToRoadmapTaskDTOs converts a slice of tasks
func ToRoadmapTaskDTOs(tasks []models.RoadmapTask) []RoadmapTaskDTO {
	dtos := make([]RoadmapTaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToRoadmapTaskDTO(task)
	}
	return dtos
}
