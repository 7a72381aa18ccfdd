package models

import (
	"time"

	"gorm.io/datatypes"
)

type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "PENDING"
	TaskStatusCompleted TaskStatus = "COMPLETED"
	TaskStatusMissed    TaskStatus = "MISSED"
)

// Resource is a single learning link attached to a task.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type RoadmapTask struct {
	ID               uint64                        `gorm:"primarykey" json:"id"`
	RoadmapID        uint64                        `gorm:"not null;uniqueIndex:idx_roadmap_day,priority:1" json:"roadmap_id"`
	DayNumber        int                           `gorm:"not null;uniqueIndex:idx_roadmap_day,priority:2" json:"day_number"`
	ModuleName       string                        `gorm:"type:varchar(255)" json:"module_name"`
	Topic            string                        `gorm:"type:varchar(255)" json:"topic"`
	Description      string                        `gorm:"type:text" json:"description"`
	Resources        datatypes.JSONSlice[Resource] `json:"resources"`
	EstimatedMinutes int                           `json:"estimated_minutes"`
	DateAssigned     time.Time                     `gorm:"type:date;index;not null" json:"date_assigned"`
	Status           TaskStatus                    `gorm:"type:varchar(20);not null;default:'PENDING'" json:"status"`
	CreatedAt        time.Time                     `json:"created_at"`
	UpdatedAt        time.Time                     `json:"updated_at"`

	// Relations
	Roadmap Roadmap `gorm:"foreignKey:RoadmapID" json:"-"`
}
