package models

import (
	"time"

	"gorm.io/gorm"
)

type Roadmap struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	UserID     uint64         `gorm:"index;not null" json:"user_id"`
	Role       string         `gorm:"type:varchar(255);not null" json:"role"`
	SkillLevel string         `gorm:"type:varchar(50);not null" json:"skill_level"`
	FocusType  string         `gorm:"type:varchar(100)" json:"focus_type"`
	StartDate  time.Time      `gorm:"type:date;not null" json:"start_date"`
	EndDate    time.Time      `gorm:"type:date;not null" json:"end_date"`
	IsPaused   bool           `gorm:"not null;default:false" json:"is_paused"`
	IsActive   bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Tasks []RoadmapTask `gorm:"foreignKey:RoadmapID;constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	User  User          `gorm:"foreignKey:UserID" json:"-"`
}
