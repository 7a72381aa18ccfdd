package models

import (
	"time"

	"gorm.io/datatypes"
)

type UserProfile struct {
	ID              uint64                      `gorm:"primarykey" json:"id"`
	UserID          uint64                      `gorm:"uniqueIndex;not null" json:"user_id"`
	Education       string                      `gorm:"type:text" json:"education"`
	ExperienceYears int                         `gorm:"default:0" json:"experience_years"`
	CurrentRole     string                      `gorm:"type:varchar(255)" json:"current_role"`
	TargetRole      string                      `gorm:"type:varchar(255)" json:"target_role"`
	Skills          datatypes.JSONSlice[string] `json:"skills"`
	UpdatedAt       time.Time                   `json:"updated_at"`
}
