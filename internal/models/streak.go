package models

import "time"

type Streak struct {
	ID               uint64     `gorm:"primarykey" json:"id"`
	UserID           uint64     `gorm:"uniqueIndex;not null" json:"user_id"`
	CurrentStreak    int        `gorm:"not null;default:0" json:"current_streak"`
	MaxStreak        int        `gorm:"not null;default:0" json:"max_streak"`
	LastActivityDate *time.Time `gorm:"type:date" json:"last_activity_date"`
	UpdatedAt        time.Time  `json:"updated_at"`
}
