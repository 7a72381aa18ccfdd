package models

import "time"

type UserProgress struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	UserID    uint64    `gorm:"uniqueIndex;not null" json:"user_id"`
	TotalXP   int       `gorm:"not null;default:0" json:"total_xp"`
	UpdatedAt time.Time `json:"updated_at"`
}
