package models

import "time"

type QuizAttempt struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	UserID         uint64    `gorm:"index;not null" json:"user_id"`
	Category       string    `gorm:"type:varchar(100);not null" json:"category"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"total_questions"`
	XPEarned       int       `gorm:"not null" json:"xp_earned"`
	CreatedAt      time.Time `json:"created_at"`
}
