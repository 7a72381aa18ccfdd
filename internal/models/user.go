package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	ID           uint64         `gorm:"primarykey" json:"id"`
	Email        string         `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username     string         `gorm:"type:varchar(100);uniqueIndex;not null" json:"username"`
	PasswordHash string         `gorm:"type:varchar(255);not null" json:"-"`
	FullName     string         `gorm:"type:varchar(255)" json:"full_name"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Profile      *UserProfile     `gorm:"foreignKey:UserID" json:"-"`
	Progress     *UserProgress    `gorm:"foreignKey:UserID" json:"-"`
	Streak       *Streak          `gorm:"foreignKey:UserID" json:"-"`
	Roadmaps     []Roadmap        `gorm:"foreignKey:UserID" json:"-"`
	QuizAttempts []QuizAttempt    `gorm:"foreignKey:UserID" json:"-"`
	Resumes      []ResumeAnalysis `gorm:"foreignKey:UserID" json:"-"`
}
