package models

import (
	"time"

	"gorm.io/datatypes"
)

type ResumeAnalysis struct {
	ID         uint64         `gorm:"primarykey" json:"id"`
	UserID     uint64         `gorm:"index;not null" json:"user_id"`
	ResumeText string         `gorm:"type:text" json:"-"`
	Result     datatypes.JSON `json:"result"`
	CreatedAt  time.Time      `json:"created_at"`
}
