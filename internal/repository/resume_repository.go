package repository

import (
	"errors"

	"github.com/arjunm/skillsprint/internal/models"
	"gorm.io/gorm"
)

// GormResumeRepository is a GORM implementation of ResumeRepository
type GormResumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new ResumeRepository
func NewResumeRepository(db *gorm.DB) ResumeRepository {
	return &GormResumeRepository{db: db}
}

// Create records a resume analysis
func (r *GormResumeRepository) Create(analysis *models.ResumeAnalysis) error {
	return r.db.Create(analysis).Error
}

// FindLatestByUserID returns the user's most recent analysis
func (r *GormResumeRepository) FindLatestByUserID(userID uint64) (*models.ResumeAnalysis, error) {
	var analysis models.ResumeAnalysis
	if err := r.db.Where("user_id = ?", userID).
		Order("id DESC").
		First(&analysis).Error; err != nil {
		return nil, err
	}
	return &analysis, nil
}

// UpsertProfile creates or updates the user's profile
func (r *GormResumeRepository) UpsertProfile(profile *models.UserProfile) error {
	var existing models.UserProfile
	err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(profile).Error
	}
	if err != nil {
		return err
	}

	profile.ID = existing.ID
	return r.db.Save(profile).Error
}
