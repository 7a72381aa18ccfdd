package repository

import (
	"time"

	"github.com/arjunm/skillsprint/internal/models"
	"gorm.io/gorm"
)

// GormRoadmapRepository is a GORM implementation of RoadmapRepository
type GormRoadmapRepository struct {
	db *gorm.DB
}

// NewRoadmapRepository creates a new RoadmapRepository
func NewRoadmapRepository(db *gorm.DB) RoadmapRepository {
	return &GormRoadmapRepository{db: db}
}

// CreateWithTasks persists a roadmap and its tasks atomically. The user's
// previously active roadmap, if any, is archived in the same transaction so
// the one-active-roadmap invariant holds at every commit point.
func (r *GormRoadmapRepository) CreateWithTasks(roadmap *models.Roadmap, tasks []models.RoadmapTask) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Roadmap{}).
			Where("user_id = ? AND is_active = ?", roadmap.UserID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Create(roadmap).Error; err != nil {
			return err
		}

		for i := range tasks {
			tasks[i].RoadmapID = roadmap.ID
		}

		return tx.Create(&tasks).Error
	})
}

// FindByIDForUser finds a roadmap owned by the given user
func (r *GormRoadmapRepository) FindByIDForUser(id, userID uint64) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).
		First(&roadmap).Error; err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// FindActiveByUserID finds the user's active roadmap
func (r *GormRoadmapRepository) FindActiveByUserID(userID uint64) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	if err := r.db.Where("user_id = ? AND is_active = ?", userID, true).
		Order("id DESC").
		First(&roadmap).Error; err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// ListTasks returns all tasks of a roadmap ordered by day number
func (r *GormRoadmapRepository) ListTasks(roadmapID uint64) ([]models.RoadmapTask, error) {
	var tasks []models.RoadmapTask
	if err := r.db.Where("roadmap_id = ?", roadmapID).
		Order("day_number ASC").
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// FindTaskForUser finds a task whose parent roadmap belongs to the user.
// Ownership mismatches surface as gorm.ErrRecordNotFound so callers cannot
// distinguish "not yours" from "does not exist".
func (r *GormRoadmapRepository) FindTaskForUser(taskID, userID uint64) (*models.RoadmapTask, error) {
	var task models.RoadmapTask
	if err := r.db.
		Joins("JOIN roadmaps ON roadmaps.id = roadmap_tasks.roadmap_id").
		Where("roadmap_tasks.id = ? AND roadmaps.user_id = ? AND roadmaps.deleted_at IS NULL", taskID, userID).
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FirstPendingTask returns the lowest-day-number PENDING task
func (r *GormRoadmapRepository) FirstPendingTask(roadmapID uint64) (*models.RoadmapTask, error) {
	var task models.RoadmapTask
	if err := r.db.Where("roadmap_id = ? AND status = ?", roadmapID, models.TaskStatusPending).
		Order("day_number ASC").
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// FirstIncompleteTask returns the lowest-day-number PENDING or MISSED task
func (r *GormRoadmapRepository) FirstIncompleteTask(roadmapID uint64) (*models.RoadmapTask, error) {
	var task models.RoadmapTask
	if err := r.db.Where("roadmap_id = ? AND status IN ?", roadmapID,
		[]models.TaskStatus{models.TaskStatusPending, models.TaskStatusMissed}).
		Order("day_number ASC").
		First(&task).Error; err != nil {
		return nil, err
	}
	return &task, nil
}

// MarkOverdueMissed flips PENDING tasks dated before today to MISSED
func (r *GormRoadmapRepository) MarkOverdueMissed(roadmapID uint64, today time.Time) (int64, error) {
	result := r.db.Model(&models.RoadmapTask{}).
		Where("roadmap_id = ? AND status = ? AND date_assigned < ?",
			roadmapID, models.TaskStatusPending, today).
		Update("status", models.TaskStatusMissed)
	return result.RowsAffected, result.Error
}

// RescheduleIncomplete slides all PENDING/MISSED tasks to consecutive dates
// starting at start, ordered strictly by day number, resetting them to
// PENDING. Runs in one transaction so a partial slide never commits.
func (r *GormRoadmapRepository) RescheduleIncomplete(roadmapID uint64, start time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var tasks []models.RoadmapTask
		if err := tx.Where("roadmap_id = ? AND status IN ?", roadmapID,
			[]models.TaskStatus{models.TaskStatusPending, models.TaskStatusMissed}).
			Order("day_number ASC").
			Find(&tasks).Error; err != nil {
			return err
		}

		for i := range tasks {
			updates := map[string]interface{}{
				"date_assigned": start.AddDate(0, 0, i),
				"status":        models.TaskStatusPending,
			}
			if err := tx.Model(&models.RoadmapTask{}).
				Where("id = ?", tasks[i].ID).
				Updates(updates).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// UpdateTask updates a single task
func (r *GormRoadmapRepository) UpdateTask(task *models.RoadmapTask) error {
	return r.db.Save(task).Error
}

// SetPaused updates the paused flag
func (r *GormRoadmapRepository) SetPaused(roadmapID uint64, paused bool) error {
	return r.db.Model(&models.Roadmap{}).
		Where("id = ?", roadmapID).
		Update("is_paused", paused).Error
}

// ResumeWithShift clears the paused flag and shifts every task with day
// number >= fromDay forward by shiftDays days. Relative spacing between the
// shifted tasks is preserved because each moves by the same offset.
func (r *GormRoadmapRepository) ResumeWithShift(roadmapID uint64, fromDay, shiftDays int) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Roadmap{}).
			Where("id = ?", roadmapID).
			Update("is_paused", false).Error; err != nil {
			return err
		}

		if shiftDays <= 0 {
			return nil
		}

		var tasks []models.RoadmapTask
		if err := tx.Where("roadmap_id = ? AND day_number >= ?", roadmapID, fromDay).
			Find(&tasks).Error; err != nil {
			return err
		}

		for i := range tasks {
			if err := tx.Model(&models.RoadmapTask{}).
				Where("id = ?", tasks[i].ID).
				Update("date_assigned", tasks[i].DateAssigned.AddDate(0, 0, shiftDays)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// DeactivateActive archives the user's active roadmap
func (r *GormRoadmapRepository) DeactivateActive(userID uint64) (int64, error) {
	result := r.db.Model(&models.Roadmap{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
