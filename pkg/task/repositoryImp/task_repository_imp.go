package repositoryImp

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"jardin/database"
	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/task/repository"
)

type taskRepo struct {
	db      *gorm.DB
	retries int
}

func New(db *gorm.DB, retries int) repository.TaskRepository {
	return &taskRepo{db: db, retries: retries}
}

func (r *taskRepo) Create(t *entities.Task) error {
	return database.WithRetry("task.create", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(t).Error
		})
	})
}

func (r *taskRepo) Update(t *entities.Task) error {
	return database.WithRetry("task.update", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&entities.Task{}).Where("id = ?", t.ID).Updates(map[string]any{
				"title":          t.Title,
				"description":    t.Description,
				"status":         t.Status,
				"zone_id":        t.ZoneID,
				"sub_zone_id":    t.SubZoneID,
				"designation_id": t.DesignationID,
				"action_date":    t.ActionDate,
				"has_deadline":   t.HasDeadline,
				"deadline_date":  t.DeadlineDate,
				"is_routine":     t.IsRoutine,
			})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("task", t.ID)
			}
			if len(t.Collaborators) > 0 {
				if err := tx.Clauses(clause.OnConflict{UpdateAll: true}).Create(&t.Collaborators).Error; err != nil {
					return err
				}
			}
			// History is append-only; rows already stored are left untouched.
			if len(t.StatusHistory) > 0 {
				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&t.StatusHistory).Error; err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (r *taskRepo) Delete(id string) error {
	return database.WithRetry("task.delete", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("task_id = ?", id).Delete(&entities.StatusHistoryEvent{}).Error; err != nil {
				return err
			}
			if err := tx.Where("task_id = ?", id).Delete(&entities.Collaborator{}).Error; err != nil {
				return err
			}
			res := tx.Where("id = ?", id).Delete(&entities.Task{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("task", id)
			}
			return nil
		})
	})
}

func (r *taskRepo) FindByID(id string) (*entities.Task, error) {
	var t entities.Task
	err := r.db.
		Preload("Collaborators", func(db *gorm.DB) *gorm.DB { return db.Order("joined_at ASC") }).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC") }).
		Where("id = ?", id).First(&t).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("task", id)
		}
		return nil, err
	}
	return &t, nil
}

func (r *taskRepo) GetAll() ([]entities.Task, error) {
	var out []entities.Task
	err := r.db.
		Preload("Collaborators", func(db *gorm.DB) *gorm.DB { return db.Order("joined_at ASC") }).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB { return db.Order("timestamp ASC") }).
		Order("created_at DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *taskRepo) HasActiveElsewhere(userID, excludeTaskID string) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Collaborator{}).
		Where("user_id = ? AND status = ? AND task_id <> ?", userID, entities.CollabActive, excludeTaskID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
