package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"jardin/database"
	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/routine/repository"
)

type routineRepo struct {
	db      *gorm.DB
	retries int
}

func New(db *gorm.DB, retries int) repository.RoutineRepository {
	return &routineRepo{db: db, retries: retries}
}

func (r *routineRepo) Create(rt *entities.Routine) error {
	return database.WithRetry("routine.create", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(rt).Error
		})
	})
}

// Update rewrites the routine row and replaces its assigned-user links.
func (r *routineRepo) Update(rt *entities.Routine) error {
	return database.WithRetry("routine.update", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&entities.Routine{}).Where("id = ?", rt.ID).Updates(map[string]any{
				"title":           rt.Title,
				"description":     rt.Description,
				"zone_id":         rt.ZoneID,
				"sub_zone_id":     rt.SubZoneID,
				"designation_id":  rt.DesignationID,
				"frequency":       rt.Frequency,
				"custom_interval": rt.CustomInterval,
				"next_execution":  rt.NextExecution,
				"last_execution":  rt.LastExecution,
				"status":          rt.Status,
			})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("routine", rt.ID)
			}
			if err := tx.Where("routine_id = ?", rt.ID).Delete(&entities.RoutineAssignment{}).Error; err != nil {
				return err
			}
			for i := range rt.Assignments {
				rt.Assignments[i].RoutineID = rt.ID
			}
			if len(rt.Assignments) > 0 {
				if err := tx.Create(&rt.Assignments).Error; err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func (r *routineRepo) Delete(id string) error {
	return database.WithRetry("routine.delete", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("routine_id = ?", id).Delete(&entities.RoutineAssignment{}).Error; err != nil {
				return err
			}
			res := tx.Where("id = ?", id).Delete(&entities.Routine{})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("routine", id)
			}
			return nil
		})
	})
}

func (r *routineRepo) FindByID(id string) (*entities.Routine, error) {
	var rt entities.Routine
	if err := r.db.Preload("Assignments").Where("id = ?", id).First(&rt).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("routine", id)
		}
		return nil, err
	}
	return &rt, nil
}

func (r *routineRepo) GetAll() ([]entities.Routine, error) {
	var out []entities.Routine
	if err := r.db.Preload("Assignments").Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *routineRepo) FindDue(now time.Time) ([]entities.Routine, error) {
	var out []entities.Routine
	if err := r.db.Preload("Assignments").Where("next_execution <= ?", now).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *routineRepo) GenerateInstance(rt *entities.Routine, t *entities.Task) error {
	return database.WithRetry("routine.generate", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(t).Error; err != nil {
				return err
			}
			res := tx.Model(&entities.Routine{}).Where("id = ?", rt.ID).Updates(map[string]any{
				"next_execution": rt.NextExecution,
				"last_execution": rt.LastExecution,
			})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("routine", rt.ID)
			}
			return nil
		})
	})
}
