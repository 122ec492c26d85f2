package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"jardin/database"
	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/zone/repository"
)

type zoneRepo struct {
	db      *gorm.DB
	retries int
}

func New(db *gorm.DB, retries int) repository.ZoneRepository {
	return &zoneRepo{db: db, retries: retries}
}

func (r *zoneRepo) Create(z *entities.Zone) error {
	return database.WithRetry("zone.create", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(z).Error
		})
	})
}

// Update replaces the zone's fields and its whole sub-zone set in one
// transaction, mirroring how the form submits them.
func (r *zoneRepo) Update(z *entities.Zone) error {
	return database.WithRetry("zone.update", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			res := tx.Model(&entities.Zone{}).Where("id = ?", z.ID).Updates(map[string]any{
				"name":        z.Name,
				"description": z.Description,
				"color":       z.Color,
			})
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return apperr.NotFound("zone", z.ID)
			}
			if err := tx.Where("zone_id = ?", z.ID).Delete(&entities.SubZone{}).Error; err != nil {
				return err
			}
			for i := range z.SubZones {
				z.SubZones[i].ZoneID = z.ID
			}
			if len(z.SubZones) > 0 {
				if err := tx.Create(&z.SubZones).Error; err != nil {
					return err
				}
			}
			return nil
		})
	})
}

// Delete removes the zone and every dependent row in an explicit order inside
// one transaction. The client-side engine this replaces had unreliable cascade
// support, and the ordered sequence plus the post-delete check stays.
func (r *zoneRepo) Delete(id string) error {
	err := database.WithRetry("zone.delete", r.retries, func() error {
		return r.db.Transaction(func(tx *gorm.DB) error {
			var count int64
			if err := tx.Model(&entities.Zone{}).Where("id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				return apperr.NotFound("zone", id)
			}
			steps := []string{
				`DELETE FROM status_history_events WHERE task_id IN (SELECT id FROM tasks WHERE zone_id = ?)`,
				`DELETE FROM collaborators WHERE task_id IN (SELECT id FROM tasks WHERE zone_id = ?)`,
				`DELETE FROM tasks WHERE zone_id = ?`,
				`DELETE FROM routine_assignments WHERE routine_id IN (SELECT id FROM routines WHERE zone_id = ?)`,
				`DELETE FROM routines WHERE zone_id = ?`,
				`DELETE FROM sub_zones WHERE zone_id = ?`,
				`DELETE FROM zones WHERE id = ?`,
			}
			for _, sql := range steps {
				if err := tx.Exec(sql, id).Error; err != nil {
					return err
				}
			}
			return nil
		})
	})
	if err != nil {
		return err
	}
	// Verification step: the row must be gone once the transaction commits.
	if _, err := r.FindByID(id); err == nil {
		return apperr.Persistence("zone.delete", errors.New("zone still present after delete"))
	} else if !apperr.IsNotFound(err) {
		return err
	}
	return nil
}

func (r *zoneRepo) FindByID(id string) (*entities.Zone, error) {
	var z entities.Zone
	if err := r.db.Preload("SubZones").Where("id = ?", id).First(&z).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("zone", id)
		}
		return nil, err
	}
	return &z, nil
}

func (r *zoneRepo) GetAll() ([]entities.Zone, error) {
	var out []entities.Zone
	if err := r.db.Preload("SubZones").Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
