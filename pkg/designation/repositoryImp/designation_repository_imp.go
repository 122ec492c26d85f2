package repositoryImp

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jardin/database"
	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/designation/repository"
)

type designationRepo struct {
	db      *gorm.DB
	retries int
}

func New(db *gorm.DB, retries int) repository.DesignationRepository {
	return &designationRepo{db: db, retries: retries}
}

func (r *designationRepo) Create(title string) (*entities.Designation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Validation("title", "designation title is required")
	}
	if existing, err := r.FindByTitle(title); err == nil && existing != nil {
		return nil, apperr.Validation("title", "designation title already exists")
	}
	d := &entities.Designation{ID: uuid.NewString(), Title: title, CreatedAt: time.Now()}
	if err := database.WithRetry("designation.create", r.retries, func() error {
		return r.db.Create(d).Error
	}); err != nil {
		return nil, err
	}
	return r.FindByID(d.ID)
}

func (r *designationRepo) Update(id, title string) (*entities.Designation, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, apperr.Validation("title", "designation title is required")
	}
	if err := database.WithRetry("designation.update", r.retries, func() error {
		res := r.db.Model(&entities.Designation{}).Where("id = ?", id).Update("title", title)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("designation", id)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return r.FindByID(id)
}

func (r *designationRepo) Delete(id string) error {
	return database.WithRetry("designation.delete", r.retries, func() error {
		res := r.db.Where("id = ?", id).Delete(&entities.Designation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("designation", id)
		}
		return nil
	})
}

func (r *designationRepo) FindByID(id string) (*entities.Designation, error) {
	var d entities.Designation
	if err := r.db.Where("id = ?", id).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("designation", id)
		}
		return nil, err
	}
	return &d, nil
}

func (r *designationRepo) FindByTitle(title string) (*entities.Designation, error) {
	var d entities.Designation
	if err := r.db.Where("title = ?", strings.TrimSpace(title)).First(&d).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("designation", title)
		}
		return nil, err
	}
	return &d, nil
}

func (r *designationRepo) GetAll() ([]entities.Designation, error) {
	var out []entities.Designation
	if err := r.db.Order("title ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
