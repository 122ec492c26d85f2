package repositoryImp

import (
	"errors"

	"gorm.io/gorm"

	"jardin/database"
	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/user/repository"
)

type userRepo struct {
	db      *gorm.DB
	retries int
}

func New(db *gorm.DB, retries int) repository.UserRepository {
	return &userRepo{db: db, retries: retries}
}

func (r *userRepo) Create(u *entities.User) error {
	return database.WithRetry("user.create", r.retries, func() error {
		return r.db.Create(u).Error
	})
}

func (r *userRepo) Update(u *entities.User) error {
	return database.WithRetry("user.update", r.retries, func() error {
		res := r.db.Model(&entities.User{}).Where("id = ?", u.ID).Updates(map[string]any{
			"name":                          u.Name,
			"email":                         u.Email,
			"role":                          u.Role,
			"password_hash":                 u.PasswordHash,
			"can_manage_tasks_and_routines": u.CanManageTasksAndRoutines,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("user", u.ID)
		}
		return nil
	})
}

func (r *userRepo) Delete(id string) error {
	return database.WithRetry("user.delete", r.retries, func() error {
		res := r.db.Where("id = ?", id).Delete(&entities.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperr.NotFound("user", id)
		}
		return nil
	})
}

func (r *userRepo) FindByID(id string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user", id)
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(email string) (*entities.User, error) {
	var u entities.User
	if err := r.db.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user", email)
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) GetAll() ([]entities.User, error) {
	var out []entities.User
	if err := r.db.Order("created_at ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
