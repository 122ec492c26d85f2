package repository

import "jardin/entities"

type UserRepository interface {
	Create(u *entities.User) error
	Update(u *entities.User) error
	Delete(id string) error
	FindByID(id string) (*entities.User, error)
	FindByEmail(email string) (*entities.User, error)
	GetAll() ([]entities.User, error)
}
