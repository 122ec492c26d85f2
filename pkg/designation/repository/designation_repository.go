package repository

import "jardin/entities"

type DesignationRepository interface {
	Create(title string) (*entities.Designation, error)
	Update(id, title string) (*entities.Designation, error)
	Delete(id string) error
	FindByID(id string) (*entities.Designation, error)
	FindByTitle(title string) (*entities.Designation, error)
	GetAll() ([]entities.Designation, error)
}
