package repository

import "jardin/entities"

type ZoneRepository interface {
	Create(z *entities.Zone) error
	Update(z *entities.Zone) error
	Delete(id string) error
	FindByID(id string) (*entities.Zone, error)
	GetAll() ([]entities.Zone, error)
}
