package repository

import (
	"time"

	"jardin/entities"
)

type RoutineRepository interface {
	Create(r *entities.Routine) error
	Update(r *entities.Routine) error
	Delete(id string) error
	FindByID(id string) (*entities.Routine, error)
	GetAll() ([]entities.Routine, error)
	// FindDue lists routines whose next execution is at or before now.
	FindDue(now time.Time) ([]entities.Routine, error)
	// GenerateInstance persists the materialized task and the advanced routine
	// schedule as one atomic unit.
	GenerateInstance(r *entities.Routine, t *entities.Task) error
}
