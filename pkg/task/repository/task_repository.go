package repository

import "jardin/entities"

type TaskRepository interface {
	// Create persists the task with its collaborators and history as one unit.
	Create(t *entities.Task) error
	// Update rewrites the task row, upserts collaborators and appends any
	// history events not yet stored, all in one transaction.
	Update(t *entities.Task) error
	Delete(id string) error
	FindByID(id string) (*entities.Task, error)
	GetAll() ([]entities.Task, error)
	// HasActiveElsewhere reports whether the user holds an active collaborator
	// record on any other task.
	HasActiveElsewhere(userID, excludeTaskID string) (bool, error)
}
