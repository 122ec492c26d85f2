package service

import (
	"time"

	"jardin/entities"
)

type TaskInput struct {
	Title         string
	Description   string
	ZoneID        *string
	SubZoneID     *string
	DesignationID *string
	ActionDate    time.Time
	HasDeadline   bool
	DeadlineDate  *time.Time
}

type TaskService interface {
	CreateTask(in TaskInput) (*entities.Task, error)
	UpdateTask(id string, in TaskInput) (*entities.Task, error)
	DeleteTask(id string) error
	GetTaskByID(id string) (*entities.Task, error)
	GetAllTasks() ([]entities.Task, error)

	// Transitions mutate only the acting user's collaborator record and
	// recompute the aggregate status.
	Assign(taskID, userID string) (*entities.Task, error)
	Complete(taskID, userID string) (*entities.Task, error)
	Pause(taskID, userID string) (*entities.Task, error)
	Resume(taskID, userID string) (*entities.Task, error)
}
