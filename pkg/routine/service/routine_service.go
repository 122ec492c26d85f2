package service

import (
	"time"

	"jardin/entities"
)

type RoutineInput struct {
	Title           string
	Description     string
	ZoneID          *string
	SubZoneID       *string
	DesignationID   *string
	Frequency       entities.Frequency
	CustomInterval  *int
	NextExecution   time.Time
	AssignedUserIDs []string
}

type RoutineService interface {
	CreateRoutine(in RoutineInput) (*entities.Routine, error)
	UpdateRoutine(id string, in RoutineInput) (*entities.Routine, error)
	DeleteRoutine(id string) error
	GetRoutineByID(id string) (*entities.Routine, error)
	GetAllRoutines() ([]entities.Routine, error)

	Assign(routineID, userID string) (*entities.Routine, error)
	Complete(routineID string) (*entities.Routine, error)
	Pause(routineID string) (*entities.Routine, error)
	Resume(routineID string) (*entities.Routine, error)

	// GenerateDue materializes one task per elapsed routine and returns how
	// many were generated.
	GenerateDue(now time.Time) (int, error)
}
