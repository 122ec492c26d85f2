package entities

import (
	"errors"
	"fmt"
	"time"
)

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
	FrequencyCustom  Frequency = "custom"
)

var (
	ErrInvalidFrequency = errors.New("entities: invalid routine frequency")
	ErrInvalidInterval  = errors.New("entities: custom frequency requires a positive day interval")
)

type Routine struct {
	ID             string     `gorm:"primaryKey" json:"id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	ZoneID         *string    `gorm:"index" json:"zone_id"`
	SubZoneID      *string    `gorm:"index" json:"sub_zone_id"`
	DesignationID  *string    `gorm:"index" json:"designation_id"`
	Frequency      Frequency  `json:"frequency"`
	CustomInterval *int       `json:"custom_interval"` // days, required when frequency is custom
	NextExecution  time.Time  `gorm:"index" json:"next_execution"`
	LastExecution  *time.Time `json:"last_execution"`
	Status         TaskStatus `gorm:"index" json:"status"`

	Assignments []RoutineAssignment `gorm:"foreignKey:RoutineID" json:"assignments"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

type RoutineAssignment struct {
	ID        string `gorm:"primaryKey" json:"-"`
	RoutineID string `gorm:"index" json:"routine_id"`
	UserID    string `gorm:"index" json:"user_id"`
}

func (r *Routine) ValidateSchedule() error {
	switch r.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
		return nil
	case FrequencyCustom:
		if r.CustomInterval == nil || *r.CustomInterval <= 0 {
			return ErrInvalidInterval
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, r.Frequency)
	}
}

// NextExecutionAfter advances from the previous scheduled time, not from "now",
// so a late generation pass does not drift the schedule.
func (r *Routine) NextExecutionAfter(prev time.Time) (time.Time, error) {
	if err := r.ValidateSchedule(); err != nil {
		return time.Time{}, err
	}
	switch r.Frequency {
	case FrequencyDaily:
		return prev.AddDate(0, 0, 1), nil
	case FrequencyWeekly:
		return prev.AddDate(0, 0, 7), nil
	case FrequencyMonthly:
		return prev.AddDate(0, 1, 0), nil
	default:
		return prev.AddDate(0, 0, *r.CustomInterval), nil
	}
}

func (r *Routine) AssignedUserIDs() []string {
	ids := make([]string, 0, len(r.Assignments))
	for _, a := range r.Assignments {
		ids = append(ids, a.UserID)
	}
	return ids
}
