package entities

import "time"

type TaskStatus string

const (
	TaskAvailable  TaskStatus = "available"
	TaskInProgress TaskStatus = "in-progress"
	TaskPending    TaskStatus = "pending"
	TaskCompleted  TaskStatus = "completed"
)

type CollaboratorStatus string

const (
	CollabAssigned  CollaboratorStatus = "assigned"
	CollabActive    CollaboratorStatus = "active"
	CollabPaused    CollaboratorStatus = "paused"
	CollabCompleted CollaboratorStatus = "completed"
)

type Task struct {
	ID            string     `gorm:"primaryKey" json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Status        TaskStatus `gorm:"index" json:"status"`
	ZoneID        *string    `gorm:"index" json:"zone_id"`
	SubZoneID     *string    `gorm:"index" json:"sub_zone_id"`
	DesignationID *string    `gorm:"index" json:"designation_id"`
	ActionDate    time.Time  `json:"action_date"`
	HasDeadline   bool       `json:"has_deadline"`
	DeadlineDate  *time.Time `json:"deadline_date"`
	IsRoutine     bool       `json:"is_routine"`

	Collaborators []Collaborator       `gorm:"foreignKey:TaskID" json:"collaborators"`
	StatusHistory []StatusHistoryEvent `gorm:"foreignKey:TaskID" json:"status_history"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

// TimeSpent accrues only while the collaborator is active; it never decreases.
type Collaborator struct {
	ID               string             `gorm:"primaryKey" json:"-"`
	TaskID           string             `gorm:"index" json:"task_id"`
	UserID           string             `gorm:"index" json:"user_id"`
	Status           CollaboratorStatus `json:"status"`
	JoinedAt         time.Time          `json:"joined_at"`
	StartedAt        *time.Time         `json:"started_at"`
	TimeSpent        int                `json:"time_spent"` // minutes
	LastStatusChange time.Time          `json:"last_status_change"`
}

// Append-only while the owning task exists.
type StatusHistoryEvent struct {
	ID        string     `gorm:"primaryKey" json:"-"`
	TaskID    string     `gorm:"index" json:"task_id"`
	Status    TaskStatus `json:"status"`
	Timestamp time.Time  `json:"timestamp"`
	UserID    *string    `json:"user_id,omitempty"`
	Reason    *string    `json:"reason,omitempty"`
}
