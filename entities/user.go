package entities

import "time"

type Role string

const (
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
	RoleRestricted Role = "restricted"
)

type User struct {
	ID           string `gorm:"primaryKey" json:"id"`
	Name         string `json:"name"`
	Email        string `gorm:"uniqueIndex" json:"email"`
	PasswordHash string `json:"-"`
	Role         Role   `json:"role"`
	// Grantable by admins to let non-admin users manage tasks and routines.
	CanManageTasksAndRoutines bool `json:"can_manage_tasks_and_routines"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"-"`
}

func (u *User) CanManage() bool {
	return u.Role == RoleAdmin || u.CanManageTasksAndRoutines
}
