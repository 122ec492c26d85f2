package service

import "jardin/entities"

type UserInput struct {
	Name      string
	Email     string
	Password  string
	Role      entities.Role
	CanManage bool
}

// UserPatch updates only the fields that are present.
type UserPatch struct {
	Name      *string
	Email     *string
	Password  *string
	Role      *entities.Role
	CanManage *bool
}

type UserService interface {
	CreateUser(in UserInput) (*entities.User, error)
	UpdateUser(id string, p UserPatch) (*entities.User, error)
	DeleteUser(id string) error
	GetUserByID(id string) (*entities.User, error)
	GetAllUsers() ([]entities.User, error)
	// Authenticate checks the password against the stored hash.
	Authenticate(email, password string) (*entities.User, error)
}
