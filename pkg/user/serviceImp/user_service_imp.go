package serviceImp

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"jardin/entities"
	"jardin/pkg/apperr"
	repo "jardin/pkg/user/repository"
	"jardin/pkg/user/service"
)

const bcryptCost = 10

type userSvc struct{ r repo.UserRepository }

func NewUserService(r repo.UserRepository) service.UserService { return &userSvc{r} }

func validRole(role entities.Role) bool {
	switch role {
	case entities.RoleAdmin, entities.RoleUser, entities.RoleRestricted:
		return true
	}
	return false
}

func (s *userSvc) CreateUser(in service.UserInput) (*entities.User, error) {
	if in.Name == "" {
		return nil, apperr.Validation("name", "user name is required")
	}
	if in.Email == "" {
		return nil, apperr.Validation("email", "user email is required")
	}
	if in.Password == "" {
		return nil, apperr.Validation("password", "password is required")
	}
	role := in.Role
	if role == "" {
		role = entities.RoleUser
	}
	if !validRole(role) {
		return nil, apperr.Validation("role", "role must be admin, user or restricted")
	}
	if existing, err := s.r.FindByEmail(in.Email); err == nil && existing != nil {
		return nil, apperr.Validation("email", "email is already in use")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entities.User{
		ID:                        uuid.NewString(),
		Name:                      in.Name,
		Email:                     in.Email,
		PasswordHash:              string(hash),
		Role:                      role,
		CanManageTasksAndRoutines: in.CanManage,
		CreatedAt:                 time.Now(),
	}
	if err := s.r.Create(u); err != nil {
		return nil, err
	}
	return s.r.FindByID(u.ID)
}

func (s *userSvc) UpdateUser(id string, p service.UserPatch) (*entities.User, error) {
	u, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Role != nil {
		if !validRole(*p.Role) {
			return nil, apperr.Validation("role", "role must be admin, user or restricted")
		}
		u.Role = *p.Role
	}
	if p.CanManage != nil {
		u.CanManageTasksAndRoutines = *p.CanManage
	}
	if p.Password != nil && *p.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcryptCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}
	if err := s.r.Update(u); err != nil {
		return nil, err
	}
	return s.r.FindByID(id)
}

func (s *userSvc) DeleteUser(id string) error { return s.r.Delete(id) }

func (s *userSvc) GetUserByID(id string) (*entities.User, error) { return s.r.FindByID(id) }

func (s *userSvc) GetAllUsers() ([]entities.User, error) { return s.r.GetAll() }

func (s *userSvc) Authenticate(email, password string) (*entities.User, error) {
	u, err := s.r.FindByEmail(email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, apperr.Validation("email", "invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, apperr.Validation("password", "invalid credentials")
	}
	return u, nil
}
