package serviceImp

import (
	"testing"

	"jardin/database"
	"jardin/entities"
	"jardin/pkg/apperr"
	userRepoImp "jardin/pkg/user/repositoryImp"
	"jardin/pkg/user/service"
)

func newTestSvc(t *testing.T) service.UserService {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return NewUserService(userRepoImp.New(db, 1))
}

func TestCreateUserDefaultsAndHashing(t *testing.T) {
	s := newTestSvc(t)
	u, err := s.CreateUser(service.UserInput{
		Name:     "Marie",
		Email:    "marie@example.com",
		Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if u.Role != entities.RoleUser {
		t.Fatalf("role = %q, want default %q", u.Role, entities.RoleUser)
	}
	if u.PasswordHash == "" || u.PasswordHash == "s3cret" {
		t.Fatal("password must be stored hashed")
	}
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestSvc(t)
	in := service.UserInput{Name: "Marie", Email: "marie@example.com", Password: "s3cret"}
	if _, err := s.CreateUser(in); err != nil {
		t.Fatalf("first create: %v", err)
	}
	in.Name = "Other Marie"
	if _, err := s.CreateUser(in); !apperr.IsValidation(err) {
		t.Fatalf("duplicate email err = %v, want validation", err)
	}
}

func TestCreateUserRejectsUnknownRole(t *testing.T) {
	s := newTestSvc(t)
	_, err := s.CreateUser(service.UserInput{
		Name: "Marie", Email: "marie@example.com", Password: "s3cret", Role: "superadmin",
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("err = %v, want validation", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := newTestSvc(t)
	created, err := s.CreateUser(service.UserInput{
		Name: "Marie", Email: "marie@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	u, err := s.Authenticate("marie@example.com", "s3cret")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if u.ID != created.ID {
		t.Fatalf("authenticated wrong user: %s", u.ID)
	}

	if _, err := s.Authenticate("marie@example.com", "wrong"); !apperr.IsValidation(err) {
		t.Fatalf("bad password err = %v, want validation", err)
	}
	if _, err := s.Authenticate("nobody@example.com", "s3cret"); !apperr.IsValidation(err) {
		t.Fatalf("unknown email err = %v, want validation", err)
	}
}

func TestUpdateUserPatch(t *testing.T) {
	s := newTestSvc(t)
	created, err := s.CreateUser(service.UserInput{
		Name: "Marie", Email: "marie@example.com", Password: "s3cret",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	role := entities.RoleAdmin
	canManage := true
	u, err := s.UpdateUser(created.ID, service.UserPatch{Role: &role, CanManage: &canManage})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if u.Role != entities.RoleAdmin || !u.CanManageTasksAndRoutines {
		t.Fatalf("patch not applied: role=%q canManage=%v", u.Role, u.CanManageTasksAndRoutines)
	}
	// Untouched fields survive a partial patch.
	if u.Name != "Marie" || u.Email != "marie@example.com" {
		t.Fatalf("unrelated fields changed: %q %q", u.Name, u.Email)
	}
}
