package repositoryImp

import (
	"testing"

	"jardin/database"
	"jardin/pkg/apperr"
	"jardin/pkg/designation/repository"
)

func newTestRepo(t *testing.T) repository.DesignationRepository {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	return New(db, 1)
}

func TestCreateTrimsAndRejectsDuplicates(t *testing.T) {
	r := newTestRepo(t)

	d, err := r.Create("  Watering  ")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if d.Title != "Watering" {
		t.Fatalf("title = %q, want trimmed %q", d.Title, "Watering")
	}

	if _, err := r.Create("Watering"); !apperr.IsValidation(err) {
		t.Fatalf("duplicate err = %v, want validation", err)
	}
	if _, err := r.Create("   "); !apperr.IsValidation(err) {
		t.Fatalf("blank err = %v, want validation", err)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	r := newTestRepo(t)
	d, err := r.Create("Pruning")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	d, err = r.Update(d.ID, "Heavy pruning")
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if d.Title != "Heavy pruning" {
		t.Fatalf("title = %q, want %q", d.Title, "Heavy pruning")
	}

	if err := r.Delete(d.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.FindByID(d.ID); !apperr.IsNotFound(err) {
		t.Fatalf("find after delete err = %v, want not-found", err)
	}
	if err := r.Delete(d.ID); !apperr.IsNotFound(err) {
		t.Fatalf("second delete err = %v, want not-found", err)
	}
}

func TestGetAllSortsByTitle(t *testing.T) {
	r := newTestRepo(t)
	for _, title := range []string{"Weeding", "Harvest", "Mulching"} {
		if _, err := r.Create(title); err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
	}
	all, err := r.GetAll()
	if err != nil {
		t.Fatalf("get all: %v", err)
	}
	want := []string{"Harvest", "Mulching", "Weeding"}
	if len(all) != len(want) {
		t.Fatalf("count = %d, want %d", len(all), len(want))
	}
	for i, d := range all {
		if d.Title != want[i] {
			t.Fatalf("all[%d] = %q, want %q", i, d.Title, want[i])
		}
	}
}
