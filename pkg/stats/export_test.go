package stats

import (
	"testing"

	"jardin/entities"
)

func TestBuildWorkbook(t *testing.T) {
	tasks := []entities.Task{
		completedTask("Water tomatoes", 30),
		{Title: "Mow lawn", Status: entities.TaskInProgress},
	}
	tasks[0].Collaborators[0].UserID = "u1"
	users := []entities.User{
		{ID: "u1", Name: "Marie", Email: "marie@example.com"},
		{ID: "u2", Name: "Idle", Email: "idle@example.com"},
	}

	f, err := BuildWorkbook(tasks, users)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Global" || sheets[1] != "Collaborators" {
		t.Fatalf("sheets = %v, want [Global Collaborators]", sheets)
	}

	total, err := f.GetCellValue("Global", "B2")
	if err != nil {
		t.Fatalf("read total: %v", err)
	}
	if total != "2" {
		t.Fatalf("total cell = %q, want 2", total)
	}

	name, err := f.GetCellValue("Collaborators", "A2")
	if err != nil {
		t.Fatalf("read name: %v", err)
	}
	if name != "Marie" {
		t.Fatalf("first collaborator = %q, want Marie", name)
	}
	// The idle user has no completed tasks, so no further rows.
	if extra, _ := f.GetCellValue("Collaborators", "A3"); extra != "" {
		t.Fatalf("unexpected extra row: %q", extra)
	}

	if _, err := f.WriteToBuffer(); err != nil {
		t.Fatalf("serialize: %v", err)
	}
}
