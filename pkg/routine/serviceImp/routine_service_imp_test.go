package serviceImp

import (
	"testing"
	"time"

	"jardin/database"
	"jardin/entities"
	"jardin/pkg/apperr"
	routineRepoImp "jardin/pkg/routine/repositoryImp"
	"jardin/pkg/routine/service"
	taskrepo "jardin/pkg/task/repository"
	taskRepoImp "jardin/pkg/task/repositoryImp"
)

func newTestSvc(t *testing.T) (*routineSvc, taskrepo.TaskRepository) {
	t.Helper()
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	fixed := time.Date(2025, 4, 14, 8, 0, 0, 0, time.UTC)
	s := &routineSvc{r: routineRepoImp.New(db, 1), now: func() time.Time { return fixed }}
	return s, taskRepoImp.New(db, 1)
}

func TestGenerateDueCreatesOneTaskAndAdvancesSchedule(t *testing.T) {
	s, tasks := newTestSvc(t)
	now := time.Date(2025, 4, 14, 8, 0, 0, 0, time.UTC)
	start := now.AddDate(0, 0, -1)

	rt, err := s.CreateRoutine(service.RoutineInput{
		Title:           "Water greenhouse",
		Frequency:       entities.FrequencyDaily,
		NextExecution:   start,
		AssignedUserIDs: []string{"u1"},
	})
	if err != nil {
		t.Fatalf("create routine: %v", err)
	}

	n, err := s.GenerateDue(now)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if n != 1 {
		t.Fatalf("generated = %d, want 1", n)
	}

	// The schedule steps from its previous value, not from now.
	rt, err = s.GetRoutineByID(rt.ID)
	if err != nil {
		t.Fatalf("reload routine: %v", err)
	}
	if want := start.AddDate(0, 0, 1); !rt.NextExecution.Equal(want) {
		t.Fatalf("next execution = %v, want %v", rt.NextExecution, want)
	}
	if rt.LastExecution == nil || !rt.LastExecution.Equal(now) {
		t.Fatalf("last execution = %v, want %v", rt.LastExecution, now)
	}

	all, err := tasks.GetAll()
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("task count = %d, want 1", len(all))
	}
	generated := all[0]
	if !generated.IsRoutine {
		t.Fatal("generated task should be flagged as routine-born")
	}
	if generated.Status != entities.TaskAvailable {
		t.Fatalf("generated task status = %q, want %q", generated.Status, entities.TaskAvailable)
	}
	if !generated.ActionDate.Equal(start) {
		t.Fatalf("action date = %v, want the elapsed slot %v", generated.ActionDate, start)
	}
	if len(generated.Collaborators) != 1 || generated.Collaborators[0].Status != entities.CollabAssigned {
		t.Fatalf("collaborators = %+v, want one merely-assigned entry", generated.Collaborators)
	}
	if len(generated.StatusHistory) != 1 || generated.StatusHistory[0].Status != entities.TaskAvailable {
		t.Fatalf("history = %+v, want a single available event", generated.StatusHistory)
	}
}

func TestGenerateDueDrainsOneInstancePerPass(t *testing.T) {
	s, tasks := newTestSvc(t)
	now := time.Date(2025, 4, 14, 8, 0, 0, 0, time.UTC)

	// Roughly three days behind: each pass catches up one step.
	if _, err := s.CreateRoutine(service.RoutineInput{
		Title:         "Feed chickens",
		Frequency:     entities.FrequencyDaily,
		NextExecution: now.AddDate(0, 0, -3).Add(time.Hour),
	}); err != nil {
		t.Fatalf("create routine: %v", err)
	}

	total := 0
	for pass := 0; pass < 3; pass++ {
		n, err := s.GenerateDue(now)
		if err != nil {
			t.Fatalf("pass %d: %v", pass, err)
		}
		if n != 1 {
			t.Fatalf("pass %d generated %d, want 1", pass, n)
		}
		total += n
	}

	// Caught up; next execution is now ahead of the clock.
	if n, err := s.GenerateDue(now); err != nil || n != 0 {
		t.Fatalf("caught-up pass: n=%d err=%v, want 0 and nil", n, err)
	}

	all, err := tasks.GetAll()
	if err != nil {
		t.Fatalf("list tasks: %v", err)
	}
	if len(all) != total {
		t.Fatalf("task count = %d, want %d", len(all), total)
	}
}

func TestGenerateDueSkipsFutureRoutines(t *testing.T) {
	s, _ := newTestSvc(t)
	now := time.Date(2025, 4, 14, 8, 0, 0, 0, time.UTC)

	if _, err := s.CreateRoutine(service.RoutineInput{
		Title:         "Mulch paths",
		Frequency:     entities.FrequencyWeekly,
		NextExecution: now.AddDate(0, 0, 2),
	}); err != nil {
		t.Fatalf("create routine: %v", err)
	}
	if n, err := s.GenerateDue(now); err != nil || n != 0 {
		t.Fatalf("n=%d err=%v, want 0 and nil", n, err)
	}
}

func TestCreateRoutineValidatesSchedule(t *testing.T) {
	s, _ := newTestSvc(t)
	start := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.CreateRoutine(service.RoutineInput{
		Title:         "Spray leaves",
		Frequency:     entities.FrequencyCustom,
		NextExecution: start,
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("custom without interval err = %v, want validation", err)
	}

	_, err = s.CreateRoutine(service.RoutineInput{
		Title:         "Spray leaves",
		Frequency:     "fortnightly",
		NextExecution: start,
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("unknown frequency err = %v, want validation", err)
	}

	_, err = s.CreateRoutine(service.RoutineInput{
		Title:     "Spray leaves",
		Frequency: entities.FrequencyDaily,
	})
	if !apperr.IsValidation(err) {
		t.Fatalf("missing start err = %v, want validation", err)
	}
}

func TestAssignRoutine(t *testing.T) {
	s, _ := newTestSvc(t)
	rt, err := s.CreateRoutine(service.RoutineInput{
		Title:         "Check irrigation",
		Frequency:     entities.FrequencyWeekly,
		NextExecution: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create routine: %v", err)
	}

	rt, err = s.Assign(rt.ID, "u1")
	if err != nil {
		t.Fatalf("assign: %v", err)
	}
	if rt.Status != entities.TaskInProgress {
		t.Fatalf("status after assign = %q, want %q", rt.Status, entities.TaskInProgress)
	}
	if len(rt.Assignments) != 1 || rt.Assignments[0].UserID != "u1" {
		t.Fatalf("assignments = %+v, want exactly u1", rt.Assignments)
	}

	if _, err := s.Assign(rt.ID, "u1"); !apperr.IsInvalidState(err) {
		t.Fatalf("duplicate assign err = %v, want invalid-state", err)
	}
}

func TestCompleteStampsLastExecution(t *testing.T) {
	s, _ := newTestSvc(t)
	rt, err := s.CreateRoutine(service.RoutineInput{
		Title:         "Clean tools",
		Frequency:     entities.FrequencyMonthly,
		NextExecution: time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create routine: %v", err)
	}

	rt, err = s.Complete(rt.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if rt.Status != entities.TaskCompleted {
		t.Fatalf("status = %q, want %q", rt.Status, entities.TaskCompleted)
	}
	if rt.LastExecution == nil {
		t.Fatal("last execution should be stamped on completion")
	}
}
