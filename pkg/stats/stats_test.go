package stats

import (
	"testing"
	"time"

	"jardin/entities"
)

var base = time.Date(2025, 4, 14, 8, 0, 0, 0, time.UTC)

func completedTask(title string, minutes ...int) entities.Task {
	t := entities.Task{Title: title, Status: entities.TaskCompleted}
	for i, m := range minutes {
		t.Collaborators = append(t.Collaborators, entities.Collaborator{
			UserID:    "u" + string(rune('1'+i)),
			Status:    entities.CollabCompleted,
			TimeSpent: m,
		})
	}
	return t
}

func TestCompletionTime(t *testing.T) {
	task := entities.Task{
		Status: entities.TaskCompleted,
		StatusHistory: []entities.StatusHistoryEvent{
			{Status: entities.TaskAvailable, Timestamp: base},
			{Status: entities.TaskInProgress, Timestamp: base.Add(10 * time.Minute)},
			{Status: entities.TaskPending, Timestamp: base.Add(40 * time.Minute)},
			{Status: entities.TaskInProgress, Timestamp: base.Add(50 * time.Minute)},
			{Status: entities.TaskCompleted, Timestamp: base.Add(70 * time.Minute)},
		},
	}
	minutes, ok := CompletionTime(&task)
	if !ok {
		t.Fatal("completed task should be measurable")
	}
	// First in-progress to first completed, pauses included.
	if minutes != 60 {
		t.Fatalf("completion time = %d, want 60", minutes)
	}
}

func TestCompletionTimeUngradable(t *testing.T) {
	if _, ok := CompletionTime(nil); ok {
		t.Fatal("nil task should not be measurable")
	}
	open := entities.Task{Status: entities.TaskInProgress}
	if _, ok := CompletionTime(&open); ok {
		t.Fatal("open task should not be measurable")
	}
	noHistory := entities.Task{Status: entities.TaskCompleted}
	if _, ok := CompletionTime(&noHistory); ok {
		t.Fatal("task without history should not be measurable")
	}
}

func TestGlobalTimeStats(t *testing.T) {
	tasks := []entities.Task{
		completedTask("Water tomatoes", 30),
		completedTask("Prune roses", 20, 40),
		{Title: "Mow lawn", Status: entities.TaskInProgress},
	}
	got := GlobalTimeStats(tasks)
	if got == nil {
		t.Fatal("expected stats for two completed tasks")
	}
	if got.TotalTasks != 2 {
		t.Fatalf("total tasks = %d, want 2", got.TotalTasks)
	}
	if got.FastestMinutes != 30 || got.SlowestMinutes != 60 {
		t.Fatalf("fastest/slowest = %d/%d, want 30/60", got.FastestMinutes, got.SlowestMinutes)
	}
	if got.AverageMinutes != 45 {
		t.Fatalf("average = %d, want 45", got.AverageMinutes)
	}

	if GlobalTimeStats(nil) != nil {
		t.Fatal("no tasks should yield nil stats")
	}
}

func TestCollaboratorStatsContribution(t *testing.T) {
	shared := completedTask("Prune roses", 30, 10) // u1 did 30 of 40
	tasks := []entities.Task{shared}

	got := CollaboratorStats(tasks, "u1")
	if got == nil {
		t.Fatal("expected stats for u1")
	}
	if got.TotalTimeSpent != 30 {
		t.Fatalf("total time spent = %d, want 30", got.TotalTimeSpent)
	}
	if got.ContributionPercentage != 75 {
		t.Fatalf("contribution = %v, want 75", got.ContributionPercentage)
	}
	if got.ExpectedMinutes != 40 {
		t.Fatalf("expected minutes = %d, want 40", got.ExpectedMinutes)
	}

	if CollaboratorStats(tasks, "outsider") != nil {
		t.Fatal("user with no completed tasks should yield nil stats")
	}
}

func TestExpectedTimeAveragesByTitle(t *testing.T) {
	tasks := []entities.Task{
		completedTask("Water tomatoes", 20),
		completedTask("Water tomatoes", 30),
		completedTask("Prune roses", 90),
	}
	if got := ExpectedTime(tasks, "Water tomatoes"); got != 25 {
		t.Fatalf("expected time = %d, want 25", got)
	}
	if got := ExpectedTime(tasks, "Unknown"); got != 0 {
		t.Fatalf("unknown title = %d, want 0", got)
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		minutes int
		want    string
	}{
		{0, "0 min"},
		{45, "45 min"},
		{60, "1h"},
		{120, "2h"},
		{125, "2h 5min"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.minutes); got != tc.want {
			t.Fatalf("FormatDuration(%d) = %q, want %q", tc.minutes, got, tc.want)
		}
	}
}

func TestDelayGrading(t *testing.T) {
	now := base
	task := func(daysAgo int, status entities.TaskStatus) *entities.Task {
		return &entities.Task{Status: status, ActionDate: base.AddDate(0, 0, -daysAgo)}
	}
	cases := []struct {
		name     string
		task     *entities.Task
		priority int
		want     DelayStatus
	}{
		{"high priority fresh", task(0, entities.TaskAvailable), 1, DelayOnTrack},
		{"high priority at tolerance", task(1, entities.TaskAvailable), 1, DelayNear},
		{"high priority past tolerance", task(2, entities.TaskAvailable), 1, DelayOverdue},
		{"medium priority within grace", task(2, entities.TaskPending), 2, DelayOnTrack},
		{"medium priority at tolerance", task(3, entities.TaskPending), 2, DelayNear},
		{"low priority overdue", task(6, entities.TaskInProgress), 3, DelayOverdue},
		{"completed never graded", task(10, entities.TaskCompleted), 1, DelayNotGraded},
		{"no priority never graded", task(10, entities.TaskAvailable), 0, DelayNotGraded},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Delay(tc.task, tc.priority, now); got != tc.want {
				t.Fatalf("Delay() = %q, want %q", got, tc.want)
			}
		})
	}
}
