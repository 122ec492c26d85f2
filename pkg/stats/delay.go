package stats

import (
	"time"

	"jardin/entities"
)

type DelayStatus string

const (
	DelayOverdue   DelayStatus = "overdue"
	DelayNear      DelayStatus = "near-delay"
	DelayOnTrack   DelayStatus = "on-track"
	DelayNotGraded DelayStatus = ""
)

// Days of grace per sub-zone priority before a task counts as late.
var priorityTolerances = map[int]int{
	1: 1, // high
	2: 3, // medium
	3: 5, // low
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// Delay grades a pending task against its action date. Completed tasks and
// tasks without a prioritized sub-zone are not graded.
func Delay(t *entities.Task, subZonePriority int, now time.Time) DelayStatus {
	if t.Status == entities.TaskCompleted {
		return DelayNotGraded
	}
	tolerance, ok := priorityTolerances[subZonePriority]
	if !ok {
		return DelayNotGraded
	}
	elapsed := int(startOfDay(now).Sub(startOfDay(t.ActionDate)).Hours() / 24)
	switch {
	case elapsed > tolerance:
		return DelayOverdue
	case elapsed == tolerance:
		return DelayNear
	default:
		return DelayOnTrack
	}
}
