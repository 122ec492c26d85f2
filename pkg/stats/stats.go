package stats

import (
	"fmt"
	"time"

	"jardin/entities"
)

type TimeStats struct {
	AverageMinutes int `json:"average_minutes"`
	FastestMinutes int `json:"fastest_minutes"`
	SlowestMinutes int `json:"slowest_minutes"`
	TotalTasks     int `json:"total_tasks"`
}

type CollaboratorTimeStats struct {
	TimeStats
	TotalTimeSpent         int     `json:"total_time_spent"`
	ContributionPercentage float64 `json:"contribution_percentage"`
	ExpectedMinutes        int     `json:"expected_minutes"`
}

// CompletionTime is the wall-clock span between the first in-progress and the
// first completed history event. Only meaningful for completed tasks.
func CompletionTime(t *entities.Task) (int, bool) {
	if t == nil || t.Status != entities.TaskCompleted {
		return 0, false
	}
	var started, finished *time.Time
	for i := range t.StatusHistory {
		ev := &t.StatusHistory[i]
		if started == nil && ev.Status == entities.TaskInProgress {
			started = &ev.Timestamp
		}
		if finished == nil && ev.Status == entities.TaskCompleted {
			finished = &ev.Timestamp
		}
	}
	if started == nil || finished == nil {
		return 0, false
	}
	return int(finished.Sub(*started).Minutes()), true
}

func totalTimeSpent(t *entities.Task) int {
	sum := 0
	for _, c := range t.Collaborators {
		sum += c.TimeSpent
	}
	return sum
}

// ExpectedTime averages the total collaborator minutes over completed tasks
// that share the same title.
func ExpectedTime(tasks []entities.Task, title string) int {
	sum, n := 0, 0
	for i := range tasks {
		if tasks[i].Status == entities.TaskCompleted && tasks[i].Title == title {
			sum += totalTimeSpent(&tasks[i])
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(float64(sum)/float64(n) + 0.5)
}

func CollaboratorStats(tasks []entities.Task, userID string) *CollaboratorTimeStats {
	if len(tasks) == 0 || userID == "" {
		return nil
	}
	var spent []int
	var contribSum, expectedSum float64
	for i := range tasks {
		t := &tasks[i]
		if t.Status != entities.TaskCompleted {
			continue
		}
		var mine *entities.Collaborator
		for j := range t.Collaborators {
			if t.Collaborators[j].UserID == userID {
				mine = &t.Collaborators[j]
				break
			}
		}
		if mine == nil {
			continue
		}
		total := totalTimeSpent(t)
		spent = append(spent, mine.TimeSpent)
		if total > 0 {
			contribSum += float64(mine.TimeSpent) / float64(total) * 100
		}
		expectedSum += float64(ExpectedTime(tasks, t.Title))
	}
	if len(spent) == 0 {
		return nil
	}
	sum, fastest, slowest := 0, spent[0], spent[0]
	for _, v := range spent {
		sum += v
		if v < fastest {
			fastest = v
		}
		if v > slowest {
			slowest = v
		}
	}
	n := float64(len(spent))
	return &CollaboratorTimeStats{
		TimeStats: TimeStats{
			AverageMinutes: int(float64(sum)/n + 0.5),
			FastestMinutes: fastest,
			SlowestMinutes: slowest,
			TotalTasks:     len(spent),
		},
		TotalTimeSpent:         sum,
		ContributionPercentage: contribSum / n,
		ExpectedMinutes:        int(expectedSum/n + 0.5),
	}
}

func GlobalTimeStats(tasks []entities.Task) *TimeStats {
	var times []int
	for i := range tasks {
		if tasks[i].Status == entities.TaskCompleted {
			times = append(times, totalTimeSpent(&tasks[i]))
		}
	}
	if len(times) == 0 {
		return nil
	}
	sum, fastest, slowest := 0, times[0], times[0]
	for _, v := range times {
		sum += v
		if v < fastest {
			fastest = v
		}
		if v > slowest {
			slowest = v
		}
	}
	return &TimeStats{
		AverageMinutes: int(float64(sum)/float64(len(times)) + 0.5),
		FastestMinutes: fastest,
		SlowestMinutes: slowest,
		TotalTasks:     len(times),
	}
}

func FormatDuration(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	rest := minutes % 60
	if rest == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh %dmin", hours, rest)
}
