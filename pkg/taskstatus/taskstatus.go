package taskstatus

import "jardin/entities"

// Aggregate derives a task's status from its collaborator set. Recomputed on
// every mutation; same multiset in, same status out.
//
//	no collaborators        -> available
//	all completed           -> completed
//	at least one active     -> in-progress
//	none active, any paused -> pending
//	all merely assigned     -> available
func Aggregate(collaborators []entities.Collaborator) entities.TaskStatus {
	if len(collaborators) == 0 {
		return entities.TaskAvailable
	}
	completed, active, paused := 0, 0, 0
	for _, c := range collaborators {
		switch c.Status {
		case entities.CollabCompleted:
			completed++
		case entities.CollabActive:
			active++
		case entities.CollabPaused:
			paused++
		}
	}
	switch {
	case completed == len(collaborators):
		return entities.TaskCompleted
	case active > 0:
		return entities.TaskInProgress
	case paused > 0:
		return entities.TaskPending
	default:
		return entities.TaskAvailable
	}
}

// Progress is the completed share of collaborators, in percent.
func Progress(collaborators []entities.Collaborator) float64 {
	if len(collaborators) == 0 {
		return 0
	}
	completed := 0
	for _, c := range collaborators {
		if c.Status == entities.CollabCompleted {
			completed++
		}
	}
	return float64(completed) / float64(len(collaborators)) * 100
}

func IsAssignedTo(task *entities.Task, userID string) bool {
	for _, c := range task.Collaborators {
		if c.UserID == userID {
			return true
		}
	}
	return false
}

func IsCompletedFor(task *entities.Task, userID string) bool {
	for _, c := range task.Collaborators {
		if c.UserID == userID {
			return c.Status == entities.CollabCompleted
		}
	}
	return false
}
