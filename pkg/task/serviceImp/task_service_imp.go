package serviceImp

import (
	"time"

	"github.com/google/uuid"

	"jardin/entities"
	"jardin/pkg/apperr"
	repo "jardin/pkg/task/repository"
	"jardin/pkg/task/service"
	"jardin/pkg/taskstatus"
)

type taskSvc struct {
	r   repo.TaskRepository
	now func() time.Time
}

func NewTaskService(r repo.TaskRepository) service.TaskService {
	return &taskSvc{r: r, now: time.Now}
}

func (s *taskSvc) CreateTask(in service.TaskInput) (*entities.Task, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title", "task title is required")
	}
	now := s.now()
	actionDate := in.ActionDate
	if actionDate.IsZero() {
		actionDate = now
	}
	t := &entities.Task{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		Status:        entities.TaskAvailable,
		ZoneID:        in.ZoneID,
		SubZoneID:     in.SubZoneID,
		DesignationID: in.DesignationID,
		ActionDate:    actionDate,
		HasDeadline:   in.HasDeadline,
		DeadlineDate:  in.DeadlineDate,
		CreatedAt:     now,
		StatusHistory: []entities.StatusHistoryEvent{{
			ID:        uuid.NewString(),
			Status:    entities.TaskAvailable,
			Timestamp: now,
		}},
	}
	t.StatusHistory[0].TaskID = t.ID
	if err := s.r.Create(t); err != nil {
		return nil, err
	}
	return s.r.FindByID(t.ID)
}

func (s *taskSvc) UpdateTask(id string, in service.TaskInput) (*entities.Task, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title", "task title is required")
	}
	t, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	t.Title = in.Title
	t.Description = in.Description
	t.ZoneID = in.ZoneID
	t.SubZoneID = in.SubZoneID
	t.DesignationID = in.DesignationID
	if !in.ActionDate.IsZero() {
		t.ActionDate = in.ActionDate
	}
	t.HasDeadline = in.HasDeadline
	t.DeadlineDate = in.DeadlineDate
	if err := s.r.Update(t); err != nil {
		return nil, err
	}
	return s.r.FindByID(id)
}

func (s *taskSvc) DeleteTask(id string) error { return s.r.Delete(id) }

func (s *taskSvc) GetTaskByID(id string) (*entities.Task, error) { return s.r.FindByID(id) }

func (s *taskSvc) GetAllTasks() ([]entities.Task, error) { return s.r.GetAll() }

func (s *taskSvc) Assign(taskID, userID string) (*entities.Task, error) {
	t, err := s.r.FindByID(taskID)
	if err != nil {
		return nil, err
	}
	if taskstatus.IsAssignedTo(t, userID) {
		return nil, apperr.InvalidState("user already collaborates on this task")
	}
	// One active task per user.
	busy, err := s.r.HasActiveElsewhere(userID, taskID)
	if err != nil {
		return nil, err
	}
	if busy {
		return nil, apperr.InvalidState("user already has an active task")
	}
	now := s.now()
	started := now
	t.Collaborators = append(t.Collaborators, entities.Collaborator{
		ID:               uuid.NewString(),
		TaskID:           t.ID,
		UserID:           userID,
		Status:           entities.CollabActive,
		JoinedAt:         now,
		StartedAt:        &started,
		TimeSpent:        0,
		LastStatusChange: now,
	})
	t.Status = taskstatus.Aggregate(t.Collaborators)
	s.appendEvent(t, t.Status, now, &userID)
	if err := s.r.Update(t); err != nil {
		return nil, err
	}
	return s.r.FindByID(taskID)
}

func (s *taskSvc) Complete(taskID, userID string) (*entities.Task, error) {
	t, collab, err := s.findCollaborator(taskID, userID)
	if err != nil {
		return nil, err
	}
	if collab.Status == entities.CollabCompleted {
		return nil, apperr.InvalidState("collaborator has already completed this task")
	}
	now := s.now()
	s.accrue(collab, now)
	collab.Status = entities.CollabCompleted
	collab.LastStatusChange = now

	// Aggregate moves to completed only once every collaborator is done;
	// otherwise the prior task status stands.
	if taskstatus.Aggregate(t.Collaborators) == entities.TaskCompleted {
		t.Status = entities.TaskCompleted
	}
	s.appendEvent(t, t.Status, now, &userID)
	if err := s.r.Update(t); err != nil {
		return nil, err
	}
	return s.r.FindByID(taskID)
}

func (s *taskSvc) Pause(taskID, userID string) (*entities.Task, error) {
	t, collab, err := s.findCollaborator(taskID, userID)
	if err != nil {
		return nil, err
	}
	if collab.Status != entities.CollabActive {
		return nil, apperr.InvalidState("only an active collaborator can pause")
	}
	now := s.now()
	s.accrue(collab, now)
	collab.Status = entities.CollabPaused
	collab.LastStatusChange = now
	t.Status = taskstatus.Aggregate(t.Collaborators)
	s.appendEvent(t, t.Status, now, &userID)
	if err := s.r.Update(t); err != nil {
		return nil, err
	}
	return s.r.FindByID(taskID)
}

func (s *taskSvc) Resume(taskID, userID string) (*entities.Task, error) {
	t, collab, err := s.findCollaborator(taskID, userID)
	if err != nil {
		return nil, err
	}
	if collab.Status != entities.CollabPaused {
		return nil, apperr.InvalidState("only a paused collaborator can resume")
	}
	now := s.now()
	started := now
	collab.Status = entities.CollabActive
	collab.StartedAt = &started // accrual restarts here, TimeSpent is kept
	collab.LastStatusChange = now
	t.Status = taskstatus.Aggregate(t.Collaborators)
	s.appendEvent(t, t.Status, now, &userID)
	if err := s.r.Update(t); err != nil {
		return nil, err
	}
	return s.r.FindByID(taskID)
}

func (s *taskSvc) findCollaborator(taskID, userID string) (*entities.Task, *entities.Collaborator, error) {
	t, err := s.r.FindByID(taskID)
	if err != nil {
		return nil, nil, err
	}
	for i := range t.Collaborators {
		if t.Collaborators[i].UserID == userID {
			return t, &t.Collaborators[i], nil
		}
	}
	return nil, nil, apperr.InvalidState("user is not a collaborator on this task")
}

// accrue folds the minutes spent since startedAt into TimeSpent. Only an
// active collaborator accrues time.
func (s *taskSvc) accrue(collab *entities.Collaborator, now time.Time) {
	if collab.Status != entities.CollabActive || collab.StartedAt == nil {
		return
	}
	if minutes := int(now.Sub(*collab.StartedAt).Minutes()); minutes > 0 {
		collab.TimeSpent += minutes
	}
}

func (s *taskSvc) appendEvent(t *entities.Task, status entities.TaskStatus, at time.Time, userID *string) {
	t.StatusHistory = append(t.StatusHistory, entities.StatusHistoryEvent{
		ID:        uuid.NewString(),
		TaskID:    t.ID,
		Status:    status,
		Timestamp: at,
		UserID:    userID,
	})
}
