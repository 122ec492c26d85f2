package serviceImp

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"jardin/entities"
	"jardin/pkg/apperr"
	repo "jardin/pkg/routine/repository"
	"jardin/pkg/routine/service"
)

type routineSvc struct {
	r   repo.RoutineRepository
	now func() time.Time
}

func NewRoutineService(r repo.RoutineRepository) service.RoutineService {
	return &routineSvc{r: r, now: time.Now}
}

func buildAssignments(routineID string, userIDs []string) []entities.RoutineAssignment {
	out := make([]entities.RoutineAssignment, 0, len(userIDs))
	for _, uid := range userIDs {
		out = append(out, entities.RoutineAssignment{
			ID:        uuid.NewString(),
			RoutineID: routineID,
			UserID:    uid,
		})
	}
	return out
}

func (s *routineSvc) CreateRoutine(in service.RoutineInput) (*entities.Routine, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title", "routine title is required")
	}
	rt := &entities.Routine{
		ID:             uuid.NewString(),
		Title:          in.Title,
		Description:    in.Description,
		ZoneID:         in.ZoneID,
		SubZoneID:      in.SubZoneID,
		DesignationID:  in.DesignationID,
		Frequency:      in.Frequency,
		CustomInterval: in.CustomInterval,
		NextExecution:  in.NextExecution,
		Status:         entities.TaskAvailable,
		CreatedAt:      s.now(),
	}
	if err := rt.ValidateSchedule(); err != nil {
		return nil, apperr.Validation("frequency", err.Error())
	}
	if rt.NextExecution.IsZero() {
		return nil, apperr.Validation("next_execution", "routine start date is required")
	}
	rt.Assignments = buildAssignments(rt.ID, in.AssignedUserIDs)
	if err := s.r.Create(rt); err != nil {
		return nil, err
	}
	return s.r.FindByID(rt.ID)
}

func (s *routineSvc) UpdateRoutine(id string, in service.RoutineInput) (*entities.Routine, error) {
	if in.Title == "" {
		return nil, apperr.Validation("title", "routine title is required")
	}
	rt, err := s.r.FindByID(id)
	if err != nil {
		return nil, err
	}
	rt.Title = in.Title
	rt.Description = in.Description
	rt.ZoneID = in.ZoneID
	rt.SubZoneID = in.SubZoneID
	rt.DesignationID = in.DesignationID
	rt.Frequency = in.Frequency
	rt.CustomInterval = in.CustomInterval
	if !in.NextExecution.IsZero() {
		rt.NextExecution = in.NextExecution
	}
	if err := rt.ValidateSchedule(); err != nil {
		return nil, apperr.Validation("frequency", err.Error())
	}
	rt.Assignments = buildAssignments(id, in.AssignedUserIDs)
	if err := s.r.Update(rt); err != nil {
		return nil, err
	}
	return s.r.FindByID(id)
}

func (s *routineSvc) DeleteRoutine(id string) error { return s.r.Delete(id) }

func (s *routineSvc) GetRoutineByID(id string) (*entities.Routine, error) { return s.r.FindByID(id) }

func (s *routineSvc) GetAllRoutines() ([]entities.Routine, error) { return s.r.GetAll() }

func (s *routineSvc) Assign(routineID, userID string) (*entities.Routine, error) {
	rt, err := s.r.FindByID(routineID)
	if err != nil {
		return nil, err
	}
	for _, a := range rt.Assignments {
		if a.UserID == userID {
			return nil, apperr.InvalidState("user is already assigned to this routine")
		}
	}
	rt.Assignments = append(rt.Assignments, entities.RoutineAssignment{
		ID:        uuid.NewString(),
		RoutineID: rt.ID,
		UserID:    userID,
	})
	rt.Status = entities.TaskInProgress
	if err := s.r.Update(rt); err != nil {
		return nil, err
	}
	return s.r.FindByID(routineID)
}

func (s *routineSvc) Complete(routineID string) (*entities.Routine, error) {
	return s.setStatus(routineID, entities.TaskCompleted, true)
}

func (s *routineSvc) Pause(routineID string) (*entities.Routine, error) {
	return s.setStatus(routineID, entities.TaskPending, false)
}

func (s *routineSvc) Resume(routineID string) (*entities.Routine, error) {
	return s.setStatus(routineID, entities.TaskInProgress, false)
}

func (s *routineSvc) setStatus(routineID string, status entities.TaskStatus, stampExecution bool) (*entities.Routine, error) {
	rt, err := s.r.FindByID(routineID)
	if err != nil {
		return nil, err
	}
	rt.Status = status
	if stampExecution {
		now := s.now()
		rt.LastExecution = &now
	}
	if err := s.r.Update(rt); err != nil {
		return nil, err
	}
	return s.r.FindByID(routineID)
}

// GenerateDue creates one task per elapsed routine and advances each schedule
// a single step from its previous next-execution time. A routine that missed
// several intervals drains one instance per pass.
func (s *routineSvc) GenerateDue(now time.Time) (int, error) {
	due, err := s.r.FindDue(now)
	if err != nil {
		return 0, err
	}
	generated := 0
	for i := range due {
		rt := &due[i]
		next, err := rt.NextExecutionAfter(rt.NextExecution)
		if err != nil {
			log.WithField("routine_id", rt.ID).Warnf("skipping routine with bad schedule: %v", err)
			continue
		}
		if next.Before(now) {
			log.WithField("routine_id", rt.ID).Info("routine is more than one interval behind; draining one instance")
		}

		task := s.materialize(rt, now)
		prev := rt.NextExecution
		rt.NextExecution = next
		last := now
		rt.LastExecution = &last
		if err := s.r.GenerateInstance(rt, task); err != nil {
			rt.NextExecution = prev
			return generated, err
		}
		generated++
	}
	return generated, nil
}

// materialize copies the routine definition into a fresh available task. The
// routine's assigned users arrive as merely-assigned collaborators, which
// keeps the aggregate status at available.
func (s *routineSvc) materialize(rt *entities.Routine, now time.Time) *entities.Task {
	t := &entities.Task{
		ID:            uuid.NewString(),
		Title:         rt.Title,
		Description:   rt.Description,
		Status:        entities.TaskAvailable,
		ZoneID:        rt.ZoneID,
		SubZoneID:     rt.SubZoneID,
		DesignationID: rt.DesignationID,
		ActionDate:    rt.NextExecution,
		IsRoutine:     true,
		CreatedAt:     now,
		StatusHistory: []entities.StatusHistoryEvent{{
			ID:        uuid.NewString(),
			Status:    entities.TaskAvailable,
			Timestamp: now,
		}},
	}
	t.StatusHistory[0].TaskID = t.ID
	for _, uid := range rt.AssignedUserIDs() {
		t.Collaborators = append(t.Collaborators, entities.Collaborator{
			ID:               uuid.NewString(),
			TaskID:           t.ID,
			UserID:           uid,
			Status:           entities.CollabAssigned,
			JoinedAt:         now,
			LastStatusChange: now,
		})
	}
	return t
}
