package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/metrics"
	"jardin/pkg/task/controller"
	svc "jardin/pkg/task/service"
)

type TaskCtrl struct{ s svc.TaskService }

func New(s svc.TaskService) controller.TaskController { return &TaskCtrl{s} }

type taskReq struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	ZoneID        *string `json:"zone_id"`
	SubZoneID     *string `json:"sub_zone_id"`
	DesignationID *string `json:"designation_id"`
	ActionDate    string  `json:"action_date"`   // YYYY-MM-DD
	HasDeadline   bool    `json:"has_deadline"`
	DeadlineDate  string  `json:"deadline_date"` // YYYY-MM-DD
}

func (r taskReq) toInput() svc.TaskInput {
	in := svc.TaskInput{
		Title:         r.Title,
		Description:   r.Description,
		ZoneID:        r.ZoneID,
		SubZoneID:     r.SubZoneID,
		DesignationID: r.DesignationID,
		HasDeadline:   r.HasDeadline,
	}
	if d, err := time.Parse("2006-01-02", r.ActionDate); err == nil {
		in.ActionDate = d
	}
	if r.HasDeadline {
		if d, err := time.Parse("2006-01-02", r.DeadlineDate); err == nil {
			in.DeadlineDate = &d
		}
	}
	return in
}

func (h *TaskCtrl) List(c echo.Context) error {
	tasks, err := h.s.GetAllTasks()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, tasks)
}

func (h *TaskCtrl) Create(c echo.Context) error {
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	t, err := h.s.CreateTask(req.toInput())
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *TaskCtrl) Get(c echo.Context) error {
	t, err := h.s.GetTaskByID(c.Param("id"))
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Update(c echo.Context) error {
	var req taskReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	t, err := h.s.UpdateTask(c.Param("id"), req.toInput())
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Delete(c echo.Context) error {
	if err := h.s.DeleteTask(c.Param("id")); err != nil {
		return apperr.Resolve(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Assign accepts an optional user_id so admins can assign someone else;
// the other transitions always act on the caller's own record.
func (h *TaskCtrl) Assign(c echo.Context) error {
	var body struct {
		UserID string `json:"user_id"`
	}
	_ = c.Bind(&body)
	userID := body.UserID
	if userID == "" {
		userID, _ = c.Get("uid").(string)
	}
	t, err := h.s.Assign(c.Param("id"), userID)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	metrics.StatusTransitions.WithLabelValues("assign").Inc()
	return c.JSON(http.StatusOK, t)
}

func (h *TaskCtrl) Complete(c echo.Context) error { return h.transition(c, "complete", h.s.Complete) }
func (h *TaskCtrl) Pause(c echo.Context) error    { return h.transition(c, "pause", h.s.Pause) }
func (h *TaskCtrl) Resume(c echo.Context) error   { return h.transition(c, "resume", h.s.Resume) }

func (h *TaskCtrl) transition(c echo.Context, action string, fn func(taskID, userID string) (*entities.Task, error)) error {
	uid, _ := c.Get("uid").(string)
	t, err := fn(c.Param("id"), uid)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	metrics.StatusTransitions.WithLabelValues(action).Inc()
	return c.JSON(http.StatusOK, t)
}
