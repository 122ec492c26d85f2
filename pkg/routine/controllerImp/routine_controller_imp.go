package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/routine/controller"
	svc "jardin/pkg/routine/service"
)

type RoutineCtrl struct{ s svc.RoutineService }

func New(s svc.RoutineService) controller.RoutineController { return &RoutineCtrl{s} }

type routineReq struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ZoneID          *string  `json:"zone_id"`
	SubZoneID       *string  `json:"sub_zone_id"`
	DesignationID   *string  `json:"designation_id"`
	Frequency       string   `json:"frequency"`
	CustomInterval  *int     `json:"custom_interval"`
	StartDate       string   `json:"start_date"` // YYYY-MM-DD, first execution
	AssignedUserIDs []string `json:"assigned_user_ids"`
}

func (r routineReq) toInput() svc.RoutineInput {
	in := svc.RoutineInput{
		Title:           r.Title,
		Description:     r.Description,
		ZoneID:          r.ZoneID,
		SubZoneID:       r.SubZoneID,
		DesignationID:   r.DesignationID,
		Frequency:       entities.Frequency(r.Frequency),
		CustomInterval:  r.CustomInterval,
		AssignedUserIDs: r.AssignedUserIDs,
	}
	if d, err := time.Parse("2006-01-02", r.StartDate); err == nil {
		in.NextExecution = d
	}
	return in
}

func (h *RoutineCtrl) List(c echo.Context) error {
	routines, err := h.s.GetAllRoutines()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, routines)
}

func (h *RoutineCtrl) Create(c echo.Context) error {
	var req routineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rt, err := h.s.CreateRoutine(req.toInput())
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusCreated, rt)
}

func (h *RoutineCtrl) Get(c echo.Context) error {
	rt, err := h.s.GetRoutineByID(c.Param("id"))
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *RoutineCtrl) Update(c echo.Context) error {
	var req routineReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	rt, err := h.s.UpdateRoutine(c.Param("id"), req.toInput())
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *RoutineCtrl) Delete(c echo.Context) error {
	if err := h.s.DeleteRoutine(c.Param("id")); err != nil {
		return apperr.Resolve(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *RoutineCtrl) Assign(c echo.Context) error {
	var body struct {
		UserID string `json:"user_id"`
	}
	_ = c.Bind(&body)
	userID := body.UserID
	if userID == "" {
		userID, _ = c.Get("uid").(string)
	}
	rt, err := h.s.Assign(c.Param("id"), userID)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, rt)
}

func (h *RoutineCtrl) Complete(c echo.Context) error { return h.transition(c, h.s.Complete) }
func (h *RoutineCtrl) Pause(c echo.Context) error    { return h.transition(c, h.s.Pause) }
func (h *RoutineCtrl) Resume(c echo.Context) error   { return h.transition(c, h.s.Resume) }

func (h *RoutineCtrl) transition(c echo.Context, fn func(id string) (*entities.Routine, error)) error {
	rt, err := fn(c.Param("id"))
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, rt)
}
