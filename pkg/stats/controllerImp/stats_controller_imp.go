package controllerImp

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/stats"
	tasksvc "jardin/pkg/task/service"
	usersvc "jardin/pkg/user/service"
	zonesvc "jardin/pkg/zone/service"
)

type StatsCtrl struct {
	tasks tasksvc.TaskService
	users usersvc.UserService
	zones zonesvc.ZoneService
}

func New(tasks tasksvc.TaskService, users usersvc.UserService, zones zonesvc.ZoneService) *StatsCtrl {
	return &StatsCtrl{tasks: tasks, users: users, zones: zones}
}

func (h *StatsCtrl) Global(c echo.Context) error {
	tasks, err := h.tasks.GetAllTasks()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	counts := map[entities.TaskStatus]int{}
	for i := range tasks {
		counts[tasks[i].Status]++
	}
	return c.JSON(http.StatusOK, map[string]any{
		"time":      stats.GlobalTimeStats(tasks),
		"total":     len(tasks),
		"by_status": counts,
	})
}

func (h *StatsCtrl) Collaborator(c echo.Context) error {
	userID := c.Param("id")
	if _, err := h.users.GetUserByID(userID); err != nil {
		return apperr.Resolve(c, err)
	}
	tasks, err := h.tasks.GetAllTasks()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"user_id": userID,
		"stats":   stats.CollaboratorStats(tasks, userID),
	})
}

func (h *StatsCtrl) Delays(c echo.Context) error {
	tasks, err := h.tasks.GetAllTasks()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	zones, err := h.zones.GetAllZones()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	priorities := map[string]int{}
	for i := range zones {
		for _, sz := range zones[i].SubZones {
			priorities[sz.ID] = sz.Priority
		}
	}
	now := time.Now()
	type delayRow struct {
		TaskID string            `json:"task_id"`
		Title  string            `json:"title"`
		Status stats.DelayStatus `json:"delay_status"`
	}
	out := make([]delayRow, 0, len(tasks))
	for i := range tasks {
		t := &tasks[i]
		priority := 0
		if t.SubZoneID != nil {
			priority = priorities[*t.SubZoneID]
		}
		if d := stats.Delay(t, priority, now); d != stats.DelayNotGraded {
			out = append(out, delayRow{TaskID: t.ID, Title: t.Title, Status: d})
		}
	}
	return c.JSON(http.StatusOK, out)
}

func (h *StatsCtrl) Export(c echo.Context) error {
	tasks, err := h.tasks.GetAllTasks()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	users, err := h.users.GetAllUsers()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	f, err := stats.BuildWorkbook(tasks, users)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="statistics.xlsx"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
