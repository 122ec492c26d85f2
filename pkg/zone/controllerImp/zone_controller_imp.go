package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jardin/pkg/apperr"
	"jardin/pkg/zone/controller"
	svc "jardin/pkg/zone/service"
)

type ZoneCtrl struct{ s svc.ZoneService }

func New(s svc.ZoneService) controller.ZoneController { return &ZoneCtrl{s} }

func (h *ZoneCtrl) List(c echo.Context) error {
	zones, err := h.s.GetAllZones()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, zones)
}

func (h *ZoneCtrl) Create(c echo.Context) error {
	var req svc.ZoneInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	z, err := h.s.CreateZone(req)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusCreated, z)
}

func (h *ZoneCtrl) Get(c echo.Context) error {
	z, err := h.s.GetZoneByID(c.Param("id"))
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, z)
}

func (h *ZoneCtrl) Update(c echo.Context) error {
	var req svc.ZoneInput
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	z, err := h.s.UpdateZone(c.Param("id"), req)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, z)
}

func (h *ZoneCtrl) Delete(c echo.Context) error {
	if err := h.s.DeleteZone(c.Param("id")); err != nil {
		return apperr.Resolve(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
