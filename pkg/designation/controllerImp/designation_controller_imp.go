package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jardin/pkg/apperr"
	"jardin/pkg/designation/repository"
)

type DesignationCtrl struct{ repo repository.DesignationRepository }

func New(repo repository.DesignationRepository) *DesignationCtrl { return &DesignationCtrl{repo} }

type titleReq struct {
	Title string `json:"title"`
}

func (h *DesignationCtrl) List(c echo.Context) error {
	out, err := h.repo.GetAll()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *DesignationCtrl) Create(c echo.Context) error {
	var req titleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, err := h.repo.Create(req.Title)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *DesignationCtrl) Update(c echo.Context) error {
	var req titleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	d, err := h.repo.Update(c.Param("id"), req.Title)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, d)
}

func (h *DesignationCtrl) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Param("id")); err != nil {
		return apperr.Resolve(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
