package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"jardin/entities"
	"jardin/pkg/apperr"
	"jardin/pkg/user/controller"
	svc "jardin/pkg/user/service"
)

type UserCtrl struct{ s svc.UserService }

func New(s svc.UserService) controller.UserController { return &UserCtrl{s} }

func (h *UserCtrl) List(c echo.Context) error {
	users, err := h.s.GetAllUsers()
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, users)
}

func (h *UserCtrl) Create(c echo.Context) error {
	var req struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Role      string `json:"role"`
		CanManage bool   `json:"can_manage_tasks_and_routines"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	u, err := h.s.CreateUser(svc.UserInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      entities.Role(req.Role),
		CanManage: req.CanManage,
	})
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusCreated, u)
}

func (h *UserCtrl) Get(c echo.Context) error {
	u, err := h.s.GetUserByID(c.Param("id"))
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) Update(c echo.Context) error {
	var req struct {
		Name      *string `json:"name"`
		Email     *string `json:"email"`
		Password  *string `json:"password"`
		Role      *string `json:"role"`
		CanManage *bool   `json:"can_manage_tasks_and_routines"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	patch := svc.UserPatch{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		CanManage: req.CanManage,
	}
	if req.Role != nil {
		role := entities.Role(*req.Role)
		patch.Role = &role
	}
	u, err := h.s.UpdateUser(c.Param("id"), patch)
	if err != nil {
		return apperr.Resolve(c, err)
	}
	return c.JSON(http.StatusOK, u)
}

func (h *UserCtrl) Delete(c echo.Context) error {
	if err := h.s.DeleteUser(c.Param("id")); err != nil {
		return apperr.Resolve(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
