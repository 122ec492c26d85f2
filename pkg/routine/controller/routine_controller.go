package controller

import "github.com/labstack/echo/v4"

type RoutineController interface {
	List(c echo.Context) error
	Create(c echo.Context) error
	Get(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
	Assign(c echo.Context) error
	Complete(c echo.Context) error
	Pause(c echo.Context) error
	Resume(c echo.Context) error
}
