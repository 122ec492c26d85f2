package router

import (
	"github.com/labstack/echo/v4"

	authctrl "jardin/pkg/auth/controller"
	designationCtrl "jardin/pkg/designation/controllerImp"
	healthCtrl "jardin/pkg/health/controllerImp"
	"jardin/pkg/metrics"
	"jardin/pkg/middleware"
	routinectrl "jardin/pkg/routine/controller"
	statsCtrl "jardin/pkg/stats/controllerImp"
	taskctrl "jardin/pkg/task/controller"
	userctrl "jardin/pkg/user/controller"
	zonectrl "jardin/pkg/zone/controller"
)

func New(
	e *echo.Echo,
	jwtSecret string,
	zones zonectrl.ZoneController,
	tasks taskctrl.TaskController,
	routines routinectrl.RoutineController,
	users userctrl.UserController,
	designations *designationCtrl.DesignationCtrl,
	stats *statsCtrl.StatsCtrl,
	auth authctrl.AuthController,
	health *healthCtrl.HealthCtrl,
) *echo.Echo {
	e.GET("/health", health.Health)
	e.GET("/metrics", metrics.Handler())
	e.POST("/auth/login", auth.Login)

	api := e.Group("", middleware.JWT(jwtSecret))
	api.GET("/whoami", auth.WhoAmI)

	api.GET("/zones", zones.List)
	api.POST("/zones", zones.Create)
	api.GET("/zones/:id", zones.Get)
	api.PUT("/zones/:id", zones.Update)
	api.DELETE("/zones/:id", zones.Delete, middleware.AdminOnly())

	api.GET("/tasks", tasks.List)
	api.GET("/tasks/:id", tasks.Get)
	api.POST("/tasks", tasks.Create, middleware.CanManage())
	api.PUT("/tasks/:id", tasks.Update, middleware.CanManage())
	api.DELETE("/tasks/:id", tasks.Delete, middleware.CanManage())
	api.POST("/tasks/:id/assign", tasks.Assign)
	api.POST("/tasks/:id/complete", tasks.Complete)
	api.POST("/tasks/:id/pause", tasks.Pause)
	api.POST("/tasks/:id/resume", tasks.Resume)

	api.GET("/routines", routines.List)
	api.GET("/routines/:id", routines.Get)
	api.POST("/routines", routines.Create, middleware.CanManage())
	api.PUT("/routines/:id", routines.Update, middleware.CanManage())
	api.DELETE("/routines/:id", routines.Delete, middleware.CanManage())
	api.POST("/routines/:id/assign", routines.Assign)
	api.POST("/routines/:id/complete", routines.Complete)
	api.POST("/routines/:id/pause", routines.Pause)
	api.POST("/routines/:id/resume", routines.Resume)

	api.GET("/users", users.List)
	api.GET("/users/:id", users.Get)
	admin := api.Group("/users", middleware.AdminOnly())
	admin.POST("", users.Create)
	admin.PUT("/:id", users.Update)
	admin.DELETE("/:id", users.Delete)

	api.GET("/designations", designations.List)
	api.POST("/designations", designations.Create, middleware.CanManage())
	api.PUT("/designations/:id", designations.Update, middleware.CanManage())
	api.DELETE("/designations/:id", designations.Delete, middleware.CanManage())

	statsGroup := api.Group("/stats", middleware.AdminOnly())
	statsGroup.GET("/global", stats.Global)
	statsGroup.GET("/collaborators/:id", stats.Collaborator)
	statsGroup.GET("/delays", stats.Delays)
	statsGroup.GET("/export", stats.Export)

	return e
}
