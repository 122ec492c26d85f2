package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RoutineTasksGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "jardin_routine_tasks_generated_total",
		Help: "Tasks materialized from routine definitions.",
	})

	StatusTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "jardin_status_transitions_total",
		Help: "Collaborator status transitions applied, by action.",
	}, []string{"action"})
)

// Handler exposes the default registry for the /metrics route.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
