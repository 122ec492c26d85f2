package generator

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"jardin/pkg/metrics"
	"jardin/pkg/routine/service"
)

// Generator polls the routine schedule and materializes tasks whose
// next-execution time has elapsed. It shares the database with the request
// handlers; each pass is one transaction per generated task.
type Generator struct {
	svc      service.RoutineService
	interval time.Duration
}

func New(svc service.RoutineService, interval time.Duration) *Generator {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Generator{svc: svc, interval: interval}
}

func (g *Generator) Run(ctx context.Context) {
	ticker := time.NewTicker(g.interval)
	defer ticker.Stop()

	log.Infof("routine generator running, checking every %s", g.interval)
	for {
		select {
		case <-ctx.Done():
			log.Info("routine generator stopped")
			return
		case now := <-ticker.C:
			n, err := g.svc.GenerateDue(now)
			if err != nil {
				log.Errorf("routine generation pass failed: %v", err)
			}
			if n > 0 {
				metrics.RoutineTasksGenerated.Add(float64(n))
				log.Infof("generated %d task(s) from routines", n)
			}
		}
	}
}
