package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"jardin/config"
	"jardin/database"
	"jardin/router"

	authCtrlImp "jardin/pkg/auth/controllerImp"

	zoneCtrlImp "jardin/pkg/zone/controllerImp"
	zoneRepoImp "jardin/pkg/zone/repositoryImp"
	zoneSvcImp "jardin/pkg/zone/serviceImp"

	taskCtrlImp "jardin/pkg/task/controllerImp"
	taskRepoImp "jardin/pkg/task/repositoryImp"
	taskSvcImp "jardin/pkg/task/serviceImp"

	"jardin/pkg/routine/generator"
	routineCtrlImp "jardin/pkg/routine/controllerImp"
	routineRepoImp "jardin/pkg/routine/repositoryImp"
	routineSvcImp "jardin/pkg/routine/serviceImp"

	userCtrlImp "jardin/pkg/user/controllerImp"
	userRepoImp "jardin/pkg/user/repositoryImp"
	userSvcImp "jardin/pkg/user/serviceImp"

	designationCtrlImp "jardin/pkg/designation/controllerImp"
	designationRepoImp "jardin/pkg/designation/repositoryImp"

	healthCtrlImp "jardin/pkg/health/controllerImp"
	statsCtrlImp "jardin/pkg/stats/controllerImp"
)

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}

	// 3) Repos
	zRepo := zoneRepoImp.New(db, cfg.SaveRetries)
	tRepo := taskRepoImp.New(db, cfg.SaveRetries)
	rRepo := routineRepoImp.New(db, cfg.SaveRetries)
	uRepo := userRepoImp.New(db, cfg.SaveRetries)
	dRepo := designationRepoImp.New(db, cfg.SaveRetries)

	// 4) Services
	zSvc := zoneSvcImp.NewZoneService(zRepo)
	tSvc := taskSvcImp.NewTaskService(tRepo)
	rSvc := routineSvcImp.NewRoutineService(rRepo)
	uSvc := userSvcImp.NewUserService(uRepo)

	// 5) Controllers
	zCtrl := zoneCtrlImp.New(zSvc)
	tCtrl := taskCtrlImp.New(tSvc)
	rCtrl := routineCtrlImp.New(rSvc)
	uCtrl := userCtrlImp.New(uSvc)
	dCtrl := designationCtrlImp.New(dRepo)
	sCtrl := statsCtrlImp.New(tSvc, uSvc, zSvc)
	aCtrl := authCtrlImp.New(uSvc, cfg.JWTSecret)
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 6) Routine generator runs beside the request handlers.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	gen := generator.New(rSvc, cfg.RoutineInterval)
	go gen.Run(ctx)

	// 7) Echo
	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())

	r := router.New(e, cfg.JWTSecret, zCtrl, tCtrl, rCtrl, uCtrl, dCtrl, sCtrl, aCtrl, hCtrl)

	// 8) Start
	log.Infof("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
