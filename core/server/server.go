package server

import (
	"fmt"

	"calendar-sync-api/core/cache"
	"calendar-sync-api/core/config"
	"calendar-sync-api/core/database"
	"calendar-sync-api/core/logger"
	"calendar-sync-api/core/middleware"
	"calendar-sync-api/core/storage"
	"calendar-sync-api/core/worker"
	"calendar-sync-api/modules/auth"
	authtasks "calendar-sync-api/modules/auth/tasks"
	"calendar-sync-api/modules/calendar"
	"calendar-sync-api/modules/group"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// Run initializes configuration and all external clients, wires the
// modules, starts the background worker, and serves HTTP until the
// process exits.
func Run() error {
	cfg, err := config.Init()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	logger.Init(cfg.Server.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return err
	}

	cacheClient, err := cache.InitCache(cfg.Redis)
	if err != nil {
		return err
	}

	docStore, err := storage.InitStorage(cfg.Storage)
	if err != nil {
		return err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	mw := middleware.NewMiddleware(cacheClient)

	authService := auth.Init(e, db, cacheClient, mw)
	groupService := group.Init(e, db, mw)
	calendar.Init(e, authService, groupService, docStore)

	go func() {
		err := worker.Run(cfg.Redis, func(mux *asynq.ServeMux) {
			authtasks.Register(mux, db)
		})
		if err != nil {
			logger.Error("Server:Worker", "error", err)
		}
	}()

	go func() {
		err := worker.RunScheduler(cfg.Redis, []worker.PeriodicTask{
			{Cronspec: "@every 1h", Task: authtasks.NewCleanupOAuthStatesTask()},
		})
		if err != nil {
			logger.Error("Server:Scheduler", "error", err)
		}
	}()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", "addr", addr)
	return e.Start(addr)
}
