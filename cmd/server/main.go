package main

//	@title			Mission Control API
//	@version		1.0
//	@description	Personal dashboard API: projects, dev log, goals, notes, uptime monitors, ideas, income, schedule, wins and a tiny CRM.
//	@schemes		http https
//	@BasePath		/api/v1

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nightclaw/mission-control/internal/bootstrap"
	"github.com/nightclaw/mission-control/internal/config"
	"github.com/nightclaw/mission-control/internal/infra/cache"
	dbpkg "github.com/nightclaw/mission-control/internal/infra/db"
	"github.com/nightclaw/mission-control/internal/modules/handler"
	"github.com/nightclaw/mission-control/internal/modules/service"
	"github.com/nightclaw/mission-control/internal/router"
	"github.com/nightclaw/mission-control/internal/telemetry"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// build dependency injection container
	inj := bootstrap.BuildContainer()

	cfg := do.MustInvoke[*config.Config](inj)
	log := do.MustInvoke[*zap.Logger](inj)

	// Setup OpenTelemetry tracing (using configuration system)
	tp, err := telemetry.SetupTracing(cfg)
	if err != nil {
		log.Sugar().Warnw("failed to setup tracing, continuing without tracing", "err", err)
	} else if tp != nil {
		log.Sugar().Infow("OpenTelemetry tracing enabled", "endpoint", cfg.Telemetry.OtlpEndpoint)
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := telemetry.Shutdown(ctx); err != nil {
				log.Sugar().Errorw("failed to shutdown tracer", "err", err)
			}
		}()

		// Instrument whichever store backend is in use after the tracer
		// provider is set
		switch cfg.Store.Driver {
		case "postgres":
			db := do.MustInvoke[*gorm.DB](inj)
			if err := dbpkg.RegisterOpenTelemetryPlugin(db); err != nil {
				log.Sugar().Warnw("failed to register GORM OpenTelemetry plugin, continuing without database tracing", "err", err)
			}
		case "redis":
			rdb := do.MustInvoke[*redis.Client](inj)
			if err := cache.RegisterOpenTelemetryPlugin(rdb); err != nil {
				log.Sugar().Warnw("failed to register Redis OpenTelemetry plugin, continuing without Redis tracing", "err", err)
			}
		}
	}

	// init gin
	gin.SetMode(cfg.App.Env)

	// build handlers
	engine := router.NewRouter(router.RouterDeps{
		Config:          cfg,
		Log:             log,
		OverviewHandler: do.MustInvoke[*handler.OverviewHandler](inj),
		ProjectHandler:  do.MustInvoke[*handler.ProjectHandler](inj),
		DevLogHandler:   do.MustInvoke[*handler.DevLogHandler](inj),
		GoalHandler:     do.MustInvoke[*handler.GoalHandler](inj),
		NoteHandler:     do.MustInvoke[*handler.NoteHandler](inj),
		MonitorHandler:  do.MustInvoke[*handler.MonitorHandler](inj),
		IdeaHandler:     do.MustInvoke[*handler.IdeaHandler](inj),
		IncomeHandler:   do.MustInvoke[*handler.IncomeHandler](inj),
		ScheduleHandler: do.MustInvoke[*handler.ScheduleHandler](inj),
		WinHandler:      do.MustInvoke[*handler.WinHandler](inj),
		CRMHandler:      do.MustInvoke[*handler.CRMHandler](inj),
	})

	// background uptime sweep
	sweepCtx, stopSweep := context.WithCancel(context.Background())
	defer stopSweep()
	monitors := do.MustInvoke[service.MonitorService](inj)
	go monitors.RunSweeper(sweepCtx, time.Duration(cfg.Monitor.SweepIntervalSec)*time.Second)

	addr := fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port)
	srv := &http.Server{Addr: addr, Handler: engine}

	go func() {
		log.Sugar().Infow("starting http server", "addr", addr)
		log.Sugar().Infow("swagger url", "url", addr+"/swagger/index.html")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Sugar().Fatalw("listen error", "err", err)
		}
	}()

	// graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	stopSweep()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Sugar().Errorw("server shutdown", "err", err)
	}
	log.Sugar().Info("server exited")
}
