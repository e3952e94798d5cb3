package bootstrap

import (
	"context"
	"fmt"

	"github.com/nightclaw/mission-control/internal/config"
	"github.com/nightclaw/mission-control/internal/infra/cache"
	"github.com/nightclaw/mission-control/internal/infra/db"
	"github.com/nightclaw/mission-control/internal/infra/kv"
	"github.com/nightclaw/mission-control/internal/infra/logger"
	"github.com/nightclaw/mission-control/internal/infra/relay"
	"github.com/nightclaw/mission-control/internal/modules/handler"
	"github.com/nightclaw/mission-control/internal/modules/repo"
	"github.com/nightclaw/mission-control/internal/modules/service"
	"github.com/redis/go-redis/v9"
	"github.com/samber/do"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func BuildContainer() *do.Injector {
	inj := do.New()

	// config
	do.Provide(inj, func(i *do.Injector) (*config.Config, error) {
		return config.Load()
	})

	// logger
	do.Provide(inj, func(i *do.Injector) (*zap.Logger, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return logger.New(cfg.Log.Level)
	})

	// DB
	do.Provide(inj, func(i *do.Injector) (*gorm.DB, error) {
		cfg := do.MustInvoke[*config.Config](i)
		d, err := db.New(cfg)
		if err != nil {
			return nil, err
		}
		// [optional] auto migrate
		if cfg.Database.AutoMigrate {
			_ = d.AutoMigrate(&kv.Entry{})
		}
		return d, nil
	})

	// Redis
	do.Provide(inj, func(i *do.Injector) (*redis.Client, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return cache.New(cfg), nil
	})

	// Collection store, selected by driver. Providers are lazy, so only
	// the backing client the driver needs gets dialed.
	do.Provide(inj, func(i *do.Injector) (kv.Store, error) {
		cfg := do.MustInvoke[*config.Config](i)
		log := do.MustInvoke[*zap.Logger](i)
		switch cfg.Store.Driver {
		case "redis":
			return kv.NewRedisStore(do.MustInvoke[*redis.Client](i), cfg.Store.Namespace, log), nil
		case "postgres":
			return kv.NewGormStore(do.MustInvoke[*gorm.DB](i), cfg.Store.Namespace, log), nil
		case "memory":
			return kv.NewMemoryStore(), nil
		default:
			return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
		}
	})

	// Reachability relay
	do.Provide(inj, func(i *do.Injector) (relay.Prober, error) {
		return relay.NewClient(
			do.MustInvoke[*config.Config](i),
			do.MustInvoke[*zap.Logger](i),
		), nil
	})

	// Repo
	do.Provide(inj, func(i *do.Injector) (repo.ProjectRepo, error) {
		return repo.NewProjectRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.DevLogRepo, error) {
		return repo.NewDevLogRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.GoalRepo, error) {
		return repo.NewGoalRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.NoteRepo, error) {
		return repo.NewNoteRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.MonitorRepo, error) {
		return repo.NewMonitorRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.IdeaRepo, error) {
		return repo.NewIdeaRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.IncomeRepo, error) {
		return repo.NewIncomeRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.ScheduleRepo, error) {
		return repo.NewScheduleRepo(context.Background(), do.MustInvoke[kv.Store](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (repo.WinRepo, error) {
		return repo.NewWinRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})
	do.Provide(inj, func(i *do.Injector) (repo.ClientRepo, error) {
		return repo.NewClientRepo(context.Background(), do.MustInvoke[kv.Store](i))
	})

	// Service
	do.Provide(inj, func(i *do.Injector) (service.ProjectService, error) {
		return service.NewProjectService(do.MustInvoke[repo.ProjectRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.DevLogService, error) {
		return service.NewDevLogService(do.MustInvoke[repo.DevLogRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.GoalService, error) {
		return service.NewGoalService(do.MustInvoke[repo.GoalRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.NoteService, error) {
		return service.NewNoteService(do.MustInvoke[repo.NoteRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.MonitorService, error) {
		cfg := do.MustInvoke[*config.Config](i)
		return service.NewMonitorService(
			do.MustInvoke[repo.MonitorRepo](i),
			do.MustInvoke[relay.Prober](i),
			do.MustInvoke[*zap.Logger](i),
			cfg.Monitor.FeaturedName,
		), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.IdeaService, error) {
		return service.NewIdeaService(do.MustInvoke[repo.IdeaRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.IncomeService, error) {
		return service.NewIncomeService(do.MustInvoke[repo.IncomeRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.ScheduleService, error) {
		return service.NewScheduleService(do.MustInvoke[repo.ScheduleRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.WinService, error) {
		return service.NewWinService(do.MustInvoke[repo.WinRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.CRMService, error) {
		return service.NewCRMService(do.MustInvoke[repo.ClientRepo](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (service.OverviewService, error) {
		return service.NewOverviewService(
			do.MustInvoke[repo.ProjectRepo](i),
			do.MustInvoke[repo.DevLogRepo](i),
			do.MustInvoke[service.MonitorService](i),
		), nil
	})

	// Handler
	do.Provide(inj, func(i *do.Injector) (*handler.OverviewHandler, error) {
		return handler.NewOverviewHandler(do.MustInvoke[service.OverviewService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ProjectHandler, error) {
		return handler.NewProjectHandler(do.MustInvoke[service.ProjectService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.DevLogHandler, error) {
		return handler.NewDevLogHandler(do.MustInvoke[service.DevLogService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.GoalHandler, error) {
		return handler.NewGoalHandler(do.MustInvoke[service.GoalService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.NoteHandler, error) {
		return handler.NewNoteHandler(do.MustInvoke[service.NoteService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.MonitorHandler, error) {
		return handler.NewMonitorHandler(do.MustInvoke[service.MonitorService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.IdeaHandler, error) {
		return handler.NewIdeaHandler(do.MustInvoke[service.IdeaService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.IncomeHandler, error) {
		return handler.NewIncomeHandler(do.MustInvoke[service.IncomeService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.ScheduleHandler, error) {
		return handler.NewScheduleHandler(do.MustInvoke[service.ScheduleService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.WinHandler, error) {
		return handler.NewWinHandler(do.MustInvoke[service.WinService](i)), nil
	})
	do.Provide(inj, func(i *do.Injector) (*handler.CRMHandler, error) {
		return handler.NewCRMHandler(do.MustInvoke[service.CRMService](i)), nil
	})

	return inj
}
