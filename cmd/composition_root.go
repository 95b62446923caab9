package cmd

import (
	"log/slog"
	"time"

	"resale/internal/adapters/out/postgres/auditrepo"
	"resale/internal/adapters/out/postgres/managerrepo"
	"resale/internal/adapters/out/postgres/orderrepo"
	"resale/internal/adapters/out/postgres/signalrepo"
	"resale/internal/core/application/usecases/commands"
	"resale/internal/core/application/usecases/queries"
	"resale/internal/core/domain/services"
	"resale/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB *gorm.DB
	logger *slog.Logger

	runAutopilotHandler *commands.RunAutopilotCommandHandler
	autopilotJob        *jobs.AutopilotJob
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	policy, err := services.NewCompliancePolicy(config.PriceUpperBoundEUR, config.PriceLowerBoundEUR)
	if err != nil {
		return nil, err
	}

	cooldown := time.Duration(config.EscalationCooldownMinutes) * time.Minute
	tracker := services.NewEscalationTracker(nil, cooldown)

	runHandler := commands.NewRunAutopilotCommandHandler(
		orderrepo.NewGormOrderRepository(gormDB),
		managerrepo.NewGormManagerRepository(gormDB),
		auditrepo.NewGormAuditLog(gormDB),
		signalrepo.NewGormSignalRecorder(gormDB),
		nil, // no remote synchronizer wired in this deployment
		&policy,
		tracker,
		logger,
	)

	job := jobs.NewAutopilotJob(
		runHandler,
		config.AutopilotIntervalMinutes,
		config.SyncLocalOnStartup,
		config.SyncLocalEachRun,
		logger,
	)

	return &CompositionRoot{
		gormDB:              gormDB,
		logger:              logger,
		runAutopilotHandler: runHandler,
		autopilotJob:        job,
	}, nil
}

func (c *CompositionRoot) RunAutopilotCommandHandler() *commands.RunAutopilotCommandHandler {
	return c.runAutopilotHandler
}

func (c *CompositionRoot) AutopilotJob() *jobs.AutopilotJob {
	return c.autopilotJob
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}
