package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"resale/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// AutopilotJob schedules periodic autopilot runs. Start registers the cron
// entry and fires one immediate run so a fresh deployment does not wait a
// full interval before sweeping the queue.
type AutopilotJob struct {
	handler         *commands.RunAutopilotCommandHandler
	intervalMinutes int
	syncOnStartup   bool
	syncEachRun     bool
	logger          *slog.Logger

	mu      sync.Mutex
	cron    *cron.Cron
	running bool
}

// NewAutopilotJob creates a job that runs the autopilot every
// intervalMinutes. syncOnStartup requests a remote pull on the immediate
// run Start fires; syncEachRun requests one on every cron sweep.
func NewAutopilotJob(
	handler *commands.RunAutopilotCommandHandler,
	intervalMinutes int,
	syncOnStartup bool,
	syncEachRun bool,
	logger *slog.Logger,
) *AutopilotJob {
	if intervalMinutes <= 0 {
		intervalMinutes = 3
	}

	return &AutopilotJob{
		handler:         handler,
		intervalMinutes: intervalMinutes,
		syncOnStartup:   syncOnStartup,
		syncEachRun:     syncEachRun,
		logger:          logger.With("component", "autopilot_job"),
	}
}

// Start begins periodic runs and fires one startup run in the background.
// Returns false when the job is already started.
func (j *AutopilotJob) Start() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if j.running {
		return false
	}

	c := cron.New()
	_, err := c.AddFunc(fmt.Sprintf("@every %dm", j.intervalMinutes), func() {
		j.runOnce("cron", j.syncEachRun)
	})
	if err != nil {
		j.logger.Error("Failed to schedule autopilot job", "error", err)
		return false
	}

	c.Start()
	j.cron = c
	j.running = true

	go j.runOnce("startup", j.syncOnStartup)

	j.logger.Info("Autopilot job started", "interval_minutes", j.intervalMinutes)
	return true
}

// Stop halts periodic runs. A sweep already in flight finishes on its own.
// Returns false when the job is not running.
func (j *AutopilotJob) Stop() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	if !j.running {
		return false
	}

	j.cron.Stop()
	j.cron = nil
	j.running = false

	j.logger.Info("Autopilot job stopped")
	return true
}

// Running reports whether periodic runs are scheduled.
func (j *AutopilotJob) Running() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}

// Status merges the scheduler state with the handler's last-run snapshot.
func (j *AutopilotJob) Status() commands.AutopilotStatus {
	status := j.handler.Status()
	status.Running = j.Running()
	return status
}

func (j *AutopilotJob) runOnce(trigger string, syncLocal bool) {
	ctx := context.Background()

	cmd, err := commands.NewRunAutopilotCommand(trigger, syncLocal)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to build autopilot command", "error", err)
		return
	}

	summary, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Autopilot run failed", "trigger", trigger, "error", err)
		return
	}

	// Overlap with a manual run is routine, not noteworthy.
	if summary.Reason == commands.ReasonAlreadyRunning {
		return
	}

	j.logger.InfoContext(ctx, "Autopilot run finished",
		"trigger", trigger,
		"success", summary.Success,
		"reason", summary.Reason,
		"scanned", summary.Scanned,
		"assigned", summary.Assigned,
		"moved_to_seller_check", summary.MovedToSellerCheck,
		"sla_alerts", summary.SLAAlerts,
		"blocked_out_of_policy", summary.BlockedOutOfPolicy,
		"errors", summary.Errors,
	)
}
