// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation followed by orchestration.
package commands

import (
	"errors"

	"resale/internal/pkg/errs"
	"resale/internal/pkg/guard"
)

var ErrRunAutopilotCommandIsNotConstructed = errors.New(
	"RunAutopilotCommand must be created via NewRunAutopilotCommand constructor",
)

// RunAutopilotCommand triggers a single sweep of the fulfillment autopilot:
// sync, compliance gating, manager assignment and SLA escalation over every
// active order.
//
// Example:
//
//	cmd, err := NewRunAutopilotCommand("manual", false)
//	if err != nil {
//	    return err
//	}
//	summary, err := handler.Handle(ctx, cmd)
type RunAutopilotCommand struct {
	trigger   string
	syncLocal bool

	guard guard.ConstructorGuard
}

// NewRunAutopilotCommand creates a command for one autopilot run.
// trigger names what started the run ("cron", "manual", "startup") and is
// carried into the run summary; syncLocal requests a remote pull before
// the sweep.
func NewRunAutopilotCommand(trigger string, syncLocal bool) (RunAutopilotCommand, error) {
	if trigger == "" {
		return RunAutopilotCommand{}, errs.NewValueIsRequiredError("trigger")
	}

	return RunAutopilotCommand{
		trigger:   trigger,
		syncLocal: syncLocal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Trigger returns what started the run.
func (c *RunAutopilotCommand) Trigger() string {
	return c.trigger
}

// SyncLocal reports whether a remote sync was requested before the sweep.
func (c *RunAutopilotCommand) SyncLocal() bool {
	return c.syncLocal
}

// Validate ensures the command was created through the constructor.
// Returns ErrRunAutopilotCommandIsNotConstructed if validation fails.
func (c *RunAutopilotCommand) Validate() error {
	return c.guard.Validate(
		ErrRunAutopilotCommandIsNotConstructed,
	)
}
