package jobs_test

import (
	"context"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"resale/internal/core/application/usecases/commands"
	"resale/internal/core/domain/model/kernel"
	"resale/internal/core/domain/model/manager"
	"resale/internal/core/domain/model/order"
	"resale/internal/core/ports"
	"resale/internal/jobs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubOrderRepository struct{}

func (stubOrderRepository) GetActiveAssignments(context.Context) ([]order.Assignment, error) {
	return []order.Assignment{}, nil
}

func (stubOrderRepository) GetAllActive(context.Context) ([]*order.Order, error) {
	return []*order.Order{}, nil
}

func (stubOrderRepository) UpdateStatus(context.Context, kernel.UUID, order.Status, *order.CancelReason) error {
	return nil
}

func (stubOrderRepository) AssignManager(context.Context, kernel.UUID, kernel.UUID, *order.Status) error {
	return nil
}

type stubManagerRepository struct {
	managers []*manager.Manager
}

func (s stubManagerRepository) GetAllActive(context.Context) ([]*manager.Manager, error) {
	return s.managers, nil
}

type countingSynchronizer struct {
	calls atomic.Int32
}

func (s *countingSynchronizer) SyncFromRemote(context.Context) (ports.SyncReport, error) {
	s.calls.Add(1)
	return ports.SyncReport{Fetched: 2}, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestHandler(t *testing.T, sync ports.LocalSynchronizer) *commands.RunAutopilotCommandHandler {
	t.Helper()

	m, err := manager.NewManager(kernel.NewUUID(), "Alice", "manager", true)
	require.NoError(t, err)

	return commands.NewRunAutopilotCommandHandler(
		stubOrderRepository{},
		stubManagerRepository{managers: []*manager.Manager{m}},
		nil, nil, sync, nil, nil, quietLogger(),
	)
}

func waitForStartupRun(t *testing.T, job *jobs.AutopilotJob) commands.RunSummary {
	t.Helper()

	require.Eventually(t, func() bool {
		last := job.Status().LastRun
		return last != nil && last.Trigger == "startup"
	}, 2*time.Second, 10*time.Millisecond)

	return *job.Status().LastRun
}

func TestAutopilotJob_StartStop(t *testing.T) {
	job := jobs.NewAutopilotJob(newTestHandler(t, nil), 3, false, false, quietLogger())

	require.True(t, job.Start())
	assert.True(t, job.Running())
	assert.False(t, job.Start(), "a second start is a no-op")

	require.True(t, job.Stop())
	assert.False(t, job.Running())
	assert.False(t, job.Stop(), "a second stop is a no-op")
}

func TestAutopilotJob_RestartsAfterStop(t *testing.T) {
	job := jobs.NewAutopilotJob(newTestHandler(t, nil), 3, false, false, quietLogger())

	require.True(t, job.Start())
	require.True(t, job.Stop())
	require.True(t, job.Start())
	defer job.Stop()

	assert.True(t, job.Running())
}

func TestAutopilotJob_StartFiresStartupRunWithSync(t *testing.T) {
	sync := new(countingSynchronizer)
	job := jobs.NewAutopilotJob(newTestHandler(t, sync), 3, true, false, quietLogger())

	require.True(t, job.Start())
	defer job.Stop()

	last := waitForStartupRun(t, job)

	assert.True(t, last.Success)
	require.NotNil(t, last.Sync)
	assert.Equal(t, 2, last.Sync.Fetched)
	assert.Equal(t, int32(1), sync.calls.Load())
}

func TestAutopilotJob_StartupRunWithoutSync(t *testing.T) {
	sync := new(countingSynchronizer)
	job := jobs.NewAutopilotJob(newTestHandler(t, sync), 3, false, false, quietLogger())

	require.True(t, job.Start())
	defer job.Stop()

	last := waitForStartupRun(t, job)

	assert.True(t, last.Success)
	assert.Nil(t, last.Sync)
	assert.Zero(t, sync.calls.Load())
}

func TestAutopilotJob_StatusMergesSchedulerState(t *testing.T) {
	job := jobs.NewAutopilotJob(newTestHandler(t, nil), 3, false, false, quietLogger())

	assert.False(t, job.Status().Running)

	require.True(t, job.Start())
	assert.True(t, job.Status().Running)

	waitForStartupRun(t, job)

	require.True(t, job.Stop())
	status := job.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastRun, "last run outlives the scheduler")
	assert.NotNil(t, status.LastRunAt)
}
