package jobs

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAutopilotJob_IntervalFallback(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	job := NewAutopilotJob(nil, 0, false, false, logger)
	assert.Equal(t, 3, job.intervalMinutes)

	job = NewAutopilotJob(nil, -1, false, false, logger)
	assert.Equal(t, 3, job.intervalMinutes)

	job = NewAutopilotJob(nil, 10, false, false, logger)
	assert.Equal(t, 10, job.intervalMinutes)
}
