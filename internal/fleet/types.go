// Fleet: the supervisor's set of live worker handles, under one lock
package fleet

import (
	"context"
	"sync"
	"time"

	"autoscaler/internal/worker"
)

// Snapshot is a point-in-time view of one worker, safe to hand out after
// the fleet lock is released.
type Snapshot struct {
	PID       int
	State     string
	StartedAt time.Time
}

type Fleet struct {
	mu sync.Mutex

	// oldest-first; shrink selects from the front
	handles []*worker.Handle

	command                 []string
	minProcesses            int
	maxProcesses            int
	gracefulShutdownTimeout time.Duration
	processStartupDelay     time.Duration

	unexpectedDeaths int

	ctx context.Context
}

func New(ctx context.Context, command []string, minProcesses, maxProcesses int, gracefulShutdownTimeout, processStartupDelay time.Duration) (f *Fleet) {
	f = &Fleet{
		command:                 command,
		minProcesses:            minProcesses,
		maxProcesses:            maxProcesses,
		gracefulShutdownTimeout: gracefulShutdownTimeout,
		processStartupDelay:     processStartupDelay,
		ctx:                     ctx,
	}
	return
}
