package fleet

import (
	"sync/atomic"
	"time"

	"autoscaler/internal/atomics"
	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
	"autoscaler/internal/worker"
)

// StopAll requests graceful stop for every live handle, waits up to
// gracefulShutdownTimeout, force-kills survivors, and blocks until every
// handle is Dead.
//
// Liveness is tracked with a single atomic counter rather than re-polling
// each handle: one watcher goroutine per handle blocks on its exit and
// subtracts itself from the counter the moment it dies, so WaitUntilZero
// only ever has to read an int, never walk the handle list.
func (f *Fleet) StopAll() {
	f.mu.Lock()
	f.reap()
	handles := append([]*worker.Handle(nil), f.handles...)
	f.mu.Unlock()

	if len(handles) == 0 {
		return
	}

	for _, h := range handles {
		h.StopGraceful()
	}

	var alive atomic.Uint64
	alive.Store(uint64(len(handles)))

	for _, h := range handles {
		go func(h *worker.Handle) {
			h.WaitDead()
			atomics.Subtract(&alive, 1, 10)
		}(h)
	}

	reachedZero, lastAlive := atomics.WaitUntilZero(&alive, f.gracefulShutdownTimeout)

	if !reachedZero {
		logctx.LogEvent(f.ctx, global.VerbosityStandard, global.WarnLog,
			"Graceful shutdown timeout elapsed with %d workers still alive, force-killing\n", lastAlive)

		for _, h := range handles {
			if h.State() != worker.Dead {
				h.KillForced()
			}
		}

		// Force-killed processes are not ignorable; wait out a generous
		// bound for the same watcher goroutines to observe their exit.
		atomics.WaitUntilZero(&alive, 30*time.Second)
	}

	f.mu.Lock()
	f.reap()
	f.mu.Unlock()
}
