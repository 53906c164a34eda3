package fleet

import (
	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
	"autoscaler/internal/worker"
)

// reap promotes Starting handles whose startup delay has elapsed, then
// removes Dead handles from the set. Must be called with mu held.
func (f *Fleet) reap() {
	live := f.handles[:0]
	for _, h := range f.handles {
		h.PromoteIfReady(f.processStartupDelay)

		info := h.PollExit()
		if info == nil {
			live = append(live, h)
			continue
		}

		if !h.StopRequested() {
			f.unexpectedDeaths++
			logctx.LogEvent(f.ctx, global.VerbosityStandard, global.WarnLog,
				"Worker pid %d died unexpectedly (code=%d signal=%v)\n", h.PID, info.Code, info.WasSignal)
		} else {
			logctx.LogEvent(f.ctx, global.VerbosityProgress, global.InfoLog,
				"Worker pid %d exited after stop request (code=%d)\n", h.PID, info.Code)
		}
		// Dead handle dropped, not appended to live
	}
	f.handles = live
}

// spawnOne launches one worker from the fleet's command. It neither takes
// mu nor adds the handle to the set; callers spawn outside the lock and
// then commit the returned handle under mu themselves (see Grow and
// reapAndEnforceMin).
func (f *Fleet) spawnOne() (h *worker.Handle, err error) {
	h, err = worker.Spawn(f.command)
	return
}

// EnforceMin is the public entry point for the AutoScaler's per-tick
// min-processes check (spec's "start of each automatic tick" hook).
func (f *Fleet) EnforceMin() {
	f.reapAndEnforceMin()
}

// reapAndEnforceMin is the "start of a public operation" hook: reap dead
// handles under the lock, compute the min-enforcement shortfall, release
// the lock to spawn (spawn may block on exec), then re-take the lock to
// commit each new handle.
func (f *Fleet) reapAndEnforceMin() {
	f.mu.Lock()
	f.reap()
	shortfall := f.minProcesses - len(f.handles)
	f.mu.Unlock()

	for i := 0; i < shortfall; i++ {
		h, err := f.spawnOne()
		if err != nil {
			logctx.LogEvent(f.ctx, global.VerbosityStandard, global.ErrorLog,
				"Min-enforcement spawn failed: %v\n", err)
			continue
		}
		f.mu.Lock()
		f.handles = append(f.handles, h)
		f.mu.Unlock()
		logctx.LogEvent(f.ctx, global.VerbosityStandard, global.InfoLog,
			"Min-enforcement spawned pid %d\n", h.PID)
	}
}
