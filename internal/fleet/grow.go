package fleet

import (
	"autoscaler/internal/global"
	"autoscaler/internal/logctx"

	"github.com/pbnjay/memory"
)

// minFreeMemoryBytes is a soft floor: grow refuses to spawn further
// workers once free system memory drops below this, treating it the
// same as a spawn failure for the remainder of the call.
const minFreeMemoryBytes = 64 * 1024 * 1024

// Grow attempts to spawn k new workers, clamped so total+k <= max.
// actual_added may be less than k, including zero; that is a normal
// result, not an error. A spawn failure aborts further grows in this
// call but does not roll back workers already spawned.
func (f *Fleet) Grow(k int) (actualAdded int) {
	defer f.reapAndEnforceMin()

	if k <= 0 {
		return
	}

	f.mu.Lock()
	f.reap()
	room := f.maxProcesses - len(f.handles)
	f.mu.Unlock()

	if room <= 0 {
		return
	}
	if k > room {
		k = room
	}

	for i := 0; i < k; i++ {
		if avail := memory.FreeMemory(); avail > 0 && avail < minFreeMemoryBytes {
			logctx.LogEvent(f.ctx, global.VerbosityStandard, global.WarnLog,
				"Aborting grow: free memory %d below floor %d\n", avail, minFreeMemoryBytes)
			break
		}

		h, err := f.spawnOne()
		if err != nil {
			logctx.LogEvent(f.ctx, global.VerbosityStandard, global.ErrorLog,
				"Spawn failed during grow: %v\n", err)
			break
		}

		f.mu.Lock()
		f.handles = append(f.handles, h)
		f.mu.Unlock()

		logctx.LogEvent(f.ctx, global.VerbosityStandard, global.InfoLog,
			"Grew fleet: spawned pid %d\n", h.PID)
		actualAdded++
	}
	return
}
