package fleet

import (
	"sort"

	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
	"autoscaler/internal/worker"
)

// Shrink selects up to k oldest Running workers (ties broken by lower
// pid), transitions them to Stopping, and requests a graceful stop.
// Starting workers are never selected. Clamped so total-k >= min.
// Actual removal happens asynchronously via reaping; Shrink returns as
// soon as the stop has been requested.
func (f *Fleet) Shrink(k int) (actualRemoved int) {
	defer f.reapAndEnforceMin()

	if k <= 0 {
		return
	}

	f.mu.Lock()
	f.reap()

	var eligible []*worker.Handle
	for _, h := range f.handles {
		if h.State() == worker.Running {
			eligible = append(eligible, h)
		}
	}

	room := len(f.handles) - f.minProcesses
	f.mu.Unlock()

	if room <= 0 {
		return
	}
	if k > room {
		k = room
	}
	if k > len(eligible) {
		k = len(eligible)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		if !eligible[i].StartedAt.Equal(eligible[j].StartedAt) {
			return eligible[i].StartedAt.Before(eligible[j].StartedAt)
		}
		return eligible[i].PID < eligible[j].PID
	})

	for i := 0; i < k; i++ {
		eligible[i].StopGraceful()
		logctx.LogEvent(f.ctx, global.VerbosityStandard, global.InfoLog,
			"Shrinking fleet: requested graceful stop for pid %d\n", eligible[i].PID)
		actualRemoved++
	}
	return
}
