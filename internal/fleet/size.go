package fleet

import "autoscaler/internal/worker"

// Size reaps dead handles and restores the min-processes floor (see
// reapAndEnforceMin), then reports starting, running, total.
func (f *Fleet) Size() (starting, running, total int) {
	f.reapAndEnforceMin()

	f.mu.Lock()
	defer f.mu.Unlock()

	for _, h := range f.handles {
		switch h.State() {
		case worker.Starting:
			starting++
		case worker.Running:
			running++
		}
	}
	total = len(f.handles)
	return
}

// UnexpectedDeaths returns the running count of handles that died
// without a preceding stop request.
func (f *Fleet) UnexpectedDeaths() (n int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	n = f.unexpectedDeaths
	return
}
