package worker

import "time"

// PromoteIfReady moves a Starting handle to Running once it has survived
// process_startup_delay. A no-op for any other state.
func (h *Handle) PromoteIfReady(delay time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == Starting && time.Since(h.StartedAt) >= delay {
		h.state = Running
	}
}
