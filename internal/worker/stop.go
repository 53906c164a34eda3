package worker

import (
	"golang.org/x/sys/unix"
)

// StopGraceful delivers a polite termination request to the worker's
// process group. Idempotent: a second call while already Stopping, or a
// call on a Dead handle, is a no-op.
func (h *Handle) StopGraceful() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == Dead || h.stopSent {
		return
	}

	if h.state == Starting || h.state == Running {
		h.state = Stopping
	}
	h.stopSent = true

	_ = unix.Kill(-h.PID, unix.SIGTERM)
}

// KillForced delivers an unignorable termination signal. Idempotent.
func (h *Handle) KillForced() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == Dead || h.killSent {
		return
	}
	h.killSent = true

	_ = unix.Kill(-h.PID, unix.SIGKILL)
}
