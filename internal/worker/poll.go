package worker

import "os/exec"

// PollExit is non-blocking. If the child has exited since the last poll,
// it records the exit info, transitions the handle to Dead, and returns
// it. Once Dead, the handle never changes state again, and every later
// call returns the same exit info.
func (h *Handle) PollExit() (info *ExitInfo) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.state == Dead {
		info = h.exitInfo
		return
	}

	select {
	case waitErr := <-h.waitCh:
		h.state = Dead
		h.exitInfo = exitInfoFromWaitErr(waitErr, h.cmd)
		info = h.exitInfo
	default:
		// still running
	}
	return
}

// WaitDead blocks until the child has exited, then records its exit info
// and transitions the handle to Dead, same as PollExit but without
// spinning. Callers must not race it against PollExit on the same
// handle -- a handle is owned exclusively by the Fleet, and the Fleet
// never calls both concurrently for one handle.
func (h *Handle) WaitDead() (info *ExitInfo) {
	h.mu.Lock()
	if h.state == Dead {
		info = h.exitInfo
		h.mu.Unlock()
		return
	}
	h.mu.Unlock()

	waitErr := <-h.waitCh

	h.mu.Lock()
	defer h.mu.Unlock()
	h.state = Dead
	h.exitInfo = exitInfoFromWaitErr(waitErr, h.cmd)
	info = h.exitInfo
	return
}

func exitInfoFromWaitErr(waitErr error, cmd *exec.Cmd) (info *ExitInfo) {
	info = &ExitInfo{}

	if waitErr == nil {
		info.Code = 0
		return
	}

	exitErr, ok := waitErr.(*exec.ExitError)
	if !ok {
		// Process could not be waited on (e.g. already reaped elsewhere)
		info.Code = -1
		return
	}

	if ws, ok := exitErr.Sys().(interface{ Signaled() bool }); ok && ws.Signaled() {
		info.WasSignal = true
	}
	info.Code = exitErr.ExitCode()
	return
}
