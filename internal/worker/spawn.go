package worker

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

// SpawnError wraps an OS-level failure to launch a worker.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() (msg string) {
	msg = fmt.Sprintf("spawn failed: %v", e.Err)
	return
}

func (e *SpawnError) Unwrap() (err error) {
	err = e.Err
	return
}

// Spawn starts command as a new child process and returns a Handle in
// state Starting. The child is placed in its own process group so that
// stop_graceful/kill_forced can signal the whole group it may have
// spawned, not just the immediate child.
func Spawn(command []string) (handle *Handle, err error) {
	if len(command) == 0 {
		err = &SpawnError{Err: fmt.Errorf("empty worker command")}
		return
	}

	cmd := exec.Command(command[0], command[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	startErr := cmd.Start()
	if startErr != nil {
		err = &SpawnError{Err: startErr}
		return
	}

	handle = &Handle{
		PID:       cmd.Process.Pid,
		StartedAt: time.Now(),
		state:     Starting,
		cmd:       cmd,
		waitCh:    make(chan error, 1),
	}

	go func() {
		handle.waitCh <- handle.cmd.Wait()
	}()

	return
}
