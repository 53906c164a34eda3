package worker

import (
	"testing"
	"time"
)

func TestSpawn_InvalidCommand(t *testing.T) {
	_, err := Spawn([]string{"/nonexistent/binary/for/testing"})
	if err == nil {
		t.Fatal("expected spawn error for nonexistent binary")
	}
}

func TestSpawn_EmptyCommand(t *testing.T) {
	_, err := Spawn(nil)
	if err == nil {
		t.Fatal("expected spawn error for empty command")
	}
}

func TestSpawnAndPollExit_NaturalExit(t *testing.T) {
	h, err := Spawn([]string{"/bin/sh", "-c", "exit 0"})
	if err != nil {
		t.Fatalf("unexpected spawn error: %v", err)
	}
	if h.State() != Starting {
		t.Fatalf("expected Starting, got %v", h.State())
	}

	deadline := time.Now().Add(2 * time.Second)
	var info *ExitInfo
	for time.Now().Before(deadline) {
		info = h.PollExit()
		if info != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if info == nil {
		t.Fatal("expected exit info after process exited")
	}
	if h.State() != Dead {
		t.Fatalf("expected Dead after exit, got %v", h.State())
	}
	if info.Code != 0 {
		t.Fatalf("expected exit code 0, got %d", info.Code)
	}
}

func TestWaitDead_BlocksUntilExit(t *testing.T) {
	h, err := Spawn([]string{"/bin/sh", "-c", "sleep 0.05; exit 3"})
	if err != nil {
		t.Fatalf("unexpected spawn error: %v", err)
	}

	info := h.WaitDead()
	if info == nil {
		t.Fatal("expected exit info after WaitDead returns")
	}
	if info.Code != 3 {
		t.Fatalf("expected exit code 3, got %d", info.Code)
	}
	if h.State() != Dead {
		t.Fatalf("expected Dead after WaitDead, got %v", h.State())
	}
	// Calling again on an already-Dead handle must not block.
	if h.WaitDead() == nil {
		t.Fatal("expected WaitDead to keep returning exit info once Dead")
	}
}

func TestStopGraceful_Idempotent(t *testing.T) {
	h, err := Spawn([]string{"/bin/sh", "-c", "sleep 5"})
	if err != nil {
		t.Fatalf("unexpected spawn error: %v", err)
	}

	h.StopGraceful()
	h.StopGraceful()
	h.StopGraceful()

	deadline := time.Now().Add(2 * time.Second)
	var info *ExitInfo
	for time.Now().Before(deadline) {
		info = h.PollExit()
		if info != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if info == nil {
		t.Fatal("expected process to exit after SIGTERM")
	}
	if !info.WasSignal {
		t.Fatalf("expected WasSignal true, got exit info %+v", info)
	}
}

func TestStopGracefulThenKillForced_DeadIsTerminal(t *testing.T) {
	h, err := Spawn([]string{"/bin/sh", "-c", "sleep 5"})
	if err != nil {
		t.Fatalf("unexpected spawn error: %v", err)
	}

	h.KillForced()

	deadline := time.Now().Add(2 * time.Second)
	var info *ExitInfo
	for time.Now().Before(deadline) {
		info = h.PollExit()
		if info != nil {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	if info == nil {
		t.Fatal("expected process to exit after SIGKILL")
	}

	// State must stay Dead no matter what is called afterward
	h.StopGraceful()
	h.KillForced()
	if h.State() != Dead {
		t.Fatalf("expected state to remain Dead, got %v", h.State())
	}
	if h.PollExit() == nil {
		t.Fatal("expected PollExit to keep returning exit info once Dead")
	}
}
