package supervisor

import (
	"context"
	"testing"
	"time"

	"autoscaler/internal/config"
	"autoscaler/internal/queue"
)

func testConfig(t *testing.T, controlPort int) (cfg config.Config) {
	t.Helper()
	cfg = config.Config{
		QueueName:               "default",
		WorkerCommand:           []string{"/bin/sh", "-c", "sleep 5"},
		MinProcesses:            1,
		MaxProcesses:            5,
		CheckInterval:           time.Hour,
		ScaleUpMultiplier:       5.0,
		ScaleDownMultiplier:     2.5,
		GracefulShutdownTimeout: 2 * time.Second,
		ProcessStartupDelay:     0,
		ControlPort:             controlPort,
		MetricsHistoryEnabled:   true,
	}
	return
}

func TestNew_InitialStateInitializing(t *testing.T) {
	cfg := testConfig(t, 18765)
	s := New(context.Background(), cfg, queue.NewFakeProbe([]int64{0}))
	if s.State() != Initializing {
		t.Fatalf("expected Initializing, got %v", s.State())
	}
}

func TestShutdown_DrainsFleetAndTransitionsToStopped(t *testing.T) {
	cfg := testConfig(t, 18766)
	s := New(context.Background(), cfg, queue.NewFakeProbe([]int64{0}))

	s.fleet.EnforceMin()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if _, _, total := s.fleet.Size(); total == 1 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}

	s.setState(Running)
	s.Shutdown()

	if s.State() != Stopped {
		t.Fatalf("expected Stopped after Shutdown, got %v", s.State())
	}
	if snap := s.fleet.Snapshot(); len(snap) != 0 {
		t.Fatalf("expected fleet drained after Shutdown, got %d live handles", len(snap))
	}
}

func TestStatusSnapshot_ReportsFleetAndThresholds(t *testing.T) {
	cfg := testConfig(t, 18767)
	s := New(context.Background(), cfg, queue.NewFakeProbe([]int64{42}))

	s.fleet.EnforceMin()
	t.Cleanup(s.fleet.StopAll)

	resp, err := s.StatusSnapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Depth != 42 {
		t.Fatalf("expected depth 42, got %d", resp.Depth)
	}
	if resp.Bounds.Min != 1 || resp.Bounds.Max != 5 {
		t.Fatalf("unexpected bounds: %+v", resp.Bounds)
	}
	if resp.Thresholds.ScaleUpMultiplier != 5.0 {
		t.Fatalf("unexpected scale-up multiplier: %v", resp.Thresholds.ScaleUpMultiplier)
	}
	_, _, total := s.fleet.Size()
	if resp.Thresholds.ScaleUpDepth != float64(total)*5.0 {
		t.Fatalf("expected computed scale-up depth %v, got %v", float64(total)*5.0, resp.Thresholds.ScaleUpDepth)
	}
	if resp.Thresholds.ScaleDownDepth != float64(total)*2.5 {
		t.Fatalf("expected computed scale-down depth %v, got %v", float64(total)*2.5, resp.Thresholds.ScaleDownDepth)
	}
}

func TestStatusSnapshot_ReportsHistoryFromAutoScalerTicks(t *testing.T) {
	cfg := testConfig(t, 18768)
	s := New(context.Background(), cfg, queue.NewFakeProbe([]int64{42}))

	s.fleet.EnforceMin()
	t.Cleanup(s.fleet.StopAll)

	s.scaler.Tick()

	resp, err := s.StatusSnapshot()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.History) == 0 {
		t.Fatal("expected status history to include samples recorded by the AutoScaler's tick")
	}
}
