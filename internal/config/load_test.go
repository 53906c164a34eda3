package config

import (
	"testing"
	"time"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"QUEUE_NAME", "WORKER_COMMAND", "MIN_PROCESSES", "MAX_PROCESSES",
		"CHECK_INTERVAL", "SCALE_UP_THRESHOLD_MULTIPLIER", "SCALE_DOWN_THRESHOLD_MULTIPLIER",
		"GRACEFUL_SHUTDOWN_TIMEOUT", "PROCESS_STARTUP_DELAY", "LOG_LEVEL", "LOG_FILE",
		"REDIS_HOST", "REDIS_PORT", "REDIS_DB", "REDIS_PASSWORD",
		"SUPERVISOR_CONTROL_SOCKET", "SUPERVISOR_CONTROL_PORT", "METRICS_HISTORY",
	} {
		t.Setenv(name, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKER_COMMAND", "python -m worker")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.MinProcesses != 1 || cfg.MaxProcesses != 10 {
		t.Fatalf("unexpected default bounds: min=%d max=%d", cfg.MinProcesses, cfg.MaxProcesses)
	}
	if len(cfg.WorkerCommand) != 3 {
		t.Fatalf("expected 3-token worker command, got %v", cfg.WorkerCommand)
	}
}

func TestLoad_MissingWorkerCommand(t *testing.T) {
	clearEnv(t)

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing WORKER_COMMAND")
	}
}

func TestLoad_InvalidInteger(t *testing.T) {
	clearEnv(t)
	t.Setenv("WORKER_COMMAND", "worker")
	t.Setenv("MIN_PROCESSES", "not-a-number")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for invalid MIN_PROCESSES")
	}
}

func TestValidate(t *testing.T) {
	base := Config{
		QueueName:               "q",
		WorkerCommand:           []string{"worker"},
		MinProcesses:            1,
		MaxProcesses:            5,
		CheckInterval:           time.Second,
		ScaleUpMultiplier:       5,
		ScaleDownMultiplier:     2.5,
		GracefulShutdownTimeout: time.Second,
		ProcessStartupDelay:     time.Second,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("expected valid config, got: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(c Config) Config
	}{
		{"min > max", func(c Config) Config { c.MinProcesses = 6; return c }},
		{"zero min", func(c Config) Config { c.MinProcesses = 0; return c }},
		{"non-positive interval", func(c Config) Config { c.CheckInterval = 0; return c }},
		{"down >= up", func(c Config) Config { c.ScaleDownMultiplier = 5; c.ScaleUpMultiplier = 5; return c }},
		{"empty queue name", func(c Config) Config { c.QueueName = ""; return c }},
		{"empty worker command", func(c Config) Config { c.WorkerCommand = nil; return c }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.mutate(base)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
