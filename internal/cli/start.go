package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"

	"autoscaler/internal/config"
	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
	"autoscaler/internal/supervisor"
)

// RunStart loads Config, builds the Supervisor, and blocks until a
// shutdown signal is handled. initialCount is the optional starting
// fleet size; 0 means "use min_processes".
func RunStart(initialCount int) (exitCode int) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		exitCode = 1
		return
	}

	global.LogicalCPUCount = runtime.NumCPU()
	global.PID = os.Getpid()
	global.Hostname, err = os.Hostname()
	if err != nil {
		global.Hostname = "unknown"
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logCtx := logctx.New(ctx, "supervisor", cfg.LogLevel, ctx.Done())
	logger := logctx.GetLogger(logCtx)

	output := io.Writer(os.Stdout)
	if cfg.LogFile != "" {
		logFile, fileErr := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if fileErr != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file %s: %v\n", cfg.LogFile, fileErr)
			exitCode = 1
			return
		}
		defer logFile.Close()
		output = io.MultiWriter(os.Stdout, logFile)
	}
	logctx.StartWatcher(logger, output)

	logctx.LogEvent(logCtx, global.VerbosityStandard, global.InfoLog,
		"Starting supervisor on %s (pid %d, %d logical CPUs): queue=%s min=%d max=%d\n",
		global.Hostname, global.PID, global.LogicalCPUCount, cfg.QueueName, cfg.MinProcesses, cfg.MaxProcesses)

	s := supervisor.New(logCtx, cfg, nil)
	startErr := s.Start(initialCount)
	if startErr != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", startErr)
		exitCode = 1
	}

	cancel()
	logger.Wake()
	logger.Wait()
	return
}
