package lifecycle

import (
	"context"
	"os"
	"os/signal"
	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
	"syscall"
)

type DaemonLike interface {
	Shutdown()
}

// Handles all incoming signals from external sources.
// Initiates daemon shutdown and returns once the signal has been dispatched.
// Also returns, without calling Shutdown, when ctx is cancelled.
func SignalHandler(ctx context.Context, daemonManager DaemonLike) {
	sigChan := make(chan os.Signal, 10)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGQUIT, syscall.SIGTERM)

	var sig os.Signal
	select {
	case sig = <-sigChan:
	case <-ctx.Done():
		return
	}
	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Received signal: %v\n", sig)

	err := NotifyStatus(ctx, "Draining: received "+sig.String())
	if err != nil {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.WarnLog, "Systemd notify status failed: %v\n", err)
	}

	daemonManager.Shutdown()

	logger := logctx.GetLogger(ctx)
	if logger != nil {
		logger.Wake()
	}
}
