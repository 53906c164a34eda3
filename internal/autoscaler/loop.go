package autoscaler

import (
	"time"

	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
)

// Run blocks, ticking every checkInterval until Stop is called or ctx is
// cancelled. Intended to be started in its own goroutine by the caller.
func (a *AutoScaler) Run() {
	ticker := time.NewTicker(a.checkInterval)
	defer ticker.Stop()

	logctx.LogEvent(a.ctx, global.VerbosityStandard, global.InfoLog,
		"AutoScaler loop started, check_interval=%v\n", a.checkInterval)

	for {
		select {
		case <-a.done:
			logctx.LogEvent(a.ctx, global.VerbosityStandard, global.InfoLog, "AutoScaler loop stopping\n")
			return
		case <-a.ctx.Done():
			return
		case <-ticker.C:
			a.Tick()
		}
	}
}
