package autoscaler

import (
	"strconv"
	"time"

	"autoscaler/internal/global"
	"autoscaler/internal/lifecycle"
	"autoscaler/internal/logctx"
	"autoscaler/internal/metrics"
)

// Tick runs one iteration of the scaling loop: enforce min-processes,
// probe depth, read fleet size, compute the decision, issue at most one
// mutation, log and record the outcome, and send it as the systemd
// status. Returns the outcome (Run ignores it; tests check it).
func (a *AutoScaler) Tick() (outcome Outcome) {
	if a.stopping() {
		return
	}

	a.fleet.EnforceMin()
	if a.stopping() {
		return
	}

	depth, err := a.probe.Depth(a.ctx, a.queueName)
	if err != nil {
		outcome = OutcomeProbeFailed
		logctx.LogEvent(a.ctx, global.VerbosityStandard, global.WarnLog,
			"Queue depth probe failed, skipping tick: %v\n", err)
		a.record(outcome, depth, 0)
		return
	}

	if a.stopping() {
		return
	}

	_, _, n := a.fleet.Size()

	outcome = decide(depth, n, a.scaleUpMultiplier, a.scaleDownMultiplier, a.minProcesses, a.maxProcesses)
	switch outcome {
	case OutcomeGrow:
		added := a.fleet.Grow(1)
		logctx.LogEvent(a.ctx, global.VerbosityStandard, global.InfoLog,
			"Scaling decision: grow (depth=%d n=%d actual_added=%d)\n", depth, n, added)
	case OutcomeShrink:
		removed := a.fleet.Shrink(1)
		logctx.LogEvent(a.ctx, global.VerbosityStandard, global.InfoLog,
			"Scaling decision: shrink (depth=%d n=%d actual_removed=%d)\n", depth, n, removed)
	default:
		logctx.LogEvent(a.ctx, global.VerbosityProgress, global.InfoLog,
			"Scaling decision: noop (depth=%d n=%d)\n", depth, n)
	}

	a.record(outcome, depth, n)
	lifecycle.NotifyStatus(a.ctx, string(outcome)+" depth="+strconv.FormatInt(depth, 10)+" n="+strconv.Itoa(n))
	return
}

// decide implements the single-step hysteresis policy: grow if depth
// exceeds n*scaleUp and there is room to grow; else shrink if depth is
// below n*scaleDown and there is room to shrink; else noop.
func decide(depth int64, n int, scaleUpMultiplier, scaleDownMultiplier float64, minProcesses, maxProcesses int) (outcome Outcome) {
	if float64(depth) > float64(n)*scaleUpMultiplier && n < maxProcesses {
		outcome = OutcomeGrow
		return
	}
	if float64(depth) < float64(n)*scaleDownMultiplier && n > minProcesses {
		outcome = OutcomeShrink
		return
	}
	outcome = OutcomeNoop
	return
}

func (a *AutoScaler) record(outcome Outcome, depth int64, n int) {
	if a.metrics == nil {
		return
	}
	now := time.Now()
	slice := a.metrics.NewTimeSlice(now, time.Minute)
	a.metrics.Add(slice, []metrics.Metric{
		{
			Name:      "queue_depth",
			Namespace: []string{global.NSAutoscaler, global.NSProbe},
			Value:     metrics.MetricValue{Raw: depth, Unit: "count"},
			Type:      metrics.Gauge,
			Timestamp: now,
		},
		{
			Name:      "fleet_total",
			Namespace: []string{global.NSAutoscaler, global.NSFleet},
			Value:     metrics.MetricValue{Raw: n, Unit: "count"},
			Type:      metrics.Gauge,
			Timestamp: now,
		},
		{
			Name:      "decision_outcome",
			Namespace: []string{global.NSAutoscaler},
			Value:     metrics.MetricValue{Raw: string(outcome), Unit: "outcome"},
			Type:      metrics.Gauge,
			Timestamp: now,
		},
	})
	a.metrics.Prune(now, global.DefaultMetricsRetention)
}
