// AutoScaler: periodically compares queue depth against fleet size and
// issues at most one grow/shrink step per tick.
package autoscaler

import (
	"context"
	"time"

	"autoscaler/internal/fleet"
	"autoscaler/internal/metrics"
	"autoscaler/internal/queue"
)

// Outcome classifies what a single tick did, for logging and metrics.
type Outcome string

const (
	OutcomeGrow        Outcome = "grow"
	OutcomeShrink      Outcome = "shrink"
	OutcomeNoop        Outcome = "noop"
	OutcomeProbeFailed Outcome = "probe-failed"
)

type AutoScaler struct {
	fleet   *fleet.Fleet
	probe   queue.DepthProbe
	metrics *metrics.Registry

	queueName           string
	checkInterval       time.Duration
	scaleUpMultiplier   float64
	scaleDownMultiplier float64
	minProcesses        int
	maxProcesses        int

	ctx  context.Context
	done chan struct{}
}

func New(ctx context.Context, f *fleet.Fleet, probe queue.DepthProbe, reg *metrics.Registry, queueName string, checkInterval time.Duration, scaleUpMultiplier, scaleDownMultiplier float64, minProcesses, maxProcesses int) (a *AutoScaler) {
	a = &AutoScaler{
		fleet:               f,
		probe:               probe,
		metrics:             reg,
		queueName:           queueName,
		checkInterval:       checkInterval,
		scaleUpMultiplier:   scaleUpMultiplier,
		scaleDownMultiplier: scaleDownMultiplier,
		minProcesses:        minProcesses,
		maxProcesses:        maxProcesses,
		ctx:                 ctx,
		done:                make(chan struct{}),
	}
	return
}

// Stop signals the loop to abort its current tick's remaining steps and
// not wake again. Safe to call multiple times.
func (a *AutoScaler) Stop() {
	select {
	case <-a.done:
	default:
		close(a.done)
	}
}

func (a *AutoScaler) stopping() (stopping bool) {
	select {
	case <-a.done:
		stopping = true
	default:
	}
	return
}
