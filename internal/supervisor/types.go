// Supervisor: top-level coordinator wiring Fleet, AutoScaler, the control
// surface, and OS signal/systemd lifecycle plumbing together.
package supervisor

import (
	"context"
	"sync"
	"time"

	"autoscaler/internal/autoscaler"
	"autoscaler/internal/config"
	"autoscaler/internal/controlapi"
	"autoscaler/internal/fleet"
	"autoscaler/internal/metrics"
	"autoscaler/internal/queue"
)

type State int

const (
	Initializing State = iota
	Running
	Draining
	Stopped
)

func (s State) String() (name string) {
	switch s {
	case Initializing:
		name = "Initializing"
	case Running:
		name = "Running"
	case Draining:
		name = "Draining"
	case Stopped:
		name = "Stopped"
	default:
		name = "Unknown"
	}
	return
}

type Supervisor struct {
	mu    sync.Mutex
	state State

	cfg     config.Config
	fleet   *fleet.Fleet
	scaler  *autoscaler.AutoScaler
	probe   queue.DepthProbe
	metrics *metrics.Registry
	control *controlapi.Server

	ctx        context.Context
	cancel     context.CancelFunc
	scalerDone chan struct{}
}

// New wires a Supervisor from a validated Config. probe may be supplied
// by the caller (tests pass a queue.FakeProbe); a nil probe causes New
// to build a queue.RedisProbe from cfg.
func New(ctx context.Context, cfg config.Config, probe queue.DepthProbe) (s *Supervisor) {
	runCtx, cancel := context.WithCancel(ctx)

	if probe == nil {
		probe = queue.NewRedisProbe(cfg.RedisHost, cfg.RedisPort, cfg.RedisDB, cfg.RedisPassword, 5*time.Second)
	}

	reg := metrics.New()
	if !cfg.MetricsHistoryEnabled {
		reg = nil
	}

	f := fleet.New(runCtx, cfg.WorkerCommand, cfg.MinProcesses, cfg.MaxProcesses, cfg.GracefulShutdownTimeout, cfg.ProcessStartupDelay)
	scaler := autoscaler.New(runCtx, f, probe, reg, cfg.QueueName, cfg.CheckInterval,
		cfg.ScaleUpMultiplier, cfg.ScaleDownMultiplier, cfg.MinProcesses, cfg.MaxProcesses)

	s = &Supervisor{
		state:      Initializing,
		cfg:        cfg,
		fleet:      f,
		scaler:     scaler,
		probe:      probe,
		metrics:    reg,
		ctx:        runCtx,
		cancel:     cancel,
		scalerDone: make(chan struct{}),
	}
	return
}

func (s *Supervisor) State() (state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	state = s.state
	return
}

func (s *Supervisor) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}
