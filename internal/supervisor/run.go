package supervisor

import (
	"fmt"
	"os"
	"time"

	"autoscaler/internal/controlapi"
	"autoscaler/internal/global"
	"autoscaler/internal/lifecycle"
	"autoscaler/internal/logctx"
)

// Start brings the fleet up to initialCount (clamped to [min,max]; 0
// means "use min_processes"), starts the AutoScaler loop and the control
// API listener, notifies systemd READY=1, then installs the signal
// handler and blocks until a shutdown is requested.
func (s *Supervisor) Start(initialCount int) (err error) {
	s.setState(Running)

	s.fleet.EnforceMin()
	if initialCount > s.cfg.MaxProcesses {
		initialCount = s.cfg.MaxProcesses
	}
	if initialCount > s.cfg.MinProcesses {
		s.fleet.Grow(initialCount - s.cfg.MinProcesses)
	}
	go func() {
		s.scaler.Run()
		close(s.scalerDone)
	}()

	s.control, err = s.listenControl()
	if err != nil {
		return
	}
	go s.control.Serve(s.ctx)

	notifyErr := lifecycle.NotifyReady(s.ctx)
	if notifyErr != nil {
		logctx.LogEvent(s.ctx, global.VerbosityStandard, global.WarnLog, "Systemd ready notify failed: %v\n", notifyErr)
	}

	lifecycle.SignalHandler(s.ctx, s)
	return
}

func (s *Supervisor) listenControl() (srv *controlapi.Server, err error) {
	if s.cfg.ControlSocket != "" {
		os.Remove(s.cfg.ControlSocket)
		srv, err = controlapi.SetupUnixSocket(s.ctx, s.cfg.ControlSocket, s, s.fleet, s)
		return
	}
	srv, err = controlapi.SetupTCP(s.ctx, s.cfg.ControlPort, s, s.fleet, s)
	return
}

// Shutdown implements lifecycle.DaemonLike. It stops accepting new
// control-surface mutations, waits for the AutoScaler loop to quit, then
// drains the fleet before transitioning to Stopped.
func (s *Supervisor) Shutdown() {
	s.setState(Draining)

	if s.control != nil {
		s.control.Close()
	}

	s.scaler.Stop()
	<-s.scalerDone

	s.fleet.StopAll()

	s.cancel()
	s.setState(Stopped)
}

// StatusSnapshot implements controlapi.StatusProvider.
func (s *Supervisor) StatusSnapshot() (resp controlapi.StatusResponse, err error) {
	resp.Hostname = global.Hostname
	resp.PID = global.PID

	depth, probeErr := s.probe.Depth(s.ctx, s.cfg.QueueName)
	if probeErr != nil {
		err = fmt.Errorf("queue depth probe failed: %v", probeErr)
	}
	resp.Depth = depth

	starting, running, total := s.fleet.Size()
	resp.Fleet.Starting = starting
	resp.Fleet.Running = running
	resp.Fleet.Total = total

	resp.Bounds.Min = s.cfg.MinProcesses
	resp.Bounds.Max = s.cfg.MaxProcesses

	resp.Thresholds.ScaleUpMultiplier = s.cfg.ScaleUpMultiplier
	resp.Thresholds.ScaleDownMultiplier = s.cfg.ScaleDownMultiplier
	resp.Thresholds.ScaleUpDepth = float64(total) * s.cfg.ScaleUpMultiplier
	resp.Thresholds.ScaleDownDepth = float64(total) * s.cfg.ScaleDownMultiplier

	for _, w := range s.fleet.Snapshot() {
		resp.Workers = append(resp.Workers, controlapi.WorkerView{
			PID:       w.PID,
			State:     w.State,
			StartedAt: w.StartedAt.Format("2006-01-02T15:04:05.999999999Z07:00"),
		})
	}

	if s.metrics != nil {
		now := time.Now()
		samples := s.metrics.Search("", []string{global.NSAutoscaler}, now.Add(-global.DefaultMetricsStatusWindow), now)
		for _, m := range samples {
			resp.History = append(resp.History, m.Convert())
		}
	}
	return
}
