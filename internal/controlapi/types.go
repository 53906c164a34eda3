// HTTP control surface the running supervisor exposes on loopback, used
// by the status/scale-up/scale-down/stop CLI commands to reach it.
package controlapi

import (
	"context"

	"autoscaler/internal/metrics"
)

type httpLogWriter struct {
	ctx context.Context
}

// Jerror is the JSON body returned for any non-2xx response.
type Jerror struct {
	Msg string `json:"error"`
}

// WorkerView is one worker's reported state in a status response.
type WorkerView struct {
	PID       int    `json:"pid"`
	State     string `json:"state"`
	StartedAt string `json:"started_at"`
}

// StatusResponse is the body of GET /status.
type StatusResponse struct {
	Hostname string `json:"hostname"`
	PID      int    `json:"pid"`
	Depth    int64  `json:"depth"`
	Fleet struct {
		Starting int `json:"starting"`
		Running  int `json:"running"`
		Total    int `json:"total"`
	} `json:"fleet"`
	Bounds struct {
		Min int `json:"min_processes"`
		Max int `json:"max_processes"`
	} `json:"bounds"`
	Thresholds struct {
		ScaleUpMultiplier   float64 `json:"scale_up_multiplier"`
		ScaleDownMultiplier float64 `json:"scale_down_multiplier"`
		// ScaleUpDepth/ScaleDownDepth are the current n*multiplier depth
		// thresholds the AutoScaler is evaluating against this tick.
		ScaleUpDepth   float64 `json:"scale_up_depth"`
		ScaleDownDepth float64 `json:"scale_down_depth"`
	} `json:"thresholds"`
	Workers []WorkerView `json:"workers"`
	// History is a recent window of queue-depth/fleet/decision samples,
	// from the AutoScaler's metrics registry; empty if METRICS_HISTORY
	// is disabled.
	History []metrics.JMetric `json:"history,omitempty"`
}

// ScaleResponse is the body of POST /scale-up and POST /scale-down.
type ScaleResponse struct {
	ActualAdded   int `json:"actual_added"`
	ActualRemoved int `json:"actual_removed"`
}

// StatusProvider is the capability GET /status depends on; satisfied by
// the Supervisor.
type StatusProvider interface {
	StatusSnapshot() (resp StatusResponse, err error)
}

// FleetController is the capability the scaling endpoints depend on.
type FleetController interface {
	Grow(k int) (actualAdded int)
	Shrink(k int) (actualRemoved int)
}

// Stopper is the capability POST /stop depends on.
type Stopper interface {
	Shutdown()
}
