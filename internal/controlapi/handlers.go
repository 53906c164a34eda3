package controlapi

import (
	"context"
	"net/http"
	"strconv"

	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
)

func handleStatus(ctx context.Context, status StatusProvider, w http.ResponseWriter, r *http.Request) {
	resp, err := status.StatusSnapshot()
	if err != nil {
		jResp(ctx, w, http.StatusServiceUnavailable, Jerror{Msg: err.Error()})
		return
	}
	jResp(ctx, w, http.StatusOK, resp)
}

func handleScaleUp(ctx context.Context, ctrl FleetController, w http.ResponseWriter, r *http.Request) {
	k, err := parseCount(r)
	if err != nil {
		jResp(ctx, w, http.StatusBadRequest, Jerror{Msg: err.Error()})
		return
	}
	added := ctrl.Grow(k)
	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Control API requested scale-up %d, actual_added=%d\n", k, added)
	jResp(ctx, w, http.StatusOK, ScaleResponse{ActualAdded: added})
}

func handleScaleDown(ctx context.Context, ctrl FleetController, w http.ResponseWriter, r *http.Request) {
	k, err := parseCount(r)
	if err != nil {
		jResp(ctx, w, http.StatusBadRequest, Jerror{Msg: err.Error()})
		return
	}
	removed := ctrl.Shrink(k)
	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog, "Control API requested scale-down %d, actual_removed=%d\n", k, removed)
	jResp(ctx, w, http.StatusOK, ScaleResponse{ActualRemoved: removed})
}

func handleStop(ctx context.Context, stopper Stopper, w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusAccepted)
	go stopper.Shutdown()
}

func parseCount(r *http.Request) (k int, err error) {
	raw := r.URL.Query().Get("k")
	if raw == "" {
		raw = r.URL.Query().Get("count")
	}
	k, err = strconv.Atoi(raw)
	if err != nil {
		err = &countError{raw: raw}
		return
	}
	if k < 1 {
		err = &countError{raw: raw}
		return
	}
	return
}

type countError struct {
	raw string
}

func (e *countError) Error() (msg string) {
	msg = "k must be a positive integer, got '" + e.raw + "'"
	return
}
