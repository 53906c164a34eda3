package controlapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"

	"autoscaler/internal/global"
	"autoscaler/internal/logctx"
)

// Server is the loopback control surface: one *http.Server bound to
// either a TCP loopback port or a Unix-domain socket.
type Server struct {
	http     *http.Server
	listener net.Listener
	sockPath string
}

// SetupTCP builds a control server bound to 127.0.0.1:port.
func SetupTCP(ctx context.Context, port int, status StatusProvider, ctrl FleetController, stopper Stopper) (srv *Server, err error) {
	addr := fmt.Sprintf("%s:%d", global.HTTPListenAddr, port)
	return setup(ctx, "tcp", addr, status, ctrl, stopper)
}

// SetupUnixSocket builds a control server bound to a Unix-domain socket
// at path. An existing file at path is not removed here, and makes the
// listen fail.
func SetupUnixSocket(ctx context.Context, path string, status StatusProvider, ctrl FleetController, stopper Stopper) (srv *Server, err error) {
	return setup(ctx, "unix", path, status, ctrl, stopper)
}

func setup(ctx context.Context, network, addr string, status StatusProvider, ctrl FleetController, stopper Stopper) (srv *Server, err error) {
	listener, listenErr := net.Listen(network, addr)
	if listenErr != nil {
		err = fmt.Errorf("control API failed to listen on %s %s: %v", network, addr, listenErr)
		return
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/status", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handleStatus(ctx, status, w, r)
	})
	mux.HandleFunc("/scale-up", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handleScaleUp(ctx, ctrl, w, r)
	})
	mux.HandleFunc("/scale-down", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handleScaleDown(ctx, ctrl, w, r)
	})
	mux.HandleFunc("/stop", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		handleStop(ctx, stopper, w, r)
	})

	httpServer := &http.Server{
		Handler:      mux,
		ReadTimeout:  global.HTTPReadTimeout,
		WriteTimeout: global.HTTPWriteTimeout,
		IdleTimeout:  global.HTTPIdleTimeout,
		ErrorLog:     log.New(httpLogWriter{ctx: ctx}, "", 0),
	}

	srv = &Server{http: httpServer, listener: listener}
	if network == "unix" {
		srv.sockPath = addr
	}
	return
}

// Serve blocks, accepting control API connections until Close is called.
func (srv *Server) Serve(ctx context.Context) {
	logctx.LogEvent(ctx, global.VerbosityStandard, global.InfoLog,
		"Control API listening on %s\n", srv.listener.Addr())
	err := srv.http.Serve(srv.listener)
	if err != nil && err != http.ErrServerClosed {
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog,
			"Control API server failed: %v\n", err)
	}
}

// Close shuts the server down and releases its listener.
func (srv *Server) Close() (err error) {
	err = srv.http.Close()
	return
}

func jResp(ctx context.Context, w http.ResponseWriter, status int, content any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(content); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		logctx.LogEvent(ctx, global.VerbosityStandard, global.ErrorLog, "Failed marshaling control API response: %v\n", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(buf.Bytes())
}

func (logWriter httpLogWriter) Write(p []byte) (n int, err error) {
	n = len(p)
	if n == 0 {
		return
	}
	logctx.LogEvent(logWriter.ctx, global.VerbosityStandard, global.ErrorLog, "%s\n", strings.TrimSpace(string(p)))
	return
}
