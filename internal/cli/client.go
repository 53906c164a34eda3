package cli

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"autoscaler/internal/config"
)

// controlClient dials the running supervisor's control API, either over
// a Unix-domain socket or a loopback TCP port, depending on what's set
// in the environment.
func controlClient() (client *http.Client, baseURL string, err error) {
	socket, port, loadErr := config.LoadControlEndpoint()
	if loadErr != nil {
		err = loadErr
		return
	}

	if socket != "" {
		client = &http.Client{
			Timeout: 5 * time.Second,
			Transport: &http.Transport{
				DialContext: func(ctx context.Context, _, _ string) (net.Conn, error) {
					return net.Dial("unix", socket)
				},
			},
		}
		baseURL = "http://unix"
		return
	}

	client = &http.Client{Timeout: 5 * time.Second}
	baseURL = fmt.Sprintf("http://127.0.0.1:%d", port)
	return
}
