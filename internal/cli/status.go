package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// RunStatus reaches the running supervisor's control API and prints its
// status as JSON. Returns a nonzero exit code if the supervisor cannot
// be reached.
func RunStatus() (exitCode int) {
	client, baseURL, err := controlClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		exitCode = 1
		return
	}

	resp, err := client.Get(baseURL + "/status")
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to reach supervisor: %v\n", err)
		exitCode = 1
		return
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed reading supervisor response: %v\n", err)
		exitCode = 1
		return
	}

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "supervisor returned %s: %s\n", resp.Status, body)
		exitCode = 1
		return
	}

	var pretty map[string]any
	if jsonErr := json.Unmarshal(body, &pretty); jsonErr == nil {
		out, _ := json.MarshalIndent(pretty, "", "  ")
		fmt.Println(string(out))
	} else {
		fmt.Println(string(body))
	}
	return
}
