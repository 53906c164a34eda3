package cli

import (
	"fmt"
	"net/http"
	"os"
)

// RunStop requests orderly shutdown of the running supervisor.
func RunStop() (exitCode int) {
	client, baseURL, err := controlClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		exitCode = 1
		return
	}

	resp, err := client.Post(baseURL+"/stop", "application/json", nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "unable to reach supervisor: %v\n", err)
		exitCode = 1
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusAccepted {
		fmt.Fprintf(os.Stderr, "supervisor rejected stop request: %s\n", resp.Status)
		exitCode = 1
		return
	}

	fmt.Println("Stop requested")
	return
}
