package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// RunScaleUp requests grow(k) from the running supervisor and prints
// actual_added.
func RunScaleUp(k int) (exitCode int) {
	return runScale("/scale-up", k)
}

// RunScaleDown requests shrink(k) from the running supervisor and
// prints actual_removed.
func RunScaleDown(k int) (exitCode int) {
	return runScale("/scale-down", k)
}

func runScale(path string, k int) (exitCode int) {
	if k < 1 {
		fmt.Fprintf(os.Stderr, "count must be >= 1, got %d\n", k)
		exitCode = 1
		return
	}

	client, baseURL, err := controlClient()
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		exitCode = 1
		return
	}

	url := fmt.Sprintf("%s%s?k=%d", baseURL, path, k)
	resp, err := client.Post(url, "application/json", nil)
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
		fmt.Fprintf(os.Stderr, "supervisor rejected request (%s): %s\n", resp.Status, body)
		exitCode = 1
		return
	}

	var result map[string]any
	if jsonErr := json.Unmarshal(body, &result); jsonErr == nil {
		out, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(out))
	} else {
		fmt.Println(string(body))
	}
	return
}
