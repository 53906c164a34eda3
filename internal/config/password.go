package config

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptRedisPassword asks for REDIS_PASSWORD on the controlling terminal
// when it was left unset in the environment and stdin is a real TTY.
// Non-interactive contexts (services, CI) fall through to the unset
// default rather than blocking on a read that will never complete.
func promptRedisPassword() (password string, err error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return
	}

	fmt.Fprint(os.Stderr, "REDIS_PASSWORD (leave blank for none): ")
	raw, readErr := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if readErr != nil {
		err = fmt.Errorf("failed to read password: %v", readErr)
		return
	}
	password = string(raw)
	return
}
