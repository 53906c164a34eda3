package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"strconv"

	"autoscaler/internal/cli"
	"autoscaler/internal/global"
)

func main() {
	cliOpts := cli.DefineOptions()

	args := os.Args
	commandFlags := flag.NewFlagSet(args[0], flag.ExitOnError)
	cli.SetGlobalArguments(commandFlags)

	commandFlags.Usage = func() {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
	}
	if len(args) < 2 {
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
		os.Exit(1)
	}

	command := args[1]
	args = args[2:]

	var exitCode int

	switch command {
	case "start":
		initialCount := 0
		if len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(os.Stderr, "invalid initial process count: %v\n", err)
				os.Exit(1)
			}
			initialCount = n
		}
		exitCode = cli.RunStart(initialCount)
	case "status":
		exitCode = cli.RunStatus()
	case "scale-up":
		exitCode = runWithCount(args, cli.RunScaleUp)
	case "scale-down":
		exitCode = runWithCount(args, cli.RunScaleDown)
	case "stop":
		exitCode = cli.RunStop()
	case "version":
		fmt.Printf("autoscaler %s\n", global.ProgVersion)
		fmt.Printf("Built using %s(%s) for %s on %s\n", runtime.Version(), runtime.Compiler, runtime.GOOS, runtime.GOARCH)
	default:
		cli.PrintHelpMenu(commandFlags, cli.RootCLICommand, cliOpts)
		exitCode = 1
	}

	os.Exit(exitCode)
}

func runWithCount(args []string, run func(k int) int) (exitCode int) {
	fs := flag.NewFlagSet("count", flag.ContinueOnError)
	count := fs.Int("count", 0, "number of worker processes to add or remove")
	if err := fs.Parse(args); err != nil {
		exitCode = 1
		return
	}
	exitCode = run(*count)
	return
}
