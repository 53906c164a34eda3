package cli

import "autoscaler/internal/global"

func DefineOptions() (cmdOpts *global.CommandSet) {
	// Root level
	root := &global.CommandSet{
		Description:     "Autoscaling process supervisor",
		FullDescription: "  Watches a broker queue and grows/shrinks a fleet of worker processes to match",
		CommandName:     RootCLICommand,
		ChildCommands:   make(map[string]*global.CommandSet),
	}

	// Start the supervisor daemon
	root.ChildCommands["start"] = &global.CommandSet{
		CommandName:     "start",
		Description:     "Start the supervisor",
		FullDescription: "Starts the autoscaler loop, the worker fleet, and the control API, and runs until signaled",
		ChildCommands:   nil,
	}

	// Query state of a running supervisor
	root.ChildCommands["status"] = &global.CommandSet{
		CommandName:     "status",
		Description:     "Show fleet and queue status",
		FullDescription: "Reaches the running supervisor's control API and prints queue depth, fleet size, and bounds",
		ChildCommands:   nil,
	}

	// Manual scale up
	root.ChildCommands["scale-up"] = &global.CommandSet{
		CommandName:     "scale-up",
		Description:     "Add worker processes",
		FullDescription: "Requests the running supervisor grow the fleet by a given count, bounded by max processes",
		ChildCommands:   nil,
	}

	// Manual scale down
	root.ChildCommands["scale-down"] = &global.CommandSet{
		CommandName:     "scale-down",
		Description:     "Remove worker processes",
		FullDescription: "Requests the running supervisor shrink the fleet by a given count, bounded by min processes",
		ChildCommands:   nil,
	}

	// Graceful shutdown
	root.ChildCommands["stop"] = &global.CommandSet{
		CommandName:     "stop",
		Description:     "Stop the supervisor",
		FullDescription: "Requests the running supervisor drain and stop all worker processes, then exit",
		ChildCommands:   nil,
	}

	// Build info
	root.ChildCommands["version"] = &global.CommandSet{
		CommandName:     "version",
		Description:     "Print version information",
		FullDescription: "Prints the program version and build toolchain details",
		ChildCommands:   nil,
	}

	cmdOpts = root
	return
}
