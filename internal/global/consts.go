package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion string = "v0.1.0"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	DefaultLogFile string = "supervisor.log"

	// Worker process defaults
	DefaultMinProcesses            int           = 1
	DefaultMaxProcesses            int           = 10
	DefaultCheckInterval           time.Duration = 180 * time.Second
	DefaultScaleUpMultiplier       float64       = 5.0
	DefaultScaleDownMultiplier     float64       = 2.5
	DefaultGracefulShutdownTimeout time.Duration = 30 * time.Second
	DefaultProcessStartupDelay     time.Duration = 5 * time.Second

	// Redis broker defaults
	DefaultRedisHost string = "localhost"
	DefaultRedisPort int    = 6379
	DefaultRedisDB   int    = 0

	// Control API defaults
	DefaultControlPort    int           = 8765
	HTTPListenAddr        string        = "127.0.0.1" // Control API only exposed to local machine
	HTTPReadTimeout       time.Duration = 10 * time.Second
	HTTPWriteTimeout      time.Duration = 10 * time.Second
	HTTPIdleTimeout       time.Duration = 60 * time.Second

	// Metrics history defaults
	DefaultMetricsRetention    time.Duration = 24 * time.Hour
	DefaultMetricsStatusWindow time.Duration = 15 * time.Minute

	// Namespacing Name Components
	NSSupervisor string = "Supervisor"
	NSFleet      string = "Fleet"
	NSWorker     string = "Worker"
	NSAutoscaler string = "Autoscaler"
	NSProbe      string = "Probe"
	NSControlAPI string = "ControlAPI"
	NSCLI        string = "CLI"
	NSTest       string = "Test"
)
