package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	ApiKey string `mapstructure:"api_key" default:""`
	// ReconcileMode controls how warehouses of a branch are processed
	// (parallel, sequential). The six reads inside one warehouse are always
	// issued concurrently regardless of this setting.
	ReconcileMode string `mapstructure:"reconcile_mode" default:"parallel"`
}

const (
	ModeParallel   = "parallel"
	ModeSequential = "sequential"
)

// IsValidReconcileMode checks if the configured reconcile mode is valid.
func (c Config) IsValidReconcileMode() bool {
	switch c.ReconcileMode {
	case ModeParallel, ModeSequential:
		return true
	default:
		return false
	}
}
