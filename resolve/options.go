package resolve

import "log/slog"

// Option configures Resolve and Finish. Modeled on the teacher's load.Option
// functional-options pattern (schema/load/options.go).
type Option func(*config)

type config struct {
	logger *slog.Logger
}

func defaultConfig() *config {
	return &config{}
}

func applyOptions(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger supplies a logger for phase-boundary tracing. A nil logger (the
// default) disables tracing entirely; see [TraceDebug].
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}
