package config

import "time"

// MetricsConfig holds metrics collection and exposure configuration
type MetricsConfig struct {
	// Enabled controls whether metrics collection is active
	Enabled bool `mapstructure:"enabled"`

	// Port for the HTTP server exposing metrics and status
	Port int `mapstructure:"port" validate:"omitempty,min=1024,max=65535"`

	// Host to bind the HTTP server (default: localhost)
	Host string `mapstructure:"host"`

	// Path for the metrics endpoint (default: /metrics)
	Path string `mapstructure:"path"`
}

// EventsConfig controls publishing of service events to NATS
type EventsConfig struct {
	Enabled bool `mapstructure:"enabled"`

	// NATS server URL
	URL string `mapstructure:"url" validate:"required_if=Enabled true"`

	// Subjects are <prefix>.<event>, e.g. sushibar.order.resolved
	SubjectPrefix string `mapstructure:"subject_prefix"`

	ConnectTimeout time.Duration `mapstructure:"connect_timeout"`
}
