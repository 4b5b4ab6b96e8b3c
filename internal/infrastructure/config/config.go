package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config is the main configuration struct combining all sub-configs
type Config struct {
	Database   DatabaseConfig   `mapstructure:"database"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Metrics    MetricsConfig    `mapstructure:"metrics"`
	Events     EventsConfig     `mapstructure:"events"`
	Service    ServiceConfig    `mapstructure:"service"`
	Simulation SimulationConfig `mapstructure:"simulation"`
}

// LoadConfig loads configuration from multiple sources with priority:
// 1. Environment variables (highest priority)
// 2. Config file (config.yaml)
// 3. Defaults (lowest priority)
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (doesn't error if missing)
	_ = godotenv.Load()

	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/sushibar")
	}

	// Enable environment variable reading
	v.SetEnvPrefix("SUSHI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	registerDefaults(v)

	// Read config file (optional - don't error if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK - we'll use env vars and defaults
	}

	// DATABASE_URL and NATS_URL are honoured without the SUSHI_ prefix
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		v.Set("database.url", dbURL)
	}
	if natsURL := os.Getenv("NATS_URL"); natsURL != "" {
		v.Set("events.url", natsURL)
	}

	// Create config struct and unmarshal
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply defaults for any missing values
	SetDefaults(&cfg)

	// Validate configuration
	if err := ValidateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// registerDefaults covers keys where zero is a meaningful setting and
// SetDefaults therefore cannot tell "unset" from "off". It also makes every
// key visible to AutomaticEnv during Unmarshal.
func registerDefaults(v *viper.Viper) {
	v.SetDefault("service.ordering_duration", 2*time.Second)
	v.SetDefault("service.max_waiting_parties", 3)
	v.SetDefault("service.custom_order_probability", 0.4)
	v.SetDefault("simulation.skill_noise", 0.1)
	v.SetDefault("simulation.realtime", false)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("events.enabled", false)
	v.SetDefault("logging.persist", false)
}

// Default returns the configuration used when nothing is configured
func Default() *Config {
	cfg := &Config{}
	cfg.Service.OrderingDuration = 2 * time.Second
	cfg.Service.MaxWaitingParties = 3
	cfg.Service.CustomOrderProbability = 0.4
	cfg.Simulation.SkillNoise = 0.1
	SetDefaults(cfg)
	return cfg
}

// LoadConfigOrDefault loads configuration or returns a default config on error
func LoadConfigOrDefault(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return Default()
	}
	return cfg
}

// MustLoadConfig loads configuration and panics on error (for use in main.go)
func MustLoadConfig(configPath string) *Config {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}
	return cfg
}
