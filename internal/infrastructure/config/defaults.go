package config

import "time"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Database defaults
	if cfg.Database.Type == "" {
		cfg.Database.Type = "sqlite"
	}
	if cfg.Database.Path == "" && cfg.Database.Type == "sqlite" {
		cfg.Database.Path = "sushibar.db"
	}
	if cfg.Database.Host == "" {
		cfg.Database.Host = "localhost"
	}
	if cfg.Database.Port == 0 {
		cfg.Database.Port = 5432
	}
	if cfg.Database.User == "" {
		cfg.Database.User = "sushibar"
	}
	if cfg.Database.Name == "" {
		cfg.Database.Name = "sushibar"
	}
	if cfg.Database.SSLMode == "" {
		cfg.Database.SSLMode = "disable"
	}
	if cfg.Database.Pool.MaxOpen == 0 {
		cfg.Database.Pool.MaxOpen = 10
	}
	if cfg.Database.Pool.MaxIdle == 0 {
		cfg.Database.Pool.MaxIdle = 2
	}
	if cfg.Database.Pool.MaxLifetime == 0 {
		cfg.Database.Pool.MaxLifetime = 5 * time.Minute
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stderr"
	}
	if cfg.Logging.DedupWindow == 0 {
		cfg.Logging.DedupWindow = 60 * time.Second
	}

	// Metrics defaults
	if cfg.Metrics.Host == "" {
		cfg.Metrics.Host = "localhost"
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}

	// Events defaults
	if cfg.Events.URL == "" {
		cfg.Events.URL = "nats://127.0.0.1:4222"
	}
	if cfg.Events.SubjectPrefix == "" {
		cfg.Events.SubjectPrefix = "sushibar"
	}
	if cfg.Events.ConnectTimeout == 0 {
		cfg.Events.ConnectTimeout = 5 * time.Second
	}

	// Service defaults
	if cfg.Service.OrderTimeLimit == 0 {
		cfg.Service.OrderTimeLimit = 15 * time.Second
	}
	if cfg.Service.SpawnInterval == 0 {
		cfg.Service.SpawnInterval = 3 * time.Second
	}
	if cfg.Service.RespawnDelay == 0 {
		cfg.Service.RespawnDelay = 2 * time.Second
	}
	if cfg.Service.Patience == 0 {
		cfg.Service.Patience = 10 * time.Second
	}
	if cfg.Service.EatDuration == 0 {
		cfg.Service.EatDuration = 4 * time.Second
	}
	if cfg.Service.SeatCount == 0 {
		cfg.Service.SeatCount = 4
	}
	if cfg.Service.MaxActiveSeats == 0 {
		cfg.Service.MaxActiveSeats = cfg.Service.SeatCount
	}
	if cfg.Service.CurrentDay == 0 {
		cfg.Service.CurrentDay = 1
	}
	if cfg.Service.CraftDefault == 0 {
		cfg.Service.CraftDefault = 0.5
	}
	if cfg.Service.HoldRate == 0 {
		cfg.Service.HoldRate = 1
	}

	// Simulation defaults
	if cfg.Simulation.Frames == 0 {
		cfg.Simulation.Frames = 3600
	}
	if cfg.Simulation.FrameDelta == 0 {
		cfg.Simulation.FrameDelta = 50 * time.Millisecond
	}
	if cfg.Simulation.CookTime == 0 {
		cfg.Simulation.CookTime = 2 * time.Second
	}
	if cfg.Simulation.PublishEvery == 0 {
		cfg.Simulation.PublishEvery = 20
	}
}
