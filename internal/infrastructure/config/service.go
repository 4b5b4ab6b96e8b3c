package config

import "time"

// ServiceConfig tunes the restaurant rules for a service run
type ServiceConfig struct {
	OrderTimeLimit         time.Duration `mapstructure:"order_time_limit" validate:"min=0"`
	CustomOrderProbability float64       `mapstructure:"custom_order_probability" validate:"min=0,max=1"`

	SpawnInterval    time.Duration `mapstructure:"spawn_interval" validate:"min=0"`
	RespawnDelay     time.Duration `mapstructure:"respawn_delay" validate:"min=0"`
	Patience         time.Duration `mapstructure:"patience" validate:"min=0"`
	EatDuration      time.Duration `mapstructure:"eat_duration" validate:"min=0"`
	OrderingDuration time.Duration `mapstructure:"ordering_duration" validate:"min=0"`

	SeatCount         int `mapstructure:"seat_count" validate:"min=1"`
	MaxActiveSeats    int `mapstructure:"max_active_seats" validate:"min=1"`
	MaxWaitingParties int `mapstructure:"max_waiting_parties" validate:"min=0"`

	// CurrentDay gates which customer profiles may appear
	CurrentDay int `mapstructure:"current_day" validate:"min=1"`

	// CraftDefault is the starting value of every crafting parameter
	CraftDefault float64 `mapstructure:"craft_default" validate:"min=0,max=1"`
	HoldRate     float64 `mapstructure:"hold_rate" validate:"gt=0"`
}

// SimulationConfig drives headless runs
type SimulationConfig struct {
	// Seed for the random source; zero picks one from the clock
	Seed         uint64        `mapstructure:"seed"`
	Frames       int           `mapstructure:"frames" validate:"min=0"`
	FrameDelta   time.Duration `mapstructure:"frame_delta" validate:"min=1ms"`
	Realtime     bool          `mapstructure:"realtime"`
	SkillNoise   float64       `mapstructure:"skill_noise" validate:"min=0,max=1"`
	CookTime     time.Duration `mapstructure:"cook_time" validate:"min=0"`
	PublishEvery int           `mapstructure:"publish_every" validate:"min=1"`
}
