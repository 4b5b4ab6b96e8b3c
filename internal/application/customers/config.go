package customers

import "time"

// Config tunes spawning and customer timers
type Config struct {
	SpawnInterval time.Duration
	RespawnDelay  time.Duration
	Patience      time.Duration
	EatDuration   time.Duration
	// OrderingDuration is how long a seated customer spends greeting before
	// waiting for the kitchen. Zero leaves customers in Ordering until an
	// order is taken.
	OrderingDuration time.Duration
	CurrentDay       int
}

func DefaultConfig() Config {
	return Config{
		SpawnInterval:    3 * time.Second,
		RespawnDelay:     2 * time.Second,
		Patience:         10 * time.Second,
		EatDuration:      4 * time.Second,
		OrderingDuration: 2 * time.Second,
		CurrentDay:       1,
	}
}

// ExitReason says why a customer left
type ExitReason string

const (
	ExitFinished     ExitReason = "FINISHED"
	ExitPatience     ExitReason = "PATIENCE_EXPIRED"
	ExitOrderFailed  ExitReason = "ORDER_FAILED"
	ExitServiceEnded ExitReason = "SERVICE_ENDED"
)
