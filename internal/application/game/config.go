package game

import (
	"github.com/andrescamacho/sushibar-go/internal/application/customers"
	"github.com/andrescamacho/sushibar-go/internal/application/orders"
	"github.com/andrescamacho/sushibar-go/internal/domain/crafting"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// Config tunes a service run
type Config struct {
	Orders    orders.Config
	Customers customers.Config

	SeatCount         int
	MaxActiveSeats    int
	MaxWaitingParties int

	// CraftDefaults are the working parameters a new craft starts from
	CraftDefaults sushi.ProcessParameters
	// HoldRate is how fast a held parameter rises, in units per second
	HoldRate float64
}

func DefaultConfig() Config {
	return Config{
		Orders:            orders.DefaultConfig(),
		Customers:         customers.DefaultConfig(),
		SeatCount:         4,
		MaxActiveSeats:    4,
		MaxWaitingParties: 3,
		CraftDefaults:     sushi.UniformParameters(crafting.DefaultStartValue),
		HoldRate:          1,
	}
}
