package customer

import (
	"strings"
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// OrderPreset is one ordering pattern a profile favours
type OrderPreset struct {
	OrderID    string
	RecipeName string
	Request    *sushi.CustomRequest
	Weight     float64
}

// Conversations names the dialogue entries presentation plays at each stage
type Conversations struct {
	Greeting        string
	FirstOrder      string
	AdditionalOrder string
	RepeatCustomer  string
	Farewell        string
}

// Profile is static data describing a kind of customer
type Profile struct {
	ID          string
	DisplayName string
	Type        Type

	MinDay       int
	MaxDay       int
	SpawnWeight  float64
	UniquePerDay bool
	PartySize    int

	// Patience overrides the service default when positive
	Patience time.Duration

	CanMakeCustomOrders bool
	// CustomOrderProbability overrides the ledger threshold when positive
	CustomOrderProbability float64
	CanMakeMultipleOrders  bool
	MaxOrders              int

	OrderPresets  []OrderPreset
	Conversations Conversations
}

// NewProfile returns a profile with the usual defaults: days 1..999,
// weight 1, party of one, custom orders allowed.
func NewProfile(id, displayName string) *Profile {
	return &Profile{
		ID:                  id,
		DisplayName:         displayName,
		Type:                TypeNormal,
		MinDay:              1,
		MaxDay:              999,
		SpawnWeight:         1,
		PartySize:           1,
		CanMakeCustomOrders: true,
		MaxOrders:           1,
	}
}

// Validate checks the profile's invariants
func (p *Profile) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return shared.NewValidationError("id", "profile id cannot be empty")
	}
	if p.MaxDay < p.MinDay {
		return shared.NewValidationError("max_day", "max day must not precede min day")
	}
	if p.SpawnWeight < 0 {
		return shared.NewValidationError("spawn_weight", "spawn weight cannot be negative")
	}
	if p.PartySize < 0 {
		return shared.NewValidationError("party_size", "party size cannot be negative")
	}
	for _, preset := range p.OrderPresets {
		if preset.Weight < 0 {
			return shared.NewValidationError("order_presets.weight", "preset weight cannot be negative")
		}
	}
	return nil
}

// IsAvailableOnDay reports whether the profile may spawn on day
func (p *Profile) IsAvailableOnDay(day int) bool {
	return day >= p.MinDay && day <= p.MaxDay
}

// EffectivePartySize treats zero as one
func (p *Profile) EffectivePartySize() int {
	if p.PartySize < 1 {
		return 1
	}
	return p.PartySize
}

// OrderLimit is how many orders one visit may place. Multi-order profiles place at least two.
func (p *Profile) OrderLimit() int {
	if !p.CanMakeMultipleOrders {
		return 1
	}
	if p.MaxOrders < 2 {
		return 2
	}
	return p.MaxOrders
}

// RequestThreshold returns the profile's probability override or fallback
func (p *Profile) RequestThreshold(fallback float64) float64 {
	if p.CustomOrderProbability > 0 {
		return p.CustomOrderProbability
	}
	return fallback
}

// PatienceOr returns the profile's patience override or fallback
func (p *Profile) PatienceOr(fallback time.Duration) time.Duration {
	if p.Patience > 0 {
		return p.Patience
	}
	return fallback
}

// PickPreset draws a preset by weight. False when the profile has none with positive weight.
func (p *Profile) PickPreset(rng shared.RandomSource) (OrderPreset, bool) {
	return shared.WeightedPick(rng, p.OrderPresets, func(o OrderPreset) float64 { return o.Weight })
}
