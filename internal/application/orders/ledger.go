package orders

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/order"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// Defaults for order generation
const (
	DefaultTimeLimit              = 15 * time.Second
	DefaultCustomOrderProbability = 0.4
)

// Config tunes order generation
type Config struct {
	TimeLimit              time.Duration
	CustomOrderProbability float64
}

func DefaultConfig() Config {
	return Config{
		TimeLimit:              DefaultTimeLimit,
		CustomOrderProbability: DefaultCustomOrderProbability,
	}
}

// Outcome is the result of serving a plate against a customer's order.
// Order is nil and Result is ResultNone when the customer had no active order.
type Outcome struct {
	Order   *order.Order
	Result  sushi.Result
	Quality float64
}

// FailureListener is told about every order that timed out during a tick
type FailureListener func(o *order.Order)

// PlacedListener is told about every order registered in the ledger
type PlacedListener func(o *order.Order)

// Ledger owns the active orders, at most one per customer
type Ledger struct {
	catalog *sushi.Catalog
	config  Config
	rng     shared.RandomSource
	logger  logging.ServiceLogger

	active   []*order.Order
	onFailed []FailureListener
	onPlaced []PlacedListener
}

// NewLedger creates an empty ledger drawing recipes from catalog
func NewLedger(catalog *sushi.Catalog, config Config, rng shared.RandomSource, logger logging.ServiceLogger) *Ledger {
	if config.TimeLimit <= 0 {
		config.TimeLimit = DefaultTimeLimit
	}
	if catalog == nil {
		catalog, _ = sushi.NewCatalog()
	}
	return &Ledger{
		catalog: catalog,
		config:  config,
		rng:     rng,
		logger:  logging.OrNoOp(logger),
	}
}

func (l *Ledger) OnFailed(fn FailureListener) {
	if fn != nil {
		l.onFailed = append(l.onFailed, fn)
	}
}

func (l *Ledger) OnPlaced(fn PlacedListener) {
	if fn != nil {
		l.onPlaced = append(l.onPlaced, fn)
	}
}

// Active returns a copy of the active orders in creation order
func (l *Ledger) Active() []*order.Order {
	out := make([]*order.Order, len(l.active))
	copy(out, l.active)
	return out
}

func (l *Ledger) Len() int {
	return len(l.active)
}

// Clear drops every active order without scoring them
func (l *Ledger) Clear() {
	l.active = nil
}

// FindByCustomer returns the customer's active order
func (l *Ledger) FindByCustomer(id shared.CustomerID) *order.Order {
	for _, o := range l.active {
		if o.Owner() == id {
			return o
		}
	}
	return nil
}

// FindByID returns an active order by id
func (l *Ledger) FindByID(id shared.OrderID) *order.Order {
	for _, o := range l.active {
		if o.ID() == id {
			return o
		}
	}
	return nil
}

// Tick advances every active order before any removal, then drops the ones
// that failed and notifies the failure listeners. Returns the failed orders.
func (l *Ledger) Tick(dt time.Duration) []*order.Order {
	var failed []*order.Order
	for _, o := range l.active {
		if o.Tick(dt) {
			failed = append(failed, o)
		}
	}
	if len(failed) == 0 {
		return nil
	}

	kept := make([]*order.Order, 0, len(l.active)-len(failed))
	for _, o := range l.active {
		if o.IsActive() {
			kept = append(kept, o)
		}
	}
	l.active = kept

	for _, o := range failed {
		l.logger.Log(logging.LevelInfo, "Order timed out", map[string]interface{}{
			"order_id":    o.ID().Short(),
			"customer_id": o.Owner().Short(),
			"recipe":      o.Recipe().Name(),
		})
		for _, fn := range l.onFailed {
			fn(o)
		}
	}
	return failed
}

// CreateOrderForCustomer places an order using the profile's presets when it
// has any, otherwise a uniformly random recipe with the random request policy.
// Returns the existing order if the customer already has one.
func (l *Ledger) CreateOrderForCustomer(customerID shared.CustomerID, profile *customer.Profile) *order.Order {
	if existing := l.FindByCustomer(customerID); existing != nil {
		return existing
	}

	if profile != nil {
		if preset, ok := profile.PickPreset(l.rng); ok {
			if recipe, found := l.catalog.FindByName(preset.RecipeName); found {
				return l.register(customerID, recipe, preset.Request)
			}
			l.logger.Log(logging.LevelWarn, "Order preset names an unknown recipe", map[string]interface{}{
				"profile": profile.ID,
				"preset":  preset.OrderID,
				"recipe":  preset.RecipeName,
			})
		}
	}

	recipe, ok := l.catalog.Random(l.rng)
	if !ok {
		l.logger.Log(logging.LevelWarn, "No recipes available for order", nil)
		return nil
	}

	var request *sushi.CustomRequest
	if profile == nil || profile.CanMakeCustomOrders {
		threshold := l.config.CustomOrderProbability
		if profile != nil {
			threshold = profile.RequestThreshold(threshold)
		}
		request = RandomRequest(l.rng, threshold)
	}
	return l.register(customerID, recipe, request)
}

// CreateSpecificOrder places an order for a recipe named by a script.
// An unknown recipe logs a diagnostic and returns nil; an unknown request
// type logs a diagnostic and the order is placed without a request.
func (l *Ledger) CreateSpecificOrder(customerID shared.CustomerID, recipeName, requestType string) *order.Order {
	recipe, ok := l.catalog.FindByName(recipeName)
	if !ok {
		l.logger.Log(logging.LevelError, "Recipe not found", map[string]interface{}{
			"recipe":      recipeName,
			"customer_id": customerID.Short(),
		})
		return nil
	}

	var request *sushi.CustomRequest
	if requestType != "" {
		if rt, err := sushi.ParseRequestType(requestType); err == nil {
			request, _ = sushi.NewRequest(rt)
		} else {
			l.logger.Log(logging.LevelWarn, "Unknown request type, ordering without request", map[string]interface{}{
				"request_type": requestType,
				"recipe":       recipe.Name(),
			})
		}
	}

	if existing := l.FindByCustomer(customerID); existing != nil {
		return existing
	}
	return l.register(customerID, recipe, request)
}

// TryCompleteOrder judges plate against the customer's order and removes the
// order whatever the outcome
func (l *Ledger) TryCompleteOrder(customerID shared.CustomerID, plate *sushi.Plate) Outcome {
	o := l.FindByCustomer(customerID)
	if o == nil {
		return Outcome{Result: sushi.ResultNone}
	}

	result, quality := o.Complete(plate)
	l.remove(o)
	if result == sushi.ResultNone {
		return Outcome{Result: sushi.ResultNone}
	}
	return Outcome{Order: o, Result: result, Quality: quality}
}

// AbandonOrder fails and removes the customer's order, for customers who
// leave before being served. Returns nil if there was none.
func (l *Ledger) AbandonOrder(customerID shared.CustomerID) *order.Order {
	o := l.FindByCustomer(customerID)
	if o == nil {
		return nil
	}
	o.Fail()
	l.remove(o)
	return o
}

func (l *Ledger) register(customerID shared.CustomerID, recipe *sushi.Recipe, request *sushi.CustomRequest) *order.Order {
	o, err := order.NewOrder(customerID, recipe, request, l.config.TimeLimit)
	if err != nil {
		l.logger.Log(logging.LevelError, "Failed to create order", map[string]interface{}{"error": err.Error()})
		return nil
	}
	l.active = append(l.active, o)
	for _, fn := range l.onPlaced {
		fn(o)
	}
	return o
}

func (l *Ledger) remove(target *order.Order) {
	kept := make([]*order.Order, 0, len(l.active))
	for _, o := range l.active {
		if o != target {
			kept = append(kept, o)
		}
	}
	l.active = kept
}
