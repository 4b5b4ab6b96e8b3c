package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/orders"
	"github.com/andrescamacho/sushibar-go/internal/domain/order"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// orderLedgerContext tracks customers by name and keeps every order handle
// so terminal orders stay inspectable after the ledger drops them
type orderLedgerContext struct {
	catalog   *sushi.Catalog
	ledger    *orders.Ledger
	customers map[string]shared.CustomerID
	orders    map[string]*order.Order
	outcomes  map[string]orders.Outcome
}

func (lc *orderLedgerContext) reset() {
	lc.catalog = sushi.DefaultCatalog()
	lc.ledger = nil
	lc.customers = make(map[string]shared.CustomerID)
	lc.orders = make(map[string]*order.Order)
	lc.outcomes = make(map[string]orders.Outcome)
}

func (lc *orderLedgerContext) customer(name string) shared.CustomerID {
	id, ok := lc.customers[name]
	if !ok {
		id = shared.NewCustomerID()
		lc.customers[name] = id
	}
	return id
}

func (lc *orderLedgerContext) place(name, recipeName, requestType string) *order.Order {
	o := lc.ledger.CreateSpecificOrder(lc.customer(name), recipeName, requestType)
	if o != nil {
		if _, seen := lc.orders[name]; !seen {
			lc.orders[name] = o
		}
	}
	return o
}

// Given steps

func (lc *orderLedgerContext) anOrderLedgerWithATimeLimitOf(seconds int) error {
	config := orders.Config{TimeLimit: time.Duration(seconds) * time.Second}
	lc.ledger = orders.NewLedger(lc.catalog, config, shared.NewSeededRandom(1), logging.NoOp())
	return nil
}

func (lc *orderLedgerContext) customerOrdered(name, recipeName string) error {
	if lc.place(name, recipeName, "") == nil {
		return fmt.Errorf("order for %s was not placed", name)
	}
	return nil
}

func (lc *orderLedgerContext) customerOrderedSecondsAgo(name, recipeName string, seconds int) error {
	o := lc.place(name, recipeName, "")
	if o == nil {
		return fmt.Errorf("order for %s was not placed", name)
	}
	o.Tick(time.Duration(seconds) * time.Second)
	return nil
}

// When steps

func (lc *orderLedgerContext) customerOrders(name, recipeName string) error {
	lc.place(name, recipeName, "")
	return nil
}

func (lc *orderLedgerContext) customerOrdersWithRequest(name, recipeName, requestType string) error {
	lc.place(name, recipeName, requestType)
	return nil
}

func (lc *orderLedgerContext) theLedgerTicks(seconds int) error {
	lc.ledger.Tick(time.Duration(seconds) * time.Second)
	return nil
}

func (lc *orderLedgerContext) theLedgerTicksAndIsServed(seconds int, name, recipeName string) error {
	lc.ledger.Tick(time.Duration(seconds) * time.Second)
	plate, err := perfectPlate(lc.catalog, recipeName)
	if err != nil {
		return err
	}
	lc.outcomes[name] = lc.ledger.TryCompleteOrder(lc.customer(name), plate)
	return nil
}

// Then steps

func (lc *orderLedgerContext) theOrderOfShouldHaveFailed(name string) error {
	o, ok := lc.orders[name]
	if !ok {
		return fmt.Errorf("%s never ordered", name)
	}
	if o.State() != order.StateFailed {
		return fmt.Errorf("expected %s's order to fail, got %s", name, o.State())
	}
	if lc.ledger.FindByCustomer(lc.customer(name)) != nil {
		return fmt.Errorf("failed order for %s is still in the ledger", name)
	}
	return nil
}

func (lc *orderLedgerContext) theOrderOfShouldHaveCompletedAs(name, expected string) error {
	want, err := parseResult(expected)
	if err != nil {
		return err
	}
	outcome, ok := lc.outcomes[name]
	if !ok {
		return fmt.Errorf("%s was never served", name)
	}
	if outcome.Result != want {
		return fmt.Errorf("expected %s's outcome %s, got %s", name, want, outcome.Result)
	}
	if outcome.Order == nil || outcome.Order.State() != order.StateCompleted {
		return fmt.Errorf("expected %s's order to be completed", name)
	}
	if outcome.Order != lc.orders[name] {
		return fmt.Errorf("outcome for %s resolved another customer's order", name)
	}
	return nil
}

func (lc *orderLedgerContext) theLedgerShouldHoldActiveOrders(expected int) error {
	if lc.ledger.Len() != expected {
		return fmt.Errorf("expected %d active orders, got %d", expected, lc.ledger.Len())
	}
	return nil
}

func (lc *orderLedgerContext) customersShouldStillHaveActiveOrders(first, second string) error {
	for _, name := range []string{first, second} {
		o := lc.ledger.FindByCustomer(lc.customer(name))
		if o == nil || !o.IsActive() {
			return fmt.Errorf("expected %s to still have an active order", name)
		}
		if o != lc.orders[name] {
			return fmt.Errorf("%s holds an order that is not theirs", name)
		}
	}
	return nil
}

func (lc *orderLedgerContext) theOrderOfShouldBeFor(name, recipeName string) error {
	o := lc.ledger.FindByCustomer(lc.customer(name))
	if o == nil {
		return fmt.Errorf("%s has no active order", name)
	}
	if o.Recipe().Name() != recipeName {
		return fmt.Errorf("expected %s's order for %s, got %s", name, recipeName, o.Recipe().Name())
	}
	return nil
}

func (lc *orderLedgerContext) theOrderOfShouldCarryNoRequest(name string) error {
	o := lc.ledger.FindByCustomer(lc.customer(name))
	if o == nil {
		return fmt.Errorf("%s has no active order", name)
	}
	if o.Request().HasAny() {
		return fmt.Errorf("expected no request, got %s", o.Request())
	}
	return nil
}

func InitializeOrderLedgerScenario(ctx *godog.ScenarioContext) {
	lc := &orderLedgerContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		lc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^an order ledger over the built-in menu with a time limit of (\d+) seconds$`, lc.anOrderLedgerWithATimeLimitOf)
	ctx.Step(`^customer "([^"]*)" ordered "([^"]*)"$`, lc.customerOrdered)
	ctx.Step(`^customer "([^"]*)" ordered "([^"]*)" (\d+) seconds ago$`, lc.customerOrderedSecondsAgo)

	// When steps
	ctx.Step(`^customer "([^"]*)" orders "([^"]*)"$`, lc.customerOrders)
	ctx.Step(`^customer "([^"]*)" orders "([^"]*)" with request "([^"]*)"$`, lc.customerOrdersWithRequest)
	ctx.Step(`^the ledger ticks (\d+) seconds$`, lc.theLedgerTicks)
	ctx.Step(`^the ledger ticks (\d+) seconds and "([^"]*)" is served a perfect "([^"]*)"$`, lc.theLedgerTicksAndIsServed)

	// Then steps
	ctx.Step(`^the order of "([^"]*)" should have failed$`, lc.theOrderOfShouldHaveFailed)
	ctx.Step(`^the order of "([^"]*)" should have completed as "([^"]*)"$`, lc.theOrderOfShouldHaveCompletedAs)
	ctx.Step(`^the ledger should hold (\d+) active orders$`, lc.theLedgerShouldHoldActiveOrders)
	ctx.Step(`^customers "([^"]*)" and "([^"]*)" should still have active orders$`, lc.customersShouldStillHaveActiveOrders)
	ctx.Step(`^the order of "([^"]*)" should be for "([^"]*)"$`, lc.theOrderOfShouldBeFor)
	ctx.Step(`^the order of "([^"]*)" should carry no request$`, lc.theOrderOfShouldCarryNoRequest)
}
