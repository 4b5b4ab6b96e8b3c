package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// customerContext drives a single customer's timers by hand
type customerContext struct {
	customer *customer.Customer
	expired  bool
}

func (cc *customerContext) reset() {
	cc.customer = nil
	cc.expired = false
}

// Given steps

func (cc *customerContext) aCustomerWithSecondsOfPatience(seconds int) error {
	profile := customer.NewProfile("bdd-guest", "Guest")
	cc.customer = customer.New(shared.NewCustomerID(), profile, shared.NewPartyID(),
		time.Duration(seconds)*time.Second, 30*time.Second)
	return nil
}

// When steps

func (cc *customerContext) theCustomerIsSeatedAtSeat(seat int) error {
	if !cc.customer.AssignSeat(customer.SeatID(seat)) {
		return fmt.Errorf("customer in state %s could not be seated", cc.customer.State())
	}
	return nil
}

func (cc *customerContext) theCustomerIsReadyToOrder() error {
	if !cc.customer.ReadyToOrder() {
		return fmt.Errorf("customer in state %s cannot start ordering", cc.customer.State())
	}
	return nil
}

func (cc *customerContext) theCustomerPlacesAnOrder() error {
	if !cc.customer.SetOrder(shared.NewOrderID()) {
		return fmt.Errorf("customer in state %s cannot place an order", cc.customer.State())
	}
	return nil
}

func (cc *customerContext) theCustomerReceivesTheFood() error {
	if !cc.customer.ReceiveFood() {
		return fmt.Errorf("customer in state %s cannot receive food", cc.customer.State())
	}
	return nil
}

func (cc *customerContext) secondsPassInStepsOf(total, step int) error {
	if step <= 0 {
		return fmt.Errorf("step must be positive")
	}
	for elapsed := 0; elapsed < total; elapsed += step {
		if cc.customer.Tick(time.Duration(step)*time.Second) == customer.TickPatienceExpired {
			cc.expired = true
		}
	}
	return nil
}

// Then steps

func (cc *customerContext) theCustomerStateShouldBe(expected string) error {
	if cc.customer.State().String() != expected {
		return fmt.Errorf("expected customer state %s, got %s", expected, cc.customer.State())
	}
	return nil
}

func (cc *customerContext) theCustomerPatienceShouldHaveExpired() error {
	if !cc.expired {
		return fmt.Errorf("expected patience to expire, %s left", cc.customer.Patience())
	}
	return nil
}

func (cc *customerContext) theCustomerPatienceShouldNotHaveExpired() error {
	if cc.expired {
		return fmt.Errorf("patience expired unexpectedly")
	}
	return nil
}

func (cc *customerContext) theCustomerShouldHaveSecondsOfPatienceLeft(seconds int) error {
	want := time.Duration(seconds) * time.Second
	if cc.customer.Patience() != want {
		return fmt.Errorf("expected %s of patience left, got %s", want, cc.customer.Patience())
	}
	return nil
}

func InitializeCustomerScenario(ctx *godog.ScenarioContext) {
	cc := &customerContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		cc.reset()
		return ctx, nil
	})

	ctx.Step(`^a customer with (\d+) seconds of patience$`, cc.aCustomerWithSecondsOfPatience)

	ctx.Step(`^the customer is seated at seat (\d+)$`, cc.theCustomerIsSeatedAtSeat)
	ctx.Step(`^the customer is ready to order$`, cc.theCustomerIsReadyToOrder)
	ctx.Step(`^the customer places an order$`, cc.theCustomerPlacesAnOrder)
	ctx.Step(`^the customer receives the food$`, cc.theCustomerReceivesTheFood)
	ctx.Step(`^(\d+) seconds pass in steps of (\d+) seconds?$`, cc.secondsPassInStepsOf)

	ctx.Step(`^the customer state should be "([^"]*)"$`, cc.theCustomerStateShouldBe)
	ctx.Step(`^the customer patience should have expired$`, cc.theCustomerPatienceShouldHaveExpired)
	ctx.Step(`^the customer patience should not have expired$`, cc.theCustomerPatienceShouldNotHaveExpired)
	ctx.Step(`^the customer should have (\d+) seconds of patience left$`, cc.theCustomerShouldHaveSecondsOfPatienceLeft)
}
