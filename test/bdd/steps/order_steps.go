package steps

import (
	"context"
	"fmt"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/sushibar-go/internal/domain/order"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

type orderContext struct {
	catalog     *sushi.Catalog
	order       *order.Order
	timeouts    int
	serveResult sushi.Result
}

func (oc *orderContext) reset() {
	oc.catalog = nil
	oc.order = nil
	oc.timeouts = 0
	oc.serveResult = sushi.ResultNone
}

// perfectPlate builds a plate at the recipe's ideal
func perfectPlate(catalog *sushi.Catalog, recipeName string) (*sushi.Plate, error) {
	recipe, ok := catalog.FindByName(recipeName)
	if !ok {
		return nil, fmt.Errorf("recipe %q not on the menu", recipeName)
	}
	return sushi.NewPlate(recipe, recipe.Ideal()), nil
}

// Given steps

func (oc *orderContext) theBuiltInMenu() error {
	oc.catalog = sushi.DefaultCatalog()
	return nil
}

func (oc *orderContext) anOrderForWithATimeLimitOf(recipeName string, seconds int) error {
	recipe, ok := oc.catalog.FindByName(recipeName)
	if !ok {
		return fmt.Errorf("recipe %q not on the menu", recipeName)
	}
	o, err := order.NewOrder(shared.NewCustomerID(), recipe, nil, time.Duration(seconds)*time.Second)
	if err != nil {
		return err
	}
	oc.order = o
	return nil
}

// When steps

func (oc *orderContext) theOrderTicks(seconds int) error {
	if oc.order.Tick(time.Duration(seconds) * time.Second) {
		oc.timeouts++
	}
	return nil
}

func (oc *orderContext) theOrderIsServedAPerfect(recipeName string) error {
	plate, err := perfectPlate(oc.catalog, recipeName)
	if err != nil {
		return err
	}
	oc.serveResult, _ = oc.order.Complete(plate)
	return nil
}

// Then steps

func (oc *orderContext) theOrderShouldHaveTimedOutTimes(expected int) error {
	if oc.timeouts != expected {
		return fmt.Errorf("expected %d timeouts, got %d", expected, oc.timeouts)
	}
	return nil
}

func (oc *orderContext) theOrderStateShouldBe(expected string) error {
	if oc.order.State().String() != expected {
		return fmt.Errorf("expected order state %s, got %s", expected, oc.order.State())
	}
	return nil
}

func (oc *orderContext) theOrderQualityShouldBe(expected float64) error {
	if !approxEqual(oc.order.Quality(), expected) {
		return fmt.Errorf("expected order quality %.2f, got %.4f", expected, oc.order.Quality())
	}
	return nil
}

func (oc *orderContext) theServeResultShouldBe(expected string) error {
	want, err := parseResult(expected)
	if err != nil {
		return err
	}
	if oc.serveResult != want {
		return fmt.Errorf("expected serve result %s, got %s", want, oc.serveResult)
	}
	return nil
}

func InitializeOrderScenario(ctx *godog.ScenarioContext) {
	oc := &orderContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		oc.reset()
		return ctx, nil
	})

	// Given steps
	ctx.Step(`^the built-in menu$`, oc.theBuiltInMenu)
	ctx.Step(`^an order for "([^"]*)" with a time limit of (\d+) seconds$`, oc.anOrderForWithATimeLimitOf)

	// When steps
	ctx.Step(`^the order ticks (\d+) seconds$`, oc.theOrderTicks)
	ctx.Step(`^the order is served a perfect "([^"]*)"$`, oc.theOrderIsServedAPerfect)

	// Then steps
	ctx.Step(`^the order should have timed out (\d+) times?$`, oc.theOrderShouldHaveTimedOutTimes)
	ctx.Step(`^the order state should be "([^"]*)"$`, oc.theOrderStateShouldBe)
	ctx.Step(`^the order quality should be ([0-9.]+)$`, oc.theOrderQualityShouldBe)
	ctx.Step(`^the serve result should be "([^"]*)"$`, oc.theServeResultShouldBe)
}
