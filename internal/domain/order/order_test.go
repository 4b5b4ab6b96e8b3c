package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/sushibar-go/internal/domain/order"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

func newOrder(t *testing.T, recipe *sushi.Recipe, limit time.Duration) *order.Order {
	t.Helper()
	o, err := order.NewOrder(shared.NewCustomerID(), recipe, nil, limit)
	require.NoError(t, err)
	return o
}

func salmon(t *testing.T) *sushi.Recipe {
	t.Helper()
	r, ok := sushi.DefaultCatalog().FindByName("Salmon Nigiri")
	require.True(t, ok)
	return r
}

func TestOrder_TickToLimitFailsExactlyOnce(t *testing.T) {
	// Arrange
	o := newOrder(t, salmon(t), 15*time.Second)
	frame := 500 * time.Millisecond
	failures := 0

	// Act
	for i := 0; i < 30; i++ {
		if o.Tick(frame) {
			failures++
		}
	}
	extra := o.Tick(frame)

	// Assert
	assert.Equal(t, 1, failures)
	assert.False(t, extra)
	assert.Equal(t, order.StateFailed, o.State())
	assert.Equal(t, time.Duration(0), o.Remaining())
}

func TestOrder_TickBeforeLimitStaysActive(t *testing.T) {
	o := newOrder(t, salmon(t), time.Second)

	failed := o.Tick(999 * time.Millisecond)

	assert.False(t, failed)
	assert.True(t, o.IsActive())
	assert.Equal(t, time.Millisecond, o.Remaining())
}

func TestOrder_OvershootClampsToZero(t *testing.T) {
	o := newOrder(t, salmon(t), time.Second)

	o.Tick(3 * time.Second)

	assert.Equal(t, time.Duration(0), o.Remaining())
	assert.Equal(t, sushi.ResultFail, o.Result())
}

func TestOrder_CompletePerfectPlate(t *testing.T) {
	// Arrange
	recipe := salmon(t)
	o := newOrder(t, recipe, 15*time.Second)

	// Act
	result, quality := o.Complete(sushi.NewPlate(recipe, recipe.Ideal()))

	// Assert
	assert.Equal(t, sushi.ResultPerfect, result)
	assert.Equal(t, 1.0, quality)
	assert.Equal(t, order.StateCompleted, o.State())
}

func TestOrder_CompleteWithWrongRecipeFails(t *testing.T) {
	// Arrange
	catalog := sushi.DefaultCatalog()
	tuna, _ := catalog.FindByName("Tuna Nigiri")
	o := newOrder(t, salmon(t), 15*time.Second)

	// Act
	result, quality := o.Complete(sushi.NewPlate(tuna, salmon(t).Ideal()))

	// Assert
	assert.Equal(t, sushi.ResultFail, result)
	assert.Equal(t, 0.0, quality)
	assert.Equal(t, order.StateFailed, o.State())
}

func TestOrder_CompleteNilPlateFails(t *testing.T) {
	o := newOrder(t, salmon(t), 15*time.Second)

	result, _ := o.Complete(nil)

	assert.Equal(t, sushi.ResultFail, result)
	assert.Equal(t, order.StateFailed, o.State())
}

func TestOrder_CallsOnTerminalOrderAreNoOps(t *testing.T) {
	// Arrange
	recipe := salmon(t)
	o := newOrder(t, recipe, time.Second)
	o.Tick(time.Second)

	// Act
	result, quality := o.Complete(sushi.NewPlate(recipe, recipe.Ideal()))
	o.Fail()

	// Assert
	assert.Equal(t, sushi.ResultNone, result)
	assert.Equal(t, 0.0, quality)
	assert.Equal(t, order.StateFailed, o.State())
}

func TestOrder_CompleteAppliesRequest(t *testing.T) {
	// Arrange
	recipe := salmon(t)
	o, err := order.NewOrder(shared.NewCustomerID(), recipe, sushi.ThickFish(0.3), 15*time.Second)
	require.NoError(t, err)

	// Act
	result, _ := o.Complete(sushi.NewPlate(recipe, recipe.Ideal()))

	// Assert
	assert.Equal(t, sushi.ResultGood, result)
}

func TestNewOrder_Validation(t *testing.T) {
	_, err := order.NewOrder(shared.CustomerID{}, salmon(t), nil, time.Second)
	assert.Error(t, err)

	_, err = order.NewOrder(shared.NewCustomerID(), nil, nil, time.Second)
	assert.Error(t, err)

	_, err = order.NewOrder(shared.NewCustomerID(), salmon(t), nil, 0)
	assert.Error(t, err)
}
