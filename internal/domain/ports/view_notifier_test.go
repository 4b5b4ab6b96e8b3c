package ports_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
)

type countingNotifier struct {
	ports.NoopNotifier
	modes []game.Mode
}

func (c *countingNotifier) ModeChanged(e ports.ModeChanged) {
	c.modes = append(c.modes, e.To)
}

func TestMultiNotifier_FansOutAndSkipsNil(t *testing.T) {
	// Arrange
	a, b := &countingNotifier{}, &countingNotifier{}
	multi := ports.NewMultiNotifier(a, nil, b)

	// Act
	multi.ModeChanged(ports.ModeChanged{From: game.ModePlaying, To: game.ModeCrafting})
	multi.SeatSelected(ports.SeatSelected{Seat: 1})

	// Assert
	assert.Len(t, multi, 2)
	assert.Equal(t, []game.Mode{game.ModeCrafting}, a.modes)
	assert.Equal(t, []game.Mode{game.ModeCrafting}, b.modes)
}
