package events_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/andrescamacho/sushibar-go/internal/adapters/events"
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/game"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

type message struct {
	subject string
	data    string
}

type fakePublisher struct {
	messages []message
	err      error
}

func (p *fakePublisher) Publish(subject string, data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, message{subject: subject, data: string(data)})
	return nil
}

func TestNotifier_PublishesOrderResolved(t *testing.T) {
	// Arrange
	pub := &fakePublisher{}
	notifier := events.NewNotifier(pub, "sushibar", nil)
	orderID := shared.NewOrderID()

	// Act
	notifier.OrderResolved(ports.OrderResolved{
		OrderID:  orderID,
		Recipe:   "Eel Nigiri",
		Result:   sushi.ResultGood,
		Quality:  0.75,
		Delta:    112,
		Reaction: score.ReactionHappy,
		Total:    112,
		At:       time.Unix(5, 0).UTC(),
	})

	// Assert
	require.Len(t, pub.messages, 1)
	msg := pub.messages[0]
	assert.Equal(t, "sushibar.order.resolved", msg.subject)
	assert.Equal(t, orderID.String(), gjson.Get(msg.data, "order_id").String())
	assert.Equal(t, "GOOD", gjson.Get(msg.data, "result").String())
	assert.Equal(t, int64(112), gjson.Get(msg.data, "delta").Int())
	assert.Equal(t, "HAPPY", gjson.Get(msg.data, "reaction").String())
}

func TestNotifier_CustomerSeatOmittedWhenQueued(t *testing.T) {
	pub := &fakePublisher{}
	notifier := events.NewNotifier(pub, "", nil)

	notifier.CustomerStateChanged(ports.CustomerStateChanged{State: customer.StateEntering, Emotion: customer.EmotionNeutral})
	notifier.CustomerStateChanged(ports.CustomerStateChanged{State: customer.StateOrdering, Seat: 2, Seated: true})

	require.Len(t, pub.messages, 2)
	assert.Equal(t, "customer.state", pub.messages[0].subject)
	assert.False(t, gjson.Get(pub.messages[0].data, "seat").Exists())
	assert.Equal(t, int64(2), gjson.Get(pub.messages[1].data, "seat").Int())
	assert.Equal(t, "ORDERING", gjson.Get(pub.messages[1].data, "state").String())
}

func TestNotifier_PublishFailureIsLogged(t *testing.T) {
	// Arrange
	recorder := logging.NewRecorder()
	notifier := events.NewNotifier(&fakePublisher{err: errors.New("nats: connection closed")}, "sushibar", recorder)

	// Act
	notifier.ModeChanged(ports.ModeChanged{From: game.ModePlaying, To: game.ModeCrafting})

	// Assert
	assert.Equal(t, 1, recorder.Count(logging.LevelWarn))
	assert.Equal(t, "sushibar.mode.changed", recorder.Entries()[0].Metadata["subject"])
}

func TestLoggingNotifier_LogsOutcomesAtInfo(t *testing.T) {
	recorder := logging.NewRecorder()
	notifier := events.NewLoggingNotifier(recorder)

	notifier.OrderResolved(ports.OrderResolved{Recipe: "Tamago", Result: sushi.ResultFail, TimedOut: true})
	notifier.SeatSelected(ports.SeatSelected{Seat: 1})

	assert.Equal(t, 1, recorder.Count(logging.LevelInfo))
	assert.Equal(t, 1, recorder.Count(logging.LevelDebug))
}
