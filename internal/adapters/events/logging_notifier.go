package events

import (
	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
)

// LoggingNotifier writes view events to a ServiceLogger. Order outcomes are
// logged at info, everything else at debug.
type LoggingNotifier struct {
	logger logging.ServiceLogger
}

var _ ports.ViewNotifier = (*LoggingNotifier)(nil)

func NewLoggingNotifier(logger logging.ServiceLogger) *LoggingNotifier {
	return &LoggingNotifier{logger: logging.OrNoOp(logger)}
}

func (n *LoggingNotifier) CustomerStateChanged(e ports.CustomerStateChanged) {
	n.logger.Log(logging.LevelDebug, "Customer state changed", map[string]interface{}{
		"customer_id": e.CustomerID.Short(),
		"profile":     e.ProfileID,
		"state":       e.State.String(),
		"emotion":     string(e.Emotion),
	})
}

func (n *LoggingNotifier) OrderPlaced(e ports.OrderPlaced) {
	n.logger.Log(logging.LevelDebug, "Order placed", map[string]interface{}{
		"order_id":    e.OrderID.Short(),
		"customer_id": e.CustomerID.Short(),
		"recipe":      e.Recipe,
		"request":     e.Request,
	})
}

func (n *LoggingNotifier) OrderResolved(e ports.OrderResolved) {
	n.logger.Log(logging.LevelInfo, "Order resolved", map[string]interface{}{
		"order_id":  e.OrderID.Short(),
		"recipe":    e.Recipe,
		"result":    e.Result.String(),
		"quality":   e.Quality,
		"delta":     e.Delta,
		"total":     e.Total,
		"timed_out": e.TimedOut,
	})
}

func (n *LoggingNotifier) SeatOccupancyChanged(e ports.SeatOccupancyChanged) {
	n.logger.Log(logging.LevelDebug, "Seat occupancy changed", map[string]interface{}{
		"seat":      int(e.Seat),
		"occupied":  e.Occupied,
		"occupancy": e.Occupancy,
		"waiting":   e.Waiting,
	})
}

func (n *LoggingNotifier) ModeChanged(e ports.ModeChanged) {
	n.logger.Log(logging.LevelDebug, "Mode changed", map[string]interface{}{
		"from":    string(e.From),
		"to":      string(e.To),
		"station": string(e.Station),
	})
}

func (n *LoggingNotifier) SeatSelected(e ports.SeatSelected) {
	n.logger.Log(logging.LevelDebug, "Seat selected", map[string]interface{}{"seat": int(e.Seat)})
}
