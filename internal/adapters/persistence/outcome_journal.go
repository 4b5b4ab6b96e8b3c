package persistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
)

// OutcomeJournal writes every resolved order to the order_outcomes table.
// The simulation never reads outcomes back; Outcomes exists for reports.
type OutcomeJournal struct {
	ports.NoopNotifier

	db    *gorm.DB
	runID string
	// onError receives write failures; the tick loop never sees them
	onError func(error)
}

func NewOutcomeJournal(db *gorm.DB, runID string, onError func(error)) *OutcomeJournal {
	if onError == nil {
		onError = func(error) {}
	}
	return &OutcomeJournal{db: db, runID: runID, onError: onError}
}

// OrderResolved records one outcome
func (j *OutcomeJournal) OrderResolved(e ports.OrderResolved) {
	model := &OrderOutcomeModel{
		RunID:      j.runID,
		OrderID:    e.OrderID.String(),
		CustomerID: e.CustomerID.String(),
		Recipe:     e.Recipe,
		Result:     e.Result.String(),
		Quality:    e.Quality,
		Delta:      e.Delta,
		Reaction:   string(e.Reaction),
		Total:      e.Total,
		TimedOut:   e.TimedOut,
		ResolvedAt: e.At,
	}
	if err := j.db.Create(model).Error; err != nil {
		j.onError(fmt.Errorf("failed to journal outcome %s: %w", e.OrderID.Short(), err))
	}
}

// Outcomes lists a run's journal in resolution order
func (j *OutcomeJournal) Outcomes(ctx context.Context) ([]OrderOutcomeModel, error) {
	var models []OrderOutcomeModel
	err := j.db.WithContext(ctx).Where("run_id = ?", j.runID).Order("id ASC").Find(&models).Error
	return models, err
}
