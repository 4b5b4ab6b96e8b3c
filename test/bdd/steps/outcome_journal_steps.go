package steps

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cucumber/godog"

	"github.com/andrescamacho/sushibar-go/internal/adapters/persistence"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/score"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/test/helpers"
)

// outcomeJournalContext writes through the shared test database
type outcomeJournalContext struct {
	journal     *persistence.OutcomeJournal
	writeErrors []error
	clock       *shared.SimulationClock
	outcomes    []persistence.OrderOutcomeModel
}

func (jc *outcomeJournalContext) reset() {
	jc.journal = nil
	jc.writeErrors = nil
	jc.clock = shared.NewSimulationClock(time.Date(2026, 1, 1, 18, 0, 0, 0, time.UTC))
	jc.outcomes = nil
}

// Given steps

func (jc *outcomeJournalContext) aCleanDatabase() error {
	return helpers.TruncateAllTables()
}

func (jc *outcomeJournalContext) anOutcomeJournalForRun(runID string) error {
	if helpers.SharedTestDB == nil {
		return fmt.Errorf("shared test database not initialized")
	}
	jc.journal = persistence.NewOutcomeJournal(helpers.SharedTestDB, runID, func(err error) {
		jc.writeErrors = append(jc.writeErrors, err)
	})
	return nil
}

// When steps

func (jc *outcomeJournalContext) theJournalRecordsTheOutcomes(table *godog.Table) error {
	for i, row := range table.Rows {
		if i == 0 {
			continue // Skip header
		}

		result, err := parseResult(getCellValueFromTable(table, row, "result"))
		if err != nil {
			return err
		}
		quality, err := strconv.ParseFloat(getCellValueFromTable(table, row, "quality"), 64)
		if err != nil {
			return err
		}
		delta, err := strconv.Atoi(getCellValueFromTable(table, row, "delta"))
		if err != nil {
			return err
		}
		total, err := strconv.Atoi(getCellValueFromTable(table, row, "total"))
		if err != nil {
			return err
		}
		timedOut, err := strconv.ParseBool(getCellValueFromTable(table, row, "timed_out"))
		if err != nil {
			return err
		}

		jc.clock.Advance(time.Second)
		jc.journal.OrderResolved(ports.OrderResolved{
			OrderID:    shared.NewOrderID(),
			CustomerID: shared.NewCustomerID(),
			Recipe:     getCellValueFromTable(table, row, "recipe"),
			Result:     result,
			Quality:    quality,
			Delta:      delta,
			Reaction:   score.Classify(result, quality),
			Total:      total,
			TimedOut:   timedOut,
			At:         jc.clock.Now(),
		})
	}

	if len(jc.writeErrors) > 0 {
		return fmt.Errorf("journal write failed: %w", jc.writeErrors[0])
	}
	return nil
}

// Then steps

func (jc *outcomeJournalContext) theJournalShouldListOutcomes(expected int) error {
	outcomes, err := jc.journal.Outcomes(context.Background())
	if err != nil {
		return err
	}
	jc.outcomes = outcomes
	if len(outcomes) != expected {
		return fmt.Errorf("expected %d outcomes, got %d", expected, len(outcomes))
	}
	return nil
}

func (jc *outcomeJournalContext) entry(position int) (persistence.OrderOutcomeModel, error) {
	if position < 1 || position > len(jc.outcomes) {
		return persistence.OrderOutcomeModel{}, fmt.Errorf("no journal entry %d among %d", position, len(jc.outcomes))
	}
	return jc.outcomes[position-1], nil
}

func (jc *outcomeJournalContext) journalEntryShouldBeWithResult(position int, recipe, result string) error {
	e, err := jc.entry(position)
	if err != nil {
		return err
	}
	if e.Recipe != recipe || e.Result != result {
		return fmt.Errorf("expected entry %d to be %s/%s, got %s/%s", position, recipe, result, e.Recipe, e.Result)
	}
	return nil
}

func (jc *outcomeJournalContext) journalEntryShouldBeMarkedAsTimedOut(position int) error {
	e, err := jc.entry(position)
	if err != nil {
		return err
	}
	if !e.TimedOut {
		return fmt.Errorf("expected entry %d to be marked as timed out", position)
	}
	return nil
}

func InitializeOutcomeJournalScenario(ctx *godog.ScenarioContext) {
	jc := &outcomeJournalContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		jc.reset()
		return ctx, nil
	})

	ctx.Step(`^a clean database$`, jc.aCleanDatabase)
	ctx.Step(`^an outcome journal for run "([^"]*)"$`, jc.anOutcomeJournalForRun)

	ctx.Step(`^the journal records the outcomes:$`, jc.theJournalRecordsTheOutcomes)

	ctx.Step(`^the journal should list (\d+) outcomes$`, jc.theJournalShouldListOutcomes)
	ctx.Step(`^journal entry (\d+) should be "([^"]*)" with result "([^"]*)"$`, jc.journalEntryShouldBeWithResult)
	ctx.Step(`^journal entry (\d+) should be marked as timed out$`, jc.journalEntryShouldBeMarkedAsTimedOut)
}
