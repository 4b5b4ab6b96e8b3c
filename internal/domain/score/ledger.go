package score

import (
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
	"github.com/andrescamacho/sushibar-go/pkg/utils"
)

// Reaction is how a customer feels about a served dish
type Reaction string

const (
	ReactionVeryHappy Reaction = "VERY_HAPPY"
	ReactionHappy     Reaction = "HAPPY"
	ReactionNeutral   Reaction = "NEUTRAL"
	ReactionAngry     Reaction = "ANGRY"
)

// Multiplier ranges per result
const (
	PerfectMultiplierMin = 0.8
	PerfectMultiplierMax = 1.2
	GoodMultiplierMin    = 0.4
	GoodMultiplierMax    = 0.8
	FailMultiplier       = -0.5
)

// ReactionListener receives the classified reaction for a scored dish
type ReactionListener func(customerID shared.CustomerID, reaction Reaction)

// Ledger aggregates order outcomes for one service run
type Ledger struct {
	total      int
	completed  int
	failed     int
	qualitySum float64
	listeners  []ReactionListener
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// OnReaction registers a listener
func (l *Ledger) OnReaction(fn ReactionListener) {
	if fn != nil {
		l.listeners = append(l.listeners, fn)
	}
}

// Reset clears the totals. Listeners are kept.
func (l *Ledger) Reset() {
	l.total = 0
	l.completed = 0
	l.failed = 0
	l.qualitySum = 0
}

func (l *Ledger) Total() int { return l.total }
func (l *Ledger) Completed() int { return l.completed }
func (l *Ledger) Failed() int { return l.failed }

// Average returns the mean quality of non-failed orders
func (l *Ledger) Average() float64 {
	if l.completed <= 0 {
		return 0
	}
	return l.qualitySum / float64(l.completed)
}

// ApplyResult scores one outcome and notifies listeners. A nil recipe is ignored.
func (l *Ledger) ApplyResult(customerID shared.CustomerID, recipe *sushi.Recipe, result sushi.Result, quality float64) (int, Reaction) {
	if recipe == nil {
		return 0, ""
	}

	delta := Delta(recipe.BaseScore(), result, quality)
	l.total += delta

	if result == sushi.ResultFail {
		l.failed++
	} else {
		l.completed++
		l.qualitySum += quality
	}

	reaction := Classify(result, quality)
	if !customerID.IsZero() {
		for _, fn := range l.listeners {
			fn(customerID, reaction)
		}
	}
	return delta, reaction
}

// Multiplier returns the base-score multiplier for a result
func Multiplier(result sushi.Result, quality float64) float64 {
	switch result {
	case sushi.ResultPerfect:
		return utils.Lerp(PerfectMultiplierMin, PerfectMultiplierMax, quality)
	case sushi.ResultGood:
		return utils.Lerp(GoodMultiplierMin, GoodMultiplierMax, quality)
	case sushi.ResultFail:
		return FailMultiplier
	default:
		return 0
	}
}

// Delta rounds baseScore*multiplier half to even
func Delta(baseScore int, result sushi.Result, quality float64) int {
	return utils.RoundToInt(float64(baseScore) * Multiplier(result, quality))
}

// Classify maps an outcome onto a customer reaction
func Classify(result sushi.Result, quality float64) Reaction {
	switch {
	case result == sushi.ResultFail:
		return ReactionAngry
	case quality >= 0.9:
		return ReactionVeryHappy
	case quality >= 0.7:
		return ReactionHappy
	case quality >= 0.4:
		return ReactionNeutral
	default:
		return ReactionAngry
	}
}
