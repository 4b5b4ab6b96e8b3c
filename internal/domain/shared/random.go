package shared

import "math/rand/v2"

// RandomSource is the only source of randomness in the simulation.
// *rand.Rand from math/rand/v2 satisfies it; tests inject SequenceRandom.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1)
	Float64() float64
	// IntN returns a uniform value in [0, n)
	IntN(n int) int
}

// NewSeededRandom returns a deterministic RandomSource for the given seed
func NewSeededRandom(seed uint64) RandomSource {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WeightedIndex picks an index with probability proportional to its weight.
// Non-positive weights are never picked. Returns -1 when no weight is positive.
func WeightedIndex(rng RandomSource, weights []float64) int {
	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return -1
	}

	roll := rng.Float64() * total
	last := -1
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		last = i
		if roll < w {
			return i
		}
		roll -= w
	}

	// Float rounding can leave roll marginally above the final bucket
	return last
}

// WeightedPick returns an item chosen by WeightedIndex over weight(item)
func WeightedPick[T any](rng RandomSource, items []T, weight func(T) float64) (T, bool) {
	weights := make([]float64, len(items))
	for i, item := range items {
		weights[i] = weight(item)
	}

	idx := WeightedIndex(rng, weights)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return items[idx], true
}

// SequenceRandom replays a fixed list of rolls, cycling when exhausted.
// IntN maps the next roll onto [0, n).
type SequenceRandom struct {
	rolls []float64
	next  int
}

// NewSequenceRandom creates a SequenceRandom over rolls (each expected in [0, 1))
func NewSequenceRandom(rolls ...float64) *SequenceRandom {
	if len(rolls) == 0 {
		rolls = []float64{0}
	}
	return &SequenceRandom{rolls: rolls}
}

func (s *SequenceRandom) Float64() float64 {
	v := s.rolls[s.next%len(s.rolls)]
	s.next++
	return v
}

func (s *SequenceRandom) IntN(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(s.Float64() * float64(n))
	if i >= n {
		i = n - 1
	}
	return i
}
