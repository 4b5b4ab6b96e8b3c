package sushi

import (
	"fmt"
	"strings"

	"github.com/andrescamacho/sushibar-go/pkg/utils"
)

// Dimension identifies one axis of ProcessParameters
type Dimension int

const (
	DimensionFishThickness Dimension = iota
	DimensionRiceAmount
	DimensionPressDuration
	DimensionWasabiAmount
)

// AllDimensions returns the four dimensions in evaluation order
func AllDimensions() []Dimension {
	return []Dimension{
		DimensionFishThickness,
		DimensionRiceAmount,
		DimensionPressDuration,
		DimensionWasabiAmount,
	}
}

func (d Dimension) String() string {
	switch d {
	case DimensionFishThickness:
		return "fish_thickness"
	case DimensionRiceAmount:
		return "rice_amount"
	case DimensionPressDuration:
		return "press_duration"
	case DimensionWasabiAmount:
		return "wasabi_amount"
	default:
		return fmt.Sprintf("dimension(%d)", int(d))
	}
}

// ParseDimension accepts the snake_case names produced by String, case-insensitively
func ParseDimension(s string) (Dimension, error) {
	for _, d := range AllDimensions() {
		if strings.EqualFold(d.String(), strings.TrimSpace(s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown dimension: %q", s)
}

// ProcessParameters is the four-dimensional value a crafting session produces.
// Bounds are not enforced here; producers normalize.
type ProcessParameters struct {
	FishThickness float64
	RiceAmount    float64
	PressDuration float64
	WasabiAmount  float64
}

// UniformParameters returns parameters with every dimension set to v
func UniformParameters(v float64) ProcessParameters {
	return ProcessParameters{FishThickness: v, RiceAmount: v, PressDuration: v, WasabiAmount: v}
}

// Get returns the value of one dimension
func (p ProcessParameters) Get(d Dimension) float64 {
	switch d {
	case DimensionFishThickness:
		return p.FishThickness
	case DimensionRiceAmount:
		return p.RiceAmount
	case DimensionPressDuration:
		return p.PressDuration
	case DimensionWasabiAmount:
		return p.WasabiAmount
	default:
		return 0
	}
}

// With returns a copy with one dimension replaced
func (p ProcessParameters) With(d Dimension, v float64) ProcessParameters {
	switch d {
	case DimensionFishThickness:
		p.FishThickness = v
	case DimensionRiceAmount:
		p.RiceAmount = v
	case DimensionPressDuration:
		p.PressDuration = v
	case DimensionWasabiAmount:
		p.WasabiAmount = v
	}
	return p
}

// Clamped returns a copy with every dimension clamped to [0, 1]
func (p ProcessParameters) Clamped() ProcessParameters {
	return ProcessParameters{
		FishThickness: utils.Clamp01(p.FishThickness),
		RiceAmount:    utils.Clamp01(p.RiceAmount),
		PressDuration: utils.Clamp01(p.PressDuration),
		WasabiAmount:  utils.Clamp01(p.WasabiAmount),
	}
}

func (p ProcessParameters) String() string {
	return fmt.Sprintf("fish=%.2f rice=%.2f press=%.2f wasabi=%.2f",
		p.FishThickness, p.RiceAmount, p.PressDuration, p.WasabiAmount)
}
