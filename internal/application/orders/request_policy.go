package orders

import (
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// RandomRequest applies the custom-request policy: a first roll above
// threshold means no request; otherwise a second roll picks one of four
// equal buckets (rice-less, thick fish, more wasabi, soft press).
func RandomRequest(rng shared.RandomSource, threshold float64) *sushi.CustomRequest {
	if rng.Float64() > threshold {
		return nil
	}

	sub := rng.Float64()
	switch {
	case sub < 0.25:
		return sushi.RiceLess(sushi.RiceLessOffset)
	case sub < 0.5:
		return sushi.ThickFish(sushi.ThickFishOffset)
	case sub < 0.75:
		return sushi.MoreWasabi(sushi.MoreWasabiOffset)
	default:
		return sushi.SoftPress(sushi.SoftPressOffset)
	}
}
