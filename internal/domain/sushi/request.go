package sushi

import (
	"fmt"
	"strings"
)

// RequestType names the built-in custom requests
type RequestType string

const (
	RequestRiceLess   RequestType = "RiceLess"
	RequestThickFish  RequestType = "ThickFish"
	RequestMoreWasabi RequestType = "MoreWasabi"
	RequestSoftPress  RequestType = "SoftPress"
)

// Default offsets for the named requests
const (
	RiceLessOffset   = -0.3
	ThickFishOffset  = 0.3
	MoreWasabiOffset = 0.4
	SoftPressOffset  = -0.3
)

// AllRequestTypes lists the built-in requests in bucket order
func AllRequestTypes() []RequestType {
	return []RequestType{RequestRiceLess, RequestThickFish, RequestMoreWasabi, RequestSoftPress}
}

type adjustment struct {
	present bool
	offset  float64
}

// CustomRequest shifts the ideal of selected dimensions. Immutable.
type CustomRequest struct {
	label       string
	adjustments [4]adjustment
}

// NewCustomRequest builds a request from arbitrary per-dimension offsets
func NewCustomRequest(label string, offsets map[Dimension]float64) *CustomRequest {
	r := &CustomRequest{label: label}
	for d, o := range offsets {
		if d < DimensionFishThickness || d > DimensionWasabiAmount {
			continue
		}
		r.adjustments[d] = adjustment{present: true, offset: o}
	}
	return r
}

func RiceLess(offset float64) *CustomRequest {
	return NewCustomRequest(string(RequestRiceLess), map[Dimension]float64{DimensionRiceAmount: offset})
}

func ThickFish(offset float64) *CustomRequest {
	return NewCustomRequest(string(RequestThickFish), map[Dimension]float64{DimensionFishThickness: offset})
}

func MoreWasabi(offset float64) *CustomRequest {
	return NewCustomRequest(string(RequestMoreWasabi), map[Dimension]float64{DimensionWasabiAmount: offset})
}

func SoftPress(offset float64) *CustomRequest {
	return NewCustomRequest(string(RequestSoftPress), map[Dimension]float64{DimensionPressDuration: offset})
}

// NewRequest returns the named request with its default offset
func NewRequest(t RequestType) (*CustomRequest, error) {
	switch t {
	case RequestRiceLess:
		return RiceLess(RiceLessOffset), nil
	case RequestThickFish:
		return ThickFish(ThickFishOffset), nil
	case RequestMoreWasabi:
		return MoreWasabi(MoreWasabiOffset), nil
	case RequestSoftPress:
		return SoftPress(SoftPressOffset), nil
	default:
		return nil, fmt.Errorf("unknown request type: %s", t)
	}
}

// ParseRequestType maps a request name to its type, ignoring case
func ParseRequestType(name string) (RequestType, error) {
	name = strings.TrimSpace(name)
	for _, t := range AllRequestTypes() {
		if strings.EqualFold(string(t), name) {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown request type: %q", name)
}

// Has reports whether the request adjusts dimension d
func (r *CustomRequest) Has(d Dimension) bool {
	if r == nil || d < DimensionFishThickness || d > DimensionWasabiAmount {
		return false
	}
	return r.adjustments[d].present
}

// Offset returns the offset for d, zero when absent
func (r *CustomRequest) Offset(d Dimension) float64 {
	if !r.Has(d) {
		return 0
	}
	return r.adjustments[d].offset
}

// HasAny reports whether at least one dimension is adjusted
func (r *CustomRequest) HasAny() bool {
	if r == nil {
		return false
	}
	for _, a := range r.adjustments {
		if a.present {
			return true
		}
	}
	return false
}

// Label returns the request's display name
func (r *CustomRequest) Label() string {
	if r == nil {
		return ""
	}
	return r.label
}

func (r *CustomRequest) String() string {
	if r == nil {
		return "none"
	}
	parts := make([]string, 0, 4)
	for _, d := range AllDimensions() {
		if r.Has(d) {
			parts = append(parts, fmt.Sprintf("%s%+.2f", d, r.Offset(d)))
		}
	}
	return fmt.Sprintf("%s(%s)", r.label, strings.Join(parts, ","))
}
