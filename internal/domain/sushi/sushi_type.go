package sushi

import (
	"fmt"
	"strings"
)

// SushiType identifies the kind of dish a recipe produces
type SushiType string

const (
	SushiTypeSalmon     SushiType = "SALMON"
	SushiTypeTuna       SushiType = "TUNA"
	SushiTypeShrimp     SushiType = "SHRIMP"
	SushiTypeEel        SushiType = "EEL"
	SushiTypeEgg        SushiType = "EGG"
	SushiTypeYellowtail SushiType = "YELLOWTAIL"
)

// AllSushiTypes returns all valid sushi types
func AllSushiTypes() []SushiType {
	return []SushiType{
		SushiTypeSalmon,
		SushiTypeTuna,
		SushiTypeShrimp,
		SushiTypeEel,
		SushiTypeEgg,
		SushiTypeYellowtail,
	}
}

func (t SushiType) String() string {
	return string(t)
}

// IsValid checks if the sushi type is known
func (t SushiType) IsValid() bool {
	for _, known := range AllSushiTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// ParseSushiType parses a sushi type name case-insensitively
func ParseSushiType(s string) (SushiType, error) {
	t := SushiType(strings.ToUpper(strings.TrimSpace(s)))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid sushi type: %s", s)
	}
	return t, nil
}
