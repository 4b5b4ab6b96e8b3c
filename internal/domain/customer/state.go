package customer

import (
	"fmt"
	"strings"
)

// State is the customer lifecycle state
type State int

const (
	StateNone State = iota
	StateEntering
	StateOrdering
	StateWaitingOrder
	StateWaitingFood
	StateEating
	StateLeaving
)

func (s State) String() string {
	switch s {
	case StateEntering:
		return "ENTERING"
	case StateOrdering:
		return "ORDERING"
	case StateWaitingOrder:
		return "WAITING_ORDER"
	case StateWaitingFood:
		return "WAITING_FOOD"
	case StateEating:
		return "EATING"
	case StateLeaving:
		return "LEAVING"
	default:
		return "NONE"
	}
}

// IsWaiting reports whether patience counts down in this state
func (s State) IsWaiting() bool {
	return s == StateWaitingOrder || s == StateWaitingFood
}

// Emotion is the expression presentation shows for a customer
type Emotion string

const (
	EmotionNeutral   Emotion = "Neutral"
	EmotionHappy     Emotion = "Happy"
	EmotionVeryHappy Emotion = "VeryHappy"
	EmotionSad       Emotion = "Sad"
	EmotionAngry     Emotion = "Angry"
	EmotionSurprised Emotion = "Surprised"
)

// AllEmotions returns every known emotion
func AllEmotions() []Emotion {
	return []Emotion{EmotionNeutral, EmotionHappy, EmotionVeryHappy, EmotionSad, EmotionAngry, EmotionSurprised}
}

// ParseEmotion parses an emotion name, ignoring case
func ParseEmotion(s string) (Emotion, error) {
	s = strings.TrimSpace(s)
	for _, e := range AllEmotions() {
		if strings.EqualFold(string(e), s) {
			return e, nil
		}
	}
	return "", fmt.Errorf("invalid emotion: %q", s)
}

// Type classifies a customer for spawn and dialogue purposes
type Type string

const (
	TypeNormal  Type = "NORMAL"
	TypeRegular Type = "REGULAR"
	TypeSpecial Type = "SPECIAL"
)

// ParseType parses a customer type, defaulting empty input to Normal
func ParseType(s string) (Type, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", string(TypeNormal):
		return TypeNormal, nil
	case string(TypeRegular):
		return TypeRegular, nil
	case string(TypeSpecial):
		return TypeSpecial, nil
	default:
		return "", fmt.Errorf("invalid customer type: %s", s)
	}
}
