package customer

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/domain/sushi"
)

// DefaultProfiles is the built-in cast used when no profiles are stored
func DefaultProfiles() []*Profile {
	walkIn := NewProfile("walk_in", "Walk-in")
	walkIn.SpawnWeight = 3
	walkIn.Conversations = Conversations{
		Greeting: "walk_in_greeting",
		Farewell: "walk_in_farewell",
	}

	couple := NewProfile("couple", "Couple")
	couple.PartySize = 2
	couple.SpawnWeight = 1
	couple.MinDay = 2

	regular := NewProfile("regular", "Regular")
	regular.Type = TypeRegular
	regular.SpawnWeight = 1.5
	regular.Patience = 14 * time.Second
	regular.CanMakeMultipleOrders = true
	regular.MaxOrders = 2
	regular.OrderPresets = []OrderPreset{
		{OrderID: "usual", RecipeName: "Salmon Nigiri", Weight: 3},
		{OrderID: "light", RecipeName: "Tuna Nigiri", Request: sushi.RiceLess(sushi.RiceLessOffset), Weight: 1},
	}
	regular.Conversations = Conversations{
		Greeting:        "regular_greeting",
		FirstOrder:      "regular_first_order",
		AdditionalOrder: "regular_additional_order",
		RepeatCustomer:  "regular_repeat",
		Farewell:        "regular_farewell",
	}

	critic := NewProfile("critic", "Food Critic")
	critic.Type = TypeSpecial
	critic.SpawnWeight = 0.3
	critic.UniquePerDay = true
	critic.Patience = 8 * time.Second
	critic.CustomOrderProbability = 0.8
	critic.MinDay = 3

	return []*Profile{walkIn, couple, regular, critic}
}
