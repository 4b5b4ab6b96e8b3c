package customer

import "github.com/andrescamacho/sushibar-go/internal/domain/shared"

// Party is a group that arrives together and frees its table only when
// every member has left.
type Party struct {
	id       shared.PartyID
	profile  *Profile
	members  []shared.CustomerID
	departed map[shared.CustomerID]bool
}

func NewParty(id shared.PartyID, profile *Profile, members []shared.CustomerID) *Party {
	m := make([]shared.CustomerID, len(members))
	copy(m, members)
	return &Party{
		id:       id,
		profile:  profile,
		members:  m,
		departed: make(map[shared.CustomerID]bool, len(members)),
	}
}

func (p *Party) ID() shared.PartyID { return p.id }
func (p *Party) Profile() *Profile { return p.profile }
func (p *Party) Size() int { return len(p.members) }

// Members returns a copy of the member ids
func (p *Party) Members() []shared.CustomerID {
	out := make([]shared.CustomerID, len(p.members))
	copy(out, p.members)
	return out
}

// MemberLeft records a departure and reports whether the whole party is gone.
// Repeated or unknown ids are ignored.
func (p *Party) MemberLeft(id shared.CustomerID) bool {
	if p.contains(id) {
		p.departed[id] = true
	}
	return p.IsGone()
}

// IsGone reports whether every member has left
func (p *Party) IsGone() bool {
	return len(p.departed) == len(p.members)
}

func (p *Party) Remaining() int {
	return len(p.members) - len(p.departed)
}

func (p *Party) contains(id shared.CustomerID) bool {
	for _, m := range p.members {
		if m == id {
			return true
		}
	}
	return false
}
