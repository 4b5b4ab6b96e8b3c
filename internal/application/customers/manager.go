package customers

import (
	"time"

	"github.com/andrescamacho/sushibar-go/internal/application/logging"
	"github.com/andrescamacho/sushibar-go/internal/application/scheduling"
	"github.com/andrescamacho/sushibar-go/internal/application/seating"
	"github.com/andrescamacho/sushibar-go/internal/domain/customer"
	"github.com/andrescamacho/sushibar-go/internal/domain/ports"
	"github.com/andrescamacho/sushibar-go/internal/domain/shared"
)

// ExitListener is told about every customer that leaves, after its seat is released
type ExitListener func(c *customer.Customer, reason ExitReason)

// PartyGoneListener is told when the last member of a party has left
type PartyGoneListener func(party *customer.Party)

// Dependencies groups the collaborators a Manager needs
type Dependencies struct {
	Profiles  []*customer.Profile
	Allocator *seating.Allocator
	Scheduler *scheduling.Scheduler
	Random    shared.RandomSource
	Clock     shared.Clock
	Notifier  ports.ViewNotifier
	Logger    logging.ServiceLogger
}

// Manager owns every customer and party of a service run. It spawns
// customers on a timer, seats or queues them, runs their timers and
// releases their seats when they leave.
type Manager struct {
	config    Config
	profiles  []*customer.Profile
	allocator *seating.Allocator
	scheduler *scheduling.Scheduler
	rng       shared.RandomSource
	clock     shared.Clock
	notifier  ports.ViewNotifier
	logger    logging.ServiceLogger

	customers map[shared.CustomerID]*customer.Customer
	order     []shared.CustomerID
	parties   map[shared.PartyID]*customer.Party
	ordering  map[shared.CustomerID]time.Duration

	running       bool
	spawnTimer    time.Duration
	uniqueSpawned map[string]bool
	spawned       int

	onExit      []ExitListener
	onPartyGone []PartyGoneListener
}

// NewManager wires a manager to its allocator
func NewManager(config Config, deps Dependencies) *Manager {
	if deps.Scheduler == nil {
		deps.Scheduler = scheduling.NewScheduler()
	}
	if deps.Clock == nil {
		deps.Clock = shared.NewRealClock()
	}
	if deps.Notifier == nil {
		deps.Notifier = ports.NoopNotifier{}
	}

	m := &Manager{
		config:        config,
		profiles:      deps.Profiles,
		allocator:     deps.Allocator,
		scheduler:     deps.Scheduler,
		rng:           deps.Random,
		clock:         deps.Clock,
		notifier:      deps.Notifier,
		logger:        logging.OrNoOp(deps.Logger),
		customers:     make(map[shared.CustomerID]*customer.Customer),
		parties:       make(map[shared.PartyID]*customer.Party),
		ordering:      make(map[shared.CustomerID]time.Duration),
		uniqueSpawned: make(map[string]bool),
	}

	m.allocator.OnSeated(m.handleSeated)
	m.allocator.OnOccupancy(m.handleOccupancy)
	return m
}

func (m *Manager) OnExit(fn ExitListener) {
	if fn != nil {
		m.onExit = append(m.onExit, fn)
	}
}

func (m *Manager) OnPartyGone(fn PartyGoneListener) {
	if fn != nil {
		m.onPartyGone = append(m.onPartyGone, fn)
	}
}

// Getters

func (m *Manager) IsRunning() bool { return m.running }
func (m *Manager) Count() int { return len(m.order) }
func (m *Manager) PartyCount() int { return len(m.parties) }
func (m *Manager) SpawnedTotal() int { return m.spawned }
func (m *Manager) Allocator() *seating.Allocator { return m.allocator }

// Get returns a present customer
func (m *Manager) Get(id shared.CustomerID) (*customer.Customer, bool) {
	c, ok := m.customers[id]
	return c, ok
}

// Customers returns present customers in arrival order
func (m *Manager) Customers() []*customer.Customer {
	out := make([]*customer.Customer, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.customers[id])
	}
	return out
}

// Party returns a present party
func (m *Manager) Party(id shared.PartyID) (*customer.Party, bool) {
	p, ok := m.parties[id]
	return p, ok
}

// Service lifecycle

// BeginService starts the spawn timer. The first spawn happens on the next tick.
func (m *Manager) BeginService() {
	m.running = true
	m.spawnTimer = 0
	m.uniqueSpawned = make(map[string]bool)
}

// EndService stops spawning, cancels pending respawns and sends queued
// parties home. Seated customers are left alone.
func (m *Manager) EndService() {
	m.running = false
	if n := m.scheduler.CancelAll(); n > 0 {
		m.logger.Log(logging.LevelDebug, "Cancelled pending spawns", map[string]interface{}{"count": n})
	}
	for _, partyID := range m.allocator.ClearQueue() {
		party, ok := m.parties[partyID]
		if !ok {
			continue
		}
		for _, id := range party.Members() {
			m.Leave(id, ExitServiceEnded)
		}
	}
}

// Tick advances customer timers, then the spawn timer
func (m *Manager) Tick(dt time.Duration) {
	ids := make([]shared.CustomerID, len(m.order))
	copy(ids, m.order)

	for _, id := range ids {
		c, ok := m.customers[id]
		if !ok {
			continue
		}
		m.tickCustomer(c, dt)
	}

	if !m.running {
		return
	}
	m.spawnTimer -= dt
	if m.spawnTimer > 0 {
		return
	}
	m.spawnTimer = m.config.SpawnInterval
	m.SpawnNext()
}

func (m *Manager) tickCustomer(c *customer.Customer, dt time.Duration) {
	if c.State() == customer.StateOrdering && m.config.OrderingDuration > 0 {
		m.ordering[c.ID()] += dt
		if m.ordering[c.ID()] >= m.config.OrderingDuration {
			delete(m.ordering, c.ID())
			if c.ReadyToOrder() {
				m.notifyState(c)
			}
		}
		return
	}

	switch c.Tick(dt) {
	case customer.TickPatienceExpired:
		m.logger.Log(logging.LevelInfo, "Customer ran out of patience", map[string]interface{}{
			"customer_id": c.ID().Short(),
			"state":       c.State().String(),
		})
		m.Leave(c.ID(), ExitPatience)
	case customer.TickFinishedEating:
		if c.FinishEating() {
			m.Leave(c.ID(), ExitFinished)
			return
		}
		m.notifyState(c)
	}
}

// Spawning

// SpawnNext picks a profile by weight and admits a new party. Returns false
// when no profile is eligible or the party could neither sit nor queue.
func (m *Manager) SpawnNext() bool {
	profile, ok := m.pickProfile()
	if !ok {
		m.logger.Log(logging.LevelWarn, "No eligible customer profile", map[string]interface{}{
			"day":      m.config.CurrentDay,
			"profiles": len(m.profiles),
		})
		return false
	}
	_, ok = m.SpawnParty(profile)
	return ok
}

// SpawnParty admits a party built from profile, seating it or queueing it
func (m *Manager) SpawnParty(profile *customer.Profile) (*customer.Party, bool) {
	size := profile.EffectivePartySize()
	partyID := shared.NewPartyID()
	members := make([]*customer.Customer, size)
	ids := make([]shared.CustomerID, size)
	patience := profile.PatienceOr(m.config.Patience)
	for i := range members {
		ids[i] = shared.NewCustomerID()
		members[i] = customer.New(ids[i], profile, partyID, patience, m.config.EatDuration)
	}

	party := customer.NewParty(partyID, profile, ids)
	m.parties[partyID] = party
	for _, c := range members {
		m.customers[c.ID()] = c
		m.order = append(m.order, c.ID())
	}

	result := m.allocator.Admit(partyID, ids)
	if result == seating.AdmitRejected {
		for _, id := range ids {
			m.forget(id)
		}
		delete(m.parties, partyID)
		return nil, false
	}

	m.spawned += size
	if profile.UniquePerDay {
		m.uniqueSpawned[profile.ID] = true
	}
	for _, c := range members {
		if c.State() == customer.StateEntering {
			m.notifyState(c)
		}
	}
	m.logger.Log(logging.LevelDebug, "Party arrived", map[string]interface{}{
		"party_id": partyID.Short(),
		"profile":  profile.ID,
		"size":     size,
		"result":   result.String(),
	})
	return party, true
}

func (m *Manager) pickProfile() (*customer.Profile, bool) {
	eligible := make([]*customer.Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		if p == nil || !p.IsAvailableOnDay(m.config.CurrentDay) {
			continue
		}
		if p.UniquePerDay && m.uniqueSpawned[p.ID] {
			continue
		}
		eligible = append(eligible, p)
	}
	return shared.WeightedPick(m.rng, eligible, func(p *customer.Profile) float64 { return p.SpawnWeight })
}

// Customer operations

// ReadyToOrder moves a seated customer to WaitingOrder
func (m *Manager) ReadyToOrder(id shared.CustomerID) bool {
	c, ok := m.customers[id]
	if !ok || !c.ReadyToOrder() {
		return false
	}
	delete(m.ordering, id)
	m.notifyState(c)
	return true
}

// AttachOrder records an order on a customer and starts the wait for food
func (m *Manager) AttachOrder(id shared.CustomerID, orderID shared.OrderID) bool {
	c, ok := m.customers[id]
	if !ok || !c.SetOrder(orderID) {
		return false
	}
	delete(m.ordering, id)
	m.notifyState(c)
	return true
}

// DeliverFood starts a customer eating
func (m *Manager) DeliverFood(id shared.CustomerID) bool {
	c, ok := m.customers[id]
	if !ok || !c.ReceiveFood() {
		return false
	}
	m.notifyState(c)
	return true
}

// SetEmotion changes a customer's displayed emotion
func (m *Manager) SetEmotion(id shared.CustomerID, e customer.Emotion) bool {
	c, ok := m.customers[id]
	if !ok {
		return false
	}
	c.SetEmotion(e)
	m.notifyState(c)
	return true
}

// Leave sends a customer home. The seat is released first so waiting
// parties can take it, then exit listeners run, then the customer is
// forgotten. A queued member takes the rest of its party home. A party's
// gone listeners fire once its last member has left.
func (m *Manager) Leave(id shared.CustomerID, reason ExitReason) bool {
	c, ok := m.customers[id]
	if !ok {
		return false
	}

	seat, seated := c.BeginLeaving()
	if seated {
		m.allocator.Release(seat)
	}
	m.notifyState(c)

	for _, fn := range m.onExit {
		fn(c, reason)
	}
	m.forget(id)

	party, ok := m.parties[c.PartyID()]
	if !ok {
		return true
	}
	gone := party.MemberLeft(id)
	if !seated {
		m.allocator.Dequeue(party.ID())
	}
	if !seated && !gone {
		// a queued party cannot be seated short a member
		for _, member := range party.Members() {
			if other, found := m.customers[member]; found && other.State() == customer.StateEntering {
				m.Leave(member, reason)
			}
		}
		return true
	}
	if gone {
		delete(m.parties, party.ID())
		for _, fn := range m.onPartyGone {
			fn(party)
		}
		m.scheduleRespawn(party)
	}
	return true
}

func (m *Manager) scheduleRespawn(party *customer.Party) {
	if !m.running {
		return
	}
	m.scheduler.After(m.config.RespawnDelay, "respawn:"+party.ID().Short(), func() {
		if m.running {
			m.SpawnNext()
		}
	})
}

func (m *Manager) forget(id shared.CustomerID) {
	delete(m.customers, id)
	delete(m.ordering, id)
	for i, o := range m.order {
		if o == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Allocator callbacks

func (m *Manager) handleSeated(_ shared.PartyID, assignments []seating.Assignment) {
	for _, as := range assignments {
		c, ok := m.customers[as.CustomerID]
		if !ok {
			continue
		}
		if c.AssignSeat(as.Seat) {
			m.notifyState(c)
		}
	}
}

func (m *Manager) handleOccupancy(seat customer.SeatID, id shared.CustomerID, occupied bool) {
	m.notifier.SeatOccupancyChanged(ports.SeatOccupancyChanged{
		Seat:       seat,
		CustomerID: id,
		Occupied:   occupied,
		Occupancy:  m.allocator.Occupancy(),
		Capacity:   m.allocator.Capacity(),
		Waiting:    m.allocator.QueueLen(),
		At:         m.clock.Now(),
	})
}

func (m *Manager) notifyState(c *customer.Customer) {
	seat, seated := c.Seat()
	profileID := ""
	if c.Profile() != nil {
		profileID = c.Profile().ID
	}
	m.notifier.CustomerStateChanged(ports.CustomerStateChanged{
		CustomerID:   c.ID(),
		PartyID:      c.PartyID(),
		ProfileID:    profileID,
		DisplayName:  c.DisplayName(),
		State:        c.State(),
		Emotion:      c.Emotion(),
		Seat:         seat,
		Seated:       seated,
		Conversation: c.Conversation(),
		At:           m.clock.Now(),
	})
}
