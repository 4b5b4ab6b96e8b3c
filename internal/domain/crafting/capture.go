package crafting

import "time"

// CaptureStrategy turns held time into a parameter value.
// Value may exceed 1 while held; the session clamps it on release.
type CaptureStrategy interface {
	Start()
	Advance(dt time.Duration)
	Value() float64
}

// LinearHold accumulates Rate units per second from zero
type LinearHold struct {
	Rate  float64
	value float64
}

func NewLinearHold(ratePerSecond float64) *LinearHold {
	return &LinearHold{Rate: ratePerSecond}
}

func (l *LinearHold) Start() { l.value = 0 }
func (l *LinearHold) Advance(dt time.Duration) { l.value += l.Rate * dt.Seconds() }
func (l *LinearHold) Value() float64 { return l.value }

// PingPongHold sweeps 0 -> 1 -> 0 over one Period, for timing mini-games
type PingPongHold struct {
	Period  time.Duration
	elapsed time.Duration
}

func NewPingPongHold(period time.Duration) *PingPongHold {
	return &PingPongHold{Period: period}
}

func (p *PingPongHold) Start() { p.elapsed = 0 }
func (p *PingPongHold) Advance(dt time.Duration) { p.elapsed += dt }

func (p *PingPongHold) Value() float64 {
	if p.Period <= 0 {
		return 0
	}
	phase := float64(p.elapsed%p.Period) / float64(p.Period)
	if phase <= 0.5 {
		return phase * 2
	}
	return (1 - phase) * 2
}
