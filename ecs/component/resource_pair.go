package component

import "fmt"

// PairPhase is the explicit lifecycle tag of the healer/stealer pair. It is the
// only source of truth for which of the two entities exist.
type PairPhase uint8

const (
	PairAbsent PairPhase = iota
	PairHealerPresent
	PairStealerPursuing
	PairCarrying
	PairAttacking
)

func (p PairPhase) String() string {
	switch p {
	case PairAbsent:
		return "absent"
	case PairHealerPresent:
		return "healer_present"
	case PairStealerPursuing:
		return "stealer_pursuing"
	case PairCarrying:
		return "carrying"
	case PairAttacking:
		return "attacking"
	}
	return fmt.Sprintf("PairPhase(%d)", uint8(p))
}

// ResourcePair owns the optional healer and stealer. Every transition is a single
// method call so the two references can never disagree with the phase.
type ResourcePair struct {
	phase      PairPhase
	healer     *Healer
	stealer    *Stealer
	phaseTicks int
}

func (p *ResourcePair) Phase() PairPhase { return p.phase }

func (p *ResourcePair) Healer() *Healer { return p.healer }

func (p *ResourcePair) Stealer() *Stealer { return p.stealer }

// PhaseTicks counts ticks spent in the current phase.
func (p *ResourcePair) PhaseTicks() int { return p.phaseTicks }

func (p *ResourcePair) Tick() { p.phaseTicks++ }

func (p *ResourcePair) enter(phase PairPhase) {
	p.phase = phase
	p.phaseTicks = 0
}

// PlaceHealer moves Absent -> HealerPresent.
func (p *ResourcePair) PlaceHealer(h *Healer) bool {
	if h == nil || p.phase != PairAbsent {
		return false
	}
	p.healer = h
	p.enter(PairHealerPresent)
	return true
}

// AttachStealer moves HealerPresent -> StealerPursuing. The check runs when the
// stealer actually arrives, not when it was scheduled.
func (p *ResourcePair) AttachStealer(s *Stealer) bool {
	if s == nil || p.phase != PairHealerPresent || p.healer == nil {
		return false
	}
	s.State = StealerSeeking
	p.stealer = s
	p.enter(PairStealerPursuing)
	return true
}

// Capture moves StealerPursuing -> Carrying, dropping the healer in the same step.
func (p *ResourcePair) Capture() (*Healer, bool) {
	if p.phase != PairStealerPursuing {
		return nil, false
	}
	taken := p.healer
	p.healer = nil
	p.stealer.State = StealerCarrying
	p.enter(PairCarrying)
	return taken, true
}

// Attack moves Carrying -> Attacking.
func (p *ResourcePair) Attack() bool {
	if p.phase != PairCarrying {
		return false
	}
	p.stealer.State = StealerAttacking
	p.enter(PairAttacking)
	return true
}

// Pickup is the player collecting the healer. Any stealer goes with it,
// whatever it was doing.
func (p *ResourcePair) Pickup() (*Healer, *Stealer, bool) {
	if p.healer == nil {
		return nil, nil, false
	}
	h, s := p.Reset()
	return h, s, true
}

// Release is the stealer leaving after carrying or attacking.
func (p *ResourcePair) Release() (*Stealer, bool) {
	if p.phase != PairCarrying && p.phase != PairAttacking {
		return nil, false
	}
	_, s := p.Reset()
	return s, true
}

// Reset returns to Absent and hands back whatever was live.
func (p *ResourcePair) Reset() (*Healer, *Stealer) {
	h, s := p.healer, p.stealer
	p.healer = nil
	p.stealer = nil
	p.enter(PairAbsent)
	return h, s
}

// Validate reports a phase whose references disagree with it.
func (p *ResourcePair) Validate() error {
	hasH, hasS := p.healer != nil, p.stealer != nil
	var want StealerState
	switch p.phase {
	case PairAbsent:
		if hasH || hasS {
			return fmt.Errorf("pair %s: healer=%v stealer=%v", p.phase, hasH, hasS)
		}
		return nil
	case PairHealerPresent:
		if !hasH || hasS {
			return fmt.Errorf("pair %s: healer=%v stealer=%v", p.phase, hasH, hasS)
		}
		return nil
	case PairStealerPursuing:
		if !hasH || !hasS {
			return fmt.Errorf("pair %s: healer=%v stealer=%v", p.phase, hasH, hasS)
		}
		want = StealerSeeking
	case PairCarrying:
		want = StealerCarrying
	case PairAttacking:
		want = StealerAttacking
	default:
		return fmt.Errorf("pair: unknown phase %d", p.phase)
	}
	if p.phase != PairStealerPursuing && (hasH || !hasS) {
		return fmt.Errorf("pair %s: healer=%v stealer=%v", p.phase, hasH, hasS)
	}
	if p.stealer.State != want {
		return fmt.Errorf("pair %s: stealer state %s", p.phase, p.stealer.State)
	}
	return nil
}
