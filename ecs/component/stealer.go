package component

type StealerState uint8

const (
	StealerSeeking StealerState = iota + 1
	StealerCarrying
	StealerAttacking
)

func (s StealerState) String() string {
	switch s {
	case StealerSeeking:
		return "seeking"
	case StealerCarrying:
		return "carrying"
	case StealerAttacking:
		return "attacking"
	}
	return "none"
}

// Stealer's State is owned by ResourcePair; systems read it but never assign it.
type Stealer struct {
	Body
	Speed float64
	State StealerState
}

var StealerComponent = NewComponent[Stealer]()
