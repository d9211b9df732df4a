package component

type Hostile struct {
	Body
	Speed float64
}

var HostileComponent = NewComponent[Hostile]()
