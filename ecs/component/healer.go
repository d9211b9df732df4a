package component

type Healer struct {
	Body
}

var HealerComponent = NewComponent[Healer]()
