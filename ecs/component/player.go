package component

// Player is the singleton actor. Health and shield live in GameState.
type Player struct {
	Body
}

var PlayerComponent = NewComponent[Player]()
