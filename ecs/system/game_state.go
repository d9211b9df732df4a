package system

import "github.com/milk9111/pursuit/ecs"

// GameStateSystem counts the shield down and latches game over. It runs last.
type GameStateSystem struct{}

func NewGameStateSystem() *GameStateSystem {
	return &GameStateSystem{}
}

func (s *GameStateSystem) Update(w *ecs.World) {
	if w.GameOver() {
		return
	}
	w.State().TickShield()
	w.CheckGameOver()
}
