package component

const MaxHealth = 100.0

// GameState is the process-wide score/health/shield record. It is replaced
// wholesale on restart.
type GameState struct {
	RunID        string
	Tick         uint64
	Score        int
	Health       float64
	GameOver     bool
	ShieldActive bool
	ShieldTicks  int
	// BossScore is the score the next boss waits for.
	BossScore int
}

func NewGameState(runID string, bossScore int) GameState {
	return GameState{RunID: runID, Health: MaxHealth, BossScore: bossScore}
}

// AddScore ignores negative amounts; score only goes up within a run.
func (g *GameState) AddScore(n int) {
	if g.GameOver || n <= 0 {
		return
	}
	g.Score += n
}

// Damage applies contact damage unless shielded and reports whether this call
// ended the run.
func (g *GameState) Damage(amount float64) bool {
	if g.GameOver || amount <= 0 || g.ShieldActive {
		return false
	}
	g.Health -= amount
	if g.Health <= 0 {
		g.Health = 0
		g.GameOver = true
		return true
	}
	return false
}

func (g *GameState) Heal(amount float64) {
	if g.GameOver || amount <= 0 {
		return
	}
	g.Health += amount
	if g.Health > MaxHealth {
		g.Health = MaxHealth
	}
}

// ActivateShield extends the shield to at least ticks.
func (g *GameState) ActivateShield(ticks int) {
	if g.GameOver || ticks <= 0 {
		return
	}
	g.ShieldActive = true
	if ticks > g.ShieldTicks {
		g.ShieldTicks = ticks
	}
}

// TickShield counts the shield down once, clearing it at zero.
func (g *GameState) TickShield() {
	if !g.ShieldActive {
		return
	}
	g.ShieldTicks--
	if g.ShieldTicks <= 0 {
		g.ShieldTicks = 0
		g.ShieldActive = false
	}
}
