package ecs

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pursuit/ecs/component"
	"github.com/milk9111/pursuit/gamelog"
	"github.com/milk9111/pursuit/prefabs"
)

// World is the whole simulation state: the entity registry and its component
// storage, the game state, the virtual clock and the intent queue. It is owned
// by one goroutine.
type World struct {
	entities   entityStore
	components componentStore
	scheduler *Scheduler
	clock     Clock
	intents   IntentQueue
	events    EventQueue

	tuning *prefabs.Tuning
	bounds cp.BB
	rng    *rand.Rand
	log    gamelog.Logger

	input  component.Input
	state  component.GameState
	player Entity
	pair   component.ResourcePair

	fireTimer    TimerID
	stealerTimer TimerID
}

type Option func(*World)

// WithSeed makes spawning deterministic.
func WithSeed(seed uint64) Option {
	return func(w *World) {
		w.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

func WithLogger(l gamelog.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithSystems installs the per-tick system order.
func WithSystems(systems ...System) Option {
	return func(w *World) {
		w.scheduler = NewScheduler(systems...)
	}
}

// NewWorld creates a running world. tuning must already be validated.
func NewWorld(tuning *prefabs.Tuning, opts ...Option) *World {
	w := &World{
		tuning:    tuning,
		bounds:    tuning.BoundsBB(),
		log:       gamelog.Nop,
		scheduler: NewScheduler(),
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.rng == nil {
		now := uint64(time.Now().UnixNano())
		w.rng = rand.New(rand.NewPCG(now, now>>17|1))
	}
	w.reset()
	return w
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Update runs one tick. It is a no-op once the run is over.
func (w *World) Update() {
	if w == nil || w.state.GameOver {
		return
	}
	w.clock.Advance(w.tuning.TickDuration(), &w.intents)
	w.scheduler.Update(w)
	w.intents.flush()
	w.state.Tick++
}

// Restart discards the current run and starts a fresh one.
func (w *World) Restart() {
	if w == nil {
		return
	}
	w.reset()
	w.events.Push(Event{Type: EventRestart, Data: w.state.RunID})
}

func (w *World) reset() {
	w.entities = entityStore{}
	w.components = componentStore{}
	w.clock.Reset()
	w.intents.flush()
	w.events.flush()

	w.state = component.NewGameState(uuid.NewString(), w.tuning.Boss.ScoreThreshold)
	w.pair = component.ResourcePair{}
	w.stealerTimer = 0

	center := cp.Vector{X: (w.bounds.L + w.bounds.R) / 2, Y: (w.bounds.B + w.bounds.T) / 2}
	player := &component.Player{Body: component.Body{Pos: center, Radius: w.tuning.Player.Radius}}
	w.player = spawn(w, component.PlayerComponent.Kind(), &player.Body, player)
	w.input = component.Input{Target: center, Touch: w.input.Touch}

	w.fireTimer = w.clock.Every(w.tuning.Projectile.FireInterval, IntentFire)
	w.log.Info("run started", "run", w.state.RunID)
}

// PrimaryAction is the host's single button: restart after game over, an extra
// shot otherwise.
func (w *World) PrimaryAction() {
	if w == nil {
		return
	}
	if w.state.GameOver {
		w.Restart()
		return
	}
	w.intents.Push(IntentFire)
}

func (w *World) SetInput(in component.Input) {
	if w == nil {
		return
	}
	in.Active = true
	w.input = in
}

func (w *World) Input() component.Input { return w.input }

// SetTuning swaps constants between ticks. Entities already live keep their
// speeds; the fire cadence is re-armed when it changed.
func (w *World) SetTuning(t *prefabs.Tuning) {
	if w == nil || t == nil {
		return
	}
	old := w.tuning
	w.tuning = t
	w.bounds = t.BoundsBB()
	if p := w.Player(); p != nil {
		p.Radius = t.Player.Radius
	}
	if old.Projectile.FireInterval != t.Projectile.FireInterval {
		w.clock.Cancel(w.fireTimer)
		w.fireTimer = w.clock.Every(t.Projectile.FireInterval, IntentFire)
	}
	w.log.Info("tuning applied", "name", t.Name)
}

func (w *World) Tuning() *prefabs.Tuning { return w.tuning }

func (w *World) Bounds() cp.BB { return w.bounds }

func (w *World) Rand() *rand.Rand { return w.rng }

func (w *World) Logger() gamelog.Logger { return w.log }

func (w *World) Clock() *Clock { return &w.clock }

func (w *World) Intents() *IntentQueue { return &w.intents }

// Events returns the outbound event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

func (w *World) State() *component.GameState { return &w.state }

func (w *World) GameOver() bool {
	return w == nil || w.state.GameOver
}

// Damage routes contact damage through the game state and reports whether it
// ended the run.
func (w *World) Damage(amount float64) bool {
	if w.state.Damage(amount) {
		w.endRun()
		return true
	}
	return false
}

// CheckGameOver latches game over when health is gone.
func (w *World) CheckGameOver() bool {
	if !w.state.GameOver && w.state.Health <= 0 {
		w.state.Health = 0
		w.state.GameOver = true
		w.endRun()
	}
	return w.state.GameOver
}

func (w *World) endRun() {
	w.events.Push(Event{Type: EventGameOver, Data: w.state.Score})
	w.log.Info("game over", "run", w.state.RunID, "score", w.state.Score, "tick", w.state.Tick)
}

func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// spawn creates an entity carrying value under kind and stamps its body.
func spawn[T any](w *World, kind component.ComponentKind[T], body *component.Body, value *T) Entity {
	e := w.entities.create()
	body.ID = e
	if err := Add(w, e, kind, value); err != nil {
		w.entities.destroy(e)
		return 0
	}
	return e
}

func (w *World) Player() *component.Player {
	p, _ := Get(w, w.player, component.PlayerComponent.Kind())
	return p
}

// Hostiles lists live hostiles in spawn order.
func (w *World) Hostiles() []*component.Hostile {
	return Query(w, component.HostileComponent.Kind())
}

func (w *World) AddHostile(h *component.Hostile) Entity {
	return spawn(w, component.HostileComponent.Kind(), &h.Body, h)
}

// RemoveHostiles drops every hostile whose index in Hostiles is marked dead.
func (w *World) RemoveHostiles(dead []bool) int {
	return w.compact(component.HostileComponent.Kind().ID(), dead)
}

func (w *World) Boss() *component.Boss {
	_, b, _ := First(w, component.BossComponent.Kind())
	return b
}

// SpawnBoss installs b unless a boss is already live.
func (w *World) SpawnBoss(b *component.Boss) bool {
	if b == nil || Count(w, component.BossComponent.Kind()) > 0 {
		return false
	}
	return spawn(w, component.BossComponent.Kind(), &b.Body, b).Valid()
}

func (w *World) RemoveBoss() {
	if e, _, ok := First(w, component.BossComponent.Kind()); ok {
		w.DestroyEntity(e)
	}
}

// Projectiles lists live projectiles, oldest first.
func (w *World) Projectiles() []*component.Projectile {
	return Query(w, component.ProjectileComponent.Kind())
}

// AddProjectile inserts p, evicting the oldest projectiles first when the
// buffer already holds max.
func (w *World) AddProjectile(p *component.Projectile, max int) (evicted int) {
	kind := component.ProjectileComponent.Kind()
	if n := Count(w, kind); max > 0 && n >= max {
		dead := make([]bool, n-max+1)
		for i := range dead {
			dead[i] = true
		}
		evicted = w.compact(kind.ID(), dead)
	}
	spawn(w, kind, &p.Body, p)
	return evicted
}

func (w *World) RemoveProjectiles(dead []bool) int {
	return w.compact(component.ProjectileComponent.Kind().ID(), dead)
}

func (w *World) Pair() *component.ResourcePair { return &w.pair }

// SpawnHealer places a healer and arms the deferred stealer timer.
func (w *World) SpawnHealer(h *component.Healer) bool {
	if h == nil || w.pair.Phase() != component.PairAbsent {
		return false
	}
	e := spawn(w, component.HealerComponent.Kind(), &h.Body, h)
	if !w.pair.PlaceHealer(h) {
		w.DestroyEntity(e)
		return false
	}
	w.stealerTimer = w.clock.After(w.tuning.Stealer.SpawnDelay, IntentSpawnStealer)
	return true
}

// SpawnStealer attaches a fully built stealer if the pair is still waiting for
// one. A healer picked up since the timer was armed makes this a no-op.
func (w *World) SpawnStealer(s *component.Stealer) bool {
	if s == nil || w.pair.Phase() != component.PairHealerPresent || w.pair.Healer() == nil {
		return false
	}
	e := spawn(w, component.StealerComponent.Kind(), &s.Body, s)
	if !w.pair.AttachStealer(s) {
		w.DestroyEntity(e)
		return false
	}
	w.clock.Cancel(w.stealerTimer)
	w.stealerTimer = 0
	return true
}

// CaptureHealer hands the healer to the stealer.
func (w *World) CaptureHealer() bool {
	h, ok := w.pair.Capture()
	if !ok {
		return false
	}
	w.DestroyEntity(h.ID)
	return true
}

// PickupHealer removes the healer and any stealer, returning the pair to Absent.
func (w *World) PickupHealer() bool {
	h, s, ok := w.pair.Pickup()
	if !ok {
		return false
	}
	w.DestroyEntity(h.ID)
	if s != nil {
		w.DestroyEntity(s.ID)
	}
	w.clock.Cancel(w.stealerTimer)
	w.stealerTimer = 0
	return true
}

// ReleaseStealer despawns a carrying or attacking stealer.
func (w *World) ReleaseStealer() bool {
	s, ok := w.pair.Release()
	if !ok {
		return false
	}
	w.DestroyEntity(s.ID)
	return true
}
