package ecs

// Event is an outbound notification for hosts (sound cues, logs). The
// simulation never reads it back.
type Event struct {
	Type string
	Data any
}

const (
	EventHostileKilled = "hostile_killed"
	EventBossSpawned   = "boss_spawned"
	EventBossHit       = "boss_hit"
	EventBossKilled    = "boss_killed"
	EventHealerSpawned = "healer_spawned"
	EventHealerPicked  = "healer_picked"
	EventStealerSpawn  = "stealer_spawned"
	EventHealerStolen  = "healer_stolen"
	EventStealerLeft   = "stealer_left"
	EventStealerAttack = "stealer_attack"
	EventFired         = "fired"
	EventGameOver      = "game_over"
	EventRestart       = "restart"
)

// maxQueuedEvents bounds the queue for hosts that never drain it.
const maxQueuedEvents = 1024

// EventQueue is a FIFO queue that holds events until the host drains it.
// Once full, the oldest event is dropped.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	if len(q.items) >= maxQueuedEvents {
		copy(q.items, q.items[1:])
		q.items = q.items[:len(q.items)-1]
	}
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}

// IntentKind names deferred work requested by timers or input.
type IntentKind uint8

const (
	IntentFire IntentKind = iota + 1
	IntentSpawnStealer
)

func (k IntentKind) String() string {
	switch k {
	case IntentFire:
		return "fire"
	case IntentSpawnStealer:
		return "spawn_stealer"
	}
	return "unknown"
}

// IntentQueue buffers requests until the owning system runs inside the tick.
// Timers and input only ever push; systems take.
type IntentQueue struct {
	items []IntentKind
}

func (q *IntentQueue) Push(k IntentKind) {
	if q == nil {
		return
	}
	q.items = append(q.items, k)
}

// Take removes every queued intent of kind k and returns how many there were.
func (q *IntentQueue) Take(k IntentKind) int {
	if q == nil {
		return 0
	}
	n := 0
	kept := q.items[:0]
	for _, it := range q.items {
		if it == k {
			n++
			continue
		}
		kept = append(kept, it)
	}
	q.items = kept
	return n
}

func (q *IntentQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

func (q *IntentQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
