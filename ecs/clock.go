package ecs

import "time"

type TimerID uint64

type timer struct {
	id       TimerID
	kind     IntentKind
	due      time.Duration
	interval time.Duration
}

// Clock is the simulation's virtual time. It advances by a fixed step per tick
// and fires timers by enqueuing intents, so timer work always happens inside
// the tick that owns the state.
type Clock struct {
	now    time.Duration
	nextID TimerID
	timers []timer
}

func (c *Clock) Now() time.Duration { return c.now }

// After fires kind once, delay from now.
func (c *Clock) After(delay time.Duration, kind IntentKind) TimerID {
	return c.add(delay, 0, kind)
}

// Every fires kind each interval, starting one interval from now.
func (c *Clock) Every(interval time.Duration, kind IntentKind) TimerID {
	if interval <= 0 {
		return 0
	}
	return c.add(interval, interval, kind)
}

func (c *Clock) add(delay, interval time.Duration, kind IntentKind) TimerID {
	if delay < 0 {
		delay = 0
	}
	c.nextID++
	c.timers = append(c.timers, timer{id: c.nextID, kind: kind, due: c.now + delay, interval: interval})
	return c.nextID
}

// Cancel stops a timer. Unknown ids are ignored.
func (c *Clock) Cancel(id TimerID) {
	if id == 0 {
		return
	}
	kept := c.timers[:0]
	for _, t := range c.timers {
		if t.id != id {
			kept = append(kept, t)
		}
	}
	c.timers = kept
}

func (c *Clock) Pending(id TimerID) bool {
	for _, t := range c.timers {
		if t.id == id {
			return true
		}
	}
	return false
}

// Advance moves time forward by dt and pushes one intent per elapsed firing.
// A repeating timer shorter than dt fires more than once.
func (c *Clock) Advance(dt time.Duration, q *IntentQueue) {
	c.now += dt
	kept := c.timers[:0]
	for _, t := range c.timers {
		for t.due <= c.now {
			q.Push(t.kind)
			if t.interval <= 0 {
				break
			}
			t.due += t.interval
		}
		if t.interval > 0 || t.due > c.now {
			kept = append(kept, t)
		}
	}
	c.timers = kept
}

// Reset drops every timer and rewinds to zero.
func (c *Clock) Reset() {
	c.now = 0
	c.timers = nil
}
