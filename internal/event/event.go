// Package event defines the discrete notifications the simulation emits for
// presentation layers (sound, HUD effects) and a non-blocking fan-out bus.
package event

import (
	"sync"

	"github.com/tomz197/cookiecannon/internal/vec"
)

// Type identifies an event.
type Type int

const (
	ProjectileFired Type = iota
	EnemyHit
	EnemyDestroyed
	EnemySplatted
	PowerupCollected
	PlayerDied
	LevelUp
	GameRestarted
)

var typeNames = [...]string{
	ProjectileFired:  "projectileFired",
	EnemyHit:         "enemyHit",
	EnemyDestroyed:   "enemyDestroyed",
	EnemySplatted:    "enemySplatted",
	PowerupCollected: "powerupCollected",
	PlayerDied:       "playerDied",
	LevelUp:          "levelUp",
	GameRestarted:    "gameRestarted",
}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "unknown"
	}
	return typeNames[t]
}

// Event is a single notification. Fields not relevant to Type are zero.
type Event struct {
	Type    Type
	Pos     vec.Vec2
	Stage   int // enemy stage for hit/destroy events
	Powerup int // powerup type for PowerupCollected
	Level   int // new level for LevelUp
	Shots   int // projectiles spawned by one trigger pull
}

// Emitter receives events from the simulation.
type Emitter interface {
	Emit(ev Event)
}

type discard struct{}

func (discard) Emit(Event) {}

// Discard is an Emitter that drops every event.
var Discard Emitter = discard{}

// Recorder is an Emitter that keeps events in order until drained.
type Recorder struct {
	events []Event
}

// Emit appends ev.
func (r *Recorder) Emit(ev Event) {
	r.events = append(r.events, ev)
}

// Drain returns the recorded events and resets the recorder.
// The returned slice is owned by the caller.
func (r *Recorder) Drain() []Event {
	out := r.events
	r.events = nil
	return out
}

// Len returns the number of undrained events.
func (r *Recorder) Len() int {
	return len(r.events)
}

// Bus fans events out to subscribers through buffered channels.
// Publish never blocks: a subscriber whose buffer is full misses the event.
type Bus struct {
	mu   sync.RWMutex
	subs []chan Event
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{}
}

// Subscribe returns a channel that receives every published event.
// buffer is the channel capacity; values below 1 are raised to 1.
func (b *Bus) Subscribe(buffer int) <-chan Event {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	b.mu.Lock()
	b.subs = append(b.subs, ch)
	b.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes the channel returned by Subscribe.
func (b *Bus) Unsubscribe(ch <-chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	kept := b.subs[:0]
	for _, sub := range b.subs {
		if sub == ch {
			close(sub)
			continue
		}
		kept = append(kept, sub)
	}
	b.subs = kept
}

// Emit publishes ev to every subscriber without blocking.
func (b *Bus) Emit(ev Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		select {
		case sub <- ev:
		default:
			// Subscriber is behind, drop
		}
	}
}

// Close closes all subscriber channels.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, sub := range b.subs {
		close(sub)
	}
	b.subs = nil
}
