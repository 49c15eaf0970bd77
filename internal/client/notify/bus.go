// Package notify implements the in-memory notification bus: transient
// user-facing status messages published by any feature module and removed
// exactly once, by explicit dismissal or by a fixed timeout, whichever comes
// first.
package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

// TTL is how long a notification stays visible without being dismissed.
const TTL = 5 * time.Second

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
)

// Notification is one transient message.
type Notification struct {
	ID        string
	Message   string
	Severity  Severity
	CreatedAt time.Time
}

type entry struct {
	note  Notification
	timer clockwork.Timer
}

// Bus is the process-wide notification queue. The zero value is not usable;
// construct with NewBus. The queue preserves publish order and is not
// persisted.
type Bus struct {
	clock clockwork.Clock

	mu    sync.Mutex
	order []string
	items map[string]*entry
}

// NewBus builds a Bus on the given clock. Production code passes
// clockwork.NewRealClock(); tests pass a fake clock and advance it instead of
// sleeping.
func NewBus(clock clockwork.Clock) *Bus {
	return &Bus{
		clock: clock,
		items: make(map[string]*entry),
	}
}

// Publish appends a notification and schedules its expiry after TTL.
// It returns the generated id.
func (b *Bus) Publish(message string, severity Severity) string {
	id := uuid.NewString()

	b.mu.Lock()
	defer b.mu.Unlock()

	e := &entry{
		note: Notification{
			ID:        id,
			Message:   message,
			Severity:  severity,
			CreatedAt: b.clock.Now(),
		},
	}
	e.timer = b.clock.AfterFunc(TTL, func() { b.Dismiss(id) })

	b.order = append(b.order, id)
	b.items[id] = e
	return id
}

// Dismiss removes the notification with the given id and cancels its pending
// expiry timer. Dismissing an unknown or already-removed id is a no-op, so the
// timer callback and a manual dismissal can never double-fire.
func (b *Bus) Dismiss(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	e, ok := b.items[id]
	if !ok {
		return
	}
	e.timer.Stop()
	delete(b.items, id)

	for i, oid := range b.order {
		if oid == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

// Snapshot returns the visible notifications in publish order.
func (b *Bus) Snapshot() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notification, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.items[id].note)
	}
	return out
}

// Drain returns the visible notifications in publish order and removes them
// all, cancelling their timers. The CLI surfaces use it to flush pending
// messages to the terminal after each command.
func (b *Bus) Drain() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()

	out := make([]Notification, 0, len(b.order))
	for _, id := range b.order {
		e := b.items[id]
		e.timer.Stop()
		out = append(out, e.note)
		delete(b.items, id)
	}
	b.order = b.order[:0]
	return out
}

// Success publishes with SeveritySuccess.
func (b *Bus) Success(message string) string { return b.Publish(message, SeveritySuccess) }

// Error publishes with SeverityError.
func (b *Bus) Error(message string) string { return b.Publish(message, SeverityError) }

// Info publishes with SeverityInfo.
func (b *Bus) Info(message string) string { return b.Publish(message, SeverityInfo) }

// Warning publishes with SeverityWarning.
func (b *Bus) Warning(message string) string { return b.Publish(message, SeverityWarning) }
