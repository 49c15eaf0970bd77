package notify

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_PreservesOrder(t *testing.T) {
	bus := NewBus(clockwork.NewFakeClock())

	bus.Publish("first", SeverityInfo)
	bus.Publish("second", SeveritySuccess)
	bus.Publish("third", SeverityError)

	snapshot := bus.Snapshot()
	require.Len(t, snapshot, 3)
	assert.Equal(t, "first", snapshot[0].Message)
	assert.Equal(t, "second", snapshot[1].Message)
	assert.Equal(t, "third", snapshot[2].Message)
}

func TestPublish_ExpiresAfterTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := NewBus(clock)

	bus.Publish("Saved", SeveritySuccess)
	require.Len(t, bus.Snapshot(), 1)

	clock.Advance(TTL)

	require.Eventually(t, func() bool {
		return len(bus.Snapshot()) == 0
	}, time.Second, time.Millisecond)
}

func TestPublish_NotExpiredBeforeTTL(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := NewBus(clock)

	bus.Publish("Saved", SeveritySuccess)
	clock.Advance(TTL - time.Millisecond)

	assert.Len(t, bus.Snapshot(), 1)
}

func TestDismiss_RemovesImmediately(t *testing.T) {
	bus := NewBus(clockwork.NewFakeClock())

	id := bus.Publish("Saved", SeveritySuccess)
	bus.Dismiss(id)

	assert.Empty(t, bus.Snapshot())
}

func TestDismiss_UnknownIDIsNoop(t *testing.T) {
	bus := NewBus(clockwork.NewFakeClock())

	assert.NotPanics(t, func() { bus.Dismiss("no-such-id") })
}

func TestDismiss_ThenExpiryDoesNotDoubleFire(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := NewBus(clock)

	id := bus.Publish("Saved", SeveritySuccess)
	keep := bus.Publish("Still here", SeverityInfo)

	bus.Dismiss(id)
	bus.Dismiss(id) // second dismissal is a no-op

	// The dangling timer must not disturb the remaining notification.
	clock.Advance(TTL / 2)
	snapshot := bus.Snapshot()
	require.Len(t, snapshot, 1)
	assert.Equal(t, keep, snapshot[0].ID)
}

func TestNotifications_ExpireIndependently(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := NewBus(clock)

	bus.Publish("early", SeverityInfo)
	clock.Advance(3 * time.Second)
	late := bus.Publish("late", SeverityInfo)

	clock.Advance(2 * time.Second) // early hits its TTL, late has 3s left

	require.Eventually(t, func() bool {
		snapshot := bus.Snapshot()
		return len(snapshot) == 1 && snapshot[0].ID == late
	}, time.Second, time.Millisecond)
}

func TestDrain_ReturnsInOrderAndEmpties(t *testing.T) {
	clock := clockwork.NewFakeClock()
	bus := NewBus(clock)

	bus.Error("boom")
	bus.Success("ok")

	drained := bus.Drain()
	require.Len(t, drained, 2)
	assert.Equal(t, SeverityError, drained[0].Severity)
	assert.Equal(t, SeveritySuccess, drained[1].Severity)
	assert.Empty(t, bus.Snapshot())

	// Timers were cancelled; advancing must not panic or resurrect anything.
	clock.Advance(TTL)
	assert.Empty(t, bus.Snapshot())
}
