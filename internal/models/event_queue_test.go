package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueueOrdersByTime(t *testing.T) {
	eq := NewEventQueue()
	eq.Enqueue(&Event{Time: 30, Type: EventOrderArrival})
	eq.Enqueue(&Event{Time: 10, Type: EventDeliveryComplete})
	eq.Enqueue(&Event{Time: 20, Type: EventDriverGranted})

	var times []float64
	for !eq.IsEmpty() {
		ev, err := eq.Dequeue()
		require.NoError(t, err)
		times = append(times, ev.Time)
	}
	assert.Equal(t, []float64{10, 20, 30}, times)
}

func TestEventQueueBreaksTiesByInsertionOrder(t *testing.T) {
	eq := NewEventQueue()
	eq.Enqueue(&Event{Time: 5, Type: "first"})
	eq.Enqueue(&Event{Time: 5, Type: "second"})
	eq.Enqueue(&Event{Time: 5, Type: "third"})

	var order []string
	for !eq.IsEmpty() {
		ev, err := eq.Dequeue()
		require.NoError(t, err)
		order = append(order, ev.Type)
	}
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestEventQueueSequenceSurvivesInterleaving(t *testing.T) {
	eq := NewEventQueue()
	eq.Enqueue(&Event{Time: 9, Type: "late"})
	eq.Enqueue(&Event{Time: 3, Type: "a"})
	eq.Enqueue(&Event{Time: 3, Type: "b"})

	ev, err := eq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "a", ev.Type)

	// An event enqueued after a pop still sorts behind older same-time events.
	eq.Enqueue(&Event{Time: 3, Type: "c"})

	ev, err = eq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "b", ev.Type)
	ev, err = eq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "c", ev.Type)
	ev, err = eq.Dequeue()
	require.NoError(t, err)
	assert.Equal(t, "late", ev.Type)
}

func TestEventQueueDequeueEmpty(t *testing.T) {
	eq := NewEventQueue()
	_, err := eq.Dequeue()
	assert.ErrorIs(t, err, ErrEmptyQueue)
}

func TestEventQueuePeekDoesNotRemove(t *testing.T) {
	eq := NewEventQueue()
	assert.Nil(t, eq.Peek())

	eq.Enqueue(&Event{Time: 1})
	require.NotNil(t, eq.Peek())
	assert.Equal(t, 1, eq.Len())
}
