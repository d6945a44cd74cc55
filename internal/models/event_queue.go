package models

import (
	"container/heap"
)

const (
	EventOrderArrival     = "OrderArrival"
	EventDriverGranted    = "DriverGranted"
	EventDeliveryComplete = "DeliveryComplete"
)

// Event is a scheduled future resumption of simulation logic at a virtual
// time. Seq is an insertion counter used to break ties between events
// scheduled for the same instant, so replays with a fixed seed are
// byte-identical.
type Event struct {
	Time float64
	Seq  uint64
	Type string
	Data interface{}
}

// EventQueue is a priority queue of events ordered by (Time, Seq). The whole
// run executes on a single goroutine, so the queue needs no locking.
type EventQueue struct {
	events  eventHeap
	nextSeq uint64
}

// eventHeap implements heap.Interface and holds Events
type eventHeap []*Event

func (h eventHeap) Len() int { return len(h) }
func (h eventHeap) Less(i, j int) bool {
	if h[i].Time != h[j].Time {
		return h[i].Time < h[j].Time
	}
	return h[i].Seq < h[j].Seq
}
func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x interface{}) {
	*h = append(*h, x.(*Event))
}

func (h *eventHeap) Pop() interface{} {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// NewEventQueue creates a new EventQueue
func NewEventQueue() *EventQueue {
	return &EventQueue{events: make(eventHeap, 0)}
}

// Enqueue adds an event to the queue, stamping it with the next sequence
// number. Events at equal times dequeue in insertion order.
func (eq *EventQueue) Enqueue(event *Event) {
	event.Seq = eq.nextSeq
	eq.nextSeq++
	heap.Push(&eq.events, event)
}

// Dequeue removes and returns the earliest event from the queue.
func (eq *EventQueue) Dequeue() (*Event, error) {
	if len(eq.events) == 0 {
		return nil, ErrEmptyQueue
	}
	return heap.Pop(&eq.events).(*Event), nil
}

// Peek returns the earliest event without removing it, or nil if none remain.
func (eq *EventQueue) Peek() *Event {
	if len(eq.events) == 0 {
		return nil
	}
	return eq.events[0]
}

// IsEmpty returns true if the queue is empty
func (eq *EventQueue) IsEmpty() bool {
	return len(eq.events) == 0
}

// Len returns the number of events in the queue
func (eq *EventQueue) Len() int {
	return len(eq.events)
}
