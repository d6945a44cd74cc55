package simulator

import (
	"fmt"

	"github.com/quickeats/dispatchsim/internal/models"
)

// ResourcePool models the driver fleet: a fixed number of interchangeable
// units granted in strict FIFO order. The pool only decides who holds a unit;
// scheduling the granted order's resumption is the simulator's job, which is
// what lets a release hand the freed unit to the queue head at the same
// virtual instant.
type ResourcePool struct {
	capacity  int
	inUse     int
	freeSlots []int
	waitQueue []*models.Order
}

// NewResourcePool creates a pool of the given capacity. A capacity of zero is
// rejected: every request would starve forever.
func NewResourcePool(capacity int) (*ResourcePool, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: resource pool capacity must be positive, got %d",
			models.ErrInvalidConfiguration, capacity)
	}
	free := make([]int, capacity)
	for i := range free {
		free[i] = i
	}
	return &ResourcePool{capacity: capacity, freeSlots: free}, nil
}

// Request grants a unit immediately when one is free, returning the slot
// index and true. Otherwise the order joins the tail of the wait queue and
// the caller must suspend it until a release reaches it.
func (rp *ResourcePool) Request(order *models.Order) (slot int, granted bool) {
	if rp.inUse < rp.capacity {
		slot = rp.freeSlots[len(rp.freeSlots)-1]
		rp.freeSlots = rp.freeSlots[:len(rp.freeSlots)-1]
		rp.inUse++
		return slot, true
	}
	rp.waitQueue = append(rp.waitQueue, order)
	return 0, false
}

// Release returns a slot to the pool. If anyone is waiting, the head of the
// queue is granted the freed slot right away and returned so the caller can
// resume it at the current virtual time. No request ever jumps ahead of an
// earlier-arrived, still-waiting one.
func (rp *ResourcePool) Release(slot int) (next *models.Order, nextSlot int, regranted bool) {
	rp.inUse--
	if len(rp.waitQueue) > 0 {
		next = rp.waitQueue[0]
		rp.waitQueue = rp.waitQueue[1:]
		rp.inUse++
		return next, slot, true
	}
	rp.freeSlots = append(rp.freeSlots, slot)
	return nil, 0, false
}

// Capacity returns the fixed number of units in the pool.
func (rp *ResourcePool) Capacity() int { return rp.capacity }

// InUse returns the number of units currently granted.
func (rp *ResourcePool) InUse() int { return rp.inUse }

// QueueLen returns the number of orders waiting for a unit.
func (rp *ResourcePool) QueueLen() int { return len(rp.waitQueue) }
