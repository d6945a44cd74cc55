package simulator

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/lucsky/cuid"
	"github.com/quickeats/dispatchsim/internal/factories"
	"github.com/quickeats/dispatchsim/internal/models"
)

// Simulator is the context for one run: virtual clock, event queue, driver
// pool, random source and metrics. One Simulator per run, never shared.
//
// The run is single-threaded and cooperative: exactly one event handler
// executes at a time and runs to its next suspension point, so the pool and
// the metrics collector are mutated without any synchronization. Every
// suspension point is an explicit event type: an arrival timer
// (EventOrderArrival), a driver grant (EventDriverGranted) or a service timer
// (EventDeliveryComplete).
type Simulator struct {
	Scenario    models.Scenario
	CurrentTime float64
	Rng         *rand.Rand
	EventQueue  *models.EventQueue
	Drivers     *ResourcePool
	Metrics     *MetricsCollector
	Roster      []*models.Driver

	nextOrderID     int64
	completedOrders []models.Order
	failure         error
}

// NewSimulator validates the scenario and builds a fresh run context. A seed
// of zero seeds from the wall clock; any other value makes the run
// reproducible.
func NewSimulator(scenario models.Scenario, seed int64) (*Simulator, error) {
	if err := scenario.Validate(); err != nil {
		return nil, err
	}
	pool, err := NewResourcePool(scenario.NumDrivers)
	if err != nil {
		return nil, err
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	driverFactory := &factories.DriverFactory{}

	return &Simulator{
		Scenario:   scenario,
		Rng:        rand.New(rand.NewSource(seed)),
		EventQueue: models.NewEventQueue(),
		Drivers:    pool,
		Metrics:    NewMetricsCollector(),
		Roster:     driverFactory.CreateRoster(scenario.NumDrivers),
	}, nil
}

// RunScenario runs one scenario to its horizon and returns the result. It is
// a pure function of the scenario and the seed.
func RunScenario(scenario models.Scenario, seed int64) (*models.RunResult, error) {
	sim, err := NewSimulator(scenario, seed)
	if err != nil {
		return nil, err
	}
	return sim.Run()
}

// Run drives the clock forward event by event until the queue is empty or
// the next event lies beyond the horizon. Events past the horizon are never
// executed; processes still waiting at that point are abandoned and their
// partial state is discarded.
func (s *Simulator) Run() (*models.RunResult, error) {
	gap, err := Exponential(s.Rng, s.Scenario.ArrivalRate)
	if err != nil {
		return nil, err
	}
	s.scheduleAfter(gap, models.EventOrderArrival, nil)

	for {
		next := s.EventQueue.Peek()
		if next == nil || next.Time > s.Scenario.Horizon {
			break
		}
		event, err := s.EventQueue.Dequeue()
		if err != nil {
			return nil, err
		}
		if err := s.advanceTo(event); err != nil {
			return nil, err
		}
		s.processEvent(event)
		if s.failure != nil {
			return nil, s.failure
		}
	}

	return s.buildResult(), nil
}

// advanceTo moves the clock to the event's time. Virtual time never moves
// backward; a regression means the queue ordering is broken.
func (s *Simulator) advanceTo(event *models.Event) error {
	if event.Time < s.CurrentTime {
		return fmt.Errorf("clock regression: event at %g behind current time %g",
			event.Time, s.CurrentTime)
	}
	s.CurrentTime = event.Time
	return nil
}

func (s *Simulator) scheduleAfter(delay float64, eventType string, data interface{}) {
	s.EventQueue.Enqueue(&models.Event{
		Time: s.CurrentTime + delay,
		Type: eventType,
		Data: data,
	})
}

// scheduleNow inserts an event at the current instant. Used for driver
// grants, which carry zero simulated delay.
func (s *Simulator) scheduleNow(eventType string, data interface{}) {
	s.scheduleAfter(0, eventType, data)
}

func (s *Simulator) processEvent(event *models.Event) {
	switch event.Type {
	case models.EventOrderArrival:
		s.handleOrderArrival()
	case models.EventDriverGranted:
		s.handleDriverGranted(event.Data.(*models.Order))
	case models.EventDeliveryComplete:
		s.handleDeliveryComplete(event.Data.(*models.Order))
	}
}

// fail aborts the run at the next loop iteration. Internal failures are not
// recoverable; partial statistics would be misleading.
func (s *Simulator) fail(err error) {
	if s.failure == nil {
		s.failure = err
	}
}

// handleOrderArrival realizes the Poisson arrival stream: allocate the next
// order id, hand the order to the driver pool and schedule the following
// arrival. The arrival process never terminates on its own; it is cut off by
// the horizon.
func (s *Simulator) handleOrderArrival() {
	s.nextOrderID++
	order := &models.Order{
		ID:          s.nextOrderID,
		ArrivalTime: s.CurrentTime,
		Status:      models.OrderStatusWaiting,
	}
	s.requestDriver(order)

	gap, err := Exponential(s.Rng, s.Scenario.ArrivalRate)
	if err != nil {
		s.fail(err)
		return
	}
	s.scheduleAfter(gap, models.EventOrderArrival, nil)
}

// requestDriver asks the pool for a unit. An immediate grant resumes the
// order at the same virtual instant; otherwise the order stays suspended in
// the pool's wait queue until a release reaches it.
func (s *Simulator) requestDriver(order *models.Order) {
	if slot, granted := s.Drivers.Request(order); granted {
		order.AssignSlot(slot)
		s.scheduleNow(models.EventDriverGranted, order)
	}
}

// handleDriverGranted moves the order into service: record how long it
// waited, label it with the roster driver holding the slot, and schedule
// completion after an exponential service duration.
func (s *Simulator) handleDriverGranted(order *models.Order) {
	order.Status = models.OrderStatusInService
	order.ServiceStart = s.CurrentTime
	order.WaitTime = s.CurrentTime - order.ArrivalTime

	driver := s.Roster[order.Slot()]
	order.DriverID = driver.ID
	order.DriverName = driver.Name

	service, err := Exponential(s.Rng, 1.0/s.Scenario.ServiceMean)
	if err != nil {
		s.fail(err)
		return
	}
	s.scheduleAfter(service, models.EventDeliveryComplete, order)
}

// handleDeliveryComplete releases the driver and records the order. The
// release grants the freed unit to the wait-queue head before any other event
// at this or a later time runs, so a freed driver starts the next order with
// zero added delay.
func (s *Simulator) handleDeliveryComplete(order *models.Order) {
	if next, slot, regranted := s.Drivers.Release(order.Slot()); regranted {
		next.AssignSlot(slot)
		s.scheduleNow(models.EventDriverGranted, next)
	}

	order.Status = models.OrderStatusCompleted
	order.DepartureTime = s.CurrentTime
	order.SystemTime = s.CurrentTime - order.ArrivalTime

	s.Metrics.Record(order.WaitTime, order.SystemTime, order.ID)
	s.completedOrders = append(s.completedOrders, *order)
}

func (s *Simulator) buildResult() *models.RunResult {
	summary := s.Metrics.Summary()

	throughput := 0.0
	if s.Scenario.Horizon > 0 {
		throughput = float64(summary.CompletedCount) / s.Scenario.Horizon
	}

	return &models.RunResult{
		RunID:                 cuid.New(),
		Scenario:              s.Scenario,
		MeanWait:              summary.MeanWait,
		MeanSystemTime:        summary.MeanSystemTime,
		CompletedCount:        summary.CompletedCount,
		ThroughputPerUnitTime: throughput,
		WaitTimes:             s.Metrics.WaitTimes(),
		SystemTimes:           s.Metrics.SystemTimes(),
		CompletedOrderIDs:     s.Metrics.CompletedOrderIDs(),
		CompletedOrders:       s.completedOrders,
		OfferedLoad:           s.Scenario.OfferedLoad(),
		Utilization:           s.Scenario.Utilization(),
		DriversBusyAtEnd:      s.Drivers.InUse(),
		OrdersWaitingAtEnd:    s.Drivers.QueueLen(),
	}
}
