package models

const (
	OrderStatusWaiting   = "waiting_for_driver"
	OrderStatusInService = "in_service"
	OrderStatusCompleted = "completed"
)

// Order is one delivery order moving through the system. All timestamps are
// virtual minutes since the start of the run. ServiceStart and DepartureTime
// are only meaningful once the order has reached the corresponding status.
type Order struct {
	ID            int64   `json:"id"`
	DriverID      string  `json:"driver_id"`
	DriverName    string  `json:"driver_name"`
	ArrivalTime   float64 `json:"arrival_time"`
	ServiceStart  float64 `json:"service_start"`
	DepartureTime float64 `json:"departure_time"`
	WaitTime      float64 `json:"wait_time"`
	SystemTime    float64 `json:"system_time"`
	Status        string  `json:"status"`

	// driverSlot is the pool slot granted to this order; valid while the
	// order holds a driver.
	driverSlot int
}

// AssignSlot records the pool slot granted to the order.
func (o *Order) AssignSlot(slot int) { o.driverSlot = slot }

// Slot returns the pool slot the order currently holds.
func (o *Order) Slot() int { return o.driverSlot }
