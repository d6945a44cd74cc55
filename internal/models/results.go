package models

// Summary holds the scalar statistics of one run. Means are defined as 0 when
// no orders completed.
type Summary struct {
	MeanWait       float64 `json:"mean_wait"`
	MeanSystemTime float64 `json:"mean_system_time"`
	CompletedCount int     `json:"completed_count"`
}

// RunResult is everything one simulation run produces. The three sequences
// are append-only, one entry per completed order in completion order, and are
// owned exclusively by the run that produced them.
type RunResult struct {
	RunID    string   `json:"run_id"`
	Scenario Scenario `json:"scenario"`

	MeanWait       float64 `json:"mean_wait"`
	MeanSystemTime float64 `json:"mean_system_time"`
	CompletedCount int     `json:"completed_count"`
	// ThroughputPerUnitTime is CompletedCount / Horizon (orders per minute),
	// defined as 0 for a zero horizon.
	ThroughputPerUnitTime float64 `json:"throughput_per_unit_time"`

	WaitTimes         []float64 `json:"wait_times"`
	SystemTimes       []float64 `json:"system_times"`
	CompletedOrderIDs []int64   `json:"completed_order_ids"`

	// CompletedOrders carries the full per-order records for the output
	// sinks; same ordering as the sequences above.
	CompletedOrders []Order `json:"completed_orders"`

	OfferedLoad float64 `json:"offered_load"`
	Utilization float64 `json:"utilization"`

	// Fleet state at the horizon. Orders still waiting or in service are
	// abandoned, not drained, so busy drivers stay busy here.
	DriversBusyAtEnd   int `json:"drivers_busy_at_end"`
	OrdersWaitingAtEnd int `json:"orders_waiting_at_end"`
}

// ThroughputPerHour reports throughput the way the summary table prints it.
func (r *RunResult) ThroughputPerHour() float64 {
	return r.ThroughputPerUnitTime * 60.0
}

// EventMessage wraps a serialized output record with its destination topic.
type EventMessage struct {
	Topic   string
	Message []byte
}
