package simulator

import "github.com/quickeats/dispatchsim/internal/models"

// MetricsCollector accumulates per-order timings for one run. It is purely
// additive: three append-only sequences, one entry per completed order, in
// completion order.
type MetricsCollector struct {
	waitTimes         []float64
	systemTimes       []float64
	completedOrderIDs []int64
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{}
}

// Record appends one completed order's timings.
func (m *MetricsCollector) Record(waitTime, systemTime float64, orderID int64) {
	m.waitTimes = append(m.waitTimes, waitTime)
	m.systemTimes = append(m.systemTimes, systemTime)
	m.completedOrderIDs = append(m.completedOrderIDs, orderID)
}

// Summary computes the scalar statistics. An empty run yields zero means
// rather than an error.
func (m *MetricsCollector) Summary() models.Summary {
	s := models.Summary{CompletedCount: len(m.completedOrderIDs)}
	if s.CompletedCount == 0 {
		return s
	}
	s.MeanWait = mean(m.waitTimes)
	s.MeanSystemTime = mean(m.systemTimes)
	return s
}

// WaitTimes returns the recorded wait times in completion order.
func (m *MetricsCollector) WaitTimes() []float64 { return m.waitTimes }

// SystemTimes returns the recorded sojourn times in completion order.
func (m *MetricsCollector) SystemTimes() []float64 { return m.systemTimes }

// CompletedOrderIDs returns the completed order ids in completion order.
func (m *MetricsCollector) CompletedOrderIDs() []int64 { return m.completedOrderIDs }

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
