package simulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCollectorEmptySummary(t *testing.T) {
	m := NewMetricsCollector()
	s := m.Summary()
	assert.Equal(t, 0, s.CompletedCount)
	assert.Zero(t, s.MeanWait, "empty run means zero, not an error")
	assert.Zero(t, s.MeanSystemTime)
}

func TestMetricsCollectorMeans(t *testing.T) {
	m := NewMetricsCollector()
	m.Record(2, 10, 1)
	m.Record(4, 20, 2)
	m.Record(0, 30, 3)

	s := m.Summary()
	assert.Equal(t, 3, s.CompletedCount)
	assert.InDelta(t, 2.0, s.MeanWait, 1e-9)
	assert.InDelta(t, 20.0, s.MeanSystemTime, 1e-9)

	assert.Equal(t, []int64{1, 2, 3}, m.CompletedOrderIDs(), "completion order preserved")
}
