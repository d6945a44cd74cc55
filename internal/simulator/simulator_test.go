package simulator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickeats/dispatchsim/internal/models"
)

func baselineScenario() models.Scenario {
	return models.Scenario{
		Name:        "baseline",
		NumDrivers:  5,
		ArrivalRate: 0.1,
		ServiceMean: 30.0,
		Horizon:     480,
	}
}

func TestRunScenarioRejectsInvalidConfiguration(t *testing.T) {
	cases := []models.Scenario{
		{NumDrivers: 0, ArrivalRate: 0.1, ServiceMean: 30, Horizon: 480},
		{NumDrivers: 5, ArrivalRate: -1, ServiceMean: 30, Horizon: 480},
		{NumDrivers: 5, ArrivalRate: 0.1, ServiceMean: 30, Horizon: -10},
	}
	for _, sc := range cases {
		_, err := RunScenario(sc, 1)
		assert.ErrorIs(t, err, models.ErrInvalidConfiguration)
	}
}

func TestRunIsDeterministicForFixedSeed(t *testing.T) {
	first, err := RunScenario(baselineScenario(), 12345)
	require.NoError(t, err)
	second, err := RunScenario(baselineScenario(), 12345)
	require.NoError(t, err)

	assert.Equal(t, first.WaitTimes, second.WaitTimes)
	assert.Equal(t, first.SystemTimes, second.SystemTimes)
	assert.Equal(t, first.CompletedOrderIDs, second.CompletedOrderIDs)
	assert.Equal(t, first.MeanWait, second.MeanWait)
	assert.Equal(t, first.CompletedCount, second.CompletedCount)
}

func TestCompletedOrderTimingInvariants(t *testing.T) {
	result, err := RunScenario(baselineScenario(), 7)
	require.NoError(t, err)
	require.NotEmpty(t, result.CompletedOrders)

	for _, order := range result.CompletedOrders {
		assert.GreaterOrEqual(t, order.WaitTime, 0.0)
		assert.GreaterOrEqual(t, order.SystemTime, order.WaitTime,
			"service time is non-negative")
		assert.LessOrEqual(t, order.DepartureTime, result.Scenario.Horizon)
		assert.Equal(t, models.OrderStatusCompleted, order.Status)
		assert.NotEmpty(t, order.DriverID, "completed orders carry a roster driver")
	}
}

func TestThroughputIsCompletedOverHorizon(t *testing.T) {
	result, err := RunScenario(baselineScenario(), 3)
	require.NoError(t, err)

	expected := float64(result.CompletedCount) / result.Scenario.Horizon
	assert.Equal(t, expected, result.ThroughputPerUnitTime)
	assert.InDelta(t, expected*60, result.ThroughputPerHour(), 1e-9)
}

func TestBaselineScenarioIsStable(t *testing.T) {
	// M/M/5 at rho = 0.6: waits should be far below the 30-minute service mean.
	result, err := RunScenario(baselineScenario(), 42)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, result.Utilization, 1e-9)
	assert.Greater(t, result.CompletedCount, 20)
	assert.Less(t, result.CompletedCount, 80)
	assert.False(t, math.IsInf(result.MeanWait, 0))
	assert.Less(t, result.MeanWait, result.Scenario.ServiceMean/2)
	assert.LessOrEqual(t, result.DriversBusyAtEnd, result.Scenario.NumDrivers)
}

func TestOverloadScenarioLeavesOrdersWaiting(t *testing.T) {
	overload := models.Scenario{
		Name:        "overload",
		NumDrivers:  1,
		ArrivalRate: 0.5,
		ServiceMean: 30.0,
		Horizon:     60,
	}
	result, err := RunScenario(overload, 42)
	require.NoError(t, err)

	assert.Greater(t, result.Utilization, 1.0, "offered load well past stability")
	assert.Less(t, result.CompletedCount, 10,
		"a single driver at 30 min per order completes only a few in an hour")
	assert.GreaterOrEqual(t, result.OrdersWaitingAtEnd, 1)
	assert.LessOrEqual(t, result.DriversBusyAtEnd, 1)
}

func TestSingleDriverServesInArrivalOrder(t *testing.T) {
	// With one driver there is no reordering: grants, and therefore
	// completions, follow arrival order exactly.
	scenario := models.Scenario{
		Name:        "fifo",
		NumDrivers:  1,
		ArrivalRate: 0.5,
		ServiceMean: 10.0,
		Horizon:     240,
	}
	result, err := RunScenario(scenario, 11)
	require.NoError(t, err)
	require.NotEmpty(t, result.CompletedOrders)

	prevStart := -1.0
	for i, order := range result.CompletedOrders {
		assert.Equal(t, int64(i+1), order.ID,
			"ids are contiguous from 1 and completions follow arrival order")
		assert.GreaterOrEqual(t, order.ServiceStart, prevStart)
		prevStart = order.ServiceStart
	}
}

func TestZeroHorizonProducesEmptyRun(t *testing.T) {
	scenario := baselineScenario()
	scenario.Horizon = 0

	result, err := RunScenario(scenario, 5)
	require.NoError(t, err)

	assert.Equal(t, 0, result.CompletedCount)
	assert.Zero(t, result.MeanWait)
	assert.Zero(t, result.MeanSystemTime)
	assert.Zero(t, result.ThroughputPerUnitTime, "throughput defined as 0 for a zero horizon")
	assert.Empty(t, result.WaitTimes)
}

func TestClockNeverMovesBackward(t *testing.T) {
	sim, err := NewSimulator(baselineScenario(), 1)
	require.NoError(t, err)

	sim.CurrentTime = 100
	err = sim.advanceTo(&models.Event{Time: 99})
	assert.Error(t, err)

	require.NoError(t, sim.advanceTo(&models.Event{Time: 100}))
	require.NoError(t, sim.advanceTo(&models.Event{Time: 101}))
	assert.Equal(t, 101.0, sim.CurrentTime)
}

func TestRosterMatchesFleetSize(t *testing.T) {
	sim, err := NewSimulator(baselineScenario(), 1)
	require.NoError(t, err)
	assert.Len(t, sim.Roster, 5)
	for _, driver := range sim.Roster {
		assert.NotEmpty(t, driver.ID)
		assert.NotEmpty(t, driver.Name)
	}
}
