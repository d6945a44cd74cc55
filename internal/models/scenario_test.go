package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenarioValidate(t *testing.T) {
	valid := Scenario{Name: "ok", NumDrivers: 5, ArrivalRate: 0.1, ServiceMean: 30, Horizon: 480}
	assert.NoError(t, valid.Validate())

	cases := []struct {
		name     string
		scenario Scenario
	}{
		{"zero drivers", Scenario{NumDrivers: 0, ArrivalRate: 0.1, ServiceMean: 30, Horizon: 480}},
		{"negative drivers", Scenario{NumDrivers: -1, ArrivalRate: 0.1, ServiceMean: 30, Horizon: 480}},
		{"zero arrival rate", Scenario{NumDrivers: 5, ArrivalRate: 0, ServiceMean: 30, Horizon: 480}},
		{"zero service mean", Scenario{NumDrivers: 5, ArrivalRate: 0.1, ServiceMean: 0, Horizon: 480}},
		{"negative horizon", Scenario{NumDrivers: 5, ArrivalRate: 0.1, ServiceMean: 30, Horizon: -1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.scenario.Validate(), ErrInvalidConfiguration)
		})
	}

	// A zero horizon is a valid, if empty, run.
	zeroHorizon := valid
	zeroHorizon.Horizon = 0
	assert.NoError(t, zeroHorizon.Validate())
}

func TestScenarioLoadMetrics(t *testing.T) {
	sc := Scenario{NumDrivers: 5, ArrivalRate: 0.1, ServiceMean: 30}
	assert.InDelta(t, 3.0, sc.OfferedLoad(), 1e-9)
	assert.InDelta(t, 0.6, sc.Utilization(), 1e-9)
}

func TestDefaultScenarios(t *testing.T) {
	scenarios := DefaultScenarios()
	assert.Len(t, scenarios, 4)
	for _, sc := range scenarios {
		assert.NoError(t, sc.Validate())
		assert.Less(t, sc.Utilization(), 1.0, "stock scenarios are all stable")
	}
}
