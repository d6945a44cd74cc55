package models

import "fmt"

// Scenario is one staffing/demand configuration to simulate. ArrivalRate is
// orders per minute, ServiceMean is minutes per order, Horizon is the virtual
// cutoff in minutes.
type Scenario struct {
	Name        string  `mapstructure:"name" json:"name"`
	NumDrivers  int     `mapstructure:"num_drivers" json:"num_drivers"`
	ArrivalRate float64 `mapstructure:"arrival_rate" json:"arrival_rate"`
	ServiceMean float64 `mapstructure:"service_mean" json:"service_mean"`
	Horizon     float64 `mapstructure:"horizon" json:"horizon"`
}

// Validate fails closed before any event is scheduled.
func (sc Scenario) Validate() error {
	if sc.NumDrivers <= 0 {
		return fmt.Errorf("%w: scenario %q: num_drivers must be positive, got %d",
			ErrInvalidConfiguration, sc.Name, sc.NumDrivers)
	}
	if sc.ArrivalRate <= 0 {
		return fmt.Errorf("%w: scenario %q: arrival_rate must be positive, got %g",
			ErrInvalidConfiguration, sc.Name, sc.ArrivalRate)
	}
	if sc.ServiceMean <= 0 {
		return fmt.Errorf("%w: scenario %q: service_mean must be positive, got %g",
			ErrInvalidConfiguration, sc.Name, sc.ServiceMean)
	}
	if sc.Horizon < 0 {
		return fmt.Errorf("%w: scenario %q: horizon must be non-negative, got %g",
			ErrInvalidConfiguration, sc.Name, sc.Horizon)
	}
	return nil
}

// OfferedLoad returns a = lambda * Ts, the offered load in erlangs.
func (sc Scenario) OfferedLoad() float64 {
	return sc.ArrivalRate * sc.ServiceMean
}

// Utilization returns rho = a / c. A value below 1 means the queue is stable.
func (sc Scenario) Utilization() float64 {
	return sc.OfferedLoad() / float64(sc.NumDrivers)
}

// DefaultScenarios is the stock comparison set: an 8-hour shift under four
// staffing/demand mixes.
func DefaultScenarios() []Scenario {
	return []Scenario{
		{Name: "Baseline (5 drivers)", NumDrivers: 5, ArrivalRate: 0.1, ServiceMean: 30.0, Horizon: 480},
		{Name: "More drivers (8 drivers)", NumDrivers: 8, ArrivalRate: 0.1, ServiceMean: 30.0, Horizon: 480},
		{Name: "Higher demand (5 drivers, 50% more orders)", NumDrivers: 5, ArrivalRate: 0.15, ServiceMean: 30.0, Horizon: 480},
		{Name: "Faster deliveries (5 drivers, faster service)", NumDrivers: 5, ArrivalRate: 0.1, ServiceMean: 20.0, Horizon: 480},
	}
}
