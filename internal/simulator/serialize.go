package simulator

import (
	"encoding/json"
	"fmt"

	"github.com/quickeats/dispatchsim/internal/models"
)

// SerializeResult turns one run into its output messages: a single summary
// record followed by one completion record per order, in completion order.
func SerializeResult(result *models.RunResult) ([]models.EventMessage, error) {
	messages := make([]models.EventMessage, 0, len(result.CompletedOrders)+1)

	summary := ScenarioSummaryEvent{
		RunID:             result.RunID,
		ScenarioName:      result.Scenario.Name,
		NumDrivers:        int32(result.Scenario.NumDrivers),
		ArrivalRatePerMin: result.Scenario.ArrivalRate,
		ServiceMeanMin:    result.Scenario.ServiceMean,
		HorizonMin:        result.Scenario.Horizon,
		AvgWaitMin:        result.MeanWait,
		AvgSystemMin:      result.MeanSystemTime,
		ThroughputPerHr:   result.ThroughputPerHour(),
		CompletedCount:    int64(result.CompletedCount),
		OfferedLoad:       result.OfferedLoad,
		Utilization:       result.Utilization,
	}
	data, err := json.Marshal(summary)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize summary for %q: %w", result.Scenario.Name, err)
	}
	messages = append(messages, models.EventMessage{Topic: TopicScenarioSummary, Message: data})

	for _, order := range result.CompletedOrders {
		event := OrderCompletedEvent{
			RunID:         result.RunID,
			ScenarioName:  result.Scenario.Name,
			OrderID:       order.ID,
			DriverID:      order.DriverID,
			DriverName:    order.DriverName,
			ArrivalTime:   order.ArrivalTime,
			ServiceStart:  order.ServiceStart,
			DepartureTime: order.DepartureTime,
			WaitTime:      order.WaitTime,
			SystemTime:    order.SystemTime,
		}
		data, err := json.Marshal(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize order %d: %w", order.ID, err)
		}
		messages = append(messages, models.EventMessage{Topic: TopicOrderCompleted, Message: data})
	}

	return messages, nil
}
