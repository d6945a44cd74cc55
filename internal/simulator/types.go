package simulator

import (
	"fmt"

	"github.com/xitongsys/parquet-go/schema"
)

const (
	TopicOrderCompleted  = "order_completed_events"
	TopicScenarioSummary = "scenario_summary_events"
)

// OrderCompletedEvent is the per-order output record. Virtual timestamps are
// minutes from the start of the run.
type OrderCompletedEvent struct {
	RunID         string  `json:"runId" parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ScenarioName  string  `json:"scenarioName" parquet:"name=scenarioName,type=BYTE_ARRAY,convertedtype=UTF8"`
	OrderID       int64   `json:"orderId" parquet:"name=orderId,type=INT64"`
	DriverID      string  `json:"driverId" parquet:"name=driverId,type=BYTE_ARRAY,convertedtype=UTF8"`
	DriverName    string  `json:"driverName" parquet:"name=driverName,type=BYTE_ARRAY,convertedtype=UTF8"`
	ArrivalTime   float64 `json:"arrivalTime" parquet:"name=arrivalTime,type=DOUBLE"`
	ServiceStart  float64 `json:"serviceStart" parquet:"name=serviceStart,type=DOUBLE"`
	DepartureTime float64 `json:"departureTime" parquet:"name=departureTime,type=DOUBLE"`
	WaitTime      float64 `json:"waitTime" parquet:"name=waitTime,type=DOUBLE"`
	SystemTime    float64 `json:"systemTime" parquet:"name=systemTime,type=DOUBLE"`
}

// ScenarioSummaryEvent is the one-row-per-scenario record behind the summary
// table.
type ScenarioSummaryEvent struct {
	RunID             string  `json:"runId" parquet:"name=runId,type=BYTE_ARRAY,convertedtype=UTF8"`
	ScenarioName      string  `json:"scenarioName" parquet:"name=scenarioName,type=BYTE_ARRAY,convertedtype=UTF8"`
	NumDrivers        int32   `json:"numDrivers" parquet:"name=numDrivers,type=INT32"`
	ArrivalRatePerMin float64 `json:"arrivalRatePerMin" parquet:"name=arrivalRatePerMin,type=DOUBLE"`
	ServiceMeanMin    float64 `json:"serviceMeanMin" parquet:"name=serviceMeanMin,type=DOUBLE"`
	HorizonMin        float64 `json:"horizonMin" parquet:"name=horizonMin,type=DOUBLE"`
	AvgWaitMin        float64 `json:"avgWaitMin" parquet:"name=avgWaitMin,type=DOUBLE"`
	AvgSystemMin      float64 `json:"avgSystemMin" parquet:"name=avgSystemMin,type=DOUBLE"`
	ThroughputPerHr   float64 `json:"throughputPerHr" parquet:"name=throughputPerHr,type=DOUBLE"`
	CompletedCount    int64   `json:"completedCount" parquet:"name=completedCount,type=INT64"`
	OfferedLoad       float64 `json:"offeredLoad" parquet:"name=offeredLoad,type=DOUBLE"`
	Utilization       float64 `json:"utilization" parquet:"name=utilization,type=DOUBLE"`
}

func GetSchema(topic string) (*schema.SchemaHandler, error) {
	var sh *schema.SchemaHandler
	var err error

	switch topic {
	case TopicOrderCompleted:
		sh, err = schema.NewSchemaHandlerFromStruct(new(OrderCompletedEvent))
	case TopicScenarioSummary:
		sh, err = schema.NewSchemaHandlerFromStruct(new(ScenarioSummaryEvent))
	default:
		return nil, fmt.Errorf("unknown topic: %s", topic)
	}

	if err != nil {
		return nil, fmt.Errorf("error creating schema for %s: %w", topic, err)
	}
	return sh, nil
}
