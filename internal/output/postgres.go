package output

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/quickeats/dispatchsim/internal/models"
)

// PostgresOutput persists scenario summaries and per-order records so runs
// can be compared across invocations with plain SQL.
type PostgresOutput struct {
	pool *pgxpool.Pool
}

func NewPostgresOutput(ctx context.Context, config *models.DatabaseConfig) (*PostgresOutput, error) {
	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		config.Host, config.Port, config.User, config.Password, config.DBName, config.SSLMode,
	)

	pool, err := pgxpool.New(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}

	return &PostgresOutput{pool: pool}, nil
}

func (p *PostgresOutput) CreateTables(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS scenario_summaries (
            run_id TEXT PRIMARY KEY,
            scenario_name TEXT NOT NULL,
            num_drivers INT NOT NULL,
            arrival_rate_per_min DOUBLE PRECISION NOT NULL,
            service_mean_min DOUBLE PRECISION NOT NULL,
            horizon_min DOUBLE PRECISION NOT NULL,
            avg_wait_min DOUBLE PRECISION NOT NULL,
            avg_system_min DOUBLE PRECISION NOT NULL,
            throughput_per_hr DOUBLE PRECISION NOT NULL,
            completed_count BIGINT NOT NULL,
            offered_load DOUBLE PRECISION NOT NULL,
            utilization DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT now()
        );
        CREATE TABLE IF NOT EXISTS completed_orders (
            run_id TEXT NOT NULL REFERENCES scenario_summaries(run_id),
            order_id BIGINT NOT NULL,
            driver_id TEXT NOT NULL,
            driver_name TEXT NOT NULL,
            arrival_time DOUBLE PRECISION NOT NULL,
            service_start DOUBLE PRECISION NOT NULL,
            departure_time DOUBLE PRECISION NOT NULL,
            wait_time DOUBLE PRECISION NOT NULL,
            system_time DOUBLE PRECISION NOT NULL,
            PRIMARY KEY (run_id, order_id)
        );`)
	if err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}
	return nil
}

// SaveResult writes one run's summary row and all of its order rows in a
// single transaction.
func (p *PostgresOutput) SaveResult(ctx context.Context, result *models.RunResult) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
        INSERT INTO scenario_summaries (
            run_id, scenario_name, num_drivers, arrival_rate_per_min,
            service_mean_min, horizon_min, avg_wait_min, avg_system_min,
            throughput_per_hr, completed_count, offered_load, utilization
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		result.RunID,
		result.Scenario.Name,
		result.Scenario.NumDrivers,
		result.Scenario.ArrivalRate,
		result.Scenario.ServiceMean,
		result.Scenario.Horizon,
		result.MeanWait,
		result.MeanSystemTime,
		result.ThroughputPerHour(),
		result.CompletedCount,
		result.OfferedLoad,
		result.Utilization,
	)
	if err != nil {
		return fmt.Errorf("failed to insert summary for run %s: %w", result.RunID, err)
	}

	stmt := `
        INSERT INTO completed_orders (
            run_id, order_id, driver_id, driver_name,
            arrival_time, service_start, departure_time, wait_time, system_time
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	for _, order := range result.CompletedOrders {
		_, err = tx.Exec(ctx, stmt,
			result.RunID,
			order.ID,
			order.DriverID,
			order.DriverName,
			order.ArrivalTime,
			order.ServiceStart,
			order.DepartureTime,
			order.WaitTime,
			order.SystemTime,
		)
		if err != nil {
			return fmt.Errorf("failed to insert order %d for run %s: %w", order.ID, result.RunID, err)
		}
	}

	return tx.Commit(ctx)
}

func (p *PostgresOutput) Close() {
	p.pool.Close()
}
