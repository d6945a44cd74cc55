package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quickeats/dispatchsim/internal/models"
	"github.com/quickeats/dispatchsim/internal/output"
	"github.com/quickeats/dispatchsim/internal/simulator"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "dispatchsim",
	Short: "Simulates delivery-driver dispatch under different staffing and demand mixes",
	Long: `dispatchsim runs a discrete-event simulation of a fixed driver fleet absorbing
a Poisson stream of orders, and reports queueing-delay and throughput
statistics for each configured scenario.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := models.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := runScenarios(cfg); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	},
}

func runScenarios(cfg *models.Config) error {
	bar := progressbar.NewOptions(len(cfg.Scenarios),
		progressbar.OptionSetDescription("running scenarios"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionClearOnFinish(),
	)

	results := make([]*models.RunResult, 0, len(cfg.Scenarios))
	for i, scenario := range cfg.Scenarios {
		seed := cfg.Seed
		if seed != 0 {
			// Offset so scenarios don't replay each other's draws.
			seed += int64(i)
		}
		result, err := simulator.RunScenario(scenario, seed)
		if err != nil {
			return fmt.Errorf("scenario %q: %w", scenario.Name, err)
		}
		results = append(results, result)
		_ = bar.Add(1)
	}

	printSummaryTable(results)

	dest, err := simulator.DetermineOutputDestination(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := dest.Close(); err != nil {
			log.Printf("Error closing output destination: %v", err)
		}
	}()

	for _, result := range results {
		messages, err := simulator.SerializeResult(result)
		if err != nil {
			return err
		}
		for _, msg := range messages {
			if err := dest.WriteMessage(msg.Topic, msg.Message); err != nil {
				log.Printf("Failed to write message to %s: %v", msg.Topic, err)
			}
		}
	}

	if cfg.PostgresEnabled {
		if err := saveToPostgres(cfg, results); err != nil {
			return err
		}
	}

	return nil
}

func saveToPostgres(cfg *models.Config, results []*models.RunResult) error {
	ctx := context.Background()
	pg, err := output.NewPostgresOutput(ctx, &cfg.Database)
	if err != nil {
		return err
	}
	defer pg.Close()

	if err := pg.CreateTables(ctx); err != nil {
		return err
	}
	for _, result := range results {
		if err := pg.SaveResult(ctx, result); err != nil {
			return err
		}
	}
	return nil
}

func printSummaryTable(results []*models.RunResult) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "scenario\tdrivers\tarrival/min\tservice mean\trho\tavg wait\tavg system\torders/hr\tcompleted")
	for _, r := range results {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.1f\t%.2f\t%.3f\t%.3f\t%.2f\t%d\n",
			r.Scenario.Name,
			r.Scenario.NumDrivers,
			r.Scenario.ArrivalRate,
			r.Scenario.ServiceMean,
			r.Utilization,
			r.MeanWait,
			r.MeanSystemTime,
			r.ThroughputPerHour(),
			r.CompletedCount,
		)
	}
	if err := w.Flush(); err != nil {
		log.Printf("Error writing summary table: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is examples/config.json)")

	rootCmd.Flags().Int64("seed", 0, "Random seed (0 seeds from the clock)")
	rootCmd.Flags().String("output-path", "", "Base path for file output (console if empty)")
	rootCmd.Flags().String("output-folder", "dispatchsim_output", "Folder under the output path")
	rootCmd.Flags().String("output-format", "csv", "File output format: csv, json or parquet")
	rootCmd.Flags().String("output-destination", "local", "Where parquet files go: local or s3")
	rootCmd.Flags().Bool("kafka-enabled", false, "Enable Kafka output")
	rootCmd.Flags().String("kafka-broker-list", "localhost:9092", "Kafka broker list")
	rootCmd.Flags().Bool("postgres-enabled", false, "Persist results to Postgres")

	// Bind each flag to its config key explicitly; flag names use dashes,
	// config keys use underscores.
	flags := rootCmd.Flags()
	_ = viper.BindPFlag("seed", flags.Lookup("seed"))
	_ = viper.BindPFlag("output_path", flags.Lookup("output-path"))
	_ = viper.BindPFlag("output_folder", flags.Lookup("output-folder"))
	_ = viper.BindPFlag("output_format", flags.Lookup("output-format"))
	_ = viper.BindPFlag("output_destination", flags.Lookup("output-destination"))
	_ = viper.BindPFlag("kafka_enabled", flags.Lookup("kafka-enabled"))
	_ = viper.BindPFlag("kafka_broker_list", flags.Lookup("kafka-broker-list"))
	_ = viper.BindPFlag("postgres_enabled", flags.Lookup("postgres-enabled"))
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
