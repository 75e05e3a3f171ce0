package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/limaJavier/examscheduling/internal/config"
	"github.com/limaJavier/examscheduling/internal/logging"
	"github.com/limaJavier/examscheduling/pkg/model"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

type BenchmarkResult struct {
	Seed            uint64
	Offerings       int
	Sets            int
	SlotsUsed       int
	OfferingsPlaced int
	Unscheduled     int
	Widened         int
	Duration        int64
}

func main() {
	var (
		configPath string
		inputPath  string
		outPath    string
		trials     uint64
		firstSeed  uint64
	)

	command := &cobra.Command{
		Use:          "benchmark",
		Short:        "Schedule the same input under many seeds and write a CSV summary",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}

			lines, err := model.InputFromFile(inputPath)
			if err != nil {
				return err
			}

			results, err := measure(lines, cfg, firstSeed, trials, logger.Level(zerolog.WarnLevel))
			if err != nil {
				return err
			}

			file, err := os.Create(outPath)
			if err != nil {
				return fmt.Errorf("cannot create CSV file: %w", err)
			}
			if err := toCsv(file, results); err != nil {
				file.Close()
				return err
			}
			if err := file.Close(); err != nil {
				return fmt.Errorf("cannot close CSV file: %w", err)
			}

			best := lo.MinBy(results, func(a, b BenchmarkResult) bool { return a.Unscheduled < b.Unscheduled })
			logger.Info().
				Int("trials", len(results)).
				Uint64("bestSeed", best.Seed).
				Int("bestUnscheduled", best.Unscheduled).
				Str("file", outPath).
				Msg("benchmark finished")
			return nil
		},
	}
	command.Flags().StringVarP(&configPath, "config", "c", "config.yaml", "configuration file (YAML or JSON); missing file means defaults")
	command.Flags().StringVarP(&inputPath, "file", "f", "", "path to the input file")
	command.Flags().StringVarP(&outPath, "out", "o", "benchmark_results.csv", "path of the CSV file")
	command.Flags().Uint64VarP(&trials, "trials", "n", 100, "number of seeds to try")
	command.Flags().Uint64Var(&firstSeed, "seed", 1, "first seed; trials use consecutive seeds")
	_ = command.MarkFlagRequired("file")

	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}

// measure runs one session per seed with the configured layout and cutoff; sessions log through logger
func measure(lines []string, cfg *config.Config, firstSeed, trials uint64, logger zerolog.Logger) ([]BenchmarkResult, error) {
	results := make([]BenchmarkResult, 0, trials)
	for seed := firstSeed; seed < firstSeed+trials; seed++ {
		session := model.NewSession(cfg.SessionOptions(seed, logger))

		start := time.Now()
		if err := session.Run(lines); err != nil {
			return nil, fmt.Errorf("an error occurred with seed %d: %w", seed, err)
		}
		duration := time.Since(start)

		if !session.Verify() {
			return nil, fmt.Errorf("verification failed with seed %d", seed)
		}

		summary := session.Summary()
		results = append(results, BenchmarkResult{
			Seed:            seed,
			Offerings:       summary.Offerings,
			Sets:            summary.Sets,
			SlotsUsed:       summary.SlotsUsed,
			OfferingsPlaced: summary.OfferingsPlaced,
			Unscheduled:     summary.Unscheduled,
			Widened:         len(session.Widened),
			Duration:        duration.Microseconds(),
		})
	}
	return results, nil
}

func toCsv(out io.Writer, results []BenchmarkResult) error {
	writer := csv.NewWriter(out)

	header := []string{"Seed", "Offerings", "Sets", "Slots used", "Offerings placed", "Unscheduled", "Widened", "Duration(us)"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, result := range results {
		record := []string{
			fmt.Sprintf("%d", result.Seed),
			fmt.Sprintf("%d", result.Offerings),
			fmt.Sprintf("%d", result.Sets),
			fmt.Sprintf("%d", result.SlotsUsed),
			fmt.Sprintf("%d", result.OfferingsPlaced),
			fmt.Sprintf("%d", result.Unscheduled),
			fmt.Sprintf("%d", result.Widened),
			fmt.Sprintf("%d", result.Duration),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
