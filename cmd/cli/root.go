package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/limaJavier/examscheduling/internal/config"
	"github.com/limaJavier/examscheduling/internal/logging"
	"github.com/limaJavier/examscheduling/pkg/model"
	"github.com/limaJavier/examscheduling/pkg/report"

	"github.com/spf13/cobra"
)

type runFlags struct {
	configPath string
	inputPath  string
	outDir     string
	seed       uint64
	noConsole  bool
}

func newRootCommand() *cobra.Command {
	flags := &runFlags{}

	root := &cobra.Command{
		Use:           "examscheduler",
		Short:         "Assign course offerings to exam slots without overlapping meeting times",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "config.yaml", "configuration file (YAML or JSON); missing file means defaults")

	run := &cobra.Command{
		Use:   "run",
		Short: "Build an exam schedule from a file of time ranges",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runSchedule(cmd, flags)
		},
	}
	run.Flags().StringVarP(&flags.inputPath, "file", "f", "", "path to the input file, one HH:MMAM-HH:MMPM range per line")
	run.Flags().StringVarP(&flags.outDir, "out-dir", "o", "", "directory the report file is written to")
	run.Flags().Uint64Var(&flags.seed, "seed", 0, "seed of the random slot assignment; 0 picks a fresh one")
	run.Flags().BoolVar(&flags.noConsole, "no-console", false, "do not echo the report to the standard output")
	_ = run.MarkFlagRequired("file")

	root.AddCommand(run)
	return root
}

func runSchedule(cmd *cobra.Command, flags *runFlags) error {
	//** Resolve configuration
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Schedule.Seed = flags.seed
	}
	if flags.outDir != "" {
		cfg.Output.Directory = flags.outDir
	}
	if flags.noConsole {
		cfg.Output.Console = false
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}

	//** Read input
	lines, err := model.InputFromFile(flags.inputPath)
	if err != nil {
		return err
	}

	//** Build schedule
	seed := cfg.Schedule.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	session := model.NewSession(cfg.SessionOptions(seed, logger))
	if err := session.Run(lines); err != nil {
		return fmt.Errorf("an error occurred during schedule construction: %w", err)
	}
	if !session.Verify() {
		return fmt.Errorf("schedule verification failed for seed %d", seed)
	}

	//** Write report
	if err := os.MkdirAll(cfg.Output.Directory, 0o755); err != nil {
		return fmt.Errorf("cannot create output directory: %w", err)
	}
	outFile := filepath.Join(cfg.Output.Directory, reportFileName(time.Now()))
	file, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("cannot create report file: %w", err)
	}
	if err := report.Write(file, session); err != nil {
		file.Close()
		return fmt.Errorf("an error occurred while writing the report: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("cannot close report file: %w", err)
	}
	if cfg.Output.Console {
		if err := report.Write(cmd.OutOrStdout(), session); err != nil {
			return fmt.Errorf("an error occurred while writing the report: %w", err)
		}
	}

	logger.Info().Str("file", outFile).Uint64("seed", seed).Msg("report written")
	return nil
}

func reportFileName(now time.Time) string {
	return fmt.Sprintf("schedule-%s.txt", now.Format("20060102-150405"))
}
