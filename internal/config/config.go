package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/mitchellh/mapstructure"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/limaJavier/examscheduling/pkg/model"
)

// EnvPrefix selects the environment variables overriding file values, e.g. EXAMS_SCHEDULE__SEED=7
const EnvPrefix = "EXAMS_"

type Config struct {
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Slots    SlotsConfig    `mapstructure:"slots"`
	Output   OutputConfig   `mapstructure:"output"`
	Log      LogConfig      `mapstructure:"log"`
}

type ScheduleConfig struct {
	// Seed of the random source; 0 picks a fresh seed on every run
	Seed uint64 `mapstructure:"seed"`
	// EveningCutoff is the start time from which single-day offerings are once-a-week offerings
	EveningCutoff string `mapstructure:"evening_cutoff"`
}

type SlotsConfig struct {
	Periods []string `mapstructure:"periods"`
	Evening string   `mapstructure:"evening"`
}

type OutputConfig struct {
	Directory string `mapstructure:"directory"`
	Console   bool   `mapstructure:"console"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg := &Config{Output: OutputConfig{Console: true}}
	cfg.SetDefaults()
	return cfg
}

// Load reads a YAML or JSON file (if it exists) and applies environment overrides on top of it
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, err := parserFor(path)
			if err != nil {
				return nil, err
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return nil, fmt.Errorf("cannot read config file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("cannot stat config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("cannot read environment: %w", err)
	}

	cfg := &Config{Output: OutputConfig{Console: true}}
	if err := mapstructure.WeakDecode(k.Raw(), cfg); err != nil {
		return nil, fmt.Errorf("cannot decode config: %w", err)
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml.Parser(), nil
	case ".json":
		return json.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config format: %s", filepath.Ext(path))
	}
}

func (c *Config) SetDefaults() {
	c.Schedule.SetDefaults()
	c.Slots.SetDefaults()
	c.Output.SetDefaults()
	c.Log.SetDefaults()
}

func (c Config) Validate() error {
	return errors.Join(
		c.Schedule.Validate(),
		c.Slots.Validate(),
		c.Log.Validate(),
	)
}

// SessionOptions builds the options of a scheduling session seeded with seed
func (c *Config) SessionOptions(seed uint64, logger zerolog.Logger) model.SessionOptions {
	return model.SessionOptions{
		Alphabet: model.Weekdays,
		Layout:   c.Slots.Layout(),
		Rule:     c.Schedule.Rule(),
		Random:   rand.New(rand.NewPCG(seed, seed)),
		Logger:   logger,
	}
}

func (c *ScheduleConfig) SetDefaults() {
	if c.EveningCutoff == "" {
		c.EveningCutoff = model.DefaultEveningCutoff.String()
	}
}

func (c ScheduleConfig) Validate() error {
	if _, err := model.ParseTimeOfDay(c.EveningCutoff); err != nil {
		return fmt.Errorf("schedule.evening_cutoff: %w", err)
	}
	return nil
}

// Rule returns the once-a-week classification; the cutoff must have been validated
func (c ScheduleConfig) Rule() model.EveningRule {
	return model.EveningRule{Cutoff: lo.Must(model.ParseTimeOfDay(c.EveningCutoff))}
}

func (c *SlotsConfig) SetDefaults() {
	layout := model.DefaultSlotLayout()
	if len(c.Periods) == 0 {
		c.Periods = layout.Periods
	}
	if c.Evening == "" {
		c.Evening = layout.Evening
	}
}

func (c SlotsConfig) Validate() error {
	if len(c.Periods) != model.PeriodsPerDay {
		return fmt.Errorf("slots.periods: expected %d labels, got %d", model.PeriodsPerDay, len(c.Periods))
	}
	for _, label := range append([]string{c.Evening}, c.Periods...) {
		if _, err := model.ParseTimeRange(label); err != nil {
			return fmt.Errorf("slots: %w", err)
		}
	}
	return nil
}

// Layout keeps the default days and replaces the labels
func (c SlotsConfig) Layout() model.SlotLayout {
	layout := model.DefaultSlotLayout()
	layout.Periods = c.Periods
	layout.Evening = c.Evening
	return layout
}

func (c *OutputConfig) SetDefaults() {
	if c.Directory == "" {
		c.Directory = "."
	}
}

func (c *LogConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
}

func (c LogConfig) Validate() error {
	if !lo.Contains([]string{"console", "json"}, c.Format) {
		return fmt.Errorf("unknown log format %s", c.Format)
	}
	return nil
}
