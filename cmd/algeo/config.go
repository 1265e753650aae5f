package main

import (
	"flag"
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/algeo/calc"
	"github.com/katalvlaran/algeo/trace"
)

// Output formats accepted by -format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the command-line configuration.
type Config struct {
	In        string
	Format    string
	Steps     bool
	Verify    bool
	Workers   int
	Precision int
	LogLevel  string
}

// Load parses args on top of defaults read from ALGEO_WORKERS,
// ALGEO_PRECISION, ALGEO_FORMAT and GOLOG_LOG_LEVEL.
func Load(args []string, stderr io.Writer) (*Config, error) {
	workers, err := envInt("ALGEO_WORKERS", calc.DefaultWorkers)
	if err != nil {
		return nil, err
	}
	precision, err := envInt("ALGEO_PRECISION", calc.DefaultPrecision)
	if err != nil {
		return nil, err
	}
	cfg := &Config{
		Format:    envString("ALGEO_FORMAT", FormatText),
		Workers:   workers,
		Precision: precision,
		LogLevel:  envString("GOLOG_LOG_LEVEL", "error"),
	}

	fs := flag.NewFlagSet("algeo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.In, "in", "-", "problem file (YAML), - for stdin")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or yaml")
	fs.BoolVar(&cfg.Steps, "steps", false, "include the step trace")
	fs.BoolVar(&cfg.Verify, "verify", false, "cross-check results with gonum")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "problems evaluated concurrently")
	fs.IntVar(&cfg.Precision, "precision", cfg.Precision, "decimals in steps and output")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	if err = fs.Parse(args); err != nil {
		return nil, err
	}

	switch {
	case cfg.Format != FormatText && cfg.Format != FormatYAML:
		return nil, errors.Errorf("unknown format %q", cfg.Format)
	case cfg.Workers < 1:
		return nil, errors.Errorf("workers must be >= 1, got %d", cfg.Workers)
	case cfg.Precision < 0 || cfg.Precision > trace.MaxPrecision:
		return nil, errors.Errorf("precision must be in [0, %d], got %d", trace.MaxPrecision, cfg.Precision)
	}

	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.Wrapf(err, "%s", key)
	}

	return n, nil
}

// CalcOptions translates the configuration into calc options.
func (c *Config) CalcOptions() []calc.Option {
	opts := []calc.Option{calc.WithPrecision(c.Precision), calc.WithWorkers(c.Workers)}
	if !c.Steps {
		opts = append(opts, calc.WithoutSteps())
	}

	return opts
}
