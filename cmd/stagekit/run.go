package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/kbukum/stagekit/component"
	"github.com/kbukum/stagekit/config"
	"github.com/kbukum/stagekit/errors"
	"github.com/kbukum/stagekit/logger"
	"github.com/kbukum/stagekit/observability"
	"github.com/kbukum/stagekit/recipe"
	"github.com/kbukum/stagekit/stage"
	"github.com/kbukum/stagekit/validation"
	"github.com/kbukum/stagekit/version"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2

	shutdownTimeout = 5 * time.Second
)

// identity is used when no recipe is configured.
var identity = &recipe.Recipe{Name: "identity", Steps: []recipe.Step{{Op: "take"}}}

type options struct {
	configFile  string
	recipe      string
	runID       string
	instrument  bool
	showVersion bool
	values      []string
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: %s [--config path] [--recipe path|name] [--run-id uuid] [--instrument] [--] values...\n", serviceName)
		fs.PrintDefaults()
	}

	o := &options{}
	fs.StringVar(&o.configFile, "config", "", "config file path")
	fs.StringVar(&o.recipe, "recipe", "", "recipe file path or name (overrides config)")
	fs.StringVar(&o.runID, "run-id", "", "run ID to attach to logs and spans (default: random UUID)")
	fs.BoolVar(&o.instrument, "instrument", false, "record metrics, spans and debug logs for every step")
	fs.BoolVar(&o.showVersion, "version", false, "print version and exit")

	flags, values := splitArgs(fs, args)
	if err := fs.Parse(flags); err != nil {
		return nil, err
	}
	o.values = append(values, fs.Args()...)
	return o, nil
}

// splitArgs separates flags from values so that negative numbers such as -1
// are read as values. Everything after "--" is a value.
func splitArgs(fs *flag.FlagSet, args []string) (flags, values []string) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return flags, append(values, args[i+1:]...)
		}
		if !strings.HasPrefix(arg, "-") || isNumber(arg) {
			values = append(values, arg)
			continue
		}

		flags = append(flags, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		f := fs.Lookup(name)
		if f == nil || i+1 >= len(args) {
			continue
		}
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		i++
		flags = append(flags, args[i])
	}
	return flags, values
}

func isNumber(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, version.Get().String())
		return exitOK
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", serviceName, err)
		return exitError
	}

	log := logger.NewWithWriter(&cfg.Logging, cfg.Name, stderr)
	logger.SetGlobalLogger(log)
	logger.Reset()
	logger.RegisterDefaults("config", "recipe", "cli")
	cli := logger.Get("cli")

	inputs, err := parseValues(opts.values)
	if err != nil {
		cli.Error("invalid input", logger.ErrorFields("parse_values", err))
		return exitUsage
	}

	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		cli.Error("telemetry init failed", logger.ErrorFields("init_telemetry", err))
		return exitError
	}
	defer shutdown()

	runID := uuid.New().String()
	if opts.runID != "" {
		id, err := validation.ParseUUID("run-id", opts.runID)
		if err != nil {
			cli.Error("invalid run id", logger.ErrorFields("parse_run_id", err))
			return exitUsage
		}
		runID = id.String()
	}
	ctx = logger.ContextWithRunID(ctx, runID)

	r, loader, err := loadRecipe(cfg)
	if err != nil {
		cli.WithContext(ctx).Error("loading recipe failed", logger.ErrorFields("load_recipe", err))
		return exitError
	}
	ctx = logger.ContextWithRecipe(ctx, r.Name)
	cli = cli.WithContext(ctx)

	var metrics *observability.StageMetrics
	if cfg.Instrument {
		if metrics, err = observability.NewStageMetrics(observability.Meter(cfg.Name)); err != nil {
			cli.Error("creating metrics failed", logger.ErrorFields("create_metrics", err))
			return exitError
		}
	}

	rc := observability.NewRunContext(cfg.Name, r.Name, runID, metrics)
	ctx, span := rc.StartSpanForRun(ctx)

	buildOpts := []recipe.BuildOption{
		recipe.WithLoader(loader),
		recipe.WithLogger(logger.Get("recipe").WithContext(ctx)),
	}
	if cfg.Instrument {
		buildOpts = append(buildOpts, recipe.WithWrapper(instrumentStep(ctx, log, metrics)))
	}

	chain, err := recipe.Build(r, recipe.DefaultRegistry(), buildOpts...)
	if err != nil {
		rc.EndRun(ctx, span, "error", err)
		cli.Error("building recipe failed", logger.ErrorFields("build_recipe", err))
		return exitError
	}

	produced := 0
	for _, in := range inputs {
		if err := ctx.Err(); err != nil {
			rc.EndRun(ctx, span, "cancelled", err)
			cli.Warn("run cancelled", logger.ErrorFields("run", err))
			return exitError
		}
		out, ok := chain.Advance(in)
		if ok {
			produced++
			fmt.Fprintf(stdout, "%s -> %s\n", formatNumber(in), formatNumber(out))
		} else {
			fmt.Fprintf(stdout, "%s -> -\n", formatNumber(in))
		}
	}

	rc.EndRun(ctx, span, "ok", nil)
	cli.Info("run complete",
		logger.Fields("inputs", len(inputs), logger.FieldProduced, produced),
		logger.DurationFields("run", rc.Duration()),
	)
	return exitOK
}

func loadConfig(opts *options) (*Config, error) {
	var loaderOpts []config.LoaderOption
	if opts.configFile != "" {
		if _, err := os.Stat(opts.configFile); err != nil {
			return nil, errors.NotFound("config file", opts.configFile).WithCause(err)
		}
		loaderOpts = append(loaderOpts, config.WithConfigFile(opts.configFile))
	}

	cfg := &Config{}
	if err := config.LoadConfig(serviceName, cfg, loaderOpts...); err != nil {
		return nil, err
	}
	if opts.recipe != "" {
		cfg.Recipe = opts.recipe
	}
	if opts.instrument {
		cfg.Instrument = true
	}

	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func parseValues(args []string) ([]float64, error) {
	values := make([]float64, 0, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, errors.InvalidInput(fmt.Sprintf("values[%d]", i), fmt.Sprintf("%q is not a number", arg)).WithCause(err)
		}
		values = append(values, v)
	}
	return values, nil
}

// loadRecipe resolves cfg.Recipe as a file path first, then as a name in
// cfg.RecipeDirs. The returned loader resolves includes.
func loadRecipe(cfg *Config) (*recipe.Recipe, recipe.Loader, error) {
	dirs := cfg.RecipeDirs
	if cfg.Recipe == "" {
		return identity, recipe.NewFileLoader(dirs...), nil
	}

	if _, err := os.Stat(cfg.Recipe); err == nil {
		r, err := recipe.LoadFile(cfg.Recipe)
		if err != nil {
			return nil, nil, err
		}
		dirs = append([]string{filepath.Dir(cfg.Recipe)}, dirs...)
		return r, recipe.NewFileLoader(dirs...), nil
	}

	loader := recipe.NewFileLoader(dirs...)
	r, err := loader.Load(cfg.Recipe)
	if err != nil {
		return nil, nil, err
	}
	return r, loader, nil
}

// instrumentStep wraps each step with metrics, a span per advance and a
// debug log line per advance.
func instrumentStep(ctx context.Context, log *logger.Logger, metrics *observability.StageMetrics) recipe.Wrapper {
	tracer := observability.Tracer(serviceName)
	stepLog := log.WithContext(ctx)
	return func(label string, s stage.Stage[float64, float64]) stage.Stage[float64, float64] {
		s = observability.Instrument[float64, float64](ctx, s, label, metrics)
		s = observability.Traced[float64, float64](ctx, s, label, tracer)
		return stage.New(func(in float64) (float64, bool) {
			out, ok := s.Advance(in)
			stepLog.Debug("step advanced", logger.AdvanceFields(label, in, out, ok))
			return out, ok
		})
	}
}

// initTelemetry starts the exporters enabled in cfg and returns a function
// that flushes and stops them.
func initTelemetry(ctx context.Context, cfg *Config) (func(), error) {
	components := component.NewRegistry(logger.Get("cli"))
	components.SetStopTimeout(shutdownTimeout)
	if cfg.Metrics.Enabled {
		if err := components.Register(observability.NewMeterComponent(&cfg.Metrics)); err != nil {
			return nil, err
		}
	}
	if cfg.Tracing.Enabled {
		if err := components.Register(observability.NewTracerComponent(&cfg.Tracing)); err != nil {
			return nil, err
		}
	}

	stop := func() {
		if err := components.StopAll(context.Background()); err != nil {
			otel.Handle(err)
		}
	}
	if err := components.StartAll(ctx); err != nil {
		stop()
		return nil, err
	}
	return stop, nil
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
