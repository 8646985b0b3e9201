package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quantmind-br/contentpack/internal/config"
	"github.com/quantmind-br/contentpack/internal/domain"
	"github.com/quantmind-br/contentpack/internal/manifest"
	"github.com/quantmind-br/contentpack/internal/output"
	"github.com/quantmind-br/contentpack/internal/registry"
	"github.com/quantmind-br/contentpack/internal/utils"
)

// Orchestrator coordinates a manifest build: load, build, validate, write
type Orchestrator struct {
	config         *config.Config
	opts           domain.CommonOptions
	logger         *utils.Logger
	loader         *registry.Loader
	writer         *output.Writer
	clock          domain.Clock
	progressWriter io.Writer
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	domain.CommonOptions
	Config *config.Config
	// Clock stamps the manifest. Defaults to the system clock.
	Clock domain.Clock
	// Logger overrides the logger built from Config.Logging
	Logger *utils.Logger
	// ProgressWriter receives the progress bar. Defaults to stderr.
	ProgressWriter io.Writer
}

// Result describes a completed build
type Result struct {
	Manifest   *domain.Manifest
	Summary    output.Summary
	Warnings   []string
	OutputPath string
	Written    bool
	Replaced   bool // an existing manifest was overwritten
	Duration   time.Duration
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config

	// Validate config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Verbose: opts.Verbose,
		})
	}

	// Flags and config file settings are merged; either one enables a switch
	common := opts.CommonOptions
	common.DryRun = common.DryRun || cfg.Output.DryRun
	common.Compress = common.Compress || cfg.Output.Compress
	common.Strict = common.Strict || cfg.Validation.Strict

	progressWriter := opts.ProgressWriter
	if progressWriter == nil {
		progressWriter = os.Stderr
	}

	return &Orchestrator{
		config: cfg,
		opts:   common,
		logger: logger,
		loader: registry.NewLoader(),
		writer: output.NewWriter(output.WriterOptions{
			Path:     utils.ExpandPath(cfg.Output.Path),
			Compress: common.Compress,
			DryRun:   common.DryRun,
		}),
		clock:          opts.Clock,
		progressWriter: progressWriter,
	}, nil
}

// Run builds the manifest from the configured registry and writes it.
// Validation warnings are logged and returned in the result; with strict
// validation they also fail the run, after the manifest has been written.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	registryPath := utils.ExpandPath(o.config.Registry.Path)

	o.logger.Info().
		Str("registry", registryPath).
		Str("output", o.writer.Path()).
		Bool("dry_run", o.opts.DryRun).
		Msg("Generating manifest")

	reg, err := o.loader.Load(registryPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}
	o.logger.Info().Int("docs", reg.Len()).Msg("Loaded registry")

	builderOpts := manifest.BuilderOptions{Clock: o.clock}
	if o.opts.Progress {
		bar := utils.NewProgressBar(reg.Len(), utils.DescClassifying, o.progressWriter)
		builderOpts.OnDocument = func(string) {
			_ = bar.Add(1)
		}
		defer bar.Finish()
	}

	m := manifest.NewBuilder(builderOpts).Build(reg)
	summary := output.Summarize(m)
	o.logSummary(summary)

	warnings := o.validate(m)

	result := &Result{
		Manifest:   m,
		Summary:    summary,
		Warnings:   warnings,
		OutputPath: o.writer.Path(),
	}

	existed := o.writer.Exists()
	if err := o.writer.Write(ctx, m); err != nil {
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Manifest generation cancelled")
			return result, ctx.Err()
		}
		return result, err
	}
	result.Written = !o.opts.DryRun
	result.Replaced = result.Written && existed
	result.Duration = time.Since(startTime)

	if result.Written {
		event := o.logger.Info().Str("path", o.writer.Path()).Bool("replaced", result.Replaced)
		if o.opts.Compress {
			event = event.Str("compressed", o.writer.CompressedPath())
		}
		event.Dur("duration", result.Duration).Msg("Manifest written")
	} else {
		o.logger.Info().
			Str("path", o.writer.Path()).
			Dur("duration", result.Duration).
			Msg("Dry run, manifest not written")
	}

	if o.opts.Strict && len(warnings) > 0 {
		return result, domain.NewValidationError(warnings)
	}

	return result, nil
}

// ValidateFile runs the reference check over an existing manifest file.
// With strict validation, warnings are returned as an error.
func (o *Orchestrator) ValidateFile(ctx context.Context, path string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := output.Read(utils.ExpandPath(path))
	if err != nil {
		return nil, err
	}
	o.logger.WithPath(path).Info().
		Int("docs", m.Docs.Len()).
		Str("pack_version", m.PackVersion).
		Msg("Loaded manifest")

	warnings := o.validate(m)
	if o.opts.Strict && len(warnings) > 0 {
		return warnings, domain.NewValidationError(warnings)
	}
	return warnings, nil
}

// OutputPath returns where Run writes the manifest
func (o *Orchestrator) OutputPath() string {
	return o.writer.Path()
}

func (o *Orchestrator) validate(m *domain.Manifest) []string {
	warnings := manifest.Validate(m)
	if len(warnings) == 0 {
		o.logger.Info().Msg("Manifest validation passed")
		return nil
	}

	for _, w := range warnings {
		o.logger.Warn().Msg(w)
	}
	o.logger.Warn().Int("warnings", len(warnings)).Msg("Manifest validation found dangling references")
	return warnings
}

func (o *Orchestrator) logSummary(s output.Summary) {
	o.logger.Info().Int("entries", s.Documents).Msg("Built docs map")
	o.logger.Info().Int("semesters", s.Semesters).Msg("Built sidebar tree")
	o.logger.Info().Int("index_pages", s.IndexPages).Msg("Built index graph")
	o.logger.Info().Int("units", s.Relations).Msg("Built relations")

	if e := o.logger.Debug(); e.Enabled() {
		for _, t := range domain.DocTypes {
			e = e.Int(string(t), s.Count(t))
		}
		e.Msg("Document types")
	}
}
