package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/comptime/compiler"
	"github.com/viant/comptime/config"
	"github.com/viant/comptime/emitter"
	"github.com/viant/comptime/logging"
	"github.com/viant/comptime/metrics"
	"github.com/viant/comptime/program"
	"github.com/viant/comptime/project"
	"github.com/viant/comptime/script"
	"github.com/viant/comptime/transform"
)

// runner loads configuration once and transforms the project on every run
type runner struct {
	fs        afs.Service
	config    *config.Config
	project   *project.Project
	logger    *slog.Logger
	collector *metrics.Collector
}

func newRunner(cmd *cobra.Command, dir string, collector *metrics.Collector) (*runner, error) {
	fs := afs.New()
	detected, err := project.New(fs).Detect(cmd.Context(), dir)
	if err != nil {
		return nil, fmt.Errorf("failed to detect project %s: %w", dir, err)
	}
	cfg, err := config.Load("", detected.RootPath, cmd.Flags())
	if err != nil {
		return nil, err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(level, cfg.Log.Format, cmd.ErrOrStderr())
	logger.Debug("project detected", "root", detected.RootPath, "type", detected.Type, "name", detected.Name, "config", cfg.File)
	return &runner{fs: fs, config: cfg, project: detected, logger: logger, collector: collector}, nil
}

func (r *runner) root() string {
	return r.project.RootPath
}

func (r *runner) outDir() string {
	if filepath.IsAbs(r.config.OutDir) {
		return r.config.OutDir
	}
	return filepath.Join(r.root(), r.config.OutDir)
}

func (r *runner) emitter() (emitter.Emitter, error) {
	tsconfig := r.project.Tsconfig
	if r.config.Tsconfig != "" {
		location := r.config.Tsconfig
		if !filepath.IsAbs(location) {
			location = filepath.Join(r.root(), location)
		}
		data, err := os.ReadFile(location)
		if err != nil {
			return nil, fmt.Errorf("failed to read tsconfig %s: %w", location, err)
		}
		tsconfig = string(data)
	}
	return emitter.New(emitter.Kind(r.config.Emit), emitter.WithTarget(r.config.Target), emitter.WithTsconfig(tsconfig))
}

// exclude adds the output directory to excluded patterns so that emitted files are never reloaded
func (r *runner) exclude() []string {
	ret := append([]string{}, r.config.Exclude...)
	if relative, err := filepath.Rel(r.root(), r.outDir()); err == nil && relative != "." && !filepath.IsAbs(relative) && relative[0] != '.' {
		ret = append(ret, filepath.ToSlash(relative)+"/**")
	}
	return ret
}

func (r *runner) run(ctx context.Context) (*compiler.Report, error) {
	decorators, err := script.Load(ctx, r.fs, r.root(), r.config.Decorators...)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("decorators loaded", "count", len(decorators))
	prog, err := program.Load(ctx, r.root(),
		program.WithFS(r.fs),
		program.WithInclude(r.config.Include...),
		program.WithExclude(r.exclude()...),
		program.WithConcurrency(r.config.Concurrency))
	if err != nil {
		return nil, err
	}
	emit, err := r.emitter()
	if err != nil {
		return nil, err
	}
	plugin := transform.New(decorators, r.config.Pass()).With(transform.WithLogger(logging.Component(r.logger, "transform")))
	if r.collector != nil {
		plugin.With(transform.WithObserver(r.collector))
	}
	c := compiler.New(plugin, emit,
		compiler.WithFS(r.fs),
		compiler.WithIsolation(r.config.Isolation),
		compiler.WithConcurrency(r.config.Concurrency),
		compiler.WithLogger(logging.Component(r.logger, "compiler")))
	report, err := c.Compile(ctx, prog, r.outDir())
	if err != nil {
		return nil, err
	}
	if r.collector != nil {
		r.collector.RunCompleted(time.Now())
	}
	if r.config.Report != "" {
		data, err := report.YAML()
		if err != nil {
			return nil, err
		}
		if err = os.WriteFile(r.config.Report, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write report %s: %w", r.config.Report, err)
		}
	}
	return report, nil
}
