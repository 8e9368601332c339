// Package compiler runs a decorator pass over a program and emits the result into a virtual file system.
package compiler

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/viant/afs"
	"github.com/viant/afs/url"
	"github.com/viant/comptime/config"
	"github.com/viant/comptime/emitter"
	"github.com/viant/comptime/logging"
	"github.com/viant/comptime/program"
	"github.com/viant/comptime/transform"
	"golang.org/x/sync/errgroup"
)

// Output holds emitted files keyed by output path
type Output struct {
	Files  map[string][]byte
	Report *Report
}

// Paths returns sorted output paths
func (o *Output) Paths() []string {
	ret := make([]string, 0, len(o.Files))
	for location := range o.Files {
		ret = append(ret, location)
	}
	sort.Strings(ret)
	return ret
}

// Compiler transforms and emits programs
type Compiler struct {
	plugin      *transform.Plugin
	emitter     emitter.Emitter
	fs          afs.Service
	isolation   config.Isolation
	concurrency int
	logger      *slog.Logger
}

// New creates a compiler
func New(plugin *transform.Plugin, emit emitter.Emitter, options ...Option) *Compiler {
	ret := &Compiler{
		plugin:      plugin,
		emitter:     emit,
		fs:          afs.New(),
		isolation:   config.IsolationProgram,
		concurrency: runtime.NumCPU(),
		logger:      logging.NewNop(),
	}
	if ret.emitter == nil {
		ret.emitter = &emitter.TypeScript{}
	}
	for _, option := range options {
		option(ret)
	}
	return ret
}

// TransformAll transforms every program file and emits it into memory
func (c *Compiler) TransformAll(ctx context.Context, prog *program.Program) (*Output, error) {
	started := time.Now()
	files := prog.Files()
	reports := make([]*FileReport, len(files))
	contents := make([][]byte, len(files))

	emit := func(i int, transformer transform.Transformer) error {
		file := files[i]
		rewritten, err := transformer(file)
		if err != nil {
			return err
		}
		data, err := c.emitter.Emit(rewritten)
		if err != nil {
			return err
		}
		contents[i] = data
		reports[i] = &FileReport{
			Path:      file.Path,
			Output:    c.emitter.OutputPath(file.Path),
			Rewritten: rewritten.ID() != file.ID(),
			Hash:      program.FormatHash(program.Hash(data)),
		}
		return nil
	}

	switch c.isolation {
	case config.IsolationFile:
		group, groupCtx := errgroup.WithContext(ctx)
		group.SetLimit(c.concurrency)
		for i := range files {
			group.Go(func() error {
				if err := groupCtx.Err(); err != nil {
					return err
				}
				transformer, err := c.plugin.Pass(prog)
				if err != nil {
					return err
				}
				return emit(i, transformer)
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
	default:
		transformer, err := c.plugin.Pass(prog)
		if err != nil {
			return nil, err
		}
		for i := range files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			if err := emit(i, transformer); err != nil {
				return nil, err
			}
		}
	}

	ret := &Output{Files: make(map[string][]byte, len(files)), Report: &Report{Isolation: string(c.isolation), Files: reports}}
	for i, report := range reports {
		if _, ok := ret.Files[report.Output]; ok {
			return nil, fmt.Errorf("output %s produced by more than one source", report.Output)
		}
		ret.Files[report.Output] = contents[i]
	}
	ret.Report.Elapsed = time.Since(started)
	c.logger.Info("program transformed", "files", len(files), "rewritten", ret.Report.Rewritten(), "elapsed", ret.Report.Elapsed)
	return ret, nil
}

// Write uploads output files under destURL, skipping files whose content did not change
func (c *Compiler) Write(ctx context.Context, output *Output, destURL string) error {
	byOutput := make(map[string]*FileReport, len(output.Report.Files))
	for _, report := range output.Report.Files {
		byOutput[report.Output] = report
	}
	for _, location := range output.Paths() {
		data := output.Files[location]
		URL := url.Join(destURL, location)
		if existing, err := c.fs.DownloadWithURL(ctx, URL); err == nil && program.Hash(existing) == program.Hash(data) {
			c.logger.Debug("output unchanged", "path", location)
			continue
		}
		if err := c.fs.Upload(ctx, URL, os.FileMode(0o644), bytes.NewReader(data)); err != nil {
			return fmt.Errorf("failed to write %s: %w", URL, err)
		}
		if report, ok := byOutput[location]; ok {
			report.Written = true
		}
		c.logger.Debug("output written", "path", location)
	}
	return nil
}

// Compile loads, transforms and writes a project in one go
func (c *Compiler) Compile(ctx context.Context, prog *program.Program, destURL string) (*Report, error) {
	output, err := c.TransformAll(ctx, prog)
	if err != nil {
		return nil, err
	}
	if err = c.Write(ctx, output, destURL); err != nil {
		return nil, err
	}
	c.logger.Info("outputs written", "dest", destURL, "written", output.Report.Written())
	return output.Report, nil
}
