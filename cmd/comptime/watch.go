package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/viant/comptime/config"
	"github.com/viant/comptime/metrics"
)

const debounce = 200 * time.Millisecond

func newWatchCmd() *cobra.Command {
	var metricsAddr string
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Transform the project and again on every source or decorator change",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var collector *metrics.Collector
			if metricsAddr != "" {
				collector = metrics.New()
			}
			r, err := newRunner(cmd, dirArg(args), collector)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			if collector != nil {
				server := &http.Server{Addr: metricsAddr, Handler: collector.Handler(), ReadHeaderTimeout: 10 * time.Second}
				go func() {
					<-ctx.Done()
					shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					_ = server.Shutdown(shutdownCtx)
				}()
				go func() {
					r.logger.Info("serving metrics", "addr", metricsAddr)
					if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
						r.logger.Error("metrics server failed", "error", err)
					}
				}()
			}
			return r.watch(ctx)
		},
	}
	config.BindFlags(cmd.Flags())
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address, e.g. :9464")
	return cmd
}

func (r *runner) rebuild(ctx context.Context) {
	report, err := r.run(ctx)
	if err != nil {
		r.logger.Error("transform failed", "error", err)
		return
	}
	r.logger.Info("transform completed", "files", len(report.Files), "rewritten", report.Rewritten(), "written", report.Written())
}

func (r *runner) watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()
	if err := r.watchDir(watcher, r.root()); err != nil {
		return fmt.Errorf("failed to watch %s: %w", r.root(), err)
	}
	r.rebuild(ctx)

	var timer *time.Timer
	trigger := make(chan struct{}, 1)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() && !r.skipDir(event.Name) {
					_ = r.watchDir(watcher, event.Name)
				}
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 || !r.relevant(event.Name) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			name := event.Name
			timer = time.AfterFunc(debounce, func() {
				r.logger.Debug("change detected", "path", name)
				select {
				case trigger <- struct{}{}:
				default:
				}
			})
		case <-trigger:
			r.rebuild(ctx)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Error("watcher failed", "error", err)
		}
	}
}

func (r *runner) watchDir(watcher *fsnotify.Watcher, dir string) error {
	return filepath.Walk(dir, func(location string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		if location != dir && r.skipDir(location) {
			return filepath.SkipDir
		}
		return watcher.Add(location)
	})
}

// skipDir excludes dependencies, hidden directories and the output directory
func (r *runner) skipDir(location string) bool {
	name := filepath.Base(location)
	if name == "node_modules" || strings.HasPrefix(name, ".") {
		return true
	}
	return filepath.Clean(location) == filepath.Clean(r.outDir())
}

func (r *runner) relevant(location string) bool {
	if strings.HasPrefix(filepath.Clean(location), filepath.Clean(r.outDir())+string(filepath.Separator)) {
		return false
	}
	switch filepath.Ext(location) {
	case ".ts", ".tsx", ".star":
		return !strings.HasSuffix(location, ".d.ts")
	}
	for _, name := range config.FileNames {
		if filepath.Base(location) == name {
			return true
		}
	}
	return false
}
