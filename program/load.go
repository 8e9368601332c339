package program

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"runtime"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/comptime/ast"
	"github.com/viant/comptime/inspector/typescript"
	"golang.org/x/sync/errgroup"
)

type loader struct {
	fs          afs.Service
	arena       *ast.Arena
	include     []string
	exclude     []string
	concurrency int
}

type source struct {
	path string
	data []byte
	file *ast.SourceFile
}

// Load parses every matching file under baseURL; parsing runs concurrently and completes before Load returns
func Load(ctx context.Context, baseURL string, options ...Option) (*Program, error) {
	l := &loader{
		fs:          afs.New(),
		arena:       ast.NewArena(),
		include:     DefaultInclude,
		exclude:     DefaultExclude,
		concurrency: runtime.NumCPU(),
	}
	for _, option := range options {
		option(l)
	}
	sources, err := l.list(ctx, baseURL)
	if err != nil {
		return nil, err
	}
	inspector := typescript.NewInspector(l.arena)
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(l.concurrency)
	for _, item := range sources {
		group.Go(func() error {
			file, err := inspector.InspectSource(groupCtx, item.path, item.data)
			if err != nil {
				return err
			}
			item.file = file
			return nil
		})
	}
	if err = group.Wait(); err != nil {
		return nil, err
	}
	ret := New(l.arena)
	ret.BaseURL = baseURL
	for _, item := range sources {
		ret.add(item.file, item.data)
	}
	ret.sort()
	return ret, nil
}

func (l *loader) list(ctx context.Context, baseURL string) ([]*source, error) {
	var sources []*source
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		relative := path.Join(parent, info.Name())
		if l.excluded(relative, info.IsDir()) {
			return false, nil
		}
		if info.IsDir() || !l.included(relative) {
			return true, nil
		}
		var data []byte
		var err error
		if reader != nil {
			data, err = io.ReadAll(reader)
		} else {
			data, err = l.fs.DownloadWithURL(ctx, url.Join(baseURL, relative))
		}
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", relative, err)
		}
		sources = append(sources, &source{path: relative, data: data})
		return true, nil
	}
	if err := l.fs.Walk(ctx, baseURL, visitor); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", baseURL, err)
	}
	return sources, nil
}

func (l *loader) included(relative string) bool {
	return matchAny(l.include, relative)
}

func (l *loader) excluded(relative string, isDir bool) bool {
	if matchAny(l.exclude, relative) {
		return true
	}
	if isDir {
		// directory patterns such as **/node_modules/** match the directory content
		return matchAny(l.exclude, relative+"/_")
	}
	return false
}

func matchAny(patterns []string, relative string) bool {
	relative = strings.TrimPrefix(relative, "/")
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relative); ok {
			return true
		}
	}
	return false
}
