package script

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/afs/url"
	"github.com/viant/comptime/transform"
	"go.starlark.net/starlark"
)

// Load executes every .star file under baseURL matching patterns and returns the decorators they define
func Load(ctx context.Context, fs afs.Service, baseURL string, patterns ...string) (transform.Decorators, error) {
	if fs == nil {
		fs = afs.New()
	}
	if ok, _ := fs.Exists(ctx, baseURL); !ok {
		return transform.Decorators{}, nil
	}
	type script struct {
		path string
		data []byte
	}
	var scripts []*script
	var visitor storage.OnVisit = func(ctx context.Context, baseURL, parent string, info os.FileInfo, reader io.Reader) (bool, error) {
		relative := strings.TrimPrefix(path.Join(parent, info.Name()), "/")
		if info.IsDir() || !matchAny(patterns, relative) {
			return true, nil
		}
		var data []byte
		var err error
		if reader != nil {
			data, err = io.ReadAll(reader)
		} else {
			data, err = fs.DownloadWithURL(ctx, url.Join(baseURL, relative))
		}
		if err != nil {
			return false, fmt.Errorf("failed to read %s: %w", relative, err)
		}
		scripts = append(scripts, &script{path: relative, data: data})
		return true, nil
	}
	if err := fs.Walk(ctx, baseURL, visitor); err != nil {
		return nil, fmt.Errorf("failed to list decorator scripts %s: %w", baseURL, err)
	}
	sort.Slice(scripts, func(i, j int) bool { return scripts[i].path < scripts[j].path })

	ret := transform.Decorators{}
	defined := map[string]string{}
	for _, item := range scripts {
		decorators, err := LoadSource(item.path, item.data)
		if err != nil {
			return nil, err
		}
		for name, decorator := range decorators {
			if previous, ok := defined[name]; ok {
				return nil, fmt.Errorf("decorator %s defined in both %s and %s", name, previous, item.path)
			}
			defined[name] = item.path
			ret[name] = decorator
		}
	}
	return ret, nil
}

// LoadSource executes a Starlark script; public functions become decorators
func LoadSource(filename string, src []byte) (map[string]*Decorator, error) {
	thread := &starlark.Thread{
		Name:  "load:" + filename,
		Print: func(_ *starlark.Thread, _ string) {},
	}
	globals, err := starlark.ExecFile(thread, filename, src, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load decorator script %s: %w", filename, err)
	}
	ret := make(map[string]*Decorator)
	for name, value := range globals {
		if strings.HasPrefix(name, "_") {
			continue
		}
		fn, ok := value.(*starlark.Function)
		if !ok {
			continue
		}
		ret[name] = NewDecorator(filename, name, fn)
	}
	return ret, nil
}

func matchAny(patterns []string, relative string) bool {
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, relative); ok {
			return true
		}
	}
	return false
}
