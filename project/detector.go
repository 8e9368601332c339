package project

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/viant/afs"
)

// Detector identifies project root folders
type Detector struct {
	fs      afs.Service
	markers []string
	// home stops the upward search
	home string
}

// New creates a project detector; markers are checked in order in every directory
func New(fs afs.Service) *Detector {
	if fs == nil {
		fs = afs.New()
	}
	return &Detector{
		fs: fs,
		markers: []string{
			"tsconfig.json", // TypeScript projects
			"package.json",  // JavaScript/Node projects
			".git",          // Generic VCS marker
		},
		home: os.Getenv("HOME"),
	}
}

var targetExpr = regexp.MustCompile(`"target"\s*:\s*"([^"]+)"`)

// Detect identifies the project root for the given file or directory path
func (d *Detector) Detect(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	ret := &Project{Type: TypeUnknown, RootPath: startDir}
	rootPath, projectType := d.findProjectRoot(ctx, startDir)
	if rootPath != "" {
		ret.RootPath = rootPath
		ret.Type = projectType
	}
	relPath, err := filepath.Rel(ret.RootPath, absPath)
	if err != nil {
		relPath = filepath.Base(absPath)
	}
	ret.RelativePath = filepath.ToSlash(relPath)

	if content := d.read(ctx, filepath.Join(ret.RootPath, "tsconfig.json")); len(content) > 0 {
		ret.Tsconfig = string(content)
		if matches := targetExpr.FindSubmatch(content); len(matches) == 2 {
			ret.Target = strings.ToLower(string(matches[1]))
		}
	}
	if gitRoot := d.findGitRoot(ctx, ret.RootPath); gitRoot != "" {
		ret.Origin = d.gitOrigin(ctx, gitRoot)
	}
	ret.Name = d.projectName(ctx, ret)
	return ret, nil
}

func (d *Detector) findProjectRoot(ctx context.Context, startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if ok, _ := d.fs.Exists(ctx, filepath.Join(dir, marker)); ok {
				return dir, projectType(marker)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir || parent == d.home {
			break
		}
		dir = parent
	}
	return "", ""
}

func (d *Detector) findGitRoot(ctx context.Context, startDir string) string {
	dir := startDir
	for {
		if ok, _ := d.fs.Exists(ctx, filepath.Join(dir, ".git")); ok {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || parent == d.home {
			return ""
		}
		dir = parent
	}
}

func (d *Detector) read(ctx context.Context, URL string) []byte {
	if ok, _ := d.fs.Exists(ctx, URL); !ok {
		return nil
	}
	content, err := d.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil
	}
	return content
}

// gitOrigin extracts the origin URL from git config
func (d *Detector) gitOrigin(ctx context.Context, gitRoot string) string {
	content := d.read(ctx, filepath.Join(gitRoot, ".git", "config"))
	scanner := bufio.NewScanner(bytes.NewReader(content))
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.Contains(line, `[remote "origin"]`) {
			foundRemote = true
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url = ") {
			return strings.TrimPrefix(line, "url = ")
		}
	}
	return ""
}

func (d *Detector) projectName(ctx context.Context, project *Project) string {
	if content := d.read(ctx, filepath.Join(project.RootPath, "package.json")); len(content) > 0 {
		pkg := struct {
			Name string `json:"name"`
		}{}
		if err := json.Unmarshal(content, &pkg); err == nil && pkg.Name != "" {
			return pkg.Name
		}
	}
	if project.Origin != "" {
		origin := strings.TrimSuffix(project.Origin, ".git")
		if index := strings.LastIndexAny(origin, "/:"); index != -1 && index+1 < len(origin) {
			return origin[index+1:]
		}
	}
	return filepath.Base(project.RootPath)
}

func projectType(marker string) string {
	switch marker {
	case "tsconfig.json":
		return TypeTypeScript
	case "package.json":
		return TypeJavaScript
	case ".git":
		return TypeGit
	}
	return TypeUnknown
}
