// Package config loads comptime.yaml, COMPTIME_ environment variables and command line flags.
package config

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/viant/comptime"
	"github.com/viant/comptime/emitter"
	"github.com/viant/comptime/program"
)

// Isolation controls how many passes run over a project
type Isolation string

const (
	// IsolationProgram runs a single pass over all files, the user slot is shared program wide
	IsolationProgram Isolation = "program"
	// IsolationFile runs one pass per file, concurrently
	IsolationFile Isolation = "file"
)

// Log holds logger settings
type Log struct {
	Level  string `koanf:"level" yaml:"level"`
	Format string `koanf:"format" yaml:"format"`
}

// Config holds all comptime options
type Config struct {
	Traversal   string    `koanf:"traversal" yaml:"traversal"`
	MaxVisits   int       `koanf:"maxVisits" yaml:"maxVisits"`
	Include     []string  `koanf:"include" yaml:"include"`
	Exclude     []string  `koanf:"exclude" yaml:"exclude"`
	OutDir      string    `koanf:"outDir" yaml:"outDir"`
	Emit        string    `koanf:"emit" yaml:"emit"`
	Target      string    `koanf:"target" yaml:"target"`
	Tsconfig    string    `koanf:"tsconfig" yaml:"tsconfig"`
	Isolation   Isolation `koanf:"isolation" yaml:"isolation"`
	Concurrency int       `koanf:"concurrency" yaml:"concurrency"`
	// Decorators lists glob patterns of Starlark decorator scripts, relative to the project root
	Decorators []string `koanf:"decorators" yaml:"decorators"`
	Report     string   `koanf:"report" yaml:"report"`
	Log        Log      `koanf:"log" yaml:"log"`

	// File is the configuration file used, empty when none was found
	File string `koanf:"-" yaml:"-"`
}

// Defaults returns default values keyed the way they are in comptime.yaml
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"traversal":   string(comptime.Postorder),
		"maxVisits":   0,
		"include":     program.DefaultInclude,
		"exclude":     program.DefaultExclude,
		"outDir":      "dist",
		"emit":        string(emitter.KindTypeScript),
		"target":      "es2020",
		"isolation":   string(IsolationProgram),
		"concurrency": runtime.NumCPU(),
		"decorators":  []string{"decorators/**/*.star"},
		"log.level":   "info",
		"log.format":  "text",
	}
}

// Pass returns the decorator pass configuration
func (c *Config) Pass() comptime.Config {
	traversal, _ := comptime.ParseTraversal(c.Traversal)
	return comptime.Config{Traversal: traversal, MaxVisits: c.MaxVisits}
}

// Validate checks option values
func (c *Config) Validate() error {
	if _, err := comptime.ParseTraversal(c.Traversal); err != nil {
		return err
	}
	switch emitter.Kind(strings.ToLower(c.Emit)) {
	case emitter.KindTypeScript, emitter.KindJavaScript:
	default:
		return fmt.Errorf("invalid emit: %v, expected %v or %v", c.Emit, emitter.KindTypeScript, emitter.KindJavaScript)
	}
	if _, err := emitter.ParseTarget(c.Target); err != nil {
		return err
	}
	switch c.Isolation {
	case IsolationProgram, IsolationFile:
	default:
		return fmt.Errorf("invalid isolation: %v, expected %v or %v", c.Isolation, IsolationProgram, IsolationFile)
	}
	if c.Concurrency < 1 {
		return fmt.Errorf("invalid concurrency: %v", c.Concurrency)
	}
	if c.MaxVisits < 0 {
		return fmt.Errorf("invalid maxVisits: %v", c.MaxVisits)
	}
	return nil
}
