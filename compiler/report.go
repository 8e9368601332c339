package compiler

import (
	"time"

	"gopkg.in/yaml.v3"
)

// FileReport describes one transformed file
type FileReport struct {
	Path   string `yaml:"path"`
	Output string `yaml:"output"`
	// Rewritten is true when at least one decorator changed the file
	Rewritten bool   `yaml:"rewritten"`
	Hash      string `yaml:"hash"`
	// Written is false when the destination already held identical content
	Written bool `yaml:"written"`
}

// Report summarises a compiler run
type Report struct {
	Isolation string        `yaml:"isolation"`
	Elapsed   time.Duration `yaml:"elapsed"`
	Files     []*FileReport `yaml:"files"`
}

// Rewritten returns number of files changed by decorators
func (r *Report) Rewritten() int {
	count := 0
	for _, file := range r.Files {
		if file.Rewritten {
			count++
		}
	}
	return count
}

// Written returns number of files written
func (r *Report) Written() int {
	count := 0
	for _, file := range r.Files {
		if file.Written {
			count++
		}
	}
	return count
}

// YAML encodes the report
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
