// Package project locates the TypeScript project a source path belongs to.
package project

// Project represents information about a detected project
type Project struct {
	RootPath     string // Absolute path to the project root directory
	Type         string // typescript, javascript, git or unknown
	Name         string // package.json name, git origin name or directory name
	RelativePath string // Path from project root to the specified file
	Origin       string // git origin URL, if any
	// Tsconfig holds raw tsconfig.json content, passed to the JavaScript emitter as is
	Tsconfig string
	// Target is compilerOptions.target of tsconfig.json, lower cased
	Target string
}

// Project types
const (
	TypeTypeScript = "typescript"
	TypeJavaScript = "javascript"
	TypeGit        = "git"
	TypeUnknown    = "unknown"
)
