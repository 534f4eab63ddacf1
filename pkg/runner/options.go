// Package runner provides multi-document linting orchestration: discovery,
// a worker pool, and deterministic aggregation of per-document results.
package runner

import "github.com/yaklabco/wpslint/pkg/fsutil"

// Options controls multi-document runs.
type Options struct {
	// Paths are the user-specified paths (files or directories) to process.
	// If empty, defaults to the current working directory.
	Paths []string

	// WorkingDir is the base directory used to resolve relative Paths.
	// If empty, the current process working directory is used.
	WorkingDir string

	// Extensions is the set of file extensions (lowercase, with leading dot)
	// considered lintable documents. Defaults via DefaultExtensions().
	Extensions []string

	// IncludeGlobs are additional glob patterns to include, relative to
	// WorkingDir. Empty means "include everything that matches Extensions".
	IncludeGlobs []string

	// ExcludeGlobs are glob patterns used to skip files or directories.
	// These merge ignore rules from config and CLI (e.g. --ignore).
	ExcludeGlobs []string

	// FollowSymlinks controls whether directory symlinks are traversed.
	FollowSymlinks bool

	// Jobs controls the maximum number of concurrent workers.
	// 0 or negative means "auto" (runtime.NumCPU()).
	Jobs int

	// Write rewrites plain-text and Markdown sources in place with their
	// clean copy. Binary formats are never written.
	Write bool

	// Backup controls sidecar backups for in-place rewrites.
	Backup fsutil.BackupConfig
}

// DefaultExtensions returns the document extensions linted by default.
func DefaultExtensions() []string {
	return []string{".txt", ".md", ".markdown", ".docx", ".pdf"}
}

// effectiveExtensions returns the extensions to use, defaulting if empty.
func (o Options) effectiveExtensions() []string {
	if len(o.Extensions) == 0 {
		return DefaultExtensions()
	}
	return o.Extensions
}

// effectivePaths returns the paths to process, defaulting to "." if empty.
func (o Options) effectivePaths() []string {
	if len(o.Paths) == 0 {
		return []string{"."}
	}
	return o.Paths
}
