package langpack

import "io/fs"

// LoaderOptions configures how the reference loader resolves package
// directories. The zero value reads from the operating-system filesystem.
type LoaderOptions struct {
	// FileSystem resolves package paths inside an abstract filesystem.
	// Nil means paths are operating-system paths.
	FileSystem fs.FS
}

// LoaderOption mutates LoaderOptions prior to construction.
type LoaderOption func(*LoaderOptions)

// WithFileSystem loads packages from an fs.FS instead of the operating
// system. Useful for embedded fixtures and tests.
func WithFileSystem(files fs.FS) LoaderOption {
	return func(opts *LoaderOptions) {
		opts.FileSystem = files
	}
}

// NewLoaderOptions applies a set of LoaderOption values and returns the
// resulting configuration.
func NewLoaderOptions(options ...LoaderOption) LoaderOptions {
	cfg := LoaderOptions{}
	for _, opt := range options {
		opt(&cfg)
	}
	return cfg
}
