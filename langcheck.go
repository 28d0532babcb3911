// Package langcheck validates language packages: directories of source files
// that define a natural-language description for a downstream linguistic
// tool. The top-level helpers wire the reference loader to the validator;
// consumers with their own package format implement langpack.Loader and call
// pkg/validation directly.
package langcheck

import (
	"context"

	internalLoader "github.com/yaduha/go-langcheck/internal/langpack/loader"
	"github.com/yaduha/go-langcheck/pkg/langpack"
	"github.com/yaduha/go-langcheck/pkg/validation"
)

// NewLoader constructs the reference manifest loader while keeping the
// concrete type hidden from consumers.
func NewLoader(options ...langpack.LoaderOption) langpack.Loader {
	cfg := langpack.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// Validate loads the package at repoPath with the reference loader and
// reports the structured result. It never returns an error; failures are the
// result's failure variant.
func Validate(ctx context.Context, repoPath string, options ...langpack.LoaderOption) validation.Result {
	return validation.Validate(ctx, NewLoader(options...), repoPath)
}

// ValidateJSON is Validate serialized to the flat JSON result record. The
// simplest entry point for hosts that only exchange strings.
func ValidateJSON(ctx context.Context, repoPath string, options ...langpack.LoaderOption) string {
	return validation.ValidateJSON(ctx, NewLoader(options...), repoPath)
}
