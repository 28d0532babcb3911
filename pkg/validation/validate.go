// Package validation turns a language-package load attempt into a JSON
// result record. It is a boundary adapter: every failure raised while loading
// or reading the loaded language is caught here and reported as data, so the
// host invoking it never needs its own recovery path.
package validation

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaduha/go-langcheck/pkg/langpack"
)

// encodeFallback is returned when the result record itself cannot be
// serialized, which preserves the always-returns-JSON guarantee.
const encodeFallback = `{"valid":false,"error":"result could not be encoded","error_type":"EncodeError"}`

// Validate loads the package at repoPath through loader and reduces the
// outcome to a Result. It never panics and never returns an error: loader
// failures, contract violations in the loaded language, and even loader
// panics all become the failure variant.
//
// One shot, fully synchronous. ctx is handed to the loader for caller-side
// cancellation; there are no retries and no timeout policy here.
func Validate(ctx context.Context, loader langpack.Loader, repoPath string) (result Result) {
	defer func() {
		if rec := recover(); rec != nil {
			result = Result{
				Valid:     false,
				Error:     fmt.Sprintf("loader panic: %v", rec),
				ErrorType: "Panic",
			}
		}
	}()

	if loader == nil {
		return failure(langpack.Errorf(langpack.KindLoad, repoPath, "validation: loader is not configured"))
	}

	language, err := loader.LoadFromSource(ctx, repoPath)
	if err != nil {
		return failure(err)
	}
	if language == nil {
		return failure(langpack.Errorf(langpack.KindLanguage, repoPath, "loader returned no language"))
	}

	sentenceTypes := language.SentenceTypes()
	names := make([]string, 0, len(sentenceTypes))
	for i, st := range sentenceTypes {
		if st == nil {
			return failure(langpack.Errorf(langpack.KindLanguage, repoPath, "sentence type %d is missing", i))
		}
		name := st.TypeName()
		if name == "" {
			return failure(langpack.Errorf(langpack.KindLanguage, repoPath, "sentence type %d has no name", i))
		}
		names = append(names, name)
	}

	return Result{
		Valid:         true,
		Language:      language.Code(),
		Name:          language.Name(),
		SentenceTypes: names,
	}
}

// ValidateJSON runs Validate and serializes the result. The returned string
// is always parseable JSON regardless of input.
func ValidateJSON(ctx context.Context, loader langpack.Loader, repoPath string) string {
	data, err := json.Marshal(Validate(ctx, loader, repoPath))
	if err != nil {
		return encodeFallback
	}
	return string(data)
}

func failure(err error) Result {
	return Result{
		Valid:     false,
		Error:     err.Error(),
		ErrorType: string(langpack.KindOf(err)),
	}
}
