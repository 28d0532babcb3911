package langpack

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
)

// Kind is the categorical label attached to a load failure. It becomes the
// "error_type" field of the validation result, so the values are stable
// identifiers rather than prose.
type Kind string

const (
	// KindNotFound covers packages whose directory or manifest does not exist.
	KindNotFound Kind = "PackageNotFound"

	// KindManifest covers manifests that cannot be parsed or fail structural
	// checks (missing code, missing name, no sentence types).
	KindManifest Kind = "ManifestError"

	// KindDefinition covers sentence-type definition files that are missing
	// or unreadable.
	KindDefinition Kind = "DefinitionError"

	// KindLanguage covers loader output that violates the Language contract,
	// such as a sentence type with an empty name.
	KindLanguage Kind = "LanguageError"

	// KindCanceled reports the caller's context ending before the load
	// completed.
	KindCanceled Kind = "Canceled"

	// KindLoad is the generic fallback for failures no other kind claims.
	KindLoad Kind = "LoadError"
)

// Error is a classified load failure. Loaders wrap their underlying cause so
// callers can still reach it through errors.Is / errors.As while validation
// only consumes the Kind and the message.
type Error struct {
	Kind Kind
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("langpack: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("langpack: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError wraps cause with a kind and the package path it occurred in.
func NewError(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Path: path, Err: cause}
}

// Errorf formats a new classified error without an underlying cause chain.
func Errorf(kind Kind, path, format string, args ...any) *Error {
	return &Error{Kind: kind, Path: path, Err: fmt.Errorf(format, args...)}
}

// KindOf classifies an arbitrary load error. Classified *Error values report
// their own kind; context and file-missing errors map to their categories;
// everything else falls back to KindLoad.
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}

	var lerr *Error
	if errors.As(err, &lerr) && lerr.Kind != "" {
		return lerr.Kind
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return KindCanceled
	}
	if errors.Is(err, fs.ErrNotExist) {
		return KindNotFound
	}
	return KindLoad
}
