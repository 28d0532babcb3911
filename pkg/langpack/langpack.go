package langpack

import "context"

// Language is the object a Loader materializes from a package directory. It
// is the explicit contract the validator reads its result fields from, so
// loader implementations outside this module only need to satisfy these three
// accessors.
type Language interface {
	// Code returns the short identifier for the language (for example "num").
	Code() string

	// Name returns the human-readable display name.
	Name() string

	// SentenceTypes returns the sentence types the package defines, in the
	// order the package declares them.
	SentenceTypes() []SentenceType
}

// SentenceType identifies one structural category of sentence supported by a
// language definition.
type SentenceType interface {
	// TypeName returns the name identifying this sentence type. Loaders must
	// not return an empty name; validation reports one as a failure.
	TypeName() string
}

// Loader constructs a Language from the source files found in a package
// directory. The directory is passed explicitly into each call; loaders must
// not keep resolution state between calls, so validating several packages in
// one process never interferes.
//
// Loaders own all format and grammar semantics. Errors they return should be
// *Error values when the failure fits a known Kind; anything else is reported
// under the generic load-failure category.
type Loader interface {
	LoadFromSource(ctx context.Context, dir string) (Language, error)
}
