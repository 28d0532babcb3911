// Package langpack exposes the public contracts for language packages: the
// Language object a loader produces, the Loader interface itself, and the
// typed error kinds validation uses to classify load failures. The reference
// implementation lives under internal/langpack to keep manifest parsing
// details hidden from consumers.
package langpack
