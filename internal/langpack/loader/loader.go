// Package loader is the reference langpack.Loader. A language package is a
// directory with a language.yaml manifest naming the language and its
// sentence types, each sentence type backed by a YAML definition file in the
// same directory.
package loader

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/yaduha/go-langcheck/pkg/langpack"
)

// ManifestName is the file the loader expects at the package root.
const ManifestName = "language.yaml"

// Loader reads packages from the operating-system filesystem or from an
// fs.FS, selected through langpack.LoaderOptions.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ langpack.Loader = (*Loader)(nil)

// New constructs a Loader from pre-resolved options.
func New(options langpack.LoaderOptions) langpack.Loader {
	return &Loader{fs: options.FileSystem}
}

// LoadFromSource parses the manifest under dir, checks every referenced
// sentence-type definition file, and materializes the language. The directory
// is scoped to this call; the loader carries no state between calls.
func (l *Loader) LoadFromSource(ctx context.Context, dir string) (langpack.Language, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if dir == "" {
		return nil, langpack.Errorf(langpack.KindNotFound, dir, "package directory is required")
	}

	data, err := l.readFile(l.join(dir, ManifestName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, langpack.NewError(langpack.KindNotFound, dir, err)
		}
		return nil, langpack.NewError(langpack.KindLoad, dir, err)
	}

	m, err := parseManifest(data)
	if err != nil {
		return nil, langpack.NewError(langpack.KindManifest, dir, err)
	}

	types := make([]langpack.SentenceType, 0, len(m.SentenceTypes))
	for _, entry := range m.SentenceTypes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := l.checkDefinition(dir, entry); err != nil {
			return nil, err
		}
		types = append(types, sentenceType{name: entry.Name})
	}

	return language{code: m.Code, name: m.Name, types: types}, nil
}

// checkDefinition confirms the entry's definition file exists and parses as
// YAML. Grammar semantics inside the definition are not interpreted here.
func (l *Loader) checkDefinition(dir string, entry sentenceTypeEntry) error {
	data, err := l.readFile(l.join(dir, entry.File))
	if err != nil {
		return langpack.NewError(langpack.KindDefinition, dir, err)
	}
	if err := parseDefinition(data); err != nil {
		return langpack.Errorf(langpack.KindDefinition, dir, "definition %s: %v", entry.File, err)
	}
	return nil
}

func (l *Loader) readFile(name string) ([]byte, error) {
	if l.fs != nil {
		return fs.ReadFile(l.fs, name)
	}
	return os.ReadFile(name)
}

func (l *Loader) join(dir, name string) string {
	if l.fs != nil {
		return path.Join(dir, name)
	}
	return filepath.Join(dir, name)
}

// language is the concrete langpack.Language the loader returns.
type language struct {
	code  string
	name  string
	types []langpack.SentenceType
}

func (l language) Code() string { return l.code }

func (l language) Name() string { return l.name }

func (l language) SentenceTypes() []langpack.SentenceType {
	return append([]langpack.SentenceType(nil), l.types...)
}

type sentenceType struct {
	name string
}

func (s sentenceType) TypeName() string { return s.name }
