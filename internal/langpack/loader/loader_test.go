package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"

	"github.com/yaduha/go-langcheck/internal/langpack/loader"
	"github.com/yaduha/go-langcheck/pkg/langpack"
)

const numericManifest = `code: num
name: Numeric Language
sentence_types:
  - name: Declarative
    file: declarative.yaml
  - name: Question
    file: question.yaml
`

func numericFS() fstest.MapFS {
	return fstest.MapFS{
		"pkgs/num/language.yaml":    {Data: []byte(numericManifest)},
		"pkgs/num/declarative.yaml": {Data: []byte("structure:\n  order: subject-verb\n")},
		"pkgs/num/question.yaml":    {Data: []byte("structure:\n  order: verb-subject\n")},
	}
}

func newLoader(fsys fstest.MapFS) langpack.Loader {
	return loader.New(langpack.NewLoaderOptions(langpack.WithFileSystem(fsys)))
}

func TestLoadFromSource_WellFormedPackage(t *testing.T) {
	lang, err := newLoader(numericFS()).LoadFromSource(context.Background(), "pkgs/num")
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if lang.Code() != "num" {
		t.Fatalf("code mismatch: %q", lang.Code())
	}
	if lang.Name() != "Numeric Language" {
		t.Fatalf("name mismatch: %q", lang.Name())
	}

	var names []string
	for _, st := range lang.SentenceTypes() {
		names = append(names, st.TypeName())
	}
	if diff := cmp.Diff([]string{"Declarative", "Question"}, names); diff != "" {
		t.Fatalf("sentence types mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadFromSource_Failures(t *testing.T) {
	fsys := numericFS()
	fsys["pkgs/scrambled/language.yaml"] = &fstest.MapFile{Data: []byte("code: [broken\n")}
	fsys["pkgs/anonymous/language.yaml"] = &fstest.MapFile{Data: []byte("name: Anonymous\n")}
	fsys["pkgs/unnamed/language.yaml"] = &fstest.MapFile{Data: []byte("code: un\nname: Unnamed\nsentence_types:\n  - file: a.yaml\n")}
	fsys["pkgs/dangling/language.yaml"] = &fstest.MapFile{Data: []byte("code: da\nname: Dangling\nsentence_types:\n  - name: Ghost\n    file: ghost.yaml\n")}
	fsys["pkgs/garbled/language.yaml"] = &fstest.MapFile{Data: []byte("code: ga\nname: Garbled\nsentence_types:\n  - name: Broken\n    file: broken.yaml\n")}
	fsys["pkgs/garbled/broken.yaml"] = &fstest.MapFile{Data: []byte("structure: [unclosed\n")}

	cases := []struct {
		name string
		dir  string
		want langpack.Kind
	}{
		{name: "empty dir", dir: "", want: langpack.KindNotFound},
		{name: "nonexistent dir", dir: "pkgs/missing", want: langpack.KindNotFound},
		{name: "manifest not yaml", dir: "pkgs/scrambled", want: langpack.KindManifest},
		{name: "manifest without code", dir: "pkgs/anonymous", want: langpack.KindManifest},
		{name: "sentence type without name", dir: "pkgs/unnamed", want: langpack.KindManifest},
		{name: "definition file missing", dir: "pkgs/dangling", want: langpack.KindDefinition},
		{name: "definition not yaml", dir: "pkgs/garbled", want: langpack.KindDefinition},
	}

	ld := newLoader(fsys)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ld.LoadFromSource(context.Background(), tc.dir)
			if err == nil {
				t.Fatalf("expected load to fail")
			}
			if got := langpack.KindOf(err); got != tc.want {
				t.Fatalf("kind mismatch: got %q want %q (%v)", got, tc.want, err)
			}
		})
	}
}

func TestLoadFromSource_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newLoader(numericFS()).LoadFromSource(ctx, "pkgs/num")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestLoadFromSource_OperatingSystemPaths(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "language.yaml"), numericManifest)
	writeFile(t, filepath.Join(dir, "declarative.yaml"), "structure:\n  order: subject-verb\n")
	writeFile(t, filepath.Join(dir, "question.yaml"), "structure:\n  order: verb-subject\n")

	ld := loader.New(langpack.NewLoaderOptions())

	lang, err := ld.LoadFromSource(context.Background(), dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if lang.Code() != "num" {
		t.Fatalf("code mismatch: %q", lang.Code())
	}

	if _, err := ld.LoadFromSource(context.Background(), filepath.Join(dir, "nope")); langpack.KindOf(err) != langpack.KindNotFound {
		t.Fatalf("expected PackageNotFound for missing directory, got %v", err)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
