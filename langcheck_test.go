package langcheck_test

import (
	"context"
	"testing"
	"testing/fstest"

	langcheck "github.com/yaduha/go-langcheck"
	"github.com/yaduha/go-langcheck/pkg/langpack"
)

func fixtureFS() fstest.MapFS {
	return fstest.MapFS{
		"num/language.yaml": {Data: []byte(`code: num
name: Numeric Language
sentence_types:
  - name: Declarative
    file: declarative.yaml
  - name: Question
    file: question.yaml
`)},
		"num/declarative.yaml": {Data: []byte("structure:\n  order: subject-verb\n")},
		"num/question.yaml":    {Data: []byte("structure:\n  order: verb-subject\n")},
	}
}

func TestValidateJSON_EndToEnd(t *testing.T) {
	got := langcheck.ValidateJSON(context.Background(), "num", langpack.WithFileSystem(fixtureFS()))

	want := `{"valid":true,"language":"num","name":"Numeric Language","sentence_types":["Declarative","Question"]}`
	if got != want {
		t.Fatalf("json mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestValidate_NonexistentDirectory(t *testing.T) {
	result := langcheck.Validate(context.Background(), "nope", langpack.WithFileSystem(fixtureFS()))

	if result.Valid {
		t.Fatalf("expected failure, got %#v", result)
	}
	if result.Error == "" || result.ErrorType != string(langpack.KindNotFound) {
		t.Fatalf("unexpected failure record: %#v", result)
	}
}
