package driver

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/54k1/fakelang/pkg/parser"
	"github.com/54k1/fakelang/pkg/runtime"
)

func TestRunFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.fl")
	writeFile(t, path, `
let width: Int = 4;

let height = 5;
width * height
"area"
`)
	var values []string
	loader := NewLoader(nil, nil)
	loader.OnValue = func(v runtime.Value) { values = append(values, v.String()) }

	s := NewSession()
	if err := loader.RunFile(s, path); err != nil {
		t.Fatalf("RunFile: %v", err)
	}
	if len(values) != 2 || values[0] != "20" || values[1] != "area" {
		t.Fatalf("values = %v", values)
	}
	if got := mustEval(t, s, "height"); got != (runtime.IntegerValue{Val: 5}) {
		t.Fatalf("height = %v", got)
	}
}

func TestRunFileReportsLine(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.fl")
	writeFile(t, path, `
let a = 1;

let b = (a;
let c = 3;
`)
	s := NewSession()
	err := NewLoader(nil, nil).RunFile(s, path)
	var srcErr *SourceError
	if !errors.As(err, &srcErr) {
		t.Fatalf("expected SourceError, got %v", err)
	}
	if srcErr.Line != 3 || srcErr.Path != path {
		t.Fatalf("location = %s:%d", srcErr.Path, srcErr.Line)
	}
	var expected *parser.ExpectedError
	if !errors.As(err, &expected) {
		t.Fatalf("expected wrapped parser error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), path+":3: ") {
		t.Fatalf("message = %q", err.Error())
	}
	if _, err := s.Eval("c"); err == nil {
		t.Fatalf("statements after the failure must not run")
	}
}

func TestRunFileMissing(t *testing.T) {
	err := NewLoader(nil, nil).RunFile(NewSession(), filepath.Join(t.TempDir(), "nope.fl"))
	if err == nil || !strings.Contains(err.Error(), "loader: open") {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestLoadPreludesLocal(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestFileName), `
name: demo
types:
  Integer: Int
prelude:
  - lib/base.fl
  - path: lib/derived.fl
`)
	writeFile(t, filepath.Join(dir, "lib", "base.fl"), "let base: Integer = 40;")
	writeFile(t, filepath.Join(dir, "lib", "derived.fl"), "let answer = base + 2;")

	m, err := LoadManifest(filepath.Join(dir, ManifestFileName))
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	s := NewSession()
	if err := NewLoader(nil, nil).LoadPreludes(s, m); err != nil {
		t.Fatalf("LoadPreludes: %v", err)
	}
	if got := mustEval(t, s, "answer"); got != (runtime.IntegerValue{Val: 42}) {
		t.Fatalf("answer = %v", got)
	}
}

func TestLoadPreludesGitWithoutFetcher(t *testing.T) {
	m := &Manifest{
		Name:    "demo",
		Dir:     t.TempDir(),
		Prelude: []*PreludeSpec{{Git: "https://example.com/x.git", Tag: "v1", Path: "p.fl"}},
	}
	err := NewLoader(nil, nil).LoadPreludes(NewSession(), m)
	if err == nil || !strings.Contains(err.Error(), "no fetcher configured") {
		t.Fatalf("expected missing fetcher error, got %v", err)
	}
}

func TestRunSourceLongLine(t *testing.T) {
	long := strings.Repeat("ab", 100_000)
	source := "let s = \"" + long + "\";\ns\n"
	var got runtime.Value
	loader := NewLoader(nil, nil)
	loader.OnValue = func(v runtime.Value) { got = v }
	if err := loader.RunSource(NewSession(), "long.fl", strings.NewReader(source)); err != nil {
		t.Fatalf("RunSource: %v", err)
	}
	if got == nil {
		t.Fatalf("no value reported for the long line")
	}
	if len(got.String()) != len(long) {
		t.Fatalf("long string value has length %d, want %d", len(got.String()), len(long))
	}
}
