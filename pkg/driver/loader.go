package driver

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/54k1/fakelang/pkg/runtime"
)

// SourceError locates a failure inside a source file.
type SourceError struct {
	Path string
	Line int
	Err  error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// maxLineBytes bounds a single statement line.
const maxLineBytes = 16 << 20

// Loader feeds source files into a session one statement per non-blank line.
type Loader struct {
	// Fetcher resolves git prelude entries. Nil disables them.
	Fetcher *GitFetcher
	// OnValue, when set, receives the value of every expression statement.
	OnValue func(runtime.Value)
	Logger  *slog.Logger
}

func NewLoader(fetcher *GitFetcher, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Loader{Fetcher: fetcher, Logger: logger}
}

// RunFile evaluates every statement in path and stops at the first failure.
func (l *Loader) RunFile(s *Session, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer file.Close()
	return l.RunSource(s, path, file)
}

// RunSource is RunFile over an arbitrary reader; name is used in diagnostics.
// Lines longer than maxLineBytes fail with bufio.ErrTooLong.
func (l *Loader) RunSource(s *Session, name string, r io.Reader) error {
	lines := bufio.NewScanner(r)
	lines.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	evaluated := 0
	for lines.Scan() {
		lineNo++
		line := lines.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		value, err := s.Eval(line)
		if err != nil {
			return &SourceError{Path: name, Line: lineNo, Err: err}
		}
		evaluated++
		if _, unit := value.(runtime.UnitValue); !unit && l.OnValue != nil {
			l.OnValue(value)
		}
	}
	if err := lines.Err(); err != nil {
		return fmt.Errorf("loader: read %s: %w", name, err)
	}
	l.logger().Debug("source loaded", "source", name, "statements", evaluated)
	return nil
}

// LoadPreludes applies the manifest's aliases and evaluates its prelude entries
// in order. Git entries are fetched through the loader's fetcher.
func (l *Loader) LoadPreludes(s *Session, m *Manifest) error {
	if m == nil {
		return nil
	}
	if err := s.ApplyManifest(m); err != nil {
		return err
	}
	for i, entry := range m.Prelude {
		path, err := l.resolvePrelude(m, entry)
		if err != nil {
			return fmt.Errorf("prelude[%d]: %w", i, err)
		}
		l.logger().Info("loading prelude", "path", path)
		if err := l.RunFile(s, path); err != nil {
			return fmt.Errorf("prelude[%d]: %w", i, err)
		}
	}
	return nil
}

func (l *Loader) resolvePrelude(m *Manifest, entry *PreludeSpec) (string, error) {
	if !entry.IsGit() {
		return m.ResolvePath(entry.Path), nil
	}
	if l.Fetcher == nil {
		return "", fmt.Errorf("git source %s: no fetcher configured", entry.Git)
	}
	file, commit, err := l.Fetcher.Fetch(entry)
	if err != nil {
		return "", err
	}
	l.logger().Debug("git prelude resolved", "url", entry.Git, "commit", commit)
	return file, nil
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return l.Logger
}
