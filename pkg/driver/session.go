package driver

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/54k1/fakelang/pkg/interpreter"
	"github.com/54k1/fakelang/pkg/parser"
	"github.com/54k1/fakelang/pkg/runtime"
	"github.com/54k1/fakelang/pkg/scanner"
	"github.com/54k1/fakelang/pkg/typechecker"
	"github.com/54k1/fakelang/pkg/typedast"
)

// Stage names one step of the pipeline.
type Stage string

const (
	StageScan     Stage = "scan"
	StageParse    Stage = "parse"
	StageCheck    Stage = "check"
	StageEvaluate Stage = "evaluate"
)

// StageError records which stage rejected the input. Err is the stage's own
// error value.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// Session pairs a checker with an interpreter so that both see the same
// declarations. A session must be used from one goroutine.
type Session struct {
	checker *typechecker.Checker
	interp  *interpreter.Interpreter
	logger  *slog.Logger
}

type SessionOption func(*Session)

// WithLogger routes stage tracing to logger.
func WithLogger(logger *slog.Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSession returns an empty session that knows only the builtin types.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		checker: typechecker.New(),
		interp:  interpreter.New(),
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyManifest registers the manifest's type aliases.
func (s *Session) ApplyManifest(m *Manifest) error {
	if m == nil {
		return nil
	}
	for _, alias := range m.AliasNames() {
		if err := s.checker.DefineType(alias, m.Types[alias]); err != nil {
			return fmt.Errorf("manifest %s: %w", m.Path, err)
		}
		s.logger.Debug("type alias", "name", alias, "target", m.Types[alias])
	}
	return nil
}

// Eval runs source through every stage and stops at the first failure.
func (s *Session) Eval(source string) (runtime.Value, error) {
	typed, err := s.Check(source)
	if err != nil {
		return nil, err
	}
	return s.Execute(typed)
}

// Tokens scans source.
func (s *Session) Tokens(source string) ([]scanner.Token, error) {
	tokens, err := scanner.Scan(source)
	if err != nil {
		s.logger.Debug("stage failed", "stage", StageScan, "error", err)
		return nil, &StageError{Stage: StageScan, Err: err}
	}
	s.logger.Debug("stage done", "stage", StageScan, "tokens", len(tokens))
	return tokens, nil
}

// Check scans, parses and typechecks source. Declarations are not visible to
// later statements until Execute has evaluated them.
func (s *Session) Check(source string) (typedast.Statement, error) {
	tokens, err := s.Tokens(source)
	if err != nil {
		return nil, err
	}
	stmt, err := parser.Parse(tokens)
	if err != nil {
		s.logger.Debug("stage failed", "stage", StageParse, "error", err)
		return nil, &StageError{Stage: StageParse, Err: err}
	}
	s.logger.Debug("stage done", "stage", StageParse, "node", stmt.NodeType())

	typed, err := s.checker.Check(stmt)
	if err != nil {
		s.logger.Debug("stage failed", "stage", StageCheck, "error", err)
		return nil, &StageError{Stage: StageCheck, Err: err}
	}
	s.logger.Debug("stage done", "stage", StageCheck)
	return typed, nil
}

// Execute evaluates a statement produced by Check and then commits its
// declaration to the checker. A statement that fails to evaluate binds nothing in
// either environment.
func (s *Session) Execute(typed typedast.Statement) (runtime.Value, error) {
	value, err := s.interp.Evaluate(typed)
	if err != nil {
		s.logger.Debug("stage failed", "stage", StageEvaluate, "error", err)
		return nil, &StageError{Stage: StageEvaluate, Err: err}
	}
	s.checker.Commit(typed)
	s.logger.Debug("stage done", "stage", StageEvaluate, "kind", value.Kind())
	return value, nil
}

// Binding describes one name declared in the session.
type Binding struct {
	Name  string
	Type  typedast.Type
	Value runtime.Value
}

// Bindings lists the session's declarations sorted by name.
func (s *Session) Bindings() []Binding {
	names := s.checker.Scope().Names()
	values := s.interp.GlobalEnvironment().Snapshot()
	out := make([]Binding, 0, len(names))
	for _, name := range names {
		b, _ := s.checker.Lookup(name)
		out = append(out, Binding{Name: name, Type: b.Type, Value: values[name]})
	}
	return out
}

// TypeNames lists the annotation names the session accepts.
func (s *Session) TypeNames() []string {
	return s.checker.Types().Names()
}
