package interpreter

import (
	"errors"
	"strings"
	"testing"

	"github.com/54k1/fakelang/pkg/runtime"
	"github.com/54k1/fakelang/pkg/typedast"
)

func TestMissingBindingIsReferenceError(t *testing.T) {
	_, err := New().Evaluate(typedast.Expr(typedast.Ident("ghost", typedast.Integer)))
	var ref *ReferenceError
	if !errors.As(err, &ref) {
		t.Fatalf("expected ReferenceError, got %T (%v)", err, err)
	}
	if ref.Name != "ghost" {
		t.Fatalf("reference name = %q", ref.Name)
	}
}

func TestDivisionByZero(t *testing.T) {
	interp := New()
	interp.GlobalEnvironment().Define("zero", runtime.IntegerValue{})
	_, err := interp.Evaluate(typedast.Expr(typedast.Bin(typedast.Div, typedast.Int(1), typedast.Ident("zero", typedast.Integer))))
	var div *DivisionByZeroError
	if !errors.As(err, &div) {
		t.Fatalf("expected DivisionByZeroError, got %T (%v)", err, err)
	}
}

func TestErrorStopsDeclaration(t *testing.T) {
	interp := New()
	_, err := interp.Evaluate(typedast.Let("y", typedast.Bin(typedast.Div, typedast.Int(1), typedast.Int(0))))
	if err == nil {
		t.Fatalf("expected error")
	}
	if _, ok := interp.GlobalEnvironment().Get("y"); ok {
		t.Fatalf("failed declaration must not bind")
	}
}

func expectInternalError(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		if _, ok := r.(*InternalError); !ok {
			t.Fatalf("panic value %T (%v), want *InternalError", r, r)
		}
	}()
	fn()
}

func TestIncompatibleOperandsPanic(t *testing.T) {
	interp := New()
	interp.GlobalEnvironment().Define("s", runtime.StringValue{Val: "x"})

	// Hand-built trees that a checker would reject.
	expectInternalError(t, func() {
		_, _ = interp.Evaluate(typedast.Expr(typedast.Bin(typedast.Sub, typedast.Ident("s", typedast.Integer), typedast.Int(1))))
	})
	expectInternalError(t, func() {
		_, _ = interp.Evaluate(typedast.Expr(typedast.Bin(typedast.Add, typedast.Int(1), typedast.Str("a"))))
	})
	expectInternalError(t, func() {
		_, _ = interp.Evaluate(typedast.Expr(typedast.Neg(typedast.Ident("s", typedast.Integer))))
	})
}

func TestErrorMessages(t *testing.T) {
	notCallable := &NotCallableError{Value: runtime.IntegerValue{Val: 3}}
	if got := notCallable.Error(); got != "interpreter: integer value 3 is not callable" {
		t.Fatalf("message = %q", got)
	}
	internal := &InternalError{Message: "boom"}
	if !strings.Contains(internal.Error(), "boom") {
		t.Fatalf("message = %q", internal.Error())
	}
}
