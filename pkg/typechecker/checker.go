package typechecker

import (
	"fmt"

	"github.com/54k1/fakelang/pkg/ast"
	"github.com/54k1/fakelang/pkg/typedast"
)

// Checker resolves names and types for one session. Declarations become visible
// to later statements once they are committed.
type Checker struct {
	types *TypeRegistry
	scope *Scope
}

// New returns a checker with an empty root scope and the builtin types.
func New() *Checker {
	return &Checker{
		types: NewTypeRegistry(),
		scope: NewScope(nil),
	}
}

// DefineType registers an alias for an existing type name.
func (c *Checker) DefineType(name, target string) error {
	return c.types.Alias(name, target)
}

func (c *Checker) Types() *TypeRegistry { return c.types }

// Scope returns the innermost frame.
func (c *Checker) Scope() *Scope { return c.scope }

func (c *Checker) PushScope() { c.scope = c.scope.Push() }
func (c *Checker) PopScope()  { c.scope = c.scope.Pop() }

// Lookup resolves a name through the scope chain.
func (c *Checker) Lookup(name string) (Binding, bool) {
	return c.scope.Lookup(name)
}

// CheckStatement checks stmt and, when it succeeds, commits its declaration so
// the next call can see it. Nothing is bound when checking fails.
func (c *Checker) CheckStatement(stmt ast.Statement) (typedast.Statement, error) {
	typed, err := c.Check(stmt)
	if err != nil {
		return nil, err
	}
	c.Commit(typed)
	return typed, nil
}

// Check produces a typed statement or the first type error found without
// binding anything. Pass the result to Commit once it should become visible.
func (c *Checker) Check(stmt ast.Statement) (typedast.Statement, error) {
	switch s := stmt.(type) {
	case *ast.DeclarationStatement:
		switch decl := s.Declaration.(type) {
		case *ast.LetDeclaration:
			typed, err := c.checkLetDeclaration(decl)
			if err != nil {
				return nil, err
			}
			return typed, nil
		default:
			return nil, fmt.Errorf("typechecker: unsupported declaration %T", s.Declaration)
		}
	case *ast.ExpressionStatement:
		expr, err := c.checkExpression(s.Expression)
		if err != nil {
			return nil, err
		}
		return &typedast.ExpressionStatement{Expr: expr}, nil
	case nil:
		return nil, fmt.Errorf("typechecker: statement is nil")
	default:
		return nil, fmt.Errorf("typechecker: unsupported statement %T", stmt)
	}
}

// Commit binds the name declared by a checked let in the innermost frame.
// Other statements declare nothing.
func (c *Checker) Commit(stmt typedast.Statement) {
	if decl, ok := stmt.(*typedast.LetDeclaration); ok {
		c.scope.Define(decl.Name.Lexeme, Binding{Type: decl.BoundType(), Decl: decl})
	}
}

func (c *Checker) checkLetDeclaration(decl *ast.LetDeclaration) (*typedast.LetDeclaration, error) {
	if decl == nil {
		return nil, fmt.Errorf("typechecker: declaration is nil")
	}
	init, err := c.checkExpression(decl.Init)
	if err != nil {
		return nil, err
	}
	if annotation := decl.TypeAnnotation; annotation != nil {
		declared, ok := c.types.Resolve(annotation.Name.Lexeme)
		if !ok {
			return nil, &UnknownTypeError{Annotation: annotation}
		}
		if !declared.Equal(init.Type()) {
			return nil, &MismatchedTypesError{
				Found:    init.Type(),
				At:       init.Token(),
				Expected: declared,
				DueTo:    annotation.Name,
			}
		}
	}
	return &typedast.LetDeclaration{
		Name:           decl.Name,
		TypeAnnotation: decl.TypeAnnotation,
		Mut:            decl.Mut,
		Expr:           init,
	}, nil
}
