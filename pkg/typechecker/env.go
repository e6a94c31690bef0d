package typechecker

import (
	"sort"

	"github.com/54k1/fakelang/pkg/typedast"
)

// Binding is what the checker knows about a declared name.
type Binding struct {
	Type typedast.Type
	Decl *typedast.LetDeclaration
}

// Scope is one frame of the lexical scope chain used during typechecking.
type Scope struct {
	parent   *Scope
	bindings map[string]Binding
}

// NewScope creates a frame with an optional parent.
func NewScope(parent *Scope) *Scope {
	return &Scope{
		parent:   parent,
		bindings: make(map[string]Binding),
	}
}

// Define binds a name in this frame only, replacing any earlier binding here.
func (s *Scope) Define(name string, binding Binding) {
	s.bindings[name] = binding
}

// Lookup searches the chain innermost-first.
func (s *Scope) Lookup(name string) (Binding, bool) {
	for frame := s; frame != nil; frame = frame.parent {
		if b, ok := frame.bindings[name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// Push returns a child frame.
func (s *Scope) Push() *Scope {
	return NewScope(s)
}

// Pop returns the enclosing frame, or the receiver itself for the root.
func (s *Scope) Pop() *Scope {
	if s.parent == nil {
		return s
	}
	return s.parent
}

func (s *Scope) Parent() *Scope {
	return s.parent
}

// Names lists every visible name, sorted.
func (s *Scope) Names() []string {
	seen := make(map[string]struct{})
	for frame := s; frame != nil; frame = frame.parent {
		for name := range frame.bindings {
			seen[name] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
