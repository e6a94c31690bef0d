package typechecker

import (
	"fmt"
	"sort"

	"github.com/54k1/fakelang/pkg/typedast"
)

// TypeRegistry maps annotation names to types. It starts with the builtins and
// can be extended with aliases.
type TypeRegistry struct {
	names map[string]typedast.Type
}

func NewTypeRegistry() *TypeRegistry {
	r := &TypeRegistry{names: make(map[string]typedast.Type, len(builtinTypes))}
	for name, typ := range builtinTypes {
		r.names[name] = typ
	}
	return r
}

func (r *TypeRegistry) Resolve(name string) (typedast.Type, bool) {
	typ, ok := r.names[name]
	return typ, ok
}

// Alias makes name resolve to whatever target currently resolves to. Builtin names
// cannot be redefined.
func (r *TypeRegistry) Alias(name, target string) error {
	if _, ok := builtinTypes[name]; ok {
		return fmt.Errorf("typechecker: cannot redefine builtin type %s", name)
	}
	typ, ok := r.names[target]
	if !ok {
		return fmt.Errorf("typechecker: alias %s refers to unknown type %s", name, target)
	}
	r.names[name] = typ
	return nil
}

func (r *TypeRegistry) Names() []string {
	names := make([]string, 0, len(r.names))
	for name := range r.names {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
