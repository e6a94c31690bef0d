package typechecker

import "github.com/54k1/fakelang/pkg/typedast"

var builtinTypes = map[string]typedast.Type{
	"Int":    typedast.Integer,
	"String": typedast.String,
}

// BuiltinType resolves one of the builtin annotation names.
func BuiltinType(name string) (typedast.Type, bool) {
	typ, ok := builtinTypes[name]
	return typ, ok
}
