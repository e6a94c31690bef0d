package typedast

// Type is a resolved static type. Types compare structurally through Equal.
type Type interface {
	Name() string
	Equal(other Type) bool
}

type PrimitiveKind string

const (
	PrimitiveInt    PrimitiveKind = "Int"
	PrimitiveString PrimitiveKind = "String"
)

type PrimitiveType struct {
	Kind PrimitiveKind
}

func (p PrimitiveType) Name() string { return string(p.Kind) }

func (p PrimitiveType) Equal(other Type) bool {
	o, ok := other.(PrimitiveType)
	return ok && o.Kind == p.Kind
}

func (p PrimitiveType) String() string { return p.Name() }

// Builtin types.
var (
	Integer Type = PrimitiveType{Kind: PrimitiveInt}
	String  Type = PrimitiveType{Kind: PrimitiveString}
)

func typeName(t Type) string {
	if t == nil {
		return "<untyped>"
	}
	return t.Name()
}
