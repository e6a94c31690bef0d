package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindInteger Kind = iota
	KindString
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindString:
		return "string"
	case KindUnit:
		return "unit"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Value is implemented by every runtime value.
type Value interface {
	Kind() Kind
	String() string
}

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind     { return KindInteger }
func (v IntegerValue) String() string { return strconv.FormatInt(v.Val, 10) }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind     { return KindString }
func (v StringValue) String() string { return v.Val }

// UnitValue is the result of a declaration.
type UnitValue struct{}

func (UnitValue) Kind() Kind     { return KindUnit }
func (UnitValue) String() string { return "()" }
