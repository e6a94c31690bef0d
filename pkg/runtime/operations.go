package runtime

// The operations below are partial: ok is false when the operand kinds do not
// support the operation. Integer arithmetic wraps on overflow.

func Add(left, right Value) (Value, bool) {
	switch l := left.(type) {
	case IntegerValue:
		if r, ok := right.(IntegerValue); ok {
			return IntegerValue{Val: l.Val + r.Val}, true
		}
	case StringValue:
		if r, ok := right.(StringValue); ok {
			return StringValue{Val: l.Val + r.Val}, true
		}
	}
	return nil, false
}

func Sub(left, right Value) (Value, bool) {
	l, r, ok := integers(left, right)
	if !ok {
		return nil, false
	}
	return IntegerValue{Val: l - r}, true
}

func Mul(left, right Value) (Value, bool) {
	l, r, ok := integers(left, right)
	if !ok {
		return nil, false
	}
	return IntegerValue{Val: l * r}, true
}

// Div truncates toward zero. It also reports false for a zero divisor; callers
// check IsZero first to tell the two apart.
func Div(left, right Value) (Value, bool) {
	l, r, ok := integers(left, right)
	if !ok || r == 0 {
		return nil, false
	}
	return IntegerValue{Val: l / r}, true
}

func Negate(operand Value) (Value, bool) {
	v, ok := operand.(IntegerValue)
	if !ok {
		return nil, false
	}
	return IntegerValue{Val: -v.Val}, true
}

// IsZero reports whether v is the integer zero.
func IsZero(v Value) bool {
	i, ok := v.(IntegerValue)
	return ok && i.Val == 0
}

func integers(left, right Value) (int64, int64, bool) {
	l, ok := left.(IntegerValue)
	if !ok {
		return 0, 0, false
	}
	r, ok := right.(IntegerValue)
	if !ok {
		return 0, 0, false
	}
	return l.Val, r.Val, true
}
