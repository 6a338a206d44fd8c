// Package interp implements the tree-walking interpreter, the environment
// chain, and the runtime value model: a Value interface (Type() string,
// String() string) with one concrete type per variant, and a per-node
// eval/exec dispatch switch.
package interp

import (
	"strconv"
)

// Value is a runtime value: Number, String, Bool, Nil, or Callable. All
// five variants implement this interface; Callable is further a capability
// supplied by NativeFn, *Function, and *Class. There is no separate
// bound-method type: a method looked up off an instance is a *Function
// whose closure has "this" defined, produced by Function.Bind.
type Value interface {
	// Type returns the value's type name.
	Type() string
	// String renders the value the way `print` and the REPL echo it.
	String() string
}

// Number is an IEEE-754 double; integer literals are doubles too.
type Number float64

func (Number) Type() string { return "number" }

func (n Number) String() string {
	f := float64(n)
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// String is a Lox string value.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Bool is a Lox boolean value.
type Bool bool

func (Bool) Type() string { return "boolean" }
func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

// Nil is the sole nil value.
type Nil struct{}

func (Nil) Type() string   { return "nil" }
func (Nil) String() string { return "nil" }

// NilValue is the singleton Nil instance (uninitialized var, falling off a
// non-initializer function body, etc.).
var NilValue = Nil{}

// isTruthy implements the falsey/truthy rule: nil and false are
// the only falsey values; every other value (including 0 and "") is
// truthy.
func isTruthy(v Value) bool {
	switch x := v.(type) {
	case Nil:
		return false
	case Bool:
		return bool(x)
	default:
		return true
	}
}

// isEqual implements the equality rule: nil == nil; nil equals
// nothing else; otherwise host equality on matching variants with no
// implicit coercion.
func isEqual(a, b Value) bool {
	_, aIsNil := a.(Nil)
	_, bIsNil := b.(Nil)
	if aIsNil && bIsNil {
		return true
	}
	if aIsNil || bIsNil {
		return false
	}

	switch x := a.(type) {
	case Number:
		y, ok := b.(Number)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	default:
		return false
	}
}
