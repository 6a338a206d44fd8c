package interp

import "time"

// NativeFn is a builtin implemented in Go rather than Lox, e.g. clock().
// Natives are registered into the global environment at interpreter
// startup.
type NativeFn struct {
	name  string
	arity int
	fn    func(interp *Interpreter, args []Value) Value
}

func (*NativeFn) Type() string { return "native function" }

func (n *NativeFn) String() string { return "<native fn " + n.name + ">" }

func (n *NativeFn) Arity() int { return n.arity }

func (n *NativeFn) Call(interp *Interpreter, args []Value) Value {
	return n.fn(interp, args)
}

// defineNatives installs the native function library into env.
func defineNatives(env *Environment) {
	env.Define("clock", &NativeFn{
		name:  "clock",
		arity: 0,
		fn: func(_ *Interpreter, _ []Value) Value {
			return Number(float64(time.Now().UnixNano()) / float64(time.Second))
		},
	})
}
