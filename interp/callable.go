package interp

// Callable is the capability shared by native functions, user-defined
// functions, classes (called to construct an instance), and bound methods:
// anything that supplies an arity and an invocation operation.
type Callable interface {
	Value
	// Arity returns the number of arguments the callable expects.
	Arity() int
	// Call invokes the callable with already-evaluated arguments.
	Call(interp *Interpreter, args []Value) Value
}
