package interp

import (
	"fmt"

	"github.com/golox-lang/golox/ast"
)

// Function is a user-defined function or method: the declaration plus the
// environment it closes over.
type Function struct {
	declaration   *ast.FunctionStmt
	closure       *Environment
	isInitializer bool
}

// NewFunction wraps a function declaration with the environment active at
// its definition site.
func NewFunction(declaration *ast.FunctionStmt, closure *Environment, isInitializer bool) *Function {
	return &Function{declaration: declaration, closure: closure, isInitializer: isInitializer}
}

func (*Function) Type() string { return "function" }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

func (f *Function) Arity() int {
	return len(f.declaration.Params)
}

// Bind returns a copy of f whose closure is a new scope, enclosing f's
// original closure, binding "this" to instance. Used when a method is
// looked up off an instance.
func (f *Function) Bind(instance *Instance) *Function {
	env := NewEnclosedEnvironment(f.closure)
	env.Define("this", instance)
	return NewFunction(f.declaration, env, f.isInitializer)
}

// Call executes the function body in a fresh scope enclosing its closure,
// with parameters bound to args. A return statement unwinds via returnSignal;
// an initializer always yields the bound "this" regardless of what (if
// anything) it returns.
func (f *Function) Call(interp *Interpreter, args []Value) (result Value) {
	env := NewEnclosedEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	defer func() {
		if r := recover(); r != nil {
			sig, ok := r.(returnSignal)
			if !ok {
				panic(r)
			}
			if f.isInitializer {
				result = f.closure.GetAt(0, "this")
				return
			}
			result = sig.value
		}
	}()

	interp.executeBlock(f.declaration.Body, env)

	if f.isInitializer {
		return f.closure.GetAt(0, "this")
	}
	return NilValue
}
