package interp

import (
	"fmt"
	"io"

	"github.com/golox-lang/golox/ast"
	"github.com/golox-lang/golox/diagnostics"
	"github.com/golox-lang/golox/lexer"
)

// runtimeError is panicked at the evaluation site and recovered at the
// top-level Interpret call, instead of being threaded as return values
// through every eval call.
type runtimeError struct {
	token   lexer.Token
	message string
}

func (e runtimeError) Error() string { return e.message }

func newRuntimeError(token lexer.Token, format string, args ...any) runtimeError {
	return runtimeError{token: token, message: fmt.Sprintf(format, args...)}
}

// Interpreter walks the AST produced by the parser and resolver, executing
// statements against a chained environment: an eval/exec dispatch switch
// over AST node types, a globals/environment pair, and output routed
// through an io.Writer rather than directly to os.Stdout so tests can
// capture it.
type Interpreter struct {
	Globals     *Environment
	environment *Environment
	locals      map[ast.Expr]int
	reporter    *diagnostics.Reporter
	out         io.Writer
	// REPLMode makes top-level bare expression statements additionally echo
	// their stringified value to out; expression statements run inside a
	// block or a function body are not echoed.
	REPLMode bool
}

// New creates an Interpreter with a fresh global environment seeded with
// native functions (clock, ...).
func New(out io.Writer, reporter *diagnostics.Reporter) *Interpreter {
	globals := NewEnvironment()
	defineNatives(globals)
	return &Interpreter{
		Globals:     globals,
		environment: globals,
		locals:      make(map[ast.Expr]int),
		reporter:    reporter,
		out:         out,
	}
}

// Resolve merges a resolver pass's expression→depth map into the
// interpreter's side table. Merging (rather than replacing) matters for the
// REPL, where each line is parsed and resolved independently but shares one
// Interpreter: a function closure defined on an earlier line must keep its
// recorded depths available when called from a later one.
func (in *Interpreter) Resolve(locals map[ast.Expr]int) {
	for expr, depth := range locals {
		in.locals[expr] = depth
	}
}

// Interpret executes a program's statements in order. It reports a single
// runtime error (if one escapes) through the diagnostic channel and returns
// false; the caller is responsible for mapping that to exit code 70.
func (in *Interpreter) Interpret(stmts []ast.Stmt) (ok bool) {
	defer in.recoverRuntimeError(&ok)

	for _, stmt := range stmts {
		in.execute(stmt)
	}
	ok = true
	return
}

// InterpretOne executes a single statement, used by the REPL to evaluate
// one line at a time while sharing the same global environment across
// lines. Returns false (after reporting) if a runtime error escaped.
func (in *Interpreter) InterpretOne(stmt ast.Stmt) (ok bool) {
	defer in.recoverRuntimeError(&ok)
	in.execute(stmt)
	ok = true
	return
}

// recoverRuntimeError is the interpreter's program boundary: it reports an
// escaping runtimeError and converts a control-flow signal that found no
// enclosing loop or call (only reachable when the AST skipped resolution)
// into one, rather than letting the raw panic take the process down.
func (in *Interpreter) recoverRuntimeError(ok *bool) {
	r := recover()
	if r == nil {
		return
	}
	var rerr runtimeError
	switch sig := r.(type) {
	case runtimeError:
		rerr = sig
	case breakSignal:
		rerr = newRuntimeError(sig.keyword, "Flow statement used outside loop.")
	case continueSignal:
		rerr = newRuntimeError(sig.keyword, "Flow statement used outside loop.")
	case returnSignal:
		rerr = newRuntimeError(sig.keyword, "Can't return from top-level code.")
	default:
		panic(r)
	}
	in.reporter.RuntimeError(rerr.token.Line, rerr.message)
	*ok = false
}

// execute dispatches a single statement.
func (in *Interpreter) execute(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		value := in.eval(s.Expression)
		if in.REPLMode && in.environment == in.Globals {
			fmt.Fprintln(in.out, value.String())
		}

	case *ast.PrintStmt:
		value := in.eval(s.Expression)
		fmt.Fprintln(in.out, value.String())

	case *ast.VarStmt:
		var value Value = NilValue
		if s.Initializer != nil {
			value = in.eval(s.Initializer)
		}
		in.environment.Define(s.Name.Lexeme, value)

	case *ast.BlockStmt:
		in.executeBlock(s.Statements, NewEnclosedEnvironment(in.environment))

	case *ast.IfStmt:
		if isTruthy(in.eval(s.Cond)) {
			in.execute(s.Then)
		} else if s.Else != nil {
			in.execute(s.Else)
		}

	case *ast.WhileStmt:
		in.execWhile(s)

	case *ast.FlowStmt:
		if s.Keyword.Type == lexer.BREAK {
			panic(breakSignal{keyword: s.Keyword})
		}
		panic(continueSignal{keyword: s.Keyword})

	case *ast.FunctionStmt:
		fn := NewFunction(s, in.environment, false)
		in.environment.Define(s.Name.Lexeme, fn)

	case *ast.ReturnStmt:
		var value Value = NilValue
		if s.Value != nil {
			value = in.eval(s.Value)
		}
		panic(returnSignal{keyword: s.Keyword, value: value})

	case *ast.ClassStmt:
		in.execClass(s)

	default:
		panic(fmt.Sprintf("interp: unhandled statement type %T", stmt))
	}
}

// execWhile recovers break/continue at the loop boundary; anything else
// (including a return unwinding through the loop body) re-panics so it
// keeps propagating to its own handler.
func (in *Interpreter) execWhile(s *ast.WhileStmt) {
	for isTruthy(in.eval(s.Cond)) {
		if in.runLoopBody(s.Body) {
			break
		}
	}
}

// runLoopBody executes one loop iteration's body, catching break (returns
// true: caller should stop looping) and continue (returns false: caller
// proceeds to the next condition check). `continue` inside a desugared
// for-loop body skips the increment, since the increment statement lives
// inside the body block itself and continue unwinds out of the whole body
// in one step.
func (in *Interpreter) runLoopBody(body ast.Stmt) (brokeOut bool) {
	defer func() {
		if r := recover(); r != nil {
			switch r.(type) {
			case breakSignal:
				brokeOut = true
			case continueSignal:
				brokeOut = false
			default:
				panic(r)
			}
		}
	}()
	in.execute(body)
	return false
}

// executeBlock runs stmts in env, restoring the previous environment on
// every exit path including a panic unwinding through it.
func (in *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) {
	previous := in.environment
	in.environment = env
	defer func() { in.environment = previous }()

	for _, stmt := range stmts {
		in.execute(stmt)
	}
}

func (in *Interpreter) execClass(s *ast.ClassStmt) {
	var superclass *Class
	if s.Superclass != nil {
		superVal := in.eval(s.Superclass)
		sc, ok := superVal.(*Class)
		if !ok {
			panic(newRuntimeError(s.Superclass.Name, "Superclass must be a class."))
		}
		superclass = sc
	}

	in.environment.Define(s.Name.Lexeme, NilValue)

	if s.Superclass != nil {
		in.environment = NewEnclosedEnvironment(in.environment)
		in.environment.Define("super", superclass)
	}

	methods := make(map[string]*Function, len(s.Methods))
	for _, method := range s.Methods {
		isInit := method.Name.Lexeme == "init"
		methods[method.Name.Lexeme] = NewFunction(method, in.environment, isInit)
	}

	class := NewClass(s.Name.Lexeme, superclass, methods)

	if s.Superclass != nil {
		in.environment = in.environment.outer
	}

	in.environment.Assign(s.Name.Lexeme, class)
}

// eval dispatches a single expression.
func (in *Interpreter) eval(expr ast.Expr) Value {
	switch e := expr.(type) {
	case *ast.LiteralExpr:
		return literalToValue(e.Value)

	case *ast.GroupingExpr:
		return in.eval(e.Inner)

	case *ast.UnaryExpr:
		return in.evalUnary(e)

	case *ast.BinaryExpr:
		return in.evalBinary(e)

	case *ast.LogicalExpr:
		return in.evalLogical(e)

	case *ast.TernaryExpr:
		if isTruthy(in.eval(e.Cond)) {
			return in.eval(e.Then)
		}
		return in.eval(e.Else)

	case *ast.VariableExpr:
		return in.lookUpVariable(e.Name, e)

	case *ast.AssignExpr:
		value := in.eval(e.Value)
		if distance, ok := in.locals[e]; ok {
			in.environment.AssignAt(distance, e.Name.Lexeme, value)
		} else if !in.Globals.Assign(e.Name.Lexeme, value) {
			panic(newRuntimeError(e.Name, "Undefined variable '%s'.", e.Name.Lexeme))
		}
		return value

	case *ast.CallExpr:
		return in.evalCall(e)

	case *ast.GetExpr:
		return in.evalGet(e)

	case *ast.SetExpr:
		return in.evalSet(e)

	case *ast.ThisExpr:
		return in.lookUpVariable(e.Keyword, e)

	case *ast.SuperExpr:
		return in.evalSuper(e)

	default:
		panic(fmt.Sprintf("interp: unhandled expression type %T", expr))
	}
}

// literalToValue converts the parser's boxed any literal into a runtime
// Value. LiteralExpr.Value holds float64/string/bool/nil per the scanner
// and primary() (parser/expressions.go).
func literalToValue(v any) Value {
	switch x := v.(type) {
	case nil:
		return NilValue
	case float64:
		return Number(x)
	case string:
		return String(x)
	case bool:
		return Bool(x)
	default:
		panic(fmt.Sprintf("interp: unhandled literal payload %T", v))
	}
}

func (in *Interpreter) lookUpVariable(name lexer.Token, expr ast.Expr) Value {
	if distance, ok := in.locals[expr]; ok {
		return in.environment.GetAt(distance, name.Lexeme)
	}
	if v, ok := in.Globals.Get(name.Lexeme); ok {
		return v
	}
	panic(newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme))
}

func (in *Interpreter) evalUnary(e *ast.UnaryExpr) Value {
	operand := in.eval(e.Operand)
	switch e.Op.Type {
	case lexer.MINUS:
		n, ok := operand.(Number)
		if !ok {
			panic(newRuntimeError(e.Op, "Operand must be a number."))
		}
		return -n
	case lexer.BANG:
		return Bool(!isTruthy(operand))
	default:
		panic(fmt.Sprintf("interp: unhandled unary operator %s", e.Op.Type))
	}
}

func (in *Interpreter) evalLogical(e *ast.LogicalExpr) Value {
	left := in.eval(e.Left)
	if e.Op.Type == lexer.OR {
		if isTruthy(left) {
			return left
		}
	} else {
		if !isTruthy(left) {
			return left
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *ast.BinaryExpr) Value {
	left := in.eval(e.Left)
	right := in.eval(e.Right)

	switch e.Op.Type {
	case lexer.PLUS:
		if ln, lok := left.(Number); lok {
			if rn, rok := right.(Number); rok {
				return ln + rn
			}
		}
		if ls, lok := left.(String); lok {
			if rs, rok := right.(String); rok {
				return ls + rs
			}
		}
		panic(newRuntimeError(e.Op, "Operands must be two numbers or two strings."))

	case lexer.MINUS:
		ln, rn := in.numberOperands(e.Op, left, right)
		return ln - rn
	case lexer.STAR:
		ln, rn := in.numberOperands(e.Op, left, right)
		return ln * rn
	case lexer.SLASH:
		ln, rn := in.numberOperands(e.Op, left, right)
		return ln / rn

	case lexer.GREATER:
		ln, rn := in.numberOperands(e.Op, left, right)
		return Bool(ln > rn)
	case lexer.GREATER_EQUAL:
		ln, rn := in.numberOperands(e.Op, left, right)
		return Bool(ln >= rn)
	case lexer.LESS:
		ln, rn := in.numberOperands(e.Op, left, right)
		return Bool(ln < rn)
	case lexer.LESS_EQUAL:
		ln, rn := in.numberOperands(e.Op, left, right)
		return Bool(ln <= rn)

	case lexer.EQUAL_EQUAL:
		return Bool(isEqual(left, right))
	case lexer.BANG_EQUAL:
		return Bool(!isEqual(left, right))

	default:
		panic(fmt.Sprintf("interp: unhandled binary operator %s", e.Op.Type))
	}
}

func (in *Interpreter) numberOperands(op lexer.Token, left, right Value) (Number, Number) {
	ln, lok := left.(Number)
	rn, rok := right.(Number)
	if !lok || !rok {
		panic(newRuntimeError(op, "Operands must be numbers."))
	}
	return ln, rn
}

func (in *Interpreter) evalCall(e *ast.CallExpr) Value {
	callee := in.eval(e.Callee)

	args := make([]Value, len(e.Arguments))
	for i, arg := range e.Arguments {
		args[i] = in.eval(arg)
	}

	callable, ok := callee.(Callable)
	if !ok {
		panic(newRuntimeError(e.ClosingParen, "Can only call functions and classes."))
	}
	if len(args) != callable.Arity() {
		panic(newRuntimeError(e.ClosingParen, "Expected %d arguments but got %d.", callable.Arity(), len(args)))
	}
	return callable.Call(in, args)
}

func (in *Interpreter) evalGet(e *ast.GetExpr) Value {
	object := in.eval(e.Object)
	instance, ok := object.(*Instance)
	if !ok {
		panic(newRuntimeError(e.Name, "Only instances have properties."))
	}
	value, ok := instance.Get(e.Name.Lexeme)
	if !ok {
		panic(newRuntimeError(e.Name, "Undefined property '%s'.", e.Name.Lexeme))
	}
	return value
}

func (in *Interpreter) evalSet(e *ast.SetExpr) Value {
	object := in.eval(e.Object)
	instance, ok := object.(*Instance)
	if !ok {
		panic(newRuntimeError(e.Name, "Only instances have fields."))
	}
	value := in.eval(e.Value)
	instance.Set(e.Name.Lexeme, value)
	return value
}

func (in *Interpreter) evalSuper(e *ast.SuperExpr) Value {
	distance := in.locals[e]
	superclass := in.environment.GetAt(distance, "super").(*Class)
	instance := in.environment.GetAt(distance-1, "this").(*Instance)

	method := superclass.FindMethod(e.Method.Lexeme)
	if method == nil {
		panic(newRuntimeError(e.Method, "Undefined property '%s'.", e.Method.Lexeme))
	}
	return method.Bind(instance)
}
