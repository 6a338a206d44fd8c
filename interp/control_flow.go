package interp

import "github.com/golox-lang/golox/lexer"

// returnSignal, breakSignal, and continueSignal implement non-local
// control flow by unwinding the Go call stack with panic/recover, the same
// mechanism the parser uses for its synchronize boundary.
//
// The loop body and function call paths recover these sentinels at the
// boundary where they are meaningful (a loop body for break/continue, a
// function call for return) and re-panic anything else so a genuine
// runtime error still propagates. Each signal carries the keyword token
// that raised it, so one escaping its intended frame can be reported as a
// runtime error at that token instead of crashing the interpreter.
type returnSignal struct {
	keyword lexer.Token
	value   Value
}

type breakSignal struct {
	keyword lexer.Token
}

type continueSignal struct {
	keyword lexer.Token
}
