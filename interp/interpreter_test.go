package interp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/golox-lang/golox/diagnostics"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/resolver"
)

// run parses, resolves, and interprets src, returning stdout and whether
// the run completed without a runtime error escaping.
func run(t *testing.T, src string) (string, bool) {
	t.Helper()
	var errBuf bytes.Buffer
	reporter := diagnostics.NewReporter(&errBuf)

	toks := lexer.New(src).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError() {
		t.Fatalf("unexpected compile error: %s", errBuf.String())
	}

	locals := resolver.New(reporter).Resolve(stmts)
	if reporter.HadError() {
		t.Fatalf("unexpected resolve error: %s", errBuf.String())
	}

	var outBuf bytes.Buffer
	in := New(&outBuf, reporter)
	in.Resolve(locals)
	ok := in.Interpret(stmts)
	return outBuf.String(), ok
}

func TestInterpret_ArithmeticAndPrecedence(t *testing.T) {
	out, ok := run(t, `print 1 + 2 * 3;`)
	if !ok {
		t.Fatal("expected success")
	}
	if out != "7\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, _ := run(t, `print "foo" + "bar";`)
	if out != "foobar\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_IntegralDoubleStringifiesWithoutTrailingZero(t *testing.T) {
	out, _ := run(t, `print 6 / 2;`)
	if out != "3\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_DivisionByZeroFollowsIEEE(t *testing.T) {
	out, ok := run(t, `print 1 / 0;`)
	if !ok {
		t.Fatal("IEEE division by zero is not a runtime error")
	}
	if out != "+Inf\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_TernaryEvaluatesOnlyTakenBranch(t *testing.T) {
	out, _ := run(t, `
		fun boom() { print "boom"; return 1; }
		print true ? "yes" : boom();
	`)
	if out != "yes\n" {
		t.Errorf("expected only the taken branch to print, got %q", out)
	}
}

func TestInterpret_LogicalShortCircuits(t *testing.T) {
	out, _ := run(t, `
		fun sideEffect() { print "called"; return true; }
		false and sideEffect();
		true or sideEffect();
	`)
	if out != "" {
		t.Errorf("expected short-circuit to skip sideEffect entirely, got %q", out)
	}
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	var errBuf bytes.Buffer
	reporter := diagnostics.NewReporter(&errBuf)
	toks := lexer.New(`print undefinedThing;`).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	locals := resolver.New(reporter).Resolve(stmts)
	var outBuf bytes.Buffer
	in := New(&outBuf, reporter)
	in.Resolve(locals)

	if in.Interpret(stmts) {
		t.Fatal("expected a runtime error")
	}
	if !reporter.HadRuntimeError() {
		t.Fatal("expected HadRuntimeError")
	}
	if !strings.Contains(errBuf.String(), "Undefined variable 'undefinedThing'.") {
		t.Errorf("got %q", errBuf.String())
	}
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, ok := run(t, `var x = 1; x();`)
	if ok {
		t.Fatal("expected a runtime error")
	}
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	var errBuf bytes.Buffer
	reporter := diagnostics.NewReporter(&errBuf)
	toks := lexer.New(`fun f(a, b) { return a + b; } f(1);`).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	locals := resolver.New(reporter).Resolve(stmts)
	var outBuf bytes.Buffer
	in := New(&outBuf, reporter)
	in.Resolve(locals)
	if in.Interpret(stmts) {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errBuf.String(), "Expected 2 arguments but got 1.") {
		t.Errorf("got %q", errBuf.String())
	}
}

func TestInterpret_ClosuresCaptureDefiningEnvironment(t *testing.T) {
	out, ok := run(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
	`)
	if !ok {
		t.Fatal("expected success")
	}
	if out != "1\n2\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_Fibonacci(t *testing.T) {
	out, ok := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(10);
	`)
	if !ok {
		t.Fatal("expected success")
	}
	if out != "55\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_VariableShadowingResolvesStatically(t *testing.T) {
	// A function captures the global `a` at the point it was resolved,
	// even though a later block-scoped `a` shadows the name for anything
	// declared after it.
	out, ok := run(t, `
		var a = "global";
		{
			fun showA() { print a; }
			showA();
			var a = "block";
			showA();
		}
	`)
	if !ok {
		t.Fatal("expected success")
	}
	if out != "global\nglobal\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_ClassFieldsAndThis(t *testing.T) {
	out, ok := run(t, `
		class Cake {
			init(flavor) {
				this.flavor = flavor;
			}
			describe() {
				print "a " + this.flavor + " cake";
			}
		}
		var c = Cake("chocolate");
		c.describe();
	`)
	if !ok {
		t.Fatal("expected success")
	}
	if out != "a chocolate cake\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_InheritanceAndSuper(t *testing.T) {
	out, ok := run(t, `
		class Doughnut {
			cook() { print "Fry until golden brown."; }
		}
		class BostonCream < Doughnut {
			cook() {
				super.cook();
				print "Pipe full of custard and coat with chocolate.";
			}
		}
		BostonCream().cook();
	`)
	if !ok {
		t.Fatal("expected success")
	}
	want := "Fry until golden brown.\nPipe full of custard and coat with chocolate.\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestInterpret_GetOnNonInstanceIsRuntimeError(t *testing.T) {
	_, ok := run(t, `var x = 1; print x.field;`)
	if ok {
		t.Fatal("expected a runtime error")
	}
}

func TestInterpret_UndefinedPropertyIsRuntimeError(t *testing.T) {
	var errBuf bytes.Buffer
	reporter := diagnostics.NewReporter(&errBuf)
	toks := lexer.New(`class C {} var c = C(); print c.nope;`).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	locals := resolver.New(reporter).Resolve(stmts)
	var outBuf bytes.Buffer
	in := New(&outBuf, reporter)
	in.Resolve(locals)
	if in.Interpret(stmts) {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errBuf.String(), "Undefined property 'nope'.") {
		t.Errorf("got %q", errBuf.String())
	}
}

func TestInterpret_WhileBreak(t *testing.T) {
	out, ok := run(t, `
		var i = 0;
		while (true) {
			if (i >= 3) break;
			print i;
			i = i + 1;
		}
	`)
	if !ok {
		t.Fatal("expected success")
	}
	if out != "0\n1\n2\n" {
		t.Errorf("got %q", out)
	}
}

func TestInterpret_ForDesugaredContinueSkipsIncrement(t *testing.T) {
	// The pure for-desugar means `continue` unwinds out of the
	// whole body block, skipping the increment statement that lives inside
	// it alongside the loop's real statements -- so once `i` hits 1, it
	// never advances again. `ticks` is an independent counter (incremented
	// before the continue check) used only to bound the test; without it
	// this loop would never terminate, which is exactly the consequence
	// documented alongside the parser's forStatement.
	out, ok := run(t, `
		var ticks = 0;
		for (var i = 0; i < 3; i = i + 1) {
			ticks = ticks + 1;
			if (ticks > 5) break;
			if (i == 1) continue;
			print i;
		}
	`)
	if !ok {
		t.Fatal("expected success")
	}
	if out != "0\n" {
		t.Errorf("got %q, want \"0\\n\" (i gets stuck at 1 once continue starts skipping the increment)", out)
	}
}

func TestInterpret_FlowSignalEscapingUnresolvedASTIsRuntimeError(t *testing.T) {
	// The resolver rejects `break` outside a loop statically, but an AST
	// fed straight to the interpreter skips that pass; the escaping signal
	// must surface as a runtime error, not a raw panic.
	var errBuf bytes.Buffer
	reporter := diagnostics.NewReporter(&errBuf)
	toks := lexer.New(`break;`).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	if reporter.HadError() {
		t.Fatalf("unexpected parse error: %s", errBuf.String())
	}

	var outBuf bytes.Buffer
	in := New(&outBuf, reporter)
	if in.Interpret(stmts) {
		t.Fatal("expected a runtime error")
	}
	if !strings.Contains(errBuf.String(), "Flow statement used outside loop.") {
		t.Errorf("got %q", errBuf.String())
	}
}

func TestInterpret_ReplModeEchoesBareExpressions(t *testing.T) {
	var errBuf bytes.Buffer
	reporter := diagnostics.NewReporter(&errBuf)
	toks := lexer.New(`1 + 1;`).ScanTokens()
	stmts := parser.New(toks, reporter).Parse()
	locals := resolver.New(reporter).Resolve(stmts)
	var outBuf bytes.Buffer
	in := New(&outBuf, reporter)
	in.Resolve(locals)
	in.REPLMode = true
	if !in.Interpret(stmts) {
		t.Fatal("expected success")
	}
	if outBuf.String() != "2\n" {
		t.Errorf("got %q", outBuf.String())
	}
}
