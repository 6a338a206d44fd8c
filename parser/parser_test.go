package parser

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/golox-lang/golox/diagnostics"
	"github.com/golox-lang/golox/lexer"
)

func parseProgram(t *testing.T, src string) ([]string, *diagnostics.Reporter) {
	t.Helper()
	var buf bytes.Buffer
	reporter := diagnostics.NewReporter(&buf)
	toks := lexer.New(src).ScanTokens()
	stmts := New(toks, reporter).Parse()

	out := make([]string, len(stmts))
	for i, s := range stmts {
		out[i] = s.String()
	}
	return out, reporter
}

func TestParse_ExpressionPrefixForms(t *testing.T) {
	cases := map[string]string{
		"1 + 2 * 3;":      "(+ 1.0 (* 2.0 3.0));",
		"(1 + 2) * 3;":    "(* (group (+ 1.0 2.0)) 3.0);",
		"-1;":             "(- 1.0);",
		"!true;":          "(! true);",
		"a = 1;":          "(= a 1.0);",
		"a.b = 1;":        "(= (. a b) 1.0);",
		"a ? b : c;":      "(? a b c);",
		"1 == 2 or 3;":    "(or (== 1.0 2.0) 3.0);",
		"1 < 2 and true;": "(and (< 1.0 2.0) true);",
	}

	for src, want := range cases {
		got, reporter := parseProgram(t, src)
		if reporter.HadError() {
			t.Errorf("%q: unexpected parse error: %v", src, reporter.Errors())
			continue
		}
		if len(got) != 1 || got[0] != want {
			t.Errorf("%q: got %v, want [%q]", src, got, want)
		}
	}
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	src := "for (var i = 0; i < 3; i = i + 1) print i;"
	got, reporter := parseProgram(t, src)
	if reporter.HadError() {
		t.Fatalf("unexpected parse error: %v", reporter.Errors())
	}
	want := "{ var i = 0.0; while ((< i 3.0)) { print i; (= i (+ i 1.0)); } }"
	if diff := cmp.Diff([]string{want}, got); diff != "" {
		t.Errorf("for-desugaring mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_InvalidAssignmentTargetDoesNotPanic(t *testing.T) {
	got, reporter := parseProgram(t, "1 = 2;")
	if !reporter.HadError() {
		t.Fatal("expected an 'Invalid assignment target' error")
	}
	if reporter.Errors()[0].Message != "Invalid assignment target." {
		t.Errorf("message = %q", reporter.Errors()[0].Message)
	}
	// Parsing continued: a statement was still produced.
	if len(got) != 1 {
		t.Fatalf("got %d statements, want 1", len(got))
	}
}

func TestParse_SynchronizeRecoversAfterError(t *testing.T) {
	src := "var = ; var y = 1;"
	_, reporter := parseProgram(t, src)
	if !reporter.HadError() {
		t.Fatal("expected a parse error")
	}
	// Exactly one error: synchronize skips past the bad `var = ;` to the
	// next statement-starting token (the second `var`), which parses clean.
	if len(reporter.Errors()) != 1 {
		t.Errorf("errors = %v, want exactly 1", reporter.Errors())
	}
}

func TestParse_ClassWithSuperclass(t *testing.T) {
	src := `class B < A { m() { return 1; } }`
	got, reporter := parseProgram(t, src)
	if reporter.HadError() {
		t.Fatalf("unexpected parse error: %v", reporter.Errors())
	}
	want := "class B < A { fun m() { ... } }"
	if got[0] != want {
		t.Errorf("got %q, want %q", got[0], want)
	}
}

func TestParseExpression_ExpressionOnlyMode(t *testing.T) {
	toks := lexer.New("1 + 2").ScanTokens()
	p := New(toks, diagnostics.NewReporter(nil))
	expr, ok := p.ParseExpression()
	if !ok {
		t.Fatal("ParseExpression() ok = false")
	}
	if expr.String() != "(+ 1.0 2.0)" {
		t.Errorf("got %q", expr.String())
	}
}

func TestParseExpression_ReportsErrorAndReturnsNotOK(t *testing.T) {
	toks := lexer.New("1 +").ScanTokens()
	var buf bytes.Buffer
	reporter := diagnostics.NewReporter(&buf)
	p := New(toks, reporter)
	_, ok := p.ParseExpression()
	if ok {
		t.Fatal("ParseExpression() ok = true, want false")
	}
	if !reporter.HadError() {
		t.Fatal("expected a reported error")
	}
}

func TestParse_ArgumentLimitIsNonFatal(t *testing.T) {
	var src bytes.Buffer
	src.WriteString("f(")
	for i := 0; i < 256; i++ {
		if i > 0 {
			src.WriteString(",")
		}
		src.WriteString("1")
	}
	src.WriteString(");")

	got, reporter := parseProgram(t, src.String())
	if !reporter.HadError() {
		t.Fatal("expected 'more than 255 arguments' error")
	}
	if len(got) != 1 {
		t.Fatalf("parsing did not continue past the limit error: got %d stmts", len(got))
	}
}
