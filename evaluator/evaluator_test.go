package evaluator

import (
	"testing"

	"github.com/skx/sapcalc/config"
	"github.com/skx/sapcalc/diagnostics"
	"github.com/skx/sapcalc/parser"
	"github.com/skx/sapcalc/symtab"
)

func run(t *testing.T, stmt string) string {
	t.Helper()
	e := New(symtab.New(), diagnostics.New(nil), config.New())
	tokens := parser.New(stmt, nil).Parse()
	result, ok := e.Eval(tokens)
	if !ok {
		t.Fatalf("expected a result for %q, got absent", stmt)
	}
	return result.String()
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 + 2", "3"},
		{"3 - 5", "-2"},
		{"2 * 3 + 1", "7"},
		{"2 + 3 * 4", "14"},
		{"2 ^ 10", "1024"},
		{"-2 ^ 2", "4"},
		{"(-2) * 3", "-6"},
	}
	for _, tt := range tests {
		if got := run(t, tt.input); got != tt.want {
			t.Errorf("%q = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestPowerIsRightAssociative(t *testing.T) {
	// 2^(3^2) = 2^9 = 512, not (2^3)^2 = 64
	if got := run(t, "2 ^ 3 ^ 2"); got != "512" {
		t.Errorf("got %q, want 512", got)
	}
}

func TestRelational(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 < 2", "1"},
		{"1 == 2", "0"},
		{"2 >= 2", "1"},
		{"3 != 3", "0"},
	}
	for _, tt := range tests {
		if got := run(t, tt.input); got != tt.want {
			t.Errorf("%q = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestParensOverridePrecedence(t *testing.T) {
	if got := run(t, "(2 + 3) * 4"); got != "20" {
		t.Errorf("got %q, want 20", got)
	}
}

func TestAssignmentAndLookup(t *testing.T) {
	vars := symtab.New()
	e := New(vars, diagnostics.New(nil), config.New())

	tokens := parser.New("x = 5", nil).Parse()
	result, ok := e.Eval(tokens)
	if !ok || result.String() != "5" {
		t.Fatalf("got %v, %v", result, ok)
	}

	tokens = parser.New("x * x + 1", nil).Parse()
	result, ok = e.Eval(tokens)
	if !ok || result.String() != "26" {
		t.Fatalf("got %v, %v, want 26", result, ok)
	}
}

func TestAssignmentToNonVariableIsDiagnostic(t *testing.T) {
	e := New(symtab.New(), diagnostics.New(func(string) {}), config.New())
	tokens := parser.New("1 = 2", nil).Parse()
	result, ok := e.Eval(tokens)
	if !ok {
		t.Fatalf("expected a best-effort present result")
	}
	if result.String() != "0" {
		t.Errorf("got %q, want 0", result.String())
	}
}

func TestUndefinedVariableIsZero(t *testing.T) {
	if got := run(t, "y + 1"); got != "1" {
		t.Errorf("got %q, want 1", got)
	}
}

func TestDivisionByZeroIsZero(t *testing.T) {
	e := New(symtab.New(), diagnostics.New(func(string) {}), config.New())
	tokens := parser.New("1 / 0", nil).Parse()
	result, ok := e.Eval(tokens)
	if !ok || result.String() != "0" {
		t.Fatalf("got %v, %v, want present 0", result, ok)
	}
}

func TestSqrtFunctionCall(t *testing.T) {
	if got := run(t, "sqrt(4)"); got != "2" {
		t.Errorf("got %q, want 2", got)
	}
}

func TestEmptyExpressionIsAbsent(t *testing.T) {
	e := New(symtab.New(), diagnostics.New(nil), config.New())
	tokens := parser.New("", nil).Parse()
	_, ok := e.Eval(tokens)
	if ok {
		t.Errorf("expected an empty statement to evaluate to absent")
	}
}

func TestDefaultScaleFloorsIntegerDivision(t *testing.T) {
	e := New(symtab.New(), diagnostics.New(nil), config.New(config.WithDefaultScale(4)))
	tokens := parser.New("1 / 3", nil).Parse()
	result, ok := e.Eval(tokens)
	if !ok || result.String() != "0.3333" {
		t.Fatalf("got %v, %v, want present 0.3333", result, ok)
	}
}

func TestFunctionArgsSurviveEvaluation(t *testing.T) {
	// The evaluator must never mutate a function-call token's Args
	// slice in place: re-running it should reproduce the same result,
	// proving the tokens weren't clobbered on the first pass.
	e := New(symtab.New(), diagnostics.New(nil), config.New())
	tokens := parser.New("sqrt(9)", nil).Parse()

	first, ok := e.Eval(tokens)
	if !ok || first.String() != "3" {
		t.Fatalf("got %v, %v, want present 3", first, ok)
	}

	second, ok := e.Eval(tokens)
	if !ok || second.String() != "3" {
		t.Fatalf("re-evaluating the same tokens got %v, %v, want present 3", second, ok)
	}
}

func TestUnrecognizedFunctionIsZero(t *testing.T) {
	e := New(symtab.New(), diagnostics.New(func(string) {}), config.New())
	tokens := parser.New("frobnicate(1)", nil).Parse()
	result, ok := e.Eval(tokens)
	if !ok || result.String() != "0" {
		t.Fatalf("got %v, %v, want present 0", result, ok)
	}
}
