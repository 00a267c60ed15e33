package format

import (
	"strings"
	"testing"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/driver"
)

func TestTPTPWritesFixedPrelude(t *testing.T) {
	c := ctx.New()
	var sb strings.Builder
	if err := TPTP(&sb, c, nil); err != nil {
		t.Fatalf("TPTP: %v", err)
	}
	if !strings.HasPrefix(sb.String(), preludeFixed) {
		t.Fatalf("output does not start with the fixed prelude")
	}
}

func TestTPTPSkipsFixedSymbolsInTypeLoop(t *testing.T) {
	c := ctx.New()
	c.FindOrCreateFunction("f__integer__", 1)
	c.FindOrCreatePredicate("p__is_integer__", 1)
	c.FindOrCreatePredicate("holds", 1)

	var sb strings.Builder
	if err := TPTP(&sb, c, nil); err != nil {
		t.Fatalf("TPTP: %v", err)
	}
	out := sb.String()
	if strings.Count(out, "f__integer__") != strings.Count(preludeFixed, "f__integer__") {
		t.Fatalf("fixed symbol f__integer__ got a duplicate type declaration:\n%s", out)
	}
	if !strings.Contains(out, "tff(type_1, type, (holds: object > $o)).") {
		t.Fatalf("expected a type declaration for holds, got %q", out)
	}
}

func TestTPTPFormulaUsesPrefixConnectives(t *testing.T) {
	c := ctx.New()
	p := c.FindOrCreatePredicate("p", 1)
	q := c.FindOrCreatePredicate("q", 1)
	v := c.NewVariable("", ast.HeadIntroduced, ast.Symbolic)

	f := ast.NewForAll([]*ast.VariableDeclaration{v}, ast.Biconditional{
		Left: ast.Predicate{Declaration: p, Arguments: []ast.Term{ast.Variable{Declaration: v}}},
		Right: ast.And{Arguments: []ast.Formula{
			ast.Predicate{Declaration: q, Arguments: []ast.Term{ast.Variable{Declaration: v}}},
			ast.Not{Argument: ast.FormulaBoolean{Value: false}},
		}},
	})

	formulas := []driver.Formula{{Name: "axiom_1", Role: driver.Axiom, Formula: f}}
	var sb strings.Builder
	if err := TPTP(&sb, c, formulas); err != nil {
		t.Fatalf("TPTP: %v", err)
	}
	out := sb.String()
	want := "tff(axiom_1, axiom, ![X1: object]: (p(X1) <=> (q(X1) & (~$false)))).\n"
	if !strings.Contains(out, want) {
		t.Fatalf("got %q, want it to contain %q", out, want)
	}
	if strings.Contains(out, " and ") || strings.Contains(out, "forall ") {
		t.Fatalf("TPTP output leaked HumanReadable infix syntax: %q", out)
	}
}

func TestTPTPConjectureRole(t *testing.T) {
	c := ctx.New()
	p := c.FindOrCreatePredicate("p", 0)
	formulas := []driver.Formula{{Name: "conjecture", Role: driver.Conjecture, Formula: ast.Predicate{Declaration: p}}}
	var sb strings.Builder
	if err := TPTP(&sb, c, formulas); err != nil {
		t.Fatalf("TPTP: %v", err)
	}
	if !strings.Contains(sb.String(), "tff(conjecture, conjecture, p).") {
		t.Fatalf("expected a conjecture role line, got %q", sb.String())
	}
}
