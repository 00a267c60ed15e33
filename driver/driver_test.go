package driver

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
)

func renderAll(formulas []Formula) string {
	var sb strings.Builder
	for _, f := range formulas {
		sb.WriteString(f.Formula.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

func TestRunCompletionModeProducesOneAxiomPerPredicate(t *testing.T) {
	c := ctx.New()
	log := &diagnostic.Log{}
	d := New(c, log)

	out, err := d.Run([]Source{{Text: "p(X) :- q(X).\nq(1).\n", File: "test.lp"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if log.HasErrors() {
		t.Fatalf("unexpected errors: %v", log.Err())
	}
	rendered := renderAll(out)
	if !strings.Contains(rendered, "p(") || !strings.Contains(rendered, "q(") {
		t.Fatalf("expected completed definitions for both p and q, got %q", rendered)
	}
	for i, f := range out {
		if f.Name != fmt.Sprintf("axiom_%d", i+1) {
			t.Fatalf("formula %d named %q, want axiom_%d", i, f.Name, i+1)
		}
		if f.Role != Axiom {
			t.Fatalf("formula %d has role %v, want Axiom", i, f.Role)
		}
	}
}

func TestRunCompletionModeEliminatesHiddenPredicate(t *testing.T) {
	c := ctx.New()
	log := &diagnostic.Log{}
	d := New(c, log)

	out, err := d.Run([]Source{{Text: "a(X) :- b(X).\nb(1).\n#show a/1.\n", File: "test.lp"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rendered := renderAll(out)
	if strings.Contains(rendered, "b(") {
		t.Fatalf("hidden predicate b should have been eliminated, got %q", rendered)
	}
}

func TestRunHereAndThereSingleProgramEmitsPrimeAxioms(t *testing.T) {
	c := ctx.New()
	c.TranslationMode = ctx.HereAndThere
	log := &diagnostic.Log{}
	d := New(c, log)

	out, err := d.Run([]Source{{Text: "p(X) :- q(X).\n", File: "test.lp"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rendered := renderAll(out)
	if !strings.Contains(rendered, "'") {
		t.Fatalf("expected primed predicates among here-and-there axioms, got %q", rendered)
	}
}

func TestRunHereAndThereTPTPMapsDomainsOnPrimeAxioms(t *testing.T) {
	c := ctx.New()
	c.TranslationMode = ctx.HereAndThere
	c.OutputFormat = ctx.TPTP
	log := &diagnostic.Log{}
	d := New(c, log)

	out, err := d.Run([]Source{{Text: "p(X) :- q(X).\n", File: "test.lp"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	rendered := renderAll(out)
	if !strings.Contains(rendered, "f__symbolic__") {
		t.Fatalf("expected domain-mapped prime axioms under TPTP output, got %q", rendered)
	}
}

func TestRunHereAndThereTwoProgramsEmitsSingleConjecture(t *testing.T) {
	c := ctx.New()
	c.TranslationMode = ctx.HereAndThere
	log := &diagnostic.Log{}
	d := New(c, log)

	a := []Source{{Text: "p(X) :- q(X).\n", File: "a.lp"}}
	b := []Source{{Text: "p(X) :- q(X).\n", File: "b.lp"}}
	out, err := d.RunTwoPrograms(a, b)
	if err != nil {
		t.Fatalf("RunTwoPrograms: %v", err)
	}

	var conjectures int
	for _, f := range out {
		if f.Role == Conjecture {
			conjectures++
			if _, ok := f.Formula.(ast.Biconditional); !ok {
				t.Fatalf("conjecture formula is %T, want ast.Biconditional", f.Formula)
			}
		}
	}
	if conjectures != 1 {
		t.Fatalf("got %d conjectures, want exactly 1", conjectures)
	}
}

func TestRunCompletionModeRejectsTwoPrograms(t *testing.T) {
	c := ctx.New()
	log := &diagnostic.Log{}
	d := New(c, log)

	a := []Source{{Text: "p.\n", File: "a.lp"}}
	b := []Source{{Text: "q.\n", File: "b.lp"}}
	if _, err := d.RunTwoPrograms(a, b); err == nil {
		t.Fatal("expected an error: completion mode does not support two programs")
	}
}

// TestRunCompletionModeGoldenUndefinedBodyPredicate pins the exact output
// for a program whose body mentions a predicate ("d") that never occurs in
// any rule head. That predicate still needs a completed definition (it
// collapses to #false) so eliminating it turns "not d(...)" into
// "not #false" rather than dropping the dependency silently.
func TestRunCompletionModeGoldenUndefinedBodyPredicate(t *testing.T) {
	c := ctx.New()
	log := &diagnostic.Log{}
	d := New(c, log)

	out, err := d.Run([]Source{{Text: "a(X) :- b(X), c(X).\nb(X) :- not d(X).\nc(1).\nc(2).\n#show a/1.\n", File: "test.lp"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if log.HasErrors() {
		t.Fatalf("unexpected errors: %v", log.Err())
	}
	got := renderAll(out)
	want := "forall V12 (a(V12) <-> ((not #false) and (V12 = 1 or V12 = 2)))\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("completion output mismatch (-want +got):\n%s", diff)
	}
}

// TestRunCompletionModeGoldenCircularDependencySurvives pins the exact
// output for a circular definition chain (a -> b -> not c -> d -> not b):
// d's completed definition mentions d itself once b and c are eliminated,
// so d cannot be hidden and is kept alongside a.
func TestRunCompletionModeGoldenCircularDependencySurvives(t *testing.T) {
	c := ctx.New()
	log := &diagnostic.Log{}
	d := New(c, log)

	out, err := d.Run([]Source{{Text: "a(X) :- b(X).\nb(X) :- not c(X).\nc(X) :- d(X).\nd(X) :- not b(X).\n#show a/1.\n", File: "test.lp"}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if log.HasErrors() {
		t.Fatalf("unexpected errors: %v", log.Err())
	}
	got := renderAll(out)
	want := "forall V14 (a(V14) <-> (not d(V14)))\n" +
		"forall V16 (d(V16) <-> (not (not d(V16))))\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("completion output mismatch (-want +got):\n%s", diff)
	}
}
