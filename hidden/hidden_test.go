package hidden

import (
	"strings"
	"testing"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/complete"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/parse"
	"github.com/anthem-asp/anthem/statement"
)

func completeAndHide(t *testing.T, src string) (*ctx.Context, []string) {
	t.Helper()
	stmts, err := parse.Parse(src, "test.lp")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := ctx.New()
	log := &diagnostic.Log{}
	sfs, err := statement.New(c, log).Translate(stmts)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	completed := complete.New(c, log).Complete(sfs)
	hidden := Eliminate(completed, log, c.FreshID)
	out := make([]string, len(hidden))
	for i, sf := range hidden {
		out[i] = sf.Close().String()
	}
	return c, out
}

func TestEliminateHiddenPredicate(t *testing.T) {
	// b is hidden by default once #show names a/1; its definition should
	// be substituted into a's definition rather than appear on its own.
	_, out := completeAndHide(t, "a(X) :- b(X).\nb(1).\n#show a/1.\n")
	for _, f := range out {
		if strings.Contains(f, "b(") {
			t.Fatalf("hidden predicate b still mentioned: %q among %v", f, out)
		}
	}
	var foundA bool
	for _, f := range out {
		if strings.Contains(f, "a(") {
			foundA = true
		}
	}
	if !foundA {
		t.Fatalf("expected a definition mentioning a among %v", out)
	}
}

func TestEliminateKeepsVisiblePredicates(t *testing.T) {
	_, out := completeAndHide(t, "a(X) :- b(X).\nb(1).\n#show a/1.\n#show b/1.\n")
	var foundB bool
	for _, f := range out {
		if strings.Contains(f, "b(") {
			foundB = true
		}
	}
	if !foundB {
		t.Fatalf("b/1 is shown, should not be eliminated: %v", out)
	}
}

func TestEliminateSkipsCircularDependency(t *testing.T) {
	c := ctx.New()
	log := &diagnostic.Log{}
	p := c.FindOrCreatePredicate("p", 0)
	p.Visibility = ast.Hidden
	self := ast.Predicate{Declaration: p}
	def := ast.Biconditional{Left: self, Right: ast.Not{Argument: self}}
	sfs := []ast.ScopedFormula{{Formula: def}}

	out := Eliminate(sfs, log, c.FreshID)
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1 (circular definition kept): %v", len(out), out)
	}
	if !log.HasErrors() && len(log.Warnings()) == 0 {
		t.Fatal("expected a warning about the circular dependency")
	}
}
