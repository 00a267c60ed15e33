package complete

import (
	"strings"
	"testing"

	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/parse"
	"github.com/anthem-asp/anthem/statement"
)

func completeSource(t *testing.T, src string) []string {
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
	completed := New(c, log).Complete(sfs)
	out := make([]string, len(completed))
	for i, sf := range completed {
		out[i] = sf.Close().String()
	}
	return out
}

func TestCompleteFactOnly(t *testing.T) {
	out := completeSource(t, "q.\n")
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1: %v", len(out), out)
	}
	got := out[0]
	if !strings.Contains(got, "q") || !strings.Contains(got, "<->") {
		t.Fatalf("got %q, want a biconditional completed definition of q", got)
	}
}

func TestCompleteNoDefiningRuleIsFalse(t *testing.T) {
	out := completeSource(t, "p :- q.\n")
	var foundP, foundQ bool
	for _, f := range out {
		if strings.Contains(f, "p <->") {
			foundP = true
		}
		if strings.Contains(f, "q <->") && strings.Contains(f, "#false") {
			foundQ = true
		}
	}
	if !foundP {
		t.Fatalf("no completed definition of p among %v", out)
	}
	if !foundQ {
		t.Fatalf("expected q (never defined by a rule) to complete to #false among %v", out)
	}
}

func TestCompleteConstraintPassesThrough(t *testing.T) {
	out := completeSource(t, "p.\n:- not p.\n")
	if len(out) != 2 {
		t.Fatalf("got %d formulas, want 2 (one completed def, one constraint): %v", len(out), out)
	}
	var foundConstraint bool
	for _, f := range out {
		if strings.Contains(f, "#false") {
			foundConstraint = true
		}
	}
	if !foundConstraint {
		t.Fatalf("expected the integrity constraint to survive completion among %v", out)
	}
}
