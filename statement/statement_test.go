package statement

import (
	"testing"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/parse"
)

func translateSource(t *testing.T, src string) (*ctx.Context, []string) {
	t.Helper()
	stmts, err := parse.Parse(src, "test.lp")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	c := ctx.New()
	log := &diagnostic.Log{}
	tr := New(c, log)
	sfs, err := tr.Translate(stmts)
	if err != nil {
		t.Fatalf("translate: %v", err)
	}
	if log.HasErrors() {
		t.Fatalf("unexpected errors: %v", log.Err())
	}
	out := make([]string, len(sfs))
	for i, sf := range sfs {
		out[i] = sf.Close().String()
	}
	return c, out
}

func TestTranslateFact(t *testing.T) {
	_, out := translateSource(t, "q.\n")
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1", len(out))
	}
	got := out[0]
	if !contains(got, "#true") || !contains(got, "q") || !contains(got, "->") {
		t.Fatalf("got %q, want a #true-antecedent implication concluding q", got)
	}
}

func TestTranslateConstraint(t *testing.T) {
	_, out := translateSource(t, ":- p, q.\n")
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1", len(out))
	}
	got := out[0]
	if !contains(got, "p") || !contains(got, "q") || !contains(got, "and") || !contains(got, "#false") {
		t.Fatalf("got %q, want a conjunction of p and q implying #false", got)
	}
}

func TestTranslateRuleRegistersPredicates(t *testing.T) {
	c, _ := translateSource(t, "a(X) :- b(X), c(X).\n")
	names := map[string]bool{}
	for _, d := range c.Predicates() {
		names[d.Signature()] = true
	}
	for _, want := range []string{"a/1", "b/1", "c/1"} {
		if !names[want] {
			t.Fatalf("missing predicate %s among %v", want, names)
		}
	}
}

func TestTranslateShowSetsVisibility(t *testing.T) {
	c, _ := translateSource(t, "a(X) :- b(X).\nb(1).\n#show a/1.\n")
	for _, d := range c.Predicates() {
		switch d.Signature() {
		case "a/1":
			if d.Visibility != ast.Visible {
				t.Fatalf("a/1 visibility = %v, want Visible", d.Visibility)
			}
		case "b/1":
			if d.Visibility != ast.Hidden {
				t.Fatalf("b/1 visibility = %v, want Hidden", d.Visibility)
			}
		}
	}
}

func TestTranslateExternal(t *testing.T) {
	c, _ := translateSource(t, "#external p/1.\n")
	d := c.FindOrCreatePredicate("p", 1)
	if !d.IsExternal {
		t.Fatal("expected p/1 to be marked external")
	}
}

func TestTranslateClassicalNegation(t *testing.T) {
	c, _ := translateSource(t, "-p :- q.\n")
	found := false
	for _, d := range c.Predicates() {
		if d.Name == "-p" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a distinct declaration for classically negated p")
	}
}

func TestTranslatePoolIntroducesExistential(t *testing.T) {
	_, out := translateSource(t, "p((1;2;3)).\n")
	if len(out) != 1 {
		t.Fatalf("got %d formulas, want 1", len(out))
	}
	got := out[0]
	if !contains(got, "exists") || !contains(got, "or") {
		t.Fatalf("got %q, want an existential disjunction over pool alternatives", got)
	}
}

func contains(s, substr string) bool {
	return len(s) >= len(substr) && (func() bool {
		for i := 0; i+len(substr) <= len(s); i++ {
			if s[i:i+len(substr)] == substr {
				return true
			}
		}
		return false
	})()
}
