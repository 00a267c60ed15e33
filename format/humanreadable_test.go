package format

import (
	"os"
	"strings"
	"testing"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/driver"
)

func TestHumanReadablePrintsOneLinePerFormula(t *testing.T) {
	c := ctx.New()
	p := c.FindOrCreatePredicate("p", 0)
	q := c.FindOrCreatePredicate("q", 0)

	formulas := []driver.Formula{
		{Name: "axiom_1", Role: driver.Axiom, Formula: ast.Predicate{Declaration: p}},
		{Name: "axiom_2", Role: driver.Axiom, Formula: ast.Not{Argument: ast.Predicate{Declaration: q}}},
	}

	var sb strings.Builder
	if err := HumanReadable(&sb, formulas, false); err != nil {
		t.Fatalf("HumanReadable: %v", err)
	}
	want := "p\nnot q\n"
	if sb.String() != want {
		t.Fatalf("got %q, want %q", sb.String(), want)
	}
}

func TestHumanReadableColorWrapsKeywords(t *testing.T) {
	c := ctx.New()
	p := c.FindOrCreatePredicate("p", 0)
	q := c.FindOrCreatePredicate("q", 0)

	formulas := []driver.Formula{
		{Name: "axiom_1", Role: driver.Axiom, Formula: ast.And{Arguments: []ast.Formula{
			ast.Predicate{Declaration: p},
			ast.Predicate{Declaration: q},
		}}},
	}

	var sb strings.Builder
	if err := HumanReadable(&sb, formulas, true); err != nil {
		t.Fatalf("HumanReadable: %v", err)
	}
	if !strings.Contains(sb.String(), ansiKeyword+"and"+ansiReset) {
		t.Fatalf("expected colorized 'and', got %q", sb.String())
	}
}

func TestHumanReadableNoColorLeavesKeywordsPlain(t *testing.T) {
	c := ctx.New()
	p := c.FindOrCreatePredicate("p", 0)
	q := c.FindOrCreatePredicate("q", 0)

	formulas := []driver.Formula{
		{Name: "axiom_1", Role: driver.Axiom, Formula: ast.And{Arguments: []ast.Formula{
			ast.Predicate{Declaration: p},
			ast.Predicate{Declaration: q},
		}}},
	}

	var sb strings.Builder
	if err := HumanReadable(&sb, formulas, false); err != nil {
		t.Fatalf("HumanReadable: %v", err)
	}
	if strings.Contains(sb.String(), "\x1b[") {
		t.Fatalf("expected no ANSI escapes, got %q", sb.String())
	}
}

func TestIsTerminalFalseForRegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "anthem-format-test")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()
	if IsTerminal(f) {
		t.Fatalf("expected a regular file to not be reported as a terminal")
	}
}
