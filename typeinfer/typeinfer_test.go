package typeinfer

import (
	"testing"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/complete"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/parse"
	"github.com/anthem-asp/anthem/statement"
)

func translateAndComplete(t *testing.T, src string) []ast.ScopedFormula {
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
	return complete.New(c, log).Complete(sfs)
}

func TestArithmeticOperandForcesInteger(t *testing.T) {
	sfs := translateAndComplete(t, "p(X) :- X = Y + 1.\n")
	Scoped(sfs)

	var found bool
	for _, sf := range sfs {
		forEachVar(sf.Formula, func(v *ast.VariableDeclaration) {
			if v.Name == "Y" {
				found = true
				if v.Domain != ast.Integer {
					t.Fatalf("Y's domain = %v, want Integer", v.Domain)
				}
			}
		})
	}
	if !found {
		t.Fatal("did not find variable Y in the completed formula")
	}
}

func TestUnconstrainedVariableStaysGeneral(t *testing.T) {
	sfs := translateAndComplete(t, "p(X) :- q(X).\n")
	Scoped(sfs)

	var found bool
	for _, sf := range sfs {
		forEachVar(sf.Formula, func(v *ast.VariableDeclaration) {
			if v.Name == "X" {
				found = true
				if v.Domain != ast.General {
					t.Fatalf("X's domain = %v, want General", v.Domain)
				}
			}
		})
	}
	if !found {
		t.Fatal("did not find variable X in the completed formula")
	}
}

func TestEqualityLinkPropagatesRequiredness(t *testing.T) {
	sfs := translateAndComplete(t, "p(X) :- X = Y, Y = Z + 1.\n")
	Scoped(sfs)

	domains := map[string]ast.Domain{}
	for _, sf := range sfs {
		forEachVar(sf.Formula, func(v *ast.VariableDeclaration) {
			if v.Name != "" {
				domains[v.Name] = v.Domain
			}
		})
	}
	if domains["X"] != ast.Integer {
		t.Fatalf("X's domain = %v, want Integer (linked to Y via equality)", domains["X"])
	}
}

func forEachVar(f ast.Formula, fn func(*ast.VariableDeclaration)) {
	switch v := f.(type) {
	case ast.Predicate:
		for _, a := range v.Arguments {
			forEachTermVar(a, fn)
		}
	case ast.Comparison:
		forEachTermVar(v.Left, fn)
		forEachTermVar(v.Right, fn)
	case ast.In:
		forEachTermVar(v.Element, fn)
		forEachTermVar(v.Set, fn)
	case ast.Not:
		forEachVar(v.Argument, fn)
	case ast.And:
		for _, a := range v.Arguments {
			forEachVar(a, fn)
		}
	case ast.Or:
		for _, a := range v.Arguments {
			forEachVar(a, fn)
		}
	case ast.Implies:
		forEachVar(v.Antecedent, fn)
		forEachVar(v.Consequent, fn)
	case ast.Biconditional:
		forEachVar(v.Left, fn)
		forEachVar(v.Right, fn)
	case ast.Exists:
		for _, d := range v.Variables {
			fn(d)
		}
		forEachVar(v.Argument, fn)
	case ast.ForAll:
		for _, d := range v.Variables {
			fn(d)
		}
		forEachVar(v.Argument, fn)
	}
}

func forEachTermVar(t ast.Term, fn func(*ast.VariableDeclaration)) {
	switch tt := t.(type) {
	case ast.Variable:
		fn(tt.Declaration)
	case ast.Function:
		for _, a := range tt.Arguments {
			forEachTermVar(a, fn)
		}
	case ast.UnaryOperation:
		forEachTermVar(tt.Argument, fn)
	case ast.BinaryOperation:
		forEachTermVar(tt.Left, fn)
		forEachTermVar(tt.Right, fn)
	case ast.Interval:
		forEachTermVar(tt.From, fn)
		forEachTermVar(tt.To, fn)
	}
}
