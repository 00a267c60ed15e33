package domain

import (
	"testing"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
)

func TestMapIntegerVariableWrapped(t *testing.T) {
	c := ctx.New()
	x := c.NewVariable("X", ast.UserDefined, ast.Integer)
	p := c.FindOrCreatePredicate("p", 1)
	f := ast.Predicate{Declaration: p, Arguments: []ast.Term{ast.Variable{Declaration: x}}}

	m := New(c)
	out := m.Scoped([]ast.ScopedFormula{{Formula: f}})
	pred, ok := out[0].Formula.(ast.Predicate)
	if !ok {
		t.Fatalf("got %T, want ast.Predicate", out[0].Formula)
	}
	fn, ok := pred.Arguments[0].(ast.Function)
	if !ok || fn.Declaration.Name != FuncInteger {
		t.Fatalf("got %v, want f__integer__-wrapped argument", pred.Arguments[0])
	}
}

func TestMapUntypedVariableUnwrapped(t *testing.T) {
	c := ctx.New()
	x := c.NewVariable("X", ast.UserDefined, ast.General)
	p := c.FindOrCreatePredicate("p", 1)
	f := ast.Predicate{Declaration: p, Arguments: []ast.Term{ast.Variable{Declaration: x}}}

	m := New(c)
	out := m.Scoped([]ast.ScopedFormula{{Formula: f}})
	pred := out[0].Formula.(ast.Predicate)
	if _, ok := pred.Arguments[0].(ast.Variable); !ok {
		t.Fatalf("got %v, want unwrapped variable (General domain stays over object)", pred.Arguments[0])
	}
}

func TestMapLessThanBecomesTypedPredicate(t *testing.T) {
	c := ctx.New()
	x := c.NewVariable("X", ast.UserDefined, ast.Integer)
	cmp := ast.Comparison{Operator: ast.LessThan, Left: ast.Variable{Declaration: x}, Right: ast.Integer{Value: 5}}

	m := New(c)
	out := m.Scoped([]ast.ScopedFormula{{Formula: cmp}})
	pred, ok := out[0].Formula.(ast.Predicate)
	if !ok || pred.Declaration.Name != PredLess {
		t.Fatalf("got %T %v, want p__less__ predicate", out[0].Formula, out[0].Formula)
	}
}

func TestMapArithmeticUsesTypedFunctions(t *testing.T) {
	c := ctx.New()
	x := c.NewVariable("X", ast.BodyIntroduced, ast.Integer)
	y := c.NewVariable("Y", ast.BodyIntroduced, ast.Integer)
	bin := ast.BinaryOperation{Operator: ast.Plus, Left: ast.Variable{Declaration: x}, Right: ast.Variable{Declaration: y}}
	cmp := ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: x}, Right: bin}

	m := New(c)
	out := m.Scoped([]ast.ScopedFormula{{Formula: cmp}})
	got, ok := out[0].Formula.(ast.Comparison)
	if !ok {
		t.Fatalf("got %T, want ast.Comparison (equality stays infix)", out[0].Formula)
	}
	fn, ok := got.Right.(ast.Function)
	if !ok || fn.Declaration.Name != FuncSum {
		t.Fatalf("got %v, want f__sum__-wrapped sum", got.Right)
	}
}
