package statement

import (
	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/parse"
)

// translateSimpleTerm translates t directly into an ast.Term with no
// auxiliary constraints, succeeding only when t and (recursively) every
// argument of a function term is itself primitive surface syntax: a
// name, a variable, a literal, or a function application over such
// terms. Pools, intervals, and arithmetic operations always fail here;
// translateArgConstraint lifts them through a fresh variable instead.
func (tr *Translator) translateSimpleTerm(t parse.Term) (ast.Term, bool) {
	switch tt := t.(type) {
	case parse.Identifier:
		return ast.Function{Declaration: tr.ctx.FindOrCreateFunction(tt.Name, 0)}, true
	case parse.Variable:
		return ast.Variable{Declaration: tr.resolveVariable(tt)}, true
	case parse.IntegerLit:
		return ast.Integer{Value: tt.Value}, true
	case parse.StringLit:
		return ast.String{Value: tt.Value}, true
	case parse.Special:
		return ast.SpecialInteger{Kind: translateSpecialKind(tt.Kind)}, true
	case parse.FunctionTerm:
		args := make([]ast.Term, len(tt.Args))
		for i, a := range tt.Args {
			at, ok := tr.translateSimpleTerm(a)
			if !ok {
				return nil, false
			}
			args[i] = at
		}
		return ast.Function{Declaration: tr.ctx.FindOrCreateFunction(tt.Name, len(tt.Args)), Arguments: args}, true
	default:
		return nil, false
	}
}

func translateSpecialKind(k parse.SpecialKind) ast.SpecialIntegerKind {
	if k == parse.SpecialSupremum {
		return ast.Supremum
	}
	return ast.Infimum
}

// translateArgConstraint returns the formula relating x to t (spec
// §4.3): for primitive t this is a plain equality; for a function
// application with a non-primitive argument, a pool, an interval, or an
// arithmetic operation, it existentially introduces whatever fresh
// variables that construct's translation needs and conjoins their
// defining equations.
func (tr *Translator) translateArgConstraint(x *ast.VariableDeclaration, t parse.Term) ast.Formula {
	if st, ok := tr.translateSimpleTerm(t); ok {
		return ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: x}, Right: st}
	}

	switch tt := t.(type) {
	case parse.FunctionTerm:
		args := make([]*ast.VariableDeclaration, len(tt.Args))
		conjuncts := make([]ast.Formula, len(tt.Args))
		for i, a := range tt.Args {
			args[i] = tr.freshArgVar()
			conjuncts[i] = tr.translateArgConstraint(args[i], a)
		}
		fn := tr.ctx.FindOrCreateFunction(tt.Name, len(tt.Args))
		eq := ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: x}, Right: ast.Function{Declaration: fn, Arguments: varsToTerms(args)}}
		return ast.NewExists(args, ast.And{Arguments: append(conjuncts, eq)})

	case parse.UnaryOp:
		return tr.translateUnary(x, tt)

	case parse.BinOp:
		return tr.translateBinary(x, tt)

	case parse.Interval:
		return tr.translateInterval(x, tt)

	case parse.Pool:
		return tr.translatePool(x, tt)
	}

	tr.log.Errorf(diagnostic.TranslationError, "unsupported term construct %T", t)
	return ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: x}, Right: ast.Boolean{Value: false}}
}

// translateUnary implements "unary minus binds X = -N and N = a" (spec
// §4.3) and the analogous shape for absolute value.
func (tr *Translator) translateUnary(x *ast.VariableDeclaration, t parse.UnaryOp) ast.Formula {
	n := tr.freshIntVar()
	inner := tr.translateArgConstraint(n, t.Arg)
	op := ast.UnaryMinus
	if t.Op == "|.|" {
		op = ast.Absolute
	}
	eq := ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: x}, Right: ast.UnaryOperation{Operator: op, Argument: ast.Variable{Declaration: n}}}
	return ast.NewExists([]*ast.VariableDeclaration{n}, ast.And{Arguments: []ast.Formula{inner, eq}})
}

// translateBinary implements the arithmetic encodings of spec §4.3:
// division and modulo introduce a quotient/remainder pair with the
// soundness constraints spelled out there; the remaining operators lift
// both operands into fresh integer variables and equate X to the direct
// BinaryOperation over them.
func (tr *Translator) translateBinary(x *ast.VariableDeclaration, t parse.BinOp) ast.Formula {
	switch t.Op {
	case "/":
		return tr.translateDivMod(x, t, true)
	case "\\":
		return tr.translateDivMod(x, t, false)
	}

	l := tr.freshIntVar()
	r := tr.freshIntVar()
	cl := tr.translateArgConstraint(l, t.Left)
	cr := tr.translateArgConstraint(r, t.Right)
	eq := ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: x}, Right: ast.BinaryOperation{Operator: binOp(t.Op), Left: ast.Variable{Declaration: l}, Right: ast.Variable{Declaration: r}}}
	return ast.NewExists([]*ast.VariableDeclaration{l, r}, ast.And{Arguments: []ast.Formula{cl, cr, eq}})
}

// translateDivMod encodes "a/b" (wantQuotient=true, X=q) or "a\b"
// (wantQuotient=false, X=r) as
// a = b*q + r and b != 0 and 0 <= r and r < b (spec §4.3).
func (tr *Translator) translateDivMod(x *ast.VariableDeclaration, t parse.BinOp, wantQuotient bool) ast.Formula {
	a := tr.freshIntVar()
	b := tr.freshIntVar()
	ca := tr.translateArgConstraint(a, t.Left)
	cb := tr.translateArgConstraint(b, t.Right)

	q, r := x, tr.freshIntVar()
	extra := []*ast.VariableDeclaration{a, b, r}
	if !wantQuotient {
		q, r = tr.freshIntVar(), x
		extra = []*ast.VariableDeclaration{a, b, q}
	}

	product := ast.BinaryOperation{Operator: ast.Mul, Left: ast.Variable{Declaration: b}, Right: ast.Variable{Declaration: q}}
	sum := ast.BinaryOperation{Operator: ast.Plus, Left: product, Right: ast.Variable{Declaration: r}}
	eqA := ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: a}, Right: sum}
	neqB := ast.Comparison{Operator: ast.NotEqual, Left: ast.Variable{Declaration: b}, Right: ast.Integer{Value: 0}}
	leZero := ast.Comparison{Operator: ast.LessEqual, Left: ast.Integer{Value: 0}, Right: ast.Variable{Declaration: r}}
	ltB := ast.Comparison{Operator: ast.LessThan, Left: ast.Variable{Declaration: r}, Right: ast.Variable{Declaration: b}}

	return ast.NewExists(extra, ast.And{Arguments: []ast.Formula{ca, cb, eqA, neqB, leZero, ltB}})
}

// translateInterval implements "l..u translates to
// exists N1,N2,N3 (N1=l and N2=u and N1<=N3 and N3<=N2 and X=N3)" (spec
// §4.3), with X playing the role of N3 directly so nested uses (e.g. a
// pool alternative) do not introduce a redundant extra variable.
func (tr *Translator) translateInterval(x *ast.VariableDeclaration, t parse.Interval) ast.Formula {
	n1 := tr.freshIntVar()
	n2 := tr.freshIntVar()
	c1 := tr.translateArgConstraint(n1, t.From)
	c2 := tr.translateArgConstraint(n2, t.To)
	le1 := ast.Comparison{Operator: ast.LessEqual, Left: ast.Variable{Declaration: n1}, Right: ast.Variable{Declaration: x}}
	le2 := ast.Comparison{Operator: ast.LessEqual, Left: ast.Variable{Declaration: x}, Right: ast.Variable{Declaration: n2}}
	return ast.NewExists([]*ast.VariableDeclaration{n1, n2}, ast.And{Arguments: []ast.Formula{c1, c2, le1, le2}})
}

// translatePool implements "(a;b;c) translates to a disjunction of
// equalities X=a or X=b or X=c with a fresh X, wrapped in exists X"
// (spec §4.3), generalized to each alternative's own translation (so an
// alternative may itself be an interval or arithmetic expression, as in
// the mixed pool "1..5;7;a").
func (tr *Translator) translatePool(x *ast.VariableDeclaration, t parse.Pool) ast.Formula {
	vars := make([]*ast.VariableDeclaration, len(t.Alternatives))
	for i := range t.Alternatives {
		vars[i] = tr.freshArgVar()
	}
	conjuncts := make([]ast.Formula, 0, len(vars)+1)
	disjuncts := make([]ast.Formula, len(vars))
	for i, alt := range t.Alternatives {
		conjuncts = append(conjuncts, tr.translateArgConstraint(vars[i], alt))
		disjuncts[i] = ast.Comparison{Operator: ast.Equal, Left: ast.Variable{Declaration: x}, Right: ast.Variable{Declaration: vars[i]}}
	}
	conjuncts = append(conjuncts, ast.Or{Arguments: disjuncts})
	return ast.NewExists(vars, ast.And{Arguments: conjuncts})
}

// translateComparison translates a body comparison literal. When both
// sides are simple surface terms it emits a bare Comparison, matching
// spec §4.3 ("translate directly... over translated terms"); otherwise
// it lifts whichever side needs it through a fresh variable, the same
// way an argument position would.
func (tr *Translator) translateComparison(l parse.ComparisonLiteral) ast.Formula {
	lt, lok := tr.translateSimpleTerm(l.Left)
	rt, rok := tr.translateSimpleTerm(l.Right)
	if lok && rok {
		return ast.Comparison{Operator: mapComparisonOp(l.Op), Left: lt, Right: rt}
	}

	var extra []*ast.VariableDeclaration
	var conjuncts []ast.Formula
	left, right := lt, rt
	if !lok {
		v := tr.freshArgVar()
		extra = append(extra, v)
		conjuncts = append(conjuncts, tr.translateArgConstraint(v, l.Left))
		left = ast.Variable{Declaration: v}
	}
	if !rok {
		v := tr.freshArgVar()
		extra = append(extra, v)
		conjuncts = append(conjuncts, tr.translateArgConstraint(v, l.Right))
		right = ast.Variable{Declaration: v}
	}
	conjuncts = append(conjuncts, ast.Comparison{Operator: mapComparisonOp(l.Op), Left: left, Right: right})
	return ast.NewExists(extra, ast.And{Arguments: conjuncts})
}

func mapComparisonOp(op parse.ComparisonOp) ast.ComparisonOperator {
	switch op {
	case parse.CmpGt:
		return ast.GreaterThan
	case parse.CmpLt:
		return ast.LessThan
	case parse.CmpGe:
		return ast.GreaterEqual
	case parse.CmpLe:
		return ast.LessEqual
	case parse.CmpEq:
		return ast.Equal
	case parse.CmpNeq:
		return ast.NotEqual
	}
	return ast.Equal
}

func binOp(surface string) ast.BinaryOperator {
	switch surface {
	case "+":
		return ast.Plus
	case "-":
		return ast.Minus
	case "*":
		return ast.Mul
	case "**":
		return ast.Pow
	}
	return ast.Plus
}
