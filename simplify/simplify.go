// Package simplify implements the fixed-point rewriter of spec §4.4:
// constant folding, nested-connective flattening, empty-quantifier
// collapse, and equality-driven variable elimination. Grounded on the
// teacher's rewrite.Rewrite traversal shape (bottom-up, repeat to a
// fixed point), generalized from its single rewrite rule to the set
// spec §4.4 names.
//
// Simplification is sound only for classical semantics (spec §4.4); the
// driver is responsible for skipping this package entirely when the
// active translation mode is HereAndThere.
package simplify

import "github.com/anthem-asp/anthem/ast"

// Formula simplifies f to a fixed point: repeated application of
// simplifyOnce until a pass produces no change.
func Formula(f ast.Formula) ast.Formula {
	for {
		next, changed := simplifyOnce(f)
		f = next
		if !changed {
			return f
		}
	}
}

// Scoped simplifies every formula in sfs, leaving free-variable lists
// untouched: simplification never introduces a new free variable (spec
// §4.4), so the set stays valid even though some of it may no longer be
// mentioned in the Formula (e.g. if the whole body folded to #true).
func Scoped(sfs []ast.ScopedFormula) []ast.ScopedFormula {
	out := make([]ast.ScopedFormula, len(sfs))
	for i, sf := range sfs {
		out[i] = ast.ScopedFormula{Formula: Formula(sf.Formula), FreeVariables: sf.FreeVariables}
	}
	return out
}

func simplifyOnce(f ast.Formula) (ast.Formula, bool) {
	switch v := f.(type) {
	case ast.FormulaBoolean, ast.Predicate, ast.Comparison, ast.In:
		return f, false

	case ast.Not:
		arg, changed := simplifyOnce(v.Argument)
		if fb, ok := arg.(ast.FormulaBoolean); ok {
			return boolFormula(!fb.Value), true
		}
		if changed {
			return ast.Not{Argument: arg}, true
		}
		return v, false

	case ast.And:
		return simplifyAssoc(v.Arguments, true)

	case ast.Or:
		return simplifyAssoc(v.Arguments, false)

	case ast.Implies:
		return simplifyImplies(v)

	case ast.Biconditional:
		return simplifyBiconditional(v)

	case ast.Exists:
		return simplifyQuantifier(v.Variables, v.Argument, true)

	case ast.ForAll:
		return simplifyQuantifier(v.Variables, v.Argument, false)
	}
	return f, false
}

func boolFormula(b bool) ast.Formula {
	if b {
		return ast.True
	}
	return ast.False
}

// simplifyAssoc implements constant folding and one level of nested
// flattening for And (conjunction=true) and Or (conjunction=false).
func simplifyAssoc(args []ast.Formula, conjunction bool) (ast.Formula, bool) {
	changed := false
	var flat []ast.Formula
	for _, a := range args {
		sa, c := simplifyOnce(a)
		if c {
			changed = true
		}
		if conjunction {
			if inner, ok := sa.(ast.And); ok {
				flat = append(flat, inner.Arguments...)
				changed = true
				continue
			}
		} else {
			if inner, ok := sa.(ast.Or); ok {
				flat = append(flat, inner.Arguments...)
				changed = true
				continue
			}
		}
		flat = append(flat, sa)
	}

	absorbing, neutral := false, true // for And: #false absorbs, #true is neutral
	if !conjunction {
		absorbing, neutral = true, false // for Or: #true absorbs, #false is neutral
	}

	var kept []ast.Formula
	for _, a := range flat {
		if fb, ok := a.(ast.FormulaBoolean); ok {
			if fb.Value == absorbing {
				return boolFormula(absorbing), true
			}
			if fb.Value == neutral {
				changed = true
				continue
			}
		}
		kept = append(kept, a)
	}

	switch len(kept) {
	case 0:
		return boolFormula(neutral), true
	case 1:
		return kept[0], true
	}
	if len(kept) == len(args) && !changed {
		if conjunction {
			return ast.And{Arguments: kept}, false
		}
		return ast.Or{Arguments: kept}, false
	}
	if conjunction {
		return ast.And{Arguments: kept}, true
	}
	return ast.Or{Arguments: kept}, true
}

func simplifyImplies(v ast.Implies) (ast.Formula, bool) {
	a, c1 := simplifyOnce(v.Antecedent)
	if fb, ok := a.(ast.FormulaBoolean); ok {
		if !fb.Value {
			return ast.True, true
		}
		b, _ := simplifyOnce(v.Consequent)
		return b, true
	}
	b, c2 := simplifyOnce(v.Consequent)
	if fb, ok := b.(ast.FormulaBoolean); ok && fb.Value {
		return ast.True, true
	}
	if c1 || c2 {
		return ast.Implies{Antecedent: a, Consequent: b}, true
	}
	return v, false
}

func simplifyBiconditional(v ast.Biconditional) (ast.Formula, bool) {
	a, c1 := simplifyOnce(v.Left)
	b, c2 := simplifyOnce(v.Right)
	if fb, ok := a.(ast.FormulaBoolean); ok {
		if fb.Value {
			return b, true
		}
		return ast.Not{Argument: b}, true
	}
	if fb, ok := b.(ast.FormulaBoolean); ok {
		if fb.Value {
			return a, true
		}
		return ast.Not{Argument: a}, true
	}
	if c1 || c2 {
		return ast.Biconditional{Left: a, Right: b}, true
	}
	return v, false
}

func simplifyQuantifier(vars []*ast.VariableDeclaration, arg ast.Formula, existential bool) (ast.Formula, bool) {
	sa, changed := simplifyOnce(arg)
	if len(vars) == 0 {
		return sa, true
	}
	if existential {
		if newVars, newArg, ok := tryEqualityElimination(vars, sa); ok {
			return ast.NewExists(newVars, newArg), true
		}
		return ast.NewExists(vars, sa), changed
	}
	return ast.NewForAll(vars, sa), changed
}

// tryEqualityElimination implements spec §4.4's equality-driven
// elimination: if sa is (structurally, after flattening) a conjunction
// containing x = t or t = x for some x among vars, t not referencing x,
// remove that conjunct, substitute t for x through the rest, and drop x
// from vars.
func tryEqualityElimination(vars []*ast.VariableDeclaration, sa ast.Formula) ([]*ast.VariableDeclaration, ast.Formula, bool) {
	list, isAnd := sa.(ast.And)
	var conjuncts []ast.Formula
	if isAnd {
		conjuncts = list.Arguments
	} else {
		conjuncts = []ast.Formula{sa}
	}

	for i, c := range conjuncts {
		cmp, ok := c.(ast.Comparison)
		if !ok || cmp.Operator != ast.Equal {
			continue
		}
		for _, pair := range [2][2]ast.Term{{cmp.Left, cmp.Right}, {cmp.Right, cmp.Left}} {
			vterm, replacement := pair[0], pair[1]
			v, isVar := vterm.(ast.Variable)
			if !isVar || !containsDecl(vars, v.Declaration) {
				continue
			}
			if termReferences(replacement, v.Declaration) {
				continue
			}
			subst := ast.SubstMap{v.Declaration: replacement}
			rest := make([]ast.Formula, 0, len(conjuncts)-1)
			for j, other := range conjuncts {
				if j == i {
					continue
				}
				rest = append(rest, other.ApplySubst(subst))
			}
			newVars := removeDecl(vars, v.Declaration)
			var newBody ast.Formula
			switch len(rest) {
			case 0:
				newBody = ast.True
			case 1:
				newBody = rest[0]
			default:
				newBody = ast.And{Arguments: rest}
			}
			return newVars, newBody, true
		}
	}
	return nil, nil, false
}

func containsDecl(vars []*ast.VariableDeclaration, v *ast.VariableDeclaration) bool {
	for _, w := range vars {
		if w == v {
			return true
		}
	}
	return false
}

func removeDecl(vars []*ast.VariableDeclaration, v *ast.VariableDeclaration) []*ast.VariableDeclaration {
	out := make([]*ast.VariableDeclaration, 0, len(vars)-1)
	for _, w := range vars {
		if w != v {
			out = append(out, w)
		}
	}
	return out
}

func termReferences(t ast.Term, v *ast.VariableDeclaration) bool {
	switch tt := t.(type) {
	case ast.Variable:
		return tt.Declaration == v
	case ast.Function:
		for _, a := range tt.Arguments {
			if termReferences(a, v) {
				return true
			}
		}
		return false
	case ast.UnaryOperation:
		return termReferences(tt.Argument, v)
	case ast.BinaryOperation:
		return termReferences(tt.Left, v) || termReferences(tt.Right, v)
	case ast.Interval:
		return termReferences(tt.From, v) || termReferences(tt.To, v)
	default:
		return false
	}
}
