// Package hidden eliminates hidden predicates from a completed program by
// substituting each one's completed definition at every remaining use
// site, so that the final formula set only mentions predicates the
// program actually wants to show (spec §4.6). Grounded on
// HiddenPredicateElimination.cpp: the same three replacement shapes for
// a completed definition, the same circular-dependency guard, and the
// same in-place propagate-then-drop loop, adapted from its visitor
// dispatch to a plain recursive rewrite over the Go AST.
package hidden

import (
	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/diagnostic"
)

// Eliminate removes every hidden, non-external predicate definition from
// formulas, substituting its completed definition at each remaining
// occurrence. freshID mints variable IDs for the copies
// ast.PrepareCopy produces at each substitution site. A predicate whose
// own completed definition still mentions it (directly; spec does not
// ask for transitive cycle detection) cannot be eliminated and is kept,
// with a warning.
func Eliminate(formulas []ast.ScopedFormula, log *diagnostic.Log, freshID func() int) []ast.ScopedFormula {
	entries := make([]ast.Formula, len(formulas))
	removed := make([]bool, len(formulas))
	for i, sf := range formulas {
		entries[i] = sf.Formula
	}

	for i := range entries {
		if removed[i] {
			continue
		}
		pred, params, body, ok := extractDefinition(entries[i])
		if !ok || pred.IsExternal || pred.Visibility != ast.Hidden {
			continue
		}
		if formulaReferencesPredicate(body, pred) {
			log.Warnf("cannot hide predicate %s due to circular dependency", pred.Signature())
			continue
		}
		for j := range entries {
			if j == i || removed[j] {
				continue
			}
			entries[j] = replacePredicate(entries[j], pred, params, body, freshID)
		}
		removed[i] = true
	}

	out := make([]ast.ScopedFormula, 0, len(formulas))
	for i, sf := range formulas {
		if removed[i] {
			continue
		}
		out = append(out, ast.ScopedFormula{Formula: entries[i], FreeVariables: sf.FreeVariables})
	}
	return out
}

// extractDefinition recognizes the three shapes a completed definition
// can take (spec §4.5 output, mirrored by
// HiddenPredicateElimination.cpp's findReplacement): a bare predicate
// (always true), a negated predicate (always false), or a biconditional
// with the predicate on the left. The defining ForAll's own bound
// variables (or none, at arity 0) become the parameters the replacement
// body is stated in terms of.
func extractDefinition(f ast.Formula) (pred *ast.PredicateDeclaration, params []*ast.VariableDeclaration, body ast.Formula, ok bool) {
	if fa, isForAll := f.(ast.ForAll); isForAll {
		p, _, body2, ok2 := definitionShape(fa.Argument)
		return p, fa.Variables, body2, ok2
	}
	return definitionShape(f)
}

func definitionShape(f ast.Formula) (pred *ast.PredicateDeclaration, params []*ast.VariableDeclaration, body ast.Formula, ok bool) {
	switch v := f.(type) {
	case ast.Predicate:
		return v.Declaration, nil, ast.True, true
	case ast.Not:
		if p, isPred := v.Argument.(ast.Predicate); isPred {
			return p.Declaration, nil, ast.False, true
		}
	case ast.Biconditional:
		if p, isPred := v.Left.(ast.Predicate); isPred {
			return p.Declaration, nil, v.Right, true
		}
	}
	return nil, nil, nil, false
}

func formulaReferencesPredicate(f ast.Formula, pred *ast.PredicateDeclaration) bool {
	switch v := f.(type) {
	case ast.FormulaBoolean, ast.Comparison, ast.In:
		return false
	case ast.Predicate:
		return v.Declaration == pred
	case ast.Not:
		return formulaReferencesPredicate(v.Argument, pred)
	case ast.And:
		for _, a := range v.Arguments {
			if formulaReferencesPredicate(a, pred) {
				return true
			}
		}
		return false
	case ast.Or:
		for _, a := range v.Arguments {
			if formulaReferencesPredicate(a, pred) {
				return true
			}
		}
		return false
	case ast.Implies:
		return formulaReferencesPredicate(v.Antecedent, pred) || formulaReferencesPredicate(v.Consequent, pred)
	case ast.Biconditional:
		return formulaReferencesPredicate(v.Left, pred) || formulaReferencesPredicate(v.Right, pred)
	case ast.Exists:
		return formulaReferencesPredicate(v.Argument, pred)
	case ast.ForAll:
		return formulaReferencesPredicate(v.Argument, pred)
	}
	return false
}

// replacePredicate rewrites f, substituting every occurrence of pred
// with a fresh ast.PrepareCopy of body, its params bound to the actual
// arguments the occurrence was applied to.
func replacePredicate(f ast.Formula, pred *ast.PredicateDeclaration, params []*ast.VariableDeclaration, body ast.Formula, freshID func() int) ast.Formula {
	switch v := f.(type) {
	case ast.FormulaBoolean, ast.Comparison, ast.In:
		return f
	case ast.Predicate:
		if v.Declaration != pred {
			return f
		}
		fresh := ast.PrepareCopy(body, freshID)
		subst := make(ast.SubstMap, len(params))
		for i, p := range params {
			subst[p] = v.Arguments[i]
		}
		return fresh.ApplySubst(subst)
	case ast.Not:
		return ast.Not{Argument: replacePredicate(v.Argument, pred, params, body, freshID)}
	case ast.And:
		args := make([]ast.Formula, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = replacePredicate(a, pred, params, body, freshID)
		}
		return ast.And{Arguments: args}
	case ast.Or:
		args := make([]ast.Formula, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = replacePredicate(a, pred, params, body, freshID)
		}
		return ast.Or{Arguments: args}
	case ast.Implies:
		return ast.Implies{
			Antecedent: replacePredicate(v.Antecedent, pred, params, body, freshID),
			Consequent: replacePredicate(v.Consequent, pred, params, body, freshID),
		}
	case ast.Biconditional:
		return ast.Biconditional{
			Left:  replacePredicate(v.Left, pred, params, body, freshID),
			Right: replacePredicate(v.Right, pred, params, body, freshID),
		}
	case ast.Exists:
		return ast.Exists{Variables: v.Variables, Argument: replacePredicate(v.Argument, pred, params, body, freshID)}
	case ast.ForAll:
		return ast.ForAll{Variables: v.Variables, Argument: replacePredicate(v.Argument, pred, params, body, freshID)}
	}
	return f
}
