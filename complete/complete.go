// Package complete derives Clark's completion of a program from the
// scoped formulas the statement translator produced (spec §4.5).
// Grounded on the teacher's stratification.go's per-predicate bucketing
// idiom (group formulas by the head predicate they define, then fold
// each bucket into one formula), applied here to build one disjunct per
// defining rule instead of one stratum per predicate.
package complete

import (
	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
)

// Completer derives completed definitions against a shared Context.
type Completer struct {
	ctx *ctx.Context
	log *diagnostic.Log
}

// New returns a Completer over c, reporting diagnostics to log.
func New(c *ctx.Context, log *diagnostic.Log) *Completer {
	return &Completer{ctx: c, log: log}
}

// Complete derives one completed definition per non-external predicate
// registered in the Context (whether or not it occurs in a head position
// among sfs), plus every formula that is
// not itself a head-defining implication (integrity constraints and
// anything statement translation produced directly) passed through
// unchanged (spec §4.5 step 3).
func (co *Completer) Complete(sfs []ast.ScopedFormula) []ast.ScopedFormula {
	canon := map[*ast.PredicateDeclaration][]*ast.VariableDeclaration{}
	disjuncts := map[*ast.PredicateDeclaration][]ast.Formula{}
	var order []*ast.PredicateDeclaration
	var passthrough []ast.ScopedFormula

	canonicalVars := func(p *ast.PredicateDeclaration) []*ast.VariableDeclaration {
		if vs, ok := canon[p]; ok {
			return vs
		}
		vs := make([]*ast.VariableDeclaration, p.Arity)
		for i := range vs {
			vs[i] = co.ctx.NewVariable("", ast.UserDefined, ast.Unknown)
		}
		canon[p] = vs
		order = append(order, p)
		return vs
	}

	// Every non-external predicate gets a completed definition (spec
	// §4.5: "for every predicate p not declared #external, there exists
	// exactly one formula of shape forall X (p(X) <-> D)"), not only
	// predicates that happen to occur in a rule head: a predicate that is
	// only ever referenced in a body (e.g. an undefined "d" in
	// "b(X) :- not d(X).") still needs its own definition, which
	// defaults to False when ds is empty below, so hidden-predicate
	// elimination has something to substitute at every use site.
	for _, p := range co.ctx.Predicates() {
		if !p.IsExternal {
			canonicalVars(p)
		}
	}

	for _, sf := range sfs {
		impl, ok := sf.Formula.(ast.Implies)
		if !ok {
			passthrough = append(passthrough, sf)
			continue
		}
		if fb, ok := impl.Consequent.(ast.FormulaBoolean); ok && !fb.Value {
			passthrough = append(passthrough, sf) // integrity constraint
			continue
		}

		conjuncts := flattenHeadConjuncts(impl.Consequent)
		if conjuncts == nil {
			passthrough = append(passthrough, sf)
			continue
		}

		normalized := true
		for _, hc := range conjuncts {
			if _, _, _, ok := decomposeHeadConjunct(hc); !ok {
				co.log.Warnf("completion: head conjunct %s is not a normalized definition; carried through unchanged", hc)
				passthrough = append(passthrough, sf)
				normalized = false
				break
			}
		}
		if !normalized {
			continue
		}

		for _, hc := range conjuncts {
			pred, instanceVars, antecedent, _ := decomposeHeadConjunct(hc)
			if pred.IsExternal {
				continue
			}

			canonVars := canonicalVars(pred)
			subst := make(ast.SubstMap, len(instanceVars))
			for i, v := range instanceVars {
				subst[v] = ast.Variable{Declaration: canonVars[i]}
			}
			antecedent2 := antecedent.ApplySubst(subst)
			body2 := impl.Antecedent.ApplySubst(subst)

			freeVars := []*ast.VariableDeclaration(sf.FreeVariables)
			if len(conjuncts) > 1 {
				// A disjunctive head contributes to more than one
				// predicate's completion from the same rule; each
				// disjunct needs its own copy of the rule's free
				// variables so no declaration ends up bound by two
				// different Exists at once.
				freeVars, antecedent2, body2 = renameFreeVars(co.ctx, freeVars, antecedent2, body2)
			}

			disjunct := ast.NewExists(freeVars, ast.And{Arguments: []ast.Formula{antecedent2, body2}})
			disjuncts[pred] = append(disjuncts[pred], disjunct)
		}
	}

	out := make([]ast.ScopedFormula, 0, len(order)+len(passthrough))
	for _, p := range order {
		canonVars := canon[p]
		ds := disjuncts[p]
		var def ast.Formula
		switch {
		case len(ds) == 0:
			def = ast.False
		case len(ds) == 1:
			def = ds[0]
		default:
			def = ast.Or{Arguments: ds}
		}
		pred := ast.Predicate{Declaration: p, Arguments: varsToTerms(canonVars)}
		formula := ast.NewForAll(canonVars, ast.Biconditional{Left: pred, Right: def})
		out = append(out, ast.ScopedFormula{Formula: formula})
	}
	out = append(out, passthrough...)
	return out
}

// flattenHeadConjuncts returns the list of per-predicate definitions a
// (possibly disjunctive) head contributes, or nil if head is the
// integrity-constraint marker False.
func flattenHeadConjuncts(head ast.Formula) []ast.Formula {
	if fb, ok := head.(ast.FormulaBoolean); ok && !fb.Value {
		return nil
	}
	if a, ok := head.(ast.And); ok {
		return a.Arguments
	}
	return []ast.Formula{head}
}

// decomposeHeadConjunct recognizes the normalized shape statement
// translation always produces for a single head atom:
// forall X̄ (antecedent -> p(X̄)), or, at arity 0, antecedent -> p.
func decomposeHeadConjunct(hc ast.Formula) (pred *ast.PredicateDeclaration, vars []*ast.VariableDeclaration, antecedent ast.Formula, ok bool) {
	switch h := hc.(type) {
	case ast.ForAll:
		impl, isImpl := h.Argument.(ast.Implies)
		if !isImpl {
			return nil, nil, nil, false
		}
		p, isPred := impl.Consequent.(ast.Predicate)
		if !isPred {
			return nil, nil, nil, false
		}
		return p.Declaration, h.Variables, impl.Antecedent, true
	case ast.Implies:
		p, isPred := h.Consequent.(ast.Predicate)
		if !isPred {
			return nil, nil, nil, false
		}
		return p.Declaration, nil, h.Antecedent, true
	}
	return nil, nil, nil, false
}

func renameFreeVars(c *ctx.Context, vars []*ast.VariableDeclaration, a, b ast.Formula) ([]*ast.VariableDeclaration, ast.Formula, ast.Formula) {
	if len(vars) == 0 {
		return vars, a, b
	}
	fresh := make([]*ast.VariableDeclaration, len(vars))
	subst := make(ast.SubstMap, len(vars))
	for i, v := range vars {
		nv := c.NewVariable(v.Name, v.Type, v.Domain)
		fresh[i] = nv
		subst[v] = ast.Variable{Declaration: nv}
	}
	return fresh, a.ApplySubst(subst), b.ApplySubst(subst)
}

func varsToTerms(vs []*ast.VariableDeclaration) []ast.Term {
	ts := make([]ast.Term, len(vs))
	for i, v := range vs {
		ts[i] = ast.Variable{Declaration: v}
	}
	return ts
}
