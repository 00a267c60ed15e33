// Package hereandthere implements the embedding of the logic of
// here-and-there into classical logic via primed predicates (spec
// §4.9): every predicate p gets a fresh primed counterpart p′ with an
// axiom p(x̄) → p′(x̄), and every closed formula is duplicated into two
// classical copies — one priming only predicates under an odd number of
// negations, one priming every predicate occurrence — both emitted as
// axioms. Given two programs, their mapped formulas are conjoined and a
// single biconditional conjecture is emitted instead.
//
// Grounded directly on translateHereAndThere in Translation.cpp: the
// same prime-axiom construction (Symbolic-domain, body-introduced
// parameters; a bare Implies at arity 0, a ForAll-wrapped one
// otherwise), and the same mapToClassicalLogic shape — one
// odd-negation-only copy built from the original tree, one
// all-predicates copy built from an ast.PrepareCopy so the two copies
// never share a quantifier-bound variable declaration once a conjecture
// combines them into a single And.
package hereandthere

import (
	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
)

// PrimeAxioms registers a primed counterpart for every predicate
// currently declared in c and returns the defining axioms
// p(x̄) → p′(x̄). It snapshots c.Predicates() first so the primed
// declarations it creates are not themselves primed again.
func PrimeAxioms(c *ctx.Context) []ast.Formula {
	originals := append([]*ast.PredicateDeclaration(nil), c.Predicates()...)
	axioms := make([]ast.Formula, 0, len(originals))
	for _, p := range originals {
		prime := c.FindOrCreatePrimePredicate(p)
		vars := make([]*ast.VariableDeclaration, p.Arity)
		args := make([]ast.Term, p.Arity)
		for i := range vars {
			v := c.NewVariable("", ast.BodyIntroduced, ast.Symbolic)
			vars[i] = v
			args[i] = ast.Variable{Declaration: v}
		}
		orig := ast.Predicate{Declaration: p, Arguments: args}
		primed := ast.Predicate{Declaration: prime, Arguments: args}
		axioms = append(axioms, ast.NewForAll(vars, ast.Implies{Antecedent: orig, Consequent: primed}))
	}
	return axioms
}

// MapToClassicalLogic duplicates each of formulas into its two classical
// copies and returns all resulting axioms, in [oddNegationCopy,
// allPredicatesCopy] pairs per input formula.
func MapToClassicalLogic(formulas []ast.Formula, freshID func() int) []ast.Formula {
	out := make([]ast.Formula, 0, 2*len(formulas))
	for _, f := range formulas {
		out = append(out, duplicateOddNegations(f, false))
		copy := ast.PrepareCopy(f, freshID)
		out = append(out, duplicateAll(copy))
	}
	return out
}

// Close builds the universal closure of every scoped formula in sfs, in
// order (spec §4.9 step 2).
func Close(sfs []ast.ScopedFormula) []ast.Formula {
	out := make([]ast.Formula, len(sfs))
	for i, sf := range sfs {
		out[i] = sf.Close()
	}
	return out
}

// Conjecture builds the two-program conjecture: the conjunction of
// mappedA and the conjunction of mappedB joined by a biconditional. It
// neither primes predicates nor maps formulas to classical logic; the
// caller passes already-mapped formulas and emits the prime axioms
// separately.
func Conjecture(mappedA, mappedB []ast.Formula) ast.Formula {
	return ast.Biconditional{
		Left:  ast.And{Arguments: mappedA},
		Right: ast.And{Arguments: mappedB},
	}
}

// duplicateOddNegations primes every Predicate occurring under an odd
// number of negations: Not flips polarity, an Implies antecedent is a
// negative position (A → B ≡ ¬A ∨ B) while its consequent keeps the
// surrounding polarity, and quantifiers and conjunction/disjunction
// don't affect polarity. Biconditional cannot arise before completion
// runs, which is mutually exclusive with here-and-there mode; the case
// is handled defensively by treating both sides as keeping the
// surrounding polarity, since a biconditional has no single well-defined
// polarity to flip.
func duplicateOddNegations(f ast.Formula, negative bool) ast.Formula {
	switch v := f.(type) {
	case ast.FormulaBoolean, ast.Comparison, ast.In:
		return f

	case ast.Predicate:
		if negative {
			return ast.Predicate{Declaration: v.Declaration.Prime, Arguments: v.Arguments}
		}
		return f

	case ast.Not:
		return ast.Not{Argument: duplicateOddNegations(v.Argument, !negative)}

	case ast.And:
		args := make([]ast.Formula, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = duplicateOddNegations(a, negative)
		}
		return ast.And{Arguments: args}

	case ast.Or:
		args := make([]ast.Formula, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = duplicateOddNegations(a, negative)
		}
		return ast.Or{Arguments: args}

	case ast.Implies:
		return ast.Implies{
			Antecedent: duplicateOddNegations(v.Antecedent, !negative),
			Consequent: duplicateOddNegations(v.Consequent, negative),
		}

	case ast.Biconditional:
		return ast.Biconditional{
			Left:  duplicateOddNegations(v.Left, negative),
			Right: duplicateOddNegations(v.Right, negative),
		}

	case ast.Exists:
		return ast.Exists{Variables: v.Variables, Argument: duplicateOddNegations(v.Argument, negative)}

	case ast.ForAll:
		return ast.ForAll{Variables: v.Variables, Argument: duplicateOddNegations(v.Argument, negative)}
	}
	return f
}

// duplicateAll primes every Predicate occurrence regardless of polarity.
func duplicateAll(f ast.Formula) ast.Formula {
	switch v := f.(type) {
	case ast.FormulaBoolean, ast.Comparison, ast.In:
		return f

	case ast.Predicate:
		return ast.Predicate{Declaration: v.Declaration.Prime, Arguments: v.Arguments}

	case ast.Not:
		return ast.Not{Argument: duplicateAll(v.Argument)}

	case ast.And:
		args := make([]ast.Formula, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = duplicateAll(a)
		}
		return ast.And{Arguments: args}

	case ast.Or:
		args := make([]ast.Formula, len(v.Arguments))
		for i, a := range v.Arguments {
			args[i] = duplicateAll(a)
		}
		return ast.Or{Arguments: args}

	case ast.Implies:
		return ast.Implies{Antecedent: duplicateAll(v.Antecedent), Consequent: duplicateAll(v.Consequent)}

	case ast.Biconditional:
		return ast.Biconditional{Left: duplicateAll(v.Left), Right: duplicateAll(v.Right)}

	case ast.Exists:
		return ast.Exists{Variables: v.Variables, Argument: duplicateAll(v.Argument)}

	case ast.ForAll:
		return ast.ForAll{Variables: v.Variables, Argument: duplicateAll(v.Argument)}
	}
	return f
}
