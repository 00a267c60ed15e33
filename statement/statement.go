// Package statement translates surface statements (parse.Statement) into
// scoped formulas of the intermediate AST (spec §4.3), the "natural"
// translation of normal logic programs: a rule becomes a universally
// quantified implication, head atoms are normalized to a predicate over
// fresh variables equated to their arguments, and body atoms are
// existentially quantified the same way. Grounded on the head-argument
// normalization shape of the teacher's analysis.RectifyAtom and on the
// per-construct rules of the upstream Translation.cpp.
package statement

import (
	"fmt"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/parse"

	"bitbucket.org/creachadair/stringset"
)

// Translator holds the per-statement scratch state (the user-variable
// scope of the statement currently being translated) alongside the
// shared Context and diagnostic Log.
type Translator struct {
	ctx *ctx.Context
	log *diagnostic.Log

	varScope    map[string]*ast.VariableDeclaration
	usedVars    []*ast.VariableDeclaration
	anonCounter int

	// shown and external record every name/arity pair seen in a #show or
	// #external statement; Finalize consults shown to apply the spec's
	// "anything not shown becomes Hidden" rule.
	shown   stringset.Set
	external stringset.Set
}

// New returns a Translator over c, reporting diagnostics to log.
func New(c *ctx.Context, log *diagnostic.Log) *Translator {
	return &Translator{
		ctx:      c,
		log:      log,
		shown:    stringset.New(),
		external: stringset.New(),
	}
}

// Translate runs every statement through the translator in order,
// returning the resulting scoped formulas (in source order) plus any
// error that should abort the run (spec §7: a TranslationError is
// fatal). Warnings are reported to log but do not stop translation.
func (tr *Translator) Translate(stmts []parse.Statement) ([]ast.ScopedFormula, error) {
	var out []ast.ScopedFormula
	for _, stmt := range stmts {
		sf, err := tr.translateStatement(stmt)
		if err != nil {
			return nil, err
		}
		if sf != nil {
			out = append(out, *sf)
		}
	}
	tr.Finalize()
	return out, nil
}

// Finalize applies the #show-driven visibility rule (spec §4.3): once
// any #show statement has been seen, every predicate not named by one
// becomes Hidden.
func (tr *Translator) Finalize() {
	if !tr.ctx.ShowStatementsUsed {
		return
	}
	for _, d := range tr.ctx.Predicates() {
		if d.Prime != nil && d.Name[len(d.Name)-1] == '\'' {
			continue // primed predicates are synthesized later, not user-visible
		}
		if !tr.shown.Contains(d.Signature()) {
			d.Visibility = ast.Hidden
		}
	}
}

func (tr *Translator) resetScope() {
	tr.varScope = make(map[string]*ast.VariableDeclaration)
	tr.usedVars = nil
}

func (tr *Translator) translateStatement(stmt parse.Statement) (*ast.ScopedFormula, error) {
	switch s := stmt.(type) {
	case parse.Rule:
		tr.resetScope()
		body := tr.translateBody(s.Body)
		head := tr.translateHead(s.Head, true)
		formula := ast.Implies{Antecedent: body, Consequent: head}
		return &ast.ScopedFormula{Formula: formula, FreeVariables: tr.usedVars}, nil

	case parse.Constraint:
		tr.resetScope()
		body := tr.translateBody(s.Body)
		formula := ast.Implies{Antecedent: body, Consequent: ast.False}
		return &ast.ScopedFormula{Formula: formula, FreeVariables: tr.usedVars}, nil

	case parse.ShowStatement:
		d := tr.ctx.FindOrCreatePredicate(s.Name, s.Arity)
		d.Visibility = ast.Visible
		tr.ctx.ShowStatementsUsed = true
		tr.shown.Add(d.Signature())
		return nil, nil

	case parse.ExternalStatement:
		d := tr.ctx.FindOrCreatePredicate(s.Name, s.Arity)
		d.IsExternal = true
		tr.ctx.ExternalStatementsUsed = true
		tr.external.Add(d.Signature())
		return nil, nil

	case parse.DomainStatement:
		d := tr.ctx.FindOrCreatePredicate(s.Name, s.Arity)
		for i := range d.Params {
			d.Params[i] = ast.Integer
		}
		return nil, nil
	}
	return nil, fmt.Errorf("statement: unrecognized statement type %T", stmt)
}

// translateHead translates a (possibly disjunctive) head. In head
// context the individual per-atom translations are conjoined (spec
// §4.3: "a conjunction of the individual-head translations"); the same
// per-atom shape, disjoined, covers the generalized body-context case.
func (tr *Translator) translateHead(atoms []parse.Atom, headContext bool) ast.Formula {
	if len(atoms) == 0 {
		return ast.False
	}
	translated := make([]ast.Formula, len(atoms))
	for i, a := range atoms {
		translated[i] = tr.translateAtom(a, headContext)
	}
	if len(translated) == 1 {
		return translated[0]
	}
	if headContext {
		return ast.And{Arguments: translated}
	}
	return ast.Or{Arguments: translated}
}

// translateAtom normalizes p(t1,...,tk) to fresh variables X1..Xk, each
// related to its argument by translateArgConstraint, and binds the
// result with a ForAll (head context) or Exists (body context) over
// those variables (spec §4.3).
func (tr *Translator) translateAtom(a parse.Atom, headContext bool) ast.Formula {
	name := a.Name
	if a.ClassicallyNegated {
		name = "-" + name
	}
	decl := tr.ctx.FindOrCreatePredicate(name, len(a.Args))
	decl.IsUsed = true

	xs := make([]*ast.VariableDeclaration, len(a.Args))
	constraints := make([]ast.Formula, len(a.Args))
	for i, arg := range a.Args {
		xs[i] = tr.freshArgVar()
		constraints[i] = tr.translateArgConstraint(xs[i], arg)
	}
	pred := ast.Predicate{Declaration: decl, Arguments: varsToTerms(xs)}

	if headContext {
		return ast.NewForAll(xs, ast.Implies{Antecedent: ast.And{Arguments: constraints}, Consequent: pred})
	}
	return ast.NewExists(xs, ast.And{Arguments: append(constraints, pred)})
}

// translateBody conjoins the translation of every body literal. Default
// negation wraps the literal's translation in Not; classical negation is
// folded into the predicate's name at translateAtom (spec §6: no
// separate AST node distinguishes "-p" from "p", matching how the head
// translation treats it — a distinct declaration, not a distinct
// formula shape).
func (tr *Translator) translateBody(lits []parse.BodyLiteral) ast.Formula {
	if len(lits) == 0 {
		return ast.True
	}
	conjuncts := make([]ast.Formula, len(lits))
	for i, lit := range lits {
		switch l := lit.(type) {
		case parse.AtomLiteral:
			f := tr.translateAtom(l.Atom, false)
			if l.DefaultNegated {
				f = ast.Not{Argument: f}
			}
			conjuncts[i] = f
		case parse.ComparisonLiteral:
			conjuncts[i] = tr.translateComparison(l)
		default:
			conjuncts[i] = ast.True
		}
	}
	if len(conjuncts) == 1 {
		return conjuncts[0]
	}
	return ast.And{Arguments: conjuncts}
}

func varsToTerms(vs []*ast.VariableDeclaration) []ast.Term {
	ts := make([]ast.Term, len(vs))
	for i, v := range vs {
		ts[i] = ast.Variable{Declaration: v}
	}
	return ts
}

// freshArgVar mints a head-introduced-style fresh variable: the prefix
// used for every per-argument normalization variable, in both head and
// body position (spec §6: "head-introduced variables use prefix X").
func (tr *Translator) freshArgVar() *ast.VariableDeclaration {
	return tr.ctx.NewVariable("", ast.HeadIntroduced, ast.Unknown)
}

// freshIntVar mints a body-introduced, Integer-domain fresh variable:
// the prefix used for arithmetic intermediates (spec §6: "integer
// intermediates use prefix N").
func (tr *Translator) freshIntVar() *ast.VariableDeclaration {
	return tr.ctx.NewVariable("", ast.BodyIntroduced, ast.Integer)
}

// resolveVariable looks up (or creates) the declaration for a
// user-written variable name within the current statement's scope.
// The anonymous placeholder "_" never reuses a declaration: every
// occurrence is a fresh, distinct variable (spec §4.3).
func (tr *Translator) resolveVariable(v parse.Variable) *ast.VariableDeclaration {
	if v.IsAnonymous() {
		tr.anonCounter++
		d := tr.ctx.NewVariable("", ast.UserDefined, ast.Unknown)
		tr.usedVars = append(tr.usedVars, d)
		return d
	}
	if d, ok := tr.varScope[v.Name]; ok {
		return d
	}
	d := tr.ctx.NewVariable(v.Name, ast.UserDefined, ast.Unknown)
	tr.varScope[v.Name] = d
	tr.usedVars = append(tr.usedVars, d)
	return d
}
