// Package typeinfer implements the integer-variable detection pass of
// spec §4.7: a variable is pinned to the Integer domain when every
// occurrence is syntactically required to be one (an arithmetic
// operand, one side of a comparison against an integer, or an argument
// in a parameter position declared Integer), and to General otherwise.
// Equality between two variables links their requiredness, since
// unifying a general variable with one forced to Integer forces both.
//
// Grounded on the teacher's unionfind.UnionFind: this pass plays the
// same "merge connected terms, then read back a property of the
// representative" role, but over a flat two-point domain lattice
// (General subsumes Integer) rather than full unification, so a plain
// adjacency-list union via graph reachability replaces the path-halving
// union-find proper.
package typeinfer

import "github.com/anthem-asp/anthem/ast"

// Scoped runs integer-variable detection over every formula in sfs and
// mutates each referenced *ast.VariableDeclaration's Domain in place.
// Call this after completion and before simplification (spec §4.9's
// Open Question (b) fixes this order: detection-before-simplification,
// post-completion).
func Scoped(sfs []ast.ScopedFormula) {
	seen := map[*ast.VariableDeclaration]bool{}
	required := map[*ast.VariableDeclaration]bool{}
	links := map[*ast.VariableDeclaration][]*ast.VariableDeclaration{}

	for _, sf := range sfs {
		for _, v := range sf.FreeVariables {
			seen[v] = true
		}
		walkFormula(sf.Formula, seen, required, links)
	}

	propagate(required, links)

	for v := range seen {
		if required[v] {
			v.Domain = ast.Integer
		} else if v.Domain == ast.Unknown {
			v.Domain = ast.General
		}
	}
}

func mark(t ast.Term, required map[*ast.VariableDeclaration]bool) {
	if v, ok := t.(ast.Variable); ok {
		required[v.Declaration] = true
	}
}

func link(a, b *ast.VariableDeclaration, links map[*ast.VariableDeclaration][]*ast.VariableDeclaration) {
	links[a] = append(links[a], b)
	links[b] = append(links[b], a)
}

func walkTerm(t ast.Term, seen, required map[*ast.VariableDeclaration]bool, links map[*ast.VariableDeclaration][]*ast.VariableDeclaration) {
	switch tt := t.(type) {
	case ast.Variable:
		seen[tt.Declaration] = true
	case ast.Function:
		for i, a := range tt.Arguments {
			if tt.Declaration != nil && i < len(tt.Declaration.Params) && tt.Declaration.Params[i] == ast.Integer {
				mark(a, required)
			}
			walkTerm(a, seen, required, links)
		}
	case ast.UnaryOperation:
		mark(tt.Argument, required)
		walkTerm(tt.Argument, seen, required, links)
	case ast.BinaryOperation:
		mark(tt.Left, required)
		mark(tt.Right, required)
		walkTerm(tt.Left, seen, required, links)
		walkTerm(tt.Right, seen, required, links)
	case ast.Interval:
		mark(tt.From, required)
		mark(tt.To, required)
		walkTerm(tt.From, seen, required, links)
		walkTerm(tt.To, seen, required, links)
	}
}

// requiredFromOther reports whether comparing a variable against other
// via op forces that variable to be an integer: spec §4.7's "comparisons
// against integers", extended to direct equality with an arithmetic
// expression (the shape statement translation always produces for
// X = -N or X = N1 + N2).
func requiredFromOther(op ast.ComparisonOperator, other ast.Term) bool {
	switch other.(type) {
	case ast.Integer, ast.SpecialInteger:
		return true
	case ast.UnaryOperation, ast.BinaryOperation:
		return op == ast.Equal
	}
	return false
}

func walkFormula(f ast.Formula, seen, required map[*ast.VariableDeclaration]bool, links map[*ast.VariableDeclaration][]*ast.VariableDeclaration) {
	switch v := f.(type) {
	case ast.FormulaBoolean:
		return

	case ast.Predicate:
		for i, a := range v.Arguments {
			if v.Declaration != nil && i < len(v.Declaration.Params) && v.Declaration.Params[i] == ast.Integer {
				mark(a, required)
			}
			walkTerm(a, seen, required, links)
		}

	case ast.Comparison:
		walkTerm(v.Left, seen, required, links)
		walkTerm(v.Right, seen, required, links)
		if lv, ok := v.Left.(ast.Variable); ok && requiredFromOther(v.Operator, v.Right) {
			required[lv.Declaration] = true
		}
		if rv, ok := v.Right.(ast.Variable); ok && requiredFromOther(v.Operator, v.Left) {
			required[rv.Declaration] = true
		}
		if v.Operator == ast.Equal {
			lv, lok := v.Left.(ast.Variable)
			rv, rok := v.Right.(ast.Variable)
			if lok && rok {
				link(lv.Declaration, rv.Declaration, links)
			}
		}

	case ast.In:
		walkTerm(v.Element, seen, required, links)
		walkTerm(v.Set, seen, required, links)

	case ast.Not:
		walkFormula(v.Argument, seen, required, links)

	case ast.And:
		for _, a := range v.Arguments {
			walkFormula(a, seen, required, links)
		}

	case ast.Or:
		for _, a := range v.Arguments {
			walkFormula(a, seen, required, links)
		}

	case ast.Implies:
		walkFormula(v.Antecedent, seen, required, links)
		walkFormula(v.Consequent, seen, required, links)

	case ast.Biconditional:
		walkFormula(v.Left, seen, required, links)
		walkFormula(v.Right, seen, required, links)

	case ast.Exists:
		for _, d := range v.Variables {
			seen[d] = true
		}
		walkFormula(v.Argument, seen, required, links)

	case ast.ForAll:
		for _, d := range v.Variables {
			seen[d] = true
		}
		walkFormula(v.Argument, seen, required, links)
	}
}

// propagate extends required to every variable reachable from an
// initially-required one through an equality link: a monotone fixpoint
// over the two-point lattice {General, Integer}, computed directly as
// graph reachability since the lattice has no deeper structure to
// iterate over.
func propagate(required map[*ast.VariableDeclaration]bool, links map[*ast.VariableDeclaration][]*ast.VariableDeclaration) {
	queue := make([]*ast.VariableDeclaration, 0, len(required))
	for v := range required {
		queue = append(queue, v)
	}
	visited := map[*ast.VariableDeclaration]bool{}
	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		if visited[v] {
			continue
		}
		visited[v] = true
		required[v] = true
		for _, w := range links[v] {
			if !visited[w] {
				queue = append(queue, w)
			}
		}
	}
}
