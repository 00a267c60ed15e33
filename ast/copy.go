package ast

// PrepareCopy performs a structural deep copy of a formula, remapping
// variable references (spec §4.1, §9 Design Notes): declarations bound by
// a quantifier *within* f get a fresh duplicate (with a new ID minted by
// freshID); references to declarations bound *outside* f — i.e. not owned
// by any quantifier inside f — retain their original target. This is the
// sole mechanism by which substitution-based passes (hidden-predicate
// elimination, here-and-there duplication) produce independent replacement
// subtrees without aliasing the original AST.
//
// The copy is a two-pass structural walk: the first pass collects the set
// of declarations bound inside f and builds a duplicate map; the second
// pass rebuilds every node, substituting declarations through the map.
func PrepareCopy(f Formula, freshID func() int) Formula {
	bound := make(map[*VariableDeclaration]*VariableDeclaration)
	collectBoundInFormula(f, bound)
	for old := range bound {
		bound[old] = &VariableDeclaration{
			Name:   old.Name,
			Type:   old.Type,
			Domain: old.Domain,
			ID:     freshID(),
		}
	}
	return rebuildFormula(f, bound)
}

// PrepareCopyTerm is PrepareCopy specialized to terms (needed when a pass
// copies a bare term rather than a whole formula, e.g. the replacement
// term of an equality-elimination substitution).
func PrepareCopyTerm(t Term, freshID func() int) Term {
	bound := make(map[*VariableDeclaration]*VariableDeclaration)
	collectBoundInTerm(t, bound)
	for old := range bound {
		bound[old] = &VariableDeclaration{
			Name:   old.Name,
			Type:   old.Type,
			Domain: old.Domain,
			ID:     freshID(),
		}
	}
	return rebuildTerm(t, bound)
}

func collectBoundInTerm(t Term, bound map[*VariableDeclaration]*VariableDeclaration) {
	switch t := t.(type) {
	case Function:
		for _, a := range t.Arguments {
			collectBoundInTerm(a, bound)
		}
	case UnaryOperation:
		collectBoundInTerm(t.Argument, bound)
	case BinaryOperation:
		collectBoundInTerm(t.Left, bound)
		collectBoundInTerm(t.Right, bound)
	case Interval:
		collectBoundInTerm(t.From, bound)
		collectBoundInTerm(t.To, bound)
	}
}

func collectBoundInFormula(f Formula, bound map[*VariableDeclaration]*VariableDeclaration) {
	switch f := f.(type) {
	case Predicate:
		for _, a := range f.Arguments {
			collectBoundInTerm(a, bound)
		}
	case Comparison:
		collectBoundInTerm(f.Left, bound)
		collectBoundInTerm(f.Right, bound)
	case In:
		collectBoundInTerm(f.Element, bound)
		collectBoundInTerm(f.Set, bound)
	case Not:
		collectBoundInFormula(f.Argument, bound)
	case And:
		for _, a := range f.Arguments {
			collectBoundInFormula(a, bound)
		}
	case Or:
		for _, a := range f.Arguments {
			collectBoundInFormula(a, bound)
		}
	case Implies:
		collectBoundInFormula(f.Antecedent, bound)
		collectBoundInFormula(f.Consequent, bound)
	case Biconditional:
		collectBoundInFormula(f.Left, bound)
		collectBoundInFormula(f.Right, bound)
	case Exists:
		for _, v := range f.Variables {
			bound[v] = nil
		}
		collectBoundInFormula(f.Argument, bound)
	case ForAll:
		for _, v := range f.Variables {
			bound[v] = nil
		}
		collectBoundInFormula(f.Argument, bound)
	}
}

func rebuildTerm(t Term, bound map[*VariableDeclaration]*VariableDeclaration) Term {
	switch t := t.(type) {
	case Variable:
		if nv, ok := bound[t.Declaration]; ok {
			return Variable{nv}
		}
		return t
	case Function:
		args := make([]Term, len(t.Arguments))
		for i, a := range t.Arguments {
			args[i] = rebuildTerm(a, bound)
		}
		return Function{t.Declaration, args}
	case UnaryOperation:
		return UnaryOperation{t.Operator, rebuildTerm(t.Argument, bound)}
	case BinaryOperation:
		return BinaryOperation{t.Operator, rebuildTerm(t.Left, bound), rebuildTerm(t.Right, bound)}
	case Interval:
		return Interval{rebuildTerm(t.From, bound), rebuildTerm(t.To, bound)}
	default:
		return t
	}
}

func rebuildFormula(f Formula, bound map[*VariableDeclaration]*VariableDeclaration) Formula {
	switch f := f.(type) {
	case Predicate:
		args := make([]Term, len(f.Arguments))
		for i, a := range f.Arguments {
			args[i] = rebuildTerm(a, bound)
		}
		return Predicate{f.Declaration, args}
	case Comparison:
		return Comparison{f.Operator, rebuildTerm(f.Left, bound), rebuildTerm(f.Right, bound)}
	case In:
		return In{rebuildTerm(f.Element, bound), rebuildTerm(f.Set, bound)}
	case Not:
		return Not{rebuildFormula(f.Argument, bound)}
	case And:
		args := make([]Formula, len(f.Arguments))
		for i, a := range f.Arguments {
			args[i] = rebuildFormula(a, bound)
		}
		return And{args}
	case Or:
		args := make([]Formula, len(f.Arguments))
		for i, a := range f.Arguments {
			args[i] = rebuildFormula(a, bound)
		}
		return Or{args}
	case Implies:
		return Implies{rebuildFormula(f.Antecedent, bound), rebuildFormula(f.Consequent, bound)}
	case Biconditional:
		return Biconditional{rebuildFormula(f.Left, bound), rebuildFormula(f.Right, bound)}
	case Exists:
		vars := make([]*VariableDeclaration, len(f.Variables))
		for i, v := range f.Variables {
			vars[i] = bound[v]
		}
		return Exists{vars, rebuildFormula(f.Argument, bound)}
	case ForAll:
		vars := make([]*VariableDeclaration, len(f.Variables))
		for i, v := range f.Variables {
			vars[i] = bound[v]
		}
		return ForAll{vars, rebuildFormula(f.Argument, bound)}
	default:
		return f
	}
}
