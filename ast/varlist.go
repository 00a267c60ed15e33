package ast

// VarList is an ordered list of variable declarations, used as the free
// variable list of a ScopedFormula and as the owned variable list of a
// quantifier. Grounded on the teacher's analysis.VarList: an ordered slice
// plus a set view for membership tests.
type VarList []*VariableDeclaration

// AsMap returns a set view of vl, suitable for O(1) membership checks.
func (vl VarList) AsMap() map[*VariableDeclaration]bool {
	m := make(map[*VariableDeclaration]bool, len(vl))
	for _, v := range vl {
		m[v] = true
	}
	return m
}

// Contains reports whether v is in vl.
func (vl VarList) Contains(v *VariableDeclaration) bool {
	for _, w := range vl {
		if w == v {
			return true
		}
	}
	return false
}

// Without returns a copy of vl with v removed (at most once).
func (vl VarList) Without(v *VariableDeclaration) VarList {
	out := make(VarList, 0, len(vl))
	removed := false
	for _, w := range vl {
		if !removed && w == v {
			removed = true
			continue
		}
		out = append(out, w)
	}
	return out
}

// ScopedFormula is a formula together with the list of free variable
// declarations it depends on (spec §3). It is the unit of translation
// output before universal closure.
type ScopedFormula struct {
	Formula       Formula
	FreeVariables VarList
}

// Close returns the universal closure of sf: forall over its free
// variables.
func (sf ScopedFormula) Close() Formula {
	return NewForAll(sf.FreeVariables, sf.Formula)
}
