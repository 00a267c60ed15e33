package ast

import "fmt"

// Domain classifies the values a variable, predicate parameter, or
// function parameter/return may take.
type Domain int

const (
	// Unknown means no domain information has been established yet.
	Unknown Domain = iota
	// Integer restricts to integer values.
	Integer
	// Symbolic restricts to non-integer (symbolic) values.
	Symbolic
	// General means either integer or symbolic values may occur.
	General
)

func (d Domain) String() string {
	switch d {
	case Integer:
		return "integer"
	case Symbolic:
		return "symbolic"
	case General:
		return "general"
	default:
		return "unknown"
	}
}

// Visibility controls whether hidden-predicate elimination removes a
// predicate's completed definition from the output.
type Visibility int

const (
	// Default defers to the context's default predicate visibility.
	Default Visibility = iota
	// Visible keeps the predicate's completed definition in the output.
	Visible
	// Hidden marks the predicate for elimination.
	Hidden
)

// PredicateDeclaration is a uniquely-owned record for one predicate
// symbol. Declarations are owned by the Context that created them; AST
// nodes referencing a declaration hold a non-owning, stable
// *PredicateDeclaration.
type PredicateDeclaration struct {
	Name   string
	Arity  int
	Params []Domain

	// IsUsed flips to true the first time an atom over this declaration
	// is emitted by the statement translator.
	IsUsed bool

	// IsExternal marks a predicate declared with #external: it is
	// excluded from completion (spec §4.5).
	IsExternal bool

	Visibility Visibility

	// Prime, if non-nil, is this declaration's primed counterpart used
	// by the here-and-there translation (spec §4.9, §6).
	Prime *PredicateDeclaration
}

// Signature returns "name/arity".
func (d *PredicateDeclaration) Signature() string {
	return fmt.Sprintf("%s/%d", d.Name, d.Arity)
}

// FunctionDeclaration is a uniquely-owned record for one function symbol.
type FunctionDeclaration struct {
	Name   string
	Params []Domain

	// Return is the function's result domain, Unknown until inferred or
	// fixed by the construct that introduced the function (e.g. division
	// always returns Integer).
	Return Domain
}

// Signature returns "name/arity".
func (d *FunctionDeclaration) Signature() string {
	return fmt.Sprintf("%s/%d", d.Name, len(d.Params))
}

// VariableType classifies where a variable declaration was introduced,
// which in turn determines its fresh-name prefix (spec §6).
type VariableType int

const (
	// UserDefined is a variable that appeared in the source program.
	UserDefined VariableType = iota
	// HeadIntroduced is a fresh variable introduced while translating a
	// head atom (prefix "X").
	HeadIntroduced
	// BodyIntroduced is a fresh variable introduced while translating a
	// body construct, e.g. an integer intermediate (prefix "N").
	BodyIntroduced
)

// VariableDeclaration is a uniquely-owned record for one variable. It is
// owned by its binding site: the free-variable list of a ScopedFormula,
// or the variable list of a quantifier.
type VariableDeclaration struct {
	// Name is the user-chosen name, or empty for a declaration whose
	// display name is synthesized from ID and a type-derived prefix.
	Name string

	Type   VariableType
	Domain Domain

	// ID is a monotonically increasing id assigned by the Context that
	// created this declaration; together with a prefix derived from
	// Type, it guarantees a collision-free display name (spec §6).
	ID int
}

// DisplayName returns the name the formatter prints for this variable:
// the user-chosen Name if set, otherwise a synthesized "<prefix><ID>".
func (v *VariableDeclaration) DisplayName() string {
	if v.Name != "" {
		return v.Name
	}
	return fmt.Sprintf("%s%d", v.freshPrefix(), v.ID)
}

func (v *VariableDeclaration) freshPrefix() string {
	switch v.Type {
	case HeadIntroduced:
		return "X"
	case BodyIntroduced:
		return "N"
	default:
		return "V"
	}
}
