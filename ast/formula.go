package ast

import "strings"

// Formula is the building block of translated statements: a boolean, a
// predicate atom, a comparison, a set-membership test, or a connective /
// quantifier over sub-formulas.
type Formula interface {
	isFormula()

	String() string

	// Equals reports structural (syntactic) equality.
	Equals(Formula) bool

	// ApplySubst returns a new formula with every free variable
	// substituted according to s.
	ApplySubst(s Subst) Formula
}

// FormulaBoolean is a formula-level truth value, #true or #false.
type FormulaBoolean struct {
	Value bool
}

func (FormulaBoolean) isFormula() {}

// String returns "#true" or "#false".
func (f FormulaBoolean) String() string {
	if f.Value {
		return "#true"
	}
	return "#false"
}

// Equals reports structural equality.
func (f FormulaBoolean) Equals(g Formula) bool {
	o, ok := g.(FormulaBoolean)
	return ok && o.Value == f.Value
}

// ApplySubst returns f unchanged.
func (f FormulaBoolean) ApplySubst(Subst) Formula { return f }

// True is the formula-level truth constant ⊤.
var True Formula = FormulaBoolean{true}

// False is the formula-level truth constant ⊥.
var False Formula = FormulaBoolean{false}

// Predicate is an atom p(t1, ..., tn) applied to a predicate declaration.
type Predicate struct {
	Declaration *PredicateDeclaration
	Arguments   []Term
}

func (Predicate) isFormula() {}

// String renders "name(arg1, ..., argn)", or just "name" for arity 0.
func (f Predicate) String() string {
	if len(f.Arguments) == 0 {
		return f.Declaration.Name
	}
	return f.Declaration.Name + "(" + joinTerms(f.Arguments) + ")"
}

// Equals reports structural equality.
func (f Predicate) Equals(g Formula) bool {
	o, ok := g.(Predicate)
	if !ok || o.Declaration != f.Declaration || len(o.Arguments) != len(f.Arguments) {
		return false
	}
	for i, a := range f.Arguments {
		if !a.Equals(o.Arguments[i]) {
			return false
		}
	}
	return true
}

// ApplySubst substitutes every argument.
func (f Predicate) ApplySubst(s Subst) Formula {
	args := make([]Term, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.ApplySubst(s)
	}
	return Predicate{f.Declaration, args}
}

// ComparisonOperator is the relational operator of a Comparison formula.
type ComparisonOperator int

const (
	// GreaterThan is >.
	GreaterThan ComparisonOperator = iota
	// LessThan is <.
	LessThan
	// GreaterEqual is >=.
	GreaterEqual
	// LessEqual is <=.
	LessEqual
	// Equal is =.
	Equal
	// NotEqual is !=.
	NotEqual
)

func (op ComparisonOperator) String() string {
	switch op {
	case GreaterThan:
		return ">"
	case LessThan:
		return "<"
	case GreaterEqual:
		return ">="
	case LessEqual:
		return "<="
	case Equal:
		return "="
	case NotEqual:
		return "!="
	}
	return "?"
}

// Comparison is a relational test between two terms.
type Comparison struct {
	Operator    ComparisonOperator
	Left, Right Term
}

func (Comparison) isFormula() {}

// String renders "left op right".
func (f Comparison) String() string {
	return f.Left.String() + " " + f.Operator.String() + " " + f.Right.String()
}

// Equals reports structural equality.
func (f Comparison) Equals(g Formula) bool {
	o, ok := g.(Comparison)
	return ok && o.Operator == f.Operator && o.Left.Equals(f.Left) && o.Right.Equals(f.Right)
}

// ApplySubst substitutes both operands.
func (f Comparison) ApplySubst(s Subst) Formula {
	return Comparison{f.Operator, f.Left.ApplySubst(s), f.Right.ApplySubst(s)}
}

// In tests whether Element is a member of the set denoted by Set (a pool
// or an interval). Element must always be primitive; NewIn checks this at
// construction. The type itself does not, and ApplySubst does not check
// it again after substitution.
type In struct {
	Element, Set Term
}

func (In) isFormula() {}

// String renders "element in set".
func (f In) String() string { return f.Element.String() + " in " + f.Set.String() }

// Equals reports structural equality.
func (f In) Equals(g Formula) bool {
	o, ok := g.(In)
	return ok && o.Element.Equals(f.Element) && o.Set.Equals(f.Set)
}

// ApplySubst substitutes element and set.
func (f In) ApplySubst(s Subst) Formula {
	return In{f.Element.ApplySubst(s), f.Set.ApplySubst(s)}
}

// NewIn constructs an In formula, panicking if element is not primitive.
// It is the only constructor that checks the invariant; In values built
// as struct literals (as domain mapping and prepare-copy do) are not
// checked.
func NewIn(element, set Term) In {
	if !element.IsPrimitive() {
		panic("ast.NewIn: element must be primitive: " + element.String())
	}
	return In{element, set}
}

// Not is classical negation.
type Not struct {
	Argument Formula
}

func (Not) isFormula() {}

// String renders "not argument".
func (f Not) String() string { return "not " + parenthesize(f.Argument) }

// Equals reports structural equality.
func (f Not) Equals(g Formula) bool {
	o, ok := g.(Not)
	return ok && o.Argument.Equals(f.Argument)
}

// ApplySubst substitutes the argument.
func (f Not) ApplySubst(s Subst) Formula { return Not{f.Argument.ApplySubst(s)} }

// And is a (possibly empty) conjunction. An empty And is logically
// equivalent to True; simplification (not this constructor) is
// responsible for collapsing it.
type And struct {
	Arguments []Formula
}

func (And) isFormula() {}

// String renders "a1 and a2 and ... and an", or "#true" when empty.
func (f And) String() string {
	if len(f.Arguments) == 0 {
		return "#true"
	}
	return joinFormulas(f.Arguments, " and ")
}

// Equals reports structural equality, argument order sensitive.
func (f And) Equals(g Formula) bool {
	o, ok := g.(And)
	if !ok || len(o.Arguments) != len(f.Arguments) {
		return false
	}
	for i, a := range f.Arguments {
		if !a.Equals(o.Arguments[i]) {
			return false
		}
	}
	return true
}

// ApplySubst substitutes every conjunct.
func (f And) ApplySubst(s Subst) Formula {
	args := make([]Formula, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.ApplySubst(s)
	}
	return And{args}
}

// Or is a (possibly empty) disjunction. An empty Or is logically
// equivalent to False.
type Or struct {
	Arguments []Formula
}

func (Or) isFormula() {}

// String renders "a1 or a2 or ... or an", or "#false" when empty.
func (f Or) String() string {
	if len(f.Arguments) == 0 {
		return "#false"
	}
	return joinFormulas(f.Arguments, " or ")
}

// Equals reports structural equality, argument order sensitive.
func (f Or) Equals(g Formula) bool {
	o, ok := g.(Or)
	if !ok || len(o.Arguments) != len(f.Arguments) {
		return false
	}
	for i, a := range f.Arguments {
		if !a.Equals(o.Arguments[i]) {
			return false
		}
	}
	return true
}

// ApplySubst substitutes every disjunct.
func (f Or) ApplySubst(s Subst) Formula {
	args := make([]Formula, len(f.Arguments))
	for i, a := range f.Arguments {
		args[i] = a.ApplySubst(s)
	}
	return Or{args}
}

// Implies is material implication, antecedent -> consequent.
type Implies struct {
	Antecedent, Consequent Formula
}

func (Implies) isFormula() {}

// String renders "antecedent -> consequent".
func (f Implies) String() string {
	return parenthesize(f.Antecedent) + " -> " + parenthesize(f.Consequent)
}

// Equals reports structural equality.
func (f Implies) Equals(g Formula) bool {
	o, ok := g.(Implies)
	return ok && o.Antecedent.Equals(f.Antecedent) && o.Consequent.Equals(f.Consequent)
}

// ApplySubst substitutes both sides.
func (f Implies) ApplySubst(s Subst) Formula {
	return Implies{f.Antecedent.ApplySubst(s), f.Consequent.ApplySubst(s)}
}

// Biconditional is left <-> right.
type Biconditional struct {
	Left, Right Formula
}

func (Biconditional) isFormula() {}

// String renders "left <-> right".
func (f Biconditional) String() string {
	return parenthesize(f.Left) + " <-> " + parenthesize(f.Right)
}

// Equals reports structural equality.
func (f Biconditional) Equals(g Formula) bool {
	o, ok := g.(Biconditional)
	return ok && o.Left.Equals(f.Left) && o.Right.Equals(f.Right)
}

// ApplySubst substitutes both sides.
func (f Biconditional) ApplySubst(s Subst) Formula {
	return Biconditional{f.Left.ApplySubst(s), f.Right.ApplySubst(s)}
}

// Exists is existential quantification over a list of owned variable
// declarations. An Exists over an empty variable list is equal to its
// Argument (spec §4.1); this constructor does not collapse that case
// itself — NewExists does.
type Exists struct {
	Variables []*VariableDeclaration
	Argument  Formula
}

func (Exists) isFormula() {}

// String renders "exists V1, ..., Vn (argument)".
func (f Exists) String() string {
	if len(f.Variables) == 0 {
		return f.Argument.String()
	}
	return "exists " + joinVarDecls(f.Variables) + " (" + f.Argument.String() + ")"
}

// Equals reports structural equality: variable lists must reference the
// same declarations in the same order.
func (f Exists) Equals(g Formula) bool {
	o, ok := g.(Exists)
	if !ok || len(o.Variables) != len(f.Variables) || !o.Argument.Equals(f.Argument) {
		return false
	}
	for i, v := range f.Variables {
		if o.Variables[i] != v {
			return false
		}
	}
	return true
}

// ApplySubst substitutes the argument. The quantifier's own variables are
// never substituted: a well-formed Subst never has a bound variable in
// its domain.
func (f Exists) ApplySubst(s Subst) Formula {
	return Exists{f.Variables, f.Argument.ApplySubst(s)}
}

// NewExists constructs an Exists, collapsing to the bare argument when
// vars is empty (spec §4.1).
func NewExists(vars []*VariableDeclaration, argument Formula) Formula {
	if len(vars) == 0 {
		return argument
	}
	return Exists{vars, argument}
}

// ForAll is universal quantification over a list of owned variable
// declarations.
type ForAll struct {
	Variables []*VariableDeclaration
	Argument  Formula
}

func (ForAll) isFormula() {}

// String renders "forall V1, ..., Vn (argument)".
func (f ForAll) String() string {
	if len(f.Variables) == 0 {
		return f.Argument.String()
	}
	return "forall " + joinVarDecls(f.Variables) + " (" + f.Argument.String() + ")"
}

// Equals reports structural equality.
func (f ForAll) Equals(g Formula) bool {
	o, ok := g.(ForAll)
	if !ok || len(o.Variables) != len(f.Variables) || !o.Argument.Equals(f.Argument) {
		return false
	}
	for i, v := range f.Variables {
		if o.Variables[i] != v {
			return false
		}
	}
	return true
}

// ApplySubst substitutes the argument.
func (f ForAll) ApplySubst(s Subst) Formula {
	return ForAll{f.Variables, f.Argument.ApplySubst(s)}
}

// NewForAll constructs a ForAll, collapsing to the bare argument when
// vars is empty.
func NewForAll(vars []*VariableDeclaration, argument Formula) Formula {
	if len(vars) == 0 {
		return argument
	}
	return ForAll{vars, argument}
}

func joinVarDecls(vs []*VariableDeclaration) string {
	var sb strings.Builder
	for i, v := range vs {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(v.DisplayName())
	}
	return sb.String()
}

func joinFormulas(fs []Formula, sep string) string {
	var sb strings.Builder
	for i, f := range fs {
		if i > 0 {
			sb.WriteString(sep)
		}
		sb.WriteString(parenthesize(f))
	}
	return sb.String()
}

// parenthesize wraps f in parentheses unless it is an atomic formula
// (nothing that itself contains infix connectives at the top level).
func parenthesize(f Formula) string {
	switch f.(type) {
	case FormulaBoolean, Predicate, Comparison, In:
		return f.String()
	default:
		return "(" + f.String() + ")"
	}
}
