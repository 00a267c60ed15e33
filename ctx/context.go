// Package ctx holds the Context type: the per-translation-run owner of all
// predicate, function, and variable declarations, plus the flags that
// select which passes the driver runs and how output is formatted. Named
// ctx, not context, to stay clear of the standard library package.
package ctx

import (
	"fmt"

	"github.com/anthem-asp/anthem/ast"
)

// TranslationMode selects the target logic of the translation.
type TranslationMode int

const (
	// Completion translates to Clark's completion of the program.
	Completion TranslationMode = iota
	// HereAndThere translates via the embedding of the logic of
	// here-and-there into classical logic.
	HereAndThere
)

// OutputFormat selects the formatter the driver hands its result to.
type OutputFormat int

const (
	// HumanReadable prints formulas in a compact infix notation.
	HumanReadable OutputFormat = iota
	// TPTP prints formulas as typed first-order (tff) TPTP input.
	TPTP
)

// MapToIntegersPolicy controls whether the driver runs the domain-mapping
// pass at all. The pass itself does not consult the policy.
type MapToIntegersPolicy int

const (
	// Auto runs domain mapping only when the output format is TPTP.
	Auto MapToIntegersPolicy = iota
	// Always runs domain mapping regardless of the output format.
	Always
)

// Context owns every declaration created during a translation run and
// carries the flags that the driver consults to decide which passes to
// run and how to format the result. Declaration lookup is a deliberate
// linear scan over a small owned slice, matching the upstream contract
// (predicate/function counts per program are small; a map would trade
// the straightforward "did result in already exist" question that
// findOrCreate answers for no measurable benefit).
type Context struct {
	PerformSimplification    bool
	PerformCompletion         bool
	PerformIntegerDetection   bool
	TranslationMode           TranslationMode
	OutputFormat              OutputFormat
	MapToIntegers             MapToIntegersPolicy
	DefaultPredicateVisibility ast.Visibility

	// ExternalStatementsUsed and ShowStatementsUsed record whether the
	// input program used #external/#show at least once, mirroring the
	// upstream Context's bookkeeping of the same names.
	ExternalStatementsUsed bool
	ShowStatementsUsed     bool

	predicateDeclarations []*ast.PredicateDeclaration
	functionDeclarations  []*ast.FunctionDeclaration

	nextVariableID int
}

// New returns a Context with the defaults the CLI assumes absent any
// flag overrides: completion semantics, simplification and integer
// detection on, human-readable output.
func New() *Context {
	return &Context{
		PerformSimplification:      true,
		PerformCompletion:          true,
		PerformIntegerDetection:    true,
		TranslationMode:            Completion,
		OutputFormat:               HumanReadable,
		MapToIntegers:              Auto,
		DefaultPredicateVisibility: ast.Visible,
	}
}

// FindOrCreatePredicate returns the unique declaration for name/arity,
// creating and registering one on first reference.
func (c *Context) FindOrCreatePredicate(name string, arity int) *ast.PredicateDeclaration {
	for _, d := range c.predicateDeclarations {
		if d.Name == name && d.Arity == arity {
			return d
		}
	}
	d := &ast.PredicateDeclaration{
		Name:       name,
		Arity:      arity,
		Params:     make([]ast.Domain, arity),
		Visibility: c.DefaultPredicateVisibility,
	}
	c.predicateDeclarations = append(c.predicateDeclarations, d)
	return d
}

// FindOrCreateFunction returns the unique declaration for name/arity,
// creating and registering one on first reference.
func (c *Context) FindOrCreateFunction(name string, arity int) *ast.FunctionDeclaration {
	for _, d := range c.functionDeclarations {
		if d.Name == name && len(d.Params) == arity {
			return d
		}
	}
	d := &ast.FunctionDeclaration{
		Name:   name,
		Params: make([]ast.Domain, arity),
	}
	c.functionDeclarations = append(c.functionDeclarations, d)
	return d
}

// FindOrCreatePrimePredicate returns d's primed counterpart, used by the
// here-and-there translation (spec §4.9) to duplicate every predicate:
// p and p'. The counterpart is created and cached on d.Prime the first
// time it is requested, and is itself registered with Context so it
// participates in subsequent lookups and formatting.
func (c *Context) FindOrCreatePrimePredicate(d *ast.PredicateDeclaration) *ast.PredicateDeclaration {
	if d.Prime != nil {
		return d.Prime
	}
	prime := &ast.PredicateDeclaration{
		Name:       primeName(d.Name, c.predicateDeclarations),
		Arity:      d.Arity,
		Params:     append([]ast.Domain(nil), d.Params...),
		IsUsed:     d.IsUsed,
		Visibility: d.Visibility,
	}
	d.Prime = prime
	c.predicateDeclarations = append(c.predicateDeclarations, prime)
	return prime
}

// primeName returns name+"'", falling back to name+"_prime" (and then
// appending underscores) in the vanishingly unlikely case that the
// program already declared a predicate under the primed name — user
// source cannot contain an apostrophe, so the fallback only matters for
// names synthesized by earlier passes.
func primeName(name string, existing []*ast.PredicateDeclaration) string {
	candidate := name + "'"
	if !predicateNameTaken(candidate, existing) {
		return candidate
	}
	candidate = name + "_prime"
	for predicateNameTaken(candidate, existing) {
		candidate += "_"
	}
	return candidate
}

func predicateNameTaken(name string, existing []*ast.PredicateDeclaration) bool {
	for _, d := range existing {
		if d.Name == name {
			return true
		}
	}
	return false
}

// Predicates returns every predicate declaration registered so far, in
// creation order.
func (c *Context) Predicates() []*ast.PredicateDeclaration {
	return c.predicateDeclarations
}

// Functions returns every function declaration registered so far, in
// creation order.
func (c *Context) Functions() []*ast.FunctionDeclaration {
	return c.functionDeclarations
}

// NewVariable creates and owns a fresh variable declaration. Binding
// sites (quantifiers, ScopedFormula.FreeVariables) call this rather than
// constructing *ast.VariableDeclaration directly, so that every
// variable in a run receives a distinct ID.
func (c *Context) NewVariable(name string, typ ast.VariableType, domain ast.Domain) *ast.VariableDeclaration {
	c.nextVariableID++
	return &ast.VariableDeclaration{
		Name:   name,
		Type:   typ,
		Domain: domain,
		ID:     c.nextVariableID,
	}
}

// FreshID mints a new, context-unique integer. It is handed to
// ast.PrepareCopy/PrepareCopyTerm so that duplicated declarations get
// IDs disjoint from every declaration this Context has created.
func (c *Context) FreshID() int {
	c.nextVariableID++
	return c.nextVariableID
}

// String renders a short diagnostic summary (predicate/function counts),
// useful in debug logging.
func (c *Context) String() string {
	return fmt.Sprintf("Context{predicates=%d, functions=%d, mode=%v, format=%v}",
		len(c.predicateDeclarations), len(c.functionDeclarations), c.TranslationMode, c.OutputFormat)
}

func (m TranslationMode) String() string {
	if m == HereAndThere {
		return "here-and-there"
	}
	return "completion"
}

func (f OutputFormat) String() string {
	if f == TPTP {
		return "tptp"
	}
	return "human-readable"
}
