// Package driver chains the translation passes in the fixed order spec
// §5 and §9 require: translate → complete → detect-integers → simplify →
// map-domains → eliminate-hidden-predicates → emit. It owns no I/O of its
// own (streams and files are the CLI's concern, spec §6's "external
// collaborators"); it is handed already-read source text and returns the
// formula set a formatter should print.
//
// Grounded on the teacher's interpreter.Interpreter: a struct carrying a
// shared Context/store across method calls, with one exported entry
// point per unit of work. Anthem has no REPL, so only that orchestration
// shape is kept — interpreter.go's line-reading loop and readline wiring
// have no analogue here.
package driver

import (
	"fmt"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/complete"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/domain"
	"github.com/anthem-asp/anthem/hereandthere"
	"github.com/anthem-asp/anthem/hidden"
	"github.com/anthem-asp/anthem/parse"
	"github.com/anthem-asp/anthem/simplify"
	"github.com/anthem-asp/anthem/statement"
	"github.com/anthem-asp/anthem/typeinfer"
)

// Role distinguishes the TPTP role a formula should be printed under;
// the human-readable formatter ignores it.
type Role int

const (
	// Axiom is an ordinary derived formula.
	Axiom Role = iota
	// Conjecture is the single formula a two-program here-and-there run
	// emits (spec §4.9 step 4, spec §6 "Formula identifiers").
	Conjecture
)

// Formula pairs one output formula with the identity a formatter prints
// it under (spec §6: "axiom_<k>", "conjecture").
type Formula struct {
	Name    string
	Role    Role
	Formula ast.Formula
}

// Driver runs the translation pipeline against a shared Context,
// reporting diagnostics to a shared Log.
type Driver struct {
	ctx *ctx.Context
	log *diagnostic.Log
}

// New returns a Driver over c, reporting diagnostics to log.
func New(c *ctx.Context, log *diagnostic.Log) *Driver {
	return &Driver{ctx: c, log: log}
}

// Source is one named chunk of ASP program text (the file it came from,
// for diagnostic positions).
type Source struct {
	Text string
	File string
}

// Run translates a single program (program A of spec §4.9, or the sole
// program in Completion mode) through every enabled pass and returns the
// resulting axioms. Multiple sources are concatenated in order, the way
// the CLI's repeatable -i/--input collects one program from several
// files.
func (d *Driver) Run(sources []Source) ([]Formula, error) {
	return d.RunTwoPrograms(sources, nil)
}

// RunTwoPrograms translates program A, and — if b is non-empty — program
// B, then builds the driver's output according to the Context's
// TranslationMode:
//
//   - Completion: b must be empty (completion has no two-program form);
//     returns one axiom per completed/simplified/hidden-eliminated
//     formula of A.
//   - HereAndThere, single program: returns the prime axioms followed by
//     the two classical copies of each closed formula of A.
//   - HereAndThere, two programs: returns the prime axioms followed by a
//     single Conjecture formula biconditional between program A's and
//     program B's (possibly duplicated) closed formulas.
func (d *Driver) RunTwoPrograms(a, b []Source) ([]Formula, error) {
	sfsA, err := d.translateOne(a)
	if err != nil {
		return nil, err
	}

	if d.ctx.TranslationMode == ctx.Completion {
		if len(b) > 0 {
			return nil, fmt.Errorf("completion mode does not support two programs")
		}
		sfsA, err = d.runRewritingPasses(sfsA)
		if err != nil {
			return nil, err
		}
		return closeAsAxioms(sfsA), nil
	}

	sfsA, err = d.runRewritingPasses(sfsA)
	if err != nil {
		return nil, err
	}

	if len(b) == 0 {
		return d.hereAndThereSingle(sfsA), nil
	}

	sfsB, err := d.translateOne(b)
	if err != nil {
		return nil, err
	}
	sfsB, err = d.runRewritingPasses(sfsB)
	if err != nil {
		return nil, err
	}
	return d.hereAndThereTwoProgram(sfsA, sfsB), nil
}

// translateOne parses and statement-translates every source in order
// into one scoped-formula list, the way repeatable -i/--input
// concatenates a program from several files.
func (d *Driver) translateOne(sources []Source) ([]ast.ScopedFormula, error) {
	var out []ast.ScopedFormula
	tr := statement.New(d.ctx, d.log)
	for _, src := range sources {
		stmts, err := parse.Parse(src.Text, src.File)
		if err != nil {
			return nil, err
		}
		sfs, err := tr.Translate(stmts)
		if err != nil {
			return nil, err
		}
		out = append(out, sfs...)
	}
	return out, nil
}

// runRewritingPasses applies completion (Completion mode only),
// integer-variable detection, and simplification to every source
// program, in the fixed order spec §5 names: complete → detect →
// simplify. Domain mapping and hidden-predicate elimination are applied
// here only for Completion mode's map → eliminate tail of that order;
// here-and-there maps domains once, later, over its own duplicated
// formulas and prime axioms (mapHereAndThereDomains), matching
// Translation.cpp's single end-of-pipeline mapDomains pass rather than
// mapping each program's scoped formulas before duplication.
func (d *Driver) runRewritingPasses(sfs []ast.ScopedFormula) ([]ast.ScopedFormula, error) {
	if d.ctx.TranslationMode == ctx.Completion && d.ctx.PerformCompletion {
		sfs = complete.New(d.ctx, d.log).Complete(sfs)
	}
	if d.ctx.PerformIntegerDetection {
		typeinfer.Scoped(sfs)
	}
	if d.ctx.PerformSimplification && d.ctx.TranslationMode == ctx.Completion {
		sfs = simplify.Scoped(sfs)
	}
	if d.ctx.TranslationMode == ctx.Completion {
		if d.shouldMapDomains() {
			sfs = domain.New(d.ctx).Scoped(sfs)
		}
		sfs = hidden.Eliminate(sfs, d.log, d.ctx.FreshID)
	}
	if d.log.HasErrors() {
		return nil, d.log.Err()
	}
	return sfs, nil
}

func closeAsAxioms(sfs []ast.ScopedFormula) []Formula {
	out := make([]Formula, len(sfs))
	for i, sf := range sfs {
		out[i] = Formula{Name: fmt.Sprintf("axiom_%d", i+1), Role: Axiom, Formula: sf.Close()}
	}
	return out
}

// shouldMapDomains reports whether domain mapping (spec §4.8) should run
// at all, mirroring Translation.cpp's performDomainMapping: the Always
// policy maps regardless of output format, Auto maps only when the
// output format actually needs typed TPTP terms.
func (d *Driver) shouldMapDomains() bool {
	if d.ctx.MapToIntegers == ctx.Always {
		return true
	}
	return d.ctx.OutputFormat == ctx.TPTP
}

// mapHereAndThereDomains applies domain mapping (spec §4.8) to formulas
// produced by the here-and-there passes when shouldMapDomains says to:
// the original implementation maps both the prime axioms and the final
// (possibly duplicated) formulas, not only a program's own scoped body.
func (d *Driver) mapHereAndThereDomains(formulas []ast.Formula) []ast.Formula {
	if !d.shouldMapDomains() {
		return formulas
	}
	mapper := domain.New(d.ctx)
	out := make([]ast.Formula, len(formulas))
	for i, f := range formulas {
		out[i] = mapper.Formula(f)
	}
	return out
}

func (d *Driver) hereAndThereSingle(sfs []ast.ScopedFormula) []Formula {
	var out []Formula
	for _, f := range d.mapHereAndThereDomains(hereandthere.PrimeAxioms(d.ctx)) {
		out = append(out, Formula{Name: fmt.Sprintf("axiom_%d", len(out)+1), Role: Axiom, Formula: f})
	}
	closed := hereandthere.Close(sfs)
	mapped := d.mapHereAndThereDomains(hereandthere.MapToClassicalLogic(closed, d.ctx.FreshID))
	for _, f := range mapped {
		out = append(out, Formula{Name: fmt.Sprintf("axiom_%d", len(out)+1), Role: Axiom, Formula: f})
	}
	return out
}

func (d *Driver) hereAndThereTwoProgram(sfsA, sfsB []ast.ScopedFormula) []Formula {
	var out []Formula
	for _, f := range d.mapHereAndThereDomains(hereandthere.PrimeAxioms(d.ctx)) {
		out = append(out, Formula{Name: fmt.Sprintf("axiom_%d", len(out)+1), Role: Axiom, Formula: f})
	}
	mappedA := hereandthere.MapToClassicalLogic(hereandthere.Close(sfsA), d.ctx.FreshID)
	mappedB := hereandthere.MapToClassicalLogic(hereandthere.Close(sfsB), d.ctx.FreshID)
	conjecture := d.mapHereAndThereDomains([]ast.Formula{hereandthere.Conjecture(mappedA, mappedB)})[0]
	out = append(out, Formula{Name: "conjecture", Role: Conjecture, Formula: conjecture})
	return out
}
