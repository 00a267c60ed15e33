package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/domain"
	"github.com/anthem-asp/anthem/driver"
)

// preludeFixed is the fixed TPTP prelude spec §6 requires verbatim: the
// object sort, the typed wrapper/operation declarations, and the
// disjointness/arithmetic/comparison axioms. Reproduced from the literal
// text printed by Translation.cpp's translateCompletion/translateHereAndThere
// (the `tff(types, ...)`/`tff(type_check, ...)`/`tff(operations, ...)`/
// `tff(less_equal, ...)` etc. blocks), down to formula naming.
const preludeFixed = `tff(types, type, object: $tType).

tff(types, type, (f__integer__: $int > object)).
tff(types, type, (f__symbolic__: $i > object)).

tff(types, type, (f__sum__: (object * object) > object)).
tff(types, type, (f__unary_minus__: object > object)).
tff(types, type, (f__difference__: (object * object) > object)).
tff(types, type, (f__product__: (object * object) > object)).

tff(types, type, (p__is_integer__: object > $o)).
tff(types, type, (p__is_symbolic__: object > $o)).
tff(types, type, (p__less_equal__: (object * object) > $o)).
tff(types, type, (p__less__: (object * object) > $o)).
tff(types, type, (p__greater_equal__: (object * object) > $o)).
tff(types, type, (p__greater__: (object * object) > $o)).

tff(type_check, axiom, (![X: object]: (p__is_integer__(X) <=> (?[Y: $int]: (X = f__integer__(Y)))))).
tff(type_check, axiom, (![X: object]: (p__is_symbolic__(X) <=> (?[Y: $i]: (X = f__symbolic__(Y)))))).
tff(type_check, axiom, (![X: object]: (p__is_integer__(X) <~> p__is_symbolic__(X)))).
tff(type_check, axiom, (![X: $int, Y: $int]: ((f__integer__(X) = f__integer__(Y)) => (X = Y)))).

tff(operations, axiom, (![X1: $int, X2: $int]: (f__sum__(f__integer__(X1), f__integer__(X2)) = f__integer__($sum(X1, X2))))).
tff(operations, axiom, (![X: $int]: (f__unary_minus__(f__integer__(X)) = f__integer__($uminus(X))))).
tff(operations, axiom, (![X1: $int, X2: $int]: (f__difference__(f__integer__(X1), f__integer__(X2)) = f__integer__($difference(X1, X2))))).
tff(operations, axiom, (![X1: $int, X2: $int]: (f__product__(f__integer__(X1), f__integer__(X2)) = f__integer__($product(X1, X2))))).

tff(less_equal, axiom, (![X1: $int, X2: $int]: (p__less_equal__(f__integer__(X1), f__integer__(X2)) <=> $lesseq(X1, X2)))).
tff(less_equal, axiom, (![X1: $i, X2: $int]: ~p__less_equal__(f__symbolic__(X1), f__integer__(X2)))).
tff(less_equal, axiom, (![X1: $int, X2: $i]: p__less_equal__(f__integer__(X1), f__symbolic__(X2)))).

tff(less, axiom, (![X1: $int, X2: $int]: (p__less__(f__integer__(X1), f__integer__(X2)) <=> $less(X1, X2)))).
tff(less, axiom, (![X1: $i, X2: $int]: ~p__less__(f__symbolic__(X1), f__integer__(X2)))).
tff(less, axiom, (![X1: $int, X2: $i]: p__less__(f__integer__(X1), f__symbolic__(X2)))).

tff(greater_equal, axiom, (![X1: $int, X2: $int]: (p__greater_equal__(f__integer__(X1), f__integer__(X2)) <=> $greatereq(X1, X2)))).
tff(greater_equal, axiom, (![X1: $i, X2: $int]: p__greater_equal__(f__symbolic__(X1), f__integer__(X2)))).
tff(greater_equal, axiom, (![X1: $int, X2: $i]: ~p__greater_equal__(f__integer__(X1), f__symbolic__(X2)))).

tff(greater, axiom, (![X1: $int, X2: $int]: (p__greater__(f__integer__(X1), f__integer__(X2)) <=> $greater(X1, X2)))).
tff(greater, axiom, (![X1: $i, X2: $int]: p__greater__(f__symbolic__(X1), f__integer__(X2)))).
tff(greater, axiom, (![X1: $int, X2: $i]: ~p__greater__(f__integer__(X1), f__symbolic__(X2)))).
`

// fixedTPTPSymbols are the typed wrapper/operator names the fixed
// prelude already declares; TPTP's ordinary per-declaration type-loop
// must skip them rather than print a second, conflicting declaration.
var fixedTPTPSymbols = map[string]bool{
	domain.FuncInteger:    true,
	domain.FuncSymbolic:   true,
	domain.FuncSum:        true,
	domain.FuncUnaryMinus: true,
	domain.FuncDifference: true,
	domain.FuncProduct:    true,
	domain.PredIsInteger:  true,
	domain.PredIsSymbolic: true,
	domain.PredLessEqual:  true,
	domain.PredLess:       true,
	domain.PredGreaterEq:  true,
	domain.PredGreater:    true,
}

// TPTP writes the fixed prelude, type annotations for every predicate
// and function declaration not already covered by the prelude, and the
// typed formulas of formulas (each as `tff(<name>, <role>, <text>).`),
// in that order (spec §6 "TPTP").
func TPTP(w io.Writer, c *ctx.Context, formulas []driver.Formula) error {
	if _, err := io.WriteString(w, preludeFixed); err != nil {
		return err
	}

	typeID := 0
	for _, p := range c.Predicates() {
		if fixedTPTPSymbols[p.Name] {
			continue
		}
		typeID++
		if err := writeType(w, typeID, p.Name, len(p.Params), "$o"); err != nil {
			return err
		}
	}
	for _, f := range c.Functions() {
		if fixedTPTPSymbols[f.Name] {
			continue
		}
		typeID++
		if err := writeType(w, typeID, f.Name, len(f.Params), "object"); err != nil {
			return err
		}
	}

	for _, form := range formulas {
		role := "axiom"
		if form.Role == driver.Conjecture {
			role = "conjecture"
		}
		fmt.Fprintf(w, "tff(%s, %s, %s).\n", form.Name, role, tptpFormula(form.Formula))
	}
	return nil
}

// tptpFormula renders f in TPTP's prefix connective syntax (&, |, ~, =>,
// <=>, ![..]:, ?[..]:) rather than the infix HumanReadable notation
// ast.Formula.String() produces. Term syntax is unaffected: TPTP's
// functor-application form `f(a, b)` is identical to ast's own
// Term.String(), so terms are rendered by calling it directly.
func tptpFormula(f ast.Formula) string {
	switch v := f.(type) {
	case ast.FormulaBoolean:
		if v.Value {
			return "$true"
		}
		return "$false"

	case ast.Predicate, ast.Comparison, ast.In:
		return f.String()

	case ast.Not:
		return "~" + tptpParenthesize(v.Argument)

	case ast.And:
		if len(v.Arguments) == 0 {
			return "$true"
		}
		return tptpJoin(v.Arguments, " & ")

	case ast.Or:
		if len(v.Arguments) == 0 {
			return "$false"
		}
		return tptpJoin(v.Arguments, " | ")

	case ast.Implies:
		return tptpParenthesize(v.Antecedent) + " => " + tptpParenthesize(v.Consequent)

	case ast.Biconditional:
		return tptpParenthesize(v.Left) + " <=> " + tptpParenthesize(v.Right)

	case ast.Exists:
		if len(v.Variables) == 0 {
			return tptpFormula(v.Argument)
		}
		return "?[" + tptpVarSorts(v.Variables) + "]: (" + tptpFormula(v.Argument) + ")"

	case ast.ForAll:
		if len(v.Variables) == 0 {
			return tptpFormula(v.Argument)
		}
		return "![" + tptpVarSorts(v.Variables) + "]: (" + tptpFormula(v.Argument) + ")"
	}
	return f.String()
}

// tptpParenthesize wraps f in parentheses unless it's atomic, mirroring
// ast's own parenthesize but for the TPTP connective set.
func tptpParenthesize(f ast.Formula) string {
	switch f.(type) {
	case ast.FormulaBoolean, ast.Predicate, ast.Comparison, ast.In:
		return tptpFormula(f)
	default:
		return "(" + tptpFormula(f) + ")"
	}
}

func tptpJoin(fs []ast.Formula, sep string) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = tptpParenthesize(f)
	}
	return strings.Join(parts, sep)
}

// tptpVarSorts renders a quantifier's bound variables with their TPTP
// sort annotation. Every user-declared variable lives in the single
// `object` sort (spec §4.8); $int/$i only appear inside the fixed
// prelude's own internal quantifiers, never in a translated formula.
func tptpVarSorts(vars []*ast.VariableDeclaration) string {
	parts := make([]string, len(vars))
	for i, v := range vars {
		parts[i] = v.DisplayName() + ": object"
	}
	return strings.Join(parts, ", ")
}

func writeType(w io.Writer, id int, name string, arity int, ret string) error {
	params := make([]string, arity)
	for i := range params {
		params[i] = "object"
	}
	sig := ret
	if arity == 1 {
		sig = params[0] + " > " + ret
	} else if arity > 1 {
		sig = "(" + strings.Join(params, " * ") + ") > " + ret
	}
	_, err := fmt.Fprintf(w, "tff(type_%d, type, (%s: %s)).\n", id, name, sig)
	return err
}
