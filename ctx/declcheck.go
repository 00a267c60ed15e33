package ctx

import (
	"fmt"

	"github.com/anthem-asp/anthem/ast"
)

// DeclConflict records a declaration that conflicts with another use (a
// name used as both a predicate and a function, at any arity, or a used
// #external predicate that is also hidden).
type DeclConflict struct {
	Signature string
	Reason    string
}

func (c DeclConflict) Error() string {
	return fmt.Sprintf("%s: %s", c.Signature, c.Reason)
}

// CheckDeclarations validates the declarations a Context has accumulated
// after statement translation, catching the conflicts the translator
// itself cannot see locally because they only show up once every
// statement has contributed its declarations.
func CheckDeclarations(c *Context) []DeclConflict {
	var conflicts []DeclConflict

	byName := make(map[string][]*ast.PredicateDeclaration)
	for _, d := range c.predicateDeclarations {
		byName[d.Name] = append(byName[d.Name], d)
	}
	for name, decls := range byName {
		for _, fd := range c.functionDeclarations {
			if fd.Name == name {
				conflicts = append(conflicts, DeclConflict{
					Signature: fmt.Sprintf("%s/%d", name, len(fd.Params)),
					Reason:    "used as both a predicate and a function name",
				})
			}
		}
		for _, d := range decls {
			if d.IsExternal && d.IsUsed && d.Visibility == ast.Hidden {
				conflicts = append(conflicts, DeclConflict{
					Signature: d.Signature(),
					Reason:    "declared #external and marked hidden: hidden-predicate elimination has nothing to eliminate",
				})
			}
		}
	}
	return conflicts
}

// CheckShowConflicts reports predicates named by a #show directive that
// were never otherwise declared, which the upstream translator treats as
// a warning rather than a hard error (a #show for a predicate that simply
// never occurs in the program is harmless but likely a typo).
func CheckShowConflicts(c *Context, shown []ast.PredicateDeclaration) []string {
	var warnings []string
	for _, s := range shown {
		found := false
		for _, d := range c.predicateDeclarations {
			if d.Name == s.Name && d.Arity == s.Arity {
				found = true
				break
			}
		}
		if !found {
			warnings = append(warnings, fmt.Sprintf("#show refers to undeclared predicate %s/%d", s.Name, s.Arity))
		}
	}
	return warnings
}
