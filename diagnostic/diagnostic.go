// Package diagnostic collects the warnings and errors every pass of the
// translator may raise, and aggregates them the way a multi-pass compiler
// does: a pass keeps going after a recoverable problem so the user sees
// every diagnostic in one run, and the driver decides at the end whether
// anything fatal occurred.
package diagnostic

import (
	"fmt"

	"go.uber.org/multierr"
)

// Kind classifies a diagnostic, mirroring the severities a lint tool
// reports but specialized to the translator's own pipeline stages.
type Kind int

const (
	// Warning is informational: the translation proceeded, but the
	// result may surprise the user (e.g. an unused #external predicate).
	Warning Kind = iota
	// ParseError means the input program's surface syntax is invalid.
	ParseError
	// TranslationError means the statement translator encountered a
	// construct it cannot express in the target logic.
	TranslationError
	// LogicError means a later pass (completion, hidden-predicate
	// elimination, here-and-there) found the program structurally
	// unsound for that pass. (A circular hidden-predicate dependency is
	// reported as a Warning, not a LogicError.)
	LogicError
	// IOError means reading the input or writing the output failed.
	IOError
)

func (k Kind) String() string {
	switch k {
	case Warning:
		return "warning"
	case ParseError:
		return "parse error"
	case TranslationError:
		return "translation error"
	case LogicError:
		return "logic error"
	case IOError:
		return "I/O error"
	default:
		return "error"
	}
}

// Position locates a diagnostic in the input source, when known.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Diagnostic is one reported problem.
type Diagnostic struct {
	Kind     Kind
	Message  string
	Position Position
}

func (d Diagnostic) Error() string {
	if d.Position.File == "" {
		return fmt.Sprintf("%s: %s", d.Kind, d.Message)
	}
	return fmt.Sprintf("%s: %s: %s", d.Position, d.Kind, d.Message)
}

// New builds a Diagnostic with no known position.
func New(kind Kind, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// At builds a Diagnostic anchored to pos.
func At(pos Position, kind Kind, format string, args ...interface{}) Diagnostic {
	return Diagnostic{Kind: kind, Message: fmt.Sprintf(format, args...), Position: pos}
}

// Log accumulates diagnostics over the course of a translation run. A Log
// is not safe for concurrent use; the driver runs passes sequentially
// (spec §5), so none is needed.
type Log struct {
	diagnostics []Diagnostic
	err         error
}

// Report appends d. If d.Kind is anything other than Warning, it also
// joins d into the Log's aggregate error via multierr, matching the
// "collect everything, decide at the end" discipline the rest of the
// pipeline uses for multi-pass error reporting.
func (l *Log) Report(d Diagnostic) {
	l.diagnostics = append(l.diagnostics, d)
	if d.Kind != Warning {
		l.err = multierr.Append(l.err, d)
	}
}

// Warnf reports a Warning-kind diagnostic with no position.
func (l *Log) Warnf(format string, args ...interface{}) {
	l.Report(New(Warning, format, args...))
}

// Errorf reports a diagnostic of the given non-warning kind with no
// position.
func (l *Log) Errorf(kind Kind, format string, args ...interface{}) {
	l.Report(New(kind, format, args...))
}

// All returns every diagnostic reported so far, in report order.
func (l *Log) All() []Diagnostic {
	return l.diagnostics
}

// Warnings returns only the Warning-kind diagnostics reported so far.
func (l *Log) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range l.diagnostics {
		if d.Kind == Warning {
			out = append(out, d)
		}
	}
	return out
}

// Err returns the aggregate of every non-warning diagnostic reported so
// far, or nil if none were. Callers use this to decide whether to abort
// the pipeline and what exit code to return.
func (l *Log) Err() error {
	return l.err
}

// HasErrors reports whether any non-warning diagnostic has been
// reported.
func (l *Log) HasErrors() bool {
	return l.err != nil
}
