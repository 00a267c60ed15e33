// Binary anthem translates ASP programs into classical first-order
// formulas, either Clark's completion of the program or its
// here-and-there embedding (spec §6 "CLI").
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"flag"

	log "github.com/golang/glog"

	"github.com/anthem-asp/anthem/ast"
	"github.com/anthem-asp/anthem/ctx"
	"github.com/anthem-asp/anthem/diagnostic"
	"github.com/anthem-asp/anthem/driver"
	"github.com/anthem-asp/anthem/format"
)

// stringList collects every occurrence of a repeatable flag, the way
// boost::program_options' std::vector<std::string> input option does in
// the original CLI.
type stringList []string

func (s *stringList) String() string {
	if s == nil {
		return ""
	}
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	help         = flag.Bool("help", false, "display this help message and exit")
	helpShort    = flag.Bool("h", false, "shorthand for --help")
	version      = flag.Bool("version", false, "display version information and exit")
	versionShort = flag.Bool("v", false, "shorthand for --version")

	mode           = flag.String("mode", "completion", "translation target: completion or hereandthere")
	outputFormat   = flag.String("format", "human", "output format: human or tptp")
	visibility     = flag.String("visibility", "visible", "default predicate visibility: visible or hidden")
	mapIntegers    = flag.String("map-integers", "auto", "domain-mapping policy for TPTP output: auto or always")
	simplify       = flag.Bool("simplify", true, "simplify formulas after completion")
	complete       = flag.Bool("complete", true, "complete the program (completion mode only)")
	detectIntegers = flag.Bool("detect-integers", true, "run integer-variable detection")
	color          = flag.Bool("color", false, "colorize HumanReadable output (auto-detected when writing to a terminal)")

	inputs stringList
)

func init() {
	flag.Var(&inputs, "input", "input file (repeatable)")
	flag.Var(&inputs, "i", "shorthand for --input")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: anthem [files] [options]\n")
	fmt.Fprintf(os.Stderr, "Translate ASP programs to the language of first-order theorem provers.\n\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nExit codes:\n")
	fmt.Fprintf(os.Stderr, "  0  translation succeeded\n")
	fmt.Fprintf(os.Stderr, "  1  translation failed (parse/translation/logic/I-O error)\n")
}

func main() {
	flag.Usage = usage
	flag.Parse()
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "color" {
			colorExplicit = true
		}
	})

	if *help || *helpShort {
		usage()
		os.Exit(0)
	}
	if *version || *versionShort {
		fmt.Println("anthem version 0.1.0")
		os.Exit(0)
	}

	c, err := configure()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	paths := flag.Args()
	paths = append(paths, inputs...)

	sources, err := readSources(paths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	logDiag := &diagnostic.Log{}
	formulas, err := driver.New(c, logDiag).Run(sources)

	for _, d := range logDiag.All() {
		fmt.Fprintf(os.Stderr, "%s\n", d.Error())
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if writeErr := writeOutput(os.Stdout, c, formulas); writeErr != nil {
		log.Exitf("error writing output: %v", writeErr)
	}
	os.Exit(0)
}

func configure() (*ctx.Context, error) {
	c := ctx.New()
	c.PerformSimplification = *simplify
	c.PerformCompletion = *complete
	c.PerformIntegerDetection = *detectIntegers

	switch *mode {
	case "completion":
		c.TranslationMode = ctx.Completion
	case "hereandthere":
		c.TranslationMode = ctx.HereAndThere
	default:
		return nil, fmt.Errorf("unknown --mode %q (want completion or hereandthere)", *mode)
	}

	switch *outputFormat {
	case "human":
		c.OutputFormat = ctx.HumanReadable
	case "tptp":
		c.OutputFormat = ctx.TPTP
	default:
		return nil, fmt.Errorf("unknown --format %q (want human or tptp)", *outputFormat)
	}

	switch *visibility {
	case "visible":
		c.DefaultPredicateVisibility = ast.Visible
	case "hidden":
		c.DefaultPredicateVisibility = ast.Hidden
	default:
		return nil, fmt.Errorf("unknown --visibility %q (want visible or hidden)", *visibility)
	}

	switch *mapIntegers {
	case "auto":
		c.MapToIntegers = ctx.Auto
	case "always":
		c.MapToIntegers = ctx.Always
	default:
		return nil, fmt.Errorf("unknown --map-integers %q (want auto or always)", *mapIntegers)
	}

	return c, nil
}

// readSources reads every path in order, or standard input when paths is
// empty (spec §6 "If no input paths are given, the translator reads from
// the standard input").
func readSources(paths []string) ([]driver.Source, error) {
	if len(paths) == 0 {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
		return []driver.Source{{Text: string(text), File: "stdin"}}, nil
	}

	sources := make([]driver.Source, 0, len(paths))
	for _, path := range paths {
		text, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		sources = append(sources, driver.Source{Text: string(text), File: path})
	}
	return sources, nil
}

// colorExplicit tracks whether the user passed --color themselves, so
// that omitting it falls back to terminal auto-detection rather than
// always being off.
var colorExplicit bool

func writeOutput(w io.Writer, c *ctx.Context, formulas []driver.Formula) error {
	if c.OutputFormat == ctx.TPTP {
		return format.TPTP(w, c, formulas)
	}
	useColor := *color
	if !colorExplicit {
		if f, ok := w.(*os.File); ok {
			useColor = format.IsTerminal(f)
		}
	}
	return format.HumanReadable(w, formulas, useColor)
}
