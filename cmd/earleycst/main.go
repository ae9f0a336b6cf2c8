/*
Earleycst parses a single Items program written in the surface language and
prints its concrete syntax tree.

Usage:

	earleycst [flags] [FILE]

If FILE is omitted, source is read from stdin. The flags are:

	-v, --version
		Give the current version of earleycst and then exit.

	-f, --format tree|binary
		Select the output format. "tree" (default) prints the CST's own
		leveled string representation. "binary" prints its REZI-encoded
		binary form.

	-d, --direct
		Force reading directly from stdin instead of going through GNU
		readline, even when launched attached to a terminal.

	-c, --chart
		Dump the Earley chart's state-set table to stderr before printing
		the tree.

A rejected or malformed input is reported on stderr as a single line of the
form "Exception: <Kind>: <message>" and the program exits with status 1.
*/
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"

	"github.com/dekarrin/earleycst/internal/frontend"
	"github.com/dekarrin/earleycst/internal/grammar"
	"github.com/dekarrin/earleycst/internal/input"
	"github.com/dekarrin/earleycst/internal/synerr"
	"github.com/dekarrin/earleycst/internal/util"
	"github.com/dekarrin/earleycst/internal/version"
)

const (
	// ExitSuccess indicates a successful parse.
	ExitSuccess = iota

	// ExitParseError indicates a lexer or parser failure reported via
	// synerr.
	ExitParseError
)

var (
	returnCode  = ExitSuccess
	flagVersion = pflag.BoolP("version", "v", false, "Gives the version info")
	flagFormat  = pflag.StringP("format", "f", "tree", `Output format, "tree" or "binary"`)
	flagDirect  = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of going through GNU readline where possible")
	flagChart   = pflag.BoolP("chart", "c", false, "Dump the Earley chart's state-set table to stderr")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	validFormats := []string{"tree", "binary"}
	if *flagFormat != "tree" && *flagFormat != "binary" {
		fmt.Fprintf(os.Stderr, "Exception: %s: unknown format %q, must be %s\n",
			synerr.KindParse, *flagFormat, util.MakeTextList(validFormats))
		returnCode = ExitParseError
		return
	}

	src, err := readSource(pflag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Exception: %s: %s\n", synerr.KindParse, err)
		returnCode = ExitParseError
		return
	}

	result, err := frontend.Parse(grammar.Surface, src)
	if *flagChart && result.Chart != nil {
		fmt.Fprintln(os.Stderr, result.Chart.DebugTable())
	}
	if err != nil {
		kind, ok := synerr.KindOf(err)
		if !ok {
			kind = synerr.KindParse
		}
		fmt.Fprintf(os.Stderr, "Exception: %s: %s\n", kind, err)
		returnCode = ExitParseError
		return
	}

	if *flagFormat == "binary" {
		os.Stdout.Write(result.Tree.EncodeBinary())
		return
	}
	fmt.Println(result.Tree.String())
}

// readSource acquires the program's source text: from the named file if one
// was given as a positional argument, otherwise from stdin. Readline is
// used only when attached to a real terminal and not overridden by
// --direct.
func readSource(args []string) (string, error) {
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return "", err
		}
		defer f.Close()
		data, err := io.ReadAll(f)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	useReadline := !*flagDirect && isatty.IsTerminal(os.Stdin.Fd())
	if !useReadline {
		r := input.NewDirectReader(os.Stdin)
		defer r.Close()
		return r.ReadUnit()
	}

	r, err := input.NewInteractiveReader()
	if err != nil {
		return "", fmt.Errorf("initializing interactive-mode input reader: %w", err)
	}
	defer r.Close()
	return r.ReadUnit()
}
