// Command adamite runs an Adamite source file, or opens an interactive
// session over it with -repl.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/akashmaji946/adamite/ast"
	"github.com/akashmaji946/adamite/eval"
	"github.com/akashmaji946/adamite/internal/source"
	"github.com/akashmaji946/adamite/lexer"
	"github.com/akashmaji946/adamite/parser"
	"github.com/akashmaji946/adamite/repl"
)

const (
	version = "v0.1.0"
	author  = "adamite"
	license = "MIT"
	prompt  = "adamite >>> "
	line    = "----------------------------------------------------------------"
	banner  = `
   _       _                 _ _
  / \   __| | __ _ _ __ ___ (_) |_ ___
 / _ \ / _` + "`" + ` |/ _` + "`" + ` | '_ ` + "`" + ` _ \| | __/ _ \
/ ___ \ (_| | (_| | | | | | | | ||  __/
/_/   \_\__,_|\__,_|_| |_| |_|_|\__\___|
`
)

var (
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	dumpTokens := flag.Bool("dump-tokens", false, "print the token stream for the given file and exit")
	showVersion := flag.Bool("version", false, "print the interpreter version and exit")
	showVersionShort := flag.Bool("v", false, "print the interpreter version and exit")
	replMode := flag.Bool("repl", false, "start an interactive session")
	flag.Parse()

	if *showVersion || *showVersionShort {
		fmt.Printf("adamite %s\n", version)
		os.Exit(0)
	}

	if *replMode {
		r := repl.New(banner, version, author, line, license, prompt)
		r.Start(os.Stdin, os.Stdout)
		return
	}

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Filename not specified.")
		os.Exit(2)
	}

	src, err := source.Read(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not open '%s': %v\n", path, err)
		printFinished(2)
		os.Exit(2)
	}

	if *dumpTokens {
		for _, tok := range lexer.New(src).Tokens() {
			fmt.Printf("%-12s %-20q line=%d col=%d\n", tok.Kind, tok.Text, tok.Line, tok.Column)
		}
		os.Exit(0)
	}

	os.Exit(run(path, src))
}

func run(path, src string) int {
	p := parser.New(src)
	prog := p.Parse()

	if p.HasErrors() {
		redColor.Fprintln(os.Stderr, p.Errors[0].Error())
		printFinished(1)
		return 1
	}

	e := eval.New()
	e.IncludeSource = includeRelativeTo(filepath.Dir(path))
	e.Parse = func(src string) (*ast.Statements, []error) {
		ip := parser.New(src)
		stmts := ip.Parse()
		if ip.HasErrors() {
			errs := make([]error, len(ip.Errors))
			for i, se := range ip.Errors {
				errs[i] = se
			}
			return nil, errs
		}
		return stmts, nil
	}

	_, rerr := e.Run(prog)
	if rerr != nil {
		redColor.Fprintln(os.Stderr, rerr.Error())
		printFinished(1)
		return 1
	}

	printFinished(0)
	return 0
}

func includeRelativeTo(dir string) func(string) (string, error) {
	return func(path string) (string, error) {
		return source.Read(filepath.Join(dir, path))
	}
}

func printFinished(code int) {
	msg := fmt.Sprintf("Finished with code (%d)", code)
	switch code {
	case 0:
		greenColor.Fprintln(os.Stdout, msg)
	default:
		yellowColor.Fprintln(os.Stdout, msg)
	}
}
