package eval

import (
	"fmt"
	"io"
	"strings"

	"github.com/akashmaji946/adamite/ast"
	"github.com/akashmaji946/adamite/value"
)

// maxStdinBytes bounds a single Stdin read the same way the lexer caps
// string and char literals: both mirror the fixed-size C buffers the
// original interpreter reads text into.
const maxStdinBytes = 99

func (e *Evaluator) evalPuts(n *ast.Puts) (value.Value, error) {
	v, err := e.eval(n.Value)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.Writer, v.String())
	return v, nil
}

func (e *Evaluator) evalStdin(n *ast.Stdin) (value.Value, error) {
	line, readErr := e.Reader.ReadString('\n')
	if readErr != nil && readErr != io.EOF {
		return nil, newErr(n, "Failed to finish executing script")
	}
	line = strings.TrimRight(line, "\r\n")
	if len(line) > maxStdinBytes {
		line = line[:maxStdinBytes]
	}
	return &value.String{V: line}, nil
}

// maxIncludeDepth guards against an include cycle recursing forever;
// the original interpreter has no such guard because its file-system
// include graph is assembled once ahead of time, but a Go re-entrant
// parse-and-run needs an explicit bound.
const maxIncludeDepth = 64

func (e *Evaluator) evalInclude(n *ast.Include) (value.Value, error) {
	if e.IncludeSource == nil || e.Parse == nil {
		return nil, newErr(n, "Failed to finish executing script")
	}
	if e.includeDepth >= maxIncludeDepth {
		return nil, newErr(n, "Failed to finish executing script")
	}

	src, ioErr := e.IncludeSource(n.Path)
	if ioErr != nil {
		return nil, newErr(n, "Failed to finish executing script")
	}

	stmts, parseErrs := e.Parse(src)
	if len(parseErrs) > 0 {
		return nil, newErr(n, "Failed to finish executing script")
	}

	e.includeDepth++
	defer func() { e.includeDepth-- }()
	return e.execStatements(stmts)
}
