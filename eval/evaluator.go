// Package eval tree-walks an Adamite ast.Node into a value.Value,
// sharing one flat nametable.Table and one arena.Arena for the whole
// process lifetime — there is no child scope per call, matching
// spec.md's rejection of lexical scoping and closures.
package eval

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/adamite/arena"
	"github.com/akashmaji946/adamite/ast"
	"github.com/akashmaji946/adamite/nametable"
	"github.com/akashmaji946/adamite/value"
)

// RuntimeError is a single evaluation failure with source position,
// formatted the way the CLI's exit-code/printing contract expects:
// "<ErrorName> (LINE, COL): <MESSAGE>".
type RuntimeError struct {
	Kind    string // always "Runtime Error"; the specific failure is in Message
	Message string
	Line    int
	Col     int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s (%d, %d): %s", e.Kind, e.Line, e.Col, e.Message)
}

func newErr(n ast.Node, msg string) *RuntimeError {
	line, col := n.Pos()
	return &RuntimeError{Kind: "Runtime Error", Message: msg, Line: line, Col: col}
}

// returnSignal unwinds a Statements chain back to the nearest
// callFunction boundary. It is never shown to a caller of Run or Eval as
// a real error — both strip it off before returning.
type returnSignal struct{ Value value.Value }

func (r *returnSignal) Error() string { return "return" }

// Evaluator bundles everything a running Adamite program shares: the
// one flat name table, the one value arena backing '->'/'$', the set
// of declared record types, and the reader/writer builtins read and
// write through — grounded on the teacher Evaluator's same bundling of
// scope + builtins + writer + reader into one struct.
type Evaluator struct {
	Names   *nametable.Table
	Arena   *arena.Arena
	Records map[string]*value.Record
	Funcs   map[string]*value.Function
	Writer  io.Writer
	Reader  *bufio.Reader

	// IncludeSource resolves an include path to source text. main wires
	// this to os.ReadFile relative to the running script's directory;
	// tests can stub it.
	IncludeSource func(path string) (string, error)
	// Parse turns source text into a Statements tree already deep-copy
	// safe to run. Set by main to the real parser; kept as a field to
	// avoid an eval->parser->eval import cycle (parser never needs eval).
	Parse func(src string) (*ast.Statements, []error)

	includeDepth int
}

// New creates an Evaluator wired to stdout/stdin.
func New() *Evaluator {
	return &Evaluator{
		Names:   nametable.New(),
		Arena:   arena.New(),
		Records: make(map[string]*value.Record),
		Funcs:   make(map[string]*value.Function),
		Writer:  os.Stdout,
		Reader:  bufio.NewReader(os.Stdin),
	}
}

// SetWriter redirects Puts output, mainly for tests.
func (e *Evaluator) SetWriter(w io.Writer) { e.Writer = w }

// SetReader redirects Stdin reads, mainly for tests.
func (e *Evaluator) SetReader(r io.Reader) { e.Reader = bufio.NewReader(r) }

// Run evaluates a whole program's top-level Statements. A return
// reaching the top level simply ends the program, the same as falling
// off the end of the statement list.
func (e *Evaluator) Run(prog *ast.Statements) (value.Value, *RuntimeError) {
	v, err := e.execStatements(prog)
	if err == nil {
		return v, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.Value, nil
	}
	return nil, err.(*RuntimeError)
}

// execStatements runs each statement in order, stopping at the first
// error or returnSignal.
func (e *Evaluator) execStatements(s *ast.Statements) (value.Value, error) {
	var last value.Value = &value.Int{V: 0}
	for _, stmt := range s.List {
		v, err := e.eval(stmt)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// eval is the internal dispatcher; it returns error (which may be a
// *RuntimeError or a *returnSignal) rather than *RuntimeError directly
// so Return can unwind through nested Statements without every caller
// re-checking a signal flag.
func (e *Evaluator) eval(n ast.Node) (value.Value, error) {
	switch node := n.(type) {
	case *ast.Statements:
		return e.execStatements(node)
	case *ast.IntLit:
		return &value.Int{V: node.Value}, nil
	case *ast.CharLit:
		return &value.Char{V: int64(node.Value)}, nil
	case *ast.StringLit:
		return &value.String{V: node.Value}, nil
	case *ast.ArrayLit:
		return e.evalArrayLit(node)
	case *ast.BinaryOp:
		return e.evalBinaryOp(node)
	case *ast.UnaryOp:
		return e.evalUnaryOp(node)
	case *ast.VarDec:
		return e.evalVarDec(node)
	case *ast.VarAccess:
		return e.evalVarAccess(node)
	case *ast.Assign:
		return e.evalAssign(node)
	case *ast.GetItem:
		return e.evalGetItem(node)
	case *ast.SetItem:
		return e.evalSetItem(node)
	case *ast.Call:
		return e.evalCall(node)
	case *ast.FuncDef:
		return e.evalFuncDef(node)
	case *ast.StructDef:
		return e.evalStructDef(node)
	case *ast.If:
		return e.evalIf(node)
	case *ast.While:
		return e.evalWhile(node)
	case *ast.ForLoop:
		return e.evalForLoop(node)
	case *ast.Puts:
		return e.evalPuts(node)
	case *ast.Return:
		v, err := e.eval(node.Value)
		if err != nil {
			return nil, err
		}
		return nil, &returnSignal{Value: v}
	case *ast.Sizeof:
		return e.evalSizeof(node)
	case *ast.New:
		return e.evalNew(node)
	case *ast.Address:
		return e.evalAddress(node)
	case *ast.Deref:
		return e.evalDeref(node)
	case *ast.Stdin:
		return e.evalStdin(node)
	case *ast.Include:
		return e.evalInclude(node)
	default:
		return nil, newErr(n, "Failed to finish executing script")
	}
}

// Eval is the public entry point for evaluating a single node outside a
// whole-program Run.
func (e *Evaluator) Eval(n ast.Node) (value.Value, *RuntimeError) {
	v, err := e.eval(n)
	if err == nil {
		return v, nil
	}
	if rs, ok := err.(*returnSignal); ok {
		return rs.Value, nil
	}
	return nil, err.(*RuntimeError)
}
