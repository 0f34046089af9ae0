package eval

import (
	"github.com/akashmaji946/adamite/ast"
	"github.com/akashmaji946/adamite/value"
)

func (e *Evaluator) evalIf(n *ast.If) (value.Value, error) {
	cond, err := e.eval(n.Cond)
	if err != nil {
		return nil, err
	}
	if value.IsTrue(cond) {
		return e.execStatements(n.Then)
	}
	if n.Else != nil {
		return e.execStatements(n.Else)
	}
	return &value.Int{V: 0}, nil
}

func (e *Evaluator) evalWhile(n *ast.While) (value.Value, error) {
	for {
		cond, err := e.eval(n.Cond)
		if err != nil {
			return nil, err
		}
		if !value.IsTrue(cond) {
			return &value.Int{V: 0}, nil
		}
		if _, err := e.execStatements(n.Body); err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) evalForLoop(n *ast.ForLoop) (value.Value, error) {
	startVal, err := e.eval(n.Start)
	if err != nil {
		return nil, err
	}
	start, ok := startVal.(*value.Int)
	if !ok {
		return nil, newErr(n, "Start and end values must be integers")
	}
	endVal, err := e.eval(n.End)
	if err != nil {
		return nil, err
	}
	end, ok := endVal.(*value.Int)
	if !ok {
		return nil, newErr(n, "Start and end values must be integers")
	}

	// end is exclusive: the loop runs while the next value is still less
	// than end, assigning the pre-increment value each pass, mirroring
	// the original interpreter's `*slot = start++`.
	counter := &value.Int{V: start.V}
	e.Names.Assign(n.Name, counter)
	for next := start.V; next < end.V; next++ {
		counter.V = next
		if _, err := e.execStatements(n.Body); err != nil {
			return nil, err
		}
	}
	return counter, nil
}
