package eval

import (
	"github.com/akashmaji946/adamite/ast"
	"github.com/akashmaji946/adamite/value"
)

func (e *Evaluator) evalVarDec(n *ast.VarDec) (value.Value, error) {
	var v value.Value

	switch {
	case n.Init != nil:
		iv, err := e.eval(n.Init)
		if err != nil {
			return nil, err
		}
		if n.IsArray {
			v = iv
		} else {
			v = coerce(n.TypeWord, iv)
		}
	case n.IsArray:
		elems := make([]value.Value, n.ArraySize)
		for i := range elems {
			zv, zerr := e.zeroValue(n, n.TypeWord)
			if zerr != nil {
				return nil, zerr
			}
			elems[i] = zv
		}
		v = &value.Array{ElemType: n.TypeWord, Elems: elems}
	default:
		zv, zerr := e.zeroValue(n, n.TypeWord)
		if zerr != nil {
			return nil, zerr
		}
		v = zv
	}

	e.Names.Assign(n.Name, v)
	return v, nil
}

// evalFuncDef declares a function, cloning its body out of the parse
// tree so it survives independent of whatever produced n — the same
// body the parser built cannot be reused directly because the parser's
// own node graph is not guaranteed to outlive this statement.
func (e *Evaluator) evalFuncDef(n *ast.FuncDef) (value.Value, error) {
	fn := &value.Function{
		Name:     n.Name,
		ArgNames: append([]string(nil), n.ArgNames...),
		ArgTypes: append([]string(nil), n.ArgTypes...),
		RetType:  n.RetType,
		Body:     n.Body.Clone(),
	}
	e.Funcs[n.Name] = fn
	e.Names.Assign(n.Name, fn)
	return fn, nil
}

func (e *Evaluator) evalStructDef(n *ast.StructDef) (value.Value, error) {
	rec := &value.Record{
		Name:       n.Name,
		FieldNames: append([]string(nil), n.FieldNames...),
		FieldTypes: append([]string(nil), n.FieldTypes...),
	}
	e.Records[n.Name] = rec
	e.Names.Assign(n.Name, rec)
	return rec, nil
}

func (e *Evaluator) evalCall(n *ast.Call) (value.Value, error) {
	if rec, ok := e.Records[n.Name]; ok {
		inst, zerr := e.zeroInstance(n, rec)
		if zerr != nil {
			return nil, zerr
		}
		return inst, nil
	}

	fnVal, ok := e.Names.Get(n.Name)
	if !ok {
		return nil, newErr(n, "Variable not defined")
	}
	fn, ok := fnVal.(*value.Function)
	if !ok {
		return nil, newErr(n, "Cannot call value")
	}
	if len(n.Args) != len(fn.ArgNames) {
		return nil, newErr(n, "Invalid number of arguments passed")
	}

	args := make([]value.Value, len(n.Args))
	for i, argNode := range n.Args {
		v, err := e.eval(argNode)
		if err != nil {
			return nil, err
		}
		if i < len(fn.ArgTypes) {
			if !typeMatches(fn.ArgTypes[i], v) {
				return nil, newErr(n, "Mismatched argument type")
			}
			v = coerce(fn.ArgTypes[i], v)
		}
		args[i] = v
	}
	return e.callFunction(n, fn, args)
}

// callFunction binds parameters directly into the single flat name
// table and runs the body — there is no call-site scope. A parameter
// whose name collides with an existing global overwrites it for the
// rest of the program; Adamite has no scoping to protect against that,
// and this port preserves that behavior rather than papering over it.
func (e *Evaluator) callFunction(n ast.Node, fn *value.Function, args []value.Value) (value.Value, error) {
	for i, name := range fn.ArgNames {
		e.Names.Assign(name, args[i])
	}
	body, ok := fn.Body.(*ast.Statements)
	if !ok {
		return nil, newErr(n, "Cannot call value")
	}
	v, err := e.execStatements(body)
	if err != nil {
		if rs, ok := err.(*returnSignal); ok {
			return rs.Value, nil
		}
		return nil, err
	}
	return v, nil
}
