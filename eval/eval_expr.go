package eval

import (
	"github.com/akashmaji946/adamite/ast"
	"github.com/akashmaji946/adamite/token"
	"github.com/akashmaji946/adamite/value"
)

// evalArrayLit builds an Array from either of two source forms: a
// `{TYPEWORD, INT}` pair, every slot set to that type's default value,
// or a `[e1, e2, ...]` list of already-computed element values.
func (e *Evaluator) evalArrayLit(n *ast.ArrayLit) (value.Value, error) {
	if n.TypeWord != "" {
		sizeVal, err := e.eval(n.Size)
		if err != nil {
			return nil, err
		}
		szInt, ok := sizeVal.(*value.Int)
		if !ok {
			return nil, newErr(n, "Array size must be integer")
		}
		elems := make([]value.Value, szInt.V)
		for i := range elems {
			zv, zerr := e.zeroValue(n, n.TypeWord)
			if zerr != nil {
				return nil, zerr
			}
			elems[i] = zv
		}
		return &value.Array{ElemType: n.TypeWord, Elems: elems}, nil
	}

	elems := make([]value.Value, len(n.Elems))
	elemType := "int"
	for i, elemNode := range n.Elems {
		v, err := e.eval(elemNode)
		if err != nil {
			return nil, err
		}
		elems[i] = v
		if i == 0 {
			elemType = tagToTypeWord(v.Tag())
		}
	}
	return &value.Array{ElemType: elemType, Elems: elems}, nil
}

// evalBinaryOp computes a binary operator application. '<' and '>'
// never succeed — value.Lt/Gt always report ok=false — which is why
// they surface here as "Illegal Operation" exactly like any other
// type-mismatched arithmetic.
func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) (value.Value, error) {
	left, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}

	var result value.Value
	var ok bool
	switch n.Op {
	case token.PLUS:
		result, ok = value.Add(left, right)
	case token.MINUS:
		result, ok = value.Sub(left, right)
	case token.STAR:
		result, ok = value.Mul(left, right)
	case token.SLASH:
		result, ok = value.Div(left, right)
	case token.PERCENT:
		result, ok = value.Mod(left, right)
	case token.EQ:
		result, ok = value.Eq(left, right)
	case token.NEQ:
		result, ok = value.Neq(left, right)
	case token.LT:
		result, ok = value.Lt(left, right)
	case token.GT:
		result, ok = value.Gt(left, right)
	}
	if !ok {
		return nil, newErr(n, "Illegal Operation")
	}
	return result, nil
}

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) (value.Value, error) {
	v, err := e.eval(n.Right)
	if err != nil {
		return nil, err
	}
	switch tv := v.(type) {
	case *value.Int:
		return &value.Int{V: -tv.V}, nil
	case *value.Char:
		return &value.Char{V: -tv.V}, nil
	default:
		return nil, newErr(n, "Illegal Operation")
	}
}

func (e *Evaluator) evalVarAccess(n *ast.VarAccess) (value.Value, error) {
	v, ok := e.Names.Get(n.Name)
	if !ok {
		return nil, newErr(n, "Variable not defined")
	}
	return v, nil
}

func (e *Evaluator) evalAssign(n *ast.Assign) (value.Value, error) {
	v, err := e.eval(n.Value)
	if err != nil {
		return nil, err
	}
	e.Names.Assign(n.Name, v)
	return v, nil
}

// evalGetItem dispatches arr[i], str[i], and inst["field"] from the
// runtime type of the container alone — the grammar has one GetItem
// shape for all three, exactly like the original interpreter's single
// NODE_GETITEM visit method.
func (e *Evaluator) evalGetItem(n *ast.GetItem) (value.Value, error) {
	container, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.eval(n.Index)
	if err != nil {
		return nil, err
	}

	switch c := container.(type) {
	case *value.Instance:
		name, ok := idxVal.(*value.String)
		if !ok {
			return nil, newErr(n, "Unknown member name")
		}
		idx := c.FieldIndex(name.V)
		if idx < 0 {
			return nil, newErr(n, "Unknown member name")
		}
		return c.Fields[idx], nil
	case *value.Array:
		idxInt, ok := idxVal.(*value.Int)
		if !ok {
			return nil, newErr(n, "Index must be Integer")
		}
		if idxInt.V < 0 || idxInt.V >= int64(len(c.Elems)) {
			return nil, newErr(n, "Index greater than limit of array")
		}
		return c.Elems[idxInt.V], nil
	case *value.String:
		idxInt, ok := idxVal.(*value.Int)
		if !ok {
			return nil, newErr(n, "Index must be Integer")
		}
		if idxInt.V < 0 || idxInt.V >= int64(len(c.V)) {
			return nil, newErr(n, "Index greater than limit of array")
		}
		return &value.Char{V: int64(c.V[idxInt.V])}, nil
	default:
		return nil, newErr(n, "Index must be Integer")
	}
}

func (e *Evaluator) evalSetItem(n *ast.SetItem) (value.Value, error) {
	container, err := e.eval(n.Left)
	if err != nil {
		return nil, err
	}
	idxVal, err := e.eval(n.Index)
	if err != nil {
		return nil, err
	}
	newVal, err := e.eval(n.Value)
	if err != nil {
		return nil, err
	}

	switch c := container.(type) {
	case *value.Instance:
		name, ok := idxVal.(*value.String)
		if !ok {
			return nil, newErr(n, "Unknown member name")
		}
		idx := c.FieldIndex(name.V)
		if idx < 0 {
			return nil, newErr(n, "Unknown member name")
		}
		c.Fields[idx] = coerce(c.Of.FieldTypes[idx], newVal)
		return c.Fields[idx], nil
	case *value.Array:
		idxInt, ok := idxVal.(*value.Int)
		if !ok {
			return nil, newErr(n, "Index must be Integer")
		}
		if idxInt.V < 0 || idxInt.V >= int64(len(c.Elems)) {
			return nil, newErr(n, "Index greater than limit of array")
		}
		c.Elems[idxInt.V] = coerce(c.ElemType, newVal)
		return c.Elems[idxInt.V], nil
	case *value.String:
		idxInt, ok := idxVal.(*value.Int)
		if !ok {
			return nil, newErr(n, "Index must be Integer")
		}
		if idxInt.V < 0 || idxInt.V >= int64(len(c.V)) {
			return nil, newErr(n, "Index greater than limit of array")
		}
		b := byteOf(newVal)
		updated := updateByteAt(c.V, int(idxInt.V), b)
		// Strings are immutable in Go; the named variable must be rebound
		// to the rebuilt string to observe the write, so only an
		// identifier-backed target can actually mutate in place.
		if va, ok := n.Left.(*ast.VarAccess); ok {
			e.Names.Assign(va.Name, &value.String{V: updated})
		}
		return &value.Char{V: int64(b)}, nil
	default:
		return nil, newErr(n, "Index must be Integer")
	}
}

// byteOf extracts the single byte a Char or String supplies as a
// String-index write's new value — the first byte if it's a String.
func byteOf(v value.Value) byte {
	switch tv := v.(type) {
	case *value.Char:
		return byte(tv.V)
	case *value.String:
		if len(tv.V) > 0 {
			return tv.V[0]
		}
	}
	return 0
}

func updateByteAt(s string, i int, b byte) string {
	buf := []byte(s)
	buf[i] = b
	return string(buf)
}

func (e *Evaluator) evalSizeof(n *ast.Sizeof) (value.Value, error) {
	if n.TypeWord != "" {
		return &value.Int{V: int64(value.SizeofType(n.TypeWord))}, nil
	}
	v, err := e.eval(n.Value)
	if err != nil {
		return nil, err
	}
	return &value.Int{V: int64(value.SizeofValue(v))}, nil
}

// evalNew allocates a scalar or array value and hands back a handle to
// it rather than the value itself: the result is always an Int holding
// the arena address, so `$ (new int)` round-trips to the allocated
// value.
func (e *Evaluator) evalNew(n *ast.New) (value.Value, error) {
	if !n.IsArray {
		v, zerr := e.zeroValue(n, n.TypeWord)
		if zerr != nil {
			return nil, zerr
		}
		addr := e.Arena.Register(v)
		return &value.Int{V: int64(addr)}, nil
	}
	sizeVal, err := e.eval(n.Size)
	if err != nil {
		return nil, err
	}
	szInt, ok := sizeVal.(*value.Int)
	if !ok {
		return nil, newErr(n, "Array size must be integer")
	}
	elems := make([]value.Value, szInt.V)
	for i := range elems {
		zv, zerr := e.zeroValue(n, n.TypeWord)
		if zerr != nil {
			return nil, zerr
		}
		elems[i] = zv
	}
	arr := &value.Array{ElemType: n.TypeWord, Elems: elems}
	addr := e.Arena.Register(arr)
	return &value.Int{V: int64(addr)}, nil
}

func (e *Evaluator) evalAddress(n *ast.Address) (value.Value, error) {
	v, ok := e.Names.Get(n.Name)
	if !ok {
		return nil, newErr(n, "Variable not defined")
	}
	addr := e.Arena.Register(v)
	return &value.Int{V: int64(addr)}, nil
}

func (e *Evaluator) evalDeref(n *ast.Deref) (value.Value, error) {
	v, err := e.eval(n.Value)
	if err != nil {
		return nil, err
	}
	addr, ok := v.(*value.Int)
	if !ok {
		return nil, newErr(n, "Pointers can only exist as integers")
	}
	target, ok := e.Arena.Deref(int(addr.V))
	if !ok {
		return nil, newErr(n, "Pointers can only exist as integers")
	}
	return target, nil
}
