package value

// Add, Sub, Mul, Div, Mod, Eq, Neq, Lt, Gt each return (result, ok);
// ok is false exactly where the original object model returns NULL —
// "Illegal Operation" — letting the evaluator turn that into its own
// error without this package knowing about line/column reporting.

func Add(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Int:
		bv, ok := b.(*Int)
		if !ok {
			return nil, false
		}
		return &Int{V: av.V + bv.V}, true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return &String{V: av.V + bv.V}, true
	default:
		return nil, false
	}
}

func Sub(a, b Value) (Value, bool) {
	av, ok := a.(*Int)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Int)
	if !ok {
		return nil, false
	}
	return &Int{V: av.V - bv.V}, true
}

func Mul(a, b Value) (Value, bool) {
	av, ok := a.(*Int)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Int)
	if !ok {
		return nil, false
	}
	return &Int{V: av.V * bv.V}, true
}

func Div(a, b Value) (Value, bool) {
	av, ok := a.(*Int)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Int)
	if !ok || bv.V == 0 {
		return nil, false
	}
	return &Int{V: av.V / bv.V}, true
}

func Mod(a, b Value) (Value, bool) {
	av, ok := a.(*Int)
	if !ok {
		return nil, false
	}
	bv, ok := b.(*Int)
	if !ok || bv.V == 0 {
		return nil, false
	}
	return &Int{V: av.V % bv.V}, true
}

func boolInt(b bool) *Int {
	if b {
		return &Int{V: 1}
	}
	return &Int{V: 0}
}

func Eq(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Int:
		bv, ok := b.(*Int)
		if !ok {
			return nil, false
		}
		return boolInt(av.V == bv.V), true
	case *Char:
		bv, ok := b.(*Char)
		if !ok {
			return nil, false
		}
		return boolInt(av.V == bv.V), true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return boolInt(av.V == bv.V), true
	default:
		return nil, false
	}
}

func Neq(a, b Value) (Value, bool) {
	switch av := a.(type) {
	case *Int:
		bv, ok := b.(*Int)
		if !ok {
			return nil, false
		}
		return boolInt(av.V != bv.V), true
	case *String:
		bv, ok := b.(*String)
		if !ok {
			return nil, false
		}
		return boolInt(av.V != bv.V), true
	default:
		return nil, false
	}
}

// Lt and Gt are unimplemented by design: the original object model's
// IsLessThan/IsGreaterThan unconditionally return NULL, so every use of
// '<' or '>' is "Illegal Operation" regardless of operand types.
func Lt(a, b Value) (Value, bool) { return nil, false }
func Gt(a, b Value) (Value, bool) { return nil, false }

// IsTrue reports Adamite truthiness. Int and Char are truthy when
// nonzero. String truthiness is inverted from the intuitive reading: a
// string is "true" iff it equals "". Every other tag (Array, Function,
// Record, Instance) is unconditionally true.
func IsTrue(v Value) bool {
	switch t := v.(type) {
	case *Int:
		return t.V != 0
	case *Char:
		return t.V != 0
	case *String:
		return t.V == ""
	default:
		return true
	}
}

// SizeofType reports the byte size of a declared type word, mirroring
// INTERPRETER_VisitSizeof's fixed host sizes.
func SizeofType(word string) int {
	switch word {
	case "int":
		return 8
	case "char":
		return 1
	case "str":
		return 8 // pointer-sized, strings are heap-allocated buffers
	default:
		return 8
	}
}

// SizeofValue reports the byte size of a runtime value's own tag: a
// String is its byte length, an Array is its length times its element
// type's size, everything else falls back to a fixed host size.
func SizeofValue(v Value) int {
	switch t := v.(type) {
	case *Int:
		return 8
	case *Char:
		return 1
	case *String:
		return len(t.V)
	case *Array:
		return len(t.Elems) * SizeofType(t.ElemType)
	default:
		return 8
	}
}
