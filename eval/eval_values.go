package eval

import (
	"github.com/akashmaji946/adamite/ast"
	"github.com/akashmaji946/adamite/value"
)

// zeroValue builds the default value a declared-but-uninitialized name
// of typeWord gets. An "inst" variable only gets a concrete shape once
// it's assigned the result of calling a struct's name as a
// constructor; declared with no initializer, it has no template yet,
// so it starts out as a plain Int 0.
func (e *Evaluator) zeroValue(n ast.Node, typeWord string) (value.Value, *RuntimeError) {
	switch typeWord {
	case "int":
		return &value.Int{V: 0}, nil
	case "char":
		return &value.Char{V: 0}, nil
	case "str":
		return &value.String{V: ""}, nil
	default:
		return &value.Int{V: 0}, nil
	}
}

func (e *Evaluator) zeroInstance(n ast.Node, rec *value.Record) (*value.Instance, *RuntimeError) {
	fields := make([]value.Value, len(rec.FieldNames))
	for i, ft := range rec.FieldTypes {
		zv, zerr := e.zeroValue(n, ft)
		if zerr != nil {
			return nil, zerr
		}
		fields[i] = zv
	}
	return &value.Instance{Of: rec, Fields: fields}, nil
}

// coerce applies Adamite's implicit conversions toward a char-typed
// destination: a String narrows to its first byte, an Int narrows to
// its low byte. Every other destination passes v through unchanged.
func coerce(target string, v value.Value) value.Value {
	if target != "char" {
		return v
	}
	switch tv := v.(type) {
	case *value.Char:
		return tv
	case *value.Int:
		return &value.Char{V: tv.V & 0xFF}
	case *value.String:
		if len(tv.V) > 0 {
			return &value.Char{V: int64(tv.V[0])}
		}
		return &value.Char{V: 0}
	default:
		return v
	}
}

// typeMatches reports whether v is an acceptable argument for a
// parameter declared as word, allowing for the same char conversions
// coerce performs.
func typeMatches(word string, v value.Value) bool {
	switch word {
	case "int":
		_, ok := v.(*value.Int)
		return ok
	case "char":
		switch v.(type) {
		case *value.Char, *value.Int, *value.String:
			return true
		}
		return false
	case "str":
		_, ok := v.(*value.String)
		return ok
	case "inst":
		_, ok := v.(*value.Instance)
		return ok
	default:
		return true
	}
}

// tagToTypeWord infers an array literal's element type word from its
// first element's runtime tag.
func tagToTypeWord(t value.Tag) string {
	switch t {
	case value.TagInt:
		return "int"
	case value.TagChar:
		return "char"
	case value.TagString:
		return "str"
	default:
		return "inst"
	}
}
