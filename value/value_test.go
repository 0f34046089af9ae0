package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd_IntAndString(t *testing.T) {
	r, ok := Add(&Int{V: 2}, &Int{V: 3})
	assert.True(t, ok)
	assert.Equal(t, int64(5), r.(*Int).V)

	r, ok = Add(&String{V: "ab"}, &String{V: "cd"})
	assert.True(t, ok)
	assert.Equal(t, "abcd", r.(*String).V)

	_, ok = Add(&Int{V: 1}, &String{V: "x"})
	assert.False(t, ok)
}

func TestLtGt_AlwaysIllegal(t *testing.T) {
	_, ok := Lt(&Int{V: 1}, &Int{V: 2})
	assert.False(t, ok)
	_, ok = Gt(&Int{V: 1}, &Int{V: 2})
	assert.False(t, ok)
}

func TestIsTrue_StringIsInverted(t *testing.T) {
	assert.True(t, IsTrue(&String{V: ""}))
	assert.False(t, IsTrue(&String{V: "nonempty"}))
	assert.True(t, IsTrue(&Int{V: 1}))
	assert.False(t, IsTrue(&Int{V: 0}))
}

func TestIsTrue_ArrayAndFunctionAlwaysTrue(t *testing.T) {
	assert.True(t, IsTrue(&Array{ElemType: "int"}))
	assert.True(t, IsTrue(&Function{Name: "f"}))
}

func TestSizeof(t *testing.T) {
	assert.Equal(t, 8, SizeofType("int"))
	assert.Equal(t, 1, SizeofType("char"))
	assert.Equal(t, 8, SizeofValue(&Int{V: 0}))
	assert.Equal(t, 1, SizeofValue(&Char{V: 0}))
	assert.Equal(t, 4, SizeofValue(&String{V: "abcd"}))
	assert.Equal(t, 4, SizeofValue(&Array{ElemType: "char", Elems: []Value{
		&Char{V: 'a'}, &Char{V: 'b'}, &Char{V: 'c'}, &Char{V: 'd'},
	}}))
}
