package arena

import (
	"testing"

	"github.com/akashmaji946/adamite/value"
	"github.com/stretchr/testify/assert"
)

func TestRegisterAndDeref(t *testing.T) {
	a := New()
	v := &value.Int{V: 42}
	addr := a.Register(v)
	got, ok := a.Deref(addr)
	assert.True(t, ok)
	assert.Same(t, v, got)
}

func TestRegisterIsIdempotent(t *testing.T) {
	a := New()
	v := &value.Int{V: 1}
	assert.Equal(t, a.Register(v), a.Register(v))
}

func TestFreeThenDerefFails(t *testing.T) {
	a := New()
	addr := a.Register(&value.Int{V: 1})
	a.Free(addr)
	_, ok := a.Deref(addr)
	assert.False(t, ok)
}

func TestDoubleFreePanics(t *testing.T) {
	a := New()
	addr := a.Register(&value.Int{V: 1})
	a.Free(addr)
	assert.Panics(t, func() { a.Free(addr) })
}
