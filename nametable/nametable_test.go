package nametable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/adamite/nametable"
	"github.com/akashmaji946/adamite/value"
)

func TestTable_GetMissing(t *testing.T) {
	tbl := nametable.New()
	_, ok := tbl.Get("x")
	assert.False(t, ok)
}

func TestTable_AssignAndGet(t *testing.T) {
	tbl := nametable.New()
	tbl.Assign("x", &value.Int{V: 7})

	v, ok := tbl.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &value.Int{V: 7}, v)
}

func TestTable_AssignOverwritesExistingBinding(t *testing.T) {
	// There is no scoping: a second Assign to the same name always
	// replaces the first, even across what would be function-call
	// boundaries in a scoped language.
	tbl := nametable.New()
	tbl.Assign("x", &value.Int{V: 1})
	tbl.Assign("x", &value.Int{V: 2})

	v, ok := tbl.Get("x")
	assert.True(t, ok)
	assert.Equal(t, &value.Int{V: 2}, v)
}

func TestTable_Has(t *testing.T) {
	tbl := nametable.New()
	assert.False(t, tbl.Has("x"))
	tbl.Assign("x", &value.Int{V: 0})
	assert.True(t, tbl.Has("x"))
}

func TestTable_Delete(t *testing.T) {
	tbl := nametable.New()
	tbl.Assign("x", &value.Int{V: 0})
	tbl.Delete("x")
	assert.False(t, tbl.Has("x"))
}
