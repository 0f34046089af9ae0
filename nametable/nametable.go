// Package nametable implements Adamite's single flat variable table.
// Adamite has no lexical scoping or closures: every name — globals,
// function parameters, loop variables — lives in one map for the whole
// run, the same way the original interpreter's NAMES_VariableNames /
// NAMES_Variables parallel arrays work. Re-entering a function whose
// parameter name collides with an outer variable overwrites that outer
// binding for good; that is a pre-existing property of the language,
// not a bug this port fixes.
package nametable

import "github.com/akashmaji946/adamite/value"

// Table is the single flat binding set for a running program.
type Table struct {
	vars map[string]value.Value
}

// New creates a Table pre-seeded with the language's three constants:
// true = Int 1, false = Int 0, null = Int 0. Nothing stops a program
// from reassigning them — the table has no notion of read-only names.
func New() *Table {
	t := &Table{vars: make(map[string]value.Value)}
	t.vars["true"] = &value.Int{V: 1}
	t.vars["false"] = &value.Int{V: 0}
	t.vars["null"] = &value.Int{V: 0}
	return t
}

// Get looks up name, reporting whether it is bound.
func (t *Table) Get(name string) (value.Value, bool) {
	v, ok := t.vars[name]
	return v, ok
}

// Assign binds name to v, overwriting any existing binding — there is
// no scope to shadow into, so this is also how declarations work.
func (t *Table) Assign(name string, v value.Value) {
	t.vars[name] = v
}

// Has reports whether name is currently bound.
func (t *Table) Has(name string) bool {
	_, ok := t.vars[name]
	return ok
}

// Delete removes a binding. The evaluator does not call it: function
// parameters stay bound after a call returns.
func (t *Table) Delete(name string) {
	delete(t.vars, name)
}
