// Package enumfmt renders integer enumeration and bitmask values as the
// names they were declared with. Each enumeration registers a static
// table of (value, name) pairs once; formatting never reflects at runtime.
package enumfmt

import "sort"

// Member is one declared (value, name) association of an enumeration.
type Member struct {
	Value int64
	Name  string
}

// Table is the ordered member list of one enumeration. Members are kept
// sorted ascending by value; declaration order breaks ties.
type Table struct {
	name    string
	members []Member
}

// NewTable builds the table for an enumeration. The input order is the
// declaration order; it survives as the tie-break for equal values.
func NewTable(name string, members []Member) *Table {
	sorted := make([]Member, len(members))
	copy(sorted, members)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Value < sorted[j].Value
	})
	return &Table{name: name, members: sorted}
}

// Name returns the enumeration's name.
func (t *Table) Name() string { return t.name }

// Members returns the sorted member list. Callers must not mutate it.
func (t *Table) Members() []Member { return t.members }
