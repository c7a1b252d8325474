// Package adding sums integer lists through three different access paths.
package adding

import "iter"

// List is a read-only integer list.
type List interface {
	Len() int
	At(i int) int
	All() iter.Seq[int]
	Values() []int
}

// IntSlice is the slice-backed List.
type IntSlice []int

// Len returns the number of elements.
func (s IntSlice) Len() int { return len(s) }

// At returns the element at index i.
func (s IntSlice) At(i int) int { return s[i] }

// All yields each element in order.
func (s IntSlice) All() iter.Seq[int] {
	return func(yield func(int) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Values returns a copy of the elements.
func (s IntSlice) Values() []int {
	return append([]int(nil), s...)
}

// Machine totals a List.
type Machine struct {
	list List
}

// NewMachine creates an adding machine over list.
func NewMachine(list List) *Machine {
	return &Machine{list: list}
}

// TotalUsingLoop reads Len once and then each index with At.
func (m *Machine) TotalUsingLoop() int {
	total := 0

	n := m.list.Len()
	for i := 0; i < n; i++ {
		total += m.list.At(i)
	}

	return total
}

// TotalUsingIterator ranges over All once.
func (m *Machine) TotalUsingIterator() int {
	total := 0
	for v := range m.list.All() {
		total += v
	}

	return total
}

// TotalUsingSlice sums a single Values snapshot.
func (m *Machine) TotalUsingSlice() int {
	total := 0
	for _, v := range m.list.Values() {
		total += v
	}

	return total
}
