package flagset

import (
	"fmt"
	"iter"
)

// Item is implemented by item types. S is the
// corresponding set type.
type Item[S any] interface {
	comparable
	fmt.Stringer

	// Set returns the set holding only the receiver.
	Set() S
}

// Set is implemented by set types. S is the set type itself
// and I is the type of its items.
//
// All the methods treat the receiver as a value; none of them
// modify it.
type Set[S any, I any] interface {
	comparable
	fmt.Stringer

	// Len returns the number of items in the set.
	Len() int

	// IsEmpty reports whether the set holds no items.
	IsEmpty() bool

	// IsFull reports whether the set holds every item of the domain.
	IsFull() bool

	// Contains reports whether every item of x is in the set.
	// Every set contains the empty set.
	Contains(x S) bool

	// Has reports whether the set holds the given item.
	Has(item I) bool

	// HasOverlap reports whether the set and x have any item in common.
	HasOverlap(x S) bool

	// Overlap returns the items that are in both the set and x.
	Overlap(x S) S

	// With returns the union of the set and x.
	With(x S) S

	// Without returns the items of the set that are not in x.
	Without(x S) S

	// Missing returns the items of the domain that are not in the set.
	Missing() S

	// Retained returns the items of the set for which keep returns true.
	Retained(keep func(I) bool) S

	// All returns an iterator over the items in the set, in declaration
	// order. Each call starts a fresh traversal.
	All() iter.Seq[I]

	// Items returns the items in the set, in declaration order.
	Items() []I
}

// Mutable is implemented by pointers to set types.
type Mutable[S any, I any] interface {
	*S

	// Invert replaces the set with its complement.
	Invert()

	// Insert adds the items of x.
	Insert(x S)

	// Remove removes the items of x.
	Remove(x S)

	// Keep removes every item that is not in x.
	Keep(x S)

	// Retain removes every item for which keep returns false.
	// keep is called once for each item in the set, in declaration order.
	Retain(keep func(I) bool)
}

// Collect returns the set of all the items produced by seq.
// Duplicate items are allowed.
func Collect[S Set[S, I], I Item[S]](seq iter.Seq[I]) S {
	var s S
	for item := range seq {
		s = s.With(item.Set())
	}
	return s
}

// Union returns the union of all the given sets.
func Union[S interface{ With(S) S }](sets ...S) S {
	var s S
	for _, x := range sets {
		s = s.With(x)
	}
	return s
}

// Extend adds all the items produced by seq to *s.
func Extend[P Mutable[S, I], S Set[S, I], I Item[S]](s P, seq iter.Seq[I]) {
	for item := range seq {
		s.Insert(item.Set())
	}
}
