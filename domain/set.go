package domain

import (
	"fmt"
	"iter"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/flagset"
)

var _ = flagset.Collect[Set, Item]

// Set holds a subset of a domain. Sets are plain values; two sets of
// the same domain are equal (==) exactly when they hold the same items.
//
// The zero Set is empty and belongs to no domain. It adopts the
// domain of the first set it is combined with, so it may be used
// as the starting point for accumulating a set. Use Equal to compare
// a set that may be zero with a domain set.
type Set struct {
	d    *Domain
	bits flagset.Uint128
}

// Domain returns the domain the set belongs to, or nil for the zero Set.
func (s Set) Domain() *Domain {
	return s.d
}

// Bits returns the set's word.
func (s Set) Bits() flagset.Uint128 {
	return s.bits
}

// Len returns the number of items in the set.
func (s Set) Len() int {
	return s.bits.OnesCount()
}

// IsEmpty reports whether the set holds no items.
func (s Set) IsEmpty() bool {
	return s.bits.IsZero()
}

// IsFull reports whether the set holds every item of its domain.
// The zero Set is never full.
func (s Set) IsFull() bool {
	return s.d != nil && s.bits == s.d.full.bits
}

// Equal reports whether s and x hold the same items.
// Sets from different domains are never equal, except that
// empty sets are always equal.
func (s Set) Equal(x Set) bool {
	if s.bits != x.bits {
		return false
	}
	return s.bits.IsZero() || s.d == x.d
}

// Contains reports whether every item of x is also in s.
func (s Set) Contains(x Set) bool {
	s.join(x)
	return s.bits.And(x.bits) == x.bits
}

// Has reports whether s holds the given item.
func (s Set) Has(item Item) bool {
	s.join(item.Set())
	return s.bits.Test(uint(item.index))
}

// HasOverlap reports whether s and x have any item in common.
func (s Set) HasOverlap(x Set) bool {
	s.join(x)
	return !s.bits.And(x.bits).IsZero()
}

// Overlap returns the items that are in both s and x.
func (s Set) Overlap(x Set) Set {
	return Set{s.join(x), s.bits.And(x.bits)}
}

// With returns the union of s and x.
func (s Set) With(x Set) Set {
	return Set{s.join(x), s.bits.Or(x.bits)}
}

// Without returns the items of s that are not in x.
func (s Set) Without(x Set) Set {
	return Set{s.join(x), s.bits.AndNot(x.bits)}
}

// Missing returns the items of the domain that are not in s.
// The result only ever holds items of the domain, whatever the
// width of the underlying word. The complement of the zero
// Set is the zero Set, as it has no domain to complement against.
func (s Set) Missing() Set {
	if s.d == nil {
		return s
	}
	return Set{s.d, s.d.full.bits.AndNot(s.bits)}
}

// Invert replaces s with its complement. The zero Set has no
// domain, so inverting it leaves it empty rather than full.
func (s *Set) Invert() {
	*s = s.Missing()
}

// Insert adds the items of x to s.
func (s *Set) Insert(x Set) {
	*s = s.With(x)
}

// Remove removes the items of x from s.
func (s *Set) Remove(x Set) {
	*s = s.Without(x)
}

// Keep removes the items of s that are not in x.
func (s *Set) Keep(x Set) {
	*s = s.Overlap(x)
}

// Retain removes the items of s for which keep returns false.
// keep is called once for each item in s, in declaration order.
func (s *Set) Retain(keep func(Item) bool) {
	for item := range s.All() {
		if !keep(item) {
			s.bits = s.bits.AndNot(flagset.Bit128(uint(item.index)))
		}
	}
}

// Retained returns the items of s for which keep returns true.
func (s Set) Retained(keep func(Item) bool) Set {
	s.Retain(keep)
	return s
}

// All returns an iterator over the items of s in declaration order.
// The iterator may be used any number of times.
func (s Set) All() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		if s.d == nil {
			return
		}
		for _, item := range s.d.items {
			if s.bits.Test(uint(item.index)) && !yield(item) {
				return
			}
		}
	}
}

// Items returns the items of s in declaration order.
func (s Set) Items() []Item {
	return slices.Collect(s.All())
}

// String formats the set as the list of its items,
// for example "[Saturday Sunday]".
func (s Set) String() string {
	return fmt.Sprint(s.Items())
}

// MarshalJSON implements json.Marshaler by encoding the set as
// an array of item names.
func (s Set) MarshalJSON() ([]byte, error) {
	return flagset.MarshalJSON(s.All())
}

// MarshalYAML implements yaml.Marshaler by encoding the set as
// a sequence of item names.
func (s Set) MarshalYAML() (any, error) {
	return flagset.MarshalYAML(s.All())
}

// DecodeJSON decodes a set of the domain from a JSON array of
// item names. Any other JSON value, null included, is an error
// wrapping flagset.ErrNotSequence.
func (d *Domain) DecodeJSON(data []byte) (Set, error) {
	names, err := flagset.DecodeJSONNames(data)
	if err != nil {
		return Set{}, err
	}
	return d.fromNames(names)
}

// DecodeYAML decodes a set of the domain from a YAML sequence of
// item names.
func (d *Domain) DecodeYAML(n *yaml.Node) (Set, error) {
	names, err := flagset.DecodeYAMLNames(n)
	if err != nil {
		return Set{}, err
	}
	return d.fromNames(names)
}

func (d *Domain) fromNames(names []string) (Set, error) {
	s := d.Empty()
	for _, name := range names {
		item, err := d.ParseItem(name)
		if err != nil {
			return Set{}, err
		}
		s.Insert(item.Set())
	}
	return s, nil
}

// join returns the domain shared by s and x.
func (s Set) join(x Set) *Domain {
	switch {
	case s.d == x.d || x.d == nil:
		return s.d
	case s.d == nil:
		return x.d
	}
	panic("domain: sets from different domains")
}
