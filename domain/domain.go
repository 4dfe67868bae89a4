// Package domain implements flag sets over domains that are built at
// run time from a layout rather than generated ahead of time.
//
// A Domain, its Items and its Sets follow exactly the same rules as
// generated types; the only difference is that the domain is a value
// rather than a type, so combining sets from two different domains is
// detected at run time (it panics) rather than at compile time.
package domain

import (
	"fmt"
	"iter"

	"github.com/rogpeppe/flagset"
	"github.com/rogpeppe/flagset/layout"
)

// Domain holds a closed set of items. It is immutable
// and may be used concurrently.
type Domain struct {
	layout *layout.Layout
	items  []Item
	byName map[string]Item
	groups map[string]Set
	full   Set
}

// New returns a domain for the given layout.
// The layout must not be changed afterwards.
func New(l *layout.Layout) *Domain {
	d := &Domain{
		layout: l,
		items:  make([]Item, len(l.Items)),
		byName: make(map[string]Item),
		groups: make(map[string]Set),
	}
	for i, it := range l.Items {
		item := Item{d: d, index: uint8(i)}
		d.items[i] = item
		d.byName[it.Name] = item
	}
	for _, g := range l.Groups {
		d.groups[g.Name] = Set{d: d, bits: g.Mask}
	}
	d.full = Set{d: d, bits: l.Full}
	return d
}

// Build validates the given declaration and returns a domain for it.
func Build(decl layout.Decl) (*Domain, error) {
	spec, err := layout.Validate(decl)
	if err != nil {
		return nil, err
	}
	return New(layout.Plan(spec)), nil
}

// Layout returns the layout the domain was created from.
func (d *Domain) Layout() *layout.Layout {
	return d.layout
}

// Width returns the width of the domain's set word.
func (d *Domain) Width() layout.Width {
	return d.layout.Width
}

// Len returns the number of items in the domain.
func (d *Domain) Len() int {
	return len(d.items)
}

// Items returns all the items of the domain in declaration order.
func (d *Domain) Items() []Item {
	return append([]Item(nil), d.items...)
}

// Item returns the item with the given name.
func (d *Domain) Item(name string) (Item, bool) {
	item, ok := d.byName[name]
	return item, ok
}

// MustItem is like Item but panics if there is no such item.
func (d *Domain) MustItem(name string) Item {
	item, ok := d.byName[name]
	if !ok {
		panic(fmt.Sprintf("domain: no item named %q", name))
	}
	return item
}

// ParseItem returns the item with the given name. The error
// wraps flagset.ErrUnknownItem if there is no such item.
func (d *Domain) ParseItem(name string) (Item, error) {
	item, ok := d.byName[name]
	if !ok {
		return Item{}, fmt.Errorf("%w %q", flagset.ErrUnknownItem, name)
	}
	return item, nil
}

// Group returns the named group.
func (d *Domain) Group(name string) (Set, bool) {
	s, ok := d.groups[name]
	return s, ok
}

// Groups returns an iterator over the domain's groups
// in declaration order.
func (d *Domain) Groups() iter.Seq2[string, Set] {
	return func(yield func(string, Set) bool) {
		for _, g := range d.layout.Groups {
			if !yield(g.Name, d.groups[g.Name]) {
				return
			}
		}
	}
}

// Empty returns the empty set of the domain.
func (d *Domain) Empty() Set {
	return Set{d: d}
}

// Full returns the set holding every item of the domain.
func (d *Domain) Full() Set {
	return d.full
}

// Of returns the set holding the given items.
func (d *Domain) Of(items ...Item) Set {
	s := d.Empty()
	for _, item := range items {
		s = s.With(item.Set())
	}
	return s
}

// FromSets returns the union of the given sets.
func (d *Domain) FromSets(sets []Set) Set {
	s := d.Empty()
	for _, x := range sets {
		s = s.With(x)
	}
	return s
}

// FromOptional returns the set holding item if ok is true,
// or the empty set otherwise.
func (d *Domain) FromOptional(item Item, ok bool) Set {
	if !ok {
		return d.Empty()
	}
	return d.Of(item)
}

// Collect returns the set holding all the items produced by seq.
func (d *Domain) Collect(seq iter.Seq[Item]) Set {
	s := d.Empty()
	for item := range seq {
		s = s.With(item.Set())
	}
	return s
}

func (d *Domain) name(index uint8) string {
	return d.layout.Items[index].Name
}

// Item is a member of a domain. The zero Item is not valid.
type Item struct {
	d     *Domain
	index uint8
}

// Domain returns the domain the item belongs to.
func (item Item) Domain() *Domain {
	return item.d
}

// Index returns the position of the item in declaration order.
func (item Item) Index() int {
	return int(item.index)
}

// Set returns the set holding only the item.
func (item Item) Set() Set {
	return Set{d: item.d, bits: flagset.Bit128(uint(item.index))}
}

// Compare returns -1, 0 or 1 depending on whether item is
// declared before, at the same position or after other.
func (item Item) Compare(other Item) int {
	switch {
	case item.index < other.index:
		return -1
	case item.index > other.index:
		return 1
	}
	return 0
}

// String returns the name of the item.
func (item Item) String() string {
	if item.d == nil {
		return "<invalid item>"
	}
	return item.d.name(item.index)
}

// MarshalText implements encoding.TextMarshaler by
// returning the item's name.
func (item Item) MarshalText() ([]byte, error) {
	if item.d == nil {
		return nil, fmt.Errorf("cannot marshal invalid item")
	}
	return []byte(item.String()), nil
}
