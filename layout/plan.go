package layout

import (
	"fmt"

	"github.com/willf/bitset"

	"github.com/rogpeppe/flagset"
)

// Width holds the number of bits in a set word.
type Width uint8

const (
	Width8   Width = 8
	Width16  Width = 16
	Width32  Width = 32
	Width64  Width = 64
	Width128 Width = 128
)

var widths = []Width{Width8, Width16, Width32, Width64, Width128}

// WidthFor returns the smallest width able to hold n items.
// It reports false if n is more than MaxItems.
func WidthFor(n int) (Width, bool) {
	for _, w := range widths {
		if n <= int(w) {
			return w, true
		}
	}
	return 0, false
}

// GoType returns the name of the Go type used for words
// of the given width.
func (w Width) GoType() string {
	if w == Width128 {
		return "flagset.Uint128"
	}
	return fmt.Sprintf("uint%d", w)
}

func (w Width) String() string {
	return fmt.Sprintf("%d bits", w)
}

// Layout describes the representation of a domain.
// A Layout should not be modified after it is created.
type Layout struct {
	// Width holds the size of the set word.
	Width Width

	// Items holds the items in declaration order.
	Items []Item

	// Groups holds the groups in declaration order.
	Groups []Group

	// Full holds the code of the set containing every item.
	Full flagset.Uint128

	codes  map[string]int
	groups map[string]int
}

// Item describes one item of a domain.
type Item struct {
	Name string

	// Index holds the position of the item in declaration order.
	Index int

	// Code holds 1<<Index.
	Code flagset.Uint128
}

// Group describes a named subset of a domain.
type Group struct {
	Name string

	// Members holds the names of the items in the group,
	// in declaration order.
	Members []string

	// Mask holds the union of the codes of the members.
	Mask flagset.Uint128
}

// Plan works out the layout for a validated spec. The same spec always
// produces the same layout.
//
// Plan panics if the spec has more than MaxItems items; Validate never
// returns such a spec.
func Plan(spec *Spec) *Layout {
	width, ok := WidthFor(len(spec.Items))
	if !ok {
		panic(fmt.Sprintf("layout: %d items in validated spec", len(spec.Items)))
	}
	l := &Layout{
		Width:  width,
		Items:  make([]Item, len(spec.Items)),
		Groups: make([]Group, len(spec.Groups)),
		Full:   flagset.Low128(uint(len(spec.Items))),
		codes:  make(map[string]int),
		groups: make(map[string]int),
	}
	members := make(map[string]*bitset.BitSet)
	for i, g := range spec.Groups {
		l.groups[g] = i
		members[g] = bitset.New(uint(len(spec.Items)))
	}
	for i, name := range spec.Items {
		l.codes[name] = i
		l.Items[i] = Item{
			Name:  name,
			Index: i,
			Code:  flagset.Bit128(uint(i)),
		}
		for _, g := range spec.ItemGroups[name] {
			members[g].Set(uint(i))
		}
	}
	for i, g := range spec.Groups {
		group := Group{
			Name:    g,
			Members: []string{},
		}
		bits := members[g]
		for j, ok := bits.NextSet(0); ok; j, ok = bits.NextSet(j + 1) {
			group.Members = append(group.Members, spec.Items[j])
			group.Mask = group.Mask.Or(flagset.Bit128(j))
		}
		l.Groups[i] = group
	}
	return l
}

// Code returns the code of the named item.
func (l *Layout) Code(name string) (flagset.Uint128, bool) {
	i, ok := l.codes[name]
	if !ok {
		return flagset.Uint128{}, false
	}
	return l.Items[i].Code, true
}

// Index returns the position of the named item.
func (l *Layout) Index(name string) (int, bool) {
	i, ok := l.codes[name]
	return i, ok
}

// Group returns the named group.
func (l *Layout) Group(name string) (Group, bool) {
	i, ok := l.groups[name]
	if !ok {
		return Group{}, false
	}
	return l.Groups[i], true
}
