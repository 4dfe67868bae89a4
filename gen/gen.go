// Package gen generates Go source code for a flag set domain:
// an item type with one constant per item, and a set type with
// group constants and the full set algebra.
//
// Given items Monday..Sunday with item type Weekday and set type
// Weekdays, the generated code looks like this (abbreviated):
//
//	type Weekday uint8
//
//	const (
//		Monday Weekday = iota
//		...
//	)
//
//	type Weekdays uint8
//
//	const (
//		Weekend Weekdays = 1<<Saturday | 1<<Sunday
//	)
//
//	func (item Weekday) Set() Weekdays
//	func (s Weekdays) With(x Weekdays) Weekdays
//	func (s Weekdays) All() iter.Seq[Weekday]
//	...
//
// Domains of more than 64 items use flagset.Uint128 as the
// underlying type of the set, with group values held in variables
// rather than constants.
package gen

import (
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"go/token"
	"go/types"
	"strings"

	"github.com/rogpeppe/flagset"
	"github.com/rogpeppe/flagset/layout"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrNameCollision     = errors.New("name collision")
)

// Config holds the naming information needed to generate code
// for a layout.
type Config struct {
	// Package holds the name of the generated package.
	Package string

	// Item holds the name of the item type.
	Item string

	// Set holds the name of the set type.
	Set string

	// Source holds the name of the declaration file, if any.
	// It is mentioned in the generated header.
	Source string

	// JSON causes JSON marshaling methods to be generated.
	JSON bool

	// YAML causes YAML marshaling methods to be generated.
	YAML bool
}

// importNames holds the package names that generated code may refer to.
var importNames = []string{"fmt", "iter", "bits", "slices", "strconv", "flagset", "yaml"}

// Generate returns gofmt-formatted Go source implementing the given
// layout with the names in cfg.
func Generate(cfg Config, l *layout.Layout) ([]byte, error) {
	if err := checkNames(cfg, l); err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := codeTemplate.Execute(&buf, newParams(cfg, l)); err != nil {
		return nil, fmt.Errorf("cannot execute template: %v", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("cannot format generated code: %v", err)
	}
	return src, nil
}

// Identifier describes a package-level identifier declared by
// generated code.
type Identifier struct {
	Name string
	What string
}

// Identifiers returns the package-level identifiers declared by code
// generated with the given config and layout, in the order they are
// checked for collisions.
func Identifiers(cfg Config, l *layout.Layout) []Identifier {
	ids := []Identifier{
		{cfg.Item, "item type"},
		{cfg.Set, "set type"},
	}
	for _, name := range []string{
		cfg.Set + "Empty",
		cfg.Set + "Full",
		cfg.Set + "Of",
		cfg.Set + "FromItems",
		cfg.Set + "FromSets",
		cfg.Set + "FromOptional",
		"Collect" + cfg.Set,
		"Parse" + cfg.Item,
		cfg.Item + "Count",
		cfg.Item + "Values",
		"_" + cfg.Item + "_names",
		"_" + cfg.Item + "_byName",
	} {
		ids = append(ids, Identifier{name, "generated name"})
	}
	for _, it := range l.Items {
		ids = append(ids, Identifier{it.Name, "item"})
	}
	for _, g := range l.Groups {
		ids = append(ids, Identifier{g.Name, "group"})
	}
	return ids
}

func checkNames(cfg Config, l *layout.Layout) error {
	if !token.IsIdentifier(cfg.Package) || cfg.Package == "_" {
		return fmt.Errorf("package name %q: %w", cfg.Package, ErrInvalidIdentifier)
	}
	seen := make(map[string]string)
	for _, id := range Identifiers(cfg, l) {
		if err := checkIdentifier(id.Name); err != nil {
			return fmt.Errorf("%s %q: %w", id.What, id.Name, err)
		}
		if prev, ok := seen[id.Name]; ok {
			return fmt.Errorf("%s %q clashes with %s: %w", id.What, id.Name, prev, ErrNameCollision)
		}
		seen[id.Name] = id.What
	}
	return nil
}

// checkIdentifier checks that name can be used as a package-level
// name in generated code without hiding anything the code uses.
func checkIdentifier(name string) error {
	switch {
	case !token.IsIdentifier(name) || name == "_" || name == "init":
		return ErrInvalidIdentifier
	case types.Universe.Lookup(name) != nil:
		return fmt.Errorf("%w (predeclared)", ErrNameCollision)
	}
	for _, imp := range importNames {
		if name == imp {
			return fmt.Errorf("%w (package name)", ErrNameCollision)
		}
	}
	return nil
}

type params struct {
	Config
	Wide   bool
	Word   string
	Count  int
	Items  []layout.Item
	Groups []groupParams
	Full   string
}

type groupParams struct {
	Name    string
	Doc     string
	Members []string
	Value   string
}

func newParams(cfg Config, l *layout.Layout) params {
	p := params{
		Config: cfg,
		Wide:   l.Width == layout.Width128,
		Word:   l.Width.GoType(),
		Count:  len(l.Items),
		Items:  l.Items,
	}
	if p.Wide {
		p.Full = wideLiteral(cfg.Set, l.Full)
	}
	for _, g := range l.Groups {
		gp := groupParams{
			Name:    g.Name,
			Doc:     describeMembers(g.Members),
			Members: g.Members,
		}
		switch {
		case p.Wide:
			gp.Value = wideLiteral(cfg.Set, g.Mask)
		case len(g.Members) == 0:
			gp.Value = "0"
		default:
			shifts := make([]string, len(g.Members))
			for i, m := range g.Members {
				shifts[i] = "1<<" + m
			}
			gp.Value = strings.Join(shifts, " | ")
		}
		p.Groups = append(p.Groups, gp)
	}
	return p
}

func wideLiteral(typeName string, x flagset.Uint128) string {
	return fmt.Sprintf("%s{Lo: %#x, Hi: %#x}", typeName, x.Lo, x.Hi)
}

func describeMembers(members []string) string {
	switch len(members) {
	case 0:
		return "no items"
	case 1:
		return members[0]
	}
	return strings.Join(members[:len(members)-1], ", ") + " and " + members[len(members)-1]
}
