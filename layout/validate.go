// Package layout validates flag set declarations and plans their
// representation: which bit each item occupies, how wide the set
// word must be and which bits make up each group.
package layout

import (
	"errors"
	"fmt"
	"slices"
)

// MaxItems holds the largest number of items a domain may declare.
const MaxItems = 128

var (
	ErrTooManyItems     = errors.New("too many items")
	ErrExplicitCode     = errors.New("explicit item codes are not allowed")
	ErrUnsupportedShape = errors.New("items cannot hold fields")
	ErrUndeclaredGroup  = errors.New("undeclared group")
	ErrDuplicateGroup   = errors.New("group declared more than once")
	ErrNoItems          = errors.New("no items declared")
	ErrDuplicateItem    = errors.New("item declared more than once")
	ErrEmptyName        = errors.New("empty name")
)

// Decl holds a raw declaration as produced by a front end such as
// the decl package. It has not been checked for consistency.
type Decl struct {
	Items  []ItemDecl
	Groups []GroupDecl
}

// ItemDecl holds the declaration of a single item.
type ItemDecl struct {
	Name string

	// Groups holds the names of the groups the item is tagged with.
	Groups []string

	// Code holds an explicit numeric code as written in the
	// declaration. Codes are always derived from the item's
	// position, so a non-empty Code is an error.
	Code string

	// Fields holds the names of any fields attached to the item.
	// Items are bare tags, so a non-empty Fields is an error.
	Fields []string

	// Line holds the source line of the declaration, or 0 if unknown.
	Line int
}

// GroupDecl holds the declaration of a group.
type GroupDecl struct {
	Name string
	Line int
}

// Spec holds a validated declaration.
type Spec struct {
	// Items holds the item names in declaration order.
	Items []string

	// ItemGroups maps each item name to the groups it is tagged with,
	// in the order the tags were first given.
	ItemGroups map[string][]string

	// Groups holds the declared group names in declaration order.
	Groups []string
}

// Error describes a problem found in a declaration.
type Error struct {
	// Kind holds one of the Err* variables defined in this package.
	Kind error

	// What holds "item" or "group", or is empty when the
	// problem concerns the declaration as a whole.
	What string

	// Name holds the name of the offending item or group.
	Name string

	// Index holds the position of the offending item or group
	// in its declaration list.
	Index int

	// Line holds the source line, or 0 if unknown.
	Line int

	// Detail holds any extra information, such as the name
	// of an undeclared group.
	Detail string
}

func (e *Error) Error() string {
	var pos string
	if e.Line > 0 {
		pos = fmt.Sprintf("line %d: ", e.Line)
	}
	if e.What == "" {
		return pos + e.Kind.Error()
	}
	msg := fmt.Sprintf("%s%s %d", pos, e.What, e.Index)
	if e.Name != "" {
		msg += fmt.Sprintf(" (%s)", e.Name)
	}
	msg += ": " + e.Kind.Error()
	if e.Detail != "" {
		msg += " " + e.Detail
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// Validate checks the declaration d and returns the resulting Spec.
// Any returned error is of type *Error; the first problem
// found in declaration order is reported.
func Validate(d Decl) (*Spec, error) {
	if len(d.Items) == 0 {
		return nil, &Error{Kind: ErrNoItems}
	}
	if len(d.Items) > MaxItems {
		it := d.Items[MaxItems]
		return nil, &Error{
			Kind:   ErrTooManyItems,
			What:   "item",
			Name:   it.Name,
			Index:  MaxItems,
			Line:   it.Line,
			Detail: fmt.Sprintf("(%d declared, at most %d allowed)", len(d.Items), MaxItems),
		}
	}
	spec := &Spec{
		Items:      make([]string, 0, len(d.Items)),
		ItemGroups: make(map[string][]string),
		Groups:     make([]string, 0, len(d.Groups)),
	}
	// First pass: the items themselves, collecting group tags.
	seen := make(map[string]bool)
	for i, it := range d.Items {
		itemErr := func(kind error, detail string) error {
			return &Error{Kind: kind, What: "item", Name: it.Name, Index: i, Line: it.Line, Detail: detail}
		}
		switch {
		case it.Name == "":
			return nil, itemErr(ErrEmptyName, "")
		case it.Code != "":
			return nil, itemErr(ErrExplicitCode, fmt.Sprintf("(code %s)", it.Code))
		case len(it.Fields) > 0:
			return nil, itemErr(ErrUnsupportedShape, fmt.Sprintf("(fields %q)", it.Fields))
		case seen[it.Name]:
			return nil, itemErr(ErrDuplicateItem, "")
		}
		seen[it.Name] = true
		spec.Items = append(spec.Items, it.Name)
		var tags []string
		for _, g := range it.Groups {
			if !slices.Contains(tags, g) {
				tags = append(tags, g)
			}
		}
		if len(tags) > 0 {
			spec.ItemGroups[it.Name] = tags
		}
	}
	declared := make(map[string]bool)
	for i, g := range d.Groups {
		groupErr := func(kind error) error {
			return &Error{Kind: kind, What: "group", Name: g.Name, Index: i, Line: g.Line}
		}
		switch {
		case g.Name == "":
			return nil, groupErr(ErrEmptyName)
		case declared[g.Name]:
			return nil, groupErr(ErrDuplicateGroup)
		}
		declared[g.Name] = true
		spec.Groups = append(spec.Groups, g.Name)
	}
	// Second pass: every tag must name a declared group.
	for i, it := range d.Items {
		for _, g := range spec.ItemGroups[it.Name] {
			if !declared[g] {
				return nil, &Error{
					Kind:   ErrUndeclaredGroup,
					What:   "item",
					Name:   it.Name,
					Index:  i,
					Line:   it.Line,
					Detail: fmt.Sprintf("%q", g),
				}
			}
		}
	}
	return spec, nil
}
