// Package decl reads flag set declaration files.
//
// A declaration file is a YAML document naming the generated types
// and listing the items and groups of the domain:
//
//	package: week
//	item: Weekday
//	set: Weekdays
//	json: true
//	groups: [Weekend, Closed]
//	items:
//	- Monday
//	- Tuesday
//	- Wednesday
//	- Thursday
//	- Friday
//	- name: Saturday
//	  groups: [Weekend]
//	- name: Sunday
//	  groups: [Weekend, Closed]
//
// An item is either a plain name or a mapping holding its name and
// group tags. The code and fields keys are accepted by the parser so
// that layout.Validate can report them precisely; neither is allowed
// in a valid declaration.
package decl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rogpeppe/flagset/gen"
	"github.com/rogpeppe/flagset/layout"
)

// File holds the contents of a declaration file.
type File struct {
	// Package holds the Go package name for generated code.
	// It may be empty, in which case the package must be
	// provided some other way.
	Package string `yaml:"package"`

	// Item holds the name of the generated item type.
	Item string `yaml:"item"`

	// Set holds the name of the generated set type.
	Set string `yaml:"set"`

	// JSON and YAML request serialization methods.
	JSON bool `yaml:"json"`
	YAML bool `yaml:"yaml"`

	Groups []Group `yaml:"groups"`
	Items  []Item  `yaml:"items"`
}

// Group is a group declaration.
type Group struct {
	Name string
	Line int
}

// Item is an item declaration.
type Item struct {
	Name   string
	Groups []string
	Code   string
	Fields []string
	Line   int
}

// Parse parses the contents of a declaration file.
func Parse(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty declaration")
		}
		return nil, err
	}
	if f.Item == "" {
		return nil, fmt.Errorf("no item type name declared")
	}
	if f.Set == "" {
		return nil, fmt.Errorf("no set type name declared")
	}
	return &f, nil
}

// ParseFile reads and parses the named declaration file.
func ParseFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Decl returns the raw declaration, ready for validation.
func (f *File) Decl() layout.Decl {
	var d layout.Decl
	for _, item := range f.Items {
		d.Items = append(d.Items, layout.ItemDecl{
			Name:   item.Name,
			Groups: item.Groups,
			Code:   item.Code,
			Fields: item.Fields,
			Line:   item.Line,
		})
	}
	for _, g := range f.Groups {
		d.Groups = append(d.Groups, layout.GroupDecl{
			Name: g.Name,
			Line: g.Line,
		})
	}
	return d
}

// Layout validates the declaration and plans its layout.
func (f *File) Layout() (*layout.Layout, error) {
	spec, err := layout.Validate(f.Decl())
	if err != nil {
		return nil, err
	}
	return layout.Plan(spec), nil
}

// Config returns the generator configuration for the file.
// If pkg is non-empty, it overrides the package declared in the file.
// The source is recorded in the generated header.
func (f *File) Config(pkg, source string) gen.Config {
	if pkg == "" {
		pkg = f.Package
	}
	return gen.Config{
		Package: pkg,
		Item:    f.Item,
		Set:     f.Set,
		Source:  source,
		JSON:    f.JSON,
		YAML:    f.YAML,
	}
}

// OutputPath returns the default name of the generated file for the
// declaration at path: the same directory and base name, with the
// extension replaced by _flagset.go.
func OutputPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "_flagset.go"
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *Group) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: group must be a name", n.Line)
	}
	*g = Group{
		Name: n.Value,
		Line: n.Line,
	}
	return nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (item *Item) UnmarshalYAML(n *yaml.Node) error {
	switch n.Kind {
	case yaml.ScalarNode:
		*item = Item{
			Name: n.Value,
			Line: n.Line,
		}
		return nil
	case yaml.MappingNode:
	default:
		return fmt.Errorf("line %d: item must be a name or a mapping", n.Line)
	}
	x := Item{Line: n.Line}
	hasName := false
	for i := 0; i+1 < len(n.Content); i += 2 {
		key, val := n.Content[i], n.Content[i+1]
		var err error
		switch key.Value {
		case "name":
			hasName = true
			err = val.Decode(&x.Name)
		case "groups":
			err = val.Decode(&x.Groups)
		case "code":
			if val.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: item code must be a scalar", val.Line)
			}
			// An empty code is still an explicit code.
			x.Code = val.Value
			if x.Code == "" {
				x.Code = strconv.Quote(val.Value)
			}
		case "fields":
			err = decodeFields(val, &x.Fields)
		default:
			return fmt.Errorf("line %d: field %s not found in item", key.Line, key.Value)
		}
		if err != nil {
			return err
		}
	}
	if !hasName {
		return fmt.Errorf("line %d: item has no name", n.Line)
	}
	*item = x
	return nil
}

// decodeFields decodes an item's payload fields, which
// may be given as a sequence of names or as a mapping
// from name to type.
func decodeFields(n *yaml.Node, fields *[]string) error {
	switch n.Kind {
	case yaml.SequenceNode:
		return n.Decode(fields)
	case yaml.MappingNode:
		for i := 0; i < len(n.Content); i += 2 {
			*fields = append(*fields, n.Content[i].Value)
		}
		return nil
	case yaml.ScalarNode:
		*fields = []string{n.Value}
		return nil
	}
	return fmt.Errorf("line %d: invalid item fields", n.Line)
}
