package gen

import "text/template"

var codeTemplate = template.Must(template.New("").Parse(`
{{- if .Source -}}
// Code generated by flaggen from {{.Source}}; DO NOT EDIT.
{{- else -}}
// Code generated by flaggen; DO NOT EDIT.
{{- end}}

package {{.Package}}

import (
	"fmt"
	"iter"
{{- if not .Wide}}
	"math/bits"
{{- end}}
	"slices"
	"strconv"

	"github.com/rogpeppe/flagset"
{{- if .YAML}}
	"gopkg.in/yaml.v3"
{{- end}}
)

// {{.Item}} is an item of the {{.Set}} set.
// Items are ordered by declaration.
type {{.Item}} uint8

const (
{{- range $i, $item := .Items}}
	{{$item.Name}}{{if eq $i 0}} {{$.Item}} = iota{{end}}
{{- end}}
)

// {{.Item}}Count holds the number of {{.Item}} items.
const {{.Item}}Count = {{.Count}}

// {{.Item}}Values holds every {{.Item}} in declaration order.
var {{.Item}}Values = [...]{{.Item}}{
{{- range .Items}}
	{{.Name}},
{{- end}}
}

var _{{.Item}}_names = [...]string{
{{- range .Items}}
	{{.Name}}: {{printf "%q" .Name}},
{{- end}}
}

var _{{.Item}}_byName = map[string]{{.Item}}{
{{- range .Items}}
	{{printf "%q" .Name}}: {{.Name}},
{{- end}}
}

// Set returns the set holding only item.
func (item {{.Item}}) Set() {{.Set}} {
{{- if .Wide}}
	return {{.Set}}(flagset.Bit128(uint(item)))
{{- else}}
	return {{.Set}}(1) << item
{{- end}}
}

func (item {{.Item}}) String() string {
	if int(item) < len(_{{.Item}}_names) {
		return _{{.Item}}_names[item]
	}
	return "{{.Item}}(" + strconv.Itoa(int(item)) + ")"
}

// Parse{{.Item}} returns the item with the given name.
func Parse{{.Item}}(name string) ({{.Item}}, error) {
	if item, ok := _{{.Item}}_byName[name]; ok {
		return item, nil
	}
	return 0, fmt.Errorf("%w %q for {{.Item}}", flagset.ErrUnknownItem, name)
}
{{- if or .JSON .YAML}}

// MarshalText implements encoding.TextMarshaler.
func (item {{.Item}}) MarshalText() ([]byte, error) {
	if int(item) >= len(_{{.Item}}_names) {
		return nil, fmt.Errorf("invalid {{.Item}} %d", int(item))
	}
	return []byte(_{{.Item}}_names[item]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (item *{{.Item}}) UnmarshalText(data []byte) error {
	x, err := Parse{{.Item}}(string(data))
	if err != nil {
		return err
	}
	*item = x
	return nil
}
{{- end}}

// {{.Set}} holds a set of {{.Item}} items.
// The zero value is the empty set.
{{- if .Wide}}
type {{.Set}} flagset.Uint128

var (
	// {{.Set}}Empty holds no items.
	{{.Set}}Empty = {{.Set}}{}

	// {{.Set}}Full holds every {{.Item}}.
	{{.Set}}Full = {{.Full}}
)
{{- if .Groups}}

var (
{{- range $i, $g := .Groups}}
{{- if $i}}
{{end}}
	// {{$g.Name}} holds {{$g.Doc}}.
	{{$g.Name}} = {{$g.Value}}
{{- end}}
)
{{- end}}
{{- else}}
type {{.Set}} {{.Word}}

const (
	// {{.Set}}Empty holds no items.
	{{.Set}}Empty {{.Set}} = 0

	// {{.Set}}Full holds every {{.Item}}.
	{{.Set}}Full {{.Set}} = 1<<{{.Item}}Count - 1
)
{{- if .Groups}}

const (
{{- range $i, $g := .Groups}}
{{- if $i}}
{{end}}
	// {{$g.Name}} holds {{$g.Doc}}.
	{{$g.Name}} {{$.Set}} = {{$g.Value}}
{{- end}}
)
{{- end}}
{{- end}}

var _ = flagset.Collect[{{.Set}}, {{.Item}}]

// {{.Set}}Of returns the set holding the given items.
func {{.Set}}Of(items ...{{.Item}}) {{.Set}} {
	return {{.Set}}FromItems(items)
}

// {{.Set}}FromItems returns the set holding the given items.
// Duplicates are allowed.
func {{.Set}}FromItems(items []{{.Item}}) {{.Set}} {
	s := {{.Set}}Empty
	for _, item := range items {
		s = s.With(item.Set())
	}
	return s
}

// {{.Set}}FromSets returns the union of the given sets.
func {{.Set}}FromSets(sets []{{.Set}}) {{.Set}} {
	s := {{.Set}}Empty
	for _, x := range sets {
		s = s.With(x)
	}
	return s
}

// {{.Set}}FromOptional returns the set holding item if ok
// is true, and the empty set otherwise.
func {{.Set}}FromOptional(item {{.Item}}, ok bool) {{.Set}} {
	if !ok {
		return {{.Set}}Empty
	}
	return item.Set()
}

// Collect{{.Set}} returns the set holding all the items produced by seq.
func Collect{{.Set}}(seq iter.Seq[{{.Item}}]) {{.Set}} {
	return flagset.Collect[{{.Set}}](seq)
}

// Len returns the number of items in s.
func (s {{.Set}}) Len() int {
{{- if .Wide}}
	return flagset.Uint128(s).OnesCount()
{{- else}}
	return bits.OnesCount{{if eq .Word "uint8"}}8{{else if eq .Word "uint16"}}16{{else if eq .Word "uint32"}}32{{else}}64{{end}}({{.Word}}(s))
{{- end}}
}

// IsEmpty reports whether s holds no items.
func (s {{.Set}}) IsEmpty() bool {
	return s == {{.Set}}Empty
}

// IsFull reports whether s holds every item.
func (s {{.Set}}) IsFull() bool {
	return s == {{.Set}}Full
}

// Contains reports whether every item of x is in s.
func (s {{.Set}}) Contains(x {{.Set}}) bool {
	return s.Overlap(x) == x
}

// Has reports whether s holds item.
func (s {{.Set}}) Has(item {{.Item}}) bool {
	return s.Contains(item.Set())
}

// HasOverlap reports whether s and x have any item in common.
func (s {{.Set}}) HasOverlap(x {{.Set}}) bool {
	return s.Overlap(x) != {{.Set}}Empty
}

// Overlap returns the items that are in both s and x.
func (s {{.Set}}) Overlap(x {{.Set}}) {{.Set}} {
{{- if .Wide}}
	return {{.Set}}(flagset.Uint128(s).And(flagset.Uint128(x)))
{{- else}}
	return s & x
{{- end}}
}

// With returns the union of s and x.
func (s {{.Set}}) With(x {{.Set}}) {{.Set}} {
{{- if .Wide}}
	return {{.Set}}(flagset.Uint128(s).Or(flagset.Uint128(x)))
{{- else}}
	return s | x
{{- end}}
}

// Without returns the items of s that are not in x.
func (s {{.Set}}) Without(x {{.Set}}) {{.Set}} {
{{- if .Wide}}
	return {{.Set}}(flagset.Uint128(s).AndNot(flagset.Uint128(x)))
{{- else}}
	return s &^ x
{{- end}}
}

// Missing returns the items that are not in s.
func (s {{.Set}}) Missing() {{.Set}} {
	return {{.Set}}Full.Without(s)
}

// Invert replaces s with its complement.
func (s *{{.Set}}) Invert() {
	*s = s.Missing()
}

// Insert adds the items of x to s.
func (s *{{.Set}}) Insert(x {{.Set}}) {
	*s = s.With(x)
}

// Remove removes the items of x from s.
func (s *{{.Set}}) Remove(x {{.Set}}) {
	*s = s.Without(x)
}

// Keep removes the items of s that are not in x.
func (s *{{.Set}}) Keep(x {{.Set}}) {
	*s = s.Overlap(x)
}

// Retain removes the items of s for which keep returns false.
// keep is called once for each item in s, in declaration order.
func (s *{{.Set}}) Retain(keep func({{.Item}}) bool) {
	for item := range s.All() {
		if !keep(item) {
			s.Remove(item.Set())
		}
	}
}

// Retained returns the items of s for which keep returns true.
func (s {{.Set}}) Retained(keep func({{.Item}}) bool) {{.Set}} {
	s.Retain(keep)
	return s
}

// Extend adds all the items produced by seq to s.
func (s *{{.Set}}) Extend(seq iter.Seq[{{.Item}}]) {
	flagset.Extend(s, seq)
}

// All returns an iterator over the items of s in declaration order.
func (s {{.Set}}) All() iter.Seq[{{.Item}}] {
	return func(yield func({{.Item}}) bool) {
		for item := {{.Item}}(0); item < {{.Item}}Count; item++ {
			if s.Has(item) && !yield(item) {
				return
			}
		}
	}
}

// Items returns the items of s in declaration order.
func (s {{.Set}}) Items() []{{.Item}} {
	return slices.Collect(s.All())
}

// String formats s as the list of its items.
func (s {{.Set}}) String() string {
	return fmt.Sprint(s.Items())
}
{{- if .JSON}}

// MarshalJSON implements json.Marshaler by encoding s
// as an array of item names.
func (s {{.Set}}) MarshalJSON() ([]byte, error) {
	return flagset.MarshalJSON(s.All())
}

// UnmarshalJSON implements json.Unmarshaler. The data
// must hold an array of item names.
func (s *{{.Set}}) UnmarshalJSON(data []byte) error {
	return flagset.UnmarshalJSON(s, data, Parse{{.Item}})
}
{{- end}}
{{- if .YAML}}

// MarshalYAML implements yaml.Marshaler by encoding s
// as a sequence of item names.
func (s {{.Set}}) MarshalYAML() (any, error) {
	return flagset.MarshalYAML(s.All())
}

// UnmarshalYAML implements yaml.Unmarshaler. The node
// must hold a sequence of item names.
func (s *{{.Set}}) UnmarshalYAML(n *yaml.Node) error {
	return flagset.UnmarshalYAML(s, n, Parse{{.Item}})
}
{{- end}}
`))
