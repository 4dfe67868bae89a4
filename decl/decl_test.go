package decl

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/flagset/gen"
	"github.com/rogpeppe/flagset/layout"
)

const weekDecl = `
package: week
item: Weekday
set: Weekdays
json: true
groups: [Weekend, Closed]
items:
- Monday
- Tuesday
- Wednesday
- Thursday
- Friday
- name: Saturday
  groups: [Weekend]
- name: Sunday
  groups: [Weekend, Closed]
`

func TestParse(t *testing.T) {
	f, err := Parse([]byte(weekDecl))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(f, &File{
		Package: "week",
		Item:    "Weekday",
		Set:     "Weekdays",
		JSON:    true,
		Groups: []Group{
			{Name: "Weekend", Line: 6},
			{Name: "Closed", Line: 6},
		},
		Items: []Item{
			{Name: "Monday", Line: 8},
			{Name: "Tuesday", Line: 9},
			{Name: "Wednesday", Line: 10},
			{Name: "Thursday", Line: 11},
			{Name: "Friday", Line: 12},
			{Name: "Saturday", Groups: []string{"Weekend"}, Line: 13},
			{Name: "Sunday", Groups: []string{"Weekend", "Closed"}, Line: 15},
		},
	}))
}

func TestLayout(t *testing.T) {
	f, err := Parse([]byte(weekDecl))
	qt.Assert(t, qt.IsNil(err))
	l, err := f.Layout()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(l.Width, layout.Width8))
	qt.Assert(t, qt.HasLen(l.Items, 7))
	weekend, ok := l.Group("Weekend")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(weekend.Mask.Lo, 0x60))
}

func TestConfig(t *testing.T) {
	f, err := Parse([]byte(weekDecl))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Config("", "week.yaml"), gen.Config{
		Package: "week",
		Item:    "Weekday",
		Set:     "Weekdays",
		Source:  "week.yaml",
		JSON:    true,
	}))
	qt.Assert(t, qt.Equals(f.Config("other", "").Package, "other"))
}

var parseErrorTests = []struct {
	testName  string
	data      string
	expectErr string
}{{
	testName:  "empty",
	data:      "",
	expectErr: `empty declaration`,
}, {
	testName:  "no-item-type",
	data:      "set: S\nitems: [A]\n",
	expectErr: `no item type name declared`,
}, {
	testName:  "no-set-type",
	data:      "item: I\nitems: [A]\n",
	expectErr: `no set type name declared`,
}, {
	testName:  "unknown-field",
	data:      "item: I\nset: S\ncolour: red\n",
	expectErr: `(?s).*line 3: field colour not found in type decl.File`,
}, {
	testName:  "unknown-item-field",
	data:      "item: I\nset: S\nitems:\n- name: A\n  colour: red\n",
	expectErr: `line 5: field colour not found in item`,
}, {
	testName:  "item-without-name",
	data:      "item: I\nset: S\nitems:\n- groups: [G]\n",
	expectErr: `line 4: item has no name`,
}, {
	testName:  "item-sequence",
	data:      "item: I\nset: S\nitems:\n- [A, B]\n",
	expectErr: `line 4: item must be a name or a mapping`,
}, {
	testName:  "group-mapping",
	data:      "item: I\nset: S\ngroups:\n- {name: G}\n",
	expectErr: `line 4: group must be a name`,
}}

func TestParseErrors(t *testing.T) {
	for _, test := range parseErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			f, err := Parse([]byte(test.data))
			qt.Assert(t, qt.IsNil(f))
			qt.Assert(t, qt.ErrorMatches(err, test.expectErr))
		})
	}
}

var declErrorTests = []struct {
	testName  string
	data      string
	kind      error
	expectErr string
}{{
	testName: "explicit-code",
	data: `
item: I
set: S
items:
- A
- name: B
  code: 4
`,
	kind:      layout.ErrExplicitCode,
	expectErr: `line 6: item 1 \(B\): explicit item codes are not allowed \(code 4\)`,
}, {
	testName: "empty-code",
	data: `
item: I
set: S
items:
- name: A
  code:
- B
`,
	kind:      layout.ErrExplicitCode,
	expectErr: `line 5: item 0 \(A\): explicit item codes are not allowed \(code ""\)`,
}, {
	testName: "quoted-empty-code",
	data: `
item: I
set: S
items:
- name: A
  code: ""
`,
	kind:      layout.ErrExplicitCode,
	expectErr: `line 5: item 0 \(A\): explicit item codes are not allowed \(code ""\)`,
}, {
	testName: "fields-sequence",
	data: `
item: I
set: S
items:
- name: A
  fields: [x, y]
`,
	kind:      layout.ErrUnsupportedShape,
	expectErr: `line 5: item 0 \(A\): items cannot hold fields \(fields \["x" "y"\]\)`,
}, {
	testName: "fields-mapping",
	data: `
item: I
set: S
items:
- name: A
  fields: {x: int}
`,
	kind:      layout.ErrUnsupportedShape,
	expectErr: `line 5: item 0 \(A\): items cannot hold fields \(fields \["x"\]\)`,
}, {
	testName: "undeclared-group",
	data: `
item: I
set: S
groups: [G]
items:
- name: A
  groups: [G, H]
`,
	kind:      layout.ErrUndeclaredGroup,
	expectErr: `line 6: item 0 \(A\): undeclared group "H"`,
}, {
	testName: "duplicate-group",
	data: `
item: I
set: S
groups:
- G
- G
items: [A]
`,
	kind:      layout.ErrDuplicateGroup,
	expectErr: `line 6: group 1 \(G\): group declared more than once`,
}, {
	testName: "no-items",
	data: `
item: I
set: S
`,
	kind:      layout.ErrNoItems,
	expectErr: `no items declared`,
}}

func TestDeclErrors(t *testing.T) {
	for _, test := range declErrorTests {
		t.Run(test.testName, func(t *testing.T) {
			f, err := Parse([]byte(test.data))
			qt.Assert(t, qt.IsNil(err))
			l, err := f.Layout()
			qt.Assert(t, qt.IsNil(l))
			qt.Assert(t, qt.ErrorIs(err, test.kind))
			qt.Assert(t, qt.ErrorMatches(err, test.expectErr))
		})
	}
}

func TestParseFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "week.yaml")
	err := os.WriteFile(path, []byte(weekDecl), 0o666)
	qt.Assert(t, qt.IsNil(err))
	f, err := ParseFile(path)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(f.Set, "Weekdays"))

	err = os.WriteFile(path, []byte("item: I\n"), 0o666)
	qt.Assert(t, qt.IsNil(err))
	_, err = ParseFile(path)
	qt.Assert(t, qt.ErrorMatches(err, `.*week.yaml: no set type name declared`))

	_, err = ParseFile(filepath.Join(dir, "missing.yaml"))
	qt.Assert(t, qt.ErrorMatches(err, `open .*missing.yaml: no such file or directory`))
}

func TestOutputPath(t *testing.T) {
	qt.Assert(t, qt.Equals(OutputPath("week.yaml"), "week_flagset.go"))
	qt.Assert(t, qt.Equals(OutputPath(filepath.Join("a", "b.yml")), filepath.Join("a", "b_flagset.go")))
	qt.Assert(t, qt.Equals(OutputPath("decl"), "decl_flagset.go"))
}
