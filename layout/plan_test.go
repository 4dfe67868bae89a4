package layout

import (
	"fmt"
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"

	"github.com/rogpeppe/flagset"
)

var widthTests = []struct {
	n      int
	expect Width
}{
	{1, Width8},
	{8, Width8},
	{9, Width16},
	{16, Width16},
	{17, Width32},
	{32, Width32},
	{33, Width64},
	{64, Width64},
	{65, Width128},
	{128, Width128},
}

func TestWidthFor(t *testing.T) {
	for _, test := range widthTests {
		t.Run(fmt.Sprint(test.n), func(t *testing.T) {
			w, ok := WidthFor(test.n)
			qt.Assert(t, qt.IsTrue(ok))
			qt.Assert(t, qt.Equals(w, test.expect))
		})
	}
	_, ok := WidthFor(MaxItems + 1)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestPlanWidths(t *testing.T) {
	for _, test := range widthTests {
		t.Run(fmt.Sprint(test.n), func(t *testing.T) {
			spec, err := Validate(Decl{Items: numberedItems(test.n)})
			qt.Assert(t, qt.IsNil(err))
			l := Plan(spec)
			qt.Assert(t, qt.Equals(l.Width, test.expect))
			qt.Assert(t, qt.Equals(l.Full.OnesCount(), test.n))
			qt.Assert(t, qt.Equals(l.Full, flagset.Low128(uint(test.n))))
		})
	}
}

func TestPlanTooManyItems(t *testing.T) {
	_, err := Validate(Decl{Items: numberedItems(129)})
	qt.Assert(t, qt.ErrorIs(err, ErrTooManyItems))
}

func TestWidthGoType(t *testing.T) {
	qt.Assert(t, qt.Equals(Width8.GoType(), "uint8"))
	qt.Assert(t, qt.Equals(Width64.GoType(), "uint64"))
	qt.Assert(t, qt.Equals(Width128.GoType(), "flagset.Uint128"))
	qt.Assert(t, qt.Equals(Width16.String(), "16 bits"))
}

func TestPlanWeek(t *testing.T) {
	spec, err := Validate(weekDecl())
	qt.Assert(t, qt.IsNil(err))
	l := Plan(spec)
	qt.Assert(t, qt.Equals(l.Width, Width8))
	qt.Assert(t, qt.Equals(l.Full, flagset.Uint128{Lo: 0x7f}))
	qt.Assert(t, qt.HasLen(l.Items, 7))
	for i, it := range l.Items {
		qt.Assert(t, qt.Equals(it.Index, i))
		qt.Assert(t, qt.Equals(it.Code, flagset.Uint128{Lo: 1 << i}))
	}
	qt.Assert(t, qt.DeepEquals(l.Groups, []Group{{
		Name:    "WEEKEND",
		Members: []string{"Sat", "Sun"},
		Mask:    flagset.Uint128{Lo: 0x60},
	}, {
		Name:    "CLOSED",
		Members: []string{"Sun"},
		Mask:    flagset.Uint128{Lo: 0x40},
	}}))

	code, ok := l.Code("Wed")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(code, flagset.Uint128{Lo: 4}))
	_, ok = l.Code("Caturday")
	qt.Assert(t, qt.IsFalse(ok))

	index, ok := l.Index("Sun")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(index, 6))

	g, ok := l.Group("CLOSED")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(g.Mask.OnesCount(), 1))
	_, ok = l.Group("HOLIDAY")
	qt.Assert(t, qt.IsFalse(ok))
}

func TestPlanEmptyGroup(t *testing.T) {
	spec, err := Validate(Decl{
		Items:  items("A", "B"),
		Groups: groups("NONE"),
	})
	qt.Assert(t, qt.IsNil(err))
	g, ok := Plan(spec).Group("NONE")
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.IsTrue(g.Mask.IsZero()))
	qt.Assert(t, qt.HasLen(g.Members, 0))
}

func TestPlanHighBits(t *testing.T) {
	d := Decl{
		Items:  numberedItems(100),
		Groups: groups("EDGES"),
	}
	d.Items[0].Groups = []string{"EDGES"}
	d.Items[63].Groups = []string{"EDGES"}
	d.Items[64].Groups = []string{"EDGES"}
	d.Items[99].Groups = []string{"EDGES"}
	spec, err := Validate(d)
	qt.Assert(t, qt.IsNil(err))
	l := Plan(spec)
	qt.Assert(t, qt.Equals(l.Width, Width128))
	qt.Assert(t, qt.Equals(l.Items[64].Code, flagset.Uint128{Hi: 1}))
	qt.Assert(t, qt.Equals(l.Items[99].Code, flagset.Uint128{Hi: 1 << 35}))
	qt.Assert(t, qt.Equals(l.Full, flagset.Uint128{Lo: ^uint64(0), Hi: 1<<36 - 1}))
	g, _ := l.Group("EDGES")
	qt.Assert(t, qt.DeepEquals(g.Members, []string{"I0", "I63", "I64", "I99"}))
	qt.Assert(t, qt.Equals(g.Mask, flagset.Uint128{Lo: 1 | 1<<63, Hi: 1 | 1<<35}))
}

func TestPlanIsDeterministic(t *testing.T) {
	spec, err := Validate(weekDecl())
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.CmpEquals(Plan(spec), Plan(spec), cmp.AllowUnexported(Layout{})))
}
