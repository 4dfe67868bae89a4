package squares

import (
	"encoding/json"
	"math"
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/rogpeppe/flagset"
)

func sampleSets() []Squares {
	sets := []Squares{
		SquaresEmpty,
		SquaresFull,
		Corners,
		Center,
		Rank1,
		FileA,
		SquaresOf(A1, H8),
		SquaresOf(G8, H8),
	}
	for item := Square(0); item < SquareCount; item += 9 {
		sets = append(sets, item.Set(), item.Set().Missing())
	}
	return sets
}

func TestFullWord(t *testing.T) {
	qt.Assert(t, qt.Equals(SquareCount, 64))
	qt.Assert(t, qt.Equals(SquaresFull, Squares(math.MaxUint64)))
	qt.Assert(t, qt.Equals(SquaresFull.Len(), 64))
	qt.Assert(t, qt.Equals(H8.Set(), Squares(1<<63)))
	qt.Assert(t, qt.Equals(SquaresEmpty.Missing(), SquaresFull))
	qt.Assert(t, qt.Equals(SquaresFull.Missing(), SquaresEmpty))
	qt.Assert(t, qt.IsFalse(SquaresFull.Has(Square(64))))
}

func TestGroups(t *testing.T) {
	qt.Assert(t, qt.Equals(Corners, Squares(0x8100000000000081)))
	qt.Assert(t, qt.Equals(Center, Squares(0x1818000000)))
	qt.Assert(t, qt.Equals(Rank1, Squares(0xff)))
	qt.Assert(t, qt.Equals(FileA, Squares(0x0101010101010101)))
	qt.Assert(t, qt.Equals(Rank1.Overlap(FileA), A1.Set()))
	qt.Assert(t, qt.IsFalse(Center.HasOverlap(Corners)))
	qt.Assert(t, qt.Equals(Rank1.With(FileA).Len(), 15))
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(Corners.String(), "[A1 H1 A8 H8]"))
	qt.Assert(t, qt.Equals(H8.String(), "H8"))
	qt.Assert(t, qt.Equals(Square(64).String(), "Square(64)"))

	item, err := ParseSquare("E4")
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(item, E4))
	_, err = ParseSquare("I9")
	qt.Assert(t, qt.ErrorIs(err, flagset.ErrUnknownItem))
}

func TestMutations(t *testing.T) {
	s := Corners
	s.Invert()
	qt.Assert(t, qt.Equals(s.Len(), 60))
	qt.Assert(t, qt.IsFalse(s.Has(H8)))
	s.Keep(Rank1)
	qt.Assert(t, qt.Equals(s, SquaresOf(B1, C1, D1, E1, F1, G1)))
	s.Insert(H8.Set())
	s.Remove(B1.Set())
	qt.Assert(t, qt.DeepEquals(s.Items(), []Square{C1, D1, E1, F1, G1, H8}))
	qt.Assert(t, qt.Equals(SquaresFull.Retained(Center.Has), Center))
}

func TestAlgebraLaws(t *testing.T) {
	sets := sampleSets()
	for _, a := range sets {
		qt.Assert(t, qt.Equals(a.Missing().Missing(), a))
		qt.Assert(t, qt.Equals(a.Len()+a.Missing().Len(), SquareCount))
		qt.Assert(t, qt.IsTrue(a.Contains(a)))
		for _, b := range sets {
			qt.Assert(t, qt.IsTrue(a.Contains(a.With(b).Without(b))))
			qt.Assert(t, qt.Equals(a.With(b).Missing(), a.Missing().Overlap(b.Missing())))
			qt.Assert(t, qt.Equals(a.HasOverlap(b), !a.Overlap(b).IsEmpty()))
		}
	}
}

func TestIteration(t *testing.T) {
	qt.Assert(t, qt.DeepEquals(SquaresFull.Items(), SquareValues[:]))
	qt.Assert(t, qt.Equals(SquareValues[SquareCount-1], H8))
	for _, s := range sampleSets() {
		items := slices.Collect(s.All())
		qt.Assert(t, qt.HasLen(items, s.Len()))
		qt.Assert(t, qt.IsTrue(slices.IsSorted(items)))
		qt.Assert(t, qt.Equals(CollectSquares(slices.Values(items)), s))
	}
}

func TestNoSerialization(t *testing.T) {
	_, ok := any(Corners).(json.Marshaler)
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = any(A1).(interface{ MarshalText() ([]byte, error) })
	qt.Assert(t, qt.IsFalse(ok))
}
