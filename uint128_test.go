package flagset

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestBit128(t *testing.T) {
	qt.Assert(t, qt.Equals(Bit128(0), Uint128{Lo: 1}))
	qt.Assert(t, qt.Equals(Bit128(63), Uint128{Lo: 1 << 63}))
	qt.Assert(t, qt.Equals(Bit128(64), Uint128{Hi: 1}))
	qt.Assert(t, qt.Equals(Bit128(127), Uint128{Hi: 1 << 63}))
	qt.Assert(t, qt.IsTrue(Bit128(128).IsZero()))
}

func TestLow128(t *testing.T) {
	qt.Assert(t, qt.Equals(Low128(0), Uint128{}))
	qt.Assert(t, qt.Equals(Low128(7), Uint128{Lo: 0x7f}))
	qt.Assert(t, qt.Equals(Low128(64), Uint128{Lo: ^uint64(0)}))
	qt.Assert(t, qt.Equals(Low128(65), Uint128{Lo: ^uint64(0), Hi: 1}))
	qt.Assert(t, qt.Equals(Low128(128), Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}))
	for n := uint(0); n <= 128; n++ {
		qt.Assert(t, qt.Equals(Low128(n).OnesCount(), int(n)))
	}
}

func TestUint128Ops(t *testing.T) {
	x := Bit128(1).Or(Bit128(70))
	y := Bit128(70).Or(Bit128(100))
	qt.Assert(t, qt.Equals(x.And(y), Bit128(70)))
	qt.Assert(t, qt.Equals(x.Or(y).OnesCount(), 3))
	qt.Assert(t, qt.Equals(x.AndNot(y), Bit128(1)))
	qt.Assert(t, qt.IsTrue(x.Test(1)))
	qt.Assert(t, qt.IsTrue(x.Test(70)))
	qt.Assert(t, qt.IsFalse(x.Test(100)))
	qt.Assert(t, qt.IsFalse(x.Test(200)))
	qt.Assert(t, qt.IsFalse(x.IsZero()))
	qt.Assert(t, qt.IsTrue(x.AndNot(x).IsZero()))
}

func TestUint128String(t *testing.T) {
	qt.Assert(t, qt.Equals(Uint128{}.String(), "0x0"))
	qt.Assert(t, qt.Equals(Uint128{Lo: 0x60}.String(), "0x60"))
	qt.Assert(t, qt.Equals(Uint128{Lo: 2, Hi: 1}.String(), "0x10000000000000002"))
}
