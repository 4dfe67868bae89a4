package flagset

import (
	"fmt"
	"math/bits"
)

// Uint128 is a 128-bit unsigned word. It is the underlying type of
// generated set types for domains of more than 64 items.
//
// The zero value has no bits set.
type Uint128 struct {
	Lo, Hi uint64
}

// Bit128 returns a word with only bit i set.
// It returns the zero word if i >= 128.
func Bit128(i uint) Uint128 {
	if i < 64 {
		return Uint128{Lo: 1 << i}
	}
	return Uint128{Hi: 1 << (i - 64)}
}

// Low128 returns a word with the n lowest bits set.
func Low128(n uint) Uint128 {
	switch {
	case n >= 128:
		return Uint128{Lo: ^uint64(0), Hi: ^uint64(0)}
	case n >= 64:
		return Uint128{Lo: ^uint64(0), Hi: 1<<(n-64) - 1}
	}
	return Uint128{Lo: 1<<n - 1}
}

// Or returns the bitwise OR of x and y.
func (x Uint128) Or(y Uint128) Uint128 {
	return Uint128{Lo: x.Lo | y.Lo, Hi: x.Hi | y.Hi}
}

// And returns the bitwise AND of x and y.
func (x Uint128) And(y Uint128) Uint128 {
	return Uint128{Lo: x.Lo & y.Lo, Hi: x.Hi & y.Hi}
}

// AndNot returns x with all the bits of y cleared.
func (x Uint128) AndNot(y Uint128) Uint128 {
	return Uint128{Lo: x.Lo &^ y.Lo, Hi: x.Hi &^ y.Hi}
}

// IsZero reports whether no bits are set in x.
func (x Uint128) IsZero() bool {
	return x.Lo == 0 && x.Hi == 0
}

// OnesCount returns the number of bits set in x.
func (x Uint128) OnesCount() int {
	return bits.OnesCount64(x.Lo) + bits.OnesCount64(x.Hi)
}

// Test reports whether bit i is set in x.
func (x Uint128) Test(i uint) bool {
	if i < 64 {
		return x.Lo&(1<<i) != 0
	}
	return x.Hi&(1<<(i-64)) != 0
}

// String returns x as a hexadecimal number.
func (x Uint128) String() string {
	if x.Hi == 0 {
		return fmt.Sprintf("%#x", x.Lo)
	}
	return fmt.Sprintf("%#x%016x", x.Hi, x.Lo)
}
