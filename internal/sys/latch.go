package sys

import (
	"math"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// Overflow latches whether a builder parameter didn't fit its field in the
// creation packet. The zero value hasn't overflowed.
type Overflow bool

// Uint narrows v, latching the overflow if it doesn't fit.
func (o *Overflow) Uint(v uint) abi.Uint {
	if uint64(v) > math.MaxUint32 {
		*o = true
		return 0
	}
	return abi.Uint(v)
}

// Occurred reports whether any parameter overflowed.
func (o Overflow) Occurred() bool {
	return bool(o)
}
