package itron

import (
	"math"
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs/internal/abi"
)

func TestDurationMicros(t *testing.T) {
	for _, micros := range []uint64{0, 1, 999, 1_000_000, abi.TMAX_RELTIM} {
		d, ok := DurationFromMicros(micros)
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(d.Micros(), micros))
		qt.Assert(t, qt.Equals(d.Timeout().Raw(), abi.TMO(micros)))

		back, ok := d.Timeout().Duration()
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(back, d))
	}

	_, ok := DurationFromMicros(abi.TMAX_RELTIM + 1)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestDurationConstructors(t *testing.T) {
	qt.Assert(t, qt.Equals(MustDuration(DurationFromSecs(2)).Micros(), 2_000_000))
	qt.Assert(t, qt.Equals(MustDuration(DurationFromMillis(3)).Micros(), 3_000))
	qt.Assert(t, qt.Equals(MustDuration(DurationFromNanos(1_999)).Micros(), 1))
	qt.Assert(t, qt.Equals(MustDuration(DurationFromStd(1500*time.Microsecond)).Std(), 1500*time.Microsecond))

	for _, tc := range []struct {
		name string
		ok   bool
	}{
		{"secs", second(DurationFromSecs(math.MaxUint64 / 1_000))},
		{"millis", second(DurationFromMillis(math.MaxUint64))},
		{"negative", second(DurationFromStd(-time.Nanosecond))},
		{"max secs", second(DurationFromSecs(abi.TMAX_RELTIM/1_000_000 + 1))},
	} {
		t.Run(tc.name, func(t *testing.T) {
			qt.Assert(t, qt.IsFalse(tc.ok))
		})
	}

	qt.Assert(t, qt.PanicMatches(func() {
		MustDuration(DurationFromMicros(math.MaxUint64))
	}, "itron: duration not representable"))
}

func TestTimeout(t *testing.T) {
	qt.Assert(t, qt.IsFalse(Forever.IsFinite()))
	_, ok := Forever.Duration()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(Forever.String(), "forever"))
	qt.Assert(t, qt.Equals(ZeroTimeout.Raw(), abi.TMO_POL))

	tmo, ok := TimeoutFromRaw(abi.TMO_FEVR)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(tmo, Forever))

	_, ok = TimeoutFromRaw(abi.TMO_NBLK)
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = TimeoutFromRaw(abi.TMAX_RELTIM + 1)
	qt.Assert(t, qt.IsFalse(ok))

	tmo = MustTimeout(TimeoutFromMillis(250))
	qt.Assert(t, qt.Equals(tmo.String(), "250ms"))
	qt.Assert(t, qt.Equals(MustTimeout(TimeoutFromStd(time.Second)).Raw(), 1_000_000))
	qt.Assert(t, qt.Equals(MaxTimeout.Raw(), abi.TMAX_RELTIM))

	_, ok = TimeoutFromStd(-time.Second)
	qt.Assert(t, qt.IsFalse(ok))
}

func TestDurationFormatting(t *testing.T) {
	d := MustDuration(DurationFromMillis(20))
	qt.Assert(t, qt.Equals(d.String(), "20ms"))
	qt.Assert(t, qt.Equals(d.GoString(), "itron.Duration(20000µs)"))
}

func second[T any](_ T, ok bool) bool {
	return ok
}
