package itron

import (
	"fmt"
	"math"
	"time"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// Timeout is the timeout of a blocking operation.
//
// Finite timeouts range from zero (poll) to TMAX_RELTIM microseconds.
// Forever waits indefinitely. The kernel's non-blocking sentinel is not
// representable: non-blocking calls are separate methods.
type Timeout struct {
	value abi.TMO
}

var (
	// ZeroTimeout fails immediately instead of waiting.
	ZeroTimeout = Timeout{abi.TMO_POL}
	// Forever waits until the operation completes.
	Forever = Timeout{abi.TMO_FEVR}
	// MaxTimeout is the longest finite timeout.
	MaxTimeout = Timeout{abi.TMAX_RELTIM}
)

// UnsafeTimeout wraps a raw timeout without validation.
//
// The caller must ensure value is at most TMAX_RELTIM or equal to
// TMO_FEVR.
func UnsafeTimeout(value abi.TMO) Timeout {
	return Timeout{value}
}

// TimeoutFromRaw validates a raw timeout.
func TimeoutFromRaw(value abi.TMO) (Timeout, bool) {
	if value > abi.TMAX_RELTIM && value != abi.TMO_FEVR {
		return Timeout{}, false
	}
	return Timeout{value}, true
}

// TimeoutFromSecs returns false if the timeout is not representable.
func TimeoutFromSecs(secs uint64) (Timeout, bool) {
	if secs > math.MaxUint64/1_000_000 {
		return Timeout{}, false
	}
	return TimeoutFromMicros(secs * 1_000_000)
}

// TimeoutFromMillis returns false if the timeout is not representable.
func TimeoutFromMillis(millis uint64) (Timeout, bool) {
	if millis > math.MaxUint64/1_000 {
		return Timeout{}, false
	}
	return TimeoutFromMicros(millis * 1_000)
}

// TimeoutFromMicros returns false if the timeout is not representable.
func TimeoutFromMicros(micros uint64) (Timeout, bool) {
	if micros > abi.TMAX_RELTIM {
		return Timeout{}, false
	}
	return Timeout{abi.TMO(micros)}, true
}

// TimeoutFromNanos rounds down to whole microseconds.
func TimeoutFromNanos(nanos uint64) (Timeout, bool) {
	return TimeoutFromMicros(nanos / 1_000)
}

// TimeoutFromStd converts a time.Duration, rounding down to whole
// microseconds. Negative durations are rejected.
func TimeoutFromStd(d time.Duration) (Timeout, bool) {
	if d < 0 {
		return Timeout{}, false
	}
	return TimeoutFromNanos(uint64(d))
}

// MustTimeout panics if ok is false. It is meant to wrap the constructors
// for constant arguments:
//
//	itron.MustTimeout(itron.TimeoutFromMillis(100))
func MustTimeout(t Timeout, ok bool) Timeout {
	if !ok {
		panic("itron: timeout not representable")
	}
	return t
}

// Raw returns the value passed to the kernel.
func (t Timeout) Raw() abi.TMO {
	return t.value
}

// IsFinite is false for Forever.
func (t Timeout) IsFinite() bool {
	return t.value != abi.TMO_FEVR
}

// Duration converts a finite timeout. It returns false for Forever.
func (t Timeout) Duration() (Duration, bool) {
	if !t.IsFinite() {
		return Duration{}, false
	}
	return Duration{abi.RELTIM(t.value)}, true
}

func (t Timeout) String() string {
	if !t.IsFinite() {
		return "forever"
	}
	return (time.Duration(t.value) * time.Microsecond).String()
}

// Duration is a relative time, for example the argument of a delay.
//
// Values range from zero to TMAX_RELTIM microseconds.
type Duration struct {
	value abi.RELTIM
}

var (
	ZeroDuration = Duration{0}
	MaxDuration  = Duration{abi.TMAX_RELTIM}
)

// UnsafeDuration wraps a raw relative time without validation.
//
// The caller must ensure value is at most TMAX_RELTIM.
func UnsafeDuration(value abi.RELTIM) Duration {
	return Duration{value}
}

// DurationFromSecs returns false if the duration is not representable.
func DurationFromSecs(secs uint64) (Duration, bool) {
	if secs > math.MaxUint64/1_000_000 {
		return Duration{}, false
	}
	return DurationFromMicros(secs * 1_000_000)
}

// DurationFromMillis returns false if the duration is not representable.
func DurationFromMillis(millis uint64) (Duration, bool) {
	if millis > math.MaxUint64/1_000 {
		return Duration{}, false
	}
	return DurationFromMicros(millis * 1_000)
}

// DurationFromMicros returns false if the duration is not representable.
func DurationFromMicros(micros uint64) (Duration, bool) {
	if micros > abi.TMAX_RELTIM {
		return Duration{}, false
	}
	return Duration{abi.RELTIM(micros)}, true
}

// DurationFromNanos rounds down to whole microseconds.
func DurationFromNanos(nanos uint64) (Duration, bool) {
	return DurationFromMicros(nanos / 1_000)
}

// DurationFromStd converts a time.Duration, rounding down to whole
// microseconds. Negative durations are rejected.
func DurationFromStd(d time.Duration) (Duration, bool) {
	if d < 0 {
		return Duration{}, false
	}
	return DurationFromNanos(uint64(d))
}

// MustDuration panics if ok is false.
func MustDuration(d Duration, ok bool) Duration {
	if !ok {
		panic("itron: duration not representable")
	}
	return d
}

// Raw returns the value passed to the kernel.
func (d Duration) Raw() abi.RELTIM {
	return d.value
}

// Micros returns the duration in microseconds.
func (d Duration) Micros() uint64 {
	return uint64(d.value)
}

// Std converts to a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d.value) * time.Microsecond
}

// Timeout converts d into a finite timeout. The conversion is exact.
func (d Duration) Timeout() Timeout {
	return Timeout{abi.TMO(d.value)}
}

func (d Duration) String() string {
	return d.Std().String()
}

// GoString makes %#v output readable.
func (d Duration) GoString() string {
	return fmt.Sprintf("itron.Duration(%dµs)", d.value)
}
