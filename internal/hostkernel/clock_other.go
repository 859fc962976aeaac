//go:build !linux

package hostkernel

import "time"

var clockBase = time.Now()

func monotonicMicros() uint64 {
	return uint64(time.Since(clockBase).Microseconds())
}
