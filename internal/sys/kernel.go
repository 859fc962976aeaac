package sys

import (
	"sync/atomic"

	"github.com/solid-rs/itron-rs/internal/abi"
)

type surface struct {
	abi.Kernel
}

var active atomic.Pointer[surface]

// Kernel returns the service call surface used by the typed API.
//
// This is the kernel selected at build time unless SetKernel replaced it.
func Kernel() abi.Kernel {
	if s := active.Load(); s != nil {
		return s.Kernel
	}
	return defaultKernel()
}

// SetKernel replaces the service call surface and returns the previous one.
// Passing nil restores the kernel selected at build time.
//
// Only tests and simulations should call this.
func SetKernel(k abi.Kernel) abi.Kernel {
	prev := Kernel()
	if k == nil {
		active.Store(nil)
	} else {
		active.Store(&surface{k})
	}
	return prev
}
