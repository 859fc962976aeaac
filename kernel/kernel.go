// Package kernel queries and controls kernel-wide state: the execution
// context, CPU lock, dispatching and the system time.
package kernel

import (
	"fmt"
	"time"

	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// IsTaskContext reports whether the caller runs in task context rather
// than in a handler.
func IsTaskContext() bool {
	return sys.Kernel().SnsCtx() == abi.FALSE
}

// IsCPULocked reports whether the CPU is locked.
func IsCPULocked() bool {
	return sys.Kernel().SnsLoc() != abi.FALSE
}

// IsDispatchingDisabled reports whether dispatching is disabled.
func IsDispatchingDisabled() bool {
	return sys.Kernel().SnsDsp() != abi.FALSE
}

// IsDispatchPending reports whether a higher priority task would be held
// back instead of preempting the caller.
func IsDispatchPending() bool {
	return sys.Kernel().SnsDpn() != abi.FALSE
}

// IsOperational reports whether the kernel is running. It is false before
// initialization completes and after [Exit].
func IsOperational() bool {
	return sys.Kernel().SnsKer() == abi.FALSE
}

// Exit shuts the kernel down. On a real kernel it doesn't return.
func Exit() error {
	return sys.Check[ExitError]("ext_ker", sys.Kernel().ExtKer())
}

// LockCPU masks every interrupt managed by the kernel.
func LockCPU() error {
	return sys.Check[LockError]("loc_cpu", sys.Kernel().LocCpu())
}

func UnlockCPU() error {
	return sys.Check[LockError]("unl_cpu", sys.Kernel().UnlCpu())
}

// DisableDispatch keeps the calling task running until [EnableDispatch].
func DisableDispatch() error {
	return sys.Check[LockError]("dis_dsp", sys.Kernel().DisDsp())
}

func EnableDispatch() error {
	return sys.Check[LockError]("ena_dsp", sys.Kernel().EnaDsp())
}

// RotateReadyQueue moves the first ready task of the given priority to the
// end of its queue. A priority of zero selects the priority of the caller.
func RotateReadyQueue(pri abi.PRI) error {
	return sys.Check[RotateError]("rot_rdq", sys.Kernel().RotRdq(pri))
}

// SystemTime is the kernel's notion of time in microseconds.
type SystemTime uint64

// Std converts the time to a duration since zero.
func (t SystemTime) Std() time.Duration {
	return time.Duration(t) * time.Microsecond
}

func (t SystemTime) String() string {
	return fmt.Sprintf("%dµs", uint64(t))
}

// Time returns the current system time.
func Time() (SystemTime, error) {
	var systim abi.SYSTIM
	if err := sys.Check[TimeError]("get_tim", sys.Kernel().GetTim(&systim)); err != nil {
		return 0, err
	}
	return SystemTime(systim), nil
}

// SetTime moves the system time. Timeouts and delays are unaffected.
func SetTime(t SystemTime) error {
	return sys.Check[TimeError]("set_tim", sys.Kernel().SetTim(abi.SYSTIM(t)))
}

// Bounds of a single [AdjustTime] call.
const (
	MinAdjustment = -1_000_000
	MaxAdjustment = 1_000_000
)

// AdjustTime shifts the system time by micros microseconds.
func AdjustTime(micros int32) error {
	return sys.Check[AdjustTimeError]("adj_tim", sys.Kernel().AdjTim(micros))
}

// HighResolutionCount reads the high resolution timer. Its unit and wrap
// around are defined by the target.
func HighResolutionCount() uint64 {
	return uint64(sys.Kernel().FchHrt())
}
