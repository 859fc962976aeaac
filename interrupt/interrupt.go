// Package interrupt controls interrupt request lines and the interrupt
// priority mask.
//
// Interrupt handlers themselves are registered in the static
// configuration of the kernel. Kernels which leave interrupts to their host
// environment return an [*itron.UnsupportedFeatureError] from every
// operation.
package interrupt

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Number is an interrupt number. Valid numbers depend on the target.
type Number = abi.INTNO

// Priority is an interrupt priority. Interrupt priorities are negative,
// smaller values are more urgent.
type Priority = abi.PRI

// EnableAll is the priority mask which masks no interrupt.
const EnableAll Priority = abi.TIPM_ENAALL

// Line is an interrupt request line.
type Line struct {
	n Number
}

// LineFromRaw returns the line with number n. The kernel validates n when
// the line is used.
func LineFromRaw(n Number) Line {
	return Line{n}
}

func (l Line) Number() Number {
	return l.n
}

func (l Line) String() string {
	return fmt.Sprintf("InterruptLine(%d)", l.n)
}

// Enable lets requests on the line through to its handler.
func (l Line) Enable() error {
	if err := itron.RequireInterrupts(); err != nil {
		return err
	}
	return sys.Check[EnableError]("ena_int", sys.Kernel().EnaInt(l.n))
}

// Disable holds back requests on the line. They stay pending until the
// line is enabled or cleared.
func (l Line) Disable() error {
	if err := itron.RequireInterrupts(); err != nil {
		return err
	}
	return sys.Check[DisableError]("dis_int", sys.Kernel().DisInt(l.n))
}

// Clear discards a pending request. Only edge triggered lines can be
// cleared.
func (l Line) Clear() error {
	if err := itron.RequireInterrupts(); err != nil {
		return err
	}
	return sys.Check[ClearError]("clr_int", sys.Kernel().ClrInt(l.n))
}

// Raise requests an interrupt on the line.
func (l Line) Raise() error {
	if err := itron.RequireInterrupts(); err != nil {
		return err
	}
	return sys.Check[RaiseError]("ras_int", sys.Kernel().RasInt(l.n))
}

// IsPending reports whether a request on the line waits to be serviced.
func (l Line) IsPending() (bool, error) {
	if err := itron.RequireInterrupts(); err != nil {
		return false, err
	}
	pending, err := sys.CheckValue[IsPendingError]("prb_int", sys.Kernel().PrbInt(l.n))
	return pending != abi.FALSE, err
}

// SetPriorityMask masks every interrupt whose priority isn't more urgent
// than p. While any interrupt is masked the calling task can't be
// preempted or blocked.
func SetPriorityMask(p Priority) error {
	if err := itron.RequireInterrupts(); err != nil {
		return err
	}
	return sys.Check[SetPriorityMaskError]("chg_ipm", sys.Kernel().ChgIpm(p))
}

// PriorityMask returns the current interrupt priority mask.
func PriorityMask() (Priority, error) {
	if err := itron.RequireInterrupts(); err != nil {
		return EnableAll, err
	}
	var p Priority
	err := sys.Check[PriorityMaskError]("get_ipm", sys.Kernel().GetIpm(&p))
	return p, err
}
