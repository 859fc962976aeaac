package task

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Sleep blocks the calling task until another task wakes it. A queued
// wakeup is consumed instead of blocking.
func Sleep() error {
	return sys.Check[SleepError]("slp_tsk", sys.Kernel().SlpTsk())
}

func SleepTimeout(tmo itron.Timeout) error {
	return sys.Check[SleepTimeoutError]("tslp_tsk", sys.Kernel().TslpTsk(tmo.Raw()))
}

// Delay blocks the calling task for at least d. Unlike SleepTimeout it
// ignores wakeups.
func Delay(d itron.Duration) error {
	return sys.Check[DelayError]("dly_tsk", sys.Kernel().DlyTsk(d.Raw()))
}

// Exit terminates the calling task. It only returns on failure.
func Exit() error {
	return sys.Check[ExitError]("ext_tsk", sys.Kernel().ExtTsk())
}

// DisableTermination defers termination requests raised against the
// calling task.
func DisableTermination() error {
	return sys.Check[DisableTerminationError]("dis_ter", sys.Kernel().DisTer())
}

// EnableTermination undoes DisableTermination. A pending request
// terminates the task when it next waits.
func EnableTermination() error {
	return sys.Check[DisableTerminationError]("ena_ter", sys.Kernel().EnaTer())
}

func IsTerminationDisabled() bool {
	return sys.Kernel().SnsTer() != abi.FALSE
}

// CurrentID returns the ID of the running task. It returns false if no
// task is running, for example in an interrupt handler.
func CurrentID() (itron.NonNullID, bool, error) {
	var id abi.ID
	if err := sys.Check[CurrentIDError]("get_tid", sys.Kernel().GetTid(&id)); err != nil {
		return itron.NonNullID{}, false, err
	}
	nid, ok := itron.NewNonNullID(id)
	return nid, ok, nil
}

// Current returns the calling task. It fails with CurrentIDBadContext
// outside of task context.
func Current() (Ref, error) {
	if sys.Kernel().SnsCtx() != abi.FALSE {
		return Ref{}, sys.Fail[CurrentIDError]("get_tid", abi.E_CTX)
	}

	id, ok, err := CurrentID()
	if err != nil {
		return Ref{}, err
	}
	if !ok {
		return Ref{}, sys.Fail[CurrentIDError]("get_tid", abi.E_CTX)
	}
	return Ref{id}, nil
}

// ExtendedInfo returns the extended information the calling task was
// created with.
func ExtendedInfo() (abi.EXINF, error) {
	var exinf abi.EXINF
	err := sys.Check[CurrentIDError]("get_inf", sys.Kernel().GetInf(&exinf))
	return exinf, err
}
