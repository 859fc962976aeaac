package task

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/processor"
)

// State is the scheduling state of a task.
type State uint8

const (
	Running          State = State(abi.TTS_RUN)
	Ready            State = State(abi.TTS_RDY)
	Waiting          State = State(abi.TTS_WAI)
	Suspended        State = State(abi.TTS_SUS)
	WaitingSuspended State = State(abi.TTS_WAS)
	Dormant          State = State(abi.TTS_DMT)
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Ready:
		return "ready"
	case Waiting:
		return "waiting"
	case Suspended:
		return "suspended"
	case WaitingSuspended:
		return "waiting-suspended"
	case Dormant:
		return "dormant"
	}
	return fmt.Sprintf("State(%#x)", uint8(s))
}

// Info is a snapshot of the state of a task.
type Info struct {
	raw abi.T_RTSK
}

func (i Info) State() State {
	return State(i.raw.Tskstat)
}

// CurrentPriority includes raises by held mutexes.
func (i Info) CurrentPriority() Priority {
	return i.raw.Tskpri
}

func (i Info) BasePriority() Priority {
	return i.raw.Tskbpri
}

// WaitingObjectID returns the object the task waits on. It returns false
// if the task isn't waiting or waits without an object, for example in
// Sleep.
func (i Info) WaitingObjectID() (itron.NonNullID, bool) {
	if i.raw.Tskwait == 0 {
		return itron.NonNullID{}, false
	}
	return itron.NewNonNullID(i.raw.Wobjid)
}

// RemainingTimeout is the time until the wait of the task times out.
func (i Info) RemainingTimeout() (itron.Timeout, bool) {
	if i.raw.Tskwait == 0 {
		return itron.Timeout{}, false
	}
	return itron.TimeoutFromRaw(i.raw.Lefttmo)
}

// ActivationCount is the number of queued activation requests.
func (i Info) ActivationCount() uint {
	return uint(i.raw.Actcnt)
}

// WakeupCount is the number of queued wakeups.
func (i Info) WakeupCount() uint {
	return uint(i.raw.Wupcnt)
}

func (i Info) TerminationRequested() bool {
	return i.raw.Raster != abi.FALSE
}

func (i Info) TerminationDisabled() bool {
	return i.raw.Dister != abi.FALSE
}

// Processor returns the processor the task is assigned to. It returns
// false for dormant tasks.
func (i Info) Processor() (processor.Processor, bool) {
	return processor.FromRaw(i.raw.Prcid)
}
