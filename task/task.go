// Package task manages tasks, the units of execution of the kernel.
//
// A [Ref] borrows a task by ID, a [*Task] owns a task created through
// [Build]. The package level functions act on the calling task.
package task

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
	"github.com/solid-rs/itron-rs/processor"
)

// Priority is a task priority. Smaller values denote higher priority.
type Priority = abi.PRI

// Ref is a borrowed reference to a task.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing task.
//
// The caller must ensure that id refers to a task for as long as the Ref
// is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("Task(%s)", r.id)
}

// Activate starts a dormant task, or queues the request if the task is
// already active.
func (r Ref) Activate() error {
	return sys.Check[ActivateError]("act_tsk", sys.Kernel().ActTsk(r.id.Get()))
}

// ActivateOn is like Activate but runs the task on p.
func (r Ref) ActivateOn(p processor.Processor) error {
	if err := itron.RequireMultiprocessor(); err != nil {
		return err
	}
	return sys.Check[ActivateOnError]("mact_tsk", sys.Kernel().MactTsk(r.id.Get(), p.ID().Get()))
}

// CancelActivateAll discards queued activation requests and returns their
// number.
func (r Ref) CancelActivateAll() (uint, error) {
	n, err := sys.CheckValue[CancelActivateAllError]("can_act", sys.Kernel().CanAct(r.id.Get()))
	return uint(n), err
}

// State returns the state of the task.
func (r Ref) State() (State, error) {
	var stat abi.STAT
	err := sys.Check[StateError]("get_tst", sys.Kernel().GetTst(r.id.Get(), &stat))
	return State(stat), err
}

// SetPriority changes the base priority of the task.
func (r Ref) SetPriority(pri Priority) error {
	return sys.Check[SetPriorityError]("chg_pri", sys.Kernel().ChgPri(r.id.Get(), pri))
}

// Priority returns the current priority of the task, which includes
// raises by mutexes it holds.
func (r Ref) Priority() (Priority, error) {
	var pri Priority
	err := sys.Check[PriorityError]("get_pri", sys.Kernel().GetPri(r.id.Get(), &pri))
	return pri, err
}

func (r Ref) Info() (Info, error) {
	var info Info
	err := sys.Check[InfoError]("ref_tsk", sys.Kernel().RefTsk(r.id.Get(), &info.raw))
	return info, err
}

// Wake releases the task from Sleep, or queues the wakeup if it isn't
// sleeping.
func (r Ref) Wake() error {
	return sys.Check[WakeError]("wup_tsk", sys.Kernel().WupTsk(r.id.Get()))
}

// CancelWakeAll discards queued wakeups and returns their number.
func (r Ref) CancelWakeAll() (uint, error) {
	n, err := sys.CheckValue[CancelWakeAllError]("can_wup", sys.Kernel().CanWup(r.id.Get()))
	return uint(n), err
}

// ReleaseWait forcibly ends the wait of the task, which observes the
// Released kind.
func (r Ref) ReleaseWait() error {
	return sys.Check[ReleaseWaitError]("rel_wai", sys.Kernel().RelWai(r.id.Get()))
}

// Suspend suspends the task until Resume is called. Suspensions don't
// nest.
func (r Ref) Suspend() error {
	return sys.Check[SuspendError]("sus_tsk", sys.Kernel().SusTsk(r.id.Get()))
}

func (r Ref) Resume() error {
	return sys.Check[ResumeError]("rsm_tsk", sys.Kernel().RsmTsk(r.id.Get()))
}

// Terminate forcibly makes the task dormant.
//
// The task doesn't get a chance to clean up: the caller must ensure that
// this doesn't leave any shared state inconsistent.
func (r Ref) Terminate() error {
	return sys.Check[TerminateError]("ter_tsk", sys.Kernel().TerTsk(r.id.Get()))
}

// RaiseTermination terminates the task unless it disabled termination, in
// which case the request stays pending until it enables it again.
func (r Ref) RaiseTermination() error {
	return sys.Check[RaiseTerminationError]("ras_ter", sys.Kernel().RasTer(r.id.Get()))
}

// Delete deletes a dormant task.
//
// The caller must ensure that no [*Task] owns it.
func (r Ref) Delete() error {
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deleteTask(sys.Kernel(), r.id.Get())
}

func deleteTask(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_tsk", k.DelTsk(id))
}
