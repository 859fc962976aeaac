// Package semaphore wraps counting semaphores.
//
// A [Ref] borrows a semaphore by ID and a [*Semaphore] owns one created
// through [Build]. Every operation issues exactly one service call.
package semaphore

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Ref is a borrowed reference to a semaphore.
//
// Refs compare equal if they refer to the same ID.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing semaphore.
//
// The caller must ensure that id refers to a semaphore for as long as the
// Ref is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

// ID returns the semaphore ID.
func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("Semaphore(%s)", r.id)
}

// Signal releases one resource to the semaphore, waking the first waiting
// task if there is one.
func (r Ref) Signal() error {
	return sys.Check[SignalError]("sig_sem", sys.Kernel().SigSem(r.id.Get()))
}

// Wait acquires one resource, blocking until one is available.
func (r Ref) Wait() error {
	return sys.Check[WaitError]("wai_sem", sys.Kernel().WaiSem(r.id.Get()))
}

// WaitTimeout is like Wait with a timeout.
func (r Ref) WaitTimeout(tmo itron.Timeout) error {
	return sys.Check[WaitTimeoutError]("twai_sem", sys.Kernel().TwaiSem(r.id.Get(), tmo.Raw()))
}

// Poll acquires one resource without blocking. It fails with
// PollTimeout if the count is zero.
func (r Ref) Poll() error {
	return sys.Check[PollError]("pol_sem", sys.Kernel().PolSem(r.id.Get()))
}

// Initialize resets the count to its initial value. Waiting tasks are
// released with the Deleted kind.
func (r Ref) Initialize() error {
	return sys.Check[InitializeError]("ini_sem", sys.Kernel().IniSem(r.id.Get()))
}

// Info returns the state of the semaphore.
func (r Ref) Info() (Info, error) {
	var info Info
	err := sys.Check[InfoError]("ref_sem", sys.Kernel().RefSem(r.id.Get(), &info.raw))
	return info, err
}

// Delete deletes the semaphore.
//
// The caller must ensure that no [*Semaphore] owns it and that the Ref is
// not used afterwards.
func (r Ref) Delete() error {
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deleteSemaphore(sys.Kernel(), r.id.Get())
}

func deleteSemaphore(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_sem", k.DelSem(id))
}

// Info is a snapshot of the state of a semaphore.
type Info struct {
	raw abi.T_RSEM
}

// Count is the number of available resources.
func (i Info) Count() uint {
	return uint(i.raw.Semcnt)
}

// FirstWaitingTaskID returns the task at the head of the wait queue.
func (i Info) FirstWaitingTaskID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Wtskid)
}
