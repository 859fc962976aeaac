// Package mutex wraps mutexes with optional priority protection.
//
// Locks are owned by tasks, not goroutines.
package mutex

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Ref is a borrowed reference to a mutex.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing mutex.
//
// The caller must ensure that id refers to a mutex for as long as the Ref
// is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("Mutex(%s)", r.id)
}

// Lock acquires the mutex, blocking while another task owns it.
//
// Locking a mutex the calling task already owns fails with LockDeadlock
// instead of blocking forever.
func (r Ref) Lock() error {
	return sys.Check[LockError]("loc_mtx", sys.Kernel().LocMtx(r.id.Get()))
}

func (r Ref) LockTimeout(tmo itron.Timeout) error {
	return sys.Check[LockTimeoutError]("tloc_mtx", sys.Kernel().TlocMtx(r.id.Get(), tmo.Raw()))
}

// TryLock fails with TryLockTimeout if another task owns the mutex.
func (r Ref) TryLock() error {
	return sys.Check[TryLockError]("ploc_mtx", sys.Kernel().PlocMtx(r.id.Get()))
}

// Unlock releases the mutex and hands it to the first waiting task.
func (r Ref) Unlock() error {
	return sys.Check[UnlockError]("unl_mtx", sys.Kernel().UnlMtx(r.id.Get()))
}

// Initialize unlocks the mutex. Waiting tasks are released with the
// Deleted kind.
func (r Ref) Initialize() error {
	return sys.Check[InitializeError]("ini_mtx", sys.Kernel().IniMtx(r.id.Get()))
}

func (r Ref) Info() (Info, error) {
	var info Info
	err := sys.Check[InfoError]("ref_mtx", sys.Kernel().RefMtx(r.id.Get(), &info.raw))
	return info, err
}

// Delete deletes the mutex.
//
// The caller must ensure that no [*Mutex] owns it.
func (r Ref) Delete() error {
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deleteMutex(sys.Kernel(), r.id.Get())
}

func deleteMutex(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_mtx", k.DelMtx(id))
}

// Info is a snapshot of the state of a mutex.
type Info struct {
	raw abi.T_RMTX
}

// OwningTaskID returns the task that locked the mutex.
func (i Info) OwningTaskID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Htskid)
}

func (i Info) FirstWaitingTaskID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Wtskid)
}
