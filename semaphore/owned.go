package semaphore

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Semaphore is an owned semaphore.
//
// The semaphore is deleted by Close, or when the Semaphore is garbage
// collected without Leak having been called.
type Semaphore struct {
	obj *sys.Object
}

// UnsafeOwn takes ownership of an existing semaphore.
//
// The caller must ensure that id refers to a semaphore nothing else owns.
func UnsafeOwn(id itron.NonNullID) *Semaphore {
	k := sys.Kernel()
	return &Semaphore{sys.NewObject("Semaphore", id.Get(), func(id abi.ID) error {
		return deleteSemaphore(k, id)
	})}
}

// Ref borrows the semaphore. It panics after Close or Leak.
func (s *Semaphore) Ref() Ref {
	return Ref{itron.MustNonNullID(s.obj.MustID())}
}

func (s *Semaphore) String() string {
	return s.obj.String()
}

// Close deletes the semaphore. Calling Close more than once is a no-op.
func (s *Semaphore) Close() error {
	return s.obj.Close()
}

// Leak gives up ownership without deleting the semaphore.
func (s *Semaphore) Leak() Ref {
	return Ref{itron.MustNonNullID(s.obj.Disown())}
}

// Builder collects the parameters of a new semaphore. The zero value is
// not usable, call Build instead.
type Builder struct {
	raw        abi.T_CSEM
	initialSet bool
	overflow   sys.Overflow
}

// Build starts describing a binary semaphore with one available resource.
func Build() Builder {
	return Builder{raw: abi.T_CSEM{Maxsem: 1}}
}

// InitialCount sets the number of resources available after creation. It
// defaults to the maximum count.
func (b Builder) InitialCount(n uint) Builder {
	b.raw.Isemcnt = b.overflow.Uint(n)
	b.initialSet = true
	return b
}

// MaxCount sets the maximum number of resources.
func (b Builder) MaxCount(n uint) Builder {
	b.raw.Maxsem = b.overflow.Uint(n)
	return b
}

// QueueOrder sets the order in which waiting tasks acquire resources.
func (b Builder) QueueOrder(order itron.QueueOrder) Builder {
	b.raw.Sematr = order.Attr()
	return b
}

// Finish creates the semaphore.
//
// A count that doesn't fit the kernel's counter fails with
// BuildOutOfMemory before the kernel is called.
func (b Builder) Finish() (*Semaphore, error) {
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}
	if b.overflow.Occurred() {
		return nil, sys.Fail[BuildError]("acre_sem", abi.E_NOMEM)
	}

	raw := b.raw
	if !b.initialSet {
		raw.Isemcnt = raw.Maxsem
	}

	id, err := sys.CheckValue[BuildError]("acre_sem", sys.Kernel().AcreSem(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id)), nil
}
