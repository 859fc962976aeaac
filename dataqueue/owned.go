package dataqueue

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Dataqueue is an owned data queue.
type Dataqueue struct {
	obj *sys.Object
}

// UnsafeOwn takes ownership of an existing data queue.
func UnsafeOwn(id itron.NonNullID) *Dataqueue {
	k := sys.Kernel()
	return &Dataqueue{sys.NewObject("Dataqueue", id.Get(), func(id abi.ID) error {
		return deleteDataqueue(k, id)
	})}
}

// Ref panics after Close or Leak.
func (q *Dataqueue) Ref() Ref {
	return Ref{itron.MustNonNullID(q.obj.MustID())}
}

func (q *Dataqueue) String() string {
	return q.obj.String()
}

// Close deletes the data queue. Waiting tasks are released with the
// Deleted kind.
func (q *Dataqueue) Close() error {
	return q.obj.Close()
}

// Leak gives up ownership without deleting the data queue.
func (q *Dataqueue) Leak() Ref {
	return Ref{itron.MustNonNullID(q.obj.Disown())}
}

type Builder struct {
	raw      abi.T_CDTQ
	overflow sys.Overflow
}

// Build starts describing a data queue holding up to capacity elements.
// The kernel allocates the queue's storage.
func Build(capacity uint) Builder {
	var b Builder
	b.raw.Dtqcnt = b.overflow.Uint(capacity)
	return b
}

func (b Builder) QueueOrder(order itron.QueueOrder) Builder {
	b.raw.Dtqatr = order.Attr()
	return b
}

// Finish creates the data queue.
func (b Builder) Finish() (*Dataqueue, error) {
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}
	if b.overflow.Occurred() {
		return nil, sys.Fail[BuildError]("acre_dtq", abi.E_NOMEM)
	}

	raw := b.raw
	id, err := sys.CheckValue[BuildError]("acre_dtq", sys.Kernel().AcreDtq(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id)), nil
}
