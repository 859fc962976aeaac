package prioritydataqueue

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// PriorityDataqueue is an owned priority data queue.
type PriorityDataqueue struct {
	obj *sys.Object
}

// UnsafeOwn takes ownership of an existing priority data queue.
func UnsafeOwn(id itron.NonNullID) *PriorityDataqueue {
	k := sys.Kernel()
	return &PriorityDataqueue{sys.NewObject("PriorityDataqueue", id.Get(), func(id abi.ID) error {
		return deletePriorityDataqueue(k, id)
	})}
}

func (q *PriorityDataqueue) Ref() Ref {
	return Ref{itron.MustNonNullID(q.obj.MustID())}
}

func (q *PriorityDataqueue) String() string {
	return q.obj.String()
}

func (q *PriorityDataqueue) Close() error {
	return q.obj.Close()
}

func (q *PriorityDataqueue) Leak() Ref {
	return Ref{itron.MustNonNullID(q.obj.Disown())}
}

// Builder collects the parameters of a new priority data queue.
type Builder struct {
	raw      abi.T_CPDQ
	overflow sys.Overflow
}

// Build starts describing a queue holding up to capacity elements with
// data priorities from 1 to TMAX_DPRI.
func Build(capacity uint) Builder {
	b := Builder{raw: abi.T_CPDQ{Maxdpri: abi.TMAX_DPRI}}
	b.raw.Pdqcnt = b.overflow.Uint(capacity)
	return b
}

// MaxPriority sets the lowest data priority accepted by sends.
func (b Builder) MaxPriority(pri Priority) Builder {
	b.raw.Maxdpri = pri
	return b
}

func (b Builder) QueueOrder(order itron.QueueOrder) Builder {
	b.raw.Pdqatr = order.Attr()
	return b
}

func (b Builder) Finish() (*PriorityDataqueue, error) {
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}
	if b.overflow.Occurred() {
		return nil, sys.Fail[BuildError]("acre_pdq", abi.E_NOMEM)
	}

	raw := b.raw
	id, err := sys.CheckValue[BuildError]("acre_pdq", sys.Kernel().AcrePdq(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id)), nil
}
