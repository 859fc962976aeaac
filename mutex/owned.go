package mutex

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Mutex is an owned mutex.
type Mutex struct {
	obj *sys.Object
}

// UnsafeOwn takes ownership of an existing mutex.
func UnsafeOwn(id itron.NonNullID) *Mutex {
	k := sys.Kernel()
	return &Mutex{sys.NewObject("Mutex", id.Get(), func(id abi.ID) error {
		return deleteMutex(k, id)
	})}
}

func (m *Mutex) Ref() Ref {
	return Ref{itron.MustNonNullID(m.obj.MustID())}
}

func (m *Mutex) String() string {
	return m.obj.String()
}

func (m *Mutex) Close() error {
	return m.obj.Close()
}

func (m *Mutex) Leak() Ref {
	return Ref{itron.MustNonNullID(m.obj.Disown())}
}

// Priority is a task priority.
type Priority = abi.PRI

// PriorityProtection is the protocol a mutex uses against priority
// inversion. The zero value is None.
type PriorityProtection struct {
	atr     abi.ATR
	ceiling Priority
}

// None disables priority protection.
var None PriorityProtection

// Ceiling raises the priority of the owning task to pri. Tasks whose base
// priority is higher than pri can't lock the mutex.
func Ceiling(pri Priority) PriorityProtection {
	return PriorityProtection{abi.TA_CEILING, pri}
}

// Inherit raises the priority of the owning task to the highest priority
// among the waiting tasks. It returns false if the selected kernel lacks
// priority inheritance.
func Inherit() (PriorityProtection, bool) {
	if !abi.PiMutex {
		return None, false
	}
	return PriorityProtection{atr: abi.TA_INHERIT}, true
}

func (p PriorityProtection) String() string {
	switch p.atr {
	case abi.TA_CEILING:
		return fmt.Sprintf("ceiling(%d)", p.ceiling)
	case abi.TA_INHERIT:
		return "inherit"
	}
	return "none"
}

// Builder collects the parameters of a new mutex.
type Builder struct {
	protection PriorityProtection
	order      itron.QueueOrder
}

// Build starts describing a mutex without priority protection.
func Build() Builder {
	return Builder{}
}

func (b Builder) PriorityProtection(p PriorityProtection) Builder {
	b.protection = p
	return b
}

// QueueOrder sets the order of waiting tasks. Mutexes with priority
// protection always use task priority order.
func (b Builder) QueueOrder(order itron.QueueOrder) Builder {
	b.order = order
	return b
}

func (b Builder) Finish() (*Mutex, error) {
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}

	raw := abi.T_CMTX{
		Mtxatr:  b.protection.atr,
		Ceilpri: b.protection.ceiling,
	}
	if raw.Mtxatr == abi.TA_NULL {
		raw.Mtxatr = b.order.Attr()
	}

	id, err := sys.CheckValue[BuildError]("acre_mtx", sys.Kernel().AcreMtx(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id)), nil
}
