package memorypool

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// MemoryPool is an owned memory pool. Deleting it invalidates every block
// acquired from it.
type MemoryPool struct {
	obj *sys.Object
}

// UnsafeOwn takes ownership of an existing memory pool.
func UnsafeOwn(id itron.NonNullID) *MemoryPool {
	k := sys.Kernel()
	return &MemoryPool{sys.NewObject("MemoryPool", id.Get(), func(id abi.ID) error {
		return deleteMemoryPool(k, id)
	})}
}

func (p *MemoryPool) Ref() Ref {
	return Ref{itron.MustNonNullID(p.obj.MustID())}
}

func (p *MemoryPool) String() string {
	return p.obj.String()
}

func (p *MemoryPool) Close() error {
	return p.obj.Close()
}

func (p *MemoryPool) Leak() Ref {
	return Ref{itron.MustNonNullID(p.obj.Disown())}
}

// Builder collects the parameters of a new memory pool.
type Builder struct {
	raw      abi.T_CMPF
	overflow sys.Overflow
}

// Build starts describing a pool of blockCount blocks of blockSize bytes
// each. The kernel allocates the pool's storage.
func Build(blockSize, blockCount uint) Builder {
	var b Builder
	b.raw.Blksz = b.overflow.Uint(blockSize)
	b.raw.Blkcnt = b.overflow.Uint(blockCount)
	return b
}

func (b Builder) QueueOrder(order itron.QueueOrder) Builder {
	b.raw.Mpfatr = order.Attr()
	return b
}

func (b Builder) Finish() (*MemoryPool, error) {
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}
	if b.overflow.Occurred() {
		return nil, sys.Fail[BuildError]("acre_mpf", abi.E_NOMEM)
	}

	raw := b.raw
	id, err := sys.CheckValue[BuildError]("acre_mpf", sys.Kernel().AcreMpf(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id)), nil
}
