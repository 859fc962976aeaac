// Package memorypool wraps fixed-sized memory pools.
package memorypool

import (
	"fmt"
	"unsafe"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Block is a memory block acquired from a memory pool.
//
// The memory is not managed by the Go runtime: it must not hold the only
// reference to Go pointers, and it must not be used after it was released
// or its pool was deleted.
type Block struct {
	ptr unsafe.Pointer
}

// UnsafeBlock wraps a pointer to a block.
func UnsafeBlock(ptr unsafe.Pointer) Block {
	return Block{ptr}
}

// Pointer returns the start of the block.
func (b Block) Pointer() unsafe.Pointer {
	return b.ptr
}

// Bytes returns the first n bytes of the block.
//
// n must not exceed the block size of the pool.
func (b Block) Bytes(n int) []byte {
	return unsafe.Slice((*byte)(b.ptr), n)
}

// Ref is a borrowed reference to a memory pool.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing memory pool.
//
// The caller must ensure that id refers to a memory pool for as long as the
// Ref is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("MemoryPool(%s)", r.id)
}

// Get acquires a block, blocking while none is free.
func (r Ref) Get() (Block, error) {
	var ptr unsafe.Pointer
	err := sys.Check[GetError]("get_mpf", sys.Kernel().GetMpf(r.id.Get(), &ptr))
	return Block{ptr}, err
}

func (r Ref) GetTimeout(tmo itron.Timeout) (Block, error) {
	var ptr unsafe.Pointer
	err := sys.Check[GetTimeoutError]("tget_mpf", sys.Kernel().TgetMpf(r.id.Get(), &ptr, tmo.Raw()))
	return Block{ptr}, err
}

// TryGet fails with TryGetTimeout instead of blocking.
func (r Ref) TryGet() (Block, error) {
	var ptr unsafe.Pointer
	err := sys.Check[TryGetError]("pget_mpf", sys.Kernel().PgetMpf(r.id.Get(), &ptr))
	return Block{ptr}, err
}

// Release returns blk to the pool. The block must have been acquired from
// this pool.
func (r Ref) Release(blk Block) error {
	return sys.Check[ReleaseError]("rel_mpf", sys.Kernel().RelMpf(r.id.Get(), blk.ptr))
}

// Initialize returns every block to the pool. Waiting tasks are released
// with the Deleted kind.
func (r Ref) Initialize() error {
	return sys.Check[InitializeError]("ini_mpf", sys.Kernel().IniMpf(r.id.Get()))
}

func (r Ref) Info() (Info, error) {
	var info Info
	err := sys.Check[InfoError]("ref_mpf", sys.Kernel().RefMpf(r.id.Get(), &info.raw))
	return info, err
}

// Delete deletes the memory pool.
//
// The caller must ensure that no [*MemoryPool] owns it.
func (r Ref) Delete() error {
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deleteMemoryPool(sys.Kernel(), r.id.Get())
}

func deleteMemoryPool(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_mpf", k.DelMpf(id))
}

// Info is a snapshot of the state of a memory pool.
type Info struct {
	raw abi.T_RMPF
}

// FreeBlockCount is the number of blocks available.
func (i Info) FreeBlockCount() uint {
	return uint(i.raw.Fblkcnt)
}

func (i Info) FirstWaitingTaskID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Wtskid)
}
