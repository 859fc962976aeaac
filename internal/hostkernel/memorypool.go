package hostkernel

import (
	"math/bits"
	"unsafe"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// Block sizes are rounded up to this alignment.
const blockAlign = 8

type memorypool struct {
	blkcnt abi.Uint
	blksz  uintptr
	region []byte
	free   []uintptr
	used   map[uintptr]bool
	queue  waitQueue
}

func newMemoryPool(pk *abi.T_CMPF) (*memorypool, abi.ER) {
	if er := checkQueueAttr(pk.Mpfatr); er != abi.E_OK {
		return nil, er
	}
	if pk.Blkcnt == 0 || pk.Blksz == 0 || pk.Mpf != nil || pk.Mpfmb != nil {
		return nil, abi.E_PAR
	}

	blksz := (uintptr(pk.Blksz) + blockAlign - 1) &^ (blockAlign - 1)
	hi, size := bits.Mul64(uint64(blksz), uint64(pk.Blkcnt))
	if hi != 0 || size > uint64(^uint(0)>>1) {
		return nil, abi.E_NOMEM
	}
	region, err := allocRegion(int(size))
	if err != nil {
		return nil, abi.E_NOMEM
	}

	mpf := &memorypool{
		blkcnt: pk.Blkcnt,
		blksz:  blksz,
		region: region,
		used:   make(map[uintptr]bool),
		queue:  newWaitQueue(pk.Mpfatr),
	}
	mpf.reset()
	return mpf, abi.E_OK
}

func (mpf *memorypool) base() uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(mpf.region)))
}

func (mpf *memorypool) block(i abi.Uint) uintptr {
	return mpf.base() + uintptr(i)*mpf.blksz
}

// reset returns every block to the free list, lowest address first.
func (mpf *memorypool) reset() {
	mpf.free = mpf.free[:0]
	for i := mpf.blkcnt; i > 0; i-- {
		mpf.free = append(mpf.free, mpf.block(i-1))
	}
	clear(mpf.used)
}

func (mpf *memorypool) get() (unsafe.Pointer, bool) {
	if len(mpf.free) == 0 {
		return nil, false
	}
	blk := mpf.free[len(mpf.free)-1]
	mpf.free = mpf.free[:len(mpf.free)-1]
	mpf.used[blk] = true
	return mpf.pointer(blk), true
}

func (mpf *memorypool) pointer(blk uintptr) unsafe.Pointer {
	return unsafe.Pointer(&mpf.region[blk-mpf.base()])
}

func (k *Kernel) AcreMpf(pk *abi.T_CMPF) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_mpf", er)
	}
	mpf, er := newMemoryPool(pk)
	if er != abi.E_OK {
		return k.trace("acre_mpf", er)
	}
	id := k.mpfs.alloc(mpf)
	if id < 0 {
		freeRegion(mpf.region)
	}
	return k.trace("acre_mpf", id)
}

func (k *Kernel) DelMpf(mpfid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_mpf", er, "id", mpfid)
	}
	mpf, er := k.mpfs.get(mpfid)
	if er != abi.E_OK {
		return k.trace("del_mpf", er, "id", mpfid)
	}
	if er := k.mpfs.remove(mpfid); er != abi.E_OK {
		return k.trace("del_mpf", er, "id", mpfid)
	}
	k.releaseAll(&mpf.queue, abi.E_DLT)
	freeRegion(mpf.region)
	mpf.region = nil
	return k.trace("del_mpf", abi.E_OK, "id", mpfid)
}

func (k *Kernel) GetMpf(mpfid abi.ID, p_blk *unsafe.Pointer) abi.ER {
	return k.getMpf("get_mpf", mpfid, p_blk, abi.TMO_FEVR, false)
}

func (k *Kernel) PgetMpf(mpfid abi.ID, p_blk *unsafe.Pointer) abi.ER {
	return k.getMpf("pget_mpf", mpfid, p_blk, abi.TMO_POL, true)
}

func (k *Kernel) TgetMpf(mpfid abi.ID, p_blk *unsafe.Pointer, tmout abi.TMO) abi.ER {
	return k.getMpf("tget_mpf", mpfid, p_blk, tmout, false)
}

func (k *Kernel) getMpf(call string, mpfid abi.ID, p_blk *unsafe.Pointer, tmo abi.TMO, poll bool) abi.ER {
	w, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		mpf, er := k.mpfs.get(mpfid)
		if er != abi.E_OK {
			return nil, er
		}
		if blk, ok := mpf.get(); ok {
			*p_blk = blk
			return nil, abi.E_OK
		}
		return k.enqueue(&mpf.queue, abi.TTW_MPF, mpfid, tmo)
	})
	if w != nil && er == abi.E_OK {
		*p_blk = w.blk
	}
	return k.trace(call, er, "id", mpfid)
}

func (k *Kernel) RelMpf(mpfid abi.ID, blk unsafe.Pointer) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("rel_mpf", er, "id", mpfid)
	}
	mpf, er := k.mpfs.get(mpfid)
	if er != abi.E_OK {
		return k.trace("rel_mpf", er, "id", mpfid)
	}
	addr := uintptr(blk)
	if !mpf.used[addr] {
		return k.trace("rel_mpf", abi.E_PAR, "id", mpfid)
	}

	if w := mpf.queue.first(); w != nil {
		// Ownership of the block passes directly to the waiter.
		w.blk = blk
		k.release(w, abi.E_OK)
		return k.trace("rel_mpf", abi.E_OK, "id", mpfid)
	}
	delete(mpf.used, addr)
	mpf.free = append(mpf.free, addr)
	return k.trace("rel_mpf", abi.E_OK, "id", mpfid)
}

func (k *Kernel) IniMpf(mpfid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ini_mpf", er, "id", mpfid)
	}
	mpf, er := k.mpfs.get(mpfid)
	if er != abi.E_OK {
		return k.trace("ini_mpf", er, "id", mpfid)
	}
	k.releaseAll(&mpf.queue, abi.E_DLT)
	mpf.reset()
	return k.trace("ini_mpf", abi.E_OK, "id", mpfid)
}

func (k *Kernel) RefMpf(mpfid abi.ID, pk *abi.T_RMPF) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_mpf", er, "id", mpfid)
	}
	mpf, er := k.mpfs.get(mpfid)
	if er != abi.E_OK {
		return k.trace("ref_mpf", er, "id", mpfid)
	}
	*pk = abi.T_RMPF{
		Wtskid:  mpf.queue.firstID(),
		Fblkcnt: abi.Uint(len(mpf.free)),
	}
	return k.trace("ref_mpf", abi.E_OK, "id", mpfid)
}
