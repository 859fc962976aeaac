package hostkernel

import (
	"slices"

	"github.com/solid-rs/itron-rs/internal/abi"
)

type mutex struct {
	atr     abi.ATR
	ceilpri abi.PRI
	owner   *task
	queue   waitQueue
}

func (m *mutex) ceiling() bool {
	return m.atr == abi.TA_CEILING
}

func newMutex(pk *abi.T_CMTX) (*mutex, abi.ER) {
	switch pk.Mtxatr {
	case abi.TA_NULL, abi.TA_TPRI:
	case abi.TA_CEILING:
		if pk.Ceilpri < abi.TMIN_TPRI || pk.Ceilpri > abi.TMAX_TPRI {
			return nil, abi.E_PAR
		}
	case abi.TA_INHERIT:
		if !abi.PiMutex {
			return nil, abi.E_RSATR
		}
	default:
		return nil, abi.E_RSATR
	}

	// Mutexes with a locking protocol queue waiters by priority.
	queueAtr := pk.Mtxatr
	if queueAtr != abi.TA_NULL {
		queueAtr = abi.TA_TPRI
	}
	return &mutex{
		atr:     pk.Mtxatr,
		ceilpri: pk.Ceilpri,
		queue:   newWaitQueue(queueAtr),
	}, abi.E_OK
}

// lockedBy makes t the owner of m and raises t's priority to the ceiling.
func (k *Kernel) lockedBy(m *mutex, t *task) {
	m.owner = t
	t.mutexes = append(t.mutexes, m)
	t.updatePriority()
}

// unlock releases m and hands it to the first waiter, if any.
func (k *Kernel) unlock(m *mutex) {
	if t := m.owner; t != nil {
		if i := slices.Index(t.mutexes, m); i >= 0 {
			t.mutexes = slices.Delete(t.mutexes, i, i+1)
		}
		t.updatePriority()
	}
	m.owner = nil

	if w := m.queue.first(); w != nil {
		if t, er := k.tsks.get(w.tskid); er == abi.E_OK {
			k.lockedBy(m, t)
		}
		k.release(w, abi.E_OK)
	}
}

func (k *Kernel) AcreMtx(pk *abi.T_CMTX) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_mtx", er)
	}
	m, er := newMutex(pk)
	if er != abi.E_OK {
		return k.trace("acre_mtx", er)
	}
	return k.trace("acre_mtx", k.mtxs.alloc(m))
}

func (k *Kernel) DelMtx(mtxid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_mtx", er, "id", mtxid)
	}
	m, er := k.mtxs.get(mtxid)
	if er != abi.E_OK {
		return k.trace("del_mtx", er, "id", mtxid)
	}
	if er := k.mtxs.remove(mtxid); er != abi.E_OK {
		return k.trace("del_mtx", er, "id", mtxid)
	}
	k.releaseAll(&m.queue, abi.E_DLT)
	k.unlock(m)
	return k.trace("del_mtx", abi.E_OK, "id", mtxid)
}

func (k *Kernel) LocMtx(mtxid abi.ID) abi.ER {
	return k.locMtx("loc_mtx", mtxid, abi.TMO_FEVR, false)
}

func (k *Kernel) PlocMtx(mtxid abi.ID) abi.ER {
	return k.locMtx("ploc_mtx", mtxid, abi.TMO_POL, true)
}

func (k *Kernel) TlocMtx(mtxid abi.ID, tmout abi.TMO) abi.ER {
	return k.locMtx("tloc_mtx", mtxid, tmout, false)
}

func (k *Kernel) locMtx(call string, mtxid abi.ID, tmo abi.TMO, poll bool) abi.ER {
	_, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		m, er := k.mtxs.get(mtxid)
		if er != abi.E_OK {
			return nil, er
		}
		if m.ceiling() && k.host.bpri < m.ceilpri {
			return nil, abi.E_ILUSE
		}
		switch m.owner {
		case nil:
			k.lockedBy(m, k.host)
			return nil, abi.E_OK
		case k.host:
			return nil, abi.E_OBJ
		}
		return k.enqueue(&m.queue, abi.TTW_MTX, mtxid, tmo)
	})
	return k.trace(call, er, "id", mtxid)
}

func (k *Kernel) UnlMtx(mtxid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("unl_mtx", er, "id", mtxid)
	}
	m, er := k.mtxs.get(mtxid)
	if er != abi.E_OK {
		return k.trace("unl_mtx", er, "id", mtxid)
	}
	if m.owner != k.host {
		return k.trace("unl_mtx", abi.E_OBJ, "id", mtxid)
	}
	k.unlock(m)
	return k.trace("unl_mtx", abi.E_OK, "id", mtxid)
}

func (k *Kernel) IniMtx(mtxid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ini_mtx", er, "id", mtxid)
	}
	m, er := k.mtxs.get(mtxid)
	if er != abi.E_OK {
		return k.trace("ini_mtx", er, "id", mtxid)
	}
	k.releaseAll(&m.queue, abi.E_DLT)
	k.unlock(m)
	return k.trace("ini_mtx", abi.E_OK, "id", mtxid)
}

func (k *Kernel) RefMtx(mtxid abi.ID, pk *abi.T_RMTX) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_mtx", er, "id", mtxid)
	}
	m, er := k.mtxs.get(mtxid)
	if er != abi.E_OK {
		return k.trace("ref_mtx", er, "id", mtxid)
	}
	htskid := abi.TSK_NONE
	if m.owner != nil {
		htskid = m.owner.id
	}
	*pk = abi.T_RMTX{
		Htskid: htskid,
		Wtskid: m.queue.firstID(),
	}
	return k.trace("ref_mtx", abi.E_OK, "id", mtxid)
}
