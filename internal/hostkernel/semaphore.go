package hostkernel

import "github.com/solid-rs/itron-rs/internal/abi"

type semaphore struct {
	isemcnt abi.Uint
	maxsem  abi.Uint
	semcnt  abi.Uint
	queue   waitQueue
}

func newSemaphore(pk *abi.T_CSEM) (*semaphore, abi.ER) {
	if er := checkQueueAttr(pk.Sematr); er != abi.E_OK {
		return nil, er
	}
	if pk.Maxsem == 0 || pk.Maxsem > abi.TMAX_MAXSEM || pk.Isemcnt > pk.Maxsem {
		return nil, abi.E_PAR
	}
	return &semaphore{
		isemcnt: pk.Isemcnt,
		maxsem:  pk.Maxsem,
		semcnt:  pk.Isemcnt,
		queue:   newWaitQueue(pk.Sematr),
	}, abi.E_OK
}

func (k *Kernel) AcreSem(pk *abi.T_CSEM) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_sem", er)
	}
	sem, er := newSemaphore(pk)
	if er != abi.E_OK {
		return k.trace("acre_sem", er)
	}
	return k.trace("acre_sem", k.sems.alloc(sem))
}

func (k *Kernel) DelSem(semid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_sem", er, "id", semid)
	}
	sem, er := k.sems.get(semid)
	if er != abi.E_OK {
		return k.trace("del_sem", er, "id", semid)
	}
	if er := k.sems.remove(semid); er != abi.E_OK {
		return k.trace("del_sem", er, "id", semid)
	}
	k.releaseAll(&sem.queue, abi.E_DLT)
	return k.trace("del_sem", abi.E_OK, "id", semid)
}

func (k *Kernel) SigSem(semid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("sig_sem", er, "id", semid)
	}
	sem, er := k.sems.get(semid)
	if er != abi.E_OK {
		return k.trace("sig_sem", er, "id", semid)
	}

	switch {
	case sem.queue.first() != nil:
		k.release(sem.queue.first(), abi.E_OK)
	case sem.semcnt < sem.maxsem:
		sem.semcnt++
	default:
		return k.trace("sig_sem", abi.E_QOVR, "id", semid)
	}
	return k.trace("sig_sem", abi.E_OK, "id", semid)
}

func (k *Kernel) WaiSem(semid abi.ID) abi.ER {
	return k.waiSem("wai_sem", semid, abi.TMO_FEVR, false)
}

func (k *Kernel) PolSem(semid abi.ID) abi.ER {
	return k.waiSem("pol_sem", semid, abi.TMO_POL, true)
}

func (k *Kernel) TwaiSem(semid abi.ID, tmout abi.TMO) abi.ER {
	return k.waiSem("twai_sem", semid, tmout, false)
}

func (k *Kernel) waiSem(call string, semid abi.ID, tmo abi.TMO, poll bool) abi.ER {
	_, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		sem, er := k.sems.get(semid)
		if er != abi.E_OK {
			return nil, er
		}
		if sem.semcnt > 0 {
			sem.semcnt--
			return nil, abi.E_OK
		}
		return k.enqueue(&sem.queue, abi.TTW_SEM, semid, tmo)
	})
	return k.trace(call, er, "id", semid)
}

func (k *Kernel) IniSem(semid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ini_sem", er, "id", semid)
	}
	sem, er := k.sems.get(semid)
	if er != abi.E_OK {
		return k.trace("ini_sem", er, "id", semid)
	}
	k.releaseAll(&sem.queue, abi.E_DLT)
	sem.semcnt = sem.isemcnt
	return k.trace("ini_sem", abi.E_OK, "id", semid)
}

func (k *Kernel) RefSem(semid abi.ID, pk *abi.T_RSEM) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_sem", er, "id", semid)
	}
	sem, er := k.sems.get(semid)
	if er != abi.E_OK {
		return k.trace("ref_sem", er, "id", semid)
	}
	*pk = abi.T_RSEM{
		Wtskid: sem.queue.firstID(),
		Semcnt: sem.semcnt,
	}
	return k.trace("ref_sem", abi.E_OK, "id", semid)
}
