package hostkernel

import "github.com/solid-rs/itron-rs/internal/abi"

type dataqueue struct {
	dtqcnt abi.Uint
	items  []abi.DataElement
	// Senders wait in the order given by the attribute, receivers in FIFO
	// order.
	sendq waitQueue
	recvq waitQueue
}

func newDataqueue(pk *abi.T_CDTQ) (*dataqueue, abi.ER) {
	if er := checkQueueAttr(pk.Dtqatr); er != abi.E_OK {
		return nil, er
	}
	if pk.Dtqmb != nil {
		return nil, abi.E_PAR
	}
	return &dataqueue{
		dtqcnt: pk.Dtqcnt,
		sendq:  newWaitQueue(pk.Dtqatr),
		recvq:  newWaitQueue(abi.TA_NULL),
	}, abi.E_OK
}

func (k *Kernel) AcreDtq(pk *abi.T_CDTQ) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_dtq", er)
	}
	dtq, er := newDataqueue(pk)
	if er != abi.E_OK {
		return k.trace("acre_dtq", er)
	}
	return k.trace("acre_dtq", k.dtqs.alloc(dtq))
}

func (k *Kernel) DelDtq(dtqid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_dtq", er, "id", dtqid)
	}
	dtq, er := k.dtqs.get(dtqid)
	if er != abi.E_OK {
		return k.trace("del_dtq", er, "id", dtqid)
	}
	if er := k.dtqs.remove(dtqid); er != abi.E_OK {
		return k.trace("del_dtq", er, "id", dtqid)
	}
	k.releaseAll(&dtq.sendq, abi.E_DLT)
	k.releaseAll(&dtq.recvq, abi.E_DLT)
	return k.trace("del_dtq", abi.E_OK, "id", dtqid)
}

func (k *Kernel) SndDtq(dtqid abi.ID, data abi.DataElement) abi.ER {
	return k.sndDtq("snd_dtq", dtqid, data, abi.TMO_FEVR, false)
}

func (k *Kernel) PsndDtq(dtqid abi.ID, data abi.DataElement) abi.ER {
	return k.sndDtq("psnd_dtq", dtqid, data, abi.TMO_POL, true)
}

func (k *Kernel) TsndDtq(dtqid abi.ID, data abi.DataElement, tmout abi.TMO) abi.ER {
	return k.sndDtq("tsnd_dtq", dtqid, data, tmout, false)
}

func (k *Kernel) sndDtq(call string, dtqid abi.ID, data abi.DataElement, tmo abi.TMO, poll bool) abi.ER {
	_, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		dtq, er := k.dtqs.get(dtqid)
		if er != abi.E_OK {
			return nil, er
		}
		if r := dtq.recvq.first(); r != nil {
			r.data = data
			k.release(r, abi.E_OK)
			return nil, abi.E_OK
		}
		if dtq.sendq.first() == nil && len(dtq.items) < int(dtq.dtqcnt) {
			dtq.items = append(dtq.items, data)
			return nil, abi.E_OK
		}
		w, er := k.enqueue(&dtq.sendq, abi.TTW_SDTQ, dtqid, tmo)
		if w != nil {
			w.data = data
		}
		return w, er
	})
	return k.trace(call, er, "id", dtqid, "data", data)
}

func (k *Kernel) FsndDtq(dtqid abi.ID, data abi.DataElement) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("fsnd_dtq", er, "id", dtqid)
	}
	dtq, er := k.dtqs.get(dtqid)
	if er != abi.E_OK {
		return k.trace("fsnd_dtq", er, "id", dtqid)
	}
	if dtq.dtqcnt == 0 {
		return k.trace("fsnd_dtq", abi.E_ILUSE, "id", dtqid)
	}

	if r := dtq.recvq.first(); r != nil {
		r.data = data
		k.release(r, abi.E_OK)
		return k.trace("fsnd_dtq", abi.E_OK, "id", dtqid, "data", data)
	}
	if len(dtq.items) == int(dtq.dtqcnt) {
		dtq.items = dtq.items[1:]
	}
	dtq.items = append(dtq.items, data)
	return k.trace("fsnd_dtq", abi.E_OK, "id", dtqid, "data", data)
}

func (k *Kernel) RcvDtq(dtqid abi.ID, p *abi.DataElement) abi.ER {
	return k.rcvDtq("rcv_dtq", dtqid, p, abi.TMO_FEVR, false)
}

func (k *Kernel) PrcvDtq(dtqid abi.ID, p *abi.DataElement) abi.ER {
	return k.rcvDtq("prcv_dtq", dtqid, p, abi.TMO_POL, true)
}

func (k *Kernel) TrcvDtq(dtqid abi.ID, p *abi.DataElement, tmout abi.TMO) abi.ER {
	return k.rcvDtq("trcv_dtq", dtqid, p, tmout, false)
}

func (k *Kernel) rcvDtq(call string, dtqid abi.ID, p *abi.DataElement, tmo abi.TMO, poll bool) abi.ER {
	w, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		dtq, er := k.dtqs.get(dtqid)
		if er != abi.E_OK {
			return nil, er
		}
		if len(dtq.items) > 0 {
			*p = dtq.items[0]
			dtq.items = dtq.items[1:]
			if s := dtq.sendq.first(); s != nil {
				dtq.items = append(dtq.items, s.data)
				k.release(s, abi.E_OK)
			}
			return nil, abi.E_OK
		}
		if s := dtq.sendq.first(); s != nil {
			*p = s.data
			k.release(s, abi.E_OK)
			return nil, abi.E_OK
		}
		return k.enqueue(&dtq.recvq, abi.TTW_RDTQ, dtqid, tmo)
	})
	if w != nil && er == abi.E_OK {
		*p = w.data
	}
	return k.trace(call, er, "id", dtqid)
}

func (k *Kernel) IniDtq(dtqid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ini_dtq", er, "id", dtqid)
	}
	dtq, er := k.dtqs.get(dtqid)
	if er != abi.E_OK {
		return k.trace("ini_dtq", er, "id", dtqid)
	}
	k.releaseAll(&dtq.sendq, abi.E_DLT)
	k.releaseAll(&dtq.recvq, abi.E_DLT)
	dtq.items = nil
	return k.trace("ini_dtq", abi.E_OK, "id", dtqid)
}

func (k *Kernel) RefDtq(dtqid abi.ID, pk *abi.T_RDTQ) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_dtq", er, "id", dtqid)
	}
	dtq, er := k.dtqs.get(dtqid)
	if er != abi.E_OK {
		return k.trace("ref_dtq", er, "id", dtqid)
	}
	*pk = abi.T_RDTQ{
		Stskid:  dtq.sendq.firstID(),
		Rtskid:  dtq.recvq.firstID(),
		Sdtqcnt: abi.Uint(len(dtq.items)),
	}
	return k.trace("ref_dtq", abi.E_OK, "id", dtqid)
}
