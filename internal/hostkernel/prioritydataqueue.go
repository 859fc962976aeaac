package hostkernel

import (
	"slices"

	"github.com/solid-rs/itron-rs/internal/abi"
)

type pdqItem struct {
	data abi.DataElement
	pri  abi.PRI
}

type prioritydataqueue struct {
	pdqcnt  abi.Uint
	maxdpri abi.PRI
	// Sorted by priority, FIFO among equal priorities.
	items []pdqItem
	sendq waitQueue
	recvq waitQueue
}

func newPriorityDataqueue(pk *abi.T_CPDQ) (*prioritydataqueue, abi.ER) {
	if er := checkQueueAttr(pk.Pdqatr); er != abi.E_OK {
		return nil, er
	}
	if pk.Maxdpri < abi.TMIN_DPRI || pk.Maxdpri > abi.TMAX_DPRI || pk.Pdqmb != nil {
		return nil, abi.E_PAR
	}
	return &prioritydataqueue{
		pdqcnt:  pk.Pdqcnt,
		maxdpri: pk.Maxdpri,
		sendq:   newWaitQueue(pk.Pdqatr),
		recvq:   newWaitQueue(abi.TA_NULL),
	}, abi.E_OK
}

func (pdq *prioritydataqueue) insert(item pdqItem) {
	i := slices.IndexFunc(pdq.items, func(o pdqItem) bool { return o.pri > item.pri })
	if i < 0 {
		pdq.items = append(pdq.items, item)
		return
	}
	pdq.items = slices.Insert(pdq.items, i, item)
}

func (k *Kernel) AcrePdq(pk *abi.T_CPDQ) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_pdq", er)
	}
	pdq, er := newPriorityDataqueue(pk)
	if er != abi.E_OK {
		return k.trace("acre_pdq", er)
	}
	return k.trace("acre_pdq", k.pdqs.alloc(pdq))
}

func (k *Kernel) DelPdq(pdqid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_pdq", er, "id", pdqid)
	}
	pdq, er := k.pdqs.get(pdqid)
	if er != abi.E_OK {
		return k.trace("del_pdq", er, "id", pdqid)
	}
	if er := k.pdqs.remove(pdqid); er != abi.E_OK {
		return k.trace("del_pdq", er, "id", pdqid)
	}
	k.releaseAll(&pdq.sendq, abi.E_DLT)
	k.releaseAll(&pdq.recvq, abi.E_DLT)
	return k.trace("del_pdq", abi.E_OK, "id", pdqid)
}

func (k *Kernel) SndPdq(pdqid abi.ID, data abi.DataElement, datapri abi.PRI) abi.ER {
	return k.sndPdq("snd_pdq", pdqid, data, datapri, abi.TMO_FEVR, false)
}

func (k *Kernel) PsndPdq(pdqid abi.ID, data abi.DataElement, datapri abi.PRI) abi.ER {
	return k.sndPdq("psnd_pdq", pdqid, data, datapri, abi.TMO_POL, true)
}

func (k *Kernel) TsndPdq(pdqid abi.ID, data abi.DataElement, datapri abi.PRI, tmout abi.TMO) abi.ER {
	return k.sndPdq("tsnd_pdq", pdqid, data, datapri, tmout, false)
}

func (k *Kernel) sndPdq(call string, pdqid abi.ID, data abi.DataElement, datapri abi.PRI, tmo abi.TMO, poll bool) abi.ER {
	_, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		pdq, er := k.pdqs.get(pdqid)
		if er != abi.E_OK {
			return nil, er
		}
		if datapri < abi.TMIN_DPRI || datapri > pdq.maxdpri {
			return nil, abi.E_PAR
		}
		if r := pdq.recvq.first(); r != nil {
			r.data, r.datapri = data, datapri
			k.release(r, abi.E_OK)
			return nil, abi.E_OK
		}
		if pdq.sendq.first() == nil && len(pdq.items) < int(pdq.pdqcnt) {
			pdq.insert(pdqItem{data, datapri})
			return nil, abi.E_OK
		}
		w, er := k.enqueue(&pdq.sendq, abi.TTW_SPDQ, pdqid, tmo)
		if w != nil {
			w.data, w.datapri = data, datapri
		}
		return w, er
	})
	return k.trace(call, er, "id", pdqid, "data", data, "datapri", datapri)
}

func (k *Kernel) RcvPdq(pdqid abi.ID, p *abi.DataElement, pri *abi.PRI) abi.ER {
	return k.rcvPdq("rcv_pdq", pdqid, p, pri, abi.TMO_FEVR, false)
}

func (k *Kernel) PrcvPdq(pdqid abi.ID, p *abi.DataElement, pri *abi.PRI) abi.ER {
	return k.rcvPdq("prcv_pdq", pdqid, p, pri, abi.TMO_POL, true)
}

func (k *Kernel) TrcvPdq(pdqid abi.ID, p *abi.DataElement, pri *abi.PRI, tmout abi.TMO) abi.ER {
	return k.rcvPdq("trcv_pdq", pdqid, p, pri, tmout, false)
}

func (k *Kernel) rcvPdq(call string, pdqid abi.ID, p *abi.DataElement, pri *abi.PRI, tmo abi.TMO, poll bool) abi.ER {
	w, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		pdq, er := k.pdqs.get(pdqid)
		if er != abi.E_OK {
			return nil, er
		}
		if len(pdq.items) > 0 {
			*p, *pri = pdq.items[0].data, pdq.items[0].pri
			pdq.items = pdq.items[1:]
			if s := pdq.sendq.first(); s != nil {
				pdq.insert(pdqItem{s.data, s.datapri})
				k.release(s, abi.E_OK)
			}
			return nil, abi.E_OK
		}
		if s := pdq.sendq.first(); s != nil {
			*p, *pri = s.data, s.datapri
			k.release(s, abi.E_OK)
			return nil, abi.E_OK
		}
		return k.enqueue(&pdq.recvq, abi.TTW_RPDQ, pdqid, tmo)
	})
	if w != nil && er == abi.E_OK {
		*p, *pri = w.data, w.datapri
	}
	return k.trace(call, er, "id", pdqid)
}

func (k *Kernel) IniPdq(pdqid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ini_pdq", er, "id", pdqid)
	}
	pdq, er := k.pdqs.get(pdqid)
	if er != abi.E_OK {
		return k.trace("ini_pdq", er, "id", pdqid)
	}
	k.releaseAll(&pdq.sendq, abi.E_DLT)
	k.releaseAll(&pdq.recvq, abi.E_DLT)
	pdq.items = nil
	return k.trace("ini_pdq", abi.E_OK, "id", pdqid)
}

func (k *Kernel) RefPdq(pdqid abi.ID, pk *abi.T_RPDQ) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_pdq", er, "id", pdqid)
	}
	pdq, er := k.pdqs.get(pdqid)
	if er != abi.E_OK {
		return k.trace("ref_pdq", er, "id", pdqid)
	}
	*pk = abi.T_RPDQ{
		Stskid:  pdq.sendq.firstID(),
		Rtskid:  pdq.recvq.firstID(),
		Spdqcnt: abi.Uint(len(pdq.items)),
	}
	return k.trace("ref_pdq", abi.E_OK, "id", pdqid)
}
