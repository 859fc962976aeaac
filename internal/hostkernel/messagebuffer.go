package hostkernel

import "github.com/solid-rs/itron-rs/internal/abi"

// Every stored message occupies its size rounded up to a multiple of four
// plus a four byte header.
func messageFootprint(size int) uintptr {
	return uintptr((size+3)&^3) + 4
}

type messagebuffer struct {
	maxmsz abi.Uint
	mbfsz  uintptr
	used   uintptr
	msgs   [][]byte
	sendq  waitQueue
	recvq  waitQueue
}

func newMessageBuffer(pk *abi.T_CMBF) (*messagebuffer, abi.ER) {
	if er := checkQueueAttr(pk.Mbfatr); er != abi.E_OK {
		return nil, er
	}
	if pk.Maxmsz == 0 || pk.Mbfmb != nil {
		return nil, abi.E_PAR
	}
	return &messagebuffer{
		maxmsz: pk.Maxmsz,
		mbfsz:  pk.Mbfsz,
		sendq:  newWaitQueue(pk.Mbfatr),
		recvq:  newWaitQueue(abi.TA_NULL),
	}, abi.E_OK
}

// store buffers msg if it fits.
func (mbf *messagebuffer) store(msg []byte) bool {
	size := messageFootprint(len(msg))
	if mbf.used+size > mbf.mbfsz {
		return false
	}
	mbf.msgs = append(mbf.msgs, append([]byte(nil), msg...))
	mbf.used += size
	return true
}

// refill moves waiting senders into the buffer in queue order until the
// first message that doesn't fit.
func (k *Kernel) refill(mbf *messagebuffer) {
	for s := mbf.sendq.first(); s != nil && mbf.store(s.msg); s = mbf.sendq.first() {
		k.release(s, abi.E_OK)
	}
}

func (k *Kernel) AcreMbf(pk *abi.T_CMBF) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_mbf", er)
	}
	mbf, er := newMessageBuffer(pk)
	if er != abi.E_OK {
		return k.trace("acre_mbf", er)
	}
	return k.trace("acre_mbf", k.mbfs.alloc(mbf))
}

func (k *Kernel) DelMbf(mbfid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_mbf", er, "id", mbfid)
	}
	mbf, er := k.mbfs.get(mbfid)
	if er != abi.E_OK {
		return k.trace("del_mbf", er, "id", mbfid)
	}
	if er := k.mbfs.remove(mbfid); er != abi.E_OK {
		return k.trace("del_mbf", er, "id", mbfid)
	}
	k.releaseAll(&mbf.sendq, abi.E_DLT)
	k.releaseAll(&mbf.recvq, abi.E_DLT)
	return k.trace("del_mbf", abi.E_OK, "id", mbfid)
}

func (k *Kernel) SndMbf(mbfid abi.ID, msg []byte) abi.ER {
	return k.sndMbf("snd_mbf", mbfid, msg, abi.TMO_FEVR, false)
}

func (k *Kernel) PsndMbf(mbfid abi.ID, msg []byte) abi.ER {
	return k.sndMbf("psnd_mbf", mbfid, msg, abi.TMO_POL, true)
}

func (k *Kernel) TsndMbf(mbfid abi.ID, msg []byte, tmout abi.TMO) abi.ER {
	return k.sndMbf("tsnd_mbf", mbfid, msg, tmout, false)
}

func (k *Kernel) sndMbf(call string, mbfid abi.ID, msg []byte, tmo abi.TMO, poll bool) abi.ER {
	_, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		mbf, er := k.mbfs.get(mbfid)
		if er != abi.E_OK {
			return nil, er
		}
		if len(msg) == 0 || uint64(len(msg)) > uint64(mbf.maxmsz) {
			return nil, abi.E_PAR
		}
		if r := mbf.recvq.first(); r != nil {
			r.msgsz = copy(r.msg, msg)
			k.release(r, abi.E_OK)
			return nil, abi.E_OK
		}
		if mbf.sendq.first() == nil && mbf.store(msg) {
			return nil, abi.E_OK
		}
		w, er := k.enqueue(&mbf.sendq, abi.TTW_SMBF, mbfid, tmo)
		if w != nil {
			w.msg = msg
		}
		return w, er
	})
	return k.trace(call, er, "id", mbfid, "msgsz", len(msg))
}

func (k *Kernel) RcvMbf(mbfid abi.ID, msg []byte) abi.ER_UINT {
	return k.rcvMbf("rcv_mbf", mbfid, msg, abi.TMO_FEVR, false)
}

func (k *Kernel) PrcvMbf(mbfid abi.ID, msg []byte) abi.ER_UINT {
	return k.rcvMbf("prcv_mbf", mbfid, msg, abi.TMO_POL, true)
}

func (k *Kernel) TrcvMbf(mbfid abi.ID, msg []byte, tmout abi.TMO) abi.ER_UINT {
	return k.rcvMbf("trcv_mbf", mbfid, msg, tmout, false)
}

func (k *Kernel) rcvMbf(call string, mbfid abi.ID, msg []byte, tmo abi.TMO, poll bool) abi.ER_UINT {
	var msgsz int
	w, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		mbf, er := k.mbfs.get(mbfid)
		if er != abi.E_OK {
			return nil, er
		}
		// The kernel writes up to maxmsz bytes to the caller's buffer.
		if uint64(len(msg)) < uint64(mbf.maxmsz) {
			return nil, abi.E_MACV
		}
		if len(mbf.msgs) > 0 {
			head := mbf.msgs[0]
			mbf.msgs = mbf.msgs[1:]
			mbf.used -= messageFootprint(len(head))
			msgsz = copy(msg, head)
			k.refill(mbf)
			return nil, abi.E_OK
		}
		if s := mbf.sendq.first(); s != nil {
			msgsz = copy(msg, s.msg)
			k.release(s, abi.E_OK)
			return nil, abi.E_OK
		}
		w, er := k.enqueue(&mbf.recvq, abi.TTW_RMBF, mbfid, tmo)
		if w != nil {
			w.msg = msg
		}
		return w, er
	})
	if w != nil && er == abi.E_OK {
		msgsz = w.msgsz
	}
	if er != abi.E_OK {
		return k.trace(call, er, "id", mbfid)
	}
	return k.trace(call, abi.ER_UINT(msgsz), "id", mbfid)
}

func (k *Kernel) IniMbf(mbfid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ini_mbf", er, "id", mbfid)
	}
	mbf, er := k.mbfs.get(mbfid)
	if er != abi.E_OK {
		return k.trace("ini_mbf", er, "id", mbfid)
	}
	k.releaseAll(&mbf.sendq, abi.E_DLT)
	k.releaseAll(&mbf.recvq, abi.E_DLT)
	mbf.msgs, mbf.used = nil, 0
	return k.trace("ini_mbf", abi.E_OK, "id", mbfid)
}

func (k *Kernel) RefMbf(mbfid abi.ID, pk *abi.T_RMBF) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_mbf", er, "id", mbfid)
	}
	mbf, er := k.mbfs.get(mbfid)
	if er != abi.E_OK {
		return k.trace("ref_mbf", er, "id", mbfid)
	}
	*pk = abi.T_RMBF{
		Stskid:  mbf.sendq.firstID(),
		Rtskid:  mbf.recvq.firstID(),
		Smbfcnt: abi.Uint(len(mbf.msgs)),
		Fmbfsz:  mbf.mbfsz - mbf.used,
	}
	return k.trace("ref_mbf", abi.E_OK, "id", mbfid)
}
