package hostkernel

import "github.com/solid-rs/itron-rs/internal/abi"

type eventflag struct {
	atr     abi.ATR
	iflgptn abi.FLGPTN
	flgptn  abi.FLGPTN
	queue   waitQueue
}

func newEventflag(pk *abi.T_CFLG) (*eventflag, abi.ER) {
	if pk.Flgatr&^(abi.TA_TPRI|abi.TA_WMUL|abi.TA_CLR) != 0 {
		return nil, abi.E_RSATR
	}
	return &eventflag{
		atr:     pk.Flgatr,
		iflgptn: pk.Iflgptn,
		flgptn:  pk.Iflgptn,
		queue:   newWaitQueue(pk.Flgatr),
	}, abi.E_OK
}

// satisfied reports whether the pattern releases a waiter for waiptn.
func satisfied(flgptn, waiptn abi.FLGPTN, wfmode abi.MODE) bool {
	if wfmode == abi.TWF_ANDW {
		return flgptn&waiptn == waiptn
	}
	return flgptn&waiptn != 0
}

func (k *Kernel) AcreFlg(pk *abi.T_CFLG) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_flg", er)
	}
	flg, er := newEventflag(pk)
	if er != abi.E_OK {
		return k.trace("acre_flg", er)
	}
	return k.trace("acre_flg", k.flgs.alloc(flg))
}

func (k *Kernel) DelFlg(flgid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_flg", er, "id", flgid)
	}
	flg, er := k.flgs.get(flgid)
	if er != abi.E_OK {
		return k.trace("del_flg", er, "id", flgid)
	}
	if er := k.flgs.remove(flgid); er != abi.E_OK {
		return k.trace("del_flg", er, "id", flgid)
	}
	k.releaseAll(&flg.queue, abi.E_DLT)
	return k.trace("del_flg", abi.E_OK, "id", flgid)
}

func (k *Kernel) SetFlg(flgid abi.ID, setptn abi.FLGPTN) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("set_flg", er, "id", flgid)
	}
	flg, er := k.flgs.get(flgid)
	if er != abi.E_OK {
		return k.trace("set_flg", er, "id", flgid)
	}

	flg.flgptn |= setptn
	for _, w := range append([]*waiter(nil), flg.queue.waiters...) {
		if !satisfied(flg.flgptn, w.waiptn, w.wfmode) {
			continue
		}
		w.flgptn = flg.flgptn
		k.release(w, abi.E_OK)
		if flg.atr&abi.TA_CLR != 0 {
			flg.flgptn = 0
			break
		}
	}
	return k.trace("set_flg", abi.E_OK, "id", flgid, "setptn", setptn)
}

func (k *Kernel) ClrFlg(flgid abi.ID, clrptn abi.FLGPTN) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("clr_flg", er, "id", flgid)
	}
	flg, er := k.flgs.get(flgid)
	if er != abi.E_OK {
		return k.trace("clr_flg", er, "id", flgid)
	}
	flg.flgptn &= clrptn
	return k.trace("clr_flg", abi.E_OK, "id", flgid, "clrptn", clrptn)
}

func (k *Kernel) WaiFlg(flgid abi.ID, waiptn abi.FLGPTN, wfmode abi.MODE, p *abi.FLGPTN) abi.ER {
	return k.waiFlg("wai_flg", flgid, waiptn, wfmode, p, abi.TMO_FEVR, false)
}

func (k *Kernel) PolFlg(flgid abi.ID, waiptn abi.FLGPTN, wfmode abi.MODE, p *abi.FLGPTN) abi.ER {
	return k.waiFlg("pol_flg", flgid, waiptn, wfmode, p, abi.TMO_POL, true)
}

func (k *Kernel) TwaiFlg(flgid abi.ID, waiptn abi.FLGPTN, wfmode abi.MODE, p *abi.FLGPTN, tmout abi.TMO) abi.ER {
	return k.waiFlg("twai_flg", flgid, waiptn, wfmode, p, tmout, false)
}

func (k *Kernel) waiFlg(call string, flgid abi.ID, waiptn abi.FLGPTN, wfmode abi.MODE, p *abi.FLGPTN, tmo abi.TMO, poll bool) abi.ER {
	w, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkWait(tmo, poll); er != abi.E_OK {
			return nil, er
		}
		flg, er := k.flgs.get(flgid)
		if er != abi.E_OK {
			return nil, er
		}
		if waiptn == 0 || (wfmode != abi.TWF_ORW && wfmode != abi.TWF_ANDW) {
			return nil, abi.E_PAR
		}
		if satisfied(flg.flgptn, waiptn, wfmode) {
			*p = flg.flgptn
			if flg.atr&abi.TA_CLR != 0 {
				flg.flgptn = 0
			}
			return nil, abi.E_OK
		}
		w, er := k.enqueue(&flg.queue, abi.TTW_FLG, flgid, tmo)
		if w != nil {
			w.waiptn, w.wfmode = waiptn, wfmode
		}
		return w, er
	})
	if w != nil && er == abi.E_OK {
		*p = w.flgptn
	}
	return k.trace(call, er, "id", flgid, "waiptn", waiptn)
}

func (k *Kernel) IniFlg(flgid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ini_flg", er, "id", flgid)
	}
	flg, er := k.flgs.get(flgid)
	if er != abi.E_OK {
		return k.trace("ini_flg", er, "id", flgid)
	}
	k.releaseAll(&flg.queue, abi.E_DLT)
	flg.flgptn = flg.iflgptn
	return k.trace("ini_flg", abi.E_OK, "id", flgid)
}

func (k *Kernel) RefFlg(flgid abi.ID, pk *abi.T_RFLG) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_flg", er, "id", flgid)
	}
	flg, er := k.flgs.get(flgid)
	if er != abi.E_OK {
		return k.trace("ref_flg", er, "id", flgid)
	}
	*pk = abi.T_RFLG{
		Wtskid: flg.queue.firstID(),
		Flgptn: flg.flgptn,
	}
	return k.trace("ref_flg", abi.E_OK, "id", flgid)
}
