package hostkernel

import "github.com/solid-rs/itron-rs/internal/abi"

type task struct {
	id    abi.ID
	atr   abi.ATR
	exinf abi.EXINF
	entry abi.TASK
	stksz uintptr

	// TTS_DMT or TTS_RDY for created tasks, TTS_RUN for the host task.
	// Suspension is tracked separately.
	state     abi.STAT
	suspended bool

	ipri, bpri, pri abi.PRI

	actcnt, wupcnt abi.Uint
	raster, dister bool

	mutexes []*mutex

	// Incremented on every activation so that a terminated entry goroutine
	// can't complete a later activation.
	gen uint64

	// Only used by the host task.
	sleepq waitQueue
	suspq  waitQueue
}

// updatePriority derives the current priority from the base priority and
// the ceilings of held mutexes.
func (t *task) updatePriority() {
	t.pri = t.bpri
	for _, m := range t.mutexes {
		if m.ceiling() && m.ceilpri < t.pri {
			t.pri = m.ceilpri
		}
	}
}

func newTask(pk *abi.T_CTSK) (*task, abi.ER) {
	if pk.Tskatr&^abi.TA_ACT != 0 {
		return nil, abi.E_RSATR
	}
	if pk.Task == nil ||
		pk.Itskpri < abi.TMIN_TPRI || pk.Itskpri > abi.TMAX_TPRI ||
		pk.Stksz < minStackSize ||
		(pk.Iprcid != abi.TPRC_INI && pk.Iprcid != HostProcessorID) {
		return nil, abi.E_PAR
	}
	return &task{
		atr:   pk.Tskatr,
		exinf: pk.Exinf,
		entry: pk.Task,
		stksz: pk.Stksz,
		state: abi.TTS_DMT,
		ipri:  pk.Itskpri,
		bpri:  pk.Itskpri,
		pri:   pk.Itskpri,
	}, abi.E_OK
}

// task resolves tskid, mapping TSK_SELF to the host task.
func (k *Kernel) task(tskid abi.ID) (*task, abi.ER) {
	if tskid == abi.TSK_SELF {
		return k.host, abi.E_OK
	}
	return k.tsks.get(tskid)
}

// status returns the task state as reported by get_tst and ref_tsk.
func (k *Kernel) status(t *task) abi.STAT {
	state := t.state
	if t == k.host && k.waitOf(t.id) != nil {
		state = abi.TTS_WAI
	}
	if t.suspended {
		if state == abi.TTS_WAI {
			return abi.TTS_WAS
		}
		return abi.TTS_SUS
	}
	return state
}

// start activates a dormant task by running its entry on a new goroutine.
func (k *Kernel) start(t *task) {
	t.state = abi.TTS_RDY
	t.gen++
	gen, entry, exinf := t.gen, t.entry, t.exinf
	k.log.Debug("task started", "id", t.id)

	go func() {
		entry(exinf)

		k.mu.Lock()
		defer k.mu.Unlock()
		if t.gen == gen && t.state != abi.TTS_DMT {
			k.log.Debug("task exited", "id", t.id)
			k.terminate(t)
		}
	}()
}

// terminate makes t dormant and processes a queued activation request.
func (k *Kernel) terminate(t *task) {
	for len(t.mutexes) > 0 {
		k.unlock(t.mutexes[0])
	}
	t.state = abi.TTS_DMT
	t.suspended = false
	t.raster, t.dister = false, false
	t.wupcnt = 0
	t.bpri, t.pri = t.ipri, t.ipri

	if t.actcnt > 0 {
		t.actcnt--
		k.start(t)
	}
}

func (k *Kernel) AcreTsk(pk *abi.T_CTSK) abi.ER_ID {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("acre_tsk", er)
	}
	t, er := newTask(pk)
	if er != abi.E_OK {
		return k.trace("acre_tsk", er)
	}
	id := k.tsks.alloc(t)
	if id < 0 {
		return k.trace("acre_tsk", id)
	}
	t.id = id
	if t.atr&abi.TA_ACT != 0 {
		k.start(t)
	}
	return k.trace("acre_tsk", id)
}

func (k *Kernel) DelTsk(tskid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("del_tsk", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("del_tsk", er, "id", tskid)
	}
	if t.state != abi.TTS_DMT {
		return k.trace("del_tsk", abi.E_OBJ, "id", tskid)
	}
	return k.trace("del_tsk", k.tsks.remove(t.id), "id", tskid)
}

func (k *Kernel) ActTsk(tskid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.trace("act_tsk", k.activate(tskid), "id", tskid)
}

func (k *Kernel) MactTsk(tskid abi.ID, prcid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if prcid != abi.TPRC_INI && prcid != HostProcessorID {
		return k.trace("mact_tsk", abi.E_PAR, "id", tskid, "prcid", prcid)
	}
	return k.trace("mact_tsk", k.activate(tskid), "id", tskid, "prcid", prcid)
}

func (k *Kernel) activate(tskid abi.ID) abi.ER {
	if er := k.checkUnlocked(); er != abi.E_OK {
		return er
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return er
	}
	if t.state == abi.TTS_DMT {
		k.start(t)
		return abi.E_OK
	}
	if t.actcnt >= abi.TMAX_ACTCNT {
		return abi.E_QOVR
	}
	t.actcnt++
	return abi.E_OK
}

func (k *Kernel) CanAct(tskid abi.ID) abi.ER_UINT {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("can_act", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("can_act", er, "id", tskid)
	}
	n := t.actcnt
	t.actcnt = 0
	return k.trace("can_act", abi.ER_UINT(n), "id", tskid)
}

func (k *Kernel) GetTst(tskid abi.ID, p_tskstat *abi.STAT) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("get_tst", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("get_tst", er, "id", tskid)
	}
	*p_tskstat = k.status(t)
	return k.trace("get_tst", abi.E_OK, "id", tskid)
}

func (k *Kernel) ChgPri(tskid abi.ID, tskpri abi.PRI) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("chg_pri", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("chg_pri", er, "id", tskid)
	}
	pri := tskpri
	if pri == abi.TPRI_INI {
		pri = t.ipri
	} else if pri < abi.TMIN_TPRI || pri > abi.TMAX_TPRI {
		return k.trace("chg_pri", abi.E_PAR, "id", tskid, "pri", tskpri)
	}
	if t.state == abi.TTS_DMT {
		return k.trace("chg_pri", abi.E_OBJ, "id", tskid)
	}
	for _, m := range t.mutexes {
		if m.ceiling() && pri < m.ceilpri {
			return k.trace("chg_pri", abi.E_ILUSE, "id", tskid, "pri", tskpri)
		}
	}

	t.bpri = pri
	t.updatePriority()
	return k.trace("chg_pri", abi.E_OK, "id", tskid, "pri", pri)
}

func (k *Kernel) GetPri(tskid abi.ID, p_tskpri *abi.PRI) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("get_pri", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("get_pri", er, "id", tskid)
	}
	if t.state == abi.TTS_DMT {
		return k.trace("get_pri", abi.E_OBJ, "id", tskid)
	}
	*p_tskpri = t.pri
	return k.trace("get_pri", abi.E_OK, "id", tskid)
}

func (k *Kernel) GetInf(p_exinf *abi.EXINF) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("get_inf", er)
	}
	*p_exinf = k.host.exinf
	return k.trace("get_inf", abi.E_OK)
}

func (k *Kernel) RefTsk(tskid abi.ID, pk *abi.T_RTSK) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ref_tsk", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("ref_tsk", er, "id", tskid)
	}

	*pk = abi.T_RTSK{
		Tskstat: k.status(t),
		Tskpri:  t.pri,
		Tskbpri: t.bpri,
		Actcnt:  t.actcnt,
		Wupcnt:  t.wupcnt,
		Raster:  boolean(t.raster),
		Dister:  boolean(t.dister),
	}
	if t.state != abi.TTS_DMT {
		pk.Prcid = HostProcessorID
	}
	if w := k.waitOf(t.id); w != nil {
		pk.Tskwait = w.cause
		pk.Wobjid = w.objid
		pk.Lefttmo = k.lefttmo(w)
	}
	return k.trace("ref_tsk", abi.E_OK, "id", tskid)
}

func (k *Kernel) SlpTsk() abi.ER {
	return k.slpTsk("slp_tsk", abi.TMO_FEVR)
}

func (k *Kernel) TslpTsk(tmout abi.TMO) abi.ER {
	return k.slpTsk("tslp_tsk", tmout)
}

func (k *Kernel) slpTsk(call string, tmo abi.TMO) abi.ER {
	_, er := k.blockingCall(tmo, func() (*waiter, abi.ER) {
		if er := k.checkBlocking(tmo); er != abi.E_OK {
			return nil, er
		}
		if k.host.wupcnt > 0 {
			k.host.wupcnt--
			return nil, abi.E_OK
		}
		return k.enqueue(&k.host.sleepq, abi.TTW_SLP, abi.TSK_NONE, tmo)
	})
	return k.trace(call, er)
}

func (k *Kernel) WupTsk(tskid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("wup_tsk", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("wup_tsk", er, "id", tskid)
	}
	if t.state == abi.TTS_DMT {
		return k.trace("wup_tsk", abi.E_OBJ, "id", tskid)
	}
	if w := t.sleepq.first(); w != nil {
		k.release(w, abi.E_OK)
		return k.trace("wup_tsk", abi.E_OK, "id", tskid)
	}
	if t.wupcnt >= abi.TMAX_WUPCNT {
		return k.trace("wup_tsk", abi.E_QOVR, "id", tskid)
	}
	t.wupcnt++
	return k.trace("wup_tsk", abi.E_OK, "id", tskid)
}

func (k *Kernel) CanWup(tskid abi.ID) abi.ER_UINT {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("can_wup", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("can_wup", er, "id", tskid)
	}
	if t.state == abi.TTS_DMT {
		return k.trace("can_wup", abi.E_OBJ, "id", tskid)
	}
	n := t.wupcnt
	t.wupcnt = 0
	return k.trace("can_wup", abi.ER_UINT(n), "id", tskid)
}

func (k *Kernel) RelWai(tskid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("rel_wai", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("rel_wai", er, "id", tskid)
	}
	if !k.releaseTask(t.id, abi.E_RLWAI) {
		return k.trace("rel_wai", abi.E_OBJ, "id", tskid)
	}
	return k.trace("rel_wai", abi.E_OK, "id", tskid)
}

func (k *Kernel) SusTsk(tskid abi.ID) abi.ER {
	var self bool
	_, er := k.blockingCall(abi.TMO_FEVR, func() (*waiter, abi.ER) {
		if er := k.checkUnlocked(); er != abi.E_OK {
			return nil, er
		}
		t, er := k.task(tskid)
		if er != abi.E_OK {
			return nil, er
		}
		if t.state == abi.TTS_DMT {
			return nil, abi.E_OBJ
		}
		if t.suspended {
			return nil, abi.E_QOVR
		}
		if t.raster && !t.dister {
			return nil, abi.E_RASTER
		}
		if t != k.host {
			t.suspended = true
			return nil, abi.E_OK
		}

		// Suspending the invoking task blocks it until rsm_tsk.
		if er := k.checkDispatch(); er != abi.E_OK {
			return nil, er
		}
		self = true
		t.suspended = true
		return k.enqueue(&t.suspq, causeSuspend, abi.TSK_NONE, abi.TMO_FEVR)
	})
	return k.trace("sus_tsk", er, "id", tskid, "self", self)
}

func (k *Kernel) RsmTsk(tskid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("rsm_tsk", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("rsm_tsk", er, "id", tskid)
	}
	if !t.suspended {
		return k.trace("rsm_tsk", abi.E_OBJ, "id", tskid)
	}
	t.suspended = false
	k.releaseAll(&t.suspq, abi.E_OK)
	return k.trace("rsm_tsk", abi.E_OK, "id", tskid)
}

func (k *Kernel) DlyTsk(dlytim abi.RELTIM) abi.ER {
	var q waitQueue
	_, er := k.blockingCall(dlytim, func() (*waiter, abi.ER) {
		if er := k.checkDispatch(); er != abi.E_OK {
			return nil, er
		}
		if dlytim > abi.TMAX_RELTIM {
			return nil, abi.E_PAR
		}
		return k.enqueue(&q, abi.TTW_DLY, abi.TSK_NONE, dlytim)
	})
	if er == abi.E_TMOUT {
		er = abi.E_OK
	}
	return k.trace("dly_tsk", er, "dlytim", dlytim)
}

// ExtTsk fails with E_CTX: the host task can't exit.
func (k *Kernel) ExtTsk() abi.ER {
	return k.trace("ext_tsk", abi.E_CTX)
}

func (k *Kernel) RasTer(tskid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ras_ter", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("ras_ter", er, "id", tskid)
	}
	switch {
	case t == k.host:
		return k.trace("ras_ter", abi.E_ILUSE, "id", tskid)
	case t.state == abi.TTS_DMT:
		return k.trace("ras_ter", abi.E_OBJ, "id", tskid)
	case t.dister:
		t.raster = true
	default:
		k.terminate(t)
	}
	return k.trace("ras_ter", abi.E_OK, "id", tskid)
}

func (k *Kernel) TerTsk(tskid abi.ID) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ter_tsk", er, "id", tskid)
	}
	t, er := k.task(tskid)
	if er != abi.E_OK {
		return k.trace("ter_tsk", er, "id", tskid)
	}
	switch {
	case t == k.host:
		return k.trace("ter_tsk", abi.E_ILUSE, "id", tskid)
	case t.state == abi.TTS_DMT:
		return k.trace("ter_tsk", abi.E_OBJ, "id", tskid)
	}
	k.terminate(t)
	return k.trace("ter_tsk", abi.E_OK, "id", tskid)
}

func (k *Kernel) DisTer() abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("dis_ter", er)
	}
	k.host.dister = true
	return k.trace("dis_ter", abi.E_OK)
}

func (k *Kernel) EnaTer() abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ena_ter", er)
	}
	k.host.dister = false
	return k.trace("ena_ter", abi.E_OK)
}

func (k *Kernel) SnsTer() abi.BOOL {
	k.mu.Lock()
	defer k.mu.Unlock()
	return boolean(k.host.dister)
}

func boolean(b bool) abi.BOOL {
	if b {
		return abi.TRUE
	}
	return abi.FALSE
}
