package hostkernel

import "github.com/solid-rs/itron-rs/internal/abi"

// Bounds of a single adj_tim adjustment, in microseconds.
const (
	tminAdjtim = -1_000_000
	tmaxAdjtim = 1_000_000
)

func (k *Kernel) RotRdq(tskpri abi.PRI) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("rot_rdq", er)
	}
	if tskpri != abi.TPRI_SELF && (tskpri < abi.TMIN_TPRI || tskpri > abi.TMAX_TPRI) {
		return k.trace("rot_rdq", abi.E_PAR, "pri", tskpri)
	}
	return k.trace("rot_rdq", abi.E_OK, "pri", tskpri)
}

func (k *Kernel) GetTid(p_tskid *abi.ID) abi.ER {
	*p_tskid = k.host.id
	return k.trace("get_tid", abi.E_OK)
}

func (k *Kernel) GetPid(p_prcid *abi.ID) abi.ER {
	*p_prcid = HostProcessorID
	return k.trace("get_pid", abi.E_OK)
}

func (k *Kernel) LocCpu() abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.cpuLocked = true
	return k.trace("loc_cpu", abi.E_OK)
}

func (k *Kernel) UnlCpu() abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.cpuLocked = false
	k.serviceInterrupts()
	return k.trace("unl_cpu", abi.E_OK)
}

func (k *Kernel) DisDsp() abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("dis_dsp", er)
	}
	k.dspDisabled = true
	return k.trace("dis_dsp", abi.E_OK)
}

func (k *Kernel) EnaDsp() abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("ena_dsp", er)
	}
	k.dspDisabled = false
	return k.trace("ena_dsp", abi.E_OK)
}

// SnsCtx always reports task context.
func (k *Kernel) SnsCtx() abi.BOOL {
	return abi.FALSE
}

func (k *Kernel) SnsLoc() abi.BOOL {
	k.mu.Lock()
	defer k.mu.Unlock()
	return boolean(k.cpuLocked)
}

func (k *Kernel) SnsDsp() abi.BOOL {
	k.mu.Lock()
	defer k.mu.Unlock()
	return boolean(k.dspDisabled)
}

func (k *Kernel) SnsDpn() abi.BOOL {
	k.mu.Lock()
	defer k.mu.Unlock()
	return boolean(k.dispatchPending())
}

func (k *Kernel) SnsKer() abi.BOOL {
	k.mu.Lock()
	defer k.mu.Unlock()
	return boolean(k.exited)
}

// ExtKer marks the kernel as exited and closes Done. Unlike a real kernel
// it returns to the caller.
func (k *Kernel) ExtKer() abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.exited {
		k.exited = true
		close(k.done)
	}
	return k.trace("ext_ker", abi.E_OK)
}

func (k *Kernel) now() int64 {
	return int64(k.clock()) + k.timeOffset
}

func (k *Kernel) SetTim(systim abi.SYSTIM) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("set_tim", er)
	}
	k.timeOffset = int64(systim) - int64(k.clock())
	return k.trace("set_tim", abi.E_OK, "systim", systim)
}

func (k *Kernel) GetTim(p_systim *abi.SYSTIM) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("get_tim", er)
	}
	*p_systim = abi.SYSTIM(k.now())
	return k.trace("get_tim", abi.E_OK)
}

func (k *Kernel) AdjTim(adjtim int32) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("adj_tim", er)
	}
	if adjtim < tminAdjtim || adjtim > tmaxAdjtim {
		return k.trace("adj_tim", abi.E_PAR, "adjtim", adjtim)
	}
	if k.now()+int64(adjtim) < 0 {
		return k.trace("adj_tim", abi.E_OBJ, "adjtim", adjtim)
	}
	k.timeOffset += int64(adjtim)
	return k.trace("adj_tim", abi.E_OK, "adjtim", adjtim)
}

func (k *Kernel) FchHrt() abi.HRTCNT {
	return k.clock()
}
