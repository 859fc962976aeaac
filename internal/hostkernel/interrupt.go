package hostkernel

import "github.com/solid-rs/itron-rs/internal/abi"

// Interrupt numbers and priorities the host kernel accepts.
const (
	tmaxIntno  abi.INTNO = 63
	tminIntpri abi.PRI   = -15
)

// line is a configured interrupt request line. Numbers without a line fail
// with E_OBJ.
type line struct {
	intno abi.INTNO
	pri   abi.PRI
	// Only edge triggered requests can be cleared.
	edge    bool
	enabled bool
	pending bool

	handler abi.TASK
	exinf   abi.EXINF
}

func newLine(c *InterruptConfig, handler abi.TASK) (*line, abi.ER) {
	if c.Number > tmaxIntno || c.Priority < tminIntpri || c.Priority >= abi.TIPM_ENAALL {
		return nil, abi.E_PAR
	}
	return &line{
		intno:   c.Number,
		pri:     c.Priority,
		edge:    c.Edge,
		enabled: c.Enabled,
		handler: handler,
		exinf:   c.Exinf,
	}, abi.E_OK
}

// line resolves intno.
func (k *Kernel) line(intno abi.INTNO) (*line, abi.ER) {
	if intno > tmaxIntno {
		return nil, abi.E_PAR
	}
	if l := k.lines[intno]; l != nil {
		return l, abi.E_OK
	}
	return nil, abi.E_OBJ
}

// masked reports whether the priority mask holds back requests of l.
func (k *Kernel) masked(l *line) bool {
	return k.cpuLocked || (k.ipm != abi.TIPM_ENAALL && l.pri >= k.ipm)
}

// serviceInterrupts runs the handler of every pending line which is
// enabled and not masked, on a new goroutine. Servicing a request clears
// it.
func (k *Kernel) serviceInterrupts() {
	for _, l := range k.lines {
		if l == nil || !l.pending || !l.enabled || l.handler == nil || k.masked(l) {
			continue
		}
		l.pending = false
		k.log.Debug("interrupt serviced", "intno", l.intno)
		go l.handler(l.exinf)
	}
}

func (k *Kernel) DisInt(intno abi.INTNO) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, er := k.line(intno)
	if er != abi.E_OK {
		return k.trace("dis_int", er, "intno", intno)
	}
	l.enabled = false
	return k.trace("dis_int", abi.E_OK, "intno", intno)
}

func (k *Kernel) EnaInt(intno abi.INTNO) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, er := k.line(intno)
	if er != abi.E_OK {
		return k.trace("ena_int", er, "intno", intno)
	}
	l.enabled = true
	k.serviceInterrupts()
	return k.trace("ena_int", abi.E_OK, "intno", intno)
}

func (k *Kernel) ClrInt(intno abi.INTNO) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, er := k.line(intno)
	if er != abi.E_OK {
		return k.trace("clr_int", er, "intno", intno)
	}
	if !l.edge {
		return k.trace("clr_int", abi.E_OBJ, "intno", intno)
	}
	l.pending = false
	return k.trace("clr_int", abi.E_OK, "intno", intno)
}

func (k *Kernel) RasInt(intno abi.INTNO) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, er := k.line(intno)
	if er != abi.E_OK {
		return k.trace("ras_int", er, "intno", intno)
	}
	l.pending = true
	k.serviceInterrupts()
	return k.trace("ras_int", abi.E_OK, "intno", intno)
}

func (k *Kernel) PrbInt(intno abi.INTNO) abi.ER_BOOL {
	k.mu.Lock()
	defer k.mu.Unlock()

	l, er := k.line(intno)
	if er != abi.E_OK {
		return k.trace("prb_int", er, "intno", intno)
	}
	return k.trace("prb_int", boolean(l.pending), "intno", intno)
}

func (k *Kernel) ChgIpm(intpri abi.PRI) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("chg_ipm", er, "intpri", intpri)
	}
	if intpri < tminIntpri || intpri > abi.TIPM_ENAALL {
		return k.trace("chg_ipm", abi.E_PAR, "intpri", intpri)
	}
	k.ipm = intpri
	k.serviceInterrupts()
	return k.trace("chg_ipm", abi.E_OK, "intpri", intpri)
}

func (k *Kernel) GetIpm(p_intpri *abi.PRI) abi.ER {
	k.mu.Lock()
	defer k.mu.Unlock()

	if er := k.checkUnlocked(); er != abi.E_OK {
		return k.trace("get_ipm", er)
	}
	*p_intpri = k.ipm
	return k.trace("get_ipm", abi.E_OK)
}
