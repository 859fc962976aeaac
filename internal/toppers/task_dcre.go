//go:build cgo && itron_dcre && (itron_asp3 || itron_solid_asp3 || itron_solid_fmp3)

package toppers

/*
#include <kernel.h>

extern void itron_task_entry(EXINF exinf);
*/
import "C"

import (
	"runtime/cgo"
	"sync"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// entry is the Go entry point of a task created through AcreTsk. The
// kernel sees a handle to it as the extended information of the task and
// starts every such task at itron_task_entry.
type entry struct {
	task  abi.TASK
	exinf abi.EXINF
}

var entries struct {
	sync.Mutex
	byID map[abi.ID]cgo.Handle
}

//export goTaskEntry
func goTaskEntry(exinf C.EXINF) {
	e := cgo.Handle(exinf).Value().(*entry)
	e.task(e.exinf)
}

func (Kernel) AcreTsk(pk *abi.T_CTSK) abi.ER_ID {
	if pk.Task == nil {
		return abi.E_PAR
	}

	h := cgo.NewHandle(&entry{pk.Task, pk.Exinf})
	c := C.T_CTSK{
		tskatr:  C.ATR(pk.Tskatr),
		exinf:   C.EXINF(h),
		task:    C.TASK(C.itron_task_entry),
		itskpri: C.PRI(pk.Itskpri),
		stksz:   C.size_t(pk.Stksz),
		stk:     (*C.STK_T)(pk.Stk),
	}
	ctskProcessors(&c, pk)

	id := abi.ER_ID(C.acre_tsk(&c))
	if id < 0 {
		h.Delete()
		return id
	}

	entries.Lock()
	defer entries.Unlock()
	if entries.byID == nil {
		entries.byID = make(map[abi.ID]cgo.Handle)
	}
	entries.byID[id] = h
	return id
}

func (Kernel) DelTsk(tskid abi.ID) abi.ER {
	er := abi.ER(C.del_tsk(C.ID(tskid)))
	if er != abi.E_OK {
		return er
	}

	entries.Lock()
	defer entries.Unlock()
	if h, ok := entries.byID[tskid]; ok {
		h.Delete()
		delete(entries.byID, tskid)
	}
	return er
}
