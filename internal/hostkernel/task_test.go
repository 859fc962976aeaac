package hostkernel

import (
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs/internal/abi"
)

func createTask(tb testing.TB, k *Kernel, entry abi.TASK, atr abi.ATR) abi.ID {
	tb.Helper()
	id := k.AcreTsk(&abi.T_CTSK{Tskatr: atr, Task: entry, Itskpri: 5, Stksz: 1024, Exinf: 7})
	qt.Assert(tb, qt.IsTrue(id > 0), qt.Commentf("acre_tsk: %s", ercdName(id)))
	return id
}

func taskState(tb testing.TB, k *Kernel, id abi.ID) abi.STAT {
	tb.Helper()
	var stat abi.STAT
	qt.Assert(tb, qt.Equals(k.GetTst(id, &stat), abi.E_OK))
	return stat
}

func TestCreateTaskValidation(t *testing.T) {
	k := newKernel(t, Options{})
	entry := func(abi.EXINF) {}

	for name, pk := range map[string]abi.T_CTSK{
		"nil entry":     {Itskpri: 1, Stksz: 1024},
		"priority":      {Task: entry, Itskpri: abi.TMAX_TPRI + 1, Stksz: 1024},
		"small stack":   {Task: entry, Itskpri: 1, Stksz: 16},
		"bad processor": {Task: entry, Itskpri: 1, Stksz: 1024, Iprcid: 2},
	} {
		t.Run(name, func(t *testing.T) {
			qt.Assert(t, qt.Equals(k.AcreTsk(&pk), abi.E_PAR))
		})
	}
	qt.Assert(t, qt.Equals(k.AcreTsk(&abi.T_CTSK{Tskatr: 0x80, Task: entry, Itskpri: 1, Stksz: 1024}), abi.E_RSATR))
}

func TestTaskLifecycle(t *testing.T) {
	k := newKernel(t, Options{})

	started := make(chan abi.EXINF)
	finish := make(chan struct{})
	id := createTask(t, k, func(exinf abi.EXINF) {
		started <- exinf
		<-finish
	}, 0)

	qt.Assert(t, qt.Equals(taskState(t, k, id), abi.TTS_DMT))
	var pri abi.PRI
	qt.Assert(t, qt.Equals(k.GetPri(id, &pri), abi.E_OBJ))
	qt.Assert(t, qt.Equals(k.TerTsk(id), abi.E_OBJ))

	qt.Assert(t, qt.Equals(k.ActTsk(id), abi.E_OK))
	qt.Assert(t, qt.Equals(<-started, abi.EXINF(7)))
	qt.Assert(t, qt.Equals(taskState(t, k, id), abi.TTS_RDY))

	qt.Assert(t, qt.Equals(k.ActTsk(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.ActTsk(id), abi.E_QOVR))
	qt.Assert(t, qt.Equals(k.DelTsk(id), abi.E_OBJ))

	// The queued activation restarts the task once it returns.
	finish <- struct{}{}
	qt.Assert(t, qt.Equals(<-started, abi.EXINF(7)))
	qt.Assert(t, qt.Equals(k.CanAct(id), abi.ER_UINT(0)))

	close(finish)
	deadline := time.Now().Add(5 * time.Second)
	for taskState(t, k, id) != abi.TTS_DMT {
		if time.Now().After(deadline) {
			t.Fatal("task didn't exit")
		}
		time.Sleep(time.Millisecond)
	}
	qt.Assert(t, qt.Equals(k.DelTsk(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.ActTsk(id), abi.E_NOEXS))
}

func TestTerminateTask(t *testing.T) {
	k := newKernel(t, Options{})

	block := make(chan struct{})
	defer close(block)
	id := createTask(t, k, func(abi.EXINF) { <-block }, abi.TA_ACT)
	qt.Assert(t, qt.Equals(taskState(t, k, id), abi.TTS_RDY))

	qt.Assert(t, qt.Equals(k.SusTsk(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.SusTsk(id), abi.E_QOVR))
	qt.Assert(t, qt.Equals(taskState(t, k, id), abi.TTS_SUS))
	qt.Assert(t, qt.Equals(k.RsmTsk(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.RsmTsk(id), abi.E_OBJ))

	qt.Assert(t, qt.Equals(k.ChgPri(id, 2), abi.E_OK))
	var pk abi.T_RTSK
	qt.Assert(t, qt.Equals(k.RefTsk(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Tskpri, abi.PRI(2)))
	qt.Assert(t, qt.Equals(pk.Prcid, HostProcessorID))

	qt.Assert(t, qt.Equals(k.TerTsk(HostTaskID), abi.E_ILUSE))
	qt.Assert(t, qt.Equals(k.TerTsk(id), abi.E_OK))
	qt.Assert(t, qt.Equals(taskState(t, k, id), abi.TTS_DMT))

	qt.Assert(t, qt.Equals(k.RefTsk(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Tskbpri, abi.PRI(5)))
	qt.Assert(t, qt.Equals(k.RasTer(id), abi.E_OBJ))
}

func TestSleepAndWakeup(t *testing.T) {
	k := newKernel(t, Options{})

	qt.Assert(t, qt.Equals(k.WupTsk(abi.TSK_SELF), abi.E_OK))
	qt.Assert(t, qt.Equals(k.WupTsk(abi.TSK_SELF), abi.E_QOVR))
	qt.Assert(t, qt.Equals(k.SlpTsk(), abi.E_OK))
	qt.Assert(t, qt.Equals(k.TslpTsk(abi.TMO_POL), abi.E_TMOUT))
	qt.Assert(t, qt.Equals(k.TslpTsk(500), abi.E_TMOUT))

	result := make(chan abi.ER, 1)
	go func() { result <- k.SlpTsk() }()
	waitForWaiters(t, k, 1)
	qt.Assert(t, qt.Equals(k.WupTsk(HostTaskID), abi.E_OK))
	qt.Assert(t, qt.Equals(<-result, abi.E_OK))

	qt.Assert(t, qt.Equals(k.WupTsk(abi.TSK_SELF), abi.E_OK))
	qt.Assert(t, qt.Equals(k.CanWup(abi.TSK_SELF), abi.ER_UINT(1)))
	qt.Assert(t, qt.Equals(k.CanWup(abi.TSK_SELF), abi.ER_UINT(0)))
}

func TestDelay(t *testing.T) {
	k := newKernel(t, Options{})
	qt.Assert(t, qt.Equals(k.DlyTsk(0), abi.E_OK))
	qt.Assert(t, qt.Equals(k.DlyTsk(1000), abi.E_OK))
	qt.Assert(t, qt.Equals(k.DlyTsk(abi.TMAX_RELTIM+1), abi.E_PAR))

	result := make(chan abi.ER, 1)
	go func() { result <- k.DlyTsk(abi.TMAX_RELTIM) }()
	waitForWaiters(t, k, 1)
	qt.Assert(t, qt.Equals(k.RelWai(abi.TSK_SELF), abi.E_OK))
	qt.Assert(t, qt.Equals(<-result, abi.E_RLWAI))
}

func TestSuspendSelf(t *testing.T) {
	k := newKernel(t, Options{})

	result := make(chan abi.ER, 1)
	go func() { result <- k.SusTsk(abi.TSK_SELF) }()
	waitForWaiters(t, k, 1)
	qt.Assert(t, qt.Equals(taskState(t, k, HostTaskID), abi.TTS_SUS))

	// Suspension isn't a wait.
	qt.Assert(t, qt.Equals(k.RelWai(HostTaskID), abi.E_OBJ))
	qt.Assert(t, qt.Equals(k.RsmTsk(HostTaskID), abi.E_OK))
	qt.Assert(t, qt.Equals(<-result, abi.E_OK))
	qt.Assert(t, qt.Equals(taskState(t, k, HostTaskID), abi.TTS_RUN))
}

func TestHostTaskRestrictions(t *testing.T) {
	k := newKernel(t, Options{})
	qt.Assert(t, qt.Equals(k.ExtTsk(), abi.E_CTX))
	qt.Assert(t, qt.Equals(k.RasTer(abi.TSK_SELF), abi.E_ILUSE))
	qt.Assert(t, qt.Equals(k.DelTsk(abi.TSK_SELF), abi.E_OBJ))
	qt.Assert(t, qt.Equals(k.MactTsk(abi.TSK_SELF, 2), abi.E_PAR))

	qt.Assert(t, qt.Equals(k.SnsTer(), abi.FALSE))
	qt.Assert(t, qt.Equals(k.DisTer(), abi.E_OK))
	qt.Assert(t, qt.Equals(k.SnsTer(), abi.TRUE))
	qt.Assert(t, qt.Equals(k.EnaTer(), abi.E_OK))

	qt.Assert(t, qt.Equals(k.DisDsp(), abi.E_OK))
	qt.Assert(t, qt.Equals(k.SusTsk(abi.TSK_SELF), abi.E_CTX))
	qt.Assert(t, qt.Equals(k.DlyTsk(10), abi.E_CTX))
	qt.Assert(t, qt.Equals(k.EnaDsp(), abi.E_OK))
}
