package hostkernel

import (
	"testing"
	"unsafe"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs/internal/abi"
)

func TestSemaphore(t *testing.T) {
	k := newKernel(t, Options{})

	qt.Assert(t, qt.Equals(k.AcreSem(&abi.T_CSEM{Maxsem: 0}), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.AcreSem(&abi.T_CSEM{Isemcnt: 2, Maxsem: 1}), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.AcreSem(&abi.T_CSEM{Sematr: abi.TA_CLR, Maxsem: 1}), abi.E_RSATR))

	id := k.AcreSem(&abi.T_CSEM{Isemcnt: 1, Maxsem: 2})
	qt.Assert(t, qt.Equals(k.PolSem(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PolSem(id), abi.E_TMOUT))
	qt.Assert(t, qt.Equals(k.SigSem(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.SigSem(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.SigSem(id), abi.E_QOVR))

	var pk abi.T_RSEM
	qt.Assert(t, qt.Equals(k.IniSem(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.RefSem(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk, abi.T_RSEM{Wtskid: abi.TSK_NONE, Semcnt: 1}))
}

func TestSemaphoreWakesWaiter(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreSem(&abi.T_CSEM{Maxsem: 1})

	var eg errgroup.Group
	eg.Go(func() error {
		if er := k.WaiSem(id); er != abi.E_OK {
			t.Errorf("wai_sem: %s", ercdName(er))
		}
		return nil
	})
	waitForWaiters(t, k, 1)

	var pk abi.T_RSEM
	qt.Assert(t, qt.Equals(k.RefSem(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Wtskid, HostTaskID))

	qt.Assert(t, qt.Equals(k.SigSem(id), abi.E_OK))
	qt.Assert(t, qt.IsNil(eg.Wait()))
	qt.Assert(t, qt.Equals(k.RefSem(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Semcnt, abi.Uint(0)))
}

func TestDeleteReleasesWaiters(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreSem(&abi.T_CSEM{Maxsem: 1})

	results := make(chan abi.ER, 2)
	for range 2 {
		go func() { results <- k.WaiSem(id) }()
	}
	waitForWaiters(t, k, 2)

	qt.Assert(t, qt.Equals(k.DelSem(id), abi.E_OK))
	qt.Assert(t, qt.Equals(<-results, abi.E_DLT))
	qt.Assert(t, qt.Equals(<-results, abi.E_DLT))
}

func TestReleaseWait(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreSem(&abi.T_CSEM{Maxsem: 1})

	qt.Assert(t, qt.Equals(k.RelWai(HostTaskID), abi.E_OBJ))

	result := make(chan abi.ER, 1)
	go func() { result <- k.WaiSem(id) }()
	waitForWaiters(t, k, 1)

	var pk abi.T_RTSK
	qt.Assert(t, qt.Equals(k.RefTsk(abi.TSK_SELF, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Tskstat, abi.TTS_WAI))
	qt.Assert(t, qt.Equals(pk.Tskwait, abi.TTW_SEM))
	qt.Assert(t, qt.Equals(pk.Wobjid, id))
	qt.Assert(t, qt.Equals(pk.Lefttmo, abi.TMO_FEVR))

	qt.Assert(t, qt.Equals(k.RelWai(HostTaskID), abi.E_OK))
	qt.Assert(t, qt.Equals(<-result, abi.E_RLWAI))
}

func TestPriorityWaitQueue(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreSem(&abi.T_CSEM{Sematr: abi.TA_TPRI, Maxsem: 1})

	order := make(chan abi.PRI, 2)
	wait := func(pri abi.PRI) {
		qt.Check(t, qt.Equals(k.ChgPri(abi.TSK_SELF, pri), abi.E_OK))
		go func() {
			qt.Check(t, qt.Equals(k.WaiSem(id), abi.E_OK))
			order <- pri
		}()
	}
	wait(10)
	waitForWaiters(t, k, 1)
	wait(3)
	waitForWaiters(t, k, 2)

	qt.Assert(t, qt.Equals(k.SigSem(id), abi.E_OK))
	qt.Assert(t, qt.Equals(<-order, abi.PRI(3)))
	qt.Assert(t, qt.Equals(k.SigSem(id), abi.E_OK))
	qt.Assert(t, qt.Equals(<-order, abi.PRI(10)))
}

func TestEventflag(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreFlg(&abi.T_CFLG{Iflgptn: 0x1})

	var ptn abi.FLGPTN
	qt.Assert(t, qt.Equals(k.PolFlg(id, 0, abi.TWF_ORW, &ptn), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.PolFlg(id, 0x1, 0, &ptn), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.PolFlg(id, 0x3, abi.TWF_ANDW, &ptn), abi.E_TMOUT))
	qt.Assert(t, qt.Equals(k.PolFlg(id, 0x3, abi.TWF_ORW, &ptn), abi.E_OK))
	qt.Assert(t, qt.Equals(ptn, abi.FLGPTN(0x1)))

	result := make(chan abi.ER, 1)
	var got abi.FLGPTN
	go func() { result <- k.WaiFlg(id, 0x6, abi.TWF_ANDW, &got) }()
	waitForWaiters(t, k, 1)

	qt.Assert(t, qt.Equals(k.SetFlg(id, 0x2), abi.E_OK))
	qt.Assert(t, qt.Equals(k.Waiting(), 1))
	qt.Assert(t, qt.Equals(k.SetFlg(id, 0x4), abi.E_OK))
	qt.Assert(t, qt.Equals(<-result, abi.E_OK))
	qt.Assert(t, qt.Equals(got, abi.FLGPTN(0x7)))

	var pk abi.T_RFLG
	qt.Assert(t, qt.Equals(k.ClrFlg(id, ^abi.FLGPTN(0x2)), abi.E_OK))
	qt.Assert(t, qt.Equals(k.RefFlg(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Flgptn, abi.FLGPTN(0x5)))
	qt.Assert(t, qt.Equals(k.IniFlg(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.RefFlg(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Flgptn, abi.FLGPTN(0x1)))
}

func TestEventflagClear(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreFlg(&abi.T_CFLG{Flgatr: abi.TA_CLR})

	var ptn abi.FLGPTN
	qt.Assert(t, qt.Equals(k.SetFlg(id, 0x3), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PolFlg(id, 0x1, abi.TWF_ORW, &ptn), abi.E_OK))
	qt.Assert(t, qt.Equals(ptn, abi.FLGPTN(0x3)))
	qt.Assert(t, qt.Equals(k.PolFlg(id, 0x2, abi.TWF_ORW, &ptn), abi.E_TMOUT))
}

func TestDataqueue(t *testing.T) {
	k := newKernel(t, Options{})
	qt.Assert(t, qt.Equals(k.AcreDtq(&abi.T_CDTQ{Dtqcnt: 1, Dtqmb: unsafe.Pointer(new(int))}), abi.E_PAR))

	id := k.AcreDtq(&abi.T_CDTQ{Dtqcnt: 2})
	qt.Assert(t, qt.Equals(k.PsndDtq(id, 1), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PsndDtq(id, 2), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PsndDtq(id, 3), abi.E_TMOUT))
	qt.Assert(t, qt.Equals(k.FsndDtq(id, 3), abi.E_OK))

	var pk abi.T_RDTQ
	qt.Assert(t, qt.Equals(k.RefDtq(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Sdtqcnt, abi.Uint(2)))

	var data abi.DataElement
	qt.Assert(t, qt.Equals(k.PrcvDtq(id, &data), abi.E_OK))
	qt.Assert(t, qt.Equals(data, abi.DataElement(2)))
	qt.Assert(t, qt.Equals(k.PrcvDtq(id, &data), abi.E_OK))
	qt.Assert(t, qt.Equals(data, abi.DataElement(3)))
	qt.Assert(t, qt.Equals(k.PrcvDtq(id, &data), abi.E_TMOUT))
}

func TestDataqueueSynchronous(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreDtq(&abi.T_CDTQ{Dtqcnt: 0})
	qt.Assert(t, qt.Equals(k.FsndDtq(id, 1), abi.E_ILUSE))
	qt.Assert(t, qt.Equals(k.PsndDtq(id, 1), abi.E_TMOUT))

	result := make(chan abi.ER, 1)
	go func() { result <- k.SndDtq(id, 42) }()
	waitForWaiters(t, k, 1)

	var data abi.DataElement
	qt.Assert(t, qt.Equals(k.PrcvDtq(id, &data), abi.E_OK))
	qt.Assert(t, qt.Equals(data, abi.DataElement(42)))
	qt.Assert(t, qt.Equals(<-result, abi.E_OK))
}

func TestPriorityDataqueue(t *testing.T) {
	k := newKernel(t, Options{})
	qt.Assert(t, qt.Equals(k.AcrePdq(&abi.T_CPDQ{Pdqcnt: 1, Maxdpri: 0}), abi.E_PAR))

	id := k.AcrePdq(&abi.T_CPDQ{Pdqcnt: 3, Maxdpri: 4})
	qt.Assert(t, qt.Equals(k.PsndPdq(id, 1, 0), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.PsndPdq(id, 1, 5), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.PsndPdq(id, 1, 3), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PsndPdq(id, 2, 1), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PsndPdq(id, 3, 3), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PsndPdq(id, 4, 1), abi.E_TMOUT))

	type item struct {
		data abi.DataElement
		pri  abi.PRI
	}
	var got []item
	for range 3 {
		var it item
		qt.Assert(t, qt.Equals(k.PrcvPdq(id, &it.data, &it.pri), abi.E_OK))
		got = append(got, it)
	}
	qt.Assert(t, qt.CmpEquals(got, []item{{2, 1}, {1, 3}, {3, 3}}, cmp.AllowUnexported(item{})))
}

func TestMutex(t *testing.T) {
	k := newKernel(t, Options{HostPriority: 8})
	qt.Assert(t, qt.Equals(k.AcreMtx(&abi.T_CMTX{Mtxatr: abi.TA_CEILING, Ceilpri: 0}), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.AcreMtx(&abi.T_CMTX{Mtxatr: abi.TA_CLR}), abi.E_RSATR))

	id := k.AcreMtx(&abi.T_CMTX{Mtxatr: abi.TA_CEILING, Ceilpri: 4})
	qt.Assert(t, qt.Equals(k.UnlMtx(id), abi.E_OBJ))
	qt.Assert(t, qt.Equals(k.PlocMtx(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PlocMtx(id), abi.E_OBJ))

	var pri abi.PRI
	qt.Assert(t, qt.Equals(k.GetPri(abi.TSK_SELF, &pri), abi.E_OK))
	qt.Assert(t, qt.Equals(pri, abi.PRI(4)))
	qt.Assert(t, qt.Equals(k.ChgPri(abi.TSK_SELF, 2), abi.E_ILUSE))

	var pk abi.T_RMTX
	qt.Assert(t, qt.Equals(k.RefMtx(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Htskid, HostTaskID))

	qt.Assert(t, qt.Equals(k.UnlMtx(id), abi.E_OK))
	qt.Assert(t, qt.Equals(k.GetPri(abi.TSK_SELF, &pri), abi.E_OK))
	qt.Assert(t, qt.Equals(pri, abi.PRI(8)))

	qt.Assert(t, qt.Equals(k.ChgPri(abi.TSK_SELF, 2), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PlocMtx(id), abi.E_ILUSE))
}

func TestMessageBuffer(t *testing.T) {
	k := newKernel(t, Options{})
	qt.Assert(t, qt.Equals(k.AcreMbf(&abi.T_CMBF{Maxmsz: 0, Mbfsz: 16}), abi.E_PAR))

	id := k.AcreMbf(&abi.T_CMBF{Maxmsz: 8, Mbfsz: 20})
	qt.Assert(t, qt.Equals(k.PsndMbf(id, nil), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.PsndMbf(id, make([]byte, 9)), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.PsndMbf(id, []byte("hello")), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PsndMbf(id, []byte("hi")), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PsndMbf(id, []byte("x")), abi.E_TMOUT))

	var pk abi.T_RMBF
	qt.Assert(t, qt.Equals(k.RefMbf(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Smbfcnt, abi.Uint(2)))
	qt.Assert(t, qt.Equals(pk.Fmbfsz, uintptr(0)))

	qt.Assert(t, qt.Equals(k.PrcvMbf(id, make([]byte, 7)), abi.E_MACV))

	buf := make([]byte, 8)
	n := k.PrcvMbf(id, buf)
	qt.Assert(t, qt.Equals(string(buf[:n]), "hello"))
	n = k.PrcvMbf(id, buf)
	qt.Assert(t, qt.Equals(string(buf[:n]), "hi"))
	qt.Assert(t, qt.Equals(k.PrcvMbf(id, buf), abi.E_TMOUT))
}

func TestMessageBufferBlockingReceive(t *testing.T) {
	k := newKernel(t, Options{})
	id := k.AcreMbf(&abi.T_CMBF{Maxmsz: 8, Mbfsz: 16})

	buf := make([]byte, 8)
	result := make(chan abi.ER_UINT, 1)
	go func() { result <- k.RcvMbf(id, buf) }()
	waitForWaiters(t, k, 1)

	qt.Assert(t, qt.Equals(k.SndMbf(id, []byte("ping")), abi.E_OK))
	n := <-result
	qt.Assert(t, qt.Equals(string(buf[:n]), "ping"))
}

func TestMemoryPool(t *testing.T) {
	k := newKernel(t, Options{})
	qt.Assert(t, qt.Equals(k.AcreMpf(&abi.T_CMPF{Blkcnt: 0, Blksz: 8}), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.AcreMpf(&abi.T_CMPF{Blkcnt: ^abi.Uint(0), Blksz: ^abi.Uint(0)}), abi.E_NOMEM))

	id := k.AcreMpf(&abi.T_CMPF{Blkcnt: 2, Blksz: 12})
	t.Cleanup(func() { k.DelMpf(id) })

	var a, b, c unsafe.Pointer
	qt.Assert(t, qt.Equals(k.PgetMpf(id, &a), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PgetMpf(id, &b), abi.E_OK))
	qt.Assert(t, qt.Equals(k.PgetMpf(id, &c), abi.E_TMOUT))
	qt.Assert(t, qt.Equals(uintptr(b)-uintptr(a), uintptr(16)))

	// Blocks are usable memory.
	*(*uint64)(a) = 0xdeadbeef

	qt.Assert(t, qt.Equals(k.RelMpf(id, unsafe.Add(a, 1)), abi.E_PAR))
	qt.Assert(t, qt.Equals(k.RelMpf(id, a), abi.E_OK))
	qt.Assert(t, qt.Equals(k.RelMpf(id, a), abi.E_PAR))

	var pk abi.T_RMPF
	qt.Assert(t, qt.Equals(k.RefMpf(id, &pk), abi.E_OK))
	qt.Assert(t, qt.Equals(pk.Fblkcnt, abi.Uint(1)))

	qt.Assert(t, qt.Equals(k.PgetMpf(id, &a), abi.E_OK))
	result := make(chan abi.ER, 1)
	go func() { result <- k.GetMpf(id, &c) }()
	waitForWaiters(t, k, 1)
	qt.Assert(t, qt.Equals(k.RelMpf(id, b), abi.E_OK))
	qt.Assert(t, qt.Equals(<-result, abi.E_OK))
	qt.Assert(t, qt.Equals(c, b))
}
