package semaphore

import (
	"math"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/go-quicktest/qt"
	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/hostkernel"
	"github.com/solid-rs/itron-rs/internal/testutils"
	"github.com/solid-rs/itron-rs/internal/testutils/testmain"
)

func mustBuild(tb testing.TB, b Builder) *Semaphore {
	tb.Helper()

	sem, err := b.Finish()
	testutils.SkipIfNotSupported(tb, err)
	qt.Assert(tb, qt.IsNil(err))
	tb.Cleanup(func() { sem.Close() })
	return sem
}

func TestCounting(t *testing.T) {
	testutils.HostKernel(t)

	sem := mustBuild(t, Build().InitialCount(4).MaxCount(8))
	ref := sem.Ref()

	for i := range 4 {
		qt.Assert(t, qt.IsNil(ref.Poll()), qt.Commentf("poll %d", i))
	}
	err := ref.Poll()
	kind, ok := itron.KindOf[PollError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, PollTimeout))

	for i := range 8 {
		qt.Assert(t, qt.IsNil(ref.Signal()), qt.Commentf("signal %d", i))
	}
	err = ref.Signal()
	kind2, ok := itron.KindOf[SignalError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind2, SignalQueueOverflow))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Count(), 8))
}

func TestBuildDefaults(t *testing.T) {
	testutils.HostKernel(t)

	sem := mustBuild(t, Build())
	info, err := sem.Ref().Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Count(), 1))
	_, waiting := info.FirstWaitingTaskID()
	qt.Assert(t, qt.IsFalse(waiting))

	sem = mustBuild(t, Build().MaxCount(3))
	info, err = sem.Ref().Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Count(), 3))
}

func TestBuildBadParam(t *testing.T) {
	testutils.HostKernel(t)

	_, err := Build().InitialCount(2).MaxCount(1).Finish()
	testutils.SkipIfNotSupported(t, err)
	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildBadParam))
}

func TestBuildOverflow(t *testing.T) {
	if strconv.IntSize == 32 {
		t.Skip("uint can't exceed the kernel's counter")
	}
	ck := testutils.CountCreations(t)

	big := uint64(math.MaxUint32) + 1
	_, err := Build().MaxCount(uint(big)).Finish()
	testutils.SkipIfNotSupported(t, err)

	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildOutOfMemory))
	qt.Assert(t, qt.Equals(ck.Total(), 0))

	// The latch survives later setters.
	_, err = Build().InitialCount(uint(big)).InitialCount(1).Finish()
	kind, _ = itron.KindOf[BuildError](err)
	qt.Assert(t, qt.Equals(kind, BuildOutOfMemory))
	qt.Assert(t, qt.Equals(ck.Calls("acre_sem"), 0))
}

func TestWaitSignal(t *testing.T) {
	k := testutils.HostKernel(t)

	sem := mustBuild(t, Build().InitialCount(0))
	ref := sem.Ref()

	var eg errgroup.Group
	eg.Go(ref.Wait)
	testutils.WaitForWaiters(t, k, 1)

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	waiter, ok := info.FirstWaitingTaskID()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(waiter.Get(), hostkernel.HostTaskID))

	qt.Assert(t, qt.IsNil(ref.Signal()))
	qt.Assert(t, qt.IsNil(eg.Wait()))

	info, err = ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Count(), 0))
}

func TestWaitTimeout(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build().InitialCount(0)).Ref()

	start := time.Now()
	err := ref.WaitTimeout(itron.MustTimeout(itron.TimeoutFromMillis(10)))
	kind, ok := itron.KindOf[WaitTimeoutError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, WaitTimeoutTimeout))
	qt.Assert(t, qt.IsTrue(time.Since(start) >= 10*time.Millisecond))

	err = ref.WaitTimeout(itron.ZeroTimeout)
	kind, _ = itron.KindOf[WaitTimeoutError](err)
	qt.Assert(t, qt.Equals(kind, WaitTimeoutTimeout))
}

func TestInitialize(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build().InitialCount(0).MaxCount(2)).Ref()

	var eg errgroup.Group
	eg.Go(ref.Wait)
	testutils.WaitForWaiters(t, k, 1)

	qt.Assert(t, qt.IsNil(ref.Initialize()))
	kind, ok := itron.KindOf[WaitError](eg.Wait())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, WaitDeleted))
}

func TestClose(t *testing.T) {
	testutils.HostKernel(t)

	sem, err := Build().Finish()
	testutils.SkipIfNotSupported(t, err)
	qt.Assert(t, qt.IsNil(err))
	ref := sem.Ref()

	qt.Assert(t, qt.IsNil(sem.Close()))
	qt.Assert(t, qt.IsNil(sem.Close()))

	_, err = ref.Info()
	kind, ok := itron.KindOf[InfoError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, InfoBadID))

	qt.Assert(t, qt.PanicMatches(func() { sem.Ref() }, "Semaphore used after Close or Leak"))
}

func TestCloseWakesWaiters(t *testing.T) {
	k := testutils.HostKernel(t)

	sem, err := Build().InitialCount(0).Finish()
	testutils.SkipIfNotSupported(t, err)
	qt.Assert(t, qt.IsNil(err))

	var eg errgroup.Group
	eg.Go(sem.Ref().Wait)
	testutils.WaitForWaiters(t, k, 1)

	qt.Assert(t, qt.IsNil(sem.Close()))
	kind, _ := itron.KindOf[WaitError](eg.Wait())
	qt.Assert(t, qt.Equals(kind, WaitDeleted))
}

func TestLeak(t *testing.T) {
	testutils.HostKernel(t)

	sem, err := Build().Finish()
	testutils.SkipIfNotSupported(t, err)
	qt.Assert(t, qt.IsNil(err))

	qt.Assert(t, qt.IsTrue(testmain.Traced("Semaphore", sem.Ref().ID().Get())))
	ref := sem.Leak()
	qt.Assert(t, qt.IsFalse(testmain.Traced("Semaphore", ref.ID().Get())))

	collected := make(chan struct{})
	runtime.AddCleanup(sem, func(ch chan struct{}) { close(ch) }, collected)
	sem = nil
	gcUntil(t, collected)

	// A finalizer queued with the semaphore has run once a cleanup queued
	// by a later cycle runs.
	drained := make(chan struct{})
	runtime.AddCleanup(new([64]byte), func(ch chan struct{}) { close(ch) }, drained)
	gcUntil(t, drained)

	_, err = ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.IsNil(ref.Delete()))
}

// gcUntil runs the garbage collector until done is closed.
func gcUntil(tb testing.TB, done <-chan struct{}) {
	tb.Helper()

	deadline := time.After(5 * time.Second)
	for {
		runtime.GC()
		select {
		case <-done:
			return
		case <-deadline:
			tb.Fatal("object wasn't garbage collected")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestOwnersCompareByID(t *testing.T) {
	testutils.HostKernel(t)

	sem := mustBuild(t, Build())
	qt.Assert(t, qt.Equals(sem.Ref(), UnsafeRef(sem.Ref().ID())))
	qt.Assert(t, qt.Equals(sem.Ref().String(), "Semaphore("+sem.Ref().ID().String()+")"))
}

func TestDeleteStatic(t *testing.T) {
	testutils.HostKernel(t, func(o *hostkernel.Options) {
		o.Config = &hostkernel.Config{
			Semaphores: []hostkernel.SemaphoreConfig{{ID: 3, Initial: 1, Max: 1}},
		}
	})

	ref := UnsafeRef(itron.MustNonNullID(3))
	qt.Assert(t, qt.Equals(ref.String(), "Semaphore(3)"))
	qt.Assert(t, qt.IsNil(ref.Poll()))

	err := ref.Delete()
	testutils.SkipIfNotSupported(t, err)
	kind, ok := itron.KindOf[DeleteError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, DeleteBadState))
}

type codeKernel struct {
	abi.Kernel
	er abi.ER
}

func (ck codeKernel) SigSem(abi.ID) abi.ER { return ck.er }

func TestUndocumentedCodeIsCritical(t *testing.T) {
	k := testutils.HostKernel(t)
	testutils.Install(t, codeKernel{k, abi.E_TMOUT})

	ce := testutils.Critical(t, func() { UnsafeRef(itron.MustNonNullID(1)).Signal() })
	qt.Assert(t, qt.Equals(ce.Op, "sig_sem"))
	qt.Assert(t, qt.Equals(ce.Code.Get(), abi.E_TMOUT))
}

func TestClassify(t *testing.T) {
	for _, test := range []struct {
		code abi.ER
		kind WaitTimeoutError
		ok   bool
	}{
		{abi.E_CTX, WaitTimeoutBadContext, true},
		{abi.E_NOSPT, WaitTimeoutNotSupported, abi.RstrTask},
		{abi.E_ID, WaitTimeoutBadID, true},
		{abi.E_NOEXS, WaitTimeoutBadID, true},
		{abi.E_OACV, 0, false},
		{abi.E_TMOUT, WaitTimeoutTimeout, true},
		{abi.E_RLWAI, WaitTimeoutReleased, true},
		{abi.E_RASTER, WaitTimeoutTerminateRequest, true},
		{abi.E_DLT, WaitTimeoutDeleted, abi.Dcre},
		{abi.E_PAR, 0, false},
		{abi.E_SYS, 0, false},
		{abi.E_MACV, 0, false},
	} {
		code, ok := itron.NewErrorCode(test.code)
		qt.Assert(t, qt.IsTrue(ok))

		t.Run(code.Name(), func(t *testing.T) {
			kind, ok := WaitTimeoutError(0).FromErrorCode(code)
			qt.Assert(t, qt.Equals(ok, test.ok))
			if ok {
				qt.Assert(t, qt.Equals(kind, test.kind))
				qt.Assert(t, qt.IsTrue(kind.Available()))
			}
		})
	}

	qt.Assert(t, qt.IsFalse(SignalAccessDenied.Available()))
	qt.Assert(t, qt.Equals(SignalQueueOverflow.String(), "queue overflow"))
}
