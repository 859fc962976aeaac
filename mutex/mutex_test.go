package mutex

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/hostkernel"
	"github.com/solid-rs/itron-rs/internal/testutils"
)

func mustBuild(tb testing.TB, b Builder) Ref {
	tb.Helper()

	mtx, err := b.Finish()
	testutils.SkipIfNotSupported(tb, err)
	qt.Assert(tb, qt.IsNil(err))
	tb.Cleanup(func() { mtx.Close() })
	return mtx.Ref()
}

func TestLockUnlock(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build().QueueOrder(itron.TaskPriority))
	qt.Assert(t, qt.IsNil(ref.Lock()))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	owner, ok := info.OwningTaskID()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(owner.Get(), hostkernel.HostTaskID))
	_, ok = info.FirstWaitingTaskID()
	qt.Assert(t, qt.IsFalse(ok))

	kind, ok := itron.KindOf[LockError](ref.Lock())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, LockDeadlock))

	kind2, _ := itron.KindOf[TryLockError](ref.TryLock())
	qt.Assert(t, qt.Equals(kind2, TryLockDeadlock))

	qt.Assert(t, qt.IsNil(ref.Unlock()))
	kind3, ok := itron.KindOf[UnlockError](ref.Unlock())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind3, UnlockBadSequence))

	qt.Assert(t, qt.IsNil(ref.LockTimeout(itron.ZeroTimeout)))
	qt.Assert(t, qt.IsNil(ref.Initialize()))

	info, err = ref.Info()
	qt.Assert(t, qt.IsNil(err))
	_, ok = info.OwningTaskID()
	qt.Assert(t, qt.IsFalse(ok))
}

func currentPriority(tb testing.TB, k *hostkernel.Kernel) abi.PRI {
	tb.Helper()

	var pri abi.PRI
	qt.Assert(tb, qt.Equals(k.GetPri(abi.TSK_SELF, &pri), abi.E_OK))
	return pri
}

func TestCeiling(t *testing.T) {
	k := testutils.HostKernel(t, func(o *hostkernel.Options) { o.HostPriority = 8 })

	ref := mustBuild(t, Build().PriorityProtection(Ceiling(4)))
	qt.Assert(t, qt.IsNil(ref.TryLock()))
	qt.Assert(t, qt.Equals(currentPriority(t, k), 4))
	qt.Assert(t, qt.IsNil(ref.Unlock()))
	qt.Assert(t, qt.Equals(currentPriority(t, k), 8))

	low := mustBuild(t, Build().PriorityProtection(Ceiling(9)))
	kind, ok := itron.KindOf[LockError](low.Lock())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, LockBadParam))
}

func TestBuildBadCeiling(t *testing.T) {
	testutils.HostKernel(t)

	_, err := Build().PriorityProtection(Ceiling(abi.TMAX_TPRI + 1)).Finish()
	testutils.SkipIfNotSupported(t, err)
	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildBadParam))
}

func TestInherit(t *testing.T) {
	testutils.HostKernel(t)

	p, ok := Inherit()
	qt.Assert(t, qt.Equals(ok, abi.PiMutex))
	if !ok {
		qt.Assert(t, qt.Equals(p, None))
		t.Skip("priority inheritance not available")
	}
	qt.Assert(t, qt.Equals(p.String(), "inherit"))

	ref := mustBuild(t, Build().PriorityProtection(p))
	qt.Assert(t, qt.IsNil(ref.Lock()))
	qt.Assert(t, qt.IsNil(ref.Unlock()))
}

func TestCloseLocked(t *testing.T) {
	testutils.HostKernel(t)

	mtx, err := Build().Finish()
	testutils.SkipIfNotSupported(t, err)
	qt.Assert(t, qt.IsNil(err))

	ref := mtx.Ref()
	qt.Assert(t, qt.IsNil(ref.Lock()))
	qt.Assert(t, qt.IsNil(mtx.Close()))

	kind, ok := itron.KindOf[UnlockError](ref.Unlock())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, UnlockBadID))
}

func TestProtectionString(t *testing.T) {
	qt.Assert(t, qt.Equals(None.String(), "none"))
	qt.Assert(t, qt.Equals(Ceiling(3).String(), "ceiling(3)"))
	qt.Assert(t, qt.IsTrue(TryLockTimeout.Available()))
}
