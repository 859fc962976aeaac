package kernel

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/hostkernel"
	"github.com/solid-rs/itron-rs/internal/testutils"
)

// fakeClock installs a host kernel whose clock only moves when told to.
func fakeClock(tb testing.TB, start uint64) (*hostkernel.Kernel, *atomic.Uint64) {
	var now atomic.Uint64
	now.Store(start)
	k := testutils.HostKernel(tb, func(o *hostkernel.Options) {
		o.Clock = now.Load
	})
	return k, &now
}

func TestSense(t *testing.T) {
	testutils.HostKernel(t)

	qt.Assert(t, qt.IsTrue(IsTaskContext()))
	qt.Assert(t, qt.IsTrue(IsOperational()))
	qt.Assert(t, qt.IsFalse(IsCPULocked()))
	qt.Assert(t, qt.IsFalse(IsDispatchingDisabled()))
	qt.Assert(t, qt.IsFalse(IsDispatchPending()))
}

func TestLockCPU(t *testing.T) {
	testutils.HostKernel(t)

	qt.Assert(t, qt.IsNil(LockCPU()))
	qt.Assert(t, qt.IsTrue(IsCPULocked()))
	qt.Assert(t, qt.IsTrue(IsDispatchPending()))

	kind, ok := itron.KindOf[LockError](DisableDispatch())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, LockBadContext))

	_, err := Time()
	kind2, ok := itron.KindOf[TimeError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind2, TimeBadContext))

	qt.Assert(t, qt.IsNil(UnlockCPU()))
	qt.Assert(t, qt.IsFalse(IsCPULocked()))
}

func TestDisableDispatch(t *testing.T) {
	testutils.HostKernel(t)

	qt.Assert(t, qt.IsNil(DisableDispatch()))
	qt.Assert(t, qt.IsTrue(IsDispatchingDisabled()))
	qt.Assert(t, qt.IsTrue(IsDispatchPending()))
	qt.Assert(t, qt.IsNil(EnableDispatch()))
	qt.Assert(t, qt.IsFalse(IsDispatchPending()))
}

func TestRotateReadyQueue(t *testing.T) {
	testutils.HostKernel(t)

	qt.Assert(t, qt.IsNil(RotateReadyQueue(0)))
	qt.Assert(t, qt.IsNil(RotateReadyQueue(1)))

	kind, ok := itron.KindOf[RotateError](RotateReadyQueue(-2))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, RotateBadParam))
}

func TestTime(t *testing.T) {
	_, now := fakeClock(t, 5_000)

	tim, err := Time()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tim, 5_000))
	qt.Assert(t, qt.Equals(tim.Std(), 5*time.Millisecond))

	qt.Assert(t, qt.IsNil(SetTime(1_000_000)))
	now.Add(250)
	tim, err = Time()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tim, 1_000_250))
	qt.Assert(t, qt.Equals(tim.String(), "1000250µs"))
}

func TestAdjustTime(t *testing.T) {
	fakeClock(t, 500)

	qt.Assert(t, qt.IsNil(AdjustTime(MaxAdjustment)))
	tim, err := Time()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(tim, 1_000_500))

	for _, tc := range []struct {
		adj  int32
		want AdjustTimeError
	}{
		{MaxAdjustment + 1, AdjustTimeBadParam},
		{MinAdjustment - 1, AdjustTimeBadParam},
	} {
		kind, ok := itron.KindOf[AdjustTimeError](AdjustTime(tc.adj))
		qt.Assert(t, qt.IsTrue(ok))
		qt.Assert(t, qt.Equals(kind, tc.want))
	}

	qt.Assert(t, qt.IsNil(SetTime(10)))
	kind, _ := itron.KindOf[AdjustTimeError](AdjustTime(-11))
	qt.Assert(t, qt.Equals(kind, AdjustTimeBadState))
}

func TestHighResolutionCount(t *testing.T) {
	_, now := fakeClock(t, 42)

	qt.Assert(t, qt.Equals(HighResolutionCount(), 42))
	now.Add(8)
	qt.Assert(t, qt.Equals(HighResolutionCount(), 50))
}

func TestExit(t *testing.T) {
	k := testutils.HostKernel(t)

	qt.Assert(t, qt.IsNil(Exit()))
	qt.Assert(t, qt.IsFalse(IsOperational()))
	select {
	case <-k.Done():
	default:
		t.Fatal("Done isn't closed after Exit")
	}
	qt.Assert(t, qt.IsNil(Exit()))
}
