package prioritydataqueue

import (
	"testing"

	"github.com/go-quicktest/qt"
	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/testutils"
)

func mustBuild(tb testing.TB, b Builder) Ref {
	tb.Helper()

	pdq, err := b.Finish()
	testutils.SkipIfNotSupported(tb, err)
	qt.Assert(tb, qt.IsNil(err))
	tb.Cleanup(func() { pdq.Close() })
	return pdq.Ref()
}

type item struct {
	data Element
	pri  Priority
}

func TestPriorityOrder(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(4).MaxPriority(4))
	for _, it := range []item{{1, 3}, {2, 1}, {3, 3}, {4, 2}} {
		qt.Assert(t, qt.IsNil(ref.TrySend(it.data, it.pri)))
	}

	kind, ok := itron.KindOf[TrySendError](ref.TrySend(5, 1))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, TrySendTimeout))

	var got []item
	for range 4 {
		data, pri, err := ref.TryRecv()
		qt.Assert(t, qt.IsNil(err))
		got = append(got, item{data, pri})
	}
	qt.Assert(t, qt.CmpEquals(got, []item{{2, 1}, {4, 2}, {1, 3}, {3, 3}}, cmp.AllowUnexported(item{})))
}

func TestPriorityRange(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(1).MaxPriority(2))
	for _, pri := range []Priority{0, 3} {
		kind, ok := itron.KindOf[SendError](ref.Send(1, pri))
		qt.Assert(t, qt.IsTrue(ok), qt.Commentf("priority %d", pri))
		qt.Assert(t, qt.Equals(kind, SendBadParam))
	}
}

func TestBlockingSend(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build(1))
	qt.Assert(t, qt.IsNil(ref.Send(1, 5)))

	var eg errgroup.Group
	eg.Go(func() error { return ref.Send(2, 1) })
	testutils.WaitForWaiters(t, k, 1)

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Len(), 1))
	_, waiting := info.FirstWaitingSenderID()
	qt.Assert(t, qt.IsTrue(waiting))

	data, pri, err := ref.Recv()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(data, 1))
	qt.Assert(t, qt.Equals(pri, 5))
	qt.Assert(t, qt.IsNil(eg.Wait()))

	data, pri, err = ref.RecvTimeout(itron.ZeroTimeout)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(data, 2))
	qt.Assert(t, qt.Equals(pri, 1))
}

func TestBuildBadMaxPriority(t *testing.T) {
	testutils.HostKernel(t)

	_, err := Build(1).MaxPriority(0).Finish()
	testutils.SkipIfNotSupported(t, err)
	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildBadParam))
}

func TestTimeouts(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(0))
	tmo := itron.MustTimeout(itron.TimeoutFromMicros(100))

	kind, _ := itron.KindOf[SendTimeoutError](ref.SendTimeout(1, 1, tmo))
	qt.Assert(t, qt.Equals(kind, SendTimeoutTimeout))

	_, _, err := ref.RecvTimeout(tmo)
	kind2, _ := itron.KindOf[RecvTimeoutError](err)
	qt.Assert(t, qt.Equals(kind2, RecvTimeoutTimeout))

	qt.Assert(t, qt.IsNil(ref.Initialize()))
}
