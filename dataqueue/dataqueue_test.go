package dataqueue

import (
	"math"
	"strconv"
	"testing"

	"github.com/go-quicktest/qt"
	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/hostkernel"
	"github.com/solid-rs/itron-rs/internal/testutils"
)

func mustBuild(tb testing.TB, b Builder) Ref {
	tb.Helper()

	dtq, err := b.Finish()
	testutils.SkipIfNotSupported(tb, err)
	qt.Assert(tb, qt.IsNil(err))
	tb.Cleanup(func() { dtq.Close() })
	return dtq.Ref()
}

func TestBoundedFIFO(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(2))
	qt.Assert(t, qt.IsNil(ref.Send(1)))
	qt.Assert(t, qt.IsNil(ref.Send(2)))

	err := ref.TrySend(3)
	kind, ok := itron.KindOf[TrySendError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, TrySendTimeout))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Len(), 2))

	for _, want := range []Element{1, 2} {
		got, err := ref.Recv()
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, want))
	}

	_, err = ref.TryRecv()
	kind2, _ := itron.KindOf[TryRecvError](err)
	qt.Assert(t, qt.Equals(kind2, TryRecvTimeout))
}

func TestSendForced(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(2))
	for _, data := range []Element{1, 2, 3} {
		qt.Assert(t, qt.IsNil(ref.SendForced(data)))
	}
	for _, want := range []Element{2, 3} {
		got, err := ref.TryRecv()
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(got, want))
	}

	zero := mustBuild(t, Build(0))
	kind, ok := itron.KindOf[SendForcedError](zero.SendForced(1))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, SendForcedZeroSized))
}

func TestRendezvous(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build(0))

	var eg errgroup.Group
	eg.Go(func() error { return ref.Send(42) })
	testutils.WaitForWaiters(t, k, 1)

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	sender, ok := info.FirstWaitingSenderID()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(sender.Get(), hostkernel.HostTaskID))

	got, err := ref.RecvTimeout(itron.Forever)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(got, 42))
	qt.Assert(t, qt.IsNil(eg.Wait()))
}

func TestBlockedReceiver(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build(1))

	var got Element
	var eg errgroup.Group
	eg.Go(func() (err error) {
		got, err = ref.Recv()
		return
	})
	testutils.WaitForWaiters(t, k, 1)

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	_, ok := info.FirstWaitingReceiverID()
	qt.Assert(t, qt.IsTrue(ok))

	qt.Assert(t, qt.IsNil(ref.TrySend(7)))
	qt.Assert(t, qt.IsNil(eg.Wait()))
	qt.Assert(t, qt.Equals(got, 7))
}

func TestTimeouts(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(1))
	tmo := itron.MustTimeout(itron.TimeoutFromMicros(500))

	_, err := ref.RecvTimeout(tmo)
	kind, _ := itron.KindOf[RecvTimeoutError](err)
	qt.Assert(t, qt.Equals(kind, RecvTimeoutTimeout))

	qt.Assert(t, qt.IsNil(ref.SendTimeout(1, tmo)))
	kind2, _ := itron.KindOf[SendTimeoutError](ref.SendTimeout(2, tmo))
	qt.Assert(t, qt.Equals(kind2, SendTimeoutTimeout))
}

func TestInitialize(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build(0))

	var eg errgroup.Group
	eg.Go(func() error { return ref.Send(1) })
	testutils.WaitForWaiters(t, k, 1)

	qt.Assert(t, qt.IsNil(ref.Initialize()))
	kind, ok := itron.KindOf[SendError](eg.Wait())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, SendDeleted))
}

func TestBuildOverflow(t *testing.T) {
	if strconv.IntSize == 32 {
		t.Skip("uint can't exceed the kernel's counter")
	}
	ck := testutils.CountCreations(t)

	big := uint64(math.MaxUint32) + 1
	_, err := Build(uint(big)).Finish()
	testutils.SkipIfNotSupported(t, err)

	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildOutOfMemory))
	qt.Assert(t, qt.Equals(ck.Calls("acre_dtq"), 0))
}

func TestBuildExhaustsIDs(t *testing.T) {
	testutils.HostKernel(t, func(o *hostkernel.Options) { o.MaxObjects = 1 })

	mustBuild(t, Build(1))
	_, err := Build(1).Finish()
	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildOutOfMemory))
}
