package messagebuffer

import (
	"testing"

	"github.com/go-quicktest/qt"
	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/testutils"
)

func mustBuild(tb testing.TB, b Builder) *MessageBuffer {
	tb.Helper()

	mbf, err := b.Finish()
	testutils.SkipIfNotSupported(tb, err)
	qt.Assert(tb, qt.IsNil(err))
	tb.Cleanup(func() { mbf.Close() })
	return mbf
}

func TestSendRecv(t *testing.T) {
	testutils.HostKernel(t)

	mbf := mustBuild(t, Build(20, 8))
	qt.Assert(t, qt.Equals(mbf.MaxMessageSize(), 8))

	ref := mbf.Ref()
	qt.Assert(t, qt.IsNil(ref.Send([]byte("hello"))))
	qt.Assert(t, qt.IsNil(ref.TrySend([]byte("hi"))))

	kind, ok := itron.KindOf[TrySendError](ref.TrySend([]byte("x")))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, TrySendTimeout))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Len(), 2))
	qt.Assert(t, qt.Equals(info.FreeBytes(), 0))

	buf := make([]byte, 8)
	for _, want := range []string{"hello", "hi"} {
		n, err := mbf.TryRecv(buf)
		qt.Assert(t, qt.IsNil(err))
		qt.Assert(t, qt.Equals(string(buf[:n]), want))
	}

	_, err = mbf.RecvTimeout(buf, itron.ZeroTimeout)
	kind2, _ := itron.KindOf[RecvTimeoutError](err)
	qt.Assert(t, qt.Equals(kind2, RecvTimeoutTimeout))
}

func TestSendBadLength(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(64, 4)).Ref()
	for _, msg := range []string{"", "toolong"} {
		kind, ok := itron.KindOf[SendError](ref.Send([]byte(msg)))
		qt.Assert(t, qt.IsTrue(ok), qt.Commentf("message %q", msg))
		qt.Assert(t, qt.Equals(kind, SendBadParam))
	}
}

type recvCounter struct {
	abi.Kernel
	calls int
}

func (rc *recvCounter) RcvMbf(id abi.ID, msg []byte) abi.ER_UINT {
	rc.calls++
	return rc.Kernel.RcvMbf(id, msg)
}

func (rc *recvCounter) TrcvMbf(id abi.ID, msg []byte, tmo abi.TMO) abi.ER_UINT {
	rc.calls++
	return rc.Kernel.TrcvMbf(id, msg, tmo)
}

func (rc *recvCounter) PrcvMbf(id abi.ID, msg []byte) abi.ER_UINT {
	rc.calls++
	return rc.Kernel.PrcvMbf(id, msg)
}

func TestRecvShortBuffer(t *testing.T) {
	k := testutils.HostKernel(t)

	mbf := mustBuild(t, Build(64, 16))
	qt.Assert(t, qt.IsNil(mbf.Ref().Send([]byte("abc"))))

	rc := &recvCounter{Kernel: k}
	testutils.Install(t, rc)

	buf := make([]byte, 15)
	_, err := mbf.Recv(buf)
	kind, ok := itron.KindOf[RecvError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, RecvBadParam))

	_, err = mbf.RecvTimeout(buf, itron.Forever)
	kind2, _ := itron.KindOf[RecvTimeoutError](err)
	qt.Assert(t, qt.Equals(kind2, RecvTimeoutBadParam))

	_, err = mbf.TryRecv(buf)
	kind3, _ := itron.KindOf[TryRecvError](err)
	qt.Assert(t, qt.Equals(kind3, TryRecvBadParam))
	qt.Assert(t, qt.Equals(rc.calls, 0))

	// The message is still there.
	n, err := mbf.TryRecv(make([]byte, 16))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(n, 3))
	qt.Assert(t, qt.Equals(rc.calls, 1))
}

func TestUnsafeRecvShortBuffer(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(64, 16)).Ref()
	qt.Assert(t, qt.IsNil(ref.Send([]byte("abc"))))

	ce := testutils.Critical(t, func() { ref.UnsafeTryRecv(make([]byte, 4)) })
	qt.Assert(t, qt.Equals(ce.Op, "prcv_mbf"))
	qt.Assert(t, qt.Equals(ce.Code.Get(), abi.E_MACV))
}

func TestBlockingRecv(t *testing.T) {
	k := testutils.HostKernel(t)

	mbf := mustBuild(t, Build(16, 8))
	ref := mbf.Ref()

	buf := make([]byte, 8)
	var n int
	var eg errgroup.Group
	eg.Go(func() (err error) {
		n, err = mbf.Recv(buf)
		return
	})
	testutils.WaitForWaiters(t, k, 1)

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	_, ok := info.FirstWaitingReceiverID()
	qt.Assert(t, qt.IsTrue(ok))

	qt.Assert(t, qt.IsNil(ref.SendTimeout([]byte("ping"), itron.Forever)))
	qt.Assert(t, qt.IsNil(eg.Wait()))
	qt.Assert(t, qt.Equals(string(buf[:n]), "ping"))
}

func TestBlockingSend(t *testing.T) {
	k := testutils.HostKernel(t)

	mbf := mustBuild(t, Build(8, 4))
	ref := mbf.Ref()
	qt.Assert(t, qt.IsNil(ref.Send([]byte("abcd"))))

	var eg errgroup.Group
	eg.Go(func() error { return ref.Send([]byte("efgh")) })
	testutils.WaitForWaiters(t, k, 1)

	buf := make([]byte, 4)
	n, err := mbf.Recv(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(buf[:n]), "abcd"))
	qt.Assert(t, qt.IsNil(eg.Wait()))

	n, err = ref.UnsafeTryRecv(buf)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(string(buf[:n]), "efgh"))
}

func TestInitialize(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(16, 4)).Ref()
	qt.Assert(t, qt.IsNil(ref.Send([]byte("a"))))
	qt.Assert(t, qt.IsNil(ref.Initialize()))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Len(), 0))
	qt.Assert(t, qt.Equals(info.FreeBytes(), 16))
}

func TestBuildZeroMessageSize(t *testing.T) {
	ck := testutils.CountCreations(t)

	_, err := Build(16, 0).Finish()
	testutils.SkipIfNotSupported(t, err)
	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildBadParam))
	qt.Assert(t, qt.Equals(ck.Calls("acre_mbf"), 1))
}
