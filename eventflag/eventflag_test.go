package eventflag

import (
	"testing"

	"github.com/go-quicktest/qt"
	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/testutils"
)

func mustBuild(tb testing.TB, b Builder) Ref {
	tb.Helper()

	flg, err := b.Finish()
	testutils.SkipIfNotSupported(tb, err)
	qt.Assert(tb, qt.IsNil(err))
	tb.Cleanup(func() { flg.Close() })
	return flg.Ref()
}

func TestSetClear(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build().InitialPattern(0b0001))
	qt.Assert(t, qt.IsNil(ref.Set(0b0110)))
	qt.Assert(t, qt.IsNil(ref.Clear(0b0010)))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Pattern(), 0b0101))

	qt.Assert(t, qt.IsNil(ref.Initialize()))
	info, err = ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Pattern(), 0b0001))
}

func TestPoll(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build().InitialPattern(0b0011))

	ptn, err := ref.Poll(0b0110, Any)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(ptn, 0b0011))

	_, err = ref.Poll(0b0110, All)
	kind, ok := itron.KindOf[PollError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, PollTimeout))

	_, err = ref.Poll(0, Any)
	kind, _ = itron.KindOf[PollError](err)
	qt.Assert(t, qt.Equals(kind, PollBadParam))
}

func TestWaitAll(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build().ClearOnWake(true))

	var eg errgroup.Group
	eg.Go(func() error {
		ptn, err := ref.Wait(0b11, All)
		if err != nil {
			return err
		}
		qt.Check(t, qt.Equals(ptn, 0b11))
		return nil
	})
	testutils.WaitForWaiters(t, k, 1)

	qt.Assert(t, qt.IsNil(ref.Set(0b01)))
	qt.Assert(t, qt.Equals(k.Waiting(), 1))
	qt.Assert(t, qt.IsNil(ref.Set(0b10)))
	qt.Assert(t, qt.IsNil(eg.Wait()))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.Pattern(), 0))
}

func TestMultipleWaiters(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build())

	var eg errgroup.Group
	for range 2 {
		eg.Go(func() error {
			_, err := ref.Wait(0b1, Any)
			return err
		})
	}
	testutils.WaitForWaiters(t, k, 2)

	qt.Assert(t, qt.IsNil(ref.Set(0b1)))
	qt.Assert(t, qt.IsNil(eg.Wait()))
}

func TestWaitTimeout(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build())
	_, err := ref.WaitTimeout(0b1, Any, itron.MustTimeout(itron.TimeoutFromMillis(1)))
	kind, ok := itron.KindOf[WaitTimeoutError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, WaitTimeoutTimeout))
}

func TestDeleteReleasesWaiters(t *testing.T) {
	k := testutils.HostKernel(t)

	flg, err := Build().Finish()
	testutils.SkipIfNotSupported(t, err)
	qt.Assert(t, qt.IsNil(err))
	ref := flg.Leak()

	var eg errgroup.Group
	eg.Go(func() error {
		_, err := ref.Wait(0b1, Any)
		return err
	})
	testutils.WaitForWaiters(t, k, 1)

	qt.Assert(t, qt.IsNil(ref.Delete()))
	kind, ok := itron.KindOf[WaitError](eg.Wait())
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, WaitDeleted))

	_, err = ref.Info()
	kind2, _ := itron.KindOf[InfoError](err)
	qt.Assert(t, qt.Equals(kind2, InfoBadID))
}

func TestString(t *testing.T) {
	ref := UnsafeRef(itron.MustNonNullID(7))
	qt.Assert(t, qt.Equals(ref.String(), "Eventflag(7)"))
	qt.Assert(t, qt.Equals(All.String(), "all"))
	qt.Assert(t, qt.Equals(WaitBadParam.String(), "bad parameter"))
}
