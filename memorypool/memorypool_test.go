package memorypool

import (
	"math"
	"strconv"
	"testing"
	"unsafe"

	"github.com/go-quicktest/qt"
	"golang.org/x/sync/errgroup"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/testutils"
)

func mustBuild(tb testing.TB, b Builder) Ref {
	tb.Helper()

	mpf, err := b.Finish()
	testutils.SkipIfNotSupported(tb, err)
	qt.Assert(tb, qt.IsNil(err))
	tb.Cleanup(func() { mpf.Close() })
	return mpf.Ref()
}

func TestGetRelease(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(16, 2))

	a, err := ref.Get()
	qt.Assert(t, qt.IsNil(err))
	b, err := ref.TryGet()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Not(qt.Equals(a.Pointer(), b.Pointer())))

	copy(a.Bytes(16), "0123456789abcdef")
	copy(b.Bytes(16), "fedcba9876543210")
	qt.Assert(t, qt.Equals(string(a.Bytes(16)), "0123456789abcdef"))

	_, err = ref.TryGet()
	kind, ok := itron.KindOf[TryGetError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, TryGetTimeout))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.FreeBlockCount(), 0))

	qt.Assert(t, qt.IsNil(ref.Release(a)))
	kind2, ok := itron.KindOf[ReleaseError](ref.Release(a))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind2, ReleaseBadParam))

	qt.Assert(t, qt.IsNil(ref.Release(b)))
	info, err = ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.FreeBlockCount(), 2))
}

func TestReleaseForeignBlock(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(8, 1))
	var local [8]byte
	kind, ok := itron.KindOf[ReleaseError](ref.Release(UnsafeBlock(unsafe.Pointer(&local))))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, ReleaseBadParam))
}

func TestBlockingGet(t *testing.T) {
	k := testutils.HostKernel(t)

	ref := mustBuild(t, Build(8, 1))
	held, err := ref.Get()
	qt.Assert(t, qt.IsNil(err))

	var got Block
	var eg errgroup.Group
	eg.Go(func() (err error) {
		got, err = ref.GetTimeout(itron.Forever)
		return
	})
	testutils.WaitForWaiters(t, k, 1)

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	_, ok := info.FirstWaitingTaskID()
	qt.Assert(t, qt.IsTrue(ok))

	qt.Assert(t, qt.IsNil(ref.Release(held)))
	qt.Assert(t, qt.IsNil(eg.Wait()))
	qt.Assert(t, qt.Equals(got.Pointer(), held.Pointer()))
	qt.Assert(t, qt.IsNil(ref.Release(got)))
}

func TestInitialize(t *testing.T) {
	testutils.HostKernel(t)

	ref := mustBuild(t, Build(8, 3))
	for range 3 {
		_, err := ref.TryGet()
		qt.Assert(t, qt.IsNil(err))
	}
	qt.Assert(t, qt.IsNil(ref.Initialize()))

	info, err := ref.Info()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(info.FreeBlockCount(), 3))
}

func TestBuildErrors(t *testing.T) {
	testutils.HostKernel(t)

	_, err := Build(0, 1).Finish()
	testutils.SkipIfNotSupported(t, err)
	kind, ok := itron.KindOf[BuildError](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, BuildBadParam))

	if strconv.IntSize == 64 {
		ck := testutils.CountCreations(t)
		big := uint64(math.MaxUint32) + 1
		_, err = Build(8, uint(big)).Finish()
		kind, _ = itron.KindOf[BuildError](err)
		qt.Assert(t, qt.Equals(kind, BuildOutOfMemory))
		qt.Assert(t, qt.Equals(ck.Total(), 0))
	}
}
