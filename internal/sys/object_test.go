package sys

import (
	"errors"
	"math"
	"runtime"
	"strconv"
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs/internal/abi"
)

func TestObjectClose(t *testing.T) {
	var deleted []abi.ID
	obj := NewObject("Semaphore", 3, func(id abi.ID) error {
		deleted = append(deleted, id)
		return nil
	})

	qt.Assert(t, qt.Equals(obj.String(), "Semaphore(3)"))
	qt.Assert(t, qt.Equals(obj.MustID(), 3))
	qt.Assert(t, qt.IsNil(obj.Close()))
	qt.Assert(t, qt.IsNil(obj.Close()))
	qt.Assert(t, qt.DeepEquals(deleted, []abi.ID{3}))
	qt.Assert(t, qt.Equals(obj.ID(), 0))
	qt.Assert(t, qt.PanicMatches(func() { obj.MustID() }, "Semaphore used after Close or Leak"))
}

func TestObjectCloseError(t *testing.T) {
	errDel := errors.New("busy")
	calls := 0
	obj := NewObject("Task", 5, func(abi.ID) error {
		calls++
		return errDel
	})

	qt.Assert(t, qt.ErrorIs(obj.Close(), errDel))
	qt.Assert(t, qt.IsNil(obj.Close()))
	qt.Assert(t, qt.Equals(calls, 1))
}

func TestObjectDisown(t *testing.T) {
	obj := NewObject("Mutex", 2, func(abi.ID) error {
		t.Error("disowned object was deleted")
		return nil
	})

	qt.Assert(t, qt.Equals(obj.Disown(), 2))
	qt.Assert(t, qt.IsNil(obj.Close()))
}

func TestObjectFinalizer(t *testing.T) {
	deleted := make(chan abi.ID, 1)
	func() {
		NewObject("DataQueue", 4, func(id abi.ID) error {
			deleted <- id
			return nil
		})
	}()

	deadline := time.After(5 * time.Second)
	for {
		runtime.GC()
		select {
		case id := <-deleted:
			qt.Assert(t, qt.Equals(id, 4))
			return
		case <-deadline:
			t.Fatal("finalizer didn't delete the object")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestOverflow(t *testing.T) {
	var o Overflow
	qt.Assert(t, qt.Equals(o.Uint(7), 7))
	qt.Assert(t, qt.IsFalse(o.Occurred()))

	if strconv.IntSize == 64 {
		var big uint = math.MaxUint32
		big++
		qt.Assert(t, qt.Equals(o.Uint(big), 0))
		qt.Assert(t, qt.IsTrue(o.Occurred()))
		qt.Assert(t, qt.Equals(o.Uint(1), 1))
		qt.Assert(t, qt.IsTrue(o.Occurred()))
	}
}

func TestKernelSwap(t *testing.T) {
	prev := SetKernel(nil)
	t.Cleanup(func() { SetKernel(prev) })

	def := Kernel()
	qt.Assert(t, qt.IsNotNil(def))

	var stub struct{ abi.Kernel }
	qt.Assert(t, qt.Equals(SetKernel(stub), def))
	qt.Assert(t, qt.Equals[abi.Kernel](Kernel(), stub))
	qt.Assert(t, qt.Equals[abi.Kernel](SetKernel(nil), stub))
	qt.Assert(t, qt.Equals(Kernel(), def))
}
