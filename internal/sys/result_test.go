package sys

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

type testKind uint8

const (
	testBadID testKind = iota
	testTimeout
	testHidden
)

var testKinds = itron.KindTable[testKind]{
	itron.Variant(testBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(testTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(testHidden, "hidden", false, abi.E_QOVR),
}

func (testKind) FromErrorCode(code itron.ErrorCode) (testKind, bool) {
	return testKinds.Classify(code)
}

func (k testKind) String() string { return testKinds.Name(k) }

func (k testKind) Available() bool { return testKinds.Available(k) }

func critical(tb testing.TB, f func()) (ce *itron.CriticalError) {
	tb.Helper()

	defer func() {
		var ok bool
		ce, ok = recover().(*itron.CriticalError)
		if !ok {
			tb.Fatal("expected a critical error")
		}
	}()
	f()
	return nil
}

func TestCheck(t *testing.T) {
	qt.Assert(t, qt.IsNil(Check[testKind]("op", abi.E_OK)))
	qt.Assert(t, qt.IsNil(Check[testKind]("op", 3)))

	err := Check[testKind]("twai_sem", abi.E_TMOUT)
	qt.Assert(t, qt.IsNotNil(err))
	qt.Assert(t, qt.ErrorIs(err, os.ErrDeadlineExceeded))
	qt.Assert(t, qt.Equals(err.Error(), "timeout (E_TMOUT)"))

	kind, ok := itron.KindOf[testKind](err)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, testTimeout))

	wrapped := fmt.Errorf("wait: %w", Check[testKind]("op", abi.E_NOEXS))
	kind, ok = itron.KindOf[testKind](wrapped)
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, testBadID))
	qt.Assert(t, qt.ErrorIs(wrapped, os.ErrNotExist))
}

func TestCheckUndocumented(t *testing.T) {
	for _, er := range []abi.ER{abi.E_QOVR, abi.E_SYS, -1000} {
		ce := critical(t, func() { Check[testKind]("sig_sem", er) })
		qt.Assert(t, qt.Equals(ce.Op, "sig_sem"))
		qt.Assert(t, qt.Equals(ce.Code.Get(), er))

		var code itron.ErrorCode
		qt.Assert(t, qt.IsTrue(errors.As(ce, &code)))
	}
}

func TestCheckValue(t *testing.T) {
	v, err := CheckValue[testKind]("acre_sem", 7)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(v, 7))

	v, err = CheckValue[testKind]("acre_sem", abi.E_ID)
	qt.Assert(t, qt.Equals(v, 0))
	kind, _ := itron.KindOf[testKind](err)
	qt.Assert(t, qt.Equals(kind, testBadID))
}

func TestFail(t *testing.T) {
	kind, ok := itron.KindOf[testKind](Fail[testKind]("acre_sem", abi.E_TMOUT))
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(kind, testTimeout))

	qt.Assert(t, qt.PanicMatches(func() { Fail[testKind]("op", abi.E_OK) }, ".*non-negative.*"))
	critical(t, func() { Fail[testKind]("op", abi.E_QOVR) })
}
