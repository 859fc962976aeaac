package testutils

import (
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/go-quicktest/qt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/hostkernel"
	"github.com/solid-rs/itron-rs/internal/sys"
)

const traceEnvVar = "ITRON_TEST_TRACE"

// HostKernel installs a fresh host kernel for the duration of a test and
// returns it. Tests using it must not run in parallel.
//
// Setting ITRON_TEST_TRACE logs every service call to the test log.
func HostKernel(tb testing.TB, opts ...func(*hostkernel.Options)) *hostkernel.Kernel {
	tb.Helper()

	var o hostkernel.Options
	if os.Getenv(traceEnvVar) != "" {
		o.Logger = slog.New(slog.NewTextHandler(tbWriter{tb}, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	for _, opt := range opts {
		opt(&o)
	}

	k, err := hostkernel.New(o)
	qt.Assert(tb, qt.IsNil(err))

	Install(tb, k)
	return k
}

// Install replaces the service call surface until the test ends.
func Install(tb testing.TB, k abi.Kernel) {
	tb.Helper()

	prev := sys.SetKernel(k)
	tb.Cleanup(func() { sys.SetKernel(prev) })
}

// WaitForWaiters blocks until n goroutines are blocked in service calls
// of k.
func WaitForWaiters(tb testing.TB, k *hostkernel.Kernel, n int) {
	tb.Helper()

	deadline := time.Now().Add(5 * time.Second)
	for k.Waiting() != n {
		if time.Now().After(deadline) {
			tb.Fatalf("timed out waiting for %d waiters, have %d", n, k.Waiting())
		}
		time.Sleep(time.Millisecond)
	}
}

type tbWriter struct {
	tb testing.TB
}

func (w tbWriter) Write(p []byte) (int, error) {
	w.tb.Log(string(p))
	return len(p), nil
}

// CountingKernel forwards to another kernel and counts object creation
// calls.
type CountingKernel struct {
	abi.Kernel

	mu    sync.Mutex
	calls map[string]int
}

// NewCountingKernel wraps k.
func NewCountingKernel(k abi.Kernel) *CountingKernel {
	return &CountingKernel{Kernel: k, calls: make(map[string]int)}
}

// Calls returns how often the service call name, for example "acre_sem",
// was invoked.
func (ck *CountingKernel) Calls(name string) int {
	ck.mu.Lock()
	defer ck.mu.Unlock()
	return ck.calls[name]
}

// Total returns the number of counted calls.
func (ck *CountingKernel) Total() int {
	ck.mu.Lock()
	defer ck.mu.Unlock()

	n := 0
	for _, c := range ck.calls {
		n += c
	}
	return n
}

func (ck *CountingKernel) count(name string) {
	ck.mu.Lock()
	defer ck.mu.Unlock()
	ck.calls[name]++
}

func (ck *CountingKernel) AcreSem(pk *abi.T_CSEM) abi.ER_ID {
	ck.count("acre_sem")
	return ck.Kernel.AcreSem(pk)
}

func (ck *CountingKernel) AcreFlg(pk *abi.T_CFLG) abi.ER_ID {
	ck.count("acre_flg")
	return ck.Kernel.AcreFlg(pk)
}

func (ck *CountingKernel) AcreDtq(pk *abi.T_CDTQ) abi.ER_ID {
	ck.count("acre_dtq")
	return ck.Kernel.AcreDtq(pk)
}

func (ck *CountingKernel) AcrePdq(pk *abi.T_CPDQ) abi.ER_ID {
	ck.count("acre_pdq")
	return ck.Kernel.AcrePdq(pk)
}

func (ck *CountingKernel) AcreMtx(pk *abi.T_CMTX) abi.ER_ID {
	ck.count("acre_mtx")
	return ck.Kernel.AcreMtx(pk)
}

func (ck *CountingKernel) AcreMbf(pk *abi.T_CMBF) abi.ER_ID {
	ck.count("acre_mbf")
	return ck.Kernel.AcreMbf(pk)
}

func (ck *CountingKernel) AcreMpf(pk *abi.T_CMPF) abi.ER_ID {
	ck.count("acre_mpf")
	return ck.Kernel.AcreMpf(pk)
}

func (ck *CountingKernel) AcreTsk(pk *abi.T_CTSK) abi.ER_ID {
	ck.count("acre_tsk")
	return ck.Kernel.AcreTsk(pk)
}

// CountCreations installs a CountingKernel on top of a fresh host kernel.
func CountCreations(tb testing.TB) *CountingKernel {
	tb.Helper()

	ck := NewCountingKernel(HostKernel(tb))
	Install(tb, ck)
	return ck
}

// Critical calls f and returns the *itron.CriticalError it panics with. The
// test fails if f returns normally or panics with another value.
func Critical(tb testing.TB, f func()) (ce *itron.CriticalError) {
	tb.Helper()

	defer func() {
		r := recover()
		var ok bool
		if ce, ok = r.(*itron.CriticalError); !ok {
			tb.Fatalf("expected a critical error, got %v", r)
		}
	}()

	f()
	return nil
}
