// Package hostkernel simulates a TOPPERS third generation kernel inside a Go
// process.
//
// It implements the complete service call surface with the error semantics
// of the real kernels, but it does not schedule anything: every caller is
// treated as the host task (HostTaskID), which always runs. Blocking calls
// park the calling goroutine until another goroutine satisfies the wait,
// the timeout expires or the wait is released. A waiter keeps the priority
// the host task had when the wait started. Created tasks execute their
// entry point on a new goroutine when activated; service calls made from
// that goroutine are attributed to the host task as well.
package hostkernel

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// HostTaskID is the ID of the task every caller is attributed to.
const HostTaskID abi.ID = 1

// HostProcessorID is the only processor of the host kernel.
const HostProcessorID abi.ID = 1

const (
	defaultMaxObjects   = 32
	defaultHostPriority = 8
	minStackSize        = 128
)

// Options configure a Kernel.
type Options struct {
	// MaxObjects is the number of IDs per object class. Defaults to 32.
	MaxObjects int
	// HostPriority is the base priority of the host task. Defaults to 8.
	HostPriority abi.PRI
	// Config lists statically created objects.
	Config *Config
	// Entries resolves the entry points of statically created tasks.
	Entries map[string]abi.TASK
	// Logger receives a debug record for every service call. Defaults to
	// discarding all output.
	Logger *slog.Logger
	// Clock returns a monotonic time in microseconds. Defaults to the
	// system's monotonic clock.
	Clock func() uint64
}

// Kernel is a simulated kernel. It is safe for concurrent use.
type Kernel struct {
	mu sync.Mutex

	log   *slog.Logger
	clock func() uint64

	sems table[semaphore]
	flgs table[eventflag]
	dtqs table[dataqueue]
	pdqs table[prioritydataqueue]
	mtxs table[mutex]
	mbfs table[messagebuffer]
	mpfs table[memorypool]
	tsks table[task]

	host *task

	// Every blocked waiter, used to release the host task's waits.
	waiting map[*waiter]struct{}

	cpuLocked   bool
	dspDisabled bool
	exited      bool
	done        chan struct{}

	// Interrupt priority mask. Any other value than TIPM_ENAALL keeps the
	// host task from blocking, like disabled dispatching.
	ipm   abi.PRI
	lines [tmaxIntno + 1]*line

	// Offset of the system time from the clock, in microseconds.
	timeOffset int64
}

var _ abi.Kernel = (*Kernel)(nil)

// New creates a kernel and the objects described by opts.Config.
func New(opts Options) (*Kernel, error) {
	if opts.MaxObjects <= 0 {
		opts.MaxObjects = defaultMaxObjects
	}
	if opts.HostPriority == 0 {
		opts.HostPriority = defaultHostPriority
	}
	if opts.HostPriority < abi.TMIN_TPRI || opts.HostPriority > abi.TMAX_TPRI {
		return nil, fmt.Errorf("host priority %d out of range", opts.HostPriority)
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Clock == nil {
		opts.Clock = monotonicMicros
	}

	n := opts.MaxObjects
	k := &Kernel{
		log:     opts.Logger,
		clock:   opts.Clock,
		sems:    newTable[semaphore](n),
		flgs:    newTable[eventflag](n),
		dtqs:    newTable[dataqueue](n),
		pdqs:    newTable[prioritydataqueue](n),
		mtxs:    newTable[mutex](n),
		mbfs:    newTable[messagebuffer](n),
		mpfs:    newTable[memorypool](n),
		tsks:    newTable[task](n),
		waiting: make(map[*waiter]struct{}),
		done:    make(chan struct{}),
	}

	k.host = &task{
		id:    HostTaskID,
		state: abi.TTS_RUN,
		ipri:  opts.HostPriority,
		bpri:  opts.HostPriority,
		pri:   opts.HostPriority,
	}
	k.tsks.place(HostTaskID, k.host, true)

	if opts.Config != nil {
		if err := k.apply(opts.Config, opts.Entries); err != nil {
			return nil, err
		}
	}

	return k, nil
}

// Done is closed once ext_ker was called.
func (k *Kernel) Done() <-chan struct{} {
	return k.done
}

// Waiting returns the number of goroutines blocked in a service call.
func (k *Kernel) Waiting() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.waiting)
}

// trace logs the outcome of a service call and returns er.
func (k *Kernel) trace(call string, er abi.ER, args ...any) abi.ER {
	if k.log.Enabled(context.Background(), slog.LevelDebug) {
		attrs := append([]any{"call", call, "ercd", ercdName(er)}, args...)
		k.log.Debug("service call", attrs...)
	}
	return er
}

func ercdName(er abi.ER) string {
	if name, ok := abi.ErrorName(er); ok {
		return name
	}
	return fmt.Sprint(er)
}

// checkUnlocked fails with E_CTX in the CPU locked state.
func (k *Kernel) checkUnlocked() abi.ER {
	if k.cpuLocked {
		return abi.E_CTX
	}
	return abi.E_OK
}

// checkDispatch fails with E_CTX unless the caller may be blocked.
func (k *Kernel) checkDispatch() abi.ER {
	if k.dispatchPending() {
		return abi.E_CTX
	}
	return abi.E_OK
}

// dispatchPending reports whether dispatching is held back.
func (k *Kernel) dispatchPending() bool {
	return k.cpuLocked || k.dspDisabled || k.ipm != abi.TIPM_ENAALL
}

// checkTimeout validates the timeout of a blocking call.
func checkTimeout(tmo abi.TMO) abi.ER {
	if tmo > abi.TMAX_RELTIM && tmo != abi.TMO_FEVR {
		return abi.E_PAR
	}
	return abi.E_OK
}

// checkBlocking combines the checks every blocking call starts with.
func (k *Kernel) checkBlocking(tmo abi.TMO) abi.ER {
	if er := k.checkDispatch(); er != abi.E_OK {
		return er
	}
	return checkTimeout(tmo)
}

// checkQueueAttr fails for attributes other than TA_TPRI.
func checkQueueAttr(atr abi.ATR) abi.ER {
	if atr&^abi.TA_TPRI != 0 {
		return abi.E_RSATR
	}
	return abi.E_OK
}

// table holds the objects of one class, indexed by ID-1.
type table[T any] struct {
	objs   []*T
	static []bool
}

func newTable[T any](n int) table[T] {
	return table[T]{make([]*T, n), make([]bool, n)}
}

// get returns E_ID for IDs outside the table and E_NOEXS for unused IDs.
func (t *table[T]) get(id abi.ID) (*T, abi.ER) {
	if id <= 0 || int(id) > len(t.objs) {
		return nil, abi.E_ID
	}
	obj := t.objs[id-1]
	if obj == nil {
		return nil, abi.E_NOEXS
	}
	return obj, abi.E_OK
}

// alloc stores obj at the lowest free ID.
func (t *table[T]) alloc(obj *T) abi.ER_ID {
	for i, o := range t.objs {
		if o == nil {
			t.objs[i] = obj
			t.static[i] = false
			return abi.ID(i + 1)
		}
	}
	return abi.E_NOID
}

// place stores obj at a fixed ID, growing the table if necessary.
func (t *table[T]) place(id abi.ID, obj *T, static bool) {
	for int(id) > len(t.objs) {
		t.objs = append(t.objs, nil)
		t.static = append(t.static, false)
	}
	t.objs[id-1] = obj
	t.static[id-1] = static
}

// remove deletes a dynamically created object.
func (t *table[T]) remove(id abi.ID) abi.ER {
	if _, er := t.get(id); er != abi.E_OK {
		return er
	}
	if t.static[id-1] {
		return abi.E_OBJ
	}
	t.objs[id-1] = nil
	return abi.E_OK
}

// checkWait performs the context and timeout checks of a call which may
// block. Polling calls only require the CPU to be unlocked.
func (k *Kernel) checkWait(tmo abi.TMO, poll bool) abi.ER {
	if poll {
		return k.checkUnlocked()
	}
	return k.checkBlocking(tmo)
}
