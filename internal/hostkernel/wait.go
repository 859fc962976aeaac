package hostkernel

import (
	"slices"
	"time"
	"unsafe"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// waiter is a goroutine blocked in a service call.
type waiter struct {
	tskid  abi.ID
	pri    abi.PRI
	cause  abi.STAT
	objid  abi.ID
	result chan abi.ER

	// The queue w is in, nil once released.
	queue *waitQueue

	tmo   abi.TMO
	since uint64

	// Operation specific payload, handed over by whoever releases the
	// waiter.
	data    abi.DataElement
	datapri abi.PRI
	waiptn  abi.FLGPTN
	wfmode  abi.MODE
	flgptn  abi.FLGPTN
	msg     []byte
	msgsz   int
	blk     unsafe.Pointer
}

// waitQueue orders waiters in FIFO or task priority order.
type waitQueue struct {
	priority bool
	waiters  []*waiter
}

func newWaitQueue(atr abi.ATR) waitQueue {
	return waitQueue{priority: atr&abi.TA_TPRI != 0}
}

func (q *waitQueue) push(w *waiter) {
	w.queue = q
	if !q.priority {
		q.waiters = append(q.waiters, w)
		return
	}

	i := slices.IndexFunc(q.waiters, func(o *waiter) bool { return o.pri > w.pri })
	if i < 0 {
		q.waiters = append(q.waiters, w)
		return
	}
	q.waiters = slices.Insert(q.waiters, i, w)
}

func (q *waitQueue) first() *waiter {
	if len(q.waiters) == 0 {
		return nil
	}
	return q.waiters[0]
}

// firstID returns the task ID of the first waiter or TSK_NONE.
func (q *waitQueue) firstID() abi.ID {
	if w := q.first(); w != nil {
		return w.tskid
	}
	return abi.TSK_NONE
}

func (q *waitQueue) remove(w *waiter) {
	if i := slices.Index(q.waiters, w); i >= 0 {
		q.waiters = slices.Delete(q.waiters, i, i+1)
	}
	w.queue = nil
}

// enqueue blocks the host task on q. It returns E_TMOUT instead if tmo
// requests polling.
//
// Must be called with k.mu held. The caller then calls await without
// holding k.mu.
func (k *Kernel) enqueue(q *waitQueue, cause abi.STAT, objid abi.ID, tmo abi.TMO) (*waiter, abi.ER) {
	if tmo == abi.TMO_POL {
		return nil, abi.E_TMOUT
	}

	w := &waiter{
		tskid:  k.host.id,
		pri:    k.host.pri,
		cause:  cause,
		objid:  objid,
		result: make(chan abi.ER, 1),
		tmo:    tmo,
		since:  k.clock(),
	}
	q.push(w)
	k.waiting[w] = struct{}{}
	return w, abi.E_OK
}

// await waits until w is released or tmo expires.
func (k *Kernel) await(w *waiter, tmo abi.TMO) abi.ER {
	if tmo == abi.TMO_FEVR {
		return <-w.result
	}

	timer := time.NewTimer(time.Duration(tmo) * time.Microsecond)
	defer timer.Stop()

	select {
	case er := <-w.result:
		return er
	case <-timer.C:
	}

	k.mu.Lock()
	if w.queue != nil {
		w.queue.remove(w)
		delete(k.waiting, w)
		k.mu.Unlock()
		return abi.E_TMOUT
	}
	k.mu.Unlock()

	// Released concurrently with the timeout.
	return <-w.result
}

// release wakes w with result er. Must be called with k.mu held.
func (k *Kernel) release(w *waiter, er abi.ER) {
	if w.queue != nil {
		w.queue.remove(w)
	}
	delete(k.waiting, w)
	w.result <- er
}

// releaseAll wakes every waiter in q with result er.
func (k *Kernel) releaseAll(q *waitQueue, er abi.ER) {
	for len(q.waiters) > 0 {
		k.release(q.waiters[0], er)
	}
}

// causeSuspend marks the waiter of a suspended host task. It is not a wait
// and rel_wai doesn't end it.
const causeSuspend abi.STAT = 0

// lefttmo returns the time until w times out.
func (k *Kernel) lefttmo(w *waiter) abi.TMO {
	if w.tmo == abi.TMO_FEVR {
		return abi.TMO_FEVR
	}
	elapsed := k.clock() - w.since
	if elapsed >= uint64(w.tmo) {
		return 0
	}
	return w.tmo - abi.TMO(elapsed)
}

// waitOf returns a waiter of tskid other than its suspension, if any.
func (k *Kernel) waitOf(tskid abi.ID) *waiter {
	for w := range k.waiting {
		if w.tskid == tskid && w.cause != causeSuspend {
			return w
		}
	}
	return nil
}

// releaseTask wakes every waiter belonging to tskid with result er and
// reports whether there were any.
func (k *Kernel) releaseTask(tskid abi.ID, er abi.ER) bool {
	found := false
	for w := range k.waiting {
		if w.tskid == tskid && w.cause != causeSuspend {
			k.release(w, er)
			found = true
		}
	}
	return found
}

// blockingCall runs fn with k.mu held. If fn returns a waiter the call
// waits for it to be released, otherwise fn's result is returned directly.
func (k *Kernel) blockingCall(tmo abi.TMO, fn func() (*waiter, abi.ER)) (*waiter, abi.ER) {
	k.mu.Lock()
	w, er := fn()
	k.mu.Unlock()

	if w == nil {
		return nil, er
	}
	return w, k.await(w, tmo)
}
