// Package dataqueue wraps data queues, bounded FIFO queues of
// pointer-sized elements.
//
// A data queue with a capacity of zero is a rendezvous: every send waits
// for a receiver.
package dataqueue

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Element is the unit transferred through a data queue.
type Element = abi.DataElement

// Ref is a borrowed reference to a data queue.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing data queue.
//
// The caller must ensure that id refers to a data queue for as long as the
// Ref is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("Dataqueue(%s)", r.id)
}

// Send appends data, blocking while the queue is full.
func (r Ref) Send(data Element) error {
	return sys.Check[SendError]("snd_dtq", sys.Kernel().SndDtq(r.id.Get(), data))
}

func (r Ref) SendTimeout(data Element, tmo itron.Timeout) error {
	return sys.Check[SendTimeoutError]("tsnd_dtq", sys.Kernel().TsndDtq(r.id.Get(), data, tmo.Raw()))
}

// TrySend fails with TrySendTimeout instead of blocking.
func (r Ref) TrySend(data Element) error {
	return sys.Check[TrySendError]("psnd_dtq", sys.Kernel().PsndDtq(r.id.Get(), data))
}

// SendForced appends data, dropping the oldest element if the queue is
// full. It never blocks.
func (r Ref) SendForced(data Element) error {
	return sys.Check[SendForcedError]("fsnd_dtq", sys.Kernel().FsndDtq(r.id.Get(), data))
}

// Recv removes the oldest element, blocking while the queue is empty.
func (r Ref) Recv() (Element, error) {
	var data Element
	err := sys.Check[RecvError]("rcv_dtq", sys.Kernel().RcvDtq(r.id.Get(), &data))
	return data, err
}

func (r Ref) RecvTimeout(tmo itron.Timeout) (Element, error) {
	var data Element
	err := sys.Check[RecvTimeoutError]("trcv_dtq", sys.Kernel().TrcvDtq(r.id.Get(), &data, tmo.Raw()))
	return data, err
}

// TryRecv fails with TryRecvTimeout instead of blocking.
func (r Ref) TryRecv() (Element, error) {
	var data Element
	err := sys.Check[TryRecvError]("prcv_dtq", sys.Kernel().PrcvDtq(r.id.Get(), &data))
	return data, err
}

// Initialize discards queued elements and releases waiting tasks with the
// Deleted kind.
func (r Ref) Initialize() error {
	return sys.Check[InitializeError]("ini_dtq", sys.Kernel().IniDtq(r.id.Get()))
}

func (r Ref) Info() (Info, error) {
	var info Info
	err := sys.Check[InfoError]("ref_dtq", sys.Kernel().RefDtq(r.id.Get(), &info.raw))
	return info, err
}

// Delete deletes the data queue.
//
// The caller must ensure that no [*Dataqueue] owns it.
func (r Ref) Delete() error {
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deleteDataqueue(sys.Kernel(), r.id.Get())
}

func deleteDataqueue(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_dtq", k.DelDtq(id))
}

// Info is a snapshot of the state of a data queue.
type Info struct {
	raw abi.T_RDTQ
}

// Len is the number of queued elements.
func (i Info) Len() uint {
	return uint(i.raw.Sdtqcnt)
}

// FirstWaitingSenderID returns the first task waiting to send.
func (i Info) FirstWaitingSenderID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Stskid)
}

// FirstWaitingReceiverID returns the first task waiting to receive.
func (i Info) FirstWaitingReceiverID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Rtskid)
}
