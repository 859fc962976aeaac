// Package prioritydataqueue wraps priority data queues: bounded queues of
// pointer-sized elements received in order of their data priority.
package prioritydataqueue

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Element is the unit transferred through a priority data queue.
type Element = abi.DataElement

// Priority is a data priority. Smaller values are received first.
type Priority = abi.PRI

// Ref is a borrowed reference to a priority data queue.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing priority data queue.
//
// The caller must ensure that id refers to a priority data queue for as
// long as the Ref is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("PriorityDataqueue(%s)", r.id)
}

// Send queues data with priority pri, blocking while the queue is full.
func (r Ref) Send(data Element, pri Priority) error {
	return sys.Check[SendError]("snd_pdq", sys.Kernel().SndPdq(r.id.Get(), data, pri))
}

func (r Ref) SendTimeout(data Element, pri Priority, tmo itron.Timeout) error {
	return sys.Check[SendTimeoutError]("tsnd_pdq", sys.Kernel().TsndPdq(r.id.Get(), data, pri, tmo.Raw()))
}

func (r Ref) TrySend(data Element, pri Priority) error {
	return sys.Check[TrySendError]("psnd_pdq", sys.Kernel().PsndPdq(r.id.Get(), data, pri))
}

// Recv removes the element with the highest priority, blocking while the
// queue is empty.
func (r Ref) Recv() (Element, Priority, error) {
	var (
		data Element
		pri  Priority
	)
	err := sys.Check[RecvError]("rcv_pdq", sys.Kernel().RcvPdq(r.id.Get(), &data, &pri))
	return data, pri, err
}

func (r Ref) RecvTimeout(tmo itron.Timeout) (Element, Priority, error) {
	var (
		data Element
		pri  Priority
	)
	err := sys.Check[RecvTimeoutError]("trcv_pdq", sys.Kernel().TrcvPdq(r.id.Get(), &data, &pri, tmo.Raw()))
	return data, pri, err
}

func (r Ref) TryRecv() (Element, Priority, error) {
	var (
		data Element
		pri  Priority
	)
	err := sys.Check[TryRecvError]("prcv_pdq", sys.Kernel().PrcvPdq(r.id.Get(), &data, &pri))
	return data, pri, err
}

func (r Ref) Initialize() error {
	return sys.Check[InitializeError]("ini_pdq", sys.Kernel().IniPdq(r.id.Get()))
}

func (r Ref) Info() (Info, error) {
	var info Info
	err := sys.Check[InfoError]("ref_pdq", sys.Kernel().RefPdq(r.id.Get(), &info.raw))
	return info, err
}

// Delete deletes the priority data queue.
//
// The caller must ensure that no [*PriorityDataqueue] owns it.
func (r Ref) Delete() error {
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deletePriorityDataqueue(sys.Kernel(), r.id.Get())
}

func deletePriorityDataqueue(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_pdq", k.DelPdq(id))
}

type Info struct {
	raw abi.T_RPDQ
}

func (i Info) Len() uint {
	return uint(i.raw.Spdqcnt)
}

func (i Info) FirstWaitingSenderID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Stskid)
}

func (i Info) FirstWaitingReceiverID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Rtskid)
}
