// Package eventflag wraps eventflags, sets of bits tasks can wait on.
package eventflag

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Bits is an eventflag bit pattern.
type Bits uint32

// WaitMode selects the condition a wait is satisfied by.
type WaitMode uint8

const (
	// Any is satisfied if one of the requested bits is set.
	Any WaitMode = iota
	// All is satisfied once every requested bit is set.
	All
)

func (m WaitMode) raw() abi.MODE {
	if m == All {
		return abi.TWF_ANDW
	}
	return abi.TWF_ORW
}

func (m WaitMode) String() string {
	if m == All {
		return "all"
	}
	return "any"
}

// Ref is a borrowed reference to an eventflag.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing eventflag.
//
// The caller must ensure that id refers to an eventflag for as long as the
// Ref is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("Eventflag(%s)", r.id)
}

// Set sets bits, releasing every task whose wait condition becomes true.
func (r Ref) Set(bits Bits) error {
	return sys.Check[SetError]("set_flg", sys.Kernel().SetFlg(r.id.Get(), abi.FLGPTN(bits)))
}

// Clear clears bits.
func (r Ref) Clear(bits Bits) error {
	return sys.Check[ClearError]("clr_flg", sys.Kernel().ClrFlg(r.id.Get(), ^abi.FLGPTN(bits)))
}

// Wait blocks until the condition on bits described by mode holds and
// returns the pattern that released the caller.
func (r Ref) Wait(bits Bits, mode WaitMode) (Bits, error) {
	var ptn abi.FLGPTN
	err := sys.Check[WaitError]("wai_flg", sys.Kernel().WaiFlg(r.id.Get(), abi.FLGPTN(bits), mode.raw(), &ptn))
	return Bits(ptn), err
}

// WaitTimeout is like Wait with a timeout.
func (r Ref) WaitTimeout(bits Bits, mode WaitMode, tmo itron.Timeout) (Bits, error) {
	var ptn abi.FLGPTN
	err := sys.Check[WaitTimeoutError]("twai_flg", sys.Kernel().TwaiFlg(r.id.Get(), abi.FLGPTN(bits), mode.raw(), &ptn, tmo.Raw()))
	return Bits(ptn), err
}

// Poll is like Wait but fails with PollTimeout instead of blocking.
func (r Ref) Poll(bits Bits, mode WaitMode) (Bits, error) {
	var ptn abi.FLGPTN
	err := sys.Check[PollError]("pol_flg", sys.Kernel().PolFlg(r.id.Get(), abi.FLGPTN(bits), mode.raw(), &ptn))
	return Bits(ptn), err
}

// Initialize restores the initial pattern. Waiting tasks are released with
// the Deleted kind.
func (r Ref) Initialize() error {
	return sys.Check[InitializeError]("ini_flg", sys.Kernel().IniFlg(r.id.Get()))
}

func (r Ref) Info() (Info, error) {
	var info Info
	err := sys.Check[InfoError]("ref_flg", sys.Kernel().RefFlg(r.id.Get(), &info.raw))
	return info, err
}

// Delete deletes the eventflag.
//
// The caller must ensure that no [*Eventflag] owns it.
func (r Ref) Delete() error {
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deleteEventflag(sys.Kernel(), r.id.Get())
}

func deleteEventflag(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_flg", k.DelFlg(id))
}

// Info is a snapshot of the state of an eventflag.
type Info struct {
	raw abi.T_RFLG
}

// Pattern is the current bit pattern.
func (i Info) Pattern() Bits {
	return Bits(i.raw.Flgptn)
}

func (i Info) FirstWaitingTaskID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Wtskid)
}
