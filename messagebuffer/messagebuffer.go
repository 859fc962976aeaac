// Package messagebuffer wraps message buffers, which copy variable sized
// messages between tasks through a ring buffer in kernel memory.
//
// Message buffers exist only on kernels built with them: every operation
// returns an [*itron.UnsupportedFeatureError] otherwise.
package messagebuffer

import (
	"fmt"
	"math"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Ref is a borrowed reference to a message buffer.
type Ref struct {
	id itron.NonNullID
}

// UnsafeRef wraps an existing message buffer.
//
// The caller must ensure that id refers to a message buffer for as long as
// the Ref is used.
func UnsafeRef(id itron.NonNullID) Ref {
	return Ref{id}
}

func (r Ref) ID() itron.NonNullID {
	return r.id
}

func (r Ref) String() string {
	return fmt.Sprintf("MessageBuffer(%s)", r.id)
}

// messageTooLong reports whether the kernel can't represent the length of
// msg. The kernel would reject such a message with E_PAR.
func messageTooLong(msg []byte) bool {
	return uint64(len(msg)) > math.MaxUint32
}

// Send copies msg into the buffer, blocking until there is room.
//
// msg must not be empty or longer than the maximum message size.
func (r Ref) Send(msg []byte) error {
	if err := itron.RequireMessageBuffers(); err != nil {
		return err
	}
	if messageTooLong(msg) {
		return sys.Fail[SendError]("snd_mbf", abi.E_PAR)
	}
	return sys.Check[SendError]("snd_mbf", sys.Kernel().SndMbf(r.id.Get(), msg))
}

func (r Ref) SendTimeout(msg []byte, tmo itron.Timeout) error {
	if err := itron.RequireMessageBuffers(); err != nil {
		return err
	}
	if messageTooLong(msg) {
		return sys.Fail[SendTimeoutError]("tsnd_mbf", abi.E_PAR)
	}
	return sys.Check[SendTimeoutError]("tsnd_mbf", sys.Kernel().TsndMbf(r.id.Get(), msg, tmo.Raw()))
}

// TrySend fails with TrySendTimeout instead of blocking.
func (r Ref) TrySend(msg []byte) error {
	if err := itron.RequireMessageBuffers(); err != nil {
		return err
	}
	if messageTooLong(msg) {
		return sys.Fail[TrySendError]("psnd_mbf", abi.E_PAR)
	}
	return sys.Check[TrySendError]("psnd_mbf", sys.Kernel().PsndMbf(r.id.Get(), msg))
}

// UnsafeRecv copies the oldest message into buf and returns its length,
// blocking while the buffer is empty.
//
// The caller must ensure that buf is at least as long as the maximum
// message size of the message buffer: the kernel may write past the end of
// a shorter buffer. [MessageBuffer.Recv] checks this.
func (r Ref) UnsafeRecv(buf []byte) (int, error) {
	if err := itron.RequireMessageBuffers(); err != nil {
		return 0, err
	}
	n, err := sys.CheckValue[RecvError]("rcv_mbf", sys.Kernel().RcvMbf(r.id.Get(), buf))
	return int(n), err
}

// UnsafeRecvTimeout is like UnsafeRecv but gives up after tmo.
func (r Ref) UnsafeRecvTimeout(buf []byte, tmo itron.Timeout) (int, error) {
	if err := itron.RequireMessageBuffers(); err != nil {
		return 0, err
	}
	n, err := sys.CheckValue[RecvTimeoutError]("trcv_mbf", sys.Kernel().TrcvMbf(r.id.Get(), buf, tmo.Raw()))
	return int(n), err
}

// UnsafeTryRecv is like UnsafeRecv but fails with TryRecvTimeout instead
// of blocking.
func (r Ref) UnsafeTryRecv(buf []byte) (int, error) {
	if err := itron.RequireMessageBuffers(); err != nil {
		return 0, err
	}
	n, err := sys.CheckValue[TryRecvError]("prcv_mbf", sys.Kernel().PrcvMbf(r.id.Get(), buf))
	return int(n), err
}

// Initialize discards buffered messages. Waiting tasks are released with
// the Deleted kind.
func (r Ref) Initialize() error {
	if err := itron.RequireMessageBuffers(); err != nil {
		return err
	}
	return sys.Check[InitializeError]("ini_mbf", sys.Kernel().IniMbf(r.id.Get()))
}

func (r Ref) Info() (Info, error) {
	var info Info
	if err := itron.RequireMessageBuffers(); err != nil {
		return info, err
	}
	err := sys.Check[InfoError]("ref_mbf", sys.Kernel().RefMbf(r.id.Get(), &info.raw))
	return info, err
}

// Delete deletes the message buffer.
//
// The caller must ensure that no [*MessageBuffer] owns it.
func (r Ref) Delete() error {
	if err := itron.RequireMessageBuffers(); err != nil {
		return err
	}
	if err := itron.RequireDynamicCreation(); err != nil {
		return err
	}
	return deleteMessageBuffer(sys.Kernel(), r.id.Get())
}

func deleteMessageBuffer(k abi.Kernel, id abi.ID) error {
	return sys.Check[DeleteError]("del_mbf", k.DelMbf(id))
}

// Info is a snapshot of the state of a message buffer.
type Info struct {
	raw abi.T_RMBF
}

// Len is the number of buffered messages.
func (i Info) Len() uint {
	return uint(i.raw.Smbfcnt)
}

// FreeBytes is the unused space in the ring buffer.
func (i Info) FreeBytes() uint {
	return uint(i.raw.Fmbfsz)
}

func (i Info) FirstWaitingSenderID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Stskid)
}

func (i Info) FirstWaitingReceiverID() (itron.NonNullID, bool) {
	return itron.NewNonNullID(i.raw.Rtskid)
}
