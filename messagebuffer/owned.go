package messagebuffer

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// MessageBuffer is an owned message buffer.
//
// It remembers the maximum message size, so that unlike [Ref] it can
// receive into a caller supplied buffer safely.
type MessageBuffer struct {
	obj     *sys.Object
	maxSize uint
}

// UnsafeOwn takes ownership of an existing message buffer which accepts
// messages of up to maxMessageSize bytes.
func UnsafeOwn(id itron.NonNullID, maxMessageSize uint) *MessageBuffer {
	k := sys.Kernel()
	return &MessageBuffer{sys.NewObject("MessageBuffer", id.Get(), func(id abi.ID) error {
		return deleteMessageBuffer(k, id)
	}), maxMessageSize}
}

func (mb *MessageBuffer) Ref() Ref {
	return Ref{itron.MustNonNullID(mb.obj.MustID())}
}

func (mb *MessageBuffer) String() string {
	return mb.obj.String()
}

func (mb *MessageBuffer) Close() error {
	return mb.obj.Close()
}

func (mb *MessageBuffer) Leak() Ref {
	return Ref{itron.MustNonNullID(mb.obj.Disown())}
}

// MaxMessageSize is the length of the longest message the buffer accepts.
func (mb *MessageBuffer) MaxMessageSize() uint {
	return mb.maxSize
}

// Recv copies the oldest message into buf and returns its length, blocking
// while the buffer is empty.
//
// It fails with RecvBadParam if buf is shorter than MaxMessageSize.
func (mb *MessageBuffer) Recv(buf []byte) (int, error) {
	if uint(len(buf)) < mb.maxSize {
		return 0, sys.Fail[RecvError]("rcv_mbf", abi.E_PAR)
	}
	return mb.Ref().UnsafeRecv(buf)
}

func (mb *MessageBuffer) RecvTimeout(buf []byte, tmo itron.Timeout) (int, error) {
	if uint(len(buf)) < mb.maxSize {
		return 0, sys.Fail[RecvTimeoutError]("trcv_mbf", abi.E_PAR)
	}
	return mb.Ref().UnsafeRecvTimeout(buf, tmo)
}

func (mb *MessageBuffer) TryRecv(buf []byte) (int, error) {
	if uint(len(buf)) < mb.maxSize {
		return 0, sys.Fail[TryRecvError]("prcv_mbf", abi.E_PAR)
	}
	return mb.Ref().UnsafeTryRecv(buf)
}

// Builder collects the parameters of a new message buffer.
type Builder struct {
	raw      abi.T_CMBF
	overflow sys.Overflow
}

// Build starts describing a message buffer with a ring buffer of capacity
// bytes, accepting messages of up to maxMessageSize bytes. The kernel
// allocates the ring buffer.
//
// Each buffered message occupies its length rounded up to a multiple of
// four, plus a four byte header.
func Build(capacity, maxMessageSize uint) Builder {
	var b Builder
	b.raw.Mbfsz = uintptr(capacity)
	b.raw.Maxmsz = b.overflow.Uint(maxMessageSize)
	return b
}

func (b Builder) QueueOrder(order itron.QueueOrder) Builder {
	b.raw.Mbfatr = order.Attr()
	return b
}

func (b Builder) Finish() (*MessageBuffer, error) {
	if err := itron.RequireMessageBuffers(); err != nil {
		return nil, err
	}
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}
	if b.overflow.Occurred() {
		return nil, sys.Fail[BuildError]("acre_mbf", abi.E_NOMEM)
	}

	raw := b.raw
	id, err := sys.CheckValue[BuildError]("acre_mbf", sys.Kernel().AcreMbf(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id), uint(raw.Maxmsz)), nil
}
