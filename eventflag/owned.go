package eventflag

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Eventflag is an owned eventflag, deleted by Close or by the garbage
// collector unless leaked.
type Eventflag struct {
	obj *sys.Object
}

// UnsafeOwn takes ownership of an existing eventflag.
func UnsafeOwn(id itron.NonNullID) *Eventflag {
	k := sys.Kernel()
	return &Eventflag{sys.NewObject("Eventflag", id.Get(), func(id abi.ID) error {
		return deleteEventflag(k, id)
	})}
}

func (f *Eventflag) Ref() Ref {
	return Ref{itron.MustNonNullID(f.obj.MustID())}
}

func (f *Eventflag) String() string {
	return f.obj.String()
}

func (f *Eventflag) Close() error {
	return f.obj.Close()
}

func (f *Eventflag) Leak() Ref {
	return Ref{itron.MustNonNullID(f.obj.Disown())}
}

// Builder collects the parameters of a new eventflag.
//
// Created eventflags accept any number of waiting tasks.
type Builder struct {
	raw abi.T_CFLG
}

// Build starts describing an eventflag with no bits set.
func Build() Builder {
	return Builder{raw: abi.T_CFLG{Flgatr: abi.TA_WMUL}}
}

func (b Builder) InitialPattern(bits Bits) Builder {
	b.raw.Iflgptn = abi.FLGPTN(bits)
	return b
}

func (b Builder) QueueOrder(order itron.QueueOrder) Builder {
	b.raw.Flgatr = b.raw.Flgatr&^abi.TA_TPRI | order.Attr()
	return b
}

// ClearOnWake clears every bit whenever a waiting task is released.
func (b Builder) ClearOnWake(clear bool) Builder {
	if clear {
		b.raw.Flgatr |= abi.TA_CLR
	} else {
		b.raw.Flgatr &^= abi.TA_CLR
	}
	return b
}

// Finish creates the eventflag.
func (b Builder) Finish() (*Eventflag, error) {
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}

	raw := b.raw
	id, err := sys.CheckValue[BuildError]("acre_flg", sys.Kernel().AcreFlg(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id)), nil
}
