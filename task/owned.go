package task

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
	"github.com/solid-rs/itron-rs/processor"
)

// Task is an owned task.
//
// Only dormant tasks can be deleted: Close fails with DeleteBadState while
// the task is active, and the finalizer panics.
type Task struct {
	obj *sys.Object
}

// UnsafeOwn takes ownership of an existing task.
func UnsafeOwn(id itron.NonNullID) *Task {
	k := sys.Kernel()
	return &Task{sys.NewObject("Task", id.Get(), func(id abi.ID) error {
		return deleteTask(k, id)
	})}
}

func (t *Task) Ref() Ref {
	return Ref{itron.MustNonNullID(t.obj.MustID())}
}

func (t *Task) String() string {
	return t.obj.String()
}

func (t *Task) Close() error {
	return t.obj.Close()
}

func (t *Task) Leak() Ref {
	return Ref{itron.MustNonNullID(t.obj.Disown())}
}

// Builder collects the parameters of a new task.
type Builder struct {
	raw          abi.T_CTSK
	processorSet bool
	badAffinity  bool
}

// Build starts describing a task running entry on a stack of stackSize
// bytes, with the given initial priority.
//
// The task is created dormant unless ActivateOnCreate is set. Returning
// from entry makes the task dormant again.
func Build(entry func(), stackSize uint, priority Priority) Builder {
	return Builder{raw: abi.T_CTSK{
		Task:    func(abi.EXINF) { entry() },
		Stksz:   uintptr(stackSize),
		Itskpri: priority,
	}}
}

// ActivateOnCreate activates the task as soon as it is created.
func (b Builder) ActivateOnCreate(activate bool) Builder {
	if activate {
		b.raw.Tskatr |= abi.TA_ACT
	} else {
		b.raw.Tskatr &^= abi.TA_ACT
	}
	return b
}

// InitialProcessor assigns the task to p. It defaults to the processor
// executing Finish.
func (b Builder) InitialProcessor(p processor.Processor) Builder {
	b.raw.Iprcid = p.ID().Get()
	b.processorSet = true
	return b
}

// Affinity restricts the processors the task may run on. It defaults to
// every processor.
func (b Builder) Affinity(procs ...processor.Processor) Builder {
	var mask abi.Uint
	for _, p := range procs {
		id := p.ID().Get()
		if id < 1 || id > 32 {
			b.badAffinity = true
			continue
		}
		mask |= 1 << (id - 1)
	}
	b.raw.Affinity = mask
	return b
}

// Finish creates the task.
//
// Processor IDs that can't be part of an affinity mask fail with
// BuildBadParam before the kernel is called.
func (b Builder) Finish() (*Task, error) {
	if err := itron.RequireDynamicCreation(); err != nil {
		return nil, err
	}
	if b.badAffinity {
		return nil, sys.Fail[BuildError]("acre_tsk", abi.E_PAR)
	}

	raw := b.raw
	if abi.Multiprocessor && !b.processorSet {
		if err := sys.Check[BuildError]("get_pid", sys.Kernel().GetPid(&raw.Iprcid)); err != nil {
			return nil, err
		}
	}

	id, err := sys.CheckValue[BuildError]("acre_tsk", sys.Kernel().AcreTsk(&raw))
	if err != nil {
		return nil, err
	}
	return UnsafeOwn(itron.MustNonNullID(id)), nil
}
