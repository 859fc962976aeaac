// Package processor identifies the processors of a multiprocessor kernel.
//
// Single processor kernels have exactly one processor, whose ID is 1.
package processor

import (
	"fmt"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/sys"
)

// Processor is a processor ID. The zero value is not a valid processor.
type Processor struct {
	id itron.NonNullID
}

// First is the processor every kernel has.
var First = Processor{itron.MustNonNullID(1)}

// FromRaw returns false if id is zero.
func FromRaw(id itron.ID) (Processor, bool) {
	nid, ok := itron.NewNonNullID(id)
	return Processor{nid}, ok
}

// ID returns the processor ID.
func (p Processor) ID() itron.NonNullID {
	return p.id
}

func (p Processor) String() string {
	return fmt.Sprintf("Processor(%s)", p.id)
}

// Current returns the processor executing the calling task.
func Current() (Processor, error) {
	if !abi.Multiprocessor && !abi.Host {
		return First, nil
	}

	var id abi.ID
	if err := sys.Check[CurrentError]("get_pid", sys.Kernel().GetPid(&id)); err != nil {
		return Processor{}, err
	}
	return Processor{itron.MustNonNullID(id)}, nil
}
