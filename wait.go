package itron

import "github.com/solid-rs/itron-rs/internal/abi"

// QueueOrder specifies the order in which tasks waiting on an object are
// released.
type QueueOrder uint8

const (
	// FIFO releases waiters in arrival order.
	FIFO QueueOrder = iota
	// TaskPriority releases waiters in task priority order, FIFO among
	// tasks of equal priority.
	TaskPriority
)

// Attr returns the object attribute selecting the order.
func (o QueueOrder) Attr() abi.ATR {
	if o == TaskPriority {
		return abi.TA_TPRI
	}
	return abi.TA_NULL
}

func (o QueueOrder) String() string {
	if o == TaskPriority {
		return "task priority"
	}
	return "FIFO"
}
