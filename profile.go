package itron

import "github.com/solid-rs/itron-rs/internal/abi"

// KernelName is the kernel selected at build time: "asp3", "fmp3",
// "solid_asp3", "solid_fmp3" or "host" for the in-process kernel.
const KernelName = abi.KernelName

// Kernel features of the selected kernel.
const (
	DynamicCreation = abi.Dcre
	RestrictedTasks = abi.RstrTask
	MessageBuffers  = abi.MessageBuf
	PriorityInherit = abi.PiMutex
	Multiprocessor  = abi.Multiprocessor
	HostKernel      = abi.Host
	Interrupts      = abi.Interrupts
)
