//go:build itron_fmp3

package abi

const (
	KernelName     = "fmp3"
	Host           = false
	Dcre           = false
	RstrTask       = false
	MessageBuf     = false
	PiMutex        = false
	Multiprocessor = true
	Interrupts     = true
)
