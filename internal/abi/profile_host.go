//go:build !(itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3)

package abi

const (
	KernelName     = "host"
	Host           = true
	Dcre           = true
	RstrTask       = true
	MessageBuf     = true
	PiMutex        = true
	Multiprocessor = false
	Interrupts     = true
)
