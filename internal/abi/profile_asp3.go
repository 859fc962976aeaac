//go:build itron_asp3

package abi

const (
	KernelName     = "asp3"
	Host           = false
	Dcre           = featureDcre
	RstrTask       = false
	MessageBuf     = featureMessageBuf
	PiMutex        = false
	Multiprocessor = false
	Interrupts     = true
)
