//go:build itron_solid_asp3

package abi

const (
	KernelName     = "solid_asp3"
	Host           = false
	Dcre           = featureDcre
	RstrTask       = featureRstrTask
	MessageBuf     = featureMessageBuf
	PiMutex        = featurePiMutex
	Multiprocessor = false
	Interrupts     = false
)
