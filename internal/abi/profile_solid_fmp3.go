//go:build itron_solid_fmp3

package abi

const (
	KernelName     = "solid_fmp3"
	Host           = false
	Dcre           = featureDcre
	RstrTask       = featureRstrTask
	MessageBuf     = false
	PiMutex        = false
	Multiprocessor = true
	Interrupts     = false
)
