//go:build !(itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3)

package sys

import (
	"fmt"
	"os"
	"sync"

	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/hostkernel"
)

// HostConfigEnvVar names a YAML file describing the statically created
// objects of the host kernel.
const HostConfigEnvVar = "ITRON_HOST_CONFIG"

var defaultKernel = sync.OnceValue(func() abi.Kernel {
	var opts hostkernel.Options
	if path := os.Getenv(HostConfigEnvVar); path != "" {
		cfg, err := hostkernel.LoadConfigFile(path)
		if err != nil {
			panic(fmt.Sprintf("itron: %s: %v", HostConfigEnvVar, err))
		}
		opts.Config = cfg
	}

	k, err := hostkernel.New(opts)
	if err != nil {
		panic(fmt.Sprintf("itron: start host kernel: %v", err))
	}
	return k
})
