//go:build cgo && (itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3)

package sys

import (
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/toppers"
)

func defaultKernel() abi.Kernel {
	return toppers.Kernel{}
}
