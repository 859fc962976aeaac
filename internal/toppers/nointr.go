//go:build cgo && (itron_solid_asp3 || itron_solid_fmp3)

package toppers

import "github.com/solid-rs/itron-rs/internal/abi"

// Interrupts are managed by the host environment of these kernels. The
// typed API checks abi.Interrupts before calling these.

func (Kernel) DisInt(abi.INTNO) abi.ER      { return abi.E_NOSPT }
func (Kernel) EnaInt(abi.INTNO) abi.ER      { return abi.E_NOSPT }
func (Kernel) ClrInt(abi.INTNO) abi.ER      { return abi.E_NOSPT }
func (Kernel) RasInt(abi.INTNO) abi.ER      { return abi.E_NOSPT }
func (Kernel) PrbInt(abi.INTNO) abi.ER_BOOL { return abi.E_NOSPT }
func (Kernel) ChgIpm(abi.PRI) abi.ER        { return abi.E_NOSPT }
func (Kernel) GetIpm(*abi.PRI) abi.ER       { return abi.E_NOSPT }
