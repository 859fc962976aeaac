//go:build cgo && itron_messagebuf && (itron_asp3 || itron_solid_asp3) && !itron_dcre

package toppers

import "github.com/solid-rs/itron-rs/internal/abi"

func (Kernel) AcreMbf(*abi.T_CMBF) abi.ER_ID { return abi.E_NOSPT }
func (Kernel) DelMbf(abi.ID) abi.ER          { return abi.E_NOSPT }
