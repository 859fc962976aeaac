//go:build cgo && (itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3) && !(itron_fmp3 || itron_solid_fmp3)

package toppers

/*
#include <kernel.h>
*/
import "C"

import "github.com/solid-rs/itron-rs/internal/abi"

// Single processor kernels have neither mact_tsk nor get_pid.

func (Kernel) MactTsk(tskid abi.ID, prcid abi.ID) abi.ER {
	return abi.E_NOSPT
}

func (Kernel) GetPid(p *abi.ID) abi.ER {
	*p = 1
	return abi.E_OK
}

func refTskProcessors(*C.T_RTSK, *abi.T_RTSK) {}

func ctskProcessors(*C.T_CTSK, *abi.T_CTSK) {}
