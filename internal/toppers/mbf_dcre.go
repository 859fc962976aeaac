//go:build cgo && itron_messagebuf && (itron_asp3 || itron_solid_asp3) && itron_dcre

package toppers

/*
#include <kernel.h>
*/
import "C"

import "github.com/solid-rs/itron-rs/internal/abi"

func (Kernel) AcreMbf(pk *abi.T_CMBF) abi.ER_ID {
	c := C.T_CMBF{
		mbfatr: C.ATR(pk.Mbfatr),
		maxmsz: C.uint_t(pk.Maxmsz),
		mbfsz:  C.size_t(pk.Mbfsz),
		mbfmb:  pk.Mbfmb,
	}
	return abi.ER_ID(C.acre_mbf(&c))
}

func (Kernel) DelMbf(mbfid abi.ID) abi.ER { return abi.ER(C.del_mbf(C.ID(mbfid))) }
