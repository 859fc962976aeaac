//go:build cgo && (itron_asp3 || itron_fmp3)

package toppers

/*
#include <kernel.h>
*/
import "C"

import "github.com/solid-rs/itron-rs/internal/abi"

func (Kernel) DisInt(intno abi.INTNO) abi.ER { return abi.ER(C.dis_int(C.INTNO(intno))) }
func (Kernel) EnaInt(intno abi.INTNO) abi.ER { return abi.ER(C.ena_int(C.INTNO(intno))) }
func (Kernel) ClrInt(intno abi.INTNO) abi.ER { return abi.ER(C.clr_int(C.INTNO(intno))) }
func (Kernel) RasInt(intno abi.INTNO) abi.ER { return abi.ER(C.ras_int(C.INTNO(intno))) }

func (Kernel) PrbInt(intno abi.INTNO) abi.ER_BOOL {
	return abi.ER_BOOL(C.prb_int(C.INTNO(intno)))
}

func (Kernel) ChgIpm(intpri abi.PRI) abi.ER { return abi.ER(C.chg_ipm(C.PRI(intpri))) }

func (Kernel) GetIpm(p *abi.PRI) abi.ER {
	var pri C.PRI
	er := abi.ER(C.get_ipm(&pri))
	*p = abi.PRI(pri)
	return er
}
