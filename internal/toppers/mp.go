//go:build cgo && (itron_fmp3 || itron_solid_fmp3)

package toppers

/*
#include <kernel.h>
*/
import "C"

import "github.com/solid-rs/itron-rs/internal/abi"

func (Kernel) MactTsk(tskid abi.ID, prcid abi.ID) abi.ER {
	return abi.ER(C.mact_tsk(C.ID(tskid), C.ID(prcid)))
}

func (Kernel) GetPid(p *abi.ID) abi.ER {
	var id C.ID
	er := abi.ER(C.get_pid(&id))
	*p = abi.ID(id)
	return er
}

func refTskProcessors(r *C.T_RTSK, pk *abi.T_RTSK) {
	pk.Prcid = abi.ID(r.prcid)
	pk.Actprc = abi.ID(r.actprc)
}

func ctskProcessors(c *C.T_CTSK, pk *abi.T_CTSK) {
	c.iprcid = C.ID(pk.Iprcid)
	c.affinity = C.uint_t(pk.Affinity)
}
