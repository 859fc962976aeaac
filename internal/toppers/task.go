//go:build cgo && (itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3)

package toppers

/*
#include <kernel.h>
*/
import "C"

import "github.com/solid-rs/itron-rs/internal/abi"

func (Kernel) ActTsk(tskid abi.ID) abi.ER      { return abi.ER(C.act_tsk(C.ID(tskid))) }
func (Kernel) CanAct(tskid abi.ID) abi.ER_UINT { return abi.ER_UINT(C.can_act(C.ID(tskid))) }

func (Kernel) GetTst(tskid abi.ID, p *abi.STAT) abi.ER {
	var stat C.STAT
	er := abi.ER(C.get_tst(C.ID(tskid), &stat))
	*p = abi.STAT(stat)
	return er
}

func (Kernel) ChgPri(tskid abi.ID, tskpri abi.PRI) abi.ER {
	return abi.ER(C.chg_pri(C.ID(tskid), C.PRI(tskpri)))
}

func (Kernel) GetPri(tskid abi.ID, p *abi.PRI) abi.ER {
	var pri C.PRI
	er := abi.ER(C.get_pri(C.ID(tskid), &pri))
	*p = abi.PRI(pri)
	return er
}

// GetInf returns the extended information as seen by the kernel. For tasks
// created through AcreTsk this is the entry handle, not the value passed
// to the Go entry point.
func (Kernel) GetInf(p *abi.EXINF) abi.ER {
	var exinf C.EXINF
	er := abi.ER(C.get_inf(&exinf))
	*p = abi.EXINF(exinf)
	return er
}

func (Kernel) RefTsk(tskid abi.ID, pk *abi.T_RTSK) abi.ER {
	var r C.T_RTSK
	er := abi.ER(C.ref_tsk(C.ID(tskid), &r))
	*pk = abi.T_RTSK{
		Tskstat: abi.STAT(r.tskstat),
		Tskpri:  abi.PRI(r.tskpri),
		Tskbpri: abi.PRI(r.tskbpri),
		Tskwait: abi.STAT(r.tskwait),
		Wobjid:  abi.ID(r.wobjid),
		Lefttmo: abi.TMO(r.lefttmo),
		Actcnt:  abi.Uint(r.actcnt),
		Wupcnt:  abi.Uint(r.wupcnt),
		Raster:  abi.BOOL(r.raster),
		Dister:  abi.BOOL(r.dister),
	}
	refTskProcessors(&r, pk)
	return er
}

func (Kernel) SlpTsk() abi.ER                  { return abi.ER(C.slp_tsk()) }
func (Kernel) TslpTsk(tmout abi.TMO) abi.ER    { return abi.ER(C.tslp_tsk(C.TMO(tmout))) }
func (Kernel) WupTsk(tskid abi.ID) abi.ER      { return abi.ER(C.wup_tsk(C.ID(tskid))) }
func (Kernel) CanWup(tskid abi.ID) abi.ER_UINT { return abi.ER_UINT(C.can_wup(C.ID(tskid))) }
func (Kernel) RelWai(tskid abi.ID) abi.ER      { return abi.ER(C.rel_wai(C.ID(tskid))) }
func (Kernel) SusTsk(tskid abi.ID) abi.ER      { return abi.ER(C.sus_tsk(C.ID(tskid))) }
func (Kernel) RsmTsk(tskid abi.ID) abi.ER      { return abi.ER(C.rsm_tsk(C.ID(tskid))) }
func (Kernel) DlyTsk(dlytim abi.RELTIM) abi.ER { return abi.ER(C.dly_tsk(C.RELTIM(dlytim))) }
func (Kernel) ExtTsk() abi.ER                  { return abi.ER(C.ext_tsk()) }
func (Kernel) RasTer(tskid abi.ID) abi.ER      { return abi.ER(C.ras_ter(C.ID(tskid))) }
func (Kernel) DisTer() abi.ER                  { return abi.ER(C.dis_ter()) }
func (Kernel) EnaTer() abi.ER                  { return abi.ER(C.ena_ter()) }
func (Kernel) SnsTer() abi.BOOL                { return abi.BOOL(C.sns_ter()) }
func (Kernel) TerTsk(tskid abi.ID) abi.ER      { return abi.ER(C.ter_tsk(C.ID(tskid))) }
