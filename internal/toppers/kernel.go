//go:build cgo && (itron_asp3 || itron_fmp3 || itron_solid_asp3 || itron_solid_fmp3)

package toppers

/*
#include <kernel.h>
*/
import "C"

import (
	"unsafe"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// Kernel implements abi.Kernel by calling the kernel directly.
type Kernel struct{}

var _ abi.Kernel = Kernel{}

func (Kernel) SigSem(semid abi.ID) abi.ER { return abi.ER(C.sig_sem(C.ID(semid))) }
func (Kernel) WaiSem(semid abi.ID) abi.ER { return abi.ER(C.wai_sem(C.ID(semid))) }
func (Kernel) PolSem(semid abi.ID) abi.ER { return abi.ER(C.pol_sem(C.ID(semid))) }
func (Kernel) IniSem(semid abi.ID) abi.ER { return abi.ER(C.ini_sem(C.ID(semid))) }

func (Kernel) TwaiSem(semid abi.ID, tmout abi.TMO) abi.ER {
	return abi.ER(C.twai_sem(C.ID(semid), C.TMO(tmout)))
}

func (Kernel) RefSem(semid abi.ID, pk *abi.T_RSEM) abi.ER {
	var r C.T_RSEM
	er := abi.ER(C.ref_sem(C.ID(semid), &r))
	*pk = abi.T_RSEM{Wtskid: abi.ID(r.wtskid), Semcnt: abi.Uint(r.semcnt)}
	return er
}

func (Kernel) SetFlg(flgid abi.ID, setptn abi.FLGPTN) abi.ER {
	return abi.ER(C.set_flg(C.ID(flgid), C.FLGPTN(setptn)))
}

func (Kernel) ClrFlg(flgid abi.ID, clrptn abi.FLGPTN) abi.ER {
	return abi.ER(C.clr_flg(C.ID(flgid), C.FLGPTN(clrptn)))
}

func (Kernel) WaiFlg(flgid abi.ID, waiptn abi.FLGPTN, wfmode abi.MODE, p *abi.FLGPTN) abi.ER {
	var ptn C.FLGPTN
	er := abi.ER(C.wai_flg(C.ID(flgid), C.FLGPTN(waiptn), C.MODE(wfmode), &ptn))
	*p = abi.FLGPTN(ptn)
	return er
}

func (Kernel) PolFlg(flgid abi.ID, waiptn abi.FLGPTN, wfmode abi.MODE, p *abi.FLGPTN) abi.ER {
	var ptn C.FLGPTN
	er := abi.ER(C.pol_flg(C.ID(flgid), C.FLGPTN(waiptn), C.MODE(wfmode), &ptn))
	*p = abi.FLGPTN(ptn)
	return er
}

func (Kernel) TwaiFlg(flgid abi.ID, waiptn abi.FLGPTN, wfmode abi.MODE, p *abi.FLGPTN, tmout abi.TMO) abi.ER {
	var ptn C.FLGPTN
	er := abi.ER(C.twai_flg(C.ID(flgid), C.FLGPTN(waiptn), C.MODE(wfmode), &ptn, C.TMO(tmout)))
	*p = abi.FLGPTN(ptn)
	return er
}

func (Kernel) IniFlg(flgid abi.ID) abi.ER { return abi.ER(C.ini_flg(C.ID(flgid))) }

func (Kernel) RefFlg(flgid abi.ID, pk *abi.T_RFLG) abi.ER {
	var r C.T_RFLG
	er := abi.ER(C.ref_flg(C.ID(flgid), &r))
	*pk = abi.T_RFLG{Wtskid: abi.ID(r.wtskid), Flgptn: abi.FLGPTN(r.flgptn)}
	return er
}

func (Kernel) SndDtq(dtqid abi.ID, data abi.DataElement) abi.ER {
	return abi.ER(C.snd_dtq(C.ID(dtqid), C.intptr_t(data)))
}

func (Kernel) PsndDtq(dtqid abi.ID, data abi.DataElement) abi.ER {
	return abi.ER(C.psnd_dtq(C.ID(dtqid), C.intptr_t(data)))
}

func (Kernel) TsndDtq(dtqid abi.ID, data abi.DataElement, tmout abi.TMO) abi.ER {
	return abi.ER(C.tsnd_dtq(C.ID(dtqid), C.intptr_t(data), C.TMO(tmout)))
}

func (Kernel) FsndDtq(dtqid abi.ID, data abi.DataElement) abi.ER {
	return abi.ER(C.fsnd_dtq(C.ID(dtqid), C.intptr_t(data)))
}

func (Kernel) RcvDtq(dtqid abi.ID, p *abi.DataElement) abi.ER {
	var data C.intptr_t
	er := abi.ER(C.rcv_dtq(C.ID(dtqid), &data))
	*p = abi.DataElement(data)
	return er
}

func (Kernel) PrcvDtq(dtqid abi.ID, p *abi.DataElement) abi.ER {
	var data C.intptr_t
	er := abi.ER(C.prcv_dtq(C.ID(dtqid), &data))
	*p = abi.DataElement(data)
	return er
}

func (Kernel) TrcvDtq(dtqid abi.ID, p *abi.DataElement, tmout abi.TMO) abi.ER {
	var data C.intptr_t
	er := abi.ER(C.trcv_dtq(C.ID(dtqid), &data, C.TMO(tmout)))
	*p = abi.DataElement(data)
	return er
}

func (Kernel) IniDtq(dtqid abi.ID) abi.ER { return abi.ER(C.ini_dtq(C.ID(dtqid))) }

func (Kernel) RefDtq(dtqid abi.ID, pk *abi.T_RDTQ) abi.ER {
	var r C.T_RDTQ
	er := abi.ER(C.ref_dtq(C.ID(dtqid), &r))
	*pk = abi.T_RDTQ{
		Stskid:  abi.ID(r.stskid),
		Rtskid:  abi.ID(r.rtskid),
		Sdtqcnt: abi.Uint(r.sdtqcnt),
	}
	return er
}

func (Kernel) SndPdq(pdqid abi.ID, data abi.DataElement, datapri abi.PRI) abi.ER {
	return abi.ER(C.snd_pdq(C.ID(pdqid), C.intptr_t(data), C.PRI(datapri)))
}

func (Kernel) PsndPdq(pdqid abi.ID, data abi.DataElement, datapri abi.PRI) abi.ER {
	return abi.ER(C.psnd_pdq(C.ID(pdqid), C.intptr_t(data), C.PRI(datapri)))
}

func (Kernel) TsndPdq(pdqid abi.ID, data abi.DataElement, datapri abi.PRI, tmout abi.TMO) abi.ER {
	return abi.ER(C.tsnd_pdq(C.ID(pdqid), C.intptr_t(data), C.PRI(datapri), C.TMO(tmout)))
}

func (Kernel) RcvPdq(pdqid abi.ID, p *abi.DataElement, pri *abi.PRI) abi.ER {
	var (
		data    C.intptr_t
		datapri C.PRI
	)
	er := abi.ER(C.rcv_pdq(C.ID(pdqid), &data, &datapri))
	*p, *pri = abi.DataElement(data), abi.PRI(datapri)
	return er
}

func (Kernel) PrcvPdq(pdqid abi.ID, p *abi.DataElement, pri *abi.PRI) abi.ER {
	var (
		data    C.intptr_t
		datapri C.PRI
	)
	er := abi.ER(C.prcv_pdq(C.ID(pdqid), &data, &datapri))
	*p, *pri = abi.DataElement(data), abi.PRI(datapri)
	return er
}

func (Kernel) TrcvPdq(pdqid abi.ID, p *abi.DataElement, pri *abi.PRI, tmout abi.TMO) abi.ER {
	var (
		data    C.intptr_t
		datapri C.PRI
	)
	er := abi.ER(C.trcv_pdq(C.ID(pdqid), &data, &datapri, C.TMO(tmout)))
	*p, *pri = abi.DataElement(data), abi.PRI(datapri)
	return er
}

func (Kernel) IniPdq(pdqid abi.ID) abi.ER { return abi.ER(C.ini_pdq(C.ID(pdqid))) }

func (Kernel) RefPdq(pdqid abi.ID, pk *abi.T_RPDQ) abi.ER {
	var r C.T_RPDQ
	er := abi.ER(C.ref_pdq(C.ID(pdqid), &r))
	*pk = abi.T_RPDQ{
		Stskid:  abi.ID(r.stskid),
		Rtskid:  abi.ID(r.rtskid),
		Spdqcnt: abi.Uint(r.spdqcnt),
	}
	return er
}

func (Kernel) LocMtx(mtxid abi.ID) abi.ER  { return abi.ER(C.loc_mtx(C.ID(mtxid))) }
func (Kernel) PlocMtx(mtxid abi.ID) abi.ER { return abi.ER(C.ploc_mtx(C.ID(mtxid))) }
func (Kernel) UnlMtx(mtxid abi.ID) abi.ER  { return abi.ER(C.unl_mtx(C.ID(mtxid))) }
func (Kernel) IniMtx(mtxid abi.ID) abi.ER  { return abi.ER(C.ini_mtx(C.ID(mtxid))) }

func (Kernel) TlocMtx(mtxid abi.ID, tmout abi.TMO) abi.ER {
	return abi.ER(C.tloc_mtx(C.ID(mtxid), C.TMO(tmout)))
}

func (Kernel) RefMtx(mtxid abi.ID, pk *abi.T_RMTX) abi.ER {
	var r C.T_RMTX
	er := abi.ER(C.ref_mtx(C.ID(mtxid), &r))
	*pk = abi.T_RMTX{Htskid: abi.ID(r.htskid), Wtskid: abi.ID(r.wtskid)}
	return er
}

// The block pointers returned by the memory pool calls point to kernel
// managed memory, never to the Go heap.

func (Kernel) GetMpf(mpfid abi.ID, p *unsafe.Pointer) abi.ER {
	return abi.ER(C.get_mpf(C.ID(mpfid), p))
}

func (Kernel) PgetMpf(mpfid abi.ID, p *unsafe.Pointer) abi.ER {
	return abi.ER(C.pget_mpf(C.ID(mpfid), p))
}

func (Kernel) TgetMpf(mpfid abi.ID, p *unsafe.Pointer, tmout abi.TMO) abi.ER {
	return abi.ER(C.tget_mpf(C.ID(mpfid), p, C.TMO(tmout)))
}

func (Kernel) RelMpf(mpfid abi.ID, blk unsafe.Pointer) abi.ER {
	return abi.ER(C.rel_mpf(C.ID(mpfid), blk))
}

func (Kernel) IniMpf(mpfid abi.ID) abi.ER { return abi.ER(C.ini_mpf(C.ID(mpfid))) }

func (Kernel) RefMpf(mpfid abi.ID, pk *abi.T_RMPF) abi.ER {
	var r C.T_RMPF
	er := abi.ER(C.ref_mpf(C.ID(mpfid), &r))
	*pk = abi.T_RMPF{Wtskid: abi.ID(r.wtskid), Fblkcnt: abi.Uint(r.fblkcnt)}
	return er
}

func (Kernel) RotRdq(tskpri abi.PRI) abi.ER { return abi.ER(C.rot_rdq(C.PRI(tskpri))) }

func (Kernel) GetTid(p *abi.ID) abi.ER {
	var id C.ID
	er := abi.ER(C.get_tid(&id))
	*p = abi.ID(id)
	return er
}

func (Kernel) LocCpu() abi.ER { return abi.ER(C.loc_cpu()) }
func (Kernel) UnlCpu() abi.ER { return abi.ER(C.unl_cpu()) }
func (Kernel) DisDsp() abi.ER { return abi.ER(C.dis_dsp()) }
func (Kernel) EnaDsp() abi.ER { return abi.ER(C.ena_dsp()) }

func (Kernel) SnsCtx() abi.BOOL { return abi.BOOL(C.sns_ctx()) }
func (Kernel) SnsLoc() abi.BOOL { return abi.BOOL(C.sns_loc()) }
func (Kernel) SnsDsp() abi.BOOL { return abi.BOOL(C.sns_dsp()) }
func (Kernel) SnsDpn() abi.BOOL { return abi.BOOL(C.sns_dpn()) }
func (Kernel) SnsKer() abi.BOOL { return abi.BOOL(C.sns_ker()) }

func (Kernel) ExtKer() abi.ER { return abi.ER(C.ext_ker()) }

func (Kernel) SetTim(systim abi.SYSTIM) abi.ER { return abi.ER(C.set_tim(C.SYSTIM(systim))) }

func (Kernel) GetTim(p *abi.SYSTIM) abi.ER {
	var systim C.SYSTIM
	er := abi.ER(C.get_tim(&systim))
	*p = abi.SYSTIM(systim)
	return er
}

func (Kernel) AdjTim(adjtim int32) abi.ER { return abi.ER(C.adj_tim(C.int32_t(adjtim))) }

func (Kernel) FchHrt() abi.HRTCNT { return abi.HRTCNT(C.fch_hrt()) }
