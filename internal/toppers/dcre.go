//go:build cgo && itron_dcre && (itron_asp3 || itron_solid_asp3 || itron_solid_fmp3)

package toppers

/*
#include <kernel.h>
*/
import "C"

import "github.com/solid-rs/itron-rs/internal/abi"

func (Kernel) AcreSem(pk *abi.T_CSEM) abi.ER_ID {
	c := C.T_CSEM{
		sematr:  C.ATR(pk.Sematr),
		isemcnt: C.uint_t(pk.Isemcnt),
		maxsem:  C.uint_t(pk.Maxsem),
	}
	return abi.ER_ID(C.acre_sem(&c))
}

func (Kernel) DelSem(semid abi.ID) abi.ER { return abi.ER(C.del_sem(C.ID(semid))) }

func (Kernel) AcreFlg(pk *abi.T_CFLG) abi.ER_ID {
	c := C.T_CFLG{flgatr: C.ATR(pk.Flgatr), iflgptn: C.FLGPTN(pk.Iflgptn)}
	return abi.ER_ID(C.acre_flg(&c))
}

func (Kernel) DelFlg(flgid abi.ID) abi.ER { return abi.ER(C.del_flg(C.ID(flgid))) }

func (Kernel) AcreDtq(pk *abi.T_CDTQ) abi.ER_ID {
	c := C.T_CDTQ{
		dtqatr: C.ATR(pk.Dtqatr),
		dtqcnt: C.uint_t(pk.Dtqcnt),
		dtqmb:  pk.Dtqmb,
	}
	return abi.ER_ID(C.acre_dtq(&c))
}

func (Kernel) DelDtq(dtqid abi.ID) abi.ER { return abi.ER(C.del_dtq(C.ID(dtqid))) }

func (Kernel) AcrePdq(pk *abi.T_CPDQ) abi.ER_ID {
	c := C.T_CPDQ{
		pdqatr:  C.ATR(pk.Pdqatr),
		pdqcnt:  C.uint_t(pk.Pdqcnt),
		maxdpri: C.PRI(pk.Maxdpri),
		pdqmb:   pk.Pdqmb,
	}
	return abi.ER_ID(C.acre_pdq(&c))
}

func (Kernel) DelPdq(pdqid abi.ID) abi.ER { return abi.ER(C.del_pdq(C.ID(pdqid))) }

func (Kernel) AcreMtx(pk *abi.T_CMTX) abi.ER_ID {
	c := C.T_CMTX{mtxatr: C.ATR(pk.Mtxatr), ceilpri: C.PRI(pk.Ceilpri)}
	return abi.ER_ID(C.acre_mtx(&c))
}

func (Kernel) DelMtx(mtxid abi.ID) abi.ER { return abi.ER(C.del_mtx(C.ID(mtxid))) }

func (Kernel) AcreMpf(pk *abi.T_CMPF) abi.ER_ID {
	c := C.T_CMPF{
		mpfatr: C.ATR(pk.Mpfatr),
		blkcnt: C.uint_t(pk.Blkcnt),
		blksz:  C.uint_t(pk.Blksz),
		mpf:    (*C.MPF_T)(pk.Mpf),
		mpfmb:  pk.Mpfmb,
	}
	return abi.ER_ID(C.acre_mpf(&c))
}

func (Kernel) DelMpf(mpfid abi.ID) abi.ER { return abi.ER(C.del_mpf(C.ID(mpfid))) }
