package abi

import "unsafe"

// Creation packets. Pointer fields are nil to let the kernel allocate the
// backing storage.

type T_CSEM struct {
	Sematr  ATR
	Isemcnt Uint
	Maxsem  Uint
}

type T_CFLG struct {
	Flgatr  ATR
	Iflgptn FLGPTN
}

type T_CDTQ struct {
	Dtqatr ATR
	Dtqcnt Uint
	Dtqmb  unsafe.Pointer
}

type T_CPDQ struct {
	Pdqatr  ATR
	Pdqcnt  Uint
	Maxdpri PRI
	Pdqmb   unsafe.Pointer
}

type T_CMTX struct {
	Mtxatr  ATR
	Ceilpri PRI
}

type T_CMBF struct {
	Mbfatr ATR
	Maxmsz Uint
	Mbfsz  uintptr
	Mbfmb  unsafe.Pointer
}

type T_CMPF struct {
	Mpfatr ATR
	Blkcnt Uint
	Blksz  Uint
	Mpf    unsafe.Pointer
	Mpfmb  unsafe.Pointer
}

type T_CTSK struct {
	Tskatr  ATR
	Exinf   EXINF
	Task    TASK
	Itskpri PRI
	Stksz   uintptr
	Stk     unsafe.Pointer
	// Initial processor and affinity mask. Only multiprocessor kernels
	// read these.
	Iprcid   ID
	Affinity Uint
}

// Reference packets.

type T_RSEM struct {
	Wtskid ID
	Semcnt Uint
}

type T_RFLG struct {
	Wtskid ID
	Flgptn FLGPTN
}

type T_RDTQ struct {
	Stskid  ID
	Rtskid  ID
	Sdtqcnt Uint
}

type T_RPDQ struct {
	Stskid  ID
	Rtskid  ID
	Spdqcnt Uint
}

type T_RMTX struct {
	Htskid ID
	Wtskid ID
}

type T_RMBF struct {
	Stskid  ID
	Rtskid  ID
	Smbfcnt Uint
	Fmbfsz  uintptr
}

type T_RMPF struct {
	Wtskid  ID
	Fblkcnt Uint
}

type T_RTSK struct {
	Tskstat STAT
	Tskpri  PRI
	Tskbpri PRI
	Tskwait STAT
	Wobjid  ID
	Lefttmo TMO
	Actcnt  Uint
	Wupcnt  Uint
	Raster  BOOL
	Dister  BOOL
	// Assigned and next activation processor. Zero on single processor
	// kernels.
	Prcid  ID
	Actprc ID
}
