// Package abi mirrors the service call interface of TOPPERS third
// generation kernels.
//
// The declarations follow <kernel.h>. Nothing in this package interprets
// results: see the root package for the typed API.
package abi

// Natural size integers of the kernel ABI.
type (
	Int  = int32
	Uint = uint32
)

// Boolean as returned by the sense functions.
type BOOL = Int

const (
	TRUE  BOOL = 1
	FALSE BOOL = 0
)

type (
	// ER is an error code. Negative values are errors.
	ER = Int
	// ER_ID is an ID number or an error code.
	ER_ID = Int
	// ER_UINT is an unsigned count or an error code.
	ER_UINT = Int
	// ER_BOOL is a boolean or an error code.
	ER_BOOL = Int

	// ID is an object ID number.
	ID = Int
	// ATR is an object attribute.
	ATR = Uint
	// STAT is an object state.
	STAT = Uint
	// MODE is a service call operation mode.
	MODE = Uint
	// PRI is a priority. Smaller values denote higher priority.
	PRI = Int
	// TMO is a timeout in microseconds.
	TMO = uint32
	// RELTIM is a relative time in microseconds.
	RELTIM = uint32
	// SYSTIM is the system time in microseconds.
	SYSTIM = uint64
	// HRTCNT is a high resolution timer count.
	HRTCNT = uint64
	// FLGPTN is an eventflag bit pattern.
	FLGPTN = Uint
	// EXINF is the extended information passed to a task.
	EXINF = uintptr
	// DataElement is the unit transferred by (priority) data queues.
	DataElement = uintptr
	// INTNO is an interrupt number.
	INTNO = Uint
)

// TASK is the entry point of a task.
type TASK = func(exinf EXINF)

const (
	// TSK_SELF refers to the invoking task.
	TSK_SELF ID = 0
	// TSK_NONE means "no task".
	TSK_NONE ID = 0
	// TPRI_SELF refers to the base priority of the invoking task.
	TPRI_SELF PRI = 0
	// TPRI_INI refers to the initial priority of the task.
	TPRI_INI PRI = 0
	// TPRC_NONE means "no processor".
	TPRC_NONE ID = 0
	// TPRC_INI refers to the initial processor of the task.
	TPRC_INI ID = 0
)

const (
	TA_NULL ATR = 0

	// TA_TPRI selects task priority order for a wait queue.
	TA_TPRI ATR = 0x01
	// TA_WMUL allows multiple waiters on an eventflag.
	TA_WMUL ATR = 0x02
	// TA_CLR clears an eventflag when a waiter is released.
	TA_CLR ATR = 0x04
	// TA_CEILING selects the priority ceiling protocol for a mutex.
	TA_CEILING ATR = 0x03
	// TA_INHERIT selects the priority inheritance protocol for a mutex.
	TA_INHERIT ATR = 0x02

	// TA_ACT activates a task on creation.
	TA_ACT ATR = 0x01
	// TA_NOACTQUE disables queueing of activation requests.
	TA_NOACTQUE ATR = 0x02
)

const (
	TWF_ORW  MODE = 0x01
	TWF_ANDW MODE = 0x02
)

// Task states.
const (
	TTS_RUN STAT = 0x01
	TTS_RDY STAT = 0x02
	TTS_WAI STAT = 0x04
	TTS_SUS STAT = 0x08
	TTS_WAS STAT = 0x0c
	TTS_DMT STAT = 0x10
)

// Wait causes reported by T_RTSK.Tskwait.
const (
	TTW_SLP  STAT = 0x0001
	TTW_DLY  STAT = 0x0002
	TTW_SEM  STAT = 0x0004
	TTW_FLG  STAT = 0x0008
	TTW_SDTQ STAT = 0x0010
	TTW_RDTQ STAT = 0x0020
	TTW_SMBF STAT = 0x0040
	TTW_RMBF STAT = 0x0080
	TTW_SPDQ STAT = 0x0100
	TTW_RPDQ STAT = 0x0200
	TTW_MTX  STAT = 0x0800
	TTW_MPF  STAT = 0x2000
)

const (
	// TMO_POL polls instead of waiting.
	TMO_POL TMO = 0
	// TMO_FEVR waits forever.
	TMO_FEVR TMO = ^TMO(0)
	// TMO_NBLK requests a non-blocking call.
	TMO_NBLK TMO = TMO_FEVR - 1
	// TMAX_RELTIM is the largest relative time the kernel accepts.
	TMAX_RELTIM = 4_000_000_000
)

// TIPM_ENAALL is the interrupt priority mask which masks nothing.
// Interrupt priorities are negative.
const TIPM_ENAALL PRI = 0

// Kernel limits shared by every supported kernel.
const (
	TMIN_TPRI   PRI  = 1
	TMAX_TPRI   PRI  = 16
	TMIN_DPRI   PRI  = 1
	TMAX_DPRI   PRI  = 16
	TMAX_ACTCNT Uint = 1
	TMAX_WUPCNT Uint = 1
	TMAX_MAXSEM Uint = ^Uint(0) >> 1
)
