package abi

import "unsafe"

// Kernel is the complete service call surface.
//
// Implementations return raw results; callers in this module issue exactly
// one method call per typed operation.
type Kernel interface {
	SemaphoreCalls
	EventflagCalls
	DataqueueCalls
	PriorityDataqueueCalls
	MutexCalls
	MessageBufferCalls
	MemoryPoolCalls
	TaskCalls
	SystemCalls
	TimeCalls
	InterruptCalls
}

type SemaphoreCalls interface {
	SigSem(semid ID) ER
	WaiSem(semid ID) ER
	PolSem(semid ID) ER
	TwaiSem(semid ID, tmout TMO) ER
	IniSem(semid ID) ER
	RefSem(semid ID, pk *T_RSEM) ER
	AcreSem(pk *T_CSEM) ER_ID
	DelSem(semid ID) ER
}

type EventflagCalls interface {
	SetFlg(flgid ID, setptn FLGPTN) ER
	ClrFlg(flgid ID, clrptn FLGPTN) ER
	WaiFlg(flgid ID, waiptn FLGPTN, wfmode MODE, p *FLGPTN) ER
	PolFlg(flgid ID, waiptn FLGPTN, wfmode MODE, p *FLGPTN) ER
	TwaiFlg(flgid ID, waiptn FLGPTN, wfmode MODE, p *FLGPTN, tmout TMO) ER
	IniFlg(flgid ID) ER
	RefFlg(flgid ID, pk *T_RFLG) ER
	AcreFlg(pk *T_CFLG) ER_ID
	DelFlg(flgid ID) ER
}

type DataqueueCalls interface {
	SndDtq(dtqid ID, data DataElement) ER
	PsndDtq(dtqid ID, data DataElement) ER
	TsndDtq(dtqid ID, data DataElement, tmout TMO) ER
	FsndDtq(dtqid ID, data DataElement) ER
	RcvDtq(dtqid ID, p *DataElement) ER
	PrcvDtq(dtqid ID, p *DataElement) ER
	TrcvDtq(dtqid ID, p *DataElement, tmout TMO) ER
	IniDtq(dtqid ID) ER
	RefDtq(dtqid ID, pk *T_RDTQ) ER
	AcreDtq(pk *T_CDTQ) ER_ID
	DelDtq(dtqid ID) ER
}

type PriorityDataqueueCalls interface {
	SndPdq(pdqid ID, data DataElement, datapri PRI) ER
	PsndPdq(pdqid ID, data DataElement, datapri PRI) ER
	TsndPdq(pdqid ID, data DataElement, datapri PRI, tmout TMO) ER
	RcvPdq(pdqid ID, p *DataElement, pri *PRI) ER
	PrcvPdq(pdqid ID, p *DataElement, pri *PRI) ER
	TrcvPdq(pdqid ID, p *DataElement, pri *PRI, tmout TMO) ER
	IniPdq(pdqid ID) ER
	RefPdq(pdqid ID, pk *T_RPDQ) ER
	AcrePdq(pk *T_CPDQ) ER_ID
	DelPdq(pdqid ID) ER
}

type MutexCalls interface {
	LocMtx(mtxid ID) ER
	PlocMtx(mtxid ID) ER
	TlocMtx(mtxid ID, tmout TMO) ER
	UnlMtx(mtxid ID) ER
	IniMtx(mtxid ID) ER
	RefMtx(mtxid ID, pk *T_RMTX) ER
	AcreMtx(pk *T_CMTX) ER_ID
	DelMtx(mtxid ID) ER
}

// MessageBufferCalls transfer messages as byte slices. The receive calls
// return the message size.
type MessageBufferCalls interface {
	SndMbf(mbfid ID, msg []byte) ER
	PsndMbf(mbfid ID, msg []byte) ER
	TsndMbf(mbfid ID, msg []byte, tmout TMO) ER
	RcvMbf(mbfid ID, msg []byte) ER_UINT
	PrcvMbf(mbfid ID, msg []byte) ER_UINT
	TrcvMbf(mbfid ID, msg []byte, tmout TMO) ER_UINT
	IniMbf(mbfid ID) ER
	RefMbf(mbfid ID, pk *T_RMBF) ER
	AcreMbf(pk *T_CMBF) ER_ID
	DelMbf(mbfid ID) ER
}

type MemoryPoolCalls interface {
	GetMpf(mpfid ID, p *unsafe.Pointer) ER
	PgetMpf(mpfid ID, p *unsafe.Pointer) ER
	TgetMpf(mpfid ID, p *unsafe.Pointer, tmout TMO) ER
	RelMpf(mpfid ID, blk unsafe.Pointer) ER
	IniMpf(mpfid ID) ER
	RefMpf(mpfid ID, pk *T_RMPF) ER
	AcreMpf(pk *T_CMPF) ER_ID
	DelMpf(mpfid ID) ER
}

type TaskCalls interface {
	ActTsk(tskid ID) ER
	MactTsk(tskid ID, prcid ID) ER
	CanAct(tskid ID) ER_UINT
	GetTst(tskid ID, p *STAT) ER
	ChgPri(tskid ID, tskpri PRI) ER
	GetPri(tskid ID, p *PRI) ER
	GetInf(p *EXINF) ER
	RefTsk(tskid ID, pk *T_RTSK) ER
	AcreTsk(pk *T_CTSK) ER_ID
	DelTsk(tskid ID) ER

	SlpTsk() ER
	TslpTsk(tmout TMO) ER
	WupTsk(tskid ID) ER
	CanWup(tskid ID) ER_UINT
	RelWai(tskid ID) ER
	SusTsk(tskid ID) ER
	RsmTsk(tskid ID) ER
	DlyTsk(dlytim RELTIM) ER

	ExtTsk() ER
	RasTer(tskid ID) ER
	DisTer() ER
	EnaTer() ER
	SnsTer() BOOL
	TerTsk(tskid ID) ER
}

type SystemCalls interface {
	RotRdq(tskpri PRI) ER
	GetTid(p *ID) ER
	GetPid(p *ID) ER
	LocCpu() ER
	UnlCpu() ER
	DisDsp() ER
	EnaDsp() ER
	SnsCtx() BOOL
	SnsLoc() BOOL
	SnsDsp() BOOL
	SnsDpn() BOOL
	SnsKer() BOOL
	ExtKer() ER
}

type TimeCalls interface {
	SetTim(systim SYSTIM) ER
	GetTim(p *SYSTIM) ER
	AdjTim(adjtim int32) ER
	FchHrt() HRTCNT
}

type InterruptCalls interface {
	DisInt(intno INTNO) ER
	EnaInt(intno INTNO) ER
	ClrInt(intno INTNO) ER
	RasInt(intno INTNO) ER
	PrbInt(intno INTNO) ER_BOOL
	ChgIpm(intpri PRI) ER
	GetIpm(p *PRI) ER
}
