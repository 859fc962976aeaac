package task

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// ActivateError is the failure kind of [Ref.Activate].
type ActivateError uint8

const (
	ActivateBadContext ActivateError = iota
	ActivateBadID
	ActivateAccessDenied
	ActivateQueueOverflow
)

var activateKinds = itron.KindTable[ActivateError]{
	itron.Variant(ActivateBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(ActivateBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(ActivateAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(ActivateQueueOverflow, "queue overflow", true, abi.E_QOVR),
}

// ActivateOnError is the failure kind of [Ref.ActivateOn].
type ActivateOnError uint8

const (
	ActivateOnBadContext ActivateOnError = iota
	ActivateOnBadID
	// The calling task is a restricted task.
	ActivateOnNotSupported
	ActivateOnAccessDenied
	ActivateOnQueueOverflow
	// The processor is outside the affinity of the task.
	ActivateOnBadParam
)

var activateOnKinds = itron.KindTable[ActivateOnError]{
	itron.Variant(ActivateOnBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(ActivateOnBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(ActivateOnNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(ActivateOnAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(ActivateOnQueueOverflow, "queue overflow", true, abi.E_QOVR),
	itron.Variant(ActivateOnBadParam, "bad parameter", abi.Multiprocessor, abi.E_PAR),
}

// CancelActivateAllError is the failure kind of [Ref.CancelActivateAll].
type CancelActivateAllError uint8

const (
	CancelActivateAllBadContext CancelActivateAllError = iota
	CancelActivateAllBadID
	CancelActivateAllAccessDenied
)

var cancelActivateAllKinds = itron.KindTable[CancelActivateAllError]{
	itron.Variant(CancelActivateAllBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(CancelActivateAllBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(CancelActivateAllAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// SetPriorityError is the failure kind of [Ref.SetPriority].
type SetPriorityError uint8

const (
	SetPriorityBadContext SetPriorityError = iota
	SetPriorityBadID
	// The priority is out of range, or below the ceiling of a held mutex.
	SetPriorityBadParam
	// The task is dormant.
	SetPriorityBadState
	SetPriorityAccessDenied
)

var setPriorityKinds = itron.KindTable[SetPriorityError]{
	itron.Variant(SetPriorityBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SetPriorityBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(SetPriorityBadParam, "bad parameter", true, abi.E_PAR, abi.E_NOSPT, abi.E_ILUSE),
	itron.Variant(SetPriorityBadState, "bad state", true, abi.E_OBJ),
	itron.Variant(SetPriorityAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// PriorityError is the failure kind of [Ref.Priority].
type PriorityError uint8

const (
	PriorityBadContext PriorityError = iota
	PriorityBadID
	// The task is dormant.
	PriorityBadState
	PriorityAccessDenied
)

var priorityKinds = itron.KindTable[PriorityError]{
	itron.Variant(PriorityBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(PriorityBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(PriorityBadState, "bad state", true, abi.E_OBJ),
	itron.Variant(PriorityAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// DeleteError is the failure kind of [Ref.Delete] and Close.
type DeleteError uint8

const (
	DeleteBadContext DeleteError = iota
	DeleteBadID
	DeleteAccessDenied
	// The task isn't dormant.
	DeleteBadState
)

var deleteKinds = itron.KindTable[DeleteError]{
	itron.Variant(DeleteBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(DeleteBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(DeleteAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(DeleteBadState, "bad state", true, abi.E_OBJ),
}

// StateError is the failure kind of [Ref.State].
type StateError uint8

const (
	StateBadContext StateError = iota
	StateBadID
	StateAccessDenied
)

var stateKinds = itron.KindTable[StateError]{
	itron.Variant(StateBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(StateBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(StateAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// InfoError is the failure kind of [Ref.Info].
type InfoError uint8

const (
	InfoBadContext InfoError = iota
	InfoBadID
	InfoAccessDenied
)

var infoKinds = itron.KindTable[InfoError]{
	itron.Variant(InfoBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(InfoBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(InfoAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// WakeError is the failure kind of [Ref.Wake].
type WakeError uint8

const (
	WakeBadContext WakeError = iota
	WakeBadID
	// The calling task is a restricted task.
	WakeNotSupported
	WakeAccessDenied
	// The task is dormant.
	WakeBadState
	WakeQueueOverflow
)

var wakeKinds = itron.KindTable[WakeError]{
	itron.Variant(WakeBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(WakeBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(WakeNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(WakeAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(WakeBadState, "bad state", true, abi.E_OBJ),
	itron.Variant(WakeQueueOverflow, "queue overflow", true, abi.E_QOVR),
}

// CancelWakeAllError is the failure kind of [Ref.CancelWakeAll].
type CancelWakeAllError uint8

const (
	CancelWakeAllBadContext CancelWakeAllError = iota
	CancelWakeAllBadID
	// The calling task is a restricted task.
	CancelWakeAllNotSupported
	CancelWakeAllAccessDenied
	CancelWakeAllBadState
)

var cancelWakeAllKinds = itron.KindTable[CancelWakeAllError]{
	itron.Variant(CancelWakeAllBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(CancelWakeAllBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(CancelWakeAllNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(CancelWakeAllAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(CancelWakeAllBadState, "bad state", true, abi.E_OBJ),
}

// ReleaseWaitError is the failure kind of [Ref.ReleaseWait].
type ReleaseWaitError uint8

const (
	ReleaseWaitBadContext ReleaseWaitError = iota
	ReleaseWaitBadID
	// The calling task is a restricted task.
	ReleaseWaitNotSupported
	ReleaseWaitAccessDenied
	// The task isn't waiting.
	ReleaseWaitBadState
)

var releaseWaitKinds = itron.KindTable[ReleaseWaitError]{
	itron.Variant(ReleaseWaitBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(ReleaseWaitBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(ReleaseWaitNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(ReleaseWaitAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(ReleaseWaitBadState, "bad state", true, abi.E_OBJ),
}

// SuspendError is the failure kind of [Ref.Suspend].
type SuspendError uint8

const (
	SuspendBadContext SuspendError = iota
	SuspendBadID
	// The calling task is a restricted task.
	SuspendNotSupported
	SuspendAccessDenied
	// The task is dormant or has a pending termination request.
	SuspendBadState
	SuspendQueueOverflow
)

var suspendKinds = itron.KindTable[SuspendError]{
	itron.Variant(SuspendBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SuspendBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(SuspendNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(SuspendAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(SuspendBadState, "bad state", true, abi.E_OBJ, abi.E_RASTER),
	itron.Variant(SuspendQueueOverflow, "queue overflow", true, abi.E_QOVR),
}

// ResumeError is the failure kind of [Ref.Resume].
type ResumeError uint8

const (
	ResumeBadContext ResumeError = iota
	ResumeBadID
	// The calling task is a restricted task.
	ResumeNotSupported
	ResumeAccessDenied
	// The task isn't suspended.
	ResumeBadState
)

var resumeKinds = itron.KindTable[ResumeError]{
	itron.Variant(ResumeBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(ResumeBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(ResumeNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(ResumeAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(ResumeBadState, "bad state", true, abi.E_OBJ),
}

// TerminateError is the failure kind of [Ref.Terminate].
type TerminateError uint8

const (
	TerminateBadContext TerminateError = iota
	TerminateBadID
	TerminateAccessDenied
	// The task is dormant.
	TerminateBadState
	// The task is the calling task.
	TerminateBadParam
)

var terminateKinds = itron.KindTable[TerminateError]{
	itron.Variant(TerminateBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(TerminateBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(TerminateAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(TerminateBadState, "bad state", true, abi.E_OBJ),
	itron.Variant(TerminateBadParam, "bad parameter", true, abi.E_ILUSE),
}

// RaiseTerminationError is the failure kind of [Ref.RaiseTermination].
type RaiseTerminationError uint8

const (
	RaiseTerminationBadContext RaiseTerminationError = iota
	RaiseTerminationBadID
	RaiseTerminationAccessDenied
	// The task is dormant.
	RaiseTerminationBadState
	// The task is the calling task.
	RaiseTerminationBadParam
)

var raiseTerminationKinds = itron.KindTable[RaiseTerminationError]{
	itron.Variant(RaiseTerminationBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(RaiseTerminationBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(RaiseTerminationAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(RaiseTerminationBadState, "bad state", true, abi.E_OBJ),
	itron.Variant(RaiseTerminationBadParam, "bad parameter", true, abi.E_ILUSE),
}

// SleepError is the failure kind of [Sleep].
type SleepError uint8

const (
	SleepBadContext SleepError = iota
	// The calling task is a restricted task.
	SleepNotSupported
	SleepReleased
	SleepTerminateRequest
)

var sleepKinds = itron.KindTable[SleepError]{
	itron.Variant(SleepBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SleepNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(SleepReleased, "released", true, abi.E_RLWAI),
	itron.Variant(SleepTerminateRequest, "termination requested", true, abi.E_RASTER),
}

// SleepTimeoutError is the failure kind of [SleepTimeout].
type SleepTimeoutError uint8

const (
	SleepTimeoutBadContext SleepTimeoutError = iota
	// The calling task is a restricted task.
	SleepTimeoutNotSupported
	SleepTimeoutTimeout
	SleepTimeoutReleased
	SleepTimeoutTerminateRequest
)

var sleepTimeoutKinds = itron.KindTable[SleepTimeoutError]{
	itron.Variant(SleepTimeoutBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SleepTimeoutNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(SleepTimeoutTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(SleepTimeoutReleased, "released", true, abi.E_RLWAI),
	itron.Variant(SleepTimeoutTerminateRequest, "termination requested", true, abi.E_RASTER),
}

// DelayError is the failure kind of [Delay].
type DelayError uint8

const (
	DelayBadContext DelayError = iota
	// The calling task is a restricted task.
	DelayNotSupported
	DelayReleased
	DelayTerminateRequest
)

var delayKinds = itron.KindTable[DelayError]{
	itron.Variant(DelayBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(DelayNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(DelayReleased, "released", true, abi.E_RLWAI),
	itron.Variant(DelayTerminateRequest, "termination requested", true, abi.E_RASTER),
}

// ExitError is the failure kind of [Exit].
type ExitError uint8

const (
	ExitBadContext ExitError = iota
)

var exitKinds = itron.KindTable[ExitError]{
	itron.Variant(ExitBadContext, "bad context", true, abi.E_CTX),
}

// DisableTerminationError is the failure kind of [DisableTermination] and [EnableTermination].
type DisableTerminationError uint8

const (
	DisableTerminationBadContext DisableTerminationError = iota
	DisableTerminationAccessDenied
)

var disableTerminationKinds = itron.KindTable[DisableTerminationError]{
	itron.Variant(DisableTerminationBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(DisableTerminationAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// CurrentIDError is the failure kind of [Current] and [ExtendedInfo].
type CurrentIDError uint8

const (
	CurrentIDBadContext CurrentIDError = iota
)

var currentIDKinds = itron.KindTable[CurrentIDError]{
	itron.Variant(CurrentIDBadContext, "bad context", true, abi.E_CTX),
}

// BuildError is the failure kind of [Builder.Finish].
type BuildError uint8

const (
	BuildBadContext BuildError = iota
	BuildAccessDenied
	BuildOutOfMemory
	BuildBadParam
)

var buildKinds = itron.KindTable[BuildError]{
	itron.Variant(BuildBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(BuildAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(BuildOutOfMemory, "out of memory", true, abi.E_NOID, abi.E_NOMEM),
	itron.Variant(BuildBadParam, "bad parameter", true, abi.E_PAR, abi.E_RSATR),
}
