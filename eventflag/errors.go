package eventflag

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// SetError is the failure kind of [Ref.Set].
type SetError uint8

const (
	SetBadContext SetError = iota
	SetBadID
	SetAccessDenied
)

var setKinds = itron.KindTable[SetError]{
	itron.Variant(SetBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SetBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(SetAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// ClearError is the failure kind of [Ref.Clear].
type ClearError uint8

const (
	ClearBadContext ClearError = iota
	ClearBadID
	ClearAccessDenied
)

var clearKinds = itron.KindTable[ClearError]{
	itron.Variant(ClearBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(ClearBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(ClearAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// WaitError is the failure kind of [Ref.Wait].
type WaitError uint8

const (
	WaitBadContext WaitError = iota
	// The calling task is a restricted task.
	WaitNotSupported
	WaitBadID
	WaitAccessDenied
	// The pattern is zero or the mode is invalid.
	WaitBadParam
	WaitReleased
	WaitTerminateRequest
	WaitDeleted
)

var waitKinds = itron.KindTable[WaitError]{
	itron.Variant(WaitBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(WaitNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(WaitBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(WaitAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(WaitBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(WaitReleased, "released", true, abi.E_RLWAI),
	itron.Variant(WaitTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(WaitDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// WaitTimeoutError is the failure kind of [Ref.WaitTimeout].
type WaitTimeoutError uint8

const (
	WaitTimeoutBadContext WaitTimeoutError = iota
	// The calling task is a restricted task.
	WaitTimeoutNotSupported
	WaitTimeoutBadID
	WaitTimeoutAccessDenied
	// The pattern is zero or the mode is invalid.
	WaitTimeoutBadParam
	WaitTimeoutTimeout
	WaitTimeoutReleased
	WaitTimeoutTerminateRequest
	WaitTimeoutDeleted
)

var waitTimeoutKinds = itron.KindTable[WaitTimeoutError]{
	itron.Variant(WaitTimeoutBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(WaitTimeoutNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(WaitTimeoutBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(WaitTimeoutAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(WaitTimeoutBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(WaitTimeoutTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(WaitTimeoutReleased, "released", true, abi.E_RLWAI),
	itron.Variant(WaitTimeoutTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(WaitTimeoutDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// PollError is the failure kind of [Ref.Poll].
type PollError uint8

const (
	PollBadContext PollError = iota
	PollBadID
	PollAccessDenied
	// The pattern is zero or the mode is invalid.
	PollBadParam
	PollTimeout
)

var pollKinds = itron.KindTable[PollError]{
	itron.Variant(PollBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(PollBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(PollAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(PollBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(PollTimeout, "timeout", true, abi.E_TMOUT),
}

// InitializeError is the failure kind of [Ref.Initialize].
type InitializeError uint8

const (
	InitializeBadContext InitializeError = iota
	InitializeBadID
	InitializeAccessDenied
)

var initializeKinds = itron.KindTable[InitializeError]{
	itron.Variant(InitializeBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(InitializeBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(InitializeAccessDenied, "access denied", abi.Never, abi.E_OACV),
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

// DeleteError is the failure kind of [Ref.Delete] and Close.
type DeleteError uint8

const (
	DeleteBadContext DeleteError = iota
	DeleteBadID
	DeleteAccessDenied
	DeleteBadState
)

var deleteKinds = itron.KindTable[DeleteError]{
	itron.Variant(DeleteBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(DeleteBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(DeleteAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(DeleteBadState, "bad state", true, abi.E_OBJ),
}
