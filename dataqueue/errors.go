package dataqueue

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// SendError is the failure kind of [Ref.Send].
type SendError uint8

const (
	SendBadContext SendError = iota
	// The calling task is a restricted task.
	SendNotSupported
	SendBadID
	SendAccessDenied
	SendReleased
	SendTerminateRequest
	SendDeleted
)

var sendKinds = itron.KindTable[SendError]{
	itron.Variant(SendBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SendNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(SendBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(SendAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(SendReleased, "released", true, abi.E_RLWAI),
	itron.Variant(SendTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(SendDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// SendTimeoutError is the failure kind of [Ref.SendTimeout].
type SendTimeoutError uint8

const (
	SendTimeoutBadContext SendTimeoutError = iota
	// The calling task is a restricted task.
	SendTimeoutNotSupported
	SendTimeoutBadID
	SendTimeoutAccessDenied
	SendTimeoutTimeout
	SendTimeoutReleased
	SendTimeoutTerminateRequest
	SendTimeoutDeleted
)

var sendTimeoutKinds = itron.KindTable[SendTimeoutError]{
	itron.Variant(SendTimeoutBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SendTimeoutNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(SendTimeoutBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(SendTimeoutAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(SendTimeoutTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(SendTimeoutReleased, "released", true, abi.E_RLWAI),
	itron.Variant(SendTimeoutTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(SendTimeoutDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// TrySendError is the failure kind of [Ref.TrySend].
type TrySendError uint8

const (
	TrySendBadContext TrySendError = iota
	TrySendBadID
	TrySendAccessDenied
	TrySendTimeout
)

var trySendKinds = itron.KindTable[TrySendError]{
	itron.Variant(TrySendBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(TrySendBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(TrySendAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(TrySendTimeout, "timeout", true, abi.E_TMOUT),
}

// SendForcedError is the failure kind of [Ref.SendForced].
type SendForcedError uint8

const (
	SendForcedBadContext SendForcedError = iota
	SendForcedBadID
	SendForcedAccessDenied
	// The data queue has no capacity to overwrite.
	SendForcedZeroSized
)

var sendForcedKinds = itron.KindTable[SendForcedError]{
	itron.Variant(SendForcedBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SendForcedBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(SendForcedAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(SendForcedZeroSized, "zero-sized queue", true, abi.E_ILUSE),
}

// RecvError is the failure kind of [Ref.Recv].
type RecvError uint8

const (
	RecvBadContext RecvError = iota
	// The calling task is a restricted task.
	RecvNotSupported
	RecvBadID
	RecvAccessDenied
	RecvReleased
	RecvTerminateRequest
	RecvDeleted
)

var recvKinds = itron.KindTable[RecvError]{
	itron.Variant(RecvBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(RecvNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(RecvBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(RecvAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(RecvReleased, "released", true, abi.E_RLWAI),
	itron.Variant(RecvTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(RecvDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// RecvTimeoutError is the failure kind of [Ref.RecvTimeout].
type RecvTimeoutError uint8

const (
	RecvTimeoutBadContext RecvTimeoutError = iota
	// The calling task is a restricted task.
	RecvTimeoutNotSupported
	RecvTimeoutBadID
	RecvTimeoutAccessDenied
	RecvTimeoutTimeout
	RecvTimeoutReleased
	RecvTimeoutTerminateRequest
	RecvTimeoutDeleted
)

var recvTimeoutKinds = itron.KindTable[RecvTimeoutError]{
	itron.Variant(RecvTimeoutBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(RecvTimeoutNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(RecvTimeoutBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(RecvTimeoutAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(RecvTimeoutTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(RecvTimeoutReleased, "released", true, abi.E_RLWAI),
	itron.Variant(RecvTimeoutTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(RecvTimeoutDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// TryRecvError is the failure kind of [Ref.TryRecv].
type TryRecvError uint8

const (
	TryRecvBadContext TryRecvError = iota
	TryRecvBadID
	TryRecvAccessDenied
	TryRecvTimeout
)

var tryRecvKinds = itron.KindTable[TryRecvError]{
	itron.Variant(TryRecvBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(TryRecvBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(TryRecvAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(TryRecvTimeout, "timeout", true, abi.E_TMOUT),
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
