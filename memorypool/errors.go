package memorypool

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// GetError is the failure kind of [Ref.Get].
type GetError uint8

const (
	GetBadContext GetError = iota
	// The calling task is a restricted task.
	GetNotSupported
	GetBadID
	GetAccessDenied
	GetReleased
	GetTerminateRequest
	GetDeleted
)

var getKinds = itron.KindTable[GetError]{
	itron.Variant(GetBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(GetNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(GetBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(GetAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(GetReleased, "released", true, abi.E_RLWAI),
	itron.Variant(GetTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(GetDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// GetTimeoutError is the failure kind of [Ref.GetTimeout].
type GetTimeoutError uint8

const (
	GetTimeoutBadContext GetTimeoutError = iota
	// The calling task is a restricted task.
	GetTimeoutNotSupported
	GetTimeoutBadID
	GetTimeoutAccessDenied
	GetTimeoutTimeout
	GetTimeoutReleased
	GetTimeoutTerminateRequest
	GetTimeoutDeleted
)

var getTimeoutKinds = itron.KindTable[GetTimeoutError]{
	itron.Variant(GetTimeoutBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(GetTimeoutNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(GetTimeoutBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(GetTimeoutAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(GetTimeoutTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(GetTimeoutReleased, "released", true, abi.E_RLWAI),
	itron.Variant(GetTimeoutTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(GetTimeoutDeleted, "deleted", abi.Dcre, abi.E_DLT),
}

// TryGetError is the failure kind of [Ref.TryGet].
type TryGetError uint8

const (
	TryGetBadContext TryGetError = iota
	TryGetBadID
	TryGetAccessDenied
	TryGetTimeout
)

var tryGetKinds = itron.KindTable[TryGetError]{
	itron.Variant(TryGetBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(TryGetBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(TryGetAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(TryGetTimeout, "timeout", true, abi.E_TMOUT),
}

// ReleaseError is the failure kind of [Ref.Release].
type ReleaseError uint8

const (
	ReleaseBadContext ReleaseError = iota
	ReleaseBadID
	ReleaseAccessDenied
	// The block wasn't acquired from this memory pool.
	ReleaseBadParam
)

var releaseKinds = itron.KindTable[ReleaseError]{
	itron.Variant(ReleaseBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(ReleaseBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(ReleaseAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(ReleaseBadParam, "bad parameter", true, abi.E_PAR),
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
