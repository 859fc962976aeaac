package mutex

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// LockError is the failure kind of [Ref.Lock].
type LockError uint8

const (
	LockBadContext LockError = iota
	// The calling task is a restricted task.
	LockNotSupported
	LockBadID
	LockAccessDenied
	LockReleased
	LockTerminateRequest
	LockDeleted
	// The base priority of the calling task is higher than the ceiling.
	LockBadParam
	// The calling task already owns the mutex.
	LockDeadlock
)

var lockKinds = itron.KindTable[LockError]{
	itron.Variant(LockBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(LockNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(LockBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(LockAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(LockReleased, "released", true, abi.E_RLWAI),
	itron.Variant(LockTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(LockDeleted, "deleted", abi.Dcre, abi.E_DLT),
	itron.Variant(LockBadParam, "bad parameter", true, abi.E_ILUSE),
	itron.Variant(LockDeadlock, "deadlock", true, abi.E_OBJ),
}

// LockTimeoutError is the failure kind of [Ref.LockTimeout].
type LockTimeoutError uint8

const (
	LockTimeoutBadContext LockTimeoutError = iota
	// The calling task is a restricted task.
	LockTimeoutNotSupported
	LockTimeoutBadID
	LockTimeoutAccessDenied
	LockTimeoutTimeout
	LockTimeoutReleased
	LockTimeoutTerminateRequest
	LockTimeoutDeleted
	// The base priority of the calling task is higher than the ceiling.
	LockTimeoutBadParam
	// The calling task already owns the mutex.
	LockTimeoutDeadlock
)

var lockTimeoutKinds = itron.KindTable[LockTimeoutError]{
	itron.Variant(LockTimeoutBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(LockTimeoutNotSupported, "not supported", abi.RstrTask, abi.E_NOSPT),
	itron.Variant(LockTimeoutBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(LockTimeoutAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(LockTimeoutTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(LockTimeoutReleased, "released", true, abi.E_RLWAI),
	itron.Variant(LockTimeoutTerminateRequest, "termination requested", true, abi.E_RASTER),
	itron.Variant(LockTimeoutDeleted, "deleted", abi.Dcre, abi.E_DLT),
	itron.Variant(LockTimeoutBadParam, "bad parameter", true, abi.E_ILUSE),
	itron.Variant(LockTimeoutDeadlock, "deadlock", true, abi.E_OBJ),
}

// TryLockError is the failure kind of [Ref.TryLock].
type TryLockError uint8

const (
	TryLockBadContext TryLockError = iota
	TryLockBadID
	TryLockAccessDenied
	TryLockTimeout
	// The base priority of the calling task is higher than the ceiling.
	TryLockBadParam
	// The calling task already owns the mutex.
	TryLockDeadlock
)

var tryLockKinds = itron.KindTable[TryLockError]{
	itron.Variant(TryLockBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(TryLockBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(TryLockAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(TryLockTimeout, "timeout", true, abi.E_TMOUT),
	itron.Variant(TryLockBadParam, "bad parameter", true, abi.E_ILUSE),
	itron.Variant(TryLockDeadlock, "deadlock", true, abi.E_OBJ),
}

// UnlockError is the failure kind of [Ref.Unlock].
type UnlockError uint8

const (
	UnlockBadContext UnlockError = iota
	UnlockBadID
	UnlockAccessDenied
	// The calling task doesn't own the mutex.
	UnlockBadSequence
)

var unlockKinds = itron.KindTable[UnlockError]{
	itron.Variant(UnlockBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(UnlockBadID, "bad ID", true, abi.E_ID, abi.E_NOEXS),
	itron.Variant(UnlockAccessDenied, "access denied", abi.Never, abi.E_OACV),
	itron.Variant(UnlockBadSequence, "bad sequence", true, abi.E_OBJ),
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
