package kernel

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// ExitError is the failure kind of [Exit].
type ExitError uint8

const (
	ExitAccessDenied ExitError = iota
)

var exitKinds = itron.KindTable[ExitError]{
	itron.Variant(ExitAccessDenied, "access denied", abi.Never, abi.E_OACV),
}

// LockError is the failure kind of [LockCPU], [UnlockCPU], [DisableDispatch] and [EnableDispatch].
type LockError uint8

const (
	LockBadContext LockError = iota
)

var lockKinds = itron.KindTable[LockError]{
	itron.Variant(LockBadContext, "bad context", true, abi.E_CTX),
}

// RotateError is the failure kind of [RotateReadyQueue].
type RotateError uint8

const (
	RotateBadContext RotateError = iota
	// The priority is out of range.
	RotateBadParam
)

var rotateKinds = itron.KindTable[RotateError]{
	itron.Variant(RotateBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(RotateBadParam, "bad parameter", true, abi.E_PAR),
}

// TimeError is the failure kind of [Time] and [SetTime].
type TimeError uint8

const (
	TimeBadContext TimeError = iota
)

var timeKinds = itron.KindTable[TimeError]{
	itron.Variant(TimeBadContext, "bad context", true, abi.E_CTX),
}

// AdjustTimeError is the failure kind of [AdjustTime].
type AdjustTimeError uint8

const (
	AdjustTimeBadContext AdjustTimeError = iota
	// The adjustment is out of range.
	AdjustTimeBadParam
	// The adjustment would move the system time before zero.
	AdjustTimeBadState
)

var adjustTimeKinds = itron.KindTable[AdjustTimeError]{
	itron.Variant(AdjustTimeBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(AdjustTimeBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(AdjustTimeBadState, "bad state", true, abi.E_OBJ),
}
