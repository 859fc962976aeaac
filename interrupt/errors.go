package interrupt

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// EnableError is the failure kind of [Line.Enable].
type EnableError uint8

const (
	// The target can't enable this line.
	EnableNotSupported EnableError = iota
	// The interrupt number is out of range.
	EnableBadParam
	// The line isn't configured.
	EnableBadState
)

var enableKinds = itron.KindTable[EnableError]{
	itron.Variant(EnableNotSupported, "not supported", true, abi.E_NOSPT),
	itron.Variant(EnableBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(EnableBadState, "bad state", true, abi.E_OBJ),
}

// DisableError is the failure kind of [Line.Disable].
type DisableError uint8

const (
	// The target can't disable this line.
	DisableNotSupported DisableError = iota
	// The interrupt number is out of range.
	DisableBadParam
	// The line isn't configured.
	DisableBadState
)

var disableKinds = itron.KindTable[DisableError]{
	itron.Variant(DisableNotSupported, "not supported", true, abi.E_NOSPT),
	itron.Variant(DisableBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(DisableBadState, "bad state", true, abi.E_OBJ),
}

// ClearError is the failure kind of [Line.Clear].
type ClearError uint8

const (
	ClearNotSupported ClearError = iota
	// The interrupt number is out of range.
	ClearBadParam
	// The line isn't configured or can't be cleared.
	ClearBadState
)

var clearKinds = itron.KindTable[ClearError]{
	itron.Variant(ClearNotSupported, "not supported", true, abi.E_NOSPT),
	itron.Variant(ClearBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(ClearBadState, "bad state", true, abi.E_OBJ),
}

// RaiseError is the failure kind of [Line.Raise].
type RaiseError uint8

const (
	RaiseNotSupported RaiseError = iota
	// The interrupt number is out of range.
	RaiseBadParam
	// The line isn't configured or can't be raised.
	RaiseBadState
)

var raiseKinds = itron.KindTable[RaiseError]{
	itron.Variant(RaiseNotSupported, "not supported", true, abi.E_NOSPT),
	itron.Variant(RaiseBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(RaiseBadState, "bad state", true, abi.E_OBJ),
}

// IsPendingError is the failure kind of [Line.IsPending].
type IsPendingError uint8

const (
	IsPendingNotSupported IsPendingError = iota
	// The interrupt number is out of range.
	IsPendingBadParam
	// The line isn't configured.
	IsPendingBadState
)

var isPendingKinds = itron.KindTable[IsPendingError]{
	itron.Variant(IsPendingNotSupported, "not supported", true, abi.E_NOSPT),
	itron.Variant(IsPendingBadParam, "bad parameter", true, abi.E_PAR),
	itron.Variant(IsPendingBadState, "bad state", true, abi.E_OBJ),
}

// SetPriorityMaskError is the failure kind of [SetPriorityMask].
type SetPriorityMaskError uint8

const (
	// The caller isn't a task, or the CPU is locked.
	SetPriorityMaskBadContext SetPriorityMaskError = iota
	// The priority is out of range.
	SetPriorityMaskBadParam
)

var setPriorityMaskKinds = itron.KindTable[SetPriorityMaskError]{
	itron.Variant(SetPriorityMaskBadContext, "bad context", true, abi.E_CTX),
	itron.Variant(SetPriorityMaskBadParam, "bad parameter", true, abi.E_PAR),
}

// PriorityMaskError is the failure kind of [PriorityMask].
type PriorityMaskError uint8

const (
	PriorityMaskBadContext PriorityMaskError = iota
)

var priorityMaskKinds = itron.KindTable[PriorityMaskError]{
	itron.Variant(PriorityMaskBadContext, "bad context", true, abi.E_CTX),
}
