package processor

//go:generate go run github.com/solid-rs/itron-rs/internal/cmd/genkinds kinds_gen.go

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// CurrentError is the failure kind of [Current].
type CurrentError uint8

const (
	CurrentBadContext CurrentError = iota
)

var currentKinds = itron.KindTable[CurrentError]{
	itron.Variant(CurrentBadContext, "bad context", abi.Multiprocessor, abi.E_CTX),
}
