package itron

import (
	"fmt"
	"slices"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// KindSpec describes one variant of an error kind type.
type KindSpec[K comparable] struct {
	Kind K
	// Name is a short description of the failure.
	Name string
	// Avail reports whether the selected kernel can produce the variant.
	// Unavailable variants never classify a code.
	Avail bool
	// Codes are the error codes mapped to the variant.
	Codes []abi.ER
}

// Variant declares kind, accepting codes if avail is set.
func Variant[K comparable](kind K, name string, avail bool, codes ...abi.ER) KindSpec[K] {
	return KindSpec[K]{kind, name, avail, codes}
}

// KindTable lists the variants of an error kind type in priority order.
//
// The same table declares the variants and classifies codes, so the
// availability of a variant and the codes it accepts cannot diverge.
type KindTable[K comparable] []KindSpec[K]

// Classify returns the first available variant accepting code.
func (t KindTable[K]) Classify(code ErrorCode) (K, bool) {
	for _, spec := range t {
		if spec.Avail && slices.Contains(spec.Codes, code.er) {
			return spec.Kind, true
		}
	}
	var zero K
	return zero, false
}

// Name returns the description of k.
func (t KindTable[K]) Name(k K) string {
	if spec := t.lookup(k); spec != nil {
		return spec.Name
	}
	return fmt.Sprintf("%T(%d)", k, any(k))
}

// Available reports whether k can occur under the selected kernel.
func (t KindTable[K]) Available(k K) bool {
	if spec := t.lookup(k); spec != nil {
		return spec.Avail
	}
	return false
}

func (t KindTable[K]) lookup(k K) *KindSpec[K] {
	for i := range t {
		if t[i].Kind == k {
			return &t[i]
		}
	}
	return nil
}
