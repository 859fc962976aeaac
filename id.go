package itron

import (
	"strconv"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// ID is an object ID number as used by the kernel. Zero denotes "no
// object" or the invoking task depending on the call.
type ID = abi.ID

// NonNullID is an object ID known to be non-zero.
type NonNullID struct {
	id ID
}

// NewNonNullID returns false if id is zero.
func NewNonNullID(id ID) (NonNullID, bool) {
	if id == 0 {
		return NonNullID{}, false
	}
	return NonNullID{id}, true
}

// MustNonNullID is like NewNonNullID but panics if id is zero.
func MustNonNullID(id ID) NonNullID {
	nid, ok := NewNonNullID(id)
	if !ok {
		panic("itron: zero object ID")
	}
	return nid
}

// Get returns the raw ID.
func (id NonNullID) Get() ID {
	return id.id
}

func (id NonNullID) String() string {
	return strconv.FormatInt(int64(id.id), 10)
}
