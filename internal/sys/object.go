package sys

import (
	"fmt"
	"runtime"

	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
	"github.com/solid-rs/itron-rs/internal/testutils/testmain"
)

// A value for a disowned object. Zero is never a valid object ID.
const invalidID abi.ID = 0

// Object is a kernel object owned by the program.
//
// The object is deleted by Close. If an Object becomes unreachable without
// being closed or disowned its finalizer deletes it, and panics if that
// fails.
type Object struct {
	class string
	id    abi.ID
	del   func(abi.ID) error
}

// NewObject takes ownership of the object id of the given class.
//
// del is called exactly once to delete the object.
func NewObject(class string, id abi.ID, del func(abi.ID) error) *Object {
	testmain.TraceObject(class, id, 1)

	obj := &Object{class, id, del}
	runtime.SetFinalizer(obj, (*Object).finalize)
	return obj
}

// finalize is set as the Object's runtime finalizer and sends a leak trace
// before deleting the object.
func (obj *Object) finalize() {
	if obj.id == invalidID {
		return
	}

	testmain.LeakObject(obj.class, obj.id)

	op := fmt.Sprintf("finalize %s", obj)
	if err := obj.Close(); err != nil {
		panic(&itron.CriticalError{Op: op, Err: err})
	}
}

// ID returns the object ID, or zero once the object was closed or
// disowned.
func (obj *Object) ID() abi.ID {
	return obj.id
}

// MustID is like ID but panics once the object was closed or disowned.
func (obj *Object) MustID() abi.ID {
	if obj.id == invalidID {
		panic(fmt.Sprintf("%s used after Close or Leak", obj.class))
	}
	return obj.id
}

func (obj *Object) String() string {
	return fmt.Sprintf("%s(%d)", obj.class, obj.id)
}

// Close deletes the object. Closing an object twice is a no-op.
//
// The object is disowned even if the deletion fails.
func (obj *Object) Close() error {
	if obj.id == invalidID {
		return nil
	}

	return obj.del(obj.Disown())
}

// Disown releases ownership without deleting the object and returns its ID.
func (obj *Object) Disown() abi.ID {
	value := obj.id
	testmain.ForgetObject(obj.class, value)
	obj.id = invalidID

	runtime.SetFinalizer(obj, nil)
	return value
}
