package itron

import (
	"errors"
	"fmt"
	"os"

	"github.com/solid-rs/itron-rs/internal/abi"
)

// ErrNotSupported indicates that the selected kernel lacks a feature.
var ErrNotSupported = errors.New("not supported")

// UnsupportedFeatureError is returned by operations the selected kernel
// does not provide, for example dynamic object creation on a kernel built
// without it.
type UnsupportedFeatureError struct {
	// Name of the missing feature.
	Name string
	// Kernel is the name of the selected kernel.
	Kernel string
}

func (ufe *UnsupportedFeatureError) Error() string {
	return fmt.Sprintf("%s not supported by kernel %s", ufe.Name, ufe.Kernel)
}

// Is indicates that UnsupportedFeatureError is ErrNotSupported.
func (ufe *UnsupportedFeatureError) Is(target error) bool {
	return target == ErrNotSupported
}

// requireFeature returns an UnsupportedFeatureError unless available is
// set.
func requireFeature(available bool, name string) error {
	if available {
		return nil
	}
	return &UnsupportedFeatureError{name, abi.KernelName}
}

// RequireDynamicCreation fails unless objects can be created and deleted
// at run time.
func RequireDynamicCreation() error {
	return requireFeature(abi.Dcre, "dynamic object creation")
}

// RequireMessageBuffers fails unless the kernel provides message buffers.
func RequireMessageBuffers() error {
	return requireFeature(abi.MessageBuf, "message buffers")
}

// RequireMultiprocessor fails unless the kernel manages several processors.
func RequireMultiprocessor() error {
	return requireFeature(abi.Multiprocessor, "multiprocessor support")
}

// RequireInterrupts fails unless interrupt lines can be managed through
// the kernel.
func RequireInterrupts() error {
	return requireFeature(abi.Interrupts, "interrupt management")
}

// ErrorCode is an error code returned by a service call. It is always
// negative.
type ErrorCode struct {
	er abi.ER
}

// NewErrorCode wraps a raw result. It returns false if er doesn't denote an
// error.
func NewErrorCode(er abi.ER) (ErrorCode, bool) {
	if er >= 0 {
		return ErrorCode{}, false
	}
	return ErrorCode{er}, true
}

// Get returns the raw value.
func (c ErrorCode) Get() abi.ER {
	return c.er
}

// Name returns the mnemonic of the code, for example "E_TMOUT".
func (c ErrorCode) Name() string {
	if name, ok := abi.ErrorName(c.er); ok {
		return name
	}
	return fmt.Sprintf("E(%d)", c.er)
}

func (c ErrorCode) String() string {
	return c.Name()
}

var errorMessages = map[abi.ER]string{
	abi.E_SYS:    "system error",
	abi.E_NOSPT:  "unsupported function",
	abi.E_RSFN:   "reserved function code",
	abi.E_RSATR:  "reserved attribute",
	abi.E_PAR:    "parameter error",
	abi.E_ID:     "invalid ID number",
	abi.E_CTX:    "context error",
	abi.E_MACV:   "memory access violation",
	abi.E_OACV:   "object access violation",
	abi.E_ILUSE:  "illegal service call use",
	abi.E_NOMEM:  "insufficient memory",
	abi.E_NOID:   "no ID number available",
	abi.E_NORES:  "no resource available",
	abi.E_OBJ:    "object state error",
	abi.E_NOEXS:  "non-existent object",
	abi.E_QOVR:   "queue overflow",
	abi.E_RLWAI:  "forced release from waiting",
	abi.E_TMOUT:  "polling failure or timeout",
	abi.E_DLT:    "waiting object deleted",
	abi.E_CLS:    "waiting object state changed",
	abi.E_RASTER: "task terminated by request",
	abi.E_WBLK:   "non-blocking call accepted",
	abi.E_BOVR:   "buffer overflow",
	abi.E_COMM:   "communication error",
}

func (c ErrorCode) Error() string {
	if msg, ok := errorMessages[c.er]; ok {
		return msg
	}
	return fmt.Sprintf("error code %d", c.er)
}

// Is maps error codes to the equivalent os and errors sentinels.
func (c ErrorCode) Is(target error) bool {
	switch target {
	case os.ErrNotExist:
		return c.er == abi.E_NOEXS || c.er == abi.E_ID
	case os.ErrDeadlineExceeded:
		return c.er == abi.E_TMOUT
	case os.ErrPermission:
		return c.er == abi.E_OACV || c.er == abi.E_MACV
	case errors.ErrUnsupported, ErrNotSupported:
		return c.er == abi.E_NOSPT
	}
	return false
}

// ErrorKind classifies error codes into the failure categories of one
// operation.
//
// FromErrorCode ignores its receiver.
type ErrorKind[K any] interface {
	comparable
	fmt.Stringer

	// FromErrorCode returns the kind documented for code, or false if the
	// operation cannot produce code under the selected kernel.
	FromErrorCode(code ErrorCode) (K, bool)
	// Available reports whether the selected kernel can produce the kind.
	Available() bool
}

// Error is a failure of an operation whose failure modes are described by
// K.
type Error[K ErrorKind[K]] struct {
	code ErrorCode
}

// NewError wraps code if K classifies it.
func NewError[K ErrorKind[K]](code ErrorCode) (Error[K], bool) {
	var k K
	if _, ok := k.FromErrorCode(code); !ok {
		return Error[K]{}, false
	}
	return Error[K]{code}, true
}

// Kind returns the failure category.
//
// It panics with a *CriticalError if the error wasn't constructed through
// NewError.
func (e Error[K]) Kind() K {
	var k K
	kind, ok := k.FromErrorCode(e.code)
	if !ok {
		panic(&CriticalError{Op: fmt.Sprintf("%T.Kind", e), Code: e.code})
	}
	return kind
}

// Code returns the raw error code.
func (e Error[K]) Code() ErrorCode {
	return e.code
}

func (e Error[K]) Error() string {
	var k K
	kind, ok := k.FromErrorCode(e.code)
	if !ok {
		return e.code.Error()
	}
	return fmt.Sprintf("%s (%s)", kind, e.code.Name())
}

func (e Error[K]) Unwrap() error {
	return e.code
}

// KindOf returns the kind of err if it is an Error[K].
func KindOf[K ErrorKind[K]](err error) (K, bool) {
	var e Error[K]
	if errors.As(err, &e) {
		return e.Kind(), true
	}
	var zero K
	return zero, false
}

// CriticalError is the panic value raised when a service call returns a
// code its operation cannot classify, or when an owned object cannot be
// deleted by its finalizer.
//
// These indicate a broken precondition or kernel fault and are never
// returned as errors.
type CriticalError struct {
	// Op is the service call or operation that failed.
	Op string
	// Code is the unexpected result. It is zero if Err is set.
	Code ErrorCode
	// Err is the error returned by the failed deletion, if any.
	Err error
}

func (ce *CriticalError) Error() string {
	if ce.Err != nil {
		return fmt.Sprintf("%s: critical error: %v", ce.Op, ce.Err)
	}
	return fmt.Sprintf("%s: critical error: %s (%s)", ce.Op, ce.Code.Error(), ce.Code.Name())
}

func (ce *CriticalError) Unwrap() error {
	if ce.Err != nil {
		return ce.Err
	}
	return ce.Code
}
