package sys

import (
	"github.com/solid-rs/itron-rs"
	"github.com/solid-rs/itron-rs/internal/abi"
)

// Check interprets the result of the service call op.
//
// Non-negative results are successes. Negative results are returned as an
// itron.Error[K]. A code K doesn't document is a critical error and causes
// a panic.
func Check[K itron.ErrorKind[K]](op string, er abi.ER) error {
	code, ok := itron.NewErrorCode(er)
	if !ok {
		return nil
	}
	return wrap[K](op, code)
}

// CheckValue is like Check for calls which return a count or an ID on
// success.
func CheckValue[K itron.ErrorKind[K]](op string, er abi.ER) (abi.ER, error) {
	code, ok := itron.NewErrorCode(er)
	if !ok {
		return er, nil
	}
	return 0, wrap[K](op, code)
}

// Fail synthesizes an error for op without calling the kernel, for failures
// detected before the call would be made.
func Fail[K itron.ErrorKind[K]](op string, er abi.ER) error {
	code, ok := itron.NewErrorCode(er)
	if !ok {
		panic("sys: Fail called with non-negative code")
	}
	return wrap[K](op, code)
}

func wrap[K itron.ErrorKind[K]](op string, code itron.ErrorCode) error {
	err, ok := itron.NewError[K](code)
	if !ok {
		panic(&itron.CriticalError{Op: op, Code: code})
	}
	return err
}
