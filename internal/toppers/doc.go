// Package toppers binds the service calls of a linked TOPPERS kernel.
//
// It is compiled with cgo when one of the kernel build tags is set. The
// application must provide <kernel.h> of the kernel on the include path
// and link the kernel library.
package toppers
