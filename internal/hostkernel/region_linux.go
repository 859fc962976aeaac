package hostkernel

import "golang.org/x/sys/unix"

// allocRegion maps anonymous memory for the blocks of a memory pool. The
// region lives outside the Go heap, like the pool area of a real kernel.
func allocRegion(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
}

func freeRegion(region []byte) {
	if region != nil {
		_ = unix.Munmap(region)
	}
}
