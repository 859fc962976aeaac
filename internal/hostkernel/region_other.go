//go:build !linux

package hostkernel

func allocRegion(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func freeRegion([]byte) {}
