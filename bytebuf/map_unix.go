//go:build linux || darwin

package bytebuf

import (
	"golang.org/x/sys/unix"
)

// mapRegion maps n bytes of zeroed anonymous private memory. n must be a
// whole number of pages.
func mapRegion(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return unix.Mmap(
		-1,
		0,
		n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON,
	)
}

// unmapRegion returns a region obtained from mapRegion to the kernel.
func unmapRegion(data []byte) error {
	if data == nil {
		return nil
	}
	return unix.Munmap(data)
}
