//go:build !linux && !darwin

package bytebuf

// mapRegion allocates n zeroed bytes on the heap where anonymous mmap is
// unavailable. Semantics match the unix backend; the garbage collector
// stands in for munmap.
func mapRegion(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	return make([]byte, n), nil
}

func unmapRegion(data []byte) error {
	return nil
}
