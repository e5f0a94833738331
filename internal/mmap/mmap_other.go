//go:build !unix

package mmap

// AnonMap falls back to the Go heap on platforms without mmap support, so
// callers behave identically everywhere.
func AnonMap(size int) ([]byte, error) {
	return make([]byte, size), nil
}

func Unmap(data []byte) error {
	return nil
}
