//go:build unix

package mmap

import (
	"golang.org/x/sys/unix"
)

// AnonMap maps size bytes of zero-filled anonymous memory, readable and
// writable, private to this process.
func AnonMap(size int) ([]byte, error) {
	return unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
}

// Unmap releases a mapping obtained from AnonMap.
func Unmap(data []byte) error {
	return unix.Munmap(data)
}
