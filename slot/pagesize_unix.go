//go:build unix

package slot

import "golang.org/x/sys/unix"

// HostPageSize returns the memory page size of the running system.
func HostPageSize() int32 {
	return int32(unix.Getpagesize())
}
