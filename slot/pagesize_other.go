//go:build !unix

package slot

import "os"

// HostPageSize returns the memory page size of the running system.
func HostPageSize() int32 {
	return int32(os.Getpagesize())
}
