package format

// Alignment utilities for slot and page sizes.

// Align8 returns n aligned up to the next 8-byte boundary.
//
// Example:
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
//	Align8(16) = 16
func Align8(n int32) int32 {
	return (n + SlotAlignmentMask) & ^int32(SlotAlignmentMask)
}

// IsPowerOfTwo reports whether n is a positive power of two. Page sizes
// supplied by the user are expected to be one.
func IsPowerOfTwo(n int32) bool {
	return n > 0 && n&(n-1) == 0
}
