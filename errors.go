package vecsum

import "errors"

var (
	// ErrInvalidLength is returned when a vector is created with a negative length.
	ErrInvalidLength = errors.New("vecsum: invalid length")

	// ErrSizeOverflow is returned when the byte size of the element buffer
	// cannot be represented.
	ErrSizeOverflow = errors.New("vecsum: buffer size overflow")

	// ErrAllocationFailed is returned when the header or element buffer could
	// not be allocated (memory limit reached, or the allocator refused).
	ErrAllocationFailed = errors.New("vecsum: allocation failed")
)
