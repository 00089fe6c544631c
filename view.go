package vecsum

import (
	"unsafe"

	"github.com/hupe1980/vecsum/internal/mem"
)

// View is a borrowed, unchecked window onto a Vector's elements.
//
// Contract: callers only pass indices in [0, Len()) of the Vector the view
// came from, and only while that Vector is open. Nothing is verified; an
// index outside that range reads or writes arbitrary memory.
type View struct {
	base unsafe.Pointer
}

// At returns element i without a bounds check.
func (w View) At(i int64) int64 {
	return *(*int64)(unsafe.Add(w.base, i*mem.Int64Size))
}

// Set stores val at element i without a bounds check.
func (w View) Set(i, val int64) {
	*(*int64)(unsafe.Add(w.base, i*mem.Int64Size)) = val
}

// Pointer returns the address of element 0. It is never nil.
func (w View) Pointer() unsafe.Pointer {
	return w.base
}
