package vecsum

import (
	"fmt"
	"time"
	"unsafe"

	"github.com/hupe1980/vecsum/internal/mem"
	"github.com/hupe1980/vecsum/resource"
)

// headerSize is the number of bytes charged for a Vector header.
const headerSize = int64(unsafe.Sizeof(Vector{}))

// emptySlot backs the start pointer of zero-length vectors. It is never read
// or written through a View.
var emptySlot int64

// Vector is an owning handle to a fixed-length buffer of int64 values.
//
// A Vector is not safe for concurrent use. Close must be called exactly once
// the vector is no longer needed; it is a no-op on later calls.
type Vector struct {
	length  int64
	data    unsafe.Pointer // first element, or &emptySlot
	elems   []int64
	block   *mem.Block
	offHeap bool
	closed  bool

	controller *resource.Controller
	metrics    MetricsCollector
	logger     *Logger
}

// New allocates a vector of the given length with all elements zero.
//
// The header is charged first and the element buffer second (only when
// length > 0). If the buffer cannot be sized or allocated, the header is
// released again before the error is returned, so a failed New holds no
// memory.
func New(length int64, optFns ...Option) (*Vector, error) {
	o := applyOptions(optFns)
	start := time.Now()

	v, bytes, err := newVector(length, o)
	o.metricsCollector.RecordAlloc(bytes, time.Since(start), err)
	o.logger.LogCreate(length, int(bytes), v != nil && v.offHeap, err)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func newVector(length int64, o *options) (*Vector, int64, error) {
	if err := o.controller.AcquireMemory(headerSize); err != nil {
		return nil, headerSize, fmt.Errorf("%w: header: %w", ErrAllocationFailed, err)
	}

	if length < 0 {
		o.controller.ReleaseMemory(headerSize)
		return nil, headerSize, fmt.Errorf("%w: %d", ErrInvalidLength, length)
	}

	v := &Vector{
		length:     length,
		data:       unsafe.Pointer(&emptySlot),
		controller: o.controller,
		metrics:    o.metricsCollector,
		logger:     o.logger,
	}

	if length == 0 {
		return v, headerSize, nil
	}

	size, err := mem.ByteSize(length, mem.Int64Size)
	if err != nil {
		o.controller.ReleaseMemory(headerSize)
		return nil, headerSize, fmt.Errorf("%w: %w", ErrSizeOverflow, err)
	}

	blk, err := mem.Accounted{Base: o.allocator, Budget: o.controller}.Allocate(size)
	if err != nil {
		o.controller.ReleaseMemory(headerSize)
		return nil, headerSize + int64(size), fmt.Errorf("%w: %d bytes: %w", ErrAllocationFailed, size, err)
	}

	v.block = blk
	v.elems = mem.Int64s(blk.Bytes())[:length]
	v.data = unsafe.Pointer(&v.elems[0])
	_, v.offHeap = o.allocator.(mem.OffHeapAllocator)

	return v, headerSize + int64(size), nil
}

// Close releases the element buffer and then the header. After Close the
// vector reports length 0 and every checked access fails. Views obtained
// from Start must not be used after Close.
func (v *Vector) Close() error {
	if v == nil || v.closed {
		return nil
	}
	v.closed = true

	length := v.length
	bytes := headerSize

	var err error
	if v.block != nil {
		bytes += int64(v.block.Size())
		err = v.block.Free()
		v.block = nil
	}

	v.length = 0
	v.elems = nil
	v.data = unsafe.Pointer(&emptySlot)

	v.controller.ReleaseMemory(headerSize)
	v.metrics.RecordFree(bytes)
	v.logger.LogClose(length, int(bytes), err)

	return err
}

// Len returns the number of elements.
func (v *Vector) Len() int64 {
	return v.length
}

// GetElement stores the element at index in dest and reports true.
// If index is outside [0, Len()) dest is left untouched and false is returned.
func (v *Vector) GetElement(index int64, dest *int64) bool {
	if index < 0 || index >= v.length {
		return false
	}
	*dest = v.elems[index]
	return true
}

// Get returns the element at index and whether index was in range.
func (v *Vector) Get(index int64) (int64, bool) {
	var val int64
	ok := v.GetElement(index, &val)
	return val, ok
}

// SetElement stores val at index and reports true.
// If index is outside [0, Len()) nothing is written and false is returned.
func (v *Vector) SetElement(index, val int64) bool {
	if index < 0 || index >= v.length {
		return false
	}
	v.elems[index] = val
	return true
}

// Values returns a copy of the elements.
func (v *Vector) Values() []int64 {
	out := make([]int64, v.length)
	copy(out, v.elems)
	return out
}

// Start returns an unchecked view of the first element. For a zero-length
// vector the view points at a placeholder that must not be dereferenced.
func (v *Vector) Start() View {
	return View{base: v.data}
}
