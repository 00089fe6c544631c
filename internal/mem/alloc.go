// Package mem provides memory allocation utilities.
package mem

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"

	"golang.org/x/sys/cpu"

	"github.com/hupe1980/vecsum/internal/conv"
	"github.com/hupe1980/vecsum/internal/mmap"
)

// Alignment is the byte alignment of heap buffers: one cache line on the
// target CPU. It is a multiple of 8, so every buffer can be viewed as []int64.
const Alignment = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// Int64Size is the width of one vector element in bytes.
const Int64Size = 8

// MaxAllocSize is the largest byte size this package will try to allocate.
// Requests above it are reported as ErrSizeOverflow.
const MaxAllocSize = math.MaxInt - Alignment

var (
	// ErrSizeOverflow is returned when a byte size cannot be represented.
	ErrSizeOverflow = errors.New("mem: allocation size overflow")
	// ErrAllocationRefused is returned when the runtime cannot satisfy a request.
	ErrAllocationRefused = errors.New("mem: allocation refused")
)

// ByteSize returns count*elemSize as an int, or ErrSizeOverflow if the
// product is negative, overflows, or exceeds MaxAllocSize.
func ByteSize(count int64, elemSize int) (int, error) {
	if count < 0 || elemSize <= 0 {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrSizeOverflow, count, elemSize)
	}
	n, err := conv.Int64ToInt(count)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSizeOverflow, err)
	}
	un, _ := conv.IntToUint64(n)
	ue, _ := conv.IntToUint64(elemSize)
	hi, lo := bits.Mul64(un, ue)
	if hi != 0 || lo > uint64(MaxAllocSize) {
		return 0, fmt.Errorf("%w: %d elements of %d bytes", ErrSizeOverflow, count, elemSize)
	}
	return conv.Uint64ToInt(lo)
}

// AllocAligned allocates a byte slice of the given size aligned to Alignment.
// The returned slice is guaranteed to start at a memory address divisible by Alignment.
//
// Note: This function allocates slightly more memory than requested to ensure alignment.
// The underlying array is kept alive by the returned slice.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := (Alignment - int(addr&uintptr(Alignment-1))) & (Alignment - 1)

	return buf[offset : offset+size : offset+size]
}

// Int64s reinterprets an 8-byte aligned byte slice as []int64.
// Trailing bytes that do not form a whole element are ignored.
func Int64s(b []byte) []int64 {
	n := len(b) / Int64Size
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*int64)(unsafe.Pointer(&b[0])), n) //nolint:gosec // callers pass 8-byte aligned buffers
}

// Block is an owned buffer handed out by an Allocator.
// Free releases it exactly once; later calls are no-ops.
type Block struct {
	data  []byte
	free  func() error
	freed bool
}

// Bytes returns the block's memory, or nil after Free.
func (b *Block) Bytes() []byte {
	if b.freed {
		return nil
	}
	return b.data
}

// Size returns the size of the block in bytes.
func (b *Block) Size() int {
	return len(b.data)
}

// Free releases the block.
func (b *Block) Free() error {
	if b.freed {
		return nil
	}
	b.freed = true
	b.data = nil
	if b.free != nil {
		return b.free()
	}
	return nil
}

// Allocator hands out zero-filled, 8-byte aligned blocks.
type Allocator interface {
	Allocate(size int) (*Block, error)
}

// HeapAllocator allocates cache-line aligned blocks on the Go heap.
// Free drops the reference and leaves reclamation to the garbage collector.
type HeapAllocator struct{}

// Allocate implements Allocator. Sizes beyond what the runtime can address
// are reported as ErrAllocationRefused instead of panicking.
func (HeapAllocator) Allocate(size int) (blk *Block, err error) {
	if size <= 0 || size > MaxAllocSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, size)
	}
	defer func() {
		if r := recover(); r != nil {
			blk, err = nil, fmt.Errorf("%w: %d bytes: %v", ErrAllocationRefused, size, r)
		}
	}()
	return &Block{data: AllocAligned(size)}, nil
}

// OffHeapAllocator allocates blocks from anonymous memory mappings outside the
// Go heap. Free unmaps the memory; any view into it is invalid afterwards.
type OffHeapAllocator struct{}

// Allocate implements Allocator.
func (OffHeapAllocator) Allocate(size int) (*Block, error) {
	if size <= 0 || size > MaxAllocSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrSizeOverflow, size)
	}
	m, err := mmap.MapAnon(size)
	if err != nil {
		return nil, err
	}
	_ = m.Advise(mmap.AccessSequential)
	return &Block{data: m.Bytes(), free: m.Close}, nil
}

// MemoryBudget accounts for allocated bytes.
// resource.Controller satisfies it.
type MemoryBudget interface {
	AcquireMemory(bytes int64) error
	ReleaseMemory(bytes int64)
}

// Accounted charges every allocation of Base against Budget before it is made
// and refunds it when the block is freed or the allocation fails.
type Accounted struct {
	Base   Allocator
	Budget MemoryBudget
}

// Allocate implements Allocator.
func (a Accounted) Allocate(size int) (*Block, error) {
	if a.Budget == nil {
		return a.Base.Allocate(size)
	}

	charge := int64(size)
	if err := a.Budget.AcquireMemory(charge); err != nil {
		return nil, err
	}

	blk, err := a.Base.Allocate(size)
	if err != nil {
		a.Budget.ReleaseMemory(charge)
		return nil, err
	}

	inner := blk.free
	blk.free = func() error {
		a.Budget.ReleaseMemory(charge)
		if inner != nil {
			return inner()
		}
		return nil
	}
	return blk, nil
}
