// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Heap buffers are aligned to the CPU cache line (golang.org/x/sys/cpu), which
// also satisfies the 8-byte alignment of int64 elements.
//
// # Allocators
//
//   - HeapAllocator: Go heap, reclaimed by the garbage collector
//   - OffHeapAllocator: anonymous mappings, released explicitly by Block.Free
//   - Accounted: charges another allocator against a MemoryBudget
//
// # Size Computation
//
// ByteSize multiplies an element count by an element size and reports
// ErrSizeOverflow instead of wrapping.
package mem
