// Package mmap provides anonymous memory mappings for off-heap buffers.
//
// # Usage
//
//	m, err := mmap.MapAnon(4096)
//	if err != nil { ... }
//	defer m.Close()
//
//	buf := m.Bytes() // read-write, zero-filled, page aligned
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with MAP_ANON|MAP_PRIVATE, madvise(2) for hints
//   - Windows: VirtualAlloc/VirtualFree (advice is a no-op)
//
// # Lifetime
//
// Close is idempotent. The slice returned by Bytes is invalid after Close;
// touching it afterwards faults.
package mmap
