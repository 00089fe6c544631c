//go:build unix

package mmap

import "golang.org/x/sys/unix"

func osMapAnon(size int) ([]byte, func([]byte) error, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, nil, err
	}
	return data, unix.Munmap, nil
}

func unixAdvice(pattern AccessPattern) int {
	switch pattern {
	case AccessSequential:
		return unix.MADV_SEQUENTIAL
	case AccessRandom:
		return unix.MADV_RANDOM
	case AccessWillNeed:
		return unix.MADV_WILLNEED
	case AccessDontNeed:
		return unix.MADV_DONTNEED
	default:
		return unix.MADV_NORMAL
	}
}

func osAdvise(data []byte, pattern AccessPattern) error {
	if len(data) == 0 {
		return nil
	}
	// Advice is a hint; EINVAL (unsupported advice or unaligned range) is ignored.
	if err := unix.Madvise(data, unixAdvice(pattern)); err != nil && err != unix.EINVAL {
		return err
	}
	return nil
}
