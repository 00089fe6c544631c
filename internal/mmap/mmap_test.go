package mmap

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapAnon_ReadWriteClose(t *testing.T) {
	m, err := MapAnon(4096)
	require.NoError(t, err)

	buf := m.Bytes()
	require.Len(t, buf, 4096)
	assert.Equal(t, 4096, m.Size())

	// Anonymous mappings are zero-filled.
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d not zero: %d", i, b)
		}
	}

	buf[0] = 0xAB
	buf[4095] = 0xCD
	assert.Equal(t, byte(0xAB), m.Bytes()[0])
	assert.Equal(t, byte(0xCD), m.Bytes()[4095])

	// Page aligned, which implies 8-byte alignment for int64 views.
	assert.Zero(t, uintptr(unsafe.Pointer(&buf[0]))%8)

	require.NoError(t, m.Advise(AccessSequential))

	require.NoError(t, m.Close())
	assert.True(t, m.Closed())
	assert.Nil(t, m.Bytes())
	assert.ErrorIs(t, m.Advise(AccessRandom), ErrClosed)

	// Idempotent.
	assert.NoError(t, m.Close())
}

func TestMapAnon_InvalidSize(t *testing.T) {
	for _, size := range []int{0, -1} {
		m, err := MapAnon(size)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestMapAnon_Advise(t *testing.T) {
	m, err := MapAnon(1 << 16)
	require.NoError(t, err)
	defer m.Close()

	for _, p := range []AccessPattern{AccessDefault, AccessSequential, AccessRandom, AccessWillNeed, AccessDontNeed} {
		assert.NoError(t, m.Advise(p))
	}
}
