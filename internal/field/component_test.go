package field

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComponent_RejectsNonPositiveExtent(t *testing.T) {
	_, err := NewComponent(0, 3, 3, 0)
	require.Error(t, err)
	var allocErr *AllocError
	assert.ErrorAs(t, err, &allocErr)
}

func TestComponent_SetAtAddRoundTrip(t *testing.T) {
	c, err := NewComponent(2, 3, 4, 0)
	require.NoError(t, err)

	c.Set(1, 2, 3, 5)
	assert.Equal(t, Real(5), c.At(1, 2, 3))

	c.Add(1, 2, 3, 2.5)
	assert.Equal(t, Real(7.5), c.At(1, 2, 3))
}

// TestComponent_RawLayout verifies the k-fastest row-major layout the Dump
// Sink's hyperslab writer depends on (spec.md §4.2): incrementing k moves
// one element, j moves nz elements, i moves ny*nz elements.
func TestComponent_RawLayout(t *testing.T) {
	nx, ny, nz := 2, 3, 4
	c, err := NewComponent(nx, ny, nz, 0)
	require.NoError(t, err)

	want := 0
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			for k := 0; k < nz; k++ {
				c.Set(i, j, k, Real(want))
				want++
			}
		}
	}
	raw := c.Raw()
	require.Len(t, raw, nx*ny*nz)
	for idx, v := range raw {
		assert.Equal(t, Real(idx), v)
	}
}

func TestComponent_Zero(t *testing.T) {
	c, err := NewComponent(2, 2, 2, 3)
	require.NoError(t, err)
	c.Zero()
	for _, v := range c.Raw() {
		assert.Equal(t, Real(0), v)
	}
}

func TestComponent_Extents(t *testing.T) {
	c, err := NewComponent(5, 6, 7, 0)
	require.NoError(t, err)
	nx, ny, nz := c.Extents()
	assert.Equal(t, 5, nx)
	assert.Equal(t, 6, ny)
	assert.Equal(t, 7, nz)
}

func TestAlignedSlice_Alignment(t *testing.T) {
	c, err := NewComponent(10, 10, 10, 1)
	require.NoError(t, err)
	raw := c.Raw()
	addr := uintptr(unsafe.Pointer(&raw[0]))
	assert.Zero(t, addr%alignment)
	for _, v := range raw {
		assert.Equal(t, Real(1), v)
	}
}
