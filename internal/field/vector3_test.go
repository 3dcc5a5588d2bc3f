package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector3_SharedExtents(t *testing.T) {
	v, err := NewVector3(3, 4, 5)
	require.NoError(t, err)

	nx, ny, nz := v.Extents()
	assert.Equal(t, 3, nx)
	assert.Equal(t, 4, ny)
	assert.Equal(t, 5, nz)

	xnx, xny, xnz := v.X.Extents()
	assert.Equal(t, nx, xnx)
	assert.Equal(t, ny, xny)
	assert.Equal(t, nz, xnz)
}

func TestNewVector3_ZeroInitialized(t *testing.T) {
	v, err := NewVector3(2, 2, 2)
	require.NoError(t, err)
	for _, c := range []*Component{v.X, v.Y, v.Z} {
		for _, val := range c.Raw() {
			assert.Equal(t, Real(0), val)
		}
	}
}

func TestVector3_Zero(t *testing.T) {
	v, err := NewVector3(2, 2, 2)
	require.NoError(t, err)
	v.X.Set(0, 0, 0, 9)
	v.Y.Set(1, 1, 1, 4)
	v.Zero()
	for _, c := range []*Component{v.X, v.Y, v.Z} {
		for _, val := range c.Raw() {
			assert.Equal(t, Real(0), val)
		}
	}
}
