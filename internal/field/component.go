package field

import "fmt"

// AllocError reports a failure to size or allocate a field component
// (spec.md §7, taxonomy entry 3).
type AllocError struct {
	Msg string
}

func (e *AllocError) Error() string { return fmt.Sprintf("field alloc error: %s", e.Msg) }

// Component is one scalar component of a vector field: a flat,
// 64-byte-aligned, row-major (slowest axis first) contiguous buffer of
// size Nx*Ny*Nz, addressed by (i,j,k) with k the fastest-varying axis
// (SPEC_FULL.md §3, spec.md §4.2).
type Component struct {
	nx, ny, nz int
	data       []Real
}

// NewComponent allocates a Component with extents (nx,ny,nz), every
// element initialized to fill.
func NewComponent(nx, ny, nz int, fill Real) (*Component, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, &AllocError{Msg: fmt.Sprintf("non-positive extent (%d,%d,%d)", nx, ny, nz)}
	}
	n := nx * ny * nz
	if n/nx/ny != nz {
		return nil, &AllocError{Msg: fmt.Sprintf("voxel count overflow for extent (%d,%d,%d)", nx, ny, nz)}
	}
	return &Component{nx: nx, ny: ny, nz: nz, data: alignedSlice(n, fill)}, nil
}

// Extents returns (nx, ny, nz).
func (c *Component) Extents() (nx, ny, nz int) { return c.nx, c.ny, c.nz }

// idx computes the flat offset for (i,j,k): i advances by ny*nz, j by nz,
// k by 1 (spec.md §4.2).
func (c *Component) idx(i, j, k int) int { return (i*c.ny+j)*c.nz + k }

// At returns the element at (i,j,k).
func (c *Component) At(i, j, k int) Real { return c.data[c.idx(i, j, k)] }

// Set writes the element at (i,j,k).
func (c *Component) Set(i, j, k int, v Real) { c.data[c.idx(i, j, k)] = v }

// Add accumulates v into the element at (i,j,k).
func (c *Component) Add(i, j, k int, v Real) { c.data[c.idx(i, j, k)] += v }

// Raw returns the contiguous backing buffer, ordered so that incrementing
// k advances by one element, j by nz elements, i by ny*nz elements — the
// layout the Dump Sink hyperslab writer depends on (spec.md §4.2, §4.5).
func (c *Component) Raw() []Real { return c.data }

// Zero resets every element to zero without reallocating.
func (c *Component) Zero() {
	for i := range c.data {
		c.data[i] = 0
	}
}
