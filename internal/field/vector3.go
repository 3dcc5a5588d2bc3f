package field

// Vector3 is a vector field: three Components sharing one set of extents,
// grounded on original_source/src/fields/vector.h's Vector3<T> of three
// Scalar<T> buffers, and on the teacher's flat raw-contiguous Matrix
// backing (utils/matrix.go).
type Vector3 struct {
	X, Y, Z *Component
}

// NewVector3 allocates a Vector3 with all three components sized
// (nx,ny,nz) and zero-initialized.
func NewVector3(nx, ny, nz int) (*Vector3, error) {
	x, err := NewComponent(nx, ny, nz, 0)
	if err != nil {
		return nil, err
	}
	y, err := NewComponent(nx, ny, nz, 0)
	if err != nil {
		return nil, err
	}
	z, err := NewComponent(nx, ny, nz, 0)
	if err != nil {
		return nil, err
	}
	return &Vector3{X: x, Y: y, Z: z}, nil
}

// Extents returns the shared (nx,ny,nz) of all three components.
func (v *Vector3) Extents() (nx, ny, nz int) { return v.X.Extents() }

// Zero resets every component of every axis to zero.
func (v *Vector3) Zero() {
	v.X.Zero()
	v.Y.Zero()
	v.Z.Zero()
}
