package dump

import (
	"fmt"
	"unsafe"

	"gonum.org/v1/hdf5"

	"github.com/notargets/eppic/internal/field"
)

// This file isolates the gonum.org/v1/hdf5 cgo-binding calls the rest of
// hdf5_sink.go builds on: scalar writes for the metadata group, and
// dataset creation / hyperslab selection for the data group's 1-D and
// 4-D datasets (spec.md §4.5).

// nativeRealType is the HDF5 storage type matching field.Real, selected
// the same way internal/field/align.go sizes its alignment slack: off
// unsafe.Sizeof, not a hardcoded type, so that flipping field.Real to
// float32 changes the on-disk dataset type along with everything else
// (SPEC_FULL.md §3, §9).
var nativeRealType = func() *hdf5.Datatype {
	if unsafe.Sizeof(field.Real(0)) == 4 {
		return hdf5.T_NATIVE_FLOAT
	}
	return hdf5.T_NATIVE_DOUBLE
}()

func writeScalar(group *hdf5.Group, name string, v field.Real) error {
	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return &IOError{Msg: fmt.Sprintf("dataspace for %q: %v", name, err)}
	}
	defer space.Close()
	ds, err := group.CreateDataset(name, nativeRealType, space)
	if err != nil {
		return &IOError{Msg: fmt.Sprintf("create scalar %q: %v", name, err)}
	}
	defer ds.Close()
	if err := ds.Write(&v); err != nil {
		return &IOError{Msg: fmt.Sprintf("write scalar %q: %v", name, err)}
	}
	return nil
}

func writeScalarUint(group *hdf5.Group, name string, v uint64) error {
	space, err := hdf5.CreateDataspace(hdf5.S_SCALAR)
	if err != nil {
		return &IOError{Msg: fmt.Sprintf("dataspace for %q: %v", name, err)}
	}
	defer space.Close()
	ds, err := group.CreateDataset(name, hdf5.T_NATIVE_UINT64, space)
	if err != nil {
		return &IOError{Msg: fmt.Sprintf("create scalar %q: %v", name, err)}
	}
	defer ds.Close()
	if err := ds.Write(&v); err != nil {
		return &IOError{Msg: fmt.Sprintf("write scalar %q: %v", name, err)}
	}
	return nil
}

// writeVector3 writes dxdydz as a length-3 vector in (x,y,z) order
// (spec.md §6 "Metadata dxdydz is written as a length-3 vector").
func writeVector3(group *hdf5.Group, name string, v [3]field.Real) error {
	space, err := hdf5.CreateSimpleDataspace([]uint{3}, nil)
	if err != nil {
		return &IOError{Msg: fmt.Sprintf("dataspace for %q: %v", name, err)}
	}
	defer space.Close()
	ds, err := group.CreateDataset(name, nativeRealType, space)
	if err != nil {
		return &IOError{Msg: fmt.Sprintf("create vector %q: %v", name, err)}
	}
	defer ds.Close()
	data := v[:]
	if err := ds.Write(&data); err != nil {
		return &IOError{Msg: fmt.Sprintf("write vector %q: %v", name, err)}
	}
	return nil
}

func create1D(group *hdf5.Group, name string, n int) (*hdf5.Dataset, error) {
	space, err := hdf5.CreateSimpleDataspace([]uint{uint(n)}, nil)
	if err != nil {
		return nil, &IOError{Msg: fmt.Sprintf("dataspace for %q: %v", name, err)}
	}
	defer space.Close()
	ds, err := group.CreateDataset(name, nativeRealType, space)
	if err != nil {
		return nil, &IOError{Msg: fmt.Sprintf("create %q: %v", name, err)}
	}
	return ds, nil
}

func create1DUint(group *hdf5.Group, name string, n int) (*hdf5.Dataset, error) {
	space, err := hdf5.CreateSimpleDataspace([]uint{uint(n)}, nil)
	if err != nil {
		return nil, &IOError{Msg: fmt.Sprintf("dataspace for %q: %v", name, err)}
	}
	defer space.Close()
	ds, err := group.CreateDataset(name, hdf5.T_NATIVE_UINT64, space)
	if err != nil {
		return nil, &IOError{Msg: fmt.Sprintf("create %q: %v", name, err)}
	}
	return ds, nil
}

// create4D allocates a dataset of extents (nv.x, nv.y, nv.z, loggedSteps)
// — the time axis innermost, per spec.md §6's axis-ordering contract.
func create4D(group *hdf5.Group, name string, nv [3]int, loggedSteps int) (*hdf5.Dataset, error) {
	dims := []uint{uint(nv[0]), uint(nv[1]), uint(nv[2]), uint(loggedSteps)}
	space, err := hdf5.CreateSimpleDataspace(dims, nil)
	if err != nil {
		return nil, &IOError{Msg: fmt.Sprintf("dataspace for %q: %v", name, err)}
	}
	defer space.Close()
	ds, err := group.CreateDataset(name, nativeRealType, space)
	if err != nil {
		return nil, &IOError{Msg: fmt.Sprintf("create %q: %v", name, err)}
	}
	return ds, nil
}

func writeHyperslabScalar(ds *hdf5.Dataset, index int, v field.Real) error {
	space, err := ds.Space()
	if err != nil {
		return err
	}
	defer space.Close()
	if err := space.SelectHyperslab([]uint{uint(index)}, nil, []uint{1}, nil); err != nil {
		return err
	}
	memSpace, err := hdf5.CreateSimpleDataspace([]uint{1}, nil)
	if err != nil {
		return err
	}
	defer memSpace.Close()
	data := []field.Real{v}
	return ds.WriteSubset(&data, memSpace, space)
}

func writeHyperslabScalarUint(ds *hdf5.Dataset, index int, v uint64) error {
	space, err := ds.Space()
	if err != nil {
		return err
	}
	defer space.Close()
	if err := space.SelectHyperslab([]uint{uint(index)}, nil, []uint{1}, nil); err != nil {
		return err
	}
	memSpace, err := hdf5.CreateSimpleDataspace([]uint{1}, nil)
	if err != nil {
		return err
	}
	defer memSpace.Close()
	data := []uint64{v}
	return ds.WriteSubset(&data, memSpace, space)
}

// writeHyperslab4D writes one full (nv.x, nv.y, nv.z) slab at
// [*, *, *, index] of a 4-D dataset, matching the flat row-major
// (i*ny+j)*nz+k layout of field.Component.Raw() (spec.md §4.2, §4.5).
func writeHyperslab4D(ds *hdf5.Dataset, index int, nv [3]int, data []field.Real) error {
	space, err := ds.Space()
	if err != nil {
		return err
	}
	defer space.Close()
	offset := []uint{0, 0, 0, uint(index)}
	count := []uint{uint(nv[0]), uint(nv[1]), uint(nv[2]), 1}
	if err := space.SelectHyperslab(offset, nil, count, nil); err != nil {
		return err
	}
	memSpace, err := hdf5.CreateSimpleDataspace([]uint{uint(nv[0]), uint(nv[1]), uint(nv[2]), 1}, nil)
	if err != nil {
		return err
	}
	defer memSpace.Close()
	return ds.WriteSubset(&data, memSpace, space)
}
