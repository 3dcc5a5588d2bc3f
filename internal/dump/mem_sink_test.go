package dump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/eppic/internal/field"
)

func TestMemSink_OpenEpochRecordsMetadata(t *testing.T) {
	m := NewMemSink()
	err := m.OpenEpoch(4, [3]int{5, 5, 5}, [3]int{4, 4, 4}, [3]field.Real{1, 2, 3}, 5e-13)
	require.NoError(t, err)
	assert.True(t, m.OpenCalled)
	assert.Equal(t, 4, m.LoggedSteps)
	assert.Equal(t, [3]int{5, 5, 5}, m.NvE)
	assert.Equal(t, [3]int{4, 4, 4}, m.NvH)
	assert.Equal(t, field.Real(5e-13), m.Dt)
	assert.Empty(t, m.Snapshots)
}

func TestMemSink_WriteAppendsSnapshots(t *testing.T) {
	m := NewMemSink()
	require.NoError(t, m.OpenEpoch(2, [3]int{2, 2, 2}, [3]int{2, 2, 2}, [3]field.Real{1, 1, 1}, 1))

	e := &FieldSnapshot{Nx: 2, Ny: 2, Nz: 2}
	h := &FieldSnapshot{Nx: 2, Ny: 2, Nz: 2}
	require.NoError(t, m.Write(0, 0.5, 0, e, h))
	require.NoError(t, m.Write(1, 1.0, 1, e, h))

	require.Len(t, m.Snapshots, 2)
	assert.Equal(t, field.Real(0.5), m.Snapshots[0].Time)
	assert.Equal(t, 1, m.Snapshots[1].Step)

	require.NoError(t, m.CloseEpoch())
	assert.True(t, m.CloseCalled)
}

func TestMemSink_FailWriteAtReturnsIOError(t *testing.T) {
	m := NewMemSink()
	m.FailWriteAt = 1
	require.NoError(t, m.OpenEpoch(3, [3]int{2, 2, 2}, [3]int{2, 2, 2}, [3]field.Real{1, 1, 1}, 1))

	e := &FieldSnapshot{}
	h := &FieldSnapshot{}
	require.NoError(t, m.Write(0, 0, 0, e, h))

	err := m.Write(1, 1, 1, e, h)
	require.Error(t, err)
	var ioErr *IOError
	assert.ErrorAs(t, err, &ioErr)
	assert.Equal(t, 1, ioErr.Step)

	// the failed index is never appended
	require.Len(t, m.Snapshots, 1)
}

func TestSnapshotOf_ProjectsVector3(t *testing.T) {
	v, err := field.NewVector3(2, 3, 4)
	require.NoError(t, err)
	v.X.Set(1, 1, 1, 7)

	snap := SnapshotOf(v)
	assert.Equal(t, 2, snap.Nx)
	assert.Equal(t, 3, snap.Ny)
	assert.Equal(t, 4, snap.Nz)
	// (i,j,k)=(1,1,1) over extents (2,3,4) flattens to (1*3+1)*4+1 = 17.
	assert.Equal(t, field.Real(7), snap.X[17])
}
