package fdtd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notargets/eppic/internal/grid"
	"github.com/notargets/eppic/internal/physical"
)

func scenarioALattice(t *testing.T) grid.Spec {
	t.Helper()
	sp, err := grid.Size(grid.Inputs{
		Len:                 [3]float64{1e-3, 1e-3, 1e-3},
		EpR:                 1,
		MuR:                 1,
		MaxFrequency:        15e9,
		NumVoxMinWavelength: 20,
		NumVoxMinFeature:    4,
	})
	require.NoError(t, err)
	return sp
}

// TestEngine_ZeroStateStaysZero covers spec.md §8 Scenario C: with sigma=0
// and an all-zero initial state, 100 steps must leave every field
// component exactly zero.
func TestEngine_ZeroStateStaysZero(t *testing.T) {
	lattice := scenarioALattice(t)
	eng, err := New(lattice, physical.Eps0, physical.Mu0, 0)
	require.NoError(t, err)

	dt := 3e-13
	for i := 0; i < 100; i++ {
		eng.Step(dt)
	}

	for _, v := range eng.E.X.Raw() {
		assert.Equal(t, 0.0, v)
	}
	for _, v := range eng.E.Y.Raw() {
		assert.Equal(t, 0.0, v)
	}
	for _, v := range eng.E.Z.Raw() {
		assert.Equal(t, 0.0, v)
	}
	for _, v := range eng.H.X.Raw() {
		assert.Equal(t, 0.0, v)
	}
	for _, v := range eng.H.Y.Raw() {
		assert.Equal(t, 0.0, v)
	}
	for _, v := range eng.H.Z.Raw() {
		assert.Equal(t, 0.0, v)
	}
}

// TestEngine_PECOuterFacesNeverWritten covers spec.md §8 Scenario F's PEC
// boundary assertion: after seeding an interior Ez cell and stepping, the
// E field's outer faces on every axis remain exactly zero, since updateE*
// only ever writes interior indices.
func TestEngine_PECOuterFacesNeverWritten(t *testing.T) {
	lattice := scenarioALattice(t)
	eng, err := New(lattice, physical.Eps0, physical.Mu0, 0)
	require.NoError(t, err)

	eng.E.Z.Set(2, 2, 2, 1.0)

	dt := 3e-13
	eng.Step(dt)

	nx, ny, nz := eng.E.Z.Extents()
	for _, comp := range []*struct {
		at func(i, j, k int) float64
	}{
		{eng.E.X.At}, {eng.E.Y.At}, {eng.E.Z.At},
	} {
		for i := 0; i < nx; i++ {
			for j := 0; j < ny; j++ {
				for k := 0; k < nz; k++ {
					onFace := i == 0 || j == 0 || k == 0 || i == nx-1 || j == ny-1 || k == nz-1
					if onFace {
						assert.Equal(t, 0.0, comp.at(i, j, k), "face cell (%d,%d,%d) must stay zero", i, j, k)
					}
				}
			}
		}
	}
}

// TestEngine_SeededPulseMatchesStencil covers spec.md §8 Scenario F's
// stencil-value assertion: after seeding Ez[2,2,2]=1.0 and stepping once
// with sigma=0, every H cell adjacent to that seed must equal the
// hand-computed curl contribution from that one nonzero E value.
func TestEngine_SeededPulseMatchesStencil(t *testing.T) {
	lattice := scenarioALattice(t)
	eng, err := New(lattice, physical.Eps0, physical.Mu0, 0)
	require.NoError(t, err)

	eng.E.Z.Set(2, 2, 2, 1.0)

	dt := 3e-13
	d := lattice.DInv
	hxa := dt * d[0] / physical.Mu0
	hya := dt * d[1] / physical.Mu0

	eng.Step(dt)

	// Hx[i,j,k] += -hya*(Ez[i,j+1,k]-Ez[i,j,k]); the only nonzero Ez is at
	// (2,2,2), so Hx[2,1,2] (reads Ez[2,2,2]-Ez[2,1,2]=1) and Hx[2,2,2]
	// (reads Ez[2,3,2]-Ez[2,2,2]=-1) are the only cells it can perturb.
	assert.InDelta(t, -hya*1, eng.H.X.At(2, 1, 2), 1e-20)
	assert.InDelta(t, -hya*-1, eng.H.X.At(2, 2, 2), 1e-20)

	// Hy[i,j,k] += hxa*(Ez[i+1,j,k]-Ez[i,j,k]); symmetric argument on i.
	assert.InDelta(t, hxa*1, eng.H.Y.At(1, 2, 2), 1e-20)
	assert.InDelta(t, hxa*-1, eng.H.Y.At(2, 2, 2), 1e-20)

	// Hz never reads Ez, so it must be untouched by this seed.
	for _, v := range eng.H.Z.Raw() {
		assert.Equal(t, 0.0, v)
	}
}

func TestEngine_StepAdvancesTimeByFullDt(t *testing.T) {
	lattice := scenarioALattice(t)
	eng, err := New(lattice, physical.Eps0, physical.Mu0, 0)
	require.NoError(t, err)

	dt := 3e-13
	eng.Step(dt)
	assert.InDelta(t, dt, eng.Time, 1e-25)
	eng.Step(dt)
	assert.InDelta(t, 2*dt, eng.Time, 1e-25)
}
