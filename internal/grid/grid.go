// Package grid implements the Grid Sizer (spec.md §4.1): deriving a
// uniform Yee-lattice voxel spacing and voxel counts from physical box
// lengths, material parameters, and the two sampling requirements.
package grid

import (
	"fmt"
	"math"

	"github.com/notargets/eppic/internal/field"
	"github.com/notargets/eppic/internal/physical"
	"gonum.org/v1/gonum/floats"
)

// GridError reports a lattice-sizing failure: a zero or overflowing voxel
// count (spec.md §7, taxonomy entry 2).
type GridError struct {
	Msg string
}

func (e *GridError) Error() string { return fmt.Sprintf("grid sizing error: %s", e.Msg) }

// Spec is the computed LatticeSpec of spec.md §3: NvH is the H-field
// voxel count per axis, NvE = NvH+1 (E wraps H by one cell on the high
// side of each axis), D is the spacing, DInv its reciprocal.
type Spec struct {
	NvH  [3]int
	NvE  [3]int
	D    [3]field.Real
	DInv [3]field.Real
}

// Inputs is the minimal set of physical parameters the Grid Sizer needs,
// populated by config.Config.GridInputs() — kept as a plain struct rather
// than an interface onto Config so the Grid Sizer stays a pure function
// with no dependency on the Configuration Facade's package.
type Inputs struct {
	Len                 [3]field.Real
	EpR, MuR            field.Real
	MaxFrequency        field.Real
	NumVoxMinWavelength int
	NumVoxMinFeature    int
}

// Size derives the LatticeSpec from the physical inputs in (spec.md
// §4.1, algorithm steps 1-6).
func Size(in Inputs) (Spec, error) {
	var sp Spec

	len3 := in.Len
	epR, muR := in.EpR, in.MuR
	maxFreq := in.MaxFrequency
	nMinWave := in.NumVoxMinWavelength
	nMinFeat := in.NumVoxMinFeature

	// ds_wavelength = c0 / (sqrt(ep_r*mu_r) * num_vox_min_wavelength * max_frequency)
	dsWavelength := physical.C0 / (math.Sqrt(epR*muR) * float64(nMinWave) * maxFreq)

	// ds_feature = min(len.x, len.y, len.z) / num_vox_min_feature
	minLen := math.Min(len3[0], math.Min(len3[1], len3[2]))
	dsFeature := minLen / float64(nMinFeat)

	for _, s := range []float64{dsWavelength, dsFeature} {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return sp, &GridError{Msg: fmt.Sprintf("non-positive or non-finite spatial step (ds_wavelength=%v, ds_feature=%v)", dsWavelength, dsFeature)}
		}
	}
	ds := math.Min(dsWavelength, dsFeature)

	for a := 0; a < 3; a++ {
		nvH := int(math.Ceil(len3[a] / ds))
		if nvH <= 0 {
			return sp, &GridError{Msg: fmt.Sprintf("axis %d resolves to non-positive voxel count", a)}
		}
		sp.NvH[a] = nvH
		sp.NvE[a] = nvH + 1
		sp.D[a] = len3[a] / float64(nvH)
		sp.DInv[a] = 1 / sp.D[a]
	}

	return sp, nil
}

// CFLSumSq returns d_inv.x^2 + d_inv.y^2 + d_inv.z^2 via gonum's dot
// product (self dot), the reduction the Time Controller's CFL bound
// (spec.md §4.4) is built on.
func (sp Spec) CFLSumSq() field.Real {
	d := sp.DInv[:]
	return floats.Dot(d, d)
}
