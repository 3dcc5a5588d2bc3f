package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioAInputs reproduces spec.md §8 Scenario A's literal inputs.
func scenarioAInputs() Inputs {
	return Inputs{
		Len:                 [3]float64{1e-3, 1e-3, 1e-3},
		EpR:                 1,
		MuR:                 1,
		MaxFrequency:        15e9,
		NumVoxMinWavelength: 20,
		NumVoxMinFeature:    4,
	}
}

func TestSize_ScenarioA(t *testing.T) {
	sp, err := Size(scenarioAInputs())
	require.NoError(t, err)

	assert.Equal(t, [3]int{4, 4, 4}, sp.NvH)
	assert.Equal(t, [3]int{5, 5, 5}, sp.NvE)
	for a := 0; a < 3; a++ {
		assert.InDelta(t, 2.5e-4, sp.D[a], 1e-9)
		assert.InDelta(t, 4000.0, sp.DInv[a], 1e-3)
	}
}

func TestSize_RejectsNonPositiveDs(t *testing.T) {
	in := scenarioAInputs()
	in.MaxFrequency = 0
	_, err := Size(in)
	require.Error(t, err)
	var gridErr *GridError
	assert.ErrorAs(t, err, &gridErr)
}

// TestSize_Monotonicity checks property 1 of spec.md §8: increasing
// max_frequency, num_vox_min_wavelength, or num_vox_min_feature is a
// monotone non-decreasing function on each component of nv_h.
func TestSize_Monotonicity(t *testing.T) {
	base := scenarioAInputs()
	spBase, err := Size(base)
	require.NoError(t, err)

	higherFreq := base
	higherFreq.MaxFrequency *= 2
	spFreq, err := Size(higherFreq)
	require.NoError(t, err)
	for a := 0; a < 3; a++ {
		assert.GreaterOrEqual(t, spFreq.NvH[a], spBase.NvH[a])
	}

	higherWave := base
	higherWave.NumVoxMinWavelength *= 2
	spWave, err := Size(higherWave)
	require.NoError(t, err)
	for a := 0; a < 3; a++ {
		assert.GreaterOrEqual(t, spWave.NvH[a], spBase.NvH[a])
	}

	higherFeat := base
	higherFeat.NumVoxMinFeature *= 2
	spFeat, err := Size(higherFeat)
	require.NoError(t, err)
	for a := 0; a < 3; a++ {
		assert.GreaterOrEqual(t, spFeat.NvH[a], spBase.NvH[a])
	}
}

func TestSpec_CFLSumSq(t *testing.T) {
	sp, err := Size(scenarioAInputs())
	require.NoError(t, err)
	// d_inv = 4000 on every axis -> sum of squares = 3 * 4000^2
	assert.InDelta(t, 3*4000.0*4000.0, sp.CFLSumSq(), 1.0)
}
