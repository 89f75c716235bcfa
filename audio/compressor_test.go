package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompressor_ShippedDefaultsAreValid(t *testing.T) {
	comp, err := newCompressor(&Defaults)
	require.NoError(t, err)
	require.NotNil(t, comp)
}

func TestCompressor_AttenuatesLoudSignal(t *testing.T) {
	comp, err := newCompressor(&Defaults)
	require.NoError(t, err)

	// A sustained near-full-scale input sits ~23 dB over the -24 dB
	// threshold; at 3:1 the settled output must be well under the input.
	var out float64
	for i := 0; i < int(Defaults.SampleRate/2); i++ {
		out = comp.ProcessSample(0.9)
	}
	assert.Less(t, math.Abs(out), 0.5)
	assert.Greater(t, math.Abs(out), 0.01, "compression, not gating")
}

func TestCompressor_QuietSignalPassesThrough(t *testing.T) {
	comp, err := newCompressor(&Defaults)
	require.NoError(t, err)

	// -40 dB is below the knee entirely; with makeup gain off the
	// compressor is transparent there.
	var out float64
	for i := 0; i < int(Defaults.SampleRate/2); i++ {
		out = comp.ProcessSample(0.01)
	}
	assert.InDelta(t, 0.01, out, 0.002)
}

func TestCompressor_SilenceStaysSilent(t *testing.T) {
	comp, err := newCompressor(&Defaults)
	require.NoError(t, err)
	for i := 0; i < 10000; i++ {
		assert.InDelta(t, 0.0, comp.ProcessSample(0), 1e-9)
	}
}

func TestCompressor_LoudOutputStaysBelowLoudInput(t *testing.T) {
	comp, err := newCompressor(&Defaults)
	require.NoError(t, err)

	// Alternating-sign drive keeps the detector busy; every settled
	// output magnitude stays under the input magnitude.
	sign := 1.0
	for i := 0; i < int(Defaults.SampleRate); i++ {
		out := comp.ProcessSample(0.8 * sign)
		if i > int(Defaults.SampleRate/4) {
			assert.Less(t, math.Abs(out), 0.8)
		}
		sign = -sign
	}
}
