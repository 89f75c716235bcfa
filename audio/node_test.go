package audio

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simukka/soundscape/common"
)

func TestOscillator_PeriodMatchesFrequency(t *testing.T) {
	// 441 Hz at 44100 Hz is exactly 100 samples per cycle.
	o := newOscillator(44100, 0, WaveSine, 441, 0)
	out := make([]float64, 300)
	for i := range out {
		out[i] = o.Sample()
	}
	for i := 0; i < 200; i++ {
		assert.InDelta(t, out[i], out[i+100], 1e-9)
	}
}

func TestOscillator_ShapesStayInRange(t *testing.T) {
	for _, shape := range []Waveform{WaveSine, WaveSawtooth, WaveTriangle, WaveSquare} {
		t.Run(shape.String(), func(t *testing.T) {
			o := newOscillator(44100, 0, shape, 220, 0)
			for i := 0; i < 2000; i++ {
				v := o.Sample()
				assert.GreaterOrEqual(t, v, -1.0)
				assert.LessOrEqual(t, v, 1.0)
			}
		})
	}
}

func TestOscillator_DetuneShiftsFrequency(t *testing.T) {
	// +1200 cents is one octave: the detuned oscillator completes two
	// cycles for every cycle of the plain one.
	plain := newOscillator(44100, 0, WaveSine, 441, 0)
	up := newOscillator(44100, 0, WaveSine, 441, 1200)
	for i := 0; i < 99; i++ {
		plain.Sample()
		up.Sample()
	}
	assert.InDelta(t, plain.Sample(), up.Sample(), 1e-9, "both back at phase zero after 100 samples")
}

func TestShaper_ShapeOfTransferCurve(t *testing.T) {
	s := shaper{k: 400}
	assert.Zero(t, s.Process(0))
	assert.InDelta(t, -s.Process(0.5), s.Process(-0.5), 1e-12, "odd symmetry")

	// Saturates: doubling the input far from zero must less than double
	// the output.
	assert.Less(t, s.Process(1.0), 2*s.Process(0.5))
	assert.Greater(t, s.Process(1.0), s.Process(0.5))
}

func TestDelayLine_DelaysByConfiguredTime(t *testing.T) {
	d := newDelayLine(1000, 0.01, 0.1) // 10 samples
	for i := 0; i < 30; i++ {
		got := d.read()
		d.write(float64(i))
		if i < 10 {
			assert.Zero(t, got)
		} else {
			assert.Equal(t, float64(i-10), got)
		}
	}
}

func TestDelayLine_ClampsToMax(t *testing.T) {
	d := newDelayLine(1000, 5, 0.05)
	assert.Equal(t, 50, d.delay)
}

func TestNoiseBuffer_DeterministicPerSeed(t *testing.T) {
	a := newNoiseBuffer(common.NewSeededRNG(7), 1000, 0.5, 0.8)
	b := newNoiseBuffer(common.NewSeededRNG(7), 1000, 0.5, 0.8)
	assert.Equal(t, a, b)

	c := newNoiseBuffer(common.NewSeededRNG(8), 1000, 0.5, 0.8)
	assert.NotEqual(t, a, c)
}

func TestNoiseBuffer_BoundedByAmp(t *testing.T) {
	buf := newNoiseBuffer(common.NewSeededRNG(1), 1000, 1, 0.8)
	assert.Len(t, buf, 1000)
	for _, v := range buf {
		assert.LessOrEqual(t, math.Abs(v), 0.8)
	}
}
