package audio

import (
	"math"

	"github.com/simukka/soundscape/common"
)

// Waveform identifies an oscillator shape.
type Waveform int

const (
	WaveSine Waveform = iota
	WaveSawtooth
	WaveTriangle
	WaveSquare
)

func (w Waveform) String() string {
	switch w {
	case WaveSine:
		return "Sine"
	case WaveSawtooth:
		return "Sawtooth"
	case WaveTriangle:
		return "Triangle"
	case WaveSquare:
		return "Square"
	default:
		return "Unknown"
	}
}

// Oscillator is a phase-accumulating tone generator whose frequency is an
// automatable Param. Detune is fixed per oscillator, in cents.
type Oscillator struct {
	Shape Waveform
	Freq  *Param

	detuneRatio float64
	sr          float64
	phase       float64
}

func newOscillator(sampleRate, now float64, shape Waveform, freqHz, detuneCents float64) *Oscillator {
	return &Oscillator{
		Shape:       shape,
		Freq:        newParam(sampleRate, now, freqHz),
		detuneRatio: math.Pow(2, detuneCents/1200),
		sr:          sampleRate,
	}
}

// Sample advances the oscillator one frame and returns the output in [-1, 1].
func (o *Oscillator) Sample() float64 {
	f := o.Freq.Tick() * o.detuneRatio
	o.phase += f / o.sr
	if o.phase >= 1 {
		o.phase -= math.Floor(o.phase)
	}
	switch o.Shape {
	case WaveSawtooth:
		return 2*o.phase - 1
	case WaveTriangle:
		if o.phase < 0.5 {
			return 4*o.phase - 1
		}
		return 3 - 4*o.phase
	case WaveSquare:
		if o.phase < 0.5 {
			return 1
		}
		return -1
	default:
		return math.Sin(2 * math.Pi * o.phase)
	}
}

// shaper applies the classic soft-saturation transfer curve
// (3+k)*x*20*(pi/180) / (pi + k*|x|), parametrized by drive k.
type shaper struct {
	k float64
}

func (s shaper) Process(x float64) float64 {
	const deg = math.Pi / 180
	return (3 + s.k) * x * 20 * deg / (math.Pi + s.k*math.Abs(x))
}

// delayLine is a fixed-tap circular delay buffer.
type delayLine struct {
	buf   []float64
	pos   int
	delay int
}

func newDelayLine(sampleRate, delaySec, maxSec float64) *delayLine {
	if delaySec > maxSec {
		delaySec = maxSec
	}
	n := int(maxSec * sampleRate)
	d := int(delaySec * sampleRate)
	if d < 1 {
		d = 1
	}
	if n < d {
		n = d
	}
	return &delayLine{buf: make([]float64, n), delay: d}
}

// read returns the sample written delay frames ago.
func (d *delayLine) read() float64 {
	i := d.pos - d.delay
	if i < 0 {
		i += len(d.buf)
	}
	return d.buf[i]
}

// write stores x and advances the write head one frame.
func (d *delayLine) write(x float64) {
	d.buf[d.pos] = x
	d.pos++
	if d.pos >= len(d.buf) {
		d.pos = 0
	}
}

// newNoiseBuffer fills a buffer of seconds*sampleRate white-noise frames
// scaled by amp, drawn from the session RNG.
func newNoiseBuffer(rng *common.SeededRNG, sampleRate, seconds, amp float64) []float64 {
	buf := make([]float64, int(seconds*sampleRate))
	for i := range buf {
		buf[i] = (rng.Random()*2 - 1) * amp
	}
	return buf
}
