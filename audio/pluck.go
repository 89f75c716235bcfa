package audio

import (
	"math"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"

	"github.com/simukka/soundscape/common"
)

// pluckWaveforms are the two timbres plucks alternate between at random.
var pluckWaveforms = []Waveform{WaveSquare, WaveSawtooth}

// PluckLayer emits sparse, short, dissonant high-register transients. Every
// trigger rolls waveform, octave, and interval from the injected RNG and
// spawns an independent self-disposing voice.
type PluckLayer struct {
	cfg    *Config
	rng    *common.SeededRNG
	voices []*pluckVoice
}

type pluckVoice struct {
	osc   *Oscillator
	hp    *biquad.Section
	env   *Param
	endAt float64
}

func newPluckLayer(cfg *Config, rng *common.SeededRNG) *PluckLayer {
	return &PluckLayer{cfg: cfg, rng: rng}
}

// Trigger fires one pluck at the given audio time.
func (l *PluckLayer) Trigger(now, tension float64) {
	c := l.cfg

	shape := pluckWaveforms[l.rng.RandomInt(0, len(pluckWaveforms))]
	octave := l.rng.RandomInt(0, c.PluckOctaves)
	semi := c.PluckSemitones[l.rng.RandomInt(0, len(c.PluckSemitones))]
	freq := c.PluckBaseHz * math.Pow(2, float64(octave)) * math.Pow(2, float64(semi)/12)

	peak := Scale(tension, 0, 100, c.PluckPeakMin, c.PluckPeakMax)
	decay := Scale(tension, 0, 100, c.PluckDecayMaxS, c.PluckDecayMinS)

	env := newParam(c.SampleRate, now, 0)
	env.LinearRampAt(peak, now, now+c.PluckRiseS)
	env.ExpRampAt(0, now+c.PluckRiseS, now+c.PluckRiseS+decay)

	l.voices = append(l.voices, &pluckVoice{
		osc:   newOscillator(c.SampleRate, now, shape, freq, 0),
		hp:    biquad.NewSection(design.Highpass(c.PluckHighpassHz, c.PluckHighpassQ, c.SampleRate)),
		env:   env,
		endAt: now + c.PluckRiseS + decay,
	})
}

// Sample renders one frame, mixing live voices and discarding finished ones.
func (l *PluckLayer) Sample(now float64) float64 {
	sum := 0.0
	for i := 0; i < len(l.voices); i++ {
		v := l.voices[i]
		if now >= v.endAt {
			l.voices = append(l.voices[:i], l.voices[i+1:]...)
			i--
			continue
		}
		x := v.hp.ProcessSample(v.osc.Sample())
		sum += x * v.env.Tick()
	}
	return sum
}

func (l *PluckLayer) activeVoices() int { return len(l.voices) }
