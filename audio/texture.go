package audio

import (
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"

	"github.com/simukka/soundscape/common"
)

// TextureLayer produces atmospheric noise swells. The white-noise source
// buffer is generated once at construction and shared by every trigger;
// each trigger spins up an independent one-shot voice with its own
// play-head, bandpass, and envelope, so overlapping swells never interfere.
type TextureLayer struct {
	cfg    *Config
	rng    *common.SeededRNG
	noise  []float64
	voices []*textureVoice
}

type textureVoice struct {
	buf    []float64
	pos    int
	center float64
	hp     *biquad.Section
	lp     *biquad.Section
	env    *Param
	endAt  float64
}

func newTextureLayer(cfg *Config, rng *common.SeededRNG) *TextureLayer {
	return &TextureLayer{
		cfg:   cfg,
		rng:   rng,
		noise: newNoiseBuffer(rng, cfg.SampleRate, cfg.TextureNoiseS, cfg.TextureNoiseAmp),
	}
}

// Trigger starts one swell at the given audio time. The bandpass center is
// tension-mapped with random jitter; higher tension makes swells brighter,
// narrower, louder, and shorter.
func (l *TextureLayer) Trigger(now, tension float64) {
	c := l.cfg

	center := l.rng.Jitter(Scale(tension, 0, 100, c.TextureCenterMinHz, c.TextureCenterMaxHz), c.TextureCenterJitter)
	q := Scale(tension, 0, 100, c.TextureQMin, c.TextureQMax)
	peak := Scale(tension, 0, 100, c.TexturePeakMin, c.TexturePeakMax)
	decay := Scale(tension, 0, 100, c.TextureDecayMaxS, c.TextureDecayMinS)

	env := newParam(c.SampleRate, now, 0)
	env.LinearRampAt(peak, now, now+c.TextureRiseS)
	env.ExpRampAt(0, now+c.TextureRiseS, now+c.TextureRiseS+decay)

	// A highpass/lowpass pair at the same center and Q forms the resonant
	// bandpass for this voice.
	l.voices = append(l.voices, &textureVoice{
		buf:    l.noise,
		center: center,
		hp:     biquad.NewSection(design.Highpass(center, q, c.SampleRate)),
		lp:     biquad.NewSection(design.Lowpass(center, q, c.SampleRate)),
		env:    env,
		endAt:  now + c.TextureRiseS + decay,
	})
}

// Sample renders one frame, mixing all live voices and dropping the ones
// whose envelopes have run out.
func (l *TextureLayer) Sample(now float64) float64 {
	sum := 0.0
	for i := 0; i < len(l.voices); i++ {
		v := l.voices[i]
		if now >= v.endAt || v.pos >= len(v.buf) {
			l.voices = append(l.voices[:i], l.voices[i+1:]...)
			i--
			continue
		}
		x := v.buf[v.pos]
		v.pos++
		x = v.lp.ProcessSample(v.hp.ProcessSample(x))
		sum += x * v.env.Tick()
	}
	return sum
}

func (l *TextureLayer) activeVoices() int { return len(l.voices) }
