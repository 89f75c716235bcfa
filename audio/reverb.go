package audio

import (
	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/cwbudde/algo-dsp/dsp/filter/design"
)

// ReverbNetwork is a small multi-tap feedback delay network. Input is
// broadcast to every delay line; each line feeds only itself back (no
// cross-coupling matrix, the diffusion stays deliberately simple) and the
// summed taps pass through a shared damping lowpass to give the wet output.
// Control parameters never reach the network; only the downstream wet gain
// is parameter-driven.
type ReverbNetwork struct {
	lines    []*delayLine
	feedback float64
	damp     *biquad.Section
}

func newReverbNetwork(cfg *Config) *ReverbNetwork {
	r := &ReverbNetwork{
		feedback: cfg.ReverbFeedback,
		damp:     biquad.NewSection(design.Lowpass(cfg.ReverbDampHz, cfg.ReverbDampQ, cfg.SampleRate)),
	}
	for _, ms := range cfg.ReverbDelaysMs {
		r.lines = append(r.lines, newDelayLine(cfg.SampleRate, ms/1000, cfg.ReverbMaxDelayS))
	}
	return r
}

// Process pushes one input sample through the network and returns the wet
// sample.
func (r *ReverbNetwork) Process(x float64) float64 {
	sum := 0.0
	for _, l := range r.lines {
		out := l.read()
		l.write(x + out*r.feedback)
		sum += out
	}
	return r.damp.ProcessSample(sum)
}
