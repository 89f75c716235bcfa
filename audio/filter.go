package audio

import "math"

// svfLowpass is a Chamberlin state-variable lowpass whose cutoff may move
// every sample without resetting filter state. Static stages use biquad
// sections instead; this exists for the continuously swept drone filter.
type svfLowpass struct {
	sr   float64
	low  float64
	band float64
}

func newSVFLowpass(sampleRate float64) *svfLowpass {
	return &svfLowpass{sr: sampleRate}
}

// Process filters one sample at the given cutoff and resonance Q.
func (f *svfLowpass) Process(x, cutoffHz, q float64) float64 {
	// The Chamberlin topology is stable for cutoffs well below sr/6.
	fc := Clamp(cutoffHz, 10, f.sr*0.15)
	g := 2 * math.Sin(math.Pi*fc/f.sr)
	f.low += g * f.band
	high := x - f.low - f.band/q
	f.band += g * high
	return f.low
}
