package audio

import "math"

// Drone oscillator voicing: root, a tense minor second above, and a fifth.
// Detunes in cents thicken the stack the way slightly drifting analog
// oscillators would.
var droneVoicing = []struct {
	shape    Waveform
	semitone float64
	detune   float64
}{
	{WaveSawtooth, 0, -7},
	{WaveTriangle, 1, 3},
	{WaveSawtooth, 7, 7},
}

// DroneLayer is the continuous bed of the soundscape: three detuned
// oscillators summed into a lowpass whose cutoff breathes on a slow LFO
// around a tension-dependent center.
type DroneLayer struct {
	cfg     *Config
	oscs    []*Oscillator
	lfo     *Oscillator
	filter  *svfLowpass
	cutoff  *Param // base cutoff, tension-retargeted
	gain    *Param
	running bool
}

func newDroneLayer(cfg *Config, now, tension float64) *DroneLayer {
	d := &DroneLayer{
		cfg:    cfg,
		lfo:    newOscillator(cfg.SampleRate, now, WaveSine, cfg.DroneLFORateHz, 0),
		filter: newSVFLowpass(cfg.SampleRate),
		cutoff: newParam(cfg.SampleRate, now, Scale(tension, 0, 100, cfg.DroneCutoffMin, cfg.DroneCutoffMax)),
		gain:   newParam(cfg.SampleRate, now, Scale(tension, 0, 100, cfg.DroneGainMin, cfg.DroneGainMax)),
	}
	for _, v := range droneVoicing {
		freq := cfg.DroneRootHz * math.Pow(2, v.semitone/12)
		d.oscs = append(d.oscs, newOscillator(cfg.SampleRate, now, v.shape, freq, v.detune))
	}
	return d
}

// Start begins producing sound. Idempotent.
func (d *DroneLayer) Start() {
	d.running = true
}

// Stop silences the layer. Idempotent; safe on an already-stopped layer.
func (d *DroneLayer) Stop() {
	d.running = false
}

// SetTension retargets the filter cutoff and output gain, approached
// exponentially so the drone never steps audibly.
func (d *DroneLayer) SetTension(tension, now float64) {
	c := d.cfg
	d.cutoff.TargetAt(Scale(tension, 0, 100, c.DroneCutoffMin, c.DroneCutoffMax), now, c.TensionSmooth)
	d.gain.TargetAt(Scale(tension, 0, 100, c.DroneGainMin, c.DroneGainMax), now, c.TensionSmooth)
}

// Sample renders one frame.
func (d *DroneLayer) Sample() float64 {
	if !d.running {
		return 0
	}
	sum := 0.0
	for _, o := range d.oscs {
		sum += o.Sample()
	}
	cut := d.cutoff.Tick() + d.lfo.Sample()*d.cfg.DroneLFODepthHz
	out := d.filter.Process(sum, cut, d.cfg.DroneFilterQ)
	return out * d.gain.Tick()
}
