package audio

// PulseLayer is the heartbeat: a sine carrier running continuously through
// a soft-saturation shaper into a gain held at zero between triggers. A
// trigger sweeps the carrier downward and opens the gain with a fast rise
// and a long exponential decay.
type PulseLayer struct {
	cfg     *Config
	osc     *Oscillator
	shape   shaper
	amp     *Param
	running bool
}

func newPulseLayer(cfg *Config, now float64) *PulseLayer {
	return &PulseLayer{
		cfg:   cfg,
		osc:   newOscillator(cfg.SampleRate, now, WaveSine, cfg.PulseBaseHz, 0),
		shape: shaper{k: cfg.PulseDrive},
		amp:   newParam(cfg.SampleRate, now, 0),
	}
}

// Start begins running the idle carrier. Idempotent.
func (p *PulseLayer) Start() {
	p.running = true
}

// Stop silences the layer. Idempotent.
func (p *PulseLayer) Stop() {
	p.running = false
}

// Trigger fires one thump at the given audio time. A trigger landing while
// a previous decay is still active cancels the pending automation first:
// last trigger wins, envelopes never stack.
func (p *PulseLayer) Trigger(now float64) {
	c := p.cfg

	p.osc.Freq.CancelAt(now)
	p.osc.Freq.SetValueAt(c.PulseSweepStartHz, now)
	p.osc.Freq.ExpRampAt(c.PulseSweepEndHz, now, now+c.PulseSweepS)

	p.amp.CancelAt(now)
	p.amp.SetValueAt(0, now)
	p.amp.LinearRampAt(c.PulsePeakGain, now, now+c.PulseRiseS)
	p.amp.ExpRampAt(0, now+c.PulseRiseS, now+c.PulseRiseS+c.PulseDecayS)
}

// Sample renders one frame.
func (p *PulseLayer) Sample() float64 {
	if !p.running {
		return 0
	}
	x := p.shape.Process(p.osc.Sample())
	return x * p.amp.Tick()
}
