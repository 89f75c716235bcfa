package audio

import "github.com/cwbudde/algo-dsp/dsp/effects"

// SignalBus is the output spine of the graph: the dry layer sum at unity
// gain plus the reverb's wet output scaled by the reverb control, through
// the compressor, through the master gain, to the device. Volume and reverb
// updates land as smoothed automation, never as steps.
type SignalBus struct {
	cfg    *Config
	reverb *ReverbNetwork
	comp   *effects.Compressor
	wet    *Param
	master *Param
}

func newSignalBus(cfg *Config, now float64, ec EngineConfig) (*SignalBus, error) {
	comp, err := newCompressor(cfg)
	if err != nil {
		return nil, err
	}
	return &SignalBus{
		cfg:    cfg,
		reverb: newReverbNetwork(cfg),
		comp:   comp,
		wet:    newParam(cfg.SampleRate, now, Scale(ec.Reverb, 0, 100, cfg.WetGainMin, cfg.WetGainMax)),
		master: newParam(cfg.SampleRate, now, DBToGain(Scale(ec.Volume, 0, 100, cfg.MasterMinDB, cfg.MasterMaxDB))),
	}, nil
}

// SetReverb retargets the wet gain.
func (b *SignalBus) SetReverb(reverb, now float64) {
	b.wet.TargetAt(Scale(reverb, 0, 100, b.cfg.WetGainMin, b.cfg.WetGainMax), now, b.cfg.WetSmooth)
}

// SetVolume retargets the master gain.
func (b *SignalBus) SetVolume(volume, now float64) {
	gain := DBToGain(Scale(volume, 0, 100, b.cfg.MasterMinDB, b.cfg.MasterMaxDB))
	b.master.TargetAt(gain, now, b.cfg.MasterSmooth)
}

// Process takes the summed layer output for one frame and returns the
// master output sample.
func (b *SignalBus) Process(dry float64) float64 {
	wet := b.reverb.Process(dry) * b.wet.Tick()
	x := b.comp.ProcessSample(dry + wet)
	return x * b.master.Tick()
}
