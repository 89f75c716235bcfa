package audio

import (
	"fmt"

	"github.com/cwbudde/algo-dsp/dsp/effects"
)

// newCompressor builds the master-bus dynamics stage: a downward compressor
// with a soft knee and no makeup gain. Output level staging belongs to the
// master gain param, so auto-makeup stays off.
func newCompressor(cfg *Config) (*effects.Compressor, error) {
	comp, err := effects.NewCompressor(cfg.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("compressor: %w", err)
	}
	if err := comp.SetThreshold(cfg.CompThresholdDB); err != nil {
		return nil, fmt.Errorf("compressor threshold: %w", err)
	}
	if err := comp.SetRatio(cfg.CompRatio); err != nil {
		return nil, fmt.Errorf("compressor ratio: %w", err)
	}
	if err := comp.SetKnee(cfg.CompKneeDB); err != nil {
		return nil, fmt.Errorf("compressor knee: %w", err)
	}
	if err := comp.SetAttack(cfg.CompAttackS * 1000); err != nil {
		return nil, fmt.Errorf("compressor attack: %w", err)
	}
	if err := comp.SetRelease(cfg.CompReleaseS * 1000); err != nil {
		return nil, fmt.Errorf("compressor release: %w", err)
	}
	if err := comp.SetAutoMakeup(false); err != nil {
		return nil, fmt.Errorf("compressor auto makeup: %w", err)
	}
	if err := comp.SetMakeupGain(0); err != nil {
		return nil, fmt.Errorf("compressor makeup gain: %w", err)
	}
	return comp, nil
}
