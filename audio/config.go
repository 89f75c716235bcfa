package audio

// EngineConfig carries the four continuous control values driving the
// soundscape. Each is accepted as any real number and clamped to [0,100]
// internally; out-of-range input is never an error.
type EngineConfig struct {
	Tension float64 `yaml:"tension"`
	Pulse   float64 `yaml:"pulse"`
	Reverb  float64 `yaml:"reverb"`
	Volume  float64 `yaml:"volume"`
}

func (c EngineConfig) clamped() EngineConfig {
	return EngineConfig{
		Tension: Clamp(c.Tension, 0, 100),
		Pulse:   Clamp(c.Pulse, 0, 100),
		Reverb:  Clamp(c.Reverb, 0, 100),
		Volume:  Clamp(c.Volume, 0, 100),
	}
}

// Config holds every synthesis tunable. Defaults in consts.go match the
// shipped sound; a YAML file may override individual fields (configfile.go).
type Config struct {
	// Master settings
	SampleRate    float64 `yaml:"sampleRate"`
	MasterMinDB   float64 `yaml:"masterMinDB"`   // master gain at volume 0
	MasterMaxDB   float64 `yaml:"masterMaxDB"`   // master gain at volume 100
	MasterSmooth  float64 `yaml:"masterSmooth"`  // volume smoothing time constant (s)
	WetGainMin    float64 `yaml:"wetGainMin"`    // reverb send at reverb 0
	WetGainMax    float64 `yaml:"wetGainMax"`    // reverb send at reverb 100
	WetSmooth     float64 `yaml:"wetSmooth"`     // reverb smoothing time constant (s)
	TensionSmooth float64 `yaml:"tensionSmooth"` // drone retarget time constant (s)

	// Reverb network
	ReverbDelaysMs  []float64 `yaml:"reverbDelaysMs"`  // one delay line per entry
	ReverbMaxDelayS float64   `yaml:"reverbMaxDelayS"` // delay line capacity cap
	ReverbFeedback  float64   `yaml:"reverbFeedback"`  // per-line self-feedback gain
	ReverbDampHz    float64   `yaml:"reverbDampHz"`    // shared damping lowpass cutoff
	ReverbDampQ     float64   `yaml:"reverbDampQ"`     // damping lowpass resonance

	// Compressor
	CompThresholdDB float64 `yaml:"compThresholdDB"`
	CompKneeDB      float64 `yaml:"compKneeDB"`
	CompRatio       float64 `yaml:"compRatio"`
	CompAttackS     float64 `yaml:"compAttackS"`
	CompReleaseS    float64 `yaml:"compReleaseS"`

	// Drone layer
	DroneRootHz     float64 `yaml:"droneRootHz"`
	DroneLFORateHz  float64 `yaml:"droneLFORateHz"`
	DroneLFODepthHz float64 `yaml:"droneLFODepthHz"`
	DroneCutoffMin  float64 `yaml:"droneCutoffMin"` // base cutoff at tension 0
	DroneCutoffMax  float64 `yaml:"droneCutoffMax"` // base cutoff at tension 100
	DroneGainMin    float64 `yaml:"droneGainMin"`
	DroneGainMax    float64 `yaml:"droneGainMax"`
	DroneFilterQ    float64 `yaml:"droneFilterQ"`

	// Pulse layer
	PulseBaseHz        float64 `yaml:"pulseBaseHz"`
	PulseDrive         float64 `yaml:"pulseDrive"`
	PulseSweepStartHz  float64 `yaml:"pulseSweepStartHz"`
	PulseSweepEndHz    float64 `yaml:"pulseSweepEndHz"`
	PulseSweepS        float64 `yaml:"pulseSweepS"`
	PulseRiseS         float64 `yaml:"pulseRiseS"`
	PulsePeakGain      float64 `yaml:"pulsePeakGain"`
	PulseDecayS        float64 `yaml:"pulseDecayS"`
	PulseIntervalMaxMs float64 `yaml:"pulseIntervalMaxMs"` // at pulse 0
	PulseIntervalMinMs float64 `yaml:"pulseIntervalMinMs"` // at pulse 100

	// Texture layer
	TextureNoiseS        float64 `yaml:"textureNoiseS"`
	TextureNoiseAmp      float64 `yaml:"textureNoiseAmp"`
	TextureCenterMinHz   float64 `yaml:"textureCenterMinHz"`
	TextureCenterMaxHz   float64 `yaml:"textureCenterMaxHz"`
	TextureCenterJitter  float64 `yaml:"textureCenterJitter"`
	TextureQMin          float64 `yaml:"textureQMin"`
	TextureQMax          float64 `yaml:"textureQMax"`
	TexturePeakMin       float64 `yaml:"texturePeakMin"`
	TexturePeakMax       float64 `yaml:"texturePeakMax"`
	TextureRiseS         float64 `yaml:"textureRiseS"`
	TextureDecayMaxS     float64 `yaml:"textureDecayMaxS"` // at tension 0
	TextureDecayMinS     float64 `yaml:"textureDecayMinS"` // at tension 100
	TextureIntervalMaxMs float64 `yaml:"textureIntervalMaxMs"`
	TextureIntervalMinMs float64 `yaml:"textureIntervalMinMs"`

	// Pluck layer
	PluckBaseHz     float64 `yaml:"pluckBaseHz"`
	PluckSemitones  []int   `yaml:"pluckSemitones"` // dissonant interval set
	PluckOctaves    int     `yaml:"pluckOctaves"`   // octave multiplier drawn from [0,n)
	PluckHighpassHz float64 `yaml:"pluckHighpassHz"`
	PluckHighpassQ  float64 `yaml:"pluckHighpassQ"`
	PluckPeakMin    float64 `yaml:"pluckPeakMin"`
	PluckPeakMax    float64 `yaml:"pluckPeakMax"`
	PluckRiseS      float64 `yaml:"pluckRiseS"`
	PluckDecayMaxS  float64 `yaml:"pluckDecayMaxS"` // at tension 0
	PluckDecayMinS  float64 `yaml:"pluckDecayMinS"` // at tension 100
	PluckIntervalMs float64 `yaml:"pluckIntervalMs"`
	PluckChanceMin  float64 `yaml:"pluckChanceMin"` // trigger probability at tension 0
	PluckChanceMax  float64 `yaml:"pluckChanceMax"` // trigger probability at tension 100
}
