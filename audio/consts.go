package audio

// Defaults is the shipped tuning. Values here define the sound; tests and
// the CLI both start from this and override selectively.
var Defaults = Config{
	// Master settings
	SampleRate:    44100,
	MasterMinDB:   -36,
	MasterMaxDB:   -3,
	MasterSmooth:  0.05,
	WetGainMin:    0.05,
	WetGainMax:    0.5,
	WetSmooth:     0.1,
	TensionSmooth: 0.5,

	// Reverb network
	ReverbDelaysMs:  []float64{11, 17, 19, 29},
	ReverbMaxDelayS: 0.25,
	ReverbFeedback:  0.35,
	ReverbDampHz:    4500,
	ReverbDampQ:     0.707,

	// Compressor
	CompThresholdDB: -24,
	CompKneeDB:      20,
	CompRatio:       3,
	CompAttackS:     0.003,
	CompReleaseS:    0.25,

	// Drone layer
	DroneRootHz:     55,
	DroneLFORateHz:  0.07,
	DroneLFODepthHz: 220,
	DroneCutoffMin:  260,
	DroneCutoffMax:  1800,
	DroneGainMin:    0.1,
	DroneGainMax:    0.2,
	DroneFilterQ:    1,

	// Pulse layer
	PulseBaseHz:        50,
	PulseDrive:         400,
	PulseSweepStartHz:  60,
	PulseSweepEndHz:    40,
	PulseSweepS:        0.09,
	PulseRiseS:         0.01,
	PulsePeakGain:      0.6,
	PulseDecayS:        0.6,
	PulseIntervalMaxMs: 1600,
	PulseIntervalMinMs: 420,

	// Texture layer
	TextureNoiseS:        2,
	TextureNoiseAmp:      0.8,
	TextureCenterMinHz:   400,
	TextureCenterMaxHz:   3200,
	TextureCenterJitter:  0.15,
	TextureQMin:          2,
	TextureQMax:          8,
	TexturePeakMin:       0.12,
	TexturePeakMax:       0.35,
	TextureRiseS:         0.02,
	TextureDecayMaxS:     1.6,
	TextureDecayMinS:     0.6,
	TextureIntervalMaxMs: 4200,
	TextureIntervalMinMs: 1300,

	// Pluck layer
	PluckBaseHz:     440,
	PluckSemitones:  []int{1, 2, 6, 10},
	PluckOctaves:    3,
	PluckHighpassHz: 600,
	PluckHighpassQ:  0.707,
	PluckPeakMin:    0.06,
	PluckPeakMax:    0.18,
	PluckRiseS:      0.005,
	PluckDecayMaxS:  1.2,
	PluckDecayMinS:  0.45,
	PluckIntervalMs: 2000,
	PluckChanceMin:  0.15,
	PluckChanceMax:  0.55,
}
