package audio

import (
	"io"
	"log/slog"
	"sync"

	"github.com/simukka/soundscape/common"
)

// renderBlock is the scheduler grain: discrete triggers land within one
// block (~2.9 ms at 44.1 kHz) of their scheduled time, and the automation
// they enqueue is sample-exact from there.
const renderBlockFrames = 128

// Session is one live run of the engine: the full signal graph plus its
// scheduler and clock. The graph is built up front by newSession so its
// topology is fixed and inspectable; rendering only pulls samples through
// it. At most one session is active per engine.
//
// Session implements io.Reader, producing 16-bit little-endian mono PCM for
// the output device, which pulls on its own audio goroutine. Trigger and
// update calls only enqueue automation; the mutex serializes them against
// the rendering pull.
type Session struct {
	mu     sync.Mutex
	cfg    *Config
	ec     EngineConfig
	rng    *common.SeededRNG
	frames int64
	closed bool

	drone   *DroneLayer
	pulse   *PulseLayer
	texture *TextureLayer
	pluck   *PluckLayer
	bus     *SignalBus
	sched   *Scheduler
}

func newSession(cfg *Config, ec EngineConfig, rng *common.SeededRNG) (*Session, error) {
	ec = ec.clamped()
	s := &Session{
		cfg: cfg,
		ec:  ec,
		rng: rng,
	}

	s.drone = newDroneLayer(cfg, 0, ec.Tension)
	s.pulse = newPulseLayer(cfg, 0)
	s.texture = newTextureLayer(cfg, rng)
	s.pluck = newPluckLayer(cfg, rng)
	bus, err := newSignalBus(cfg, 0, ec)
	if err != nil {
		return nil, err
	}
	s.bus = bus

	s.sched = newScheduler()
	s.sched.Add(0, func() float64 {
		return Scale(s.ec.Pulse, 0, 100, cfg.PulseIntervalMaxMs, cfg.PulseIntervalMinMs) / 1000
	}, func(now float64) {
		s.pulse.Trigger(now)
	})
	s.sched.Add(0, func() float64 {
		return Scale(s.ec.Tension, 0, 100, cfg.TextureIntervalMaxMs, cfg.TextureIntervalMinMs) / 1000
	}, func(now float64) {
		s.texture.Trigger(now, s.ec.Tension)
	})
	s.sched.Add(0, func() float64 {
		return cfg.PluckIntervalMs / 1000
	}, func(now float64) {
		if s.rng.Chance(Scale(s.ec.Tension, 0, 100, cfg.PluckChanceMin, cfg.PluckChanceMax)) {
			s.pluck.Trigger(now, s.ec.Tension)
		}
	})

	s.drone.Start()
	s.pulse.Start()
	return s, nil
}

// now returns the audio clock position in seconds.
func (s *Session) now() float64 {
	return float64(s.frames) / s.cfg.SampleRate
}

// Update applies a control change. Clamping happens here; smoothing is the
// layers' and bus's business. A pending pulse interval is deliberately not
// rescheduled; the new rate takes over once the current wait elapses.
func (s *Session) Update(ec EngineConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.ec = ec.clamped()
	now := s.now()
	s.drone.SetTension(s.ec.Tension, now)
	s.bus.SetReverb(s.ec.Reverb, now)
	s.bus.SetVolume(s.ec.Volume, now)
}

// renderBlock fills dst with master-output samples, advancing the scheduler
// ahead of the block so due triggers see their exact timestamps.
func (s *Session) renderBlock(dst []float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		for i := range dst {
			dst[i] = 0
		}
		return
	}
	blockEnd := float64(s.frames+int64(len(dst))) / s.cfg.SampleRate
	s.sched.Advance(blockEnd)
	for i := range dst {
		now := s.now()
		dry := s.drone.Sample() +
			s.pulse.Sample() +
			s.texture.Sample(now) +
			s.pluck.Sample(now)
		dst[i] = s.bus.Process(dry)
		s.frames++
	}
}

// Read implements io.Reader for the output device, rendering 16-bit LE mono
// PCM. It never blocks and never returns an error while the session is
// open; after Close it reports io.EOF so the device player drains out.
func (s *Session) Read(p []byte) (int, error) {
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return 0, io.EOF
	}

	frames := len(p) / 2
	if frames > renderBlockFrames {
		frames = renderBlockFrames
	}
	if frames == 0 {
		return 0, nil
	}
	block := make([]float64, frames)
	s.renderBlock(block)
	for i, v := range block {
		v = Clamp(v, -1, 1)
		n := int16(v * 32767)
		p[2*i] = byte(n)
		p[2*i+1] = byte(n >> 8)
	}
	return frames * 2, nil
}

// Close tears the session down: scheduler first, so no trigger can fire
// into a stopped graph, then the continuous layers. Idempotent and
// best-effort: every step always runs.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.sched.Cancel()
	s.drone.Stop()
	s.pulse.Stop()
	s.closed = true
	slog.Debug("session closed", "frames", s.frames)
}
