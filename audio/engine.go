package audio

import (
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/simukka/soundscape/common"
)

// Sink is where rendered PCM goes. Start hands the sink a stream producing
// 16-bit little-endian mono PCM at the engine sample rate and begins
// playback; Stop releases whatever Start acquired. The speaker device
// (output.go) and test doubles both satisfy this.
type Sink interface {
	Start(stream io.Reader) error
	Stop()
}

// Engine owns the running/stopped lifecycle and at most one live Session.
// All methods are safe for concurrent use.
type Engine struct {
	mu       sync.Mutex
	cfg      *Config
	sink     Sink
	baseSeed uint32
	sessions int

	ec      EngineConfig
	running bool
	session *Session
}

// NewEngine builds a stopped engine. cfg may be nil for the defaults; sink
// may be nil for the speaker.
func NewEngine(cfg *Config, sink Sink, seed uint32) *Engine {
	if cfg == nil {
		c := Defaults
		cfg = &c
	}
	if sink == nil {
		sink = newOtoSink(cfg)
	}
	return &Engine{cfg: cfg, sink: sink, baseSeed: seed}
}

// SetRunning moves the engine between stopped and playing. It is
// edge-triggered and idempotent: repeating the current state is a no-op.
// Starting while a session is somehow still live tears that session down
// completely before the new one begins, so two sessions never overlap.
func (e *Engine) SetRunning(on bool) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if on == e.running {
		return nil
	}
	if !on {
		e.teardown()
		e.running = false
		slog.Info("engine stopped")
		return nil
	}
	if e.session != nil {
		e.teardown()
	}

	e.sessions++
	rng := common.NewSeededRNG(common.SessionSeed(e.baseSeed, e.sessions))
	s, err := newSession(e.cfg, e.ec, rng)
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}
	if err := e.sink.Start(s); err != nil {
		s.Close()
		return fmt.Errorf("start output: %w", err)
	}
	e.session = s
	e.running = true
	slog.Info("engine started", "session", e.sessions)
	return nil
}

// Running reports whether a session is live.
func (e *Engine) Running() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.running
}

// Update applies new control values. Stored always, so a later start picks
// them up; forwarded to the live session when there is one.
func (e *Engine) Update(ec EngineConfig) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.ec = ec.clamped()
	if e.session != nil {
		e.session.Update(e.ec)
	}
}

// Config returns the current control values.
func (e *Engine) Config() EngineConfig {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ec
}

// teardown runs the full stop sequence. Session close cancels the
// scheduler and stops the continuous layers before the sink lets go of the
// device, so nothing fires into a released output. Caller holds e.mu.
func (e *Engine) teardown() {
	if e.session == nil {
		return
	}
	e.session.Close()
	e.sink.Stop()
	e.session = nil
}
