package audio

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/ebitengine/oto/v3"
)

var (
	otoCtx     *oto.Context
	otoCtxErr  error
	otoCtxOnce sync.Once
)

// otoSink plays a PCM stream on the default output device. The oto context
// is process-global and cannot be torn down, so releasing audio resources
// on stop means closing the per-session player; the context is created
// lazily on the first start and reused after that.
type otoSink struct {
	cfg    *Config
	player *oto.Player
}

func newOtoSink(cfg *Config) *otoSink {
	return &otoSink{cfg: cfg}
}

func (s *otoSink) Start(stream io.Reader) error {
	otoCtxOnce.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   int(s.cfg.SampleRate),
			ChannelCount: 1,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			otoCtxErr = err
			return
		}
		select {
		case <-ready:
		case <-time.After(5 * time.Second):
			otoCtxErr = fmt.Errorf("audio device not ready")
			return
		}
		otoCtx = ctx
	})
	if otoCtxErr != nil {
		return fmt.Errorf("open audio device: %w", otoCtxErr)
	}

	p := otoCtx.NewPlayer(stream)
	// 20ms of 16-bit mono keeps latency low without underruns.
	p.SetBufferSize(int(s.cfg.SampleRate) / 50 * 2)
	p.Play()
	s.player = p
	return nil
}

func (s *otoSink) Stop() {
	if s.player == nil {
		return
	}
	s.player.Close()
	s.player = nil
}
