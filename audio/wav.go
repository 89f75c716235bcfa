package audio

import (
	"fmt"
	"io"
	"os"

	"github.com/simukka/soundscape/common"
)

// RenderWAV bounces a session offline for the given duration and writes it
// as a 16-bit mono PCM WAV file. The session renders through the same
// graph the speaker path uses, just pulled synchronously instead of by the
// device.
func RenderWAV(w io.Writer, cfg *Config, ec EngineConfig, seed uint32, seconds float64) error {
	if cfg == nil {
		c := Defaults
		cfg = &c
	}
	if seconds <= 0 {
		return fmt.Errorf("render duration %gs: must be positive", seconds)
	}

	s, err := newSession(cfg, ec, common.NewSeededRNG(seed))
	if err != nil {
		return fmt.Errorf("build session: %w", err)
	}
	defer s.Close()

	frames := int(seconds * cfg.SampleRate)
	dataSize := frames * 2
	header := make([]byte, 44)
	writeWavHeader(header, uint32(cfg.SampleRate), dataSize)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("write wav header: %w", err)
	}

	buf := make([]byte, renderBlockFrames*2)
	for frames > 0 {
		want := len(buf)
		if frames*2 < want {
			want = frames * 2
		}
		n, err := s.Read(buf[:want])
		if err != nil {
			return fmt.Errorf("render: %w", err)
		}
		if _, err := w.Write(buf[:n]); err != nil {
			return fmt.Errorf("write wav data: %w", err)
		}
		frames -= n / 2
	}
	return nil
}

// RenderWAVFile is RenderWAV to a named file.
func RenderWAVFile(path string, cfg *Config, ec EngineConfig, seed uint32, seconds float64) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := RenderWAV(f, cfg, ec, seed, seconds); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeWavHeader writes a 44-byte PCM WAV header for 16-bit mono data.
func writeWavHeader(data []byte, sampleRate uint32, dataSize int) {
	// RIFF header
	data[0] = 'R'
	data[1] = 'I'
	data[2] = 'F'
	data[3] = 'F'
	writeUint32LE(data, 4, uint32(dataSize+36))
	data[8] = 'W'
	data[9] = 'A'
	data[10] = 'V'
	data[11] = 'E'

	// fmt sub-chunk
	data[12] = 'f'
	data[13] = 'm'
	data[14] = 't'
	data[15] = ' '
	writeUint32LE(data, 16, 16)           // Sub-chunk size
	writeUint16LE(data, 20, 1)            // Audio format (PCM)
	writeUint16LE(data, 22, 1)            // Channels (mono)
	writeUint32LE(data, 24, sampleRate)   // Sample rate
	writeUint32LE(data, 28, sampleRate*2) // Byte rate
	writeUint16LE(data, 32, 2)            // Block align
	writeUint16LE(data, 34, 16)           // Bits per sample

	// data sub-chunk
	data[36] = 'd'
	data[37] = 'a'
	data[38] = 't'
	data[39] = 'a'
	writeUint32LE(data, 40, uint32(dataSize))
}

func writeUint16LE(data []byte, offset int, value uint16) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
}

func writeUint32LE(data []byte, offset int, value uint32) {
	data[offset] = byte(value)
	data[offset+1] = byte(value >> 8)
	data[offset+2] = byte(value >> 16)
	data[offset+3] = byte(value >> 24)
}
