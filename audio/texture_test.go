package audio

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/simukka/soundscape/common"
)

func textureRun(l *TextureLayer, from float64, n int) []float64 {
	out := make([]float64, n)
	now := from
	for i := range out {
		out[i] = l.Sample(now)
		now += 1 / l.cfg.SampleRate
	}
	return out
}

func TestTextureLayer_SilentWithoutTriggers(t *testing.T) {
	l := newTextureLayer(&Defaults, common.NewSeededRNG(1))
	for _, v := range textureRun(l, 0, 10000) {
		assert.Zero(t, v)
	}
}

func TestTextureLayer_VoiceSelfDisposes(t *testing.T) {
	c := Defaults
	l := newTextureLayer(&c, common.NewSeededRNG(1))

	l.Trigger(0, 100) // shortest decay: rise + 0.6s
	assert.Equal(t, 1, l.activeVoices())

	textureRun(l, 0, int(c.SampleRate*0.3))
	assert.Equal(t, 1, l.activeVoices(), "still inside the envelope")

	textureRun(l, 0.3, int(c.SampleRate*0.5))
	assert.Equal(t, 0, l.activeVoices(), "gone once the envelope ran out")
}

func TestTextureLayer_HigherTensionShorterSwells(t *testing.T) {
	c := Defaults
	calm := newTextureLayer(&c, common.NewSeededRNG(3))
	tense := newTextureLayer(&c, common.NewSeededRNG(3))
	calm.Trigger(0, 0)    // decays over 1.6s
	tense.Trigger(0, 100) // decays over 0.6s

	n := int(c.SampleRate * 1.0)
	textureRun(calm, 0, n)
	textureRun(tense, 0, n)
	assert.Equal(t, 1, calm.activeVoices())
	assert.Equal(t, 0, tense.activeVoices())
}

func TestTextureLayer_OverlappingSwellsAreIndependent(t *testing.T) {
	c := Defaults
	l := newTextureLayer(&c, common.NewSeededRNG(5))
	l.Trigger(0, 50)
	l.Trigger(0.1, 50)
	assert.Equal(t, 2, l.activeVoices())

	out := textureRun(l, 0.1, 5000)
	nonZero := 0
	for _, v := range out {
		if v != 0 {
			nonZero++
		}
	}
	assert.Greater(t, nonZero, 1000, "both voices audible")
}

func TestTextureLayer_CenterTracksTension(t *testing.T) {
	c := Defaults

	calm := newTextureLayer(&c, common.NewSeededRNG(7))
	calm.Trigger(0, 0)
	got := calm.voices[0].center
	assert.InDelta(t, c.TextureCenterMinHz, got, c.TextureCenterMinHz*c.TextureCenterJitter,
		"tension 0 centers near %v Hz", c.TextureCenterMinHz)

	tense := newTextureLayer(&c, common.NewSeededRNG(7))
	tense.Trigger(0, 100)
	got = tense.voices[0].center
	assert.InDelta(t, c.TextureCenterMaxHz, got, c.TextureCenterMaxHz*c.TextureCenterJitter,
		"tension 100 centers near %v Hz", c.TextureCenterMaxHz)

	mid := newTextureLayer(&c, common.NewSeededRNG(7))
	mid.Trigger(0, 50)
	want := Scale(50, 0, 100, c.TextureCenterMinHz, c.TextureCenterMaxHz)
	assert.InDelta(t, want, mid.voices[0].center, want*c.TextureCenterJitter)
}

func TestTextureLayer_DeterministicPerSeed(t *testing.T) {
	a := newTextureLayer(&Defaults, common.NewSeededRNG(9))
	b := newTextureLayer(&Defaults, common.NewSeededRNG(9))
	a.Trigger(0, 60)
	b.Trigger(0, 60)
	assert.Equal(t, textureRun(a, 0, 10000), textureRun(b, 0, 10000))
}
