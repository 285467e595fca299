package assets

import (
	"fmt"
	"math"

	cfg "github.com/automoto/arcadeshell/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes and caches sound effects
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Cache rendered PCM for SFX
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	tone, ok := cfg.Sound.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}

	l.sfxCache[id] = SynthTone(l.context.SampleRate(), tone)
	return nil
}

// LoadSFX returns a new player each time. SFX are cached as PCM bytes.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthTone renders tone as 16-bit little endian stereo PCM. A linear release
// over the last quarter keeps the tail from clicking.
func SynthTone(sampleRate int, tone cfg.Tone) []byte {
	samples := sampleRate * tone.DurationMs / 1000
	if samples <= 0 {
		return nil
	}

	buf := make([]byte, samples*4)
	release := samples / 4
	phase := 0.0
	for n := 0; n < samples; n++ {
		t := float64(n) / float64(samples)
		freq := tone.StartHz + (tone.EndHz-tone.StartHz)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		amp := 0.3
		if left := samples - n; release > 0 && left < release {
			amp *= float64(left) / float64(release)
		}

		v := int16(math.Sin(phase) * amp * math.MaxInt16)
		off := n * 4
		buf[off] = byte(v)
		buf[off+1] = byte(v >> 8)
		buf[off+2] = byte(v)
		buf[off+3] = byte(v >> 8)
	}
	return buf
}
