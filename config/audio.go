package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	SoundMenuNavigate
	SoundMenuSelect
	SoundGameOver
)

// Tone is a short synthesized beep. Frequencies sweep linearly from
// StartHz to EndHz over the duration.
type Tone struct {
	StartHz    float64
	EndHz      float64
	DurationMs int
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// SoundConfig maps sound IDs to their tones
type SoundConfig struct {
	Tones             map[SoundID]Tone
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.4,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]Tone{
			SoundMenuNavigate: {StartHz: 660, EndHz: 660, DurationMs: 45},
			SoundMenuSelect:   {StartHz: 660, EndHz: 990, DurationMs: 120},
			SoundGameOver:     {StartHz: 440, EndHz: 220, DurationMs: 400},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundGameOver: 1.2,
		},
	}
}
