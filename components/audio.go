package components

import (
	cfg "github.com/automoto/arcadeshell/config"
	"github.com/yohamta/donburi"
)

// AudioData queues sound effects raised by systems during a frame
type AudioData struct {
	PendingSFX []cfg.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
