package systems

import (
	"github.com/kevrgithub/tibianer-old/internal/core/types/enums"
	"github.com/kevrgithub/tibianer-old/internal/domain"
)

// Sink receives what the rules produce besides world mutation: game log
// lines and sound cues. The engine implements it; systems never talk to
// the audio collaborator directly.
type Sink interface {
	Message(text string)
	Sound(name string, pos domain.Position, z enums.Elevation)
}

// Discard is a Sink that drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Message(string)                                 {}
func (discard) Sound(string, domain.Position, enums.Elevation) {}
