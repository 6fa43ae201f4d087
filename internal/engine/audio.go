package engine

// AudioService plays cues for the engine. The engine never decodes or
// mixes audio itself; it asks for a cue at a volume and later polls
// whether it finished.
type AudioService interface {
	// Play starts the named cue at volume 0..100 and returns a handle.
	Play(name string, volume float64) uint64
	Finished(handle uint64) bool
}

// Silent is an AudioService that plays nothing.
type Silent struct{}

func (Silent) Play(string, float64) uint64 { return 0 }
func (Silent) Finished(uint64) bool        { return true }
