package audio

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/kevrgithub/tibianer-old/pkg/logger"

	"github.com/sirupsen/logrus"
)

const SampleRate = beep.SampleRate(44100)

// Player mixes cues into one stream. Until Start opens the speaker the
// mix can be pulled by hand through Stream, which is how tests listen.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	rate    beep.SampleRate
	started bool

	nextHandle uint64
	playing    map[uint64]*atomic.Bool
}

func NewPlayer(rate beep.SampleRate) *Player {
	return &Player{
		mixer:   &beep.Mixer{},
		rate:    rate,
		playing: make(map[uint64]*atomic.Bool),
	}
}

// Start opens the default output device and plays the mix on it.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.started {
		return nil
	}
	if err := speaker.Init(p.rate, p.rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.started = true

	logger.Log.WithFields(logrus.Fields{
		"component":   "audio",
		"sample_rate": int(p.rate),
	}).Info("Audio output started.")
	return nil
}

// Close silences everything and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.started = false
}

// Play implements engine.AudioService. Unknown cues get handle 0, which
// is always finished.
func (p *Player) Play(name string, volume float64) uint64 {
	s, ok := Cue(name, volume, p.rate)
	if !ok {
		logger.Log.WithFields(logrus.Fields{
			"component": "audio",
			"sound":     name,
		}).Debug("No cue for sound.")
		return 0
	}

	done := &atomic.Bool{}
	tracked := beep.Seq(s, beep.Callback(func() { done.Store(true) }))

	p.mu.Lock()
	defer p.mu.Unlock()

	p.nextHandle++
	handle := p.nextHandle
	p.playing[handle] = done

	if p.started {
		speaker.Lock()
		p.mixer.Add(tracked)
		speaker.Unlock()
	} else {
		p.mixer.Add(tracked)
	}
	return handle
}

// Finished implements engine.AudioService. A finished handle is
// forgotten, so later calls with it also report true.
func (p *Player) Finished(handle uint64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	done, ok := p.playing[handle]
	if !ok {
		return true
	}
	if !done.Load() {
		return false
	}
	delete(p.playing, handle)
	return true
}

// Playing is the number of cues not yet reported finished.
func (p *Player) Playing() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.playing)
}

// Stream pulls samples from the mix. It must not be used after Start.
func (p *Player) Stream(samples [][2]float64) (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mixer.Stream(samples)
}
