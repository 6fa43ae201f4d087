package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator streams freq Hz of wave for duration.
func NewOscillator(freq float64, duration time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(duration))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope ramps a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if left := e.total - e.position; left < e.release {
			vol = math.Min(vol, float64(left)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// withVolume scales s by gain in 0..1. Zero gain is silent rather than
// log2(0).
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// tone is one synthesized note of a cue.
type tone struct {
	freq     float64
	duration time.Duration
	wave     Wave
}

// cues maps the engine's sound names to short synthesized effects.
var cues = map[string][]tone{
	"death":  {{220, 120 * time.Millisecond, WaveSaw}, {110, 260 * time.Millisecond, WaveSaw}},
	"hit":    {{0, 90 * time.Millisecond, WaveNoise}},
	"splash": {{0, 220 * time.Millisecond, WaveNoise}},
	"block":  {{1400, 60 * time.Millisecond, WaveSquare}},
	"ladder": {{330, 70 * time.Millisecond, WaveSine}, {440, 70 * time.Millisecond, WaveSine}},
	"lever":  {{180, 80 * time.Millisecond, WaveSquare}},
	"shot":   {{660, 100 * time.Millisecond, WaveSaw}},
	"spell":  {{880, 80 * time.Millisecond, WaveSine}, {1320, 120 * time.Millisecond, WaveSine}},
	"arrow":  {{0, 60 * time.Millisecond, WaveNoise}, {520, 60 * time.Millisecond, WaveSaw}},
}

const (
	cueAttack  = 5 * time.Millisecond
	cueRelease = 30 * time.Millisecond
)

// Cue builds the streamer for a named cue at volume 0..100. The bool is
// false for names without a cue.
func Cue(name string, volume float64, rate beep.SampleRate) (beep.Streamer, bool) {
	tones, ok := cues[name]
	if !ok {
		return nil, false
	}

	parts := make([]beep.Streamer, 0, len(tones))
	for _, t := range tones {
		osc := NewOscillator(t.freq, t.duration, t.wave, rate)
		parts = append(parts, NewEnvelope(osc, t.duration, cueAttack, cueRelease, rate))
	}
	return withVolume(beep.Seq(parts...), math.Min(volume, 100)/100), true
}

// CueNames lists the cues Cue knows.
func CueNames() []string {
	names := make([]string, 0, len(cues))
	for name := range cues {
		names = append(names, name)
	}
	return names
}
