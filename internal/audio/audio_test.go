package audio

import (
	"os"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/kevrgithub/tibianer-old/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init()

	os.Exit(m.Run())
}

func drain(s beep.Streamer, max int) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for total < max {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
	}
	return total, peak
}

func TestOscillatorLength(t *testing.T) {
	rate := beep.SampleRate(8000)
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := NewOscillator(440, 100*time.Millisecond, wave, rate)
		n, peak := drain(osc, 10000)
		if n != rate.N(100*time.Millisecond) {
			t.Errorf("wave %d: streamed %d samples, want %d", wave, n, rate.N(100*time.Millisecond))
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %f above 1", wave, peak)
		}
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, rate)
	env := NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, want 0", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %f, want 1", buf[50][0])
	}
	if buf[99][0] >= buf[90][0] {
		t.Errorf("release does not fall: %f then %f", buf[90][0], buf[99][0])
	}
}

func TestCueVolume(t *testing.T) {
	rate := beep.SampleRate(8000)
	tests := []struct {
		name   string
		volume float64
		silent bool
	}{
		{"full", 100, false},
		{"half", 50, false},
		{"muted", 0, true},
	}

	var fullPeak float64
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, ok := Cue("spell", tt.volume, rate)
			if !ok {
				t.Fatal("Cue(spell) not found")
			}
			_, peak := drain(s, 100000)
			if tt.silent && peak != 0 {
				t.Errorf("peak = %f, want silence", peak)
			}
			if !tt.silent && peak == 0 {
				t.Error("cue is silent")
			}
			if tt.volume == 100 {
				fullPeak = peak
			} else if !tt.silent && peak >= fullPeak {
				t.Errorf("peak %f at volume %v not below full %f", peak, tt.volume, fullPeak)
			}
		})
	}

	if _, ok := Cue("trumpet", 100, rate); ok {
		t.Error("Cue(trumpet) found")
	}
}

func TestEngineSoundsHaveCues(t *testing.T) {
	for _, name := range []string{"death", "hit", "splash", "block", "ladder", "lever", "shot", "spell", "arrow"} {
		if _, ok := Cue(name, 100, SampleRate); !ok {
			t.Errorf("no cue for %q", name)
		}
	}
	if len(CueNames()) != len(cues) {
		t.Error("CueNames() incomplete")
	}
}

func TestPlayerFinished(t *testing.T) {
	p := NewPlayer(beep.SampleRate(8000))

	h := p.Play("block", 80)
	if h == 0 {
		t.Fatal("Play(block) handle = 0")
	}
	if p.Finished(h) {
		t.Fatal("Finished() before any sample was pulled")
	}
	if p.Playing() != 1 {
		t.Errorf("Playing() = %d", p.Playing())
	}

	buf := make([][2]float64, 4096)
	p.Stream(buf)

	if !p.Finished(h) {
		t.Error("Finished() = false after the cue was streamed")
	}
	if p.Playing() != 0 {
		t.Errorf("Playing() = %d after finish", p.Playing())
	}

	if u := p.Play("trumpet", 100); u != 0 || !p.Finished(u) {
		t.Errorf("unknown cue handle = %d", u)
	}
}
