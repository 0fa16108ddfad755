// Package audio plays short synthesized cues for engine notifications.
package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/tomz197/rocketraid/internal/event"
)

const sampleRate = beep.SampleRate(44100)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveNoise
)

// tone is a fixed-length oscillator whose amplitude fades linearly to zero.
type tone struct {
	freq     float64
	phase    float64
	wave     wave
	pos      int
	length   int
	rate     beep.SampleRate
	noiseGen func() float64
}

func newTone(freq float64, d time.Duration, w wave) *tone {
	return &tone{
		freq:     freq,
		wave:     w,
		length:   sampleRate.N(d),
		rate:     sampleRate,
		noiseGen: rand.Float64,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.length {
			return i, i > 0
		}

		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveNoise:
			v = t.noiseGen()*2 - 1
		}
		v *= 1 - float64(t.pos)/float64(t.length)

		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// quiet lowers s by the given number of halvings.
func quiet(s beep.Streamer, halvings float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: -halvings}
}

// cue returns the sound for a notification, or nil if it has none.
func cue(t event.Type) beep.Streamer {
	switch t {
	case event.ShotFired:
		return quiet(newTone(880, 40*time.Millisecond, waveSquare), 4)
	case event.RocketHit:
		return quiet(newTone(330, 60*time.Millisecond, waveSquare), 3)
	case event.Destroyed:
		return quiet(newTone(0, 250*time.Millisecond, waveNoise), 2)
	case event.GameOver:
		return quiet(beep.Seq(
			newTone(440, 150*time.Millisecond, waveSine),
			newTone(330, 150*time.Millisecond, waveSine),
			newTone(220, 300*time.Millisecond, waveSine),
		), 1)
	case event.GameReset:
		return quiet(beep.Seq(
			newTone(440, 80*time.Millisecond, waveSine),
			newTone(660, 120*time.Millisecond, waveSine),
		), 2)
	default:
		return nil
	}
}
