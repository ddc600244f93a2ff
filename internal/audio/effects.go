package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	rng      *rand.Rand
}

// NewOscillator creates a finite oscillator of the given duration.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(int64(freq*1000) + 1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	if o.position >= o.duration {
		return 0, false
	}
	for i := range samples {
		if o.position >= o.duration {
			return i, true
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies a linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release over duration.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if remaining := e.totalSamples - e.position; remaining < e.releaseSamples {
			vol = math.Min(vol, float64(remaining)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales s linearly by vol. math.Log2(0) is -Inf, so zero is
// handled as silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// note is a shaped oscillator with short attack and release.
func note(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/2, rate)
}

// Sound identifies one effect.
type Sound int

const (
	SoundShot Sound = iota
	SoundHit
	SoundPop
	SoundSplat
	SoundPowerup
	SoundDeath
	SoundLevelUp
)

// Create builds the streamer for s at the given volume. Unknown sounds
// return nil.
func Create(s Sound, rate beep.SampleRate, vol float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundShot:
		st = note(660, 60*time.Millisecond, WaveSaw, rate)
	case SoundHit:
		st = note(220, 80*time.Millisecond, WaveSquare, rate)
	case SoundPop:
		st = beep.Mix(
			newVolume(note(0, 120*time.Millisecond, WaveNoise, rate), 0.6),
			newVolume(note(330, 120*time.Millisecond, WaveSine, rate), 0.4),
		)
	case SoundSplat:
		st = beep.Mix(
			newVolume(note(0, 250*time.Millisecond, WaveNoise, rate), 0.5),
			newVolume(note(80, 250*time.Millisecond, WaveSine, rate), 0.5),
		)
	case SoundPowerup:
		st = beep.Seq(
			note(987.77, 80*time.Millisecond, WaveSquare, rate),
			note(1318.51, 160*time.Millisecond, WaveSquare, rate),
		)
	case SoundDeath:
		st = beep.Seq(
			note(440, 150*time.Millisecond, WaveSaw, rate),
			note(330, 150*time.Millisecond, WaveSaw, rate),
			note(220, 300*time.Millisecond, WaveSaw, rate),
		)
	case SoundLevelUp:
		st = beep.Seq(
			note(523.25, 100*time.Millisecond, WaveSine, rate),
			note(659.25, 100*time.Millisecond, WaveSine, rate),
			note(783.99, 200*time.Millisecond, WaveSine, rate),
		)
	default:
		return nil
	}
	return newVolume(st, vol)
}
