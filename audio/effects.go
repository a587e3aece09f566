package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of the given wave
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
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
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = rand.Float64()*2 - 1
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

// envelope applies linear attack and release to a stream of fixed length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope shapes s over duration with the given attack and release ramps
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if remaining := e.total - e.position; len(samples) > remaining {
		samples = samples[:remaining]
	}

	n, ok = e.streamer.Stream(samples)
	releaseStart := e.total - e.release

	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; 0 silences it since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Cue sound shapes
const (
	paddleCueDuration = 60 * time.Millisecond
	brickCueNote      = 45 * time.Millisecond
	cueAttack         = 4 * time.Millisecond
	cueRelease        = 30 * time.Millisecond
)

// createPaddleSound is a short square blip
func createPaddleSound(rate beep.SampleRate, volume float64) beep.Streamer {
	osc := NewOscillator(440, paddleCueDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, paddleCueDuration, cueAttack, cueRelease, rate)
	return newVolume(shaped, volume*0.6)
}

// createBrickSound is a rising two-note chime
func createBrickSound(rate beep.SampleRate, volume float64) beep.Streamer {
	notes := make([]beep.Streamer, 0, 2)
	for _, freq := range []float64{660, 990} {
		tone, err := generators.SineTone(rate, freq)
		if err != nil {
			// Above Nyquist for this rate
			tone = NewOscillator(freq, brickCueNote, WaveSine, rate)
		}
		notes = append(notes, NewEnvelope(tone, brickCueNote, cueAttack, cueRelease, rate))
	}
	return newVolume(beep.Seq(notes...), volume)
}

// createWallSound is a soft noise tick
func createWallSound(rate beep.SampleRate, volume float64) beep.Streamer {
	noise := NewOscillator(0, 20*time.Millisecond, WaveNoise, rate)
	shaped := NewEnvelope(noise, 20*time.Millisecond, time.Millisecond, 15*time.Millisecond, rate)
	return newVolume(shaped, volume*0.2)
}

// Streamer returns a fresh streamer for cue, nil for unknown cues
func Streamer(cue Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	switch cue {
	case CuePaddle:
		return createPaddleSound(rate, volume)
	case CueBrick:
		return createBrickSound(rate, volume)
	case CueWall:
		return createWallSound(rate, volume)
	default:
		return nil
	}
}
