package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			if smp[0] > peak {
				peak = smp[0]
			} else if -smp[0] > peak {
				peak = -smp[0]
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestOscillatorLengthAndRange(t *testing.T) {
	rate := beep.SampleRate(44100)
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, 10*time.Millisecond, wave, rate))
		assert.Equal(t, rate.N(10*time.Millisecond), n)
		assert.LessOrEqual(t, peak, 1.0)
	}
}

func TestEnvelopeTruncatesInfiniteSource(t *testing.T) {
	rate := beep.SampleRate(44100)
	src := NewOscillator(440, time.Second, WaveSquare, rate)

	n, _ := drain(t, NewEnvelope(src, 20*time.Millisecond, time.Millisecond, 5*time.Millisecond, rate))
	assert.Equal(t, rate.N(20*time.Millisecond), n)
}

func TestEnvelopeStartsSilent(t *testing.T) {
	rate := beep.SampleRate(44100)
	env := NewEnvelope(NewOscillator(440, time.Second, WaveSquare, rate), 50*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	buf := make([][2]float64, 1)
	n, ok := env.Stream(buf)
	require.True(t, ok)
	require.Equal(t, 1, n)
	assert.Zero(t, buf[0][0])
}

func TestCueStreamersFinite(t *testing.T) {
	for _, cue := range []Cue{CuePaddle, CueBrick, CueWall} {
		s := Streamer(cue, sampleRate, 0.5)
		require.NotNil(t, s, "cue %d", cue)

		n, peak := drain(t, s)
		assert.Positive(t, n)
		assert.Less(t, n, sampleRate.N(time.Second))
		assert.Positive(t, peak)
	}
	assert.Nil(t, Streamer(Cue(99), sampleRate, 1))
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Streamer(CuePaddle, sampleRate, 0))
	assert.Zero(t, peak)
}

func TestPlayerWithoutSpeakerIsNoop(t *testing.T) {
	p := NewPlayer(0.5, nil)

	assert.False(t, p.Started())
	p.Play(CueBrick)
	p.Close()
	p.Close()
}
