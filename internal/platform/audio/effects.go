package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
)

// Effect builds the streamer for a sound cue, or nil for an unknown cue.
func Effect(s lander.Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case lander.SoundExplosion:
		// Noise burst over a falling rumble
		d := 600 * time.Millisecond
		noise := NewEnvelope(NewTone(0, d, WaveNoise, rate), d, 5*time.Millisecond, 550*time.Millisecond, rate)
		rumble := NewEnvelope(NewSweep(90, 30, d, WaveSaw, rate), d, 5*time.Millisecond, 500*time.Millisecond, rate)
		return beep.Mix(newVolume(noise, 0.6), newVolume(rumble, 0.35))

	case lander.SoundLanded:
		d := 180 * time.Millisecond
		return NewEnvelope(NewSweep(160, 60, d, WaveSine, rate), d, 2*time.Millisecond, 150*time.Millisecond, rate)

	case lander.SoundDocked:
		return chime(rate, 523.25, 783.99, WaveSine)

	case lander.SoundSeatbelt:
		d := 40 * time.Millisecond
		click := func() beep.Streamer {
			return NewEnvelope(NewTone(1800, d, WaveSquare, rate), d, time.Millisecond, 30*time.Millisecond, rate)
		}
		return beep.Seq(newVolume(click(), 0.3), beep.Silence(rate.N(60*time.Millisecond)), newVolume(click(), 0.3))

	case lander.SoundTakeOff:
		d := 500 * time.Millisecond
		return NewEnvelope(NewSweep(120, 480, d, WaveSaw, rate), d, 50*time.Millisecond, 200*time.Millisecond, rate)

	case lander.SoundDropPod:
		d := 300 * time.Millisecond
		return NewEnvelope(NewSweep(600, 200, d, WaveSine, rate), d, 10*time.Millisecond, 150*time.Millisecond, rate)

	case lander.SoundScrape:
		d := 120 * time.Millisecond
		return newVolume(NewEnvelope(NewTone(0, d, WaveNoise, rate), d, 5*time.Millisecond, 80*time.Millisecond, rate), 0.35)

	case lander.SoundBonus:
		return chime(rate, 987.77, 1318.51, WaveSquare)
	}
	return nil
}

// chime plays two short notes in sequence.
func chime(rate beep.SampleRate, f1, f2 float64, wave WaveType) beep.Streamer {
	d1, d2 := 90*time.Millisecond, 240*time.Millisecond
	n1 := NewEnvelope(NewTone(f1, d1, wave, rate), d1, 2*time.Millisecond, 40*time.Millisecond, rate)
	n2 := NewEnvelope(NewTone(f2, d2, wave, rate), d2, 2*time.Millisecond, 200*time.Millisecond, rate)
	return newVolume(beep.Seq(n1, n2), 0.5)
}
