package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
)

// drain streams s to the end and returns the sample count and peak level.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never finished")
	return 0, 0
}

func TestToneLength(t *testing.T) {
	d := 100 * time.Millisecond
	n, peak := drain(t, NewTone(440, d, WaveSine, sampleRate))
	if n != sampleRate.N(d) {
		t.Errorf("got %d samples, expected %d", n, sampleRate.N(d))
	}
	if peak > 1.0 || peak < 0.5 {
		t.Errorf("peak = %f, expected a full-scale sine", peak)
	}
}

func TestWavesStayInRange(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		_, peak := drain(t, NewSweep(100, 2000, 50*time.Millisecond, wave, sampleRate))
		if peak > 1.0 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
	}
}

func TestEnvelopeShapesEdges(t *testing.T) {
	d := 100 * time.Millisecond
	env := NewEnvelope(NewTone(0, d, WaveSquare, sampleRate), d, 10*time.Millisecond, 10*time.Millisecond, sampleRate)

	buf := make([][2]float64, sampleRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d samples", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected silence at attack start", buf[0][0])
	}
	if math.Abs(buf[n/2][0]) != 1 {
		t.Errorf("middle sample = %f, expected full level", buf[n/2][0])
	}
	if math.Abs(buf[n-1][0]) > 0.01 {
		t.Errorf("last sample = %f, expected near silence", buf[n-1][0])
	}
}

func TestEveryCueHasAnEffect(t *testing.T) {
	cues := []lander.Sound{
		lander.SoundExplosion, lander.SoundLanded, lander.SoundDocked, lander.SoundSeatbelt,
		lander.SoundTakeOff, lander.SoundDropPod, lander.SoundScrape, lander.SoundBonus,
	}
	for _, cue := range cues {
		t.Run(cue.String(), func(t *testing.T) {
			s := Effect(cue, sampleRate)
			if s == nil {
				t.Fatal("no effect")
			}
			n, peak := drain(t, s)
			if n == 0 {
				t.Error("effect is empty")
			}
			if n > sampleRate.N(time.Second) {
				t.Errorf("effect lasts %d samples, expected under a second", n)
			}
			if peak > 1.0 || peak == 0 {
				t.Errorf("peak = %f", peak)
			}
		})
	}
}

func TestVolume(t *testing.T) {
	d := 20 * time.Millisecond
	_, half := drain(t, newVolume(NewTone(0, d, WaveSquare, sampleRate), 0.5))
	if math.Abs(half-0.5) > 1e-9 {
		t.Errorf("half volume peak = %f", half)
	}
	_, silent := drain(t, newVolume(NewTone(0, d, WaveSquare, sampleRate), 0))
	if silent != 0 {
		t.Errorf("zero volume peak = %f", silent)
	}
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(1.0)
	p.Play([]lander.Sound{lander.SoundExplosion})
	if p.mixer.Len() != 0 {
		t.Error("uninitialized player queued an effect")
	}
	p.Close()
}
