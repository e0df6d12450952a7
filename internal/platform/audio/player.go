package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/xtarda-rescue/internal/games/lander"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps simultaneous effects so a burst of scrapes cannot pile up.
const maxVoices = 8

// Player plays sound cues on the default output device.
// A Player that failed to initialize, or was never initialized, is silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with the given master volume in [0, 1].
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker. Callers should log the error and keep playing
// without sound.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play queues the effects for the given cues.
func (p *Player) Play(sounds []lander.Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || len(sounds) == 0 {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	for _, s := range sounds {
		if p.mixer.Len() >= maxVoices {
			return
		}
		if st := Effect(s, sampleRate); st != nil {
			p.mixer.Add(newVolume(st, p.volume))
		}
	}
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
