package lander

// Sound is an audio cue emitted by the simulation.
// The platform drains them after every tick.
type Sound int

const (
	SoundExplosion Sound = iota
	SoundLanded
	SoundDocked
	SoundSeatbelt
	SoundTakeOff
	SoundDropPod
	SoundScrape
	SoundBonus
)

var soundNames = [...]string{"explosion", "landed", "docked", "seatbelt", "take_off", "drop_pod", "scrape", "bonus"}

// String returns the sound's tag.
func (s Sound) String() string {
	if int(s) < len(soundNames) {
		return soundNames[s]
	}
	return "unknown"
}

// emit queues a sound for the current tick.
func (w *World) emit(s Sound) {
	w.sounds = append(w.sounds, s)
}
