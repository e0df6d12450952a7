package lander

import "math"

// GameStatus is the top-level screen the game is showing.
// Physics only runs in StatusPlaying.
type GameStatus int

const (
	StatusSplash GameStatus = iota
	StatusPlaying
	StatusNewLevel
	StatusPaused
	StatusGameOver
)

var statusNames = [...]string{"splash", "playing", "new_level", "paused", "game_over"}

func (s GameStatus) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// PodStatus is the lifecycle stage of the descent pod.
type PodStatus int

const (
	PodInactive PodStatus = iota
	PodDropping
	PodAscending
	PodAutoDock
	PodReadyForTakeOff
	PodExploding
)

var podStatusNames = [...]string{"inactive", "dropping", "ascending", "auto_dock", "ready_for_take_off", "exploding"}

func (s PodStatus) String() string {
	if int(s) < len(podStatusNames) {
		return podStatusNames[s]
	}
	return "unknown"
}

// Active reports whether the pod is in flight or on the pad.
func (s PodStatus) Active() bool {
	return s != PodInactive && s != PodExploding
}

// ManStatus tracks the stranded figure.
type ManStatus int

const (
	ManInactive ManStatus = iota
	ManEnteringPod
)

// Mothership patrols the top of the world.
type Mothership struct {
	X, Y   float64
	Dir    float64 // +1 or -1
	Speed  float64
	Width  float64
	Height float64
}

// Blob is one circle of an asteroid. Its centre is the asteroid anchor plus the offset.
type Blob struct {
	OffsetX float64
	OffsetY float64
	Radius  float64
}

// Asteroid is a drifting cluster of three blobs.
type Asteroid struct {
	X, Y  float64 // Anchor
	Speed float64 // Signed horizontal speed, never zero
	Blobs [3]Blob
}

// BlobCenter returns the world position of blob i.
func (a *Asteroid) BlobCenter(i int) (float64, float64) {
	return a.X + a.Blobs[i].OffsetX, a.Y + a.Blobs[i].OffsetY
}

// MinX returns the leftmost world x covered by the asteroid.
func (a *Asteroid) MinX() float64 {
	minX := math.Inf(1)
	for _, b := range a.Blobs {
		minX = math.Min(minX, a.X+b.OffsetX-b.Radius)
	}
	return minX
}

// MaxX returns the rightmost world x covered by the asteroid.
func (a *Asteroid) MaxX() float64 {
	maxX := math.Inf(-1)
	for _, b := range a.Blobs {
		maxX = math.Max(maxX, a.X+b.OffsetX+b.Radius)
	}
	return maxX
}

// Pod is the player's capsule. X, Y is the top-left corner.
type Pod struct {
	X, Y           float64
	Size           float64
	Status         PodStatus
	ExplosionTimer int
	FreshExplosion bool // Set only on the tick the pod blew up
	ScrapeTimer    int
}

// CenterX returns the pod's horizontal centre.
func (p *Pod) CenterX() float64 { return p.X + p.Size/2 }

// CenterY returns the pod's vertical centre.
func (p *Pod) CenterY() float64 { return p.Y + p.Size/2 }

// Man is the figure rescued from the surface.
type Man struct {
	X, Y   float64
	Status ManStatus
}

// Star is a cosmetic background point.
type Star struct {
	X, Y   float64
	Bright bool
}

// Progress holds the level and reserve counters.
type Progress struct {
	Level           int
	MenToRescue     int
	PodsRemaining   int
	PodsCarriedOver int // Reserve before the last level increment
	Rescued         int // Men docked this run
	PrecisionDocks  int
}
