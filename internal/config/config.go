// Package config provides YAML-based configuration loading and difficulty
// management for the lander.
package config

// LanderConfig contains every tunable of the lander simulation.
// Distances are world units (the default world is 1280x800), speeds are
// world units per tick and durations are ticks.
type LanderConfig struct {
	World      WorldConfig      `yaml:"world"`
	Mothership MothershipConfig `yaml:"mothership"`
	Pod        PodConfig        `yaml:"pod"`
	Pad        PadConfig        `yaml:"pad"`
	Man        ManConfig        `yaml:"man"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Stars      StarConfig       `yaml:"stars"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Debug      DebugConfig      `yaml:"debug"`
}

// WorldConfig defines the playfield.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"`
}

// MothershipConfig defines the patrolling mothership.
type MothershipConfig struct {
	StartX float64 `yaml:"start_x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"`
	Margin float64 `yaml:"margin"` // Distance kept from either screen edge
}

// PodConfig defines the descent pod.
type PodConfig struct {
	Size           float64 `yaml:"size"`
	DropStep       float64 `yaml:"drop_step"`
	AscendStep     float64 `yaml:"ascend_step"`
	SteerStep      float64 `yaml:"steer_step"`
	AutoDockStep   float64 `yaml:"auto_dock_step"`
	DockTolerance  float64 `yaml:"dock_tolerance"` // Docking altitude below the mothership top
	ExplosionTicks int     `yaml:"explosion_ticks"`
	ScrapeTicks    int     `yaml:"scrape_ticks"` // Minimum gap between two scrape sounds
}

// PadConfig defines the landing pad, centred on the ground.
type PadConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ManConfig defines the stranded figure walking into the pod.
type ManConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Step           float64 `yaml:"step"`
	BoardingOffset float64 `yaml:"boarding_offset"` // Target x relative to the pod's left edge
	SpawnFraction  float64 `yaml:"spawn_fraction"`  // Spawn x as a fraction of world width
}

// AsteroidConfig defines how asteroid fields are generated.
type AsteroidConfig struct {
	BaseCount     int         `yaml:"base_count"`
	PerLevel      int         `yaml:"per_level"`
	BandTop       float64     `yaml:"band_top"`    // Fraction of world height
	BandBottom    float64     `yaml:"band_bottom"` // Fraction of world height
	BaseMaxSpeed  float64     `yaml:"base_max_speed"`
	SpeedPerLevel float64     `yaml:"speed_per_level"`
	MinSpeed      float64     `yaml:"min_speed"` // Dead band: |speed| is never below this
	SpawnMargin   float64     `yaml:"spawn_margin"`
	Blobs         []BlobRange `yaml:"blobs"`
}

// BlobRange bounds the random radius and centre offset of one asteroid blob.
type BlobRange struct {
	MinRadius  float64 `yaml:"min_radius"`
	MaxRadius  float64 `yaml:"max_radius"`
	MinOffsetX float64 `yaml:"min_offset_x"`
	MaxOffsetX float64 `yaml:"max_offset_x"`
	MinOffsetY float64 `yaml:"min_offset_y"`
	MaxOffsetY float64 `yaml:"max_offset_y"`
}

// StarConfig defines the cosmetic star field.
type StarConfig struct {
	Count int `yaml:"count"`
}

// DifficultyConfig defines the reserve curve and speed progression.
// Pods granted per level = floor(ReserveBase + ReservePerMan*menToRescue).
type DifficultyConfig struct {
	Progression   bool    `yaml:"progression"` // Asteroid speed grows with level
	SpeedScale    float64 `yaml:"speed_scale"`
	ReserveBase   float64 `yaml:"reserve_base"`
	ReservePerMan float64 `yaml:"reserve_per_man"`
}

// DebugConfig holds developer switches.
type DebugConfig struct {
	NoPenalty bool `yaml:"no_penalty"` // Explosions do not cost a pod
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}
