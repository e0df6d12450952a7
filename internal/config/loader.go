package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable consulted when no
// explicit config path is given.
const EnvConfigPath = "XTARDA_CONFIG"

// LoadLander loads the lander configuration.
// Search order: customPath -> $XTARDA_CONFIG -> ~/.xtarda/lander.yaml ->
// ./configs/lander.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides
// the keys it names.
func LoadLander(customPath string) (LanderConfig, error) {
	if customPath == "" {
		customPath = getEnv(EnvConfigPath, "")
	}

	// An explicit path must exist and parse
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return DefaultLanderConfig(), err
		}
		return cfg, nil
	}

	// Optional locations are skipped when missing or broken
	for _, path := range []string{userConfigPath("lander.yaml"), filepath.Join("configs", "lander.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg := DefaultLanderConfig()
	if err := yaml.Unmarshal(defaultLanderYAML, &cfg); err != nil {
		return DefaultLanderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and validates a single YAML file.
func loadFile(path string) (LanderConfig, error) {
	cfg := DefaultLanderConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config: invalid %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".xtarda", filename)
}

// getEnv returns the value of the environment variable named by key,
// or fallback if the variable is not set.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Marshal renders the configuration as YAML.
func (c LanderConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}

// Validate reports every setting that would break the simulation.
func (c LanderConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}

	positive("world.width", c.World.Width)
	positive("world.height", c.World.Height)
	positive("mothership.width", c.Mothership.Width)
	positive("mothership.height", c.Mothership.Height)
	positive("mothership.speed", c.Mothership.Speed)
	positive("pod.size", c.Pod.Size)
	positive("pod.drop_step", c.Pod.DropStep)
	positive("pod.ascend_step", c.Pod.AscendStep)
	positive("pod.steer_step", c.Pod.SteerStep)
	positive("pod.auto_dock_step", c.Pod.AutoDockStep)
	positive("pad.height", c.Pad.Height)
	positive("man.step", c.Man.Step)
	positive("asteroids.min_speed", c.Asteroids.MinSpeed)

	if c.Mothership.Width+2*c.Mothership.Margin > c.World.Width {
		errs = append(errs, errors.New("mothership does not fit between the margins"))
	}
	if c.World.GroundHeight < 0 {
		errs = append(errs, fmt.Errorf("world.ground_height must not be negative, got %v", c.World.GroundHeight))
	}
	if c.Pod.Size > c.Mothership.Width {
		errs = append(errs, fmt.Errorf("pod.size %v is wider than mothership.width %v, the pod could never dock", c.Pod.Size, c.Mothership.Width))
	}
	if c.Stars.Count < 0 {
		errs = append(errs, fmt.Errorf("stars.count must not be negative, got %d", c.Stars.Count))
	}
	if c.Pad.Width > c.World.Width {
		errs = append(errs, errors.New("pad is wider than the world"))
	}
	if c.Pod.ExplosionTicks <= 0 {
		errs = append(errs, fmt.Errorf("pod.explosion_ticks must be positive, got %d", c.Pod.ExplosionTicks))
	}
	if c.Asteroids.BaseCount < 0 || c.Asteroids.PerLevel < 0 {
		errs = append(errs, errors.New("asteroid counts must not be negative"))
	}
	if c.Asteroids.BandTop < 0 || c.Asteroids.BandBottom > 1 || c.Asteroids.BandTop >= c.Asteroids.BandBottom {
		errs = append(errs, fmt.Errorf("asteroid band [%v, %v) is not inside [0, 1]", c.Asteroids.BandTop, c.Asteroids.BandBottom))
	}
	if top := c.Asteroids.BandTop * c.World.Height; len(c.Asteroids.Blobs) > 0 && top < c.FieldTop() {
		errs = append(errs, fmt.Errorf("asteroids.band_top puts the first row at %v, inside the drop zone (need at least %v)", top, c.FieldTop()))
	}
	if c.Asteroids.BaseMaxSpeed < c.Asteroids.MinSpeed {
		errs = append(errs, errors.New("asteroids.base_max_speed is below min_speed"))
	}
	if 2*c.Asteroids.SpawnMargin >= c.World.Width {
		errs = append(errs, errors.New("asteroids.spawn_margin leaves no room to spawn"))
	}
	if len(c.Asteroids.Blobs) == 0 {
		errs = append(errs, errors.New("asteroids.blobs must not be empty"))
	}
	for i, b := range c.Asteroids.Blobs {
		if b.MinRadius <= 0 || b.MinRadius > b.MaxRadius {
			errs = append(errs, fmt.Errorf("blob %d: bad radius range [%v, %v]", i, b.MinRadius, b.MaxRadius))
		}
		if b.MinOffsetX > b.MaxOffsetX || b.MinOffsetY > b.MaxOffsetY {
			errs = append(errs, fmt.Errorf("blob %d: inverted offset range", i))
		}
	}
	if c.Difficulty.SpeedScale <= 0 {
		errs = append(errs, fmt.Errorf("difficulty.speed_scale must be positive, got %v", c.Difficulty.SpeedScale))
	}
	if c.Difficulty.ReserveBase < 0 || c.Difficulty.ReservePerMan < 0 {
		errs = append(errs, errors.New("reserve curve must not be negative"))
	}

	return errors.Join(errs...)
}

// FieldTop returns the highest row anchor at which no blob core reaches
// above the bottom of a pod that has just left the mothership.
func (c LanderConfig) FieldTop() float64 {
	spawnBottom := c.Mothership.Y + c.Mothership.Height + c.Pod.Size
	reach := math.Inf(-1)
	for _, b := range c.Asteroids.Blobs {
		reach = math.Max(reach, b.MaxRadius-b.MinOffsetY)
	}
	if math.IsInf(reach, -1) {
		return spawnBottom
	}
	return spawnBottom + reach
}

// ApplyLanderPreset modifies the config based on a difficulty preset.
func ApplyLanderPreset(cfg *LanderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Progression = true
		cfg.Difficulty.SpeedScale = 0.75
		cfg.Difficulty.ReserveBase = 2
		cfg.Difficulty.ReservePerMan = 1.0
	case DifficultyNormal:
		cfg.Difficulty.Progression = true
		cfg.Difficulty.SpeedScale = 1.0
		cfg.Difficulty.ReserveBase = 1
		cfg.Difficulty.ReservePerMan = 0.6
	case DifficultyHard:
		cfg.Difficulty.Progression = true
		cfg.Difficulty.SpeedScale = 1.25
		cfg.Difficulty.ReserveBase = 1
		cfg.Difficulty.ReservePerMan = 0.25
	case DifficultyFixed:
		cfg.Difficulty.Progression = false
	}
}
