package config

import (
	_ "embed"
)

//go:embed defaults/lander.yaml
var defaultLanderYAML []byte

// DefaultLanderConfig returns the built-in lander configuration.
// It must stay in sync with defaults/lander.yaml.
func DefaultLanderConfig() LanderConfig {
	return LanderConfig{
		World: WorldConfig{
			Width:        1280,
			Height:       800,
			GroundHeight: 40,
		},
		Mothership: MothershipConfig{
			StartX: 50,
			Y:      100,
			Width:  80,
			Height: 30,
			Speed:  10,
			Margin: 50,
		},
		Pod: PodConfig{
			Size:           20,
			DropStep:       5,
			AscendStep:     5,
			SteerStep:      4,
			AutoDockStep:   20,
			DockTolerance:  10,
			ExplosionTicks: 20,
			ScrapeTicks:    12,
		},
		Pad: PadConfig{
			Width:  250,
			Height: 20,
		},
		Man: ManConfig{
			Width:          6,
			Height:         20,
			Step:           10,
			BoardingOffset: 15,
			SpawnFraction:  0.75,
		},
		Asteroids: AsteroidConfig{
			BaseCount:     16,
			PerLevel:      2,
			BandTop:       0.22,
			BandBottom:    0.70,
			BaseMaxSpeed:  4,
			SpeedPerLevel: 1,
			MinSpeed:      1,
			SpawnMargin:   50,
			Blobs: []BlobRange{
				{MinRadius: 20, MaxRadius: 40, MinOffsetX: 20, MaxOffsetX: 40, MinOffsetY: 30, MaxOffsetY: 50},
				{MinRadius: 30, MaxRadius: 50, MinOffsetX: 50, MaxOffsetX: 70, MinOffsetY: 30, MaxOffsetY: 50},
				{MinRadius: 20, MaxRadius: 40, MinOffsetX: 80, MaxOffsetX: 100, MinOffsetY: 30, MaxOffsetY: 50},
			},
		},
		Stars: StarConfig{
			Count: 120,
		},
		Difficulty: DifficultyConfig{
			Progression:   true,
			SpeedScale:    1.0,
			ReserveBase:   1.0,
			ReservePerMan: 0.6,
		},
		Debug: DebugConfig{
			NoPenalty: false,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLanderYAML
}
