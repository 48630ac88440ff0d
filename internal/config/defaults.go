package config

import (
	_ "embed"
)

//go:embed defaults/stardodge.yaml
var defaultGameYAML []byte

// Default returns the built-in game configuration.
func Default() GameConfig {
	return GameConfig{
		Player: PlayerConfig{
			Radius:     20,
			LerpFactor: 0.15,
		},
		Trail: TrailConfig{
			EveryTicks:   3,
			OffsetFactor: 0.75,
			Radius:       6,
			FallSpeed:    2,
			AlphaDecay:   0.05,
		},
		Asteroids: AsteroidsConfig{
			MinSize:          10,
			MaxSize:          35,
			MinSpeed:         2,
			MaxSpeed:         5,
			SpeedPerScore:    0.005,
			MaxRotationSpeed: 0.05,
		},
		Spawn: SpawnConfig{
			Tiers: []SpawnTier{
				{UpToScore: 500, IntervalTicks: 45},
				{UpToScore: 1000, IntervalTicks: 35},
				{UpToScore: 2000, IntervalTicks: 25},
			},
			FinalIntervalTicks: 15,
		},
		Collision: CollisionConfig{
			Margin: 5,
		},
	}
}
