// Package config provides YAML-based tuning configuration for the game.
// All gameplay constants live here so behavior can be tuned without
// touching the simulation.
package config

import "fmt"

// GameConfig contains every tuning parameter of the simulation.
type GameConfig struct {
	Player    PlayerConfig    `yaml:"player"`
	Trail     TrailConfig     `yaml:"trail"`
	Asteroids AsteroidsConfig `yaml:"asteroids"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
}

// PlayerConfig defines ship movement parameters.
type PlayerConfig struct {
	// Radius of the ship in surface units, constant per session.
	Radius float64 `yaml:"radius"`
	// LerpFactor is the per-tick fraction of the remaining distance the
	// ship moves toward the pointer target on each axis.
	LerpFactor float64 `yaml:"lerp_factor"`
}

// TrailConfig defines the engine-trail particle system.
type TrailConfig struct {
	// EveryTicks is the tick period between trail particle emissions.
	EveryTicks int `yaml:"every_ticks"`
	// OffsetFactor positions the emission point below the ship center,
	// as a fraction of the ship radius.
	OffsetFactor float64 `yaml:"offset_factor"`
	// Radius of an emitted particle.
	Radius float64 `yaml:"radius"`
	// FallSpeed is how far a particle drops per tick.
	FallSpeed float64 `yaml:"fall_speed"`
	// AlphaDecay is subtracted from a particle's alpha each tick;
	// particles at or below zero alpha are removed.
	AlphaDecay float64 `yaml:"alpha_decay"`
}

// AsteroidsConfig defines asteroid generation ranges.
type AsteroidsConfig struct {
	MinSize float64 `yaml:"min_size"`
	MaxSize float64 `yaml:"max_size"`
	// Base vertical speed range in units per tick.
	MinSpeed float64 `yaml:"min_speed"`
	MaxSpeed float64 `yaml:"max_speed"`
	// SpeedPerScore is added to the base speed per point of raw score,
	// giving a continuous difficulty ramp.
	SpeedPerScore float64 `yaml:"speed_per_score"`
	// MaxRotationSpeed bounds the cosmetic spin, radians per tick.
	MaxRotationSpeed float64 `yaml:"max_rotation_speed"`
}

// SpawnTier is one step of the spawn-interval table: while the raw
// score is at most UpToScore, a new asteroid spawns every IntervalTicks.
type SpawnTier struct {
	UpToScore     int `yaml:"up_to_score"`
	IntervalTicks int `yaml:"interval_ticks"`
}

// SpawnConfig defines the spawn cadence as a step function of score.
// Tiers are checked in order; FinalIntervalTicks applies past the last
// tier, producing discrete difficulty jumps at fixed score thresholds.
type SpawnConfig struct {
	Tiers              []SpawnTier `yaml:"tiers"`
	FinalIntervalTicks int         `yaml:"final_interval_ticks"`
}

// IntervalFor returns the spawn interval in ticks for a raw score.
func (s SpawnConfig) IntervalFor(score int) int {
	for _, tier := range s.Tiers {
		if score <= tier.UpToScore {
			return tier.IntervalTicks
		}
	}
	return s.FinalIntervalTicks
}

// CollisionConfig defines the collision predicate tuning.
type CollisionConfig struct {
	// Margin shrinks the effective combined radius, giving the player a
	// small grace window against visually-touching edges.
	Margin float64 `yaml:"margin"`
}

// Validate checks the configuration for values the simulation cannot
// run with.
func (c GameConfig) Validate() error {
	if c.Player.Radius <= 0 {
		return fmt.Errorf("config: player radius must be positive, got %v", c.Player.Radius)
	}
	if c.Player.LerpFactor <= 0 || c.Player.LerpFactor > 1 {
		return fmt.Errorf("config: lerp factor must be in (0, 1], got %v", c.Player.LerpFactor)
	}
	if c.Trail.EveryTicks <= 0 {
		return fmt.Errorf("config: trail emission period must be positive, got %d", c.Trail.EveryTicks)
	}
	if c.Trail.AlphaDecay <= 0 {
		return fmt.Errorf("config: trail alpha decay must be positive, got %v", c.Trail.AlphaDecay)
	}
	if c.Asteroids.MinSize <= 0 || c.Asteroids.MaxSize < c.Asteroids.MinSize {
		return fmt.Errorf("config: asteroid size range [%v, %v] is invalid", c.Asteroids.MinSize, c.Asteroids.MaxSize)
	}
	if c.Asteroids.MaxSpeed < c.Asteroids.MinSpeed {
		return fmt.Errorf("config: asteroid speed range [%v, %v] is invalid", c.Asteroids.MinSpeed, c.Asteroids.MaxSpeed)
	}
	if c.Spawn.FinalIntervalTicks <= 0 {
		return fmt.Errorf("config: final spawn interval must be positive, got %d", c.Spawn.FinalIntervalTicks)
	}
	for i, tier := range c.Spawn.Tiers {
		if tier.IntervalTicks <= 0 {
			return fmt.Errorf("config: spawn tier %d interval must be positive, got %d", i, tier.IntervalTicks)
		}
		if i > 0 && tier.UpToScore <= c.Spawn.Tiers[i-1].UpToScore {
			return fmt.Errorf("config: spawn tier thresholds must be increasing at tier %d", i)
		}
	}
	if c.Collision.Margin < 0 {
		return fmt.Errorf("config: collision margin must be non-negative, got %v", c.Collision.Margin)
	}
	return nil
}
