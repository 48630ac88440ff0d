package game

import (
	"math"
	"math/rand"

	"github.com/stardodge/stardodge/internal/config"
	"github.com/stardodge/stardodge/internal/core"
	"github.com/stardodge/stardodge/internal/geom"
)

// Asteroid is a falling obstacle. Size doubles as the collision radius.
// Rotation and color are cosmetic.
type Asteroid struct {
	Pos           geom.Vec2
	Size          float64
	Speed         float64 // vertical units per tick
	Rotation      float64 // radians
	RotationSpeed float64 // radians per tick
	Color         core.Color
}

// asteroidPalette is the fixed palette spawned asteroids pick from.
var asteroidPalette = []core.Color{
	core.ColorGray,
	core.ColorOrange,
	core.ColorBrightRed,
	core.ColorYellow,
	core.ColorMagenta,
}

// spawnAsteroid generates a new asteroid at the top boundary with a
// randomized horizontal position. Vertical speed scales linearly with
// the raw score, giving a continuous difficulty ramp with no tier jump.
func spawnAsteroid(rng *rand.Rand, cfg config.AsteroidsConfig, score int, surfaceW float64) Asteroid {
	size := geom.Uniform(rng, cfg.MinSize, cfg.MaxSize)
	return Asteroid{
		Pos: geom.Vec2{
			X: geom.Uniform(rng, 0, surfaceW-size),
			Y: -size, // fully above the visible top edge
		},
		Size:          size,
		Speed:         geom.Uniform(rng, cfg.MinSpeed, cfg.MaxSpeed) + float64(score)*cfg.SpeedPerScore,
		Rotation:      geom.Uniform(rng, 0, math.Pi),
		RotationSpeed: geom.Uniform(rng, -cfg.MaxRotationSpeed, cfg.MaxRotationSpeed),
		Color:         asteroidPalette[rng.Intn(len(asteroidPalette))],
	}
}
