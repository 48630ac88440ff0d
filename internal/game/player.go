package game

import (
	"github.com/stardodge/stardodge/internal/core"
	"github.com/stardodge/stardodge/internal/geom"
)

// Player is the ship the pointer steers. It is owned exclusively by the
// active session and recreated on every (re)start.
type Player struct {
	Pos    geom.Vec2
	Radius float64
	Color  core.Color
}

// TrailParticle is one puff of the engine trail. Particles are kept in
// creation order (oldest first) and have no identity beyond their slot.
type TrailParticle struct {
	Pos    geom.Vec2
	Radius float64
	Alpha  float64 // in [0, 1], decays each tick
}
