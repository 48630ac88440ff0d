// Package game implements the stardodge simulation: a pointer-steered
// ship dodging procedurally spawned falling asteroids, with score
// accruing per survival tick. The package is pure logic with no
// external dependencies so it can be driven deterministically in tests.
package game

import (
	"math/rand"

	"github.com/stardodge/stardodge/internal/config"
	"github.com/stardodge/stardodge/internal/core"
	"github.com/stardodge/stardodge/internal/geom"
)

// State is the session lifecycle state.
type State int

const (
	// StateIdle is the initial state: no simulation, waiting for start.
	StateIdle State = iota
	// StateRunning means ticks advance the simulation.
	StateRunning
	// StateEnded means a collision terminated the run.
	StateEnded
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Raw score ticks per displayed point.
const scorePerPoint = 10

// trailEpsilon absorbs float rounding when twenty 0.05 decrements
// should land exactly on zero.
const trailEpsilon = 1e-9

// Session owns one play-through: the state machine, the entity model,
// and the per-tick simulation step. The platform layer drives it with
// Step() while Running; Step is a no-op in any other state, so a stray
// scheduled tick can never mutate a finished session.
type Session struct {
	cfg config.GameConfig
	rng *rand.Rand

	state  State
	paused bool

	surfaceW float64
	surfaceH float64

	player    Player
	trail     []TrailParticle
	asteroids []Asteroid

	score      int // raw ticks survived; display = score/10
	frameCount int
	target     geom.Vec2 // latest pointer position, surface coordinates
}

// NewSession creates an idle session with the given tuning and seed.
func NewSession(cfg config.GameConfig, seed int64) *Session {
	return &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Resize updates the playable surface dimensions. While not Running it
// also repositions the idle ship marker to bottom-center.
func (s *Session) Resize(w, h float64) {
	s.surfaceW = w
	s.surfaceH = h
	if s.state != StateRunning {
		s.player = s.newPlayer()
		s.target = s.player.Pos
	}
}

// newPlayer builds a fresh ship snapped to bottom-center.
func (s *Session) newPlayer() Player {
	r := s.cfg.Player.Radius
	return Player{
		Pos:    geom.Vec2{X: s.surfaceW / 2, Y: s.surfaceH - r*2},
		Radius: r,
		Color:  core.ColorBrightCyan,
	}
}

// Start begins a run: score, frame counter, asteroids and trail reset,
// the ship and pointer target snap to bottom-center, and the session
// enters Running. Restarting from Ended behaves identically.
func (s *Session) Start() {
	s.score = 0
	s.frameCount = 0
	s.asteroids = s.asteroids[:0]
	s.trail = s.trail[:0]
	s.paused = false
	s.player = s.newPlayer()
	s.target = s.player.Pos
	s.state = StateRunning
}

// Restart is the restart signal; identical reset to Start.
func (s *Session) Restart() {
	s.Start()
}

// Close forces the session back to Idle from any state.
func (s *Session) Close() {
	s.state = StateIdle
	s.paused = false
}

// SetTarget records the latest pointer position. Out-of-bounds targets
// are tolerated; the clamp in Step is the correctness backstop.
func (s *Session) SetTarget(x, y float64) {
	s.target = geom.Vec2{X: x, Y: y}
}

// TogglePause flips the pause flag. Paused sessions stay Running but
// Step does not advance.
func (s *Session) TogglePause() {
	if s.state == StateRunning {
		s.paused = !s.paused
	}
}

// Step advances the simulation by one tick. It executes only while
// Running and unpaused. The order of operations matters for
// reproducibility; see the field-by-field sequence below.
func (s *Session) Step() {
	if s.state != StateRunning || s.paused {
		return
	}

	// 1. Score accrues per survival tick.
	s.score++

	// 2-3. Ease the ship toward the pointer target, then clamp it to
	// the playable rectangle inset by its radius.
	s.player.Pos = geom.LerpVec(s.player.Pos, s.target, s.cfg.Player.LerpFactor)
	r := s.player.Radius
	s.player.Pos = geom.ClampVec(s.player.Pos, r, s.surfaceW-r, r, s.surfaceH-r)

	// 4. Emit a trail particle on the emission cadence.
	if s.frameCount%s.cfg.Trail.EveryTicks == 0 {
		s.trail = append(s.trail, TrailParticle{
			Pos:    geom.Vec2{X: s.player.Pos.X, Y: s.player.Pos.Y + r*s.cfg.Trail.OffsetFactor},
			Radius: s.cfg.Trail.Radius,
			Alpha:  1,
		})
	}

	// 5. Age the trail; expired particles drop out, survivors keep
	// their creation order.
	alive := s.trail[:0]
	for _, p := range s.trail {
		p.Pos.Y += s.cfg.Trail.FallSpeed
		p.Alpha -= s.cfg.Trail.AlphaDecay
		if p.Alpha > trailEpsilon {
			alive = append(alive, p)
		}
	}
	s.trail = alive

	// 6. Spawn on the score-dependent cadence.
	if s.frameCount%s.cfg.Spawn.IntervalFor(s.score) == 0 {
		s.asteroids = append(s.asteroids, spawnAsteroid(s.rng, s.cfg.Asteroids, s.score, s.surfaceW))
	}

	// 7. Advance asteroids.
	for i := range s.asteroids {
		s.asteroids[i].Pos.Y += s.asteroids[i].Speed
		s.asteroids[i].Rotation += s.asteroids[i].RotationSpeed
	}

	// 8. Cull asteroids fully below the view.
	remaining := s.asteroids[:0]
	for _, a := range s.asteroids {
		if a.Pos.Y <= s.surfaceH+a.Size {
			remaining = append(remaining, a)
		}
	}
	s.asteroids = remaining

	// 9. Collision test in insertion order; the first hit ends the
	// session and aborts the rest of the tick, so the frame counter is
	// not incremented on the collision tick.
	margin := s.cfg.Collision.Margin
	for _, a := range s.asteroids {
		if s.player.Pos.Dist(a.Pos) < s.player.Radius+a.Size-margin {
			s.state = StateEnded
			return
		}
	}

	// 10. No collision: the tick completes.
	s.frameCount++
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	return s.state
}

// Paused reports whether the running session is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Score returns the raw tick score.
func (s *Session) Score() int {
	return s.score
}

// DisplayScore returns the score shown to the player: floor(score/10).
func (s *Session) DisplayScore() int {
	return s.score / scorePerPoint
}

// FrameCount returns the number of completed ticks this run.
func (s *Session) FrameCount() int {
	return s.frameCount
}

// SurfaceSize returns the playable surface dimensions in units.
func (s *Session) SurfaceSize() (float64, float64) {
	return s.surfaceW, s.surfaceH
}

// Player returns the current ship state.
func (s *Session) Player() Player {
	return s.player
}

// Target returns the point the ship is easing toward.
func (s *Session) Target() geom.Vec2 {
	return s.target
}

// Asteroids returns the live asteroid set in insertion order.
func (s *Session) Asteroids() []Asteroid {
	return s.asteroids
}

// Trail returns the live trail particles, oldest first.
func (s *Session) Trail() []TrailParticle {
	return s.trail
}

// AddAsteroid appends an asteroid directly, bypassing the spawner.
// Used to construct deterministic scenarios.
func (s *Session) AddAsteroid(a Asteroid) {
	s.asteroids = append(s.asteroids, a)
}
