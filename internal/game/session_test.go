package game

import (
	"math"
	"testing"

	"github.com/stardodge/stardodge/internal/config"
	"github.com/stardodge/stardodge/internal/geom"
)

// newTestSession returns a started session on an 800×600 surface.
func newTestSession(t *testing.T, seed int64) *Session {
	t.Helper()
	s := NewSession(config.Default(), seed)
	s.Resize(800, 600)
	s.Start()
	return s
}

func TestStartResetsState(t *testing.T) {
	s := newTestSession(t, 1)

	snap := s.Snapshot()
	if snap.State != StateRunning {
		t.Fatalf("state = %v, expected running", snap.State)
	}
	if snap.Score != 0 || snap.FrameCount != 0 || snap.Asteroids != 0 || snap.Trail != 0 {
		t.Errorf("start did not zero state: %+v", snap)
	}

	// Ship and target snap to bottom-center.
	r := config.Default().Player.Radius
	if snap.PlayerX != 400 || snap.PlayerY != 600-r*2 {
		t.Errorf("player at (%v, %v), expected bottom-center", snap.PlayerX, snap.PlayerY)
	}
	if snap.TargetX != snap.PlayerX || snap.TargetY != snap.PlayerY {
		t.Errorf("target (%v, %v) not snapped to player", snap.TargetX, snap.TargetY)
	}
}

func TestStepIsNoOpOutsideRunning(t *testing.T) {
	s := NewSession(config.Default(), 1)
	s.Resize(800, 600)

	// Idle: nothing moves.
	s.Step()
	if snap := s.Snapshot(); snap.Score != 0 || snap.State != StateIdle {
		t.Errorf("idle Step mutated state: %+v", snap)
	}

	// Ended: score frozen.
	s.Start()
	s.AddAsteroid(Asteroid{Pos: s.Player().Pos, Size: 20})
	s.Step()
	if s.State() != StateEnded {
		t.Fatalf("expected ended, got %v", s.State())
	}
	final := s.Score()
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if s.Score() != final {
		t.Errorf("score advanced after game over: %d -> %d", final, s.Score())
	}
}

func TestScoreIncrementsOncePerTick(t *testing.T) {
	s := newTestSession(t, 1)

	for i := 1; i <= 25; i++ {
		s.Step()
		if s.Score() != i {
			t.Fatalf("after %d ticks score = %d", i, s.Score())
		}
	}
	if s.DisplayScore() != 2 {
		t.Errorf("displayed score = %d, expected floor(25/10) = 2", s.DisplayScore())
	}
}

func TestPlayerAlwaysClamped(t *testing.T) {
	s := newTestSession(t, 7)
	r := s.Player().Radius

	// Malformed targets outside the surface are tolerated silently.
	targets := []geom.Vec2{
		{X: -500, Y: -500},
		{X: 5000, Y: 5000},
		{X: 400, Y: -100},
		{X: -100, Y: 300},
	}
	for _, target := range targets {
		s.SetTarget(target.X, target.Y)
		for i := 0; i < 40 && s.State() == StateRunning; i++ {
			s.Step()
			p := s.Player().Pos
			if p.X < r || p.X > 800-r || p.Y < r || p.Y > 600-r {
				t.Fatalf("player escaped playable rectangle: %+v (target %+v)", p, target)
			}
		}
		if s.State() != StateRunning {
			// A spawned asteroid caught the ship while it hugged the
			// top edge; the clamp property held for every tick run.
			return
		}
	}
}

func TestPlayerConvergesToTarget(t *testing.T) {
	s := newTestSession(t, 1)
	s.SetTarget(400, 500)

	for i := 0; i < 50; i++ {
		s.Step()
	}

	if s.State() != StateRunning {
		t.Fatalf("run ended unexpectedly: %v", s.State())
	}
	if s.Score() != 50 {
		t.Errorf("score = %d, expected 50", s.Score())
	}
	p := s.Player().Pos
	if math.Abs(p.X-400) > 0.1 || math.Abs(p.Y-500) > 0.1 {
		t.Errorf("player at (%v, %v), expected convergence to (400, 500)", p.X, p.Y)
	}
}

func TestCollisionPredicate(t *testing.T) {
	// Effective combined radius is 20+20-5 = 35.
	tests := []struct {
		name      string
		offset    float64
		colliding bool
	}{
		{"coincident centers", 0, true},
		{"inside margin", 34.9, true},
		{"just outside", 36, false},
		{"exactly at boundary", 35, false}, // predicate is strict less-than
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestSession(t, 1)
			p := s.Player()
			s.AddAsteroid(Asteroid{
				Pos:  geom.Vec2{X: p.Pos.X + tc.offset, Y: p.Pos.Y},
				Size: 20,
			})
			s.Step()

			got := s.State() == StateEnded
			if got != tc.colliding {
				t.Errorf("offset %v: collision = %v, expected %v", tc.offset, got, tc.colliding)
			}
		})
	}
}

func TestCollisionTickFreezesFrameCount(t *testing.T) {
	s := newTestSession(t, 1)
	for i := 0; i < 5; i++ {
		s.Step()
	}
	before := s.FrameCount()

	s.AddAsteroid(Asteroid{Pos: s.Player().Pos, Size: 20})
	s.Step()

	if s.State() != StateEnded {
		t.Fatal("expected collision to end the session")
	}
	// Score increments at the top of the tick, the frame counter at the
	// bottom; collision aborts in between.
	if s.Score() != 6 {
		t.Errorf("score = %d, expected 6", s.Score())
	}
	if s.FrameCount() != before {
		t.Errorf("frameCount = %d, expected %d (unchanged)", s.FrameCount(), before)
	}
}

func TestFirstCollisionWins(t *testing.T) {
	s := newTestSession(t, 1)
	p := s.Player()

	// Two overlapping asteroids; insertion order decides which is
	// evaluated, and either way exactly one fatal hit ends the run.
	s.AddAsteroid(Asteroid{Pos: p.Pos, Size: 20})
	s.AddAsteroid(Asteroid{Pos: p.Pos, Size: 30})
	s.Step()

	if s.State() != StateEnded {
		t.Error("expected collision")
	}
}

func TestRestartFromEnded(t *testing.T) {
	s := newTestSession(t, 1)
	for i := 0; i < 30; i++ {
		s.Step()
	}
	s.AddAsteroid(Asteroid{Pos: s.Player().Pos, Size: 20})
	s.Step()
	if s.State() != StateEnded {
		t.Fatal("setup: session should have ended")
	}

	s.Restart()

	snap := s.Snapshot()
	if snap.State != StateRunning {
		t.Errorf("state = %v, expected running", snap.State)
	}
	if snap.Score != 0 || snap.FrameCount != 0 {
		t.Errorf("counters not reset: score=%d frames=%d", snap.Score, snap.FrameCount)
	}
	if snap.Asteroids != 0 || snap.Trail != 0 {
		t.Errorf("entities not reset: asteroids=%d trail=%d", snap.Asteroids, snap.Trail)
	}
	r := config.Default().Player.Radius
	if snap.PlayerX != 400 || snap.PlayerY != 600-r*2 {
		t.Errorf("player at (%v, %v), expected bottom-center", snap.PlayerX, snap.PlayerY)
	}
}

func TestCloseForcesIdle(t *testing.T) {
	s := newTestSession(t, 1)
	s.Step()
	s.Close()

	if s.State() != StateIdle {
		t.Fatalf("state = %v, expected idle", s.State())
	}
	score := s.Score()
	s.Step()
	if s.Score() != score {
		t.Error("Step mutated a closed session")
	}
}

func TestTrailLifecycle(t *testing.T) {
	s := newTestSession(t, 1)

	// First particle is emitted on the first tick and ages with it.
	s.Step()
	trail := s.Trail()
	if len(trail) != 1 {
		t.Fatalf("trail length = %d, expected 1", len(trail))
	}
	if math.Abs(trail[0].Alpha-0.95) > 1e-9 {
		t.Errorf("alpha after first tick = %v, expected 0.95", trail[0].Alpha)
	}

	// Alpha strictly decreases by 0.05 per tick; the oldest particle is
	// removed the tick its alpha reaches zero, i.e. after 20 decays.
	prev := trail[0].Alpha
	for tick := 2; tick <= 19; tick++ {
		s.Step()
		first := s.Trail()[0]
		if math.Abs(prev-first.Alpha-0.05) > 1e-9 {
			t.Fatalf("tick %d: alpha %v -> %v, expected -0.05 step", tick, prev, first.Alpha)
		}
		prev = first.Alpha
	}

	// Tick 20: the original particle expires. Emissions happened on
	// ticks 1, 4, 7, 10, 13, 16, 19; six survivors remain.
	s.Step()
	trail = s.Trail()
	if len(trail) != 6 {
		t.Fatalf("trail length after expiry = %d, expected 6", len(trail))
	}
	// Oldest survivor was emitted on tick 4 and has decayed 17 times.
	if math.Abs(trail[0].Alpha-(1-0.05*17)) > 1e-9 {
		t.Errorf("oldest survivor alpha = %v, expected 0.15", trail[0].Alpha)
	}

	// Insertion order preserved: strictly increasing alpha oldest to newest.
	for i := 1; i < len(trail); i++ {
		if trail[i].Alpha <= trail[i-1].Alpha {
			t.Errorf("trail order broken at %d: %v <= %v", i, trail[i].Alpha, trail[i-1].Alpha)
		}
	}
}

func TestTrailEmittedBelowShip(t *testing.T) {
	s := newTestSession(t, 1)
	s.Step()

	p := s.Player()
	particle := s.Trail()[0]
	if particle.Pos.Y <= p.Pos.Y {
		t.Errorf("trail particle at y=%v, expected below ship y=%v", particle.Pos.Y, p.Pos.Y)
	}
	if particle.Pos.X != p.Pos.X {
		t.Errorf("trail particle x=%v, expected ship x=%v", particle.Pos.X, p.Pos.X)
	}
}

func TestSpawnCadence(t *testing.T) {
	s := newTestSession(t, 99)

	// Frame 0 satisfies frameCount mod interval == 0, so the first tick
	// spawns immediately.
	s.Step()
	if len(s.Asteroids()) != 1 {
		t.Fatalf("asteroids after first tick = %d, expected 1", len(s.Asteroids()))
	}

	// Next spawn lands when the frame counter reaches the tier-one
	// interval of 45.
	for s.FrameCount() < 45 {
		s.Step()
	}
	if got := len(s.Asteroids()); got != 1 {
		t.Fatalf("asteroids before second spawn = %d, expected 1", got)
	}
	s.Step()
	if got := len(s.Asteroids()); got != 2 {
		t.Errorf("asteroids after frame 45 = %d, expected 2", got)
	}
}

func TestAsteroidsFallAndCull(t *testing.T) {
	s := newTestSession(t, 1)
	s.AddAsteroid(Asteroid{
		Pos:           geom.Vec2{X: 100, Y: 0},
		Size:          15,
		Speed:         4,
		Rotation:      1,
		RotationSpeed: 0.02,
	})

	s.Step()
	a := s.Asteroids()[0]
	if a.Pos.Y != 4 {
		t.Errorf("asteroid y = %v, expected 4", a.Pos.Y)
	}
	if math.Abs(a.Rotation-1.02) > 1e-9 {
		t.Errorf("asteroid rotation = %v, expected 1.02", a.Rotation)
	}

	// An asteroid fully below the view is removed.
	s.AddAsteroid(Asteroid{Pos: geom.Vec2{X: 100, Y: 620}, Size: 15, Speed: 1})
	s.Step()
	for _, a := range s.Asteroids() {
		if a.Pos.Y > 600+a.Size {
			t.Errorf("asteroid below view survived cull: %+v", a)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(t, 1)
	s.Step()
	s.TogglePause()

	snap := s.Snapshot()
	for i := 0; i < 10; i++ {
		s.Step()
	}
	if got := s.Snapshot(); got != snap {
		t.Errorf("paused Step mutated state: %+v -> %+v", snap, got)
	}

	s.TogglePause()
	s.Step()
	if s.Score() != snap.Score+1 {
		t.Error("simulation did not resume after unpause")
	}
}

func TestResizeWhileIdleRepositionsMarker(t *testing.T) {
	s := NewSession(config.Default(), 1)
	s.Resize(800, 600)
	s.Resize(400, 400)

	r := config.Default().Player.Radius
	p := s.Player()
	if p.Pos.X != 200 || p.Pos.Y != 400-r*2 {
		t.Errorf("idle marker at (%v, %v), expected (200, %v)", p.Pos.X, p.Pos.Y, 400-r*2)
	}
}

func TestDeterminism(t *testing.T) {
	// Same seed and same pointer path must replay identically.
	run := func() []Snapshot {
		s := newTestSession(t, 12345)
		snaps := make([]Snapshot, 0, 300)
		for i := 0; i < 300; i++ {
			s.SetTarget(float64(100+(i*7)%600), float64(100+(i*11)%400))
			s.Step()
			snaps = append(snaps, s.Snapshot())
			if s.State() == StateEnded {
				break
			}
		}
		return snaps
	}

	first := run()
	second := run()

	if len(first) != len(second) {
		t.Fatalf("runs diverged in length: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs diverged at tick %d: %+v vs %+v", i, first[i], second[i])
		}
	}
}
