package game

// Snapshot captures the observable session state for determinism
// testing and replay verification.
type Snapshot struct {
	State        State
	Paused       bool
	Score        int
	DisplayScore int
	FrameCount   int
	PlayerX      float64
	PlayerY      float64
	TargetX      float64
	TargetY      float64
	SurfaceW     float64
	SurfaceH     float64
	Asteroids    int
	Trail        int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		State:        s.state,
		Paused:       s.paused,
		Score:        s.score,
		DisplayScore: s.DisplayScore(),
		FrameCount:   s.frameCount,
		PlayerX:      s.player.Pos.X,
		PlayerY:      s.player.Pos.Y,
		TargetX:      s.target.X,
		TargetY:      s.target.Y,
		SurfaceW:     s.surfaceW,
		SurfaceH:     s.surfaceH,
		Asteroids:    len(s.asteroids),
		Trail:        len(s.trail),
	}
}
