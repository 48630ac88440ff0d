package core

// RuntimeConfig contains configuration the platform passes to a session
// at initialization. The simulation uses it to size the playable surface
// and for deterministic seeding.
type RuntimeConfig struct {
	Cols     int   // Terminal width in cells
	Rows     int   // Terminal height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Cols:     80,
		Rows:     24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
