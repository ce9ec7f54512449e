package worm

// StateType names where a session is in its lifecycle.
type StateType string

const (
	StateRunning  StateType = "running"
	StateGameOver StateType = "game_over"
	StateTooSmall StateType = "too_small"
)

// Snapshot captures the scalar state of a session for determinism checks
// and headless runs.
type Snapshot struct {
	Tick     int       `yaml:"tick"`
	Score    int       `yaml:"score"`
	Best     int       `yaml:"best"`
	Head     int       `yaml:"head"`
	Ceiling  int       `yaml:"ceiling"`
	Gap      int       `yaml:"gap"`
	CaveIncr bool      `yaml:"cave_incr"`
	WormDecr bool      `yaml:"worm_decr"`
	WormLen  int       `yaml:"worm_len"`
	AheadLen int       `yaml:"ahead_len"`
	State    StateType `yaml:"state"`
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	if g.engine == nil {
		return Snapshot{Best: g.best, State: StateTooSmall}
	}

	state := StateRunning
	if g.gameOver {
		state = StateGameOver
	}

	e := g.engine
	return Snapshot{
		Tick:     g.ticks,
		Score:    e.Score(),
		Best:     g.best,
		Head:     e.Head(),
		Ceiling:  e.Ceiling(),
		Gap:      e.Gap(),
		CaveIncr: e.CaveIncr(),
		WormDecr: e.WormDecr(),
		WormLen:  e.WormLen(),
		AheadLen: e.AheadLen(),
		State:    state,
	}
}
