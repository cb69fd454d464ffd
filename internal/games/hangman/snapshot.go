package hangman

// Snapshot captures the game state for testing and persistence.
type Snapshot struct {
	Mode       string
	Word       string
	Masked     string
	Misses     string
	Lives      int
	LivesLeft  int
	Score      int
	GameOver   bool
	Won        bool
	ArtPoints  int
	ArtVisible int
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Mode:       g.mode,
		Word:       string(g.secret.word),
		Masked:     g.secret.masked(),
		Misses:     string(g.misses),
		Lives:      g.cfg.Lives,
		LivesLeft:  g.LivesLeft(),
		Score:      g.score,
		GameOver:   g.gameOver,
		Won:        g.won,
		ArtPoints:  g.image.Len(),
		ArtVisible: g.image.Visible(),
	}
}
