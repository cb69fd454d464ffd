// Package hangman implements a word guessing game whose ASCII-art picture
// is disclosed according to the player's progress.
package hangman

import (
	"math/rand"
	"sync"
	"unicode"

	"github.com/vovakirdan/hangart/internal/art"
	"github.com/vovakirdan/hangart/internal/art/catalog"
	"github.com/vovakirdan/hangart/internal/config"
	"github.com/vovakirdan/hangart/internal/core"
	"github.com/vovakirdan/hangart/internal/registry"
)

// Game IDs.
const (
	IDPenalty = "hangman"
	IDReward  = "hangman_reward"
)

// Game implements registry.Game.
type Game struct {
	mode    string
	runtime core.RuntimeConfig
	cfg     config.HangmanConfig
	rng     *rand.Rand

	secret *secret
	misses []rune
	image  *art.Image

	score    int
	gameOver bool
	won      bool
}

// New creates a game that hides the picture with every miss.
func New() *Game {
	return &Game{mode: config.ModePenalty}
}

// NewReward creates a game that discloses the picture as letters are found.
func NewReward() *Game {
	return &Game{mode: config.ModeReward}
}

// IDForMode returns the game ID for a configured mode.
func IDForMode(mode string) string {
	if mode == config.ModeReward {
		return IDReward
	}
	return IDPenalty
}

func init() {
	registry.Register(IDPenalty, func() registry.Game { return New() })
	registry.Register(IDReward, func() registry.Game { return NewReward() })
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return IDForMode(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == config.ModeReward {
		return "Hangman (Reward)"
	}
	return "Hangman"
}

// Reset starts a new round with a fresh word and artwork.
func (g *Game) Reset(rc core.RuntimeConfig) {
	s := CurrentSettings()

	g.runtime = rc
	g.cfg = s.Config
	g.cfg.Mode = g.mode
	if g.cfg.Lives <= 0 {
		g.cfg.Lives = config.DefaultHangmanConfig().Lives
	}
	g.rng = rand.New(rand.NewSource(rc.Seed))

	words := g.cfg.CleanWords()
	if len(words) == 0 {
		words = config.DefaultHangmanConfig().Words
	}
	g.secret = newSecret(words[g.rng.Intn(len(words))])
	g.misses = nil
	g.score = 0
	g.gameOver = false
	g.won = false

	offset := art.Offset{X: g.cfg.Placement.X, Y: g.cfg.Placement.Y}
	g.image = art.NewWithRand(g.pickArt(s.Art), offset, g.rng)
	g.disclose()

	// A word without letters is solved from the start
	if g.secret.solved() {
		g.finish(true)
	}
}

// pickArt chooses the artwork text for a round: an explicit override, the
// configured art, a random file from the art directory, or "" to let the
// art package pick a built-in picture.
func (g *Game) pickArt(override string) string {
	if catalog.HasImage(override) {
		return override
	}
	if catalog.HasImage(g.cfg.Art) {
		return g.cfg.Art
	}
	if g.cfg.ArtDir != "" {
		if arts := dirArt(g.cfg.ArtDir); len(arts) > 0 {
			return arts[g.rng.Intn(len(arts))]
		}
	}
	return ""
}

var (
	dirArtMu    sync.Mutex
	dirArtCache = make(map[string][]string)
)

// dirArt loads an art directory once. Unreadable directories yield nothing.
func dirArt(dir string) []string {
	dirArtMu.Lock()
	defer dirArtMu.Unlock()

	if texts, ok := dirArtCache[dir]; ok {
		return texts
	}
	arts, err := catalog.NewLoader(dir).LoadAll()
	if err != nil {
		arts = nil
	}
	texts := catalog.Texts(arts)
	dirArtCache[dir] = texts
	return texts
}

// Step applies typed letters and round control actions.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) || (g.gameOver && in.Has(core.ActionConfirm)) {
		g.nextRound()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionGuess) {
		for _, r := range in.Letters {
			if g.gameOver {
				break
			}
			g.Guess(r)
		}
	}

	return core.StepResult{State: g.State()}
}

// nextRound resets with a seed drawn from the current round's RNG, so a
// seeded session stays reproducible.
func (g *Game) nextRound() {
	rc := g.runtime
	rc.Seed = g.rng.Int63()
	g.Reset(rc)
}

// Guess applies one letter.
func (g *Game) Guess(r rune) Outcome {
	if g.gameOver || !unicode.IsLetter(r) {
		return OutcomeIgnored
	}

	fresh, hit := g.secret.guess(r)
	if !fresh {
		return OutcomeRepeated
	}

	outcome := OutcomeHit
	if !hit {
		outcome = OutcomeMiss
		g.misses = append(g.misses, unicode.ToLower(r))
	}

	switch {
	case g.secret.solved():
		g.finish(true)
	case len(g.misses) >= g.cfg.Lives:
		g.finish(false)
	default:
		g.disclose()
	}

	return outcome
}

// disclose updates the picture from the current progress.
func (g *Game) disclose() {
	if g.mode == config.ModeReward {
		g.image.Hide(art.Fraction{Num: g.secret.hidden(), Den: g.secret.letters()})
		return
	}
	g.image.Hide(art.Fraction{Num: len(g.misses), Den: g.cfg.Lives})
}

func (g *Game) finish(won bool) {
	g.gameOver = true
	g.won = won
	if won {
		g.score = (g.cfg.Lives - len(g.misses)) * g.secret.letters()
		g.image.Reveal()
		return
	}
	g.score = 0
	g.disclose()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Won:      g.won,
	}
}

// Image returns the round's artwork.
func (g *Game) Image() *art.Image {
	return g.image
}

// LivesLeft returns the number of misses still allowed.
func (g *Game) LivesLeft() int {
	return g.cfg.Lives - len(g.misses)
}
