package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hangart/internal/config"
	"github.com/vovakirdan/hangart/internal/core"
	"github.com/vovakirdan/hangart/internal/games/hangman"
	"github.com/vovakirdan/hangart/internal/storage"
)

func useWord(t *testing.T, word string) {
	t.Helper()
	old := hangman.CurrentSettings()
	t.Cleanup(func() { hangman.SetSettings(old) })

	cfg := config.DefaultHangmanConfig()
	cfg.Lives = 3
	cfg.Words = []string{word}
	cfg.Art = "|abc\n|def\n"
	hangman.SetSettings(hangman.Settings{Config: cfg})
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func press(m Model, msgs ...tea.KeyMsg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func typeWord(m Model, s string) Model {
	for _, r := range s {
		m = press(m, runeKey(r))
	}
	return m
}

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	return NewModel(hangman.New(), store, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, Seed: 7})
}

func TestModelSavesResultOnce(t *testing.T) {
	useWord(t, "go")
	store := openStore(t)
	m := newTestModel(t, store)

	m = typeWord(m, "xgo")
	if !m.State().GameOver || !m.State().Won {
		t.Fatalf("expected a win, got %+v", m.State())
	}

	// Keys after game over must not record the round again
	m = typeWord(m, "abc")

	results, err := store.RecentResults(10)
	if err != nil {
		t.Fatalf("RecentResults() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}

	r := results[0]
	if r.GameID != hangman.IDPenalty || r.Word != "go" || !r.Won {
		t.Errorf("unexpected result %+v", r)
	}
	if r.Misses != 1 || r.Lives != 3 || r.Score != 4 {
		t.Errorf("Misses=%d Lives=%d Score=%d, expected 1, 3, 4", r.Misses, r.Lives, r.Score)
	}
	if r.ArtPoints != 6 || r.ArtVisible != 6 {
		t.Errorf("Art = %d/%d, expected 6/6", r.ArtVisible, r.ArtPoints)
	}
}

func TestModelNextRoundSavesAgain(t *testing.T) {
	useWord(t, "go")
	store := openStore(t)
	m := newTestModel(t, store)

	m = typeWord(m, "go")
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.State().GameOver {
		t.Fatal("Enter after game over should start a new round")
	}
	m = typeWord(m, "xyz")
	if !m.State().GameOver || m.State().Won {
		t.Fatalf("expected a loss, got %+v", m.State())
	}

	st, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}
	if st.Played != 2 || st.Won != 1 {
		t.Errorf("Stats = %+v, expected 2 played, 1 won", st)
	}
}

func TestModelWithoutStore(t *testing.T) {
	useWord(t, "go")
	m := newTestModel(t, nil)

	m = typeWord(m, "go")
	if !m.State().Won {
		t.Error("game should work without a store")
	}
}

func TestModelQuitKeys(t *testing.T) {
	useWord(t, "go")

	m := newTestModel(t, nil)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).IsQuitting() || cmd == nil {
		t.Error("Esc should quit a standalone game")
	}

	m = newTestModel(t, nil)
	m.embedded = true
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !next.(Model).BackToMenu() || next.(Model).IsQuitting() || cmd != nil {
		t.Error("Esc should go back to the menu in a session")
	}

	m = newTestModel(t, nil)
	m = press(m, runeKey('q'))
	if m.IsQuitting() {
		t.Error("q is a guess, not a quit key")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !next.(Model).IsQuitting() {
		t.Error("ctrl+c should quit")
	}
}

func TestModelResizeKeepsRound(t *testing.T) {
	useWord(t, "go")
	m := newTestModel(t, nil)

	m = typeWord(m, "g")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	m = next.(Model)

	view := m.View()
	if !strings.Contains(view, "g _") {
		t.Errorf("resize should keep the round, view:\n%s", view)
	}
}

func TestModelScreenshot(t *testing.T) {
	useWord(t, "go")
	home := t.TempDir()
	t.Setenv("HOME", home)

	m := newTestModel(t, nil)
	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot() error = %v", err)
	}
	if filepath.Dir(path) != filepath.Join(home, ".hangart", "screenshots") {
		t.Errorf("screenshot saved to %s", path)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(10, 4)
	s.DrawText(0, 0, "art")
	s.DrawText(0, 2, "word")

	out := RenderScreen(s, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != s.Row(0) {
		t.Errorf("picture rows should be unstyled, got %q", lines[0])
	}
	if !strings.Contains(lines[2], "word") {
		t.Errorf("status row lost its text: %q", lines[2])
	}
}
