package hangman

import (
	"sync"

	"github.com/vovakirdan/hangart/internal/config"
)

// Settings are applied to every game created afterwards.
type Settings struct {
	Config config.HangmanConfig
	// Art overrides Config.Art and the art directory, e.g. a gallery entry.
	Art string
}

var (
	settingsMu sync.RWMutex
	settings   = Settings{Config: config.DefaultHangmanConfig()}
)

// SetSettings replaces the settings used by new rounds.
func SetSettings(s Settings) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = s
}

// CurrentSettings returns a copy of the settings used by new rounds.
func CurrentSettings() Settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()

	s := settings
	s.Config.Words = append([]string(nil), settings.Config.Words...)
	return s
}
