// Package prefs persists the drink browser's user preferences in
// ~/.config/cocktaildb/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Prefs holds what the browser remembers between sessions.
type Prefs struct {
	Theme     string `toml:"theme"`
	LastQuery string `toml:"last_query,omitempty"`
	LastMode  string `toml:"last_mode,omitempty"` // search mode LastQuery ran in
}

const (
	defaultPrefsPath = "~/.config/cocktaildb/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from path. Anything unreadable degrades to the
// defaults; a broken prefs file must never keep the browser from starting.
func Load(path string) Prefs {
	prefs := Prefs{Theme: defaultTheme}

	resolved, err := resolvePath(path)
	if err != nil {
		return prefs
	}
	bytes, err := os.ReadFile(resolved)
	if err != nil {
		return prefs
	}
	var loaded Prefs
	if err := toml.Unmarshal(bytes, &loaded); err != nil {
		return prefs
	}

	if theme := strings.TrimSpace(loaded.Theme); theme != "" {
		prefs.Theme = theme
	}
	prefs.LastQuery = strings.TrimSpace(loaded.LastQuery)
	prefs.LastMode = strings.TrimSpace(loaded.LastMode)
	return prefs
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	bytes, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

func resolvePath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		trimmed = defaultPrefsPath
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
