package tui

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/adrg/xdg"
)

var prefsFile = "flock/config.json"

// Prefs are the terminal UI preferences, persisted under the XDG config
// directory. Colors are tview color tag names.
type Prefs struct {
	HumanColor  string `json:"human_color"`
	AIColor     string `json:"ai_color"`
	CursorColor string `json:"cursor_color"`
	TargetColor string `json:"target_color"`
}

var defaultPrefs = Prefs{
	HumanColor:  "green",
	AIColor:     "red",
	CursorColor: "yellow",
	TargetColor: "aqua",
}

// InitPrefs loads the preferences file, writing the defaults on first run.
func InitPrefs() (*Prefs, error) {
	prefs := defaultPrefs

	path, err := xdg.SearchConfigFile(prefsFile)
	if err != nil {
		// No file yet - persist the defaults
		if err := SavePrefs(&prefs); err != nil {
			return nil, err
		}
		return &prefs, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &prefs, nil
		}
		return nil, err
	}
	if err := json.Unmarshal(data, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}

// SavePrefs writes the preferences to the XDG config location.
func SavePrefs(prefs *Prefs) error {
	path, err := xdg.ConfigFile(prefsFile)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(prefs, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
