package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Settings are the user preferences for the tab filter.
type Settings struct {
	ShowCaptions     bool `json:"show_captions"`
	IncludePath      bool `json:"include_path"`
	PreviewTab       bool `json:"preview_tab"`
	ShowGroupCaption bool `json:"show_group_caption"`
}

// DefaultSettings returns the documented defaults.
func DefaultSettings() Settings {
	return Settings{ShowCaptions: true}
}

// DefaultPath returns the default settings file location.
func DefaultPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "tabfilter", "settings.json")
}

// Load reads the settings file. A missing file, unreadable content, or a
// mistyped value never fails the load: each key falls back independently to
// its default.
func Load(path string) Settings {
	settings := DefaultSettings()

	content, err := os.ReadFile(path)
	if err != nil {
		return settings
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return settings
	}

	readBool(raw, "show_captions", &settings.ShowCaptions)
	readBool(raw, "include_path", &settings.IncludePath)
	readBool(raw, "preview_tab", &settings.PreviewTab)
	readBool(raw, "show_group_caption", &settings.ShowGroupCaption)
	return settings
}

// readBool decodes one key, leaving dst untouched when the key is absent or
// not a boolean.
func readBool(raw map[string]json.RawMessage, key string, dst *bool) {
	value, ok := raw[key]
	if !ok {
		return
	}
	var b bool
	if err := json.Unmarshal(value, &b); err != nil {
		return
	}
	*dst = b
}
