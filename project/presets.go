package project

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/piwi3910/SpritePack/model"
)

// DefaultPresetsPath returns the default file path for settings presets.
func DefaultPresetsPath() string {
	return filepath.Join(DefaultConfigDir(), "presets.json")
}

// SavePresets writes settings presets to a JSON file.
func SavePresets(path string, presets []model.SettingsPreset) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(presets, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadPresets reads settings presets from a JSON file.
// If the file does not exist, it returns the built-in presets.
func LoadPresets(path string) ([]model.SettingsPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// Copy so callers can modify the returned slice freely
			presets := make([]model.SettingsPreset, len(model.BuiltinPresets))
			copy(presets, model.BuiltinPresets)
			return presets, nil
		}
		return nil, err
	}

	var presets []model.SettingsPreset
	if err := json.Unmarshal(data, &presets); err != nil {
		return nil, err
	}
	return presets, nil
}

// SavePresetsToDefault saves settings presets to the default path.
func SavePresetsToDefault(presets []model.SettingsPreset) error {
	return SavePresets(DefaultPresetsPath(), presets)
}

// LoadPresetsFromDefault loads settings presets from the default path.
func LoadPresetsFromDefault() ([]model.SettingsPreset, error) {
	return LoadPresets(DefaultPresetsPath())
}

// ExportPreset exports a single preset to a JSON file (for sharing).
func ExportPreset(path string, preset model.SettingsPreset) error {
	data, err := json.MarshalIndent(preset, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ImportPreset imports a single preset from a JSON file.
func ImportPreset(path string) (model.SettingsPreset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.SettingsPreset{}, err
	}

	var preset model.SettingsPreset
	if err := json.Unmarshal(data, &preset); err != nil {
		return model.SettingsPreset{}, err
	}

	if preset.Name == "" {
		return model.SettingsPreset{}, errors.New("imported preset has no name")
	}
	if preset.ID == "" {
		preset.ID = uuid.New().String()[:8]
	}
	return preset, nil
}
