package model

import "github.com/google/uuid"

// SettingsPreset is a reusable named packing configuration.
type SettingsPreset struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	MaxWidth   int       `json:"max_width"`
	MaxHeight  int       `json:"max_height"`
	Padding    int       `json:"padding"`
	PowerOfTwo bool      `json:"power_of_two"`
	Algorithm  Algorithm `json:"algorithm"`
}

// NewSettingsPreset creates a preset with a generated ID.
func NewSettingsPreset(name string, maxW, maxH, padding int, powerOfTwo bool, alg Algorithm) SettingsPreset {
	return SettingsPreset{
		ID:         uuid.New().String()[:8],
		Name:       name,
		MaxWidth:   maxW,
		MaxHeight:  maxH,
		Padding:    padding,
		PowerOfTwo: powerOfTwo,
		Algorithm:  alg,
	}
}

// ApplyToSettings copies this preset's parameters into the given AtlasSettings.
func (sp SettingsPreset) ApplyToSettings(s *AtlasSettings) {
	s.MaxWidth = sp.MaxWidth
	s.MaxHeight = sp.MaxHeight
	s.Padding = sp.Padding
	s.PowerOfTwo = sp.PowerOfTwo
	s.Algorithm = sp.Algorithm
}

// Settings returns the preset as a standalone AtlasSettings value.
func (sp SettingsPreset) Settings() AtlasSettings {
	var s AtlasSettings
	sp.ApplyToSettings(&s)
	return s
}

// Built-in presets covering common target configurations.
var BuiltinPresets = []SettingsPreset{
	{
		ID:         "builtin-desktop",
		Name:       "Desktop 2048",
		MaxWidth:   2048,
		MaxHeight:  2048,
		Padding:    1,
		PowerOfTwo: true,
		Algorithm:  AlgorithmMaxRects,
	},
	{
		ID:         "builtin-mobile",
		Name:       "Mobile 1024",
		MaxWidth:   1024,
		MaxHeight:  1024,
		Padding:    2,
		PowerOfTwo: true,
		Algorithm:  AlgorithmMaxRects,
	},
	{
		ID:         "builtin-pixelart",
		Name:       "Pixel Art 512",
		MaxWidth:   512,
		MaxHeight:  512,
		Padding:    0,
		PowerOfTwo: true,
		Algorithm:  AlgorithmShelf,
	},
	{
		ID:         "builtin-ui",
		Name:       "UI Elements 4096",
		MaxWidth:   4096,
		MaxHeight:  4096,
		Padding:    2,
		PowerOfTwo: true,
		Algorithm:  AlgorithmMaxRects,
	},
}

// GetPreset returns a built-in preset by name, or the first one if not found.
func GetPreset(name string) SettingsPreset {
	for _, p := range BuiltinPresets {
		if p.Name == name {
			return p
		}
	}
	return BuiltinPresets[0]
}

// PresetNames returns the names of all built-in presets.
func PresetNames() []string {
	var names []string
	for _, p := range BuiltinPresets {
		names = append(names, p.Name)
	}
	return names
}
