package model

import (
	"testing"
)

func TestNewSettingsPreset(t *testing.T) {
	p := NewSettingsPreset("Tiles", 256, 256, 0, false, AlgorithmShelf)
	if len(p.ID) != 8 {
		t.Errorf("expected 8-char ID, got %q", p.ID)
	}
	if p.Name != "Tiles" || p.MaxWidth != 256 || p.MaxHeight != 256 {
		t.Errorf("unexpected preset fields: %+v", p)
	}
	if p.Algorithm != AlgorithmShelf {
		t.Errorf("expected shelf, got %s", p.Algorithm)
	}
}

func TestPresetApplyToSettings(t *testing.T) {
	s := DefaultSettings()
	p := NewSettingsPreset("Tiles", 256, 128, 4, false, AlgorithmGuillotine)
	p.ApplyToSettings(&s)

	if s.MaxWidth != 256 || s.MaxHeight != 128 {
		t.Errorf("expected 256x128, got %dx%d", s.MaxWidth, s.MaxHeight)
	}
	if s.Padding != 4 {
		t.Errorf("expected padding 4, got %d", s.Padding)
	}
	if s.PowerOfTwo {
		t.Error("expected power-of-two disabled")
	}
	if s.Algorithm != AlgorithmGuillotine {
		t.Errorf("expected guillotine, got %s", s.Algorithm)
	}
}

func TestPresetSettingsRoundTrip(t *testing.T) {
	p := GetPreset("Mobile 1024")
	s := p.Settings()
	if s.MaxWidth != 1024 || s.Padding != 2 {
		t.Errorf("unexpected settings from preset: %+v", s)
	}
}

func TestGetPresetFallsBackToFirst(t *testing.T) {
	p := GetPreset("NonExistent")
	if p.Name != BuiltinPresets[0].Name {
		t.Errorf("expected fallback to %s, got %s", BuiltinPresets[0].Name, p.Name)
	}
}

func TestPresetNamesCoverBuiltins(t *testing.T) {
	names := PresetNames()
	if len(names) != len(BuiltinPresets) {
		t.Fatalf("expected %d names, got %d", len(BuiltinPresets), len(names))
	}
	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	if !found["Desktop 2048"] {
		t.Error("missing Desktop 2048 preset")
	}
}

func TestBuiltinPresetAlgorithmsAreValid(t *testing.T) {
	for _, p := range BuiltinPresets {
		if !p.Algorithm.Valid() {
			t.Errorf("preset %s has invalid algorithm %s", p.Name, p.Algorithm)
		}
	}
}
