// Package project persists sprite projects, settings presets, and
// application configuration as JSON files, and repacks saved projects
// from their source images.
package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/piwi3910/SpritePack/atlas"
	"github.com/piwi3910/SpritePack/importer"
	"github.com/piwi3910/SpritePack/model"
)

// Save writes a project to the given path as JSON.
// It creates any missing parent directories automatically.
func Save(p *model.Project, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode project: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write project file: %w", err)
	}
	return nil
}

// Load reads a project from the given path.
func Load(path string) (*model.Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read project file: %w", err)
	}
	var p model.Project
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse project file: %w", err)
	}
	// Ensure Sources is never nil
	if p.Sources == nil {
		p.Sources = []model.SpriteSource{}
	}
	return &p, nil
}

// Repack loads every source image from its retained path and packs a fresh
// atlas with the project settings. The resulting PackResult is stored on the
// project; sources that could not be loaded or placed are listed in its
// Unplaced names.
func Repack(p *model.Project) (*atlas.Atlas, error) {
	entries, loadErrs := importer.LoadEntries(p.Sources)
	if len(p.Sources) > 0 && len(entries) == 0 {
		return nil, fmt.Errorf("no sprite images could be loaded: %s", strings.Join(loadErrs, "; "))
	}

	a := atlas.New(p.Settings)
	a.AddSprites(entries)

	result := a.Result()
	for _, src := range p.Sources {
		if _, _, ok := a.GetSprite(src.Name); !ok {
			result.Unplaced = append(result.Unplaced, src.Name)
		}
	}
	p.Result = &result

	return a, nil
}
