package model

import "github.com/google/uuid"

// Algorithm selects the free-space packing strategy used for atlas pages.
type Algorithm string

const (
	AlgorithmShelf      Algorithm = "shelf"      // Row-based shelf packing (fast, simple)
	AlgorithmMaxRects   Algorithm = "maxrects"   // MaxRects best-area-fit
	AlgorithmGuillotine Algorithm = "guillotine" // Alias of maxrects, kept for config compatibility
)

// Algorithms returns the supported packing algorithms in a stable order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmShelf, AlgorithmMaxRects, AlgorithmGuillotine}
}

// Valid reports whether a names a supported algorithm.
func (a Algorithm) Valid() bool {
	switch a {
	case AlgorithmShelf, AlgorithmMaxRects, AlgorithmGuillotine:
		return true
	}
	return false
}

// Format selects the metadata schema written alongside the page images.
type Format string

const (
	FormatJSON      Format = "json"      // Generic JSON schema
	FormatUnity     Format = "unity"     // Unity-flavored JSON (same payload as json)
	FormatGodot     Format = "godot"     // Godot .tres AtlasTexture resource
	FormatGameMaker Format = "gamemaker" // GameMaker .yy sprite frames
	FormatPhaser    Format = "phaser"    // Phaser 3 texture atlas JSON
)

// Formats returns the supported export formats in a stable order.
func Formats() []Format {
	return []Format{FormatJSON, FormatUnity, FormatGodot, FormatGameMaker, FormatPhaser}
}

// Valid reports whether f names a supported export format.
func (f Format) Valid() bool {
	switch f {
	case FormatJSON, FormatUnity, FormatGodot, FormatGameMaker, FormatPhaser:
		return true
	}
	return false
}

// AtlasSettings holds the packing configuration for one atlas.
// The values are fixed at atlas creation and apply to every page.
type AtlasSettings struct {
	MaxWidth   int       `json:"max_width"`    // Maximum page width in pixels
	MaxHeight  int       `json:"max_height"`   // Maximum page height in pixels
	Padding    int       `json:"padding"`      // Transparent margin around each sprite in pixels
	PowerOfTwo bool      `json:"power_of_two"` // Round page dimensions up to powers of two
	Algorithm  Algorithm `json:"algorithm"`    // Free-space packing strategy
}

func DefaultSettings() AtlasSettings {
	return AtlasSettings{
		MaxWidth:   2048,
		MaxHeight:  2048,
		Padding:    1,
		PowerOfTwo: true,
		Algorithm:  AlgorithmMaxRects,
	}
}

// SpriteSource references a sprite image on disk. Manifest import produces
// these, and project repacking reads the images back from Path.
type SpriteSource struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Path string `json:"path"` // PNG file location
	Trim bool   `json:"trim"` // Trim transparent borders when packing
}

func NewSpriteSource(name, path string) SpriteSource {
	return SpriteSource{
		ID:   uuid.New().String()[:8],
		Name: name,
		Path: path,
		Trim: true,
	}
}

// PlacedSprite records where one sprite landed inside an atlas page.
// X/Y point at the sprite content itself, inside the padding margin, and
// Width/Height are the content dimensions after trimming. Immutable once
// recorded.
type PlacedSprite struct {
	Name           string `json:"name"`
	Page           int    `json:"page"`            // Index of the owning page
	X              int    `json:"x"`               // Content position from page left (px)
	Y              int    `json:"y"`               // Content position from page top (px)
	Width          int    `json:"width"`           // Content width after trimming (px)
	Height         int    `json:"height"`          // Content height after trimming (px)
	OriginalWidth  int    `json:"original_width"`  // Source width before trimming (px)
	OriginalHeight int    `json:"original_height"` // Source height before trimming (px)
	Trimmed        bool   `json:"trimmed"`         // Whether transparent borders were removed
	TrimX          int    `json:"trim_x"`          // Left inset of the content within the source (px)
	TrimY          int    `json:"trim_y"`          // Top inset of the content within the source (px)
	Rotated        bool   `json:"rotated"`         // Always false; rotation is never performed
}

// PaddedWidth returns the footprint width the sprite reserved on its page.
func (ps PlacedSprite) PaddedWidth(padding int) int {
	return ps.Width + padding*2
}

// PaddedHeight returns the footprint height the sprite reserved on its page.
func (ps PlacedSprite) PaddedHeight(padding int) int {
	return ps.Height + padding*2
}

// PageInfo summarizes one atlas page for results and reports.
type PageInfo struct {
	Index   int            `json:"index"`
	Width   int            `json:"width"`  // Page width in pixels
	Height  int            `json:"height"` // Page height in pixels
	Sprites []PlacedSprite `json:"sprites"`
}

// UsedArea returns the total pixel area covered by sprite content.
func (pi PageInfo) UsedArea() int {
	var total int
	for _, s := range pi.Sprites {
		total += s.Width * s.Height
	}
	return total
}

// TotalArea returns the page area in pixels.
func (pi PageInfo) TotalArea() int {
	return pi.Width * pi.Height
}

// Occupancy returns the usage percentage.
func (pi PageInfo) Occupancy() float64 {
	ta := pi.TotalArea()
	if ta == 0 {
		return 0
	}
	return (float64(pi.UsedArea()) / float64(ta)) * 100.0
}

// PackResult holds the outcome of packing one sprite set.
type PackResult struct {
	Pages    []PageInfo `json:"pages"`
	Unplaced []string   `json:"unplaced,omitempty"` // Names that fit no page
}

// SpriteCount returns the number of placed sprites across all pages.
func (pr PackResult) SpriteCount() int {
	var total int
	for _, p := range pr.Pages {
		total += len(p.Sprites)
	}
	return total
}

// TotalOccupancy returns overall page usage percentage.
func (pr PackResult) TotalOccupancy() float64 {
	var usedArea, totalArea int
	for _, p := range pr.Pages {
		usedArea += p.UsedArea()
		totalArea += p.TotalArea()
	}
	if totalArea == 0 {
		return 0
	}
	return (float64(usedArea) / float64(totalArea)) * 100.0
}

// Project ties a sprite set and its settings together for save/load.
// Sources keep disk paths rather than pixel data, so a saved project can be
// repacked from scratch at any time.
type Project struct {
	Name     string         `json:"name"`
	Sources  []SpriteSource `json:"sources"`
	Settings AtlasSettings  `json:"settings"`
	Result   *PackResult    `json:"result,omitempty"`
}

func NewProject() Project {
	return Project{
		Name:     "Untitled",
		Sources:  []SpriteSource{},
		Settings: DefaultSettings(),
	}
}

// FindSourceByName returns the source with the given sprite name, or nil.
func (p *Project) FindSourceByName(name string) *SpriteSource {
	for i := range p.Sources {
		if p.Sources[i].Name == name {
			return &p.Sources[i]
		}
	}
	return nil
}
