// Package atlas packs sprites into fixed-size texture pages and writes the
// page images plus placement metadata.
package atlas

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/piwi3910/SpritePack/canvas"
	"github.com/piwi3910/SpritePack/export"
	"github.com/piwi3910/SpritePack/model"
)

var (
	// ErrDuplicateName is returned when a sprite name is already registered.
	ErrDuplicateName = errors.New("sprite name already registered")

	// ErrNoFit is returned when a sprite cannot fit even an empty page.
	ErrNoFit = errors.New("sprite does not fit an empty page")

	// ErrRebuildUnsupported is returned by Rebuild: pre-trim source buffers
	// are not retained after placement, so the atlas cannot repack itself.
	ErrRebuildUnsupported = errors.New("rebuild is not supported: source buffers are not retained")
)

// SpriteEntry is one sprite queued for packing.
type SpriteEntry struct {
	Name   string
	Buffer *canvas.Canvas
	Trim   bool // Trim transparent borders before packing
}

// Atlas packs uniquely named sprites onto one or more pages. Pages are
// created lazily in order and never destroyed. All methods must be called
// from a single goroutine; the atlas does no locking of its own.
type Atlas struct {
	settings model.AtlasSettings
	pages    []*Page
	byName   map[string]model.PlacedSprite
	order    []string // insertion order, drives every exported iteration
}

// New creates an empty atlas with the given settings.
func New(settings model.AtlasSettings) *Atlas {
	return &Atlas{
		settings: settings,
		byName:   make(map[string]model.PlacedSprite),
	}
}

// Settings returns the atlas configuration.
func (a *Atlas) Settings() model.AtlasSettings {
	return a.settings
}

// Pages returns the atlas pages in creation order.
func (a *Atlas) Pages() []*Page {
	return a.pages
}

// SpriteNames returns all placed sprite names in insertion order.
func (a *Atlas) SpriteNames() []string {
	names := make([]string, len(a.order))
	copy(names, a.order)
	return names
}

// SpriteCount returns the number of placed sprites.
func (a *Atlas) SpriteCount() int {
	return len(a.order)
}

// AddSprite trims, pads and places one sprite. The returned PlacedSprite
// records where the content landed. Adding a registered name fails with
// ErrDuplicateName and no state change; a sprite whose padded footprint
// exceeds an empty page fails with ErrNoFit and leaves no page behind.
func (a *Atlas) AddSprite(name string, buf *canvas.Canvas, trim bool) (model.PlacedSprite, error) {
	if _, exists := a.byName[name]; exists {
		return model.PlacedSprite{}, fmt.Errorf("sprite %q: %w", name, ErrDuplicateName)
	}

	content := buf
	trimX, trimY := 0, 0
	trimmed := false
	if trim {
		content, trimX, trimY, trimmed = trimSprite(buf)
	}

	pad := a.settings.Padding
	fw := content.Width() + pad*2
	fh := content.Height() + pad*2

	for _, page := range a.pages {
		if x, y, ok := page.findPosition(fw, fh); ok {
			return a.register(page, name, buf, content, x, y, trimX, trimY, trimmed), nil
		}
	}

	// No existing page fits; try exactly one fresh page. The page joins the
	// atlas only when the sprite actually lands on it.
	candidate := newPage(len(a.pages), a.settings)
	x, y, ok := candidate.findPosition(fw, fh)
	if !ok {
		return model.PlacedSprite{}, fmt.Errorf("sprite %q (%dx%d padded): %w", name, fw, fh, ErrNoFit)
	}
	a.pages = append(a.pages, candidate)
	return a.register(candidate, name, buf, content, x, y, trimX, trimY, trimmed), nil
}

func (a *Atlas) register(page *Page, name string, src, content *canvas.Canvas, x, y, trimX, trimY int, trimmed bool) model.PlacedSprite {
	placed := page.place(name, src, content, x, y, a.settings.Padding, trimX, trimY, trimmed)
	a.byName[name] = placed
	a.order = append(a.order, name)
	return placed
}

// AddSprites places a batch of sprites, tallest source first for denser
// packing. Entries that fail are skipped; sprites already placed stay
// placed. Returns the number of entries added.
func (a *Atlas) AddSprites(entries []SpriteEntry) int {
	sorted := make([]SpriteEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Buffer.Height() > sorted[j].Buffer.Height()
	})

	added := 0
	for _, e := range sorted {
		if _, err := a.AddSprite(e.Name, e.Buffer, e.Trim); err == nil {
			added++
		}
	}
	return added
}

// GetSprite returns the page and placement for a sprite name.
func (a *Atlas) GetSprite(name string) (*Page, model.PlacedSprite, bool) {
	placed, ok := a.byName[name]
	if !ok {
		return nil, model.PlacedSprite{}, false
	}
	return a.pages[placed.Page], placed, true
}

// Result summarizes every page for reports and persistence.
func (a *Atlas) Result() model.PackResult {
	result := model.PackResult{Pages: make([]model.PageInfo, 0, len(a.pages))}
	for _, p := range a.pages {
		result.Pages = append(result.Pages, p.Info())
	}
	return result
}

// Save writes one PNG per page ("{path}.png" for a single page,
// "{path}_{i}.png" otherwise) and, when requested, a metadata file in the
// given format. Returns every written path. Writes are not atomic: pages
// already on disk stay there when a later write fails.
func (a *Atlas) Save(path string, format model.Format, includeMetadata bool) ([]string, error) {
	var saved []string

	for i, page := range a.pages {
		pngPath := path + ".png"
		if len(a.pages) > 1 {
			pngPath = fmt.Sprintf("%s_%d.png", path, i)
		}
		if err := page.Buffer.SavePNG(pngPath); err != nil {
			return saved, fmt.Errorf("failed to save page %d: %w", i, err)
		}
		saved = append(saved, pngPath)
	}

	if includeMetadata {
		metaPath, err := export.WriteMetadata(a.document(path), path, format)
		if err != nil {
			return saved, err
		}
		saved = append(saved, metaPath)
	}

	return saved, nil
}

// document snapshots the atlas state for the metadata exporters.
func (a *Atlas) document(path string) export.Document {
	doc := export.Document{
		BaseName: filepath.Base(path),
		Pages:    make([]export.PageMeta, 0, len(a.pages)),
		Sprites:  make([]model.PlacedSprite, 0, len(a.order)),
	}
	for _, p := range a.pages {
		doc.Pages = append(doc.Pages, export.PageMeta{
			Width:       p.Buffer.Width(),
			Height:      p.Buffer.Height(),
			SpriteCount: len(p.Sprites),
		})
	}
	for _, name := range a.order {
		doc.Sprites = append(doc.Sprites, a.byName[name])
	}
	return doc
}

// Rebuild would repack every sprite from scratch, but the atlas does not
// retain pre-trim source buffers, so it always fails with
// ErrRebuildUnsupported and leaves the atlas untouched. Repacking from disk
// sources is available through the project package.
func (a *Atlas) Rebuild() error {
	return ErrRebuildUnsupported
}

// Build creates an atlas with square pages and packs the given entries,
// tallest first. Returns the atlas and the number of entries placed.
func Build(entries []SpriteEntry, maxSize, padding int, algorithm model.Algorithm) (*Atlas, int, error) {
	if !algorithm.Valid() {
		return nil, 0, fmt.Errorf("unknown packing algorithm %q", algorithm)
	}
	a := New(model.AtlasSettings{
		MaxWidth:   maxSize,
		MaxHeight:  maxSize,
		Padding:    padding,
		PowerOfTwo: true,
		Algorithm:  algorithm,
	})
	added := a.AddSprites(entries)
	return a, added, nil
}

// PackAnimations packs animation frames into a new atlas with default
// padding. Frames are registered as "{animation}_{index}".
func PackAnimations(animations []Animation, maxSize int) (*Atlas, int, error) {
	var entries []SpriteEntry
	for _, anim := range animations {
		for i, frame := range anim.Frames {
			entries = append(entries, SpriteEntry{
				Name:   fmt.Sprintf("%s_%d", anim.Name, i),
				Buffer: frame,
				Trim:   true,
			})
		}
	}
	return Build(entries, maxSize, 1, model.AlgorithmMaxRects)
}
