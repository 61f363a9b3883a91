package atlas

import (
	"github.com/piwi3910/SpritePack/canvas"
	"github.com/piwi3910/SpritePack/engine"
	"github.com/piwi3910/SpritePack/model"
)

// Page is one fixed-size atlas texture together with its free-space tracker
// and the sprites placed on it so far. Pages are append-only; sprites are
// never removed or moved once placed.
type Page struct {
	Index   int
	Buffer  *canvas.Canvas
	Sprites []model.PlacedSprite

	tracker *engine.Tracker
}

// newPage builds an empty page. Dimensions are the configured maximums,
// each rounded up to the next power of two when requested. The rounding is
// unconditional, so a non-power-of-two maximum yields pages larger than the
// configured bound.
func newPage(index int, settings model.AtlasSettings) *Page {
	w := settings.MaxWidth
	h := settings.MaxHeight
	if settings.PowerOfTwo {
		w = nextPowerOfTwo(w)
		h = nextPowerOfTwo(h)
	}
	return &Page{
		Index:   index,
		Buffer:  canvas.New(w, h),
		tracker: engine.NewTracker(w, h, settings.Algorithm),
	}
}

// findPosition reserves space for a padded footprint on this page.
func (p *Page) findPosition(w, h int) (int, int, bool) {
	return p.tracker.FindPosition(w, h)
}

// place blits the sprite content at the padding inset of the reserved
// position and records the placement. src carries the pre-trim dimensions.
func (p *Page) place(name string, src, content *canvas.Canvas, x, y, padding, trimX, trimY int, trimmed bool) model.PlacedSprite {
	px := x + padding
	py := y + padding
	p.Buffer.Blit(content, px, py)

	placed := model.PlacedSprite{
		Name:           name,
		Page:           p.Index,
		X:              px,
		Y:              py,
		Width:          content.Width(),
		Height:         content.Height(),
		OriginalWidth:  src.Width(),
		OriginalHeight: src.Height(),
		Trimmed:        trimmed,
		TrimX:          trimX,
		TrimY:          trimY,
	}
	p.Sprites = append(p.Sprites, placed)
	return placed
}

// Info summarizes the page for results and reports.
func (p *Page) Info() model.PageInfo {
	sprites := make([]model.PlacedSprite, len(p.Sprites))
	copy(sprites, p.Sprites)
	return model.PageInfo{
		Index:   p.Index,
		Width:   p.Buffer.Width(),
		Height:  p.Buffer.Height(),
		Sprites: sprites,
	}
}

// Occupancy returns the percentage of the page covered by sprite content.
func (p *Page) Occupancy() float64 {
	return p.Info().Occupancy()
}
