// Package engine implements the free-space bookkeeping and placement
// strategies used to pack sprites onto fixed-size atlas pages.
package engine

import "github.com/piwi3910/SpritePack/model"

// Tracker owns the free-space state for a single atlas page and finds
// positions for incoming rectangles with the configured strategy.
// Coordinates are pixels; rectangles are never rotated.
type Tracker struct {
	pageW     int
	pageH     int
	algorithm model.Algorithm

	// maxrects / guillotine state
	freeRects []rect

	// shelf cursor state
	shelfX, shelfY, shelfH int
}

type rect struct {
	x, y, w, h int
}

// NewTracker creates a tracker for an empty pageW x pageH page.
func NewTracker(pageW, pageH int, algorithm model.Algorithm) *Tracker {
	return &Tracker{
		pageW:     pageW,
		pageH:     pageH,
		algorithm: algorithm,
		freeRects: []rect{{0, 0, pageW, pageH}},
	}
}

// FindPosition reserves space for a w x h rectangle. Returns the top-left
// position and whether the rectangle fits. A successful call mutates the
// tracker; the caller must use the returned position.
func (t *Tracker) FindPosition(w, h int) (int, int, bool) {
	switch t.algorithm {
	case model.AlgorithmShelf:
		return t.findShelfPosition(w, h)
	default:
		// maxrects; guillotine is an alias with no distinct cut rule
		return t.findMaxRectsPosition(w, h)
	}
}

// findShelfPosition packs left to right along the current shelf and opens a
// new shelf below when the row is full. The cursor advance on a failed new
// shelf is kept, so a later smaller rectangle starts on the fresh shelf.
func (t *Tracker) findShelfPosition(w, h int) (int, int, bool) {
	if t.shelfX+w <= t.pageW && t.shelfY+h <= t.pageH {
		x, y := t.shelfX, t.shelfY
		t.shelfX += w
		if h > t.shelfH {
			t.shelfH = h
		}
		return x, y, true
	}

	// Start a new shelf
	t.shelfY += t.shelfH
	t.shelfX = 0
	t.shelfH = 0

	if t.shelfY+h <= t.pageH && w <= t.pageW {
		x, y := t.shelfX, t.shelfY
		t.shelfX = w
		t.shelfH = h
		return x, y, true
	}

	return 0, 0, false
}

// findMaxRectsPosition scans every free rectangle and takes the one leaving
// the least leftover area (Best Area Fit). Ties keep the earliest free
// rectangle in list order, which keeps placement deterministic.
func (t *Tracker) findMaxRectsPosition(w, h int) (int, int, bool) {
	bestIdx := -1
	bestScore := 0

	for i, r := range t.freeRects {
		if w <= r.w && h <= r.h {
			score := r.w*r.h - w*h
			if bestIdx < 0 || score < bestScore {
				bestIdx = i
				bestScore = score
			}
		}
	}

	if bestIdx < 0 {
		return 0, 0, false
	}

	chosen := t.freeRects[bestIdx]
	t.freeRects = append(t.freeRects[:bestIdx], t.freeRects[bestIdx+1:]...)

	// Split the chosen rectangle: the right remainder keeps the placed
	// height, the bottom remainder spans the full chosen width.
	if chosen.w-w > 0 {
		t.freeRects = append(t.freeRects, rect{chosen.x + w, chosen.y, chosen.w - w, h})
	}
	if chosen.h-h > 0 {
		t.freeRects = append(t.freeRects, rect{chosen.x, chosen.y + h, chosen.w, chosen.h - h})
	}
	t.pruneContained()

	return chosen.x, chosen.y, true
}

// pruneContained removes any free rectangle fully contained within another.
// Coarse defragmentation only; adjacent rectangles are not edge-merged.
func (t *Tracker) pruneContained() {
	if len(t.freeRects) <= 1 {
		return
	}
	kept := make([]rect, 0, len(t.freeRects))
	for i, a := range t.freeRects {
		contained := false
		for j, b := range t.freeRects {
			if i != j && containsRect(b, a) {
				contained = true
				break
			}
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	t.freeRects = kept
}

// containsRect returns true if outer fully contains inner.
func containsRect(outer, inner rect) bool {
	return outer.x <= inner.x && outer.y <= inner.y &&
		outer.x+outer.w >= inner.x+inner.w &&
		outer.y+outer.h >= inner.y+inner.h
}
