package atlas

import "github.com/piwi3910/SpritePack/canvas"

// Animation is a named, ordered sequence of frames.
type Animation struct {
	Name   string
	Frames []*canvas.Canvas
}

// FrameRect locates one frame's content on an animation sheet.
type FrameRect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// AnimationMeta describes where one animation landed on a sheet.
type AnimationMeta struct {
	Name       string      `json:"name"`
	StartRow   int         `json:"start_row"`
	FrameCount int         `json:"frame_count"`
	Frames     []FrameRect `json:"frames"`
}

// SheetMeta describes an animation sheet's uniform grid. FrameWidth and
// FrameHeight are the largest content dimensions, not the cell size; cells
// add the padding on every side.
type SheetMeta struct {
	FrameWidth  int             `json:"frame_width"`
	FrameHeight int             `json:"frame_height"`
	Animations  []AnimationMeta `json:"animations"`
}

// GridSheet lays sprites out row-major on a uniform grid, each centered in
// a cell sized to the largest sprite plus padding on every side. An empty
// input produces a 1x1 transparent sheet.
func GridSheet(sprites []*canvas.Canvas, columns, padding int) *canvas.Canvas {
	if len(sprites) == 0 {
		return canvas.New(1, 1)
	}

	maxW, maxH := 0, 0
	for _, s := range sprites {
		maxW = max(maxW, s.Width())
		maxH = max(maxH, s.Height())
	}

	rows := (len(sprites) + columns - 1) / columns
	cellW := maxW + padding*2
	cellH := maxH + padding*2

	sheet := canvas.New(columns*cellW, rows*cellH)
	for idx, s := range sprites {
		col := idx % columns
		row := idx / columns
		x := col*cellW + padding + (maxW-s.Width())/2
		y := row*cellH + padding + (maxH-s.Height())/2
		sheet.Blit(s, x, y)
	}
	return sheet
}

// AnimationSheet packs animations onto one sheet, each starting on its own
// row and wrapping after the given column count. Frames sit at the top-left
// of their cell, offset by the padding, and the metadata records each
// frame's own dimensions.
func AnimationSheet(animations []Animation, columns, padding int) (*canvas.Canvas, *SheetMeta) {
	if len(animations) == 0 {
		return canvas.New(1, 1), &SheetMeta{}
	}

	maxW, maxH := 0, 0
	for _, anim := range animations {
		for _, frame := range anim.Frames {
			maxW = max(maxW, frame.Width())
			maxH = max(maxH, frame.Height())
		}
	}
	cellW := maxW + padding*2
	cellH := maxH + padding*2

	maxCols := 0
	totalRows := 0
	for _, anim := range animations {
		maxCols = max(maxCols, min(len(anim.Frames), columns))
		totalRows += (len(anim.Frames) + columns - 1) / columns
	}

	sheet := canvas.New(maxCols*cellW, totalRows*cellH)
	meta := &SheetMeta{FrameWidth: maxW, FrameHeight: maxH}

	currentRow := 0
	for _, anim := range animations {
		animMeta := AnimationMeta{
			Name:       anim.Name,
			StartRow:   currentRow,
			FrameCount: len(anim.Frames),
		}
		for idx, frame := range anim.Frames {
			col := idx % columns
			row := currentRow + idx/columns
			x := col*cellW + padding
			y := row*cellH + padding
			sheet.Blit(frame, x, y)
			animMeta.Frames = append(animMeta.Frames, FrameRect{
				X:      x,
				Y:      y,
				Width:  frame.Width(),
				Height: frame.Height(),
			})
		}
		currentRow += (len(anim.Frames) + columns - 1) / columns
		meta.Animations = append(meta.Animations, animMeta)
	}
	return sheet, meta
}

// SplitSheet slices a sheet into frameWidth x frameHeight frames, read
// row-major. A count above zero caps how many frames are returned;
// otherwise every full grid cell becomes a frame.
func SplitSheet(sheet *canvas.Canvas, frameWidth, frameHeight, count int) []*canvas.Canvas {
	cols := sheet.Width() / frameWidth
	rows := sheet.Height() / frameHeight
	total := cols * rows
	if count > 0 && count < total {
		total = count
	}

	frames := make([]*canvas.Canvas, 0, total)
	for i := 0; i < total; i++ {
		col := i % cols
		row := i / cols
		frames = append(frames, sheet.SubCanvas(col*frameWidth, row*frameHeight, frameWidth, frameHeight))
	}
	return frames
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
